package cmdutil

import (
	"testing"

	"github.com/agentstation/e2settings/internal/cmd/application"
	"github.com/agentstation/e2settings/pkg/fileaccess"
	"github.com/agentstation/e2settings/pkg/store"
)

// TestDir is the settings directory used by NewTestApp.
const TestDir = "/etc/enigma2"

// SampleFiles is a small settings directory: two DVB-S transponders, one
// at 19.2E with a catalog entry and one at 13.0E without, a user bouquet
// with an empty marker, an unresolvable service, a duplicate and a stream.
var SampleFiles = map[string]string{
	"lamedb": `eDVB services /4/
transponders
00c00000:0437:0001
	s 11778000:27500000:1:3:192:2:0
/
00820000:0020:0001
	s 10992000:27500000:1:3:130:2:0
/
end
services
283d:00c00000:0437:0001:1:0
Das Erste HD
p:ARD
2b66:00c00000:0437:0001:1:0
ZDF HD
p:ZDF
0d49:00820000:0020:0001:1:0
Rai 1
p:RAI
end
Have a lot of bug fun!
`,
	"bouquets.tv": `#NAME Bouquets (TV)
#SERVICE 1:7:1:0:0:0:0:0:0:0:FROM BOUQUET "userbouquet.dbe03.tv" ORDER BY bouquet
`,
	"userbouquet.dbe03.tv": `#NAME Favourites
#SERVICE 1:64:0:0:0:0:0:0:0:0::Empty
#DESCRIPTION Empty
#SERVICE 1:64:0:0:0:0:0:0:0:0::Germany
#DESCRIPTION Germany
#SERVICE 1:0:1:283D:437:1:C00000:0:0:0:
#SERVICE 1:0:1:2B66:437:1:C00000:0:0:0:
#SERVICE 1:0:1:283D:437:1:C00000:0:0:0:
#SERVICE 1:0:1:DEAD:437:1:C00000:0:0:0:
#SERVICE 4097:0:1:0:0:0:0:0:0:0:http%3a//example.com/live:Live
#DESCRIPTION Live
`,
	"satellites.xml": `<?xml version="1.0" encoding="iso-8859-1"?>
<satellites>
	<sat name="Astra 19.2E" flags="1" position="192">
		<transponder frequency="11778000" symbol_rate="27500000" polarization="1" fec_inner="3"/>
	</sat>
</satellites>
`,
}

// NewTestFiles writes SampleFiles to an in-memory filesystem.
func NewTestFiles(t testing.TB) *fileaccess.FS {
	t.Helper()
	files := fileaccess.Memory()
	for name, content := range SampleFiles {
		if err := files.WriteText(TestDir+"/"+name, content); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	return files
}

// NewTestApp returns a mock application whose store reads files.
func NewTestApp(files *fileaccess.FS) *application.Mock {
	return &application.Mock{
		StoreFunc: func() (*store.Store, error) {
			return store.New(TestDir, store.WithFS(files))
		},
	}
}
