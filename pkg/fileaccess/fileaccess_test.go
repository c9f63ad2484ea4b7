package fileaccess

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/e2settings/pkg/errors"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"single without newline", "a", []string{"a"}},
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"blank lines kept", "a\n\nb", []string{"a", "", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitLines(tt.text))
		})
	}
}

func TestJoinLines(t *testing.T) {
	assert.Equal(t, "", JoinLines(nil))
	assert.Equal(t, "a\nb\n", JoinLines([]string{"a", "b"}))
}

func TestReadWrite(t *testing.T) {
	fa := Memory()

	require.NoError(t, fa.WriteLines("/etc/enigma2/lamedb", []string{"eDVB services /4/", "end"}))
	assert.True(t, fa.Exists("/etc/enigma2/lamedb"))
	assert.True(t, fa.DirectoryExists("/etc/enigma2"))
	assert.False(t, fa.Exists("/etc/enigma2"))

	lines, err := fa.ReadLines("/etc/enigma2/lamedb")
	require.NoError(t, err)
	assert.Equal(t, []string{"eDVB services /4/", "end"}, lines)

	text, err := fa.ReadText("/etc/enigma2/lamedb")
	require.NoError(t, err)
	assert.Equal(t, "eDVB services /4/\nend\n", text)
}

func TestOpenCreate(t *testing.T) {
	fa := Memory()

	w, err := fa.Create("/data/satellites.xml")
	require.NoError(t, err)
	_, err = io.WriteString(w, "<satellites/>")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := fa.Open("/data/satellites.xml")
	require.NoError(t, err)
	defer r.Close()
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "<satellites/>", string(data))
}

func TestListAndDelete(t *testing.T) {
	fa := Memory()
	require.NoError(t, fa.WriteText("/s/userbouquet.b.tv", "#NAME b\n"))
	require.NoError(t, fa.WriteText("/s/userbouquet.a.tv", "#NAME a\n"))
	require.NoError(t, fa.CreateDirectory("/s/sub"))

	names, err := fa.List("/s")
	require.NoError(t, err)
	assert.Equal(t, []string{"userbouquet.a.tv", "userbouquet.b.tv"}, names)

	require.NoError(t, fa.Delete("/s/userbouquet.a.tv"))
	assert.False(t, fa.Exists("/s/userbouquet.a.tv"))
	assert.NoError(t, fa.Delete("/s/missing"))
}

func TestReadMissingFile(t *testing.T) {
	fa := Memory()
	_, err := fa.ReadLines("/nope")
	require.Error(t, err)

	var ioErr *errors.IOError
	assert.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "read", ioErr.Operation)
}
