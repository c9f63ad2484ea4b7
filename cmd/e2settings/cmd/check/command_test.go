package check

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/e2settings/internal/cmd/cmdutil"
	"github.com/agentstation/e2settings/pkg/reconcile"
)

func TestCheckReportsWithoutWriting(t *testing.T) {
	files := cmdutil.NewTestFiles(t)
	app := cmdutil.NewTestApp(files)
	app.OutputFormatFunc = func() string { return "json" }
	before, err := files.ReadText(cmdutil.TestDir + "/userbouquet.dbe03.tv")
	require.NoError(t, err)

	var out bytes.Buffer
	cmd := NewCommand(app)
	cmd.SetOut(&out)
	cmd.SetArgs(nil)
	require.NoError(t, cmd.Execute())

	var reports []reconcile.Report
	require.NoError(t, json.Unmarshal(out.Bytes(), &reports))
	require.Len(t, reports, 4)
	assert.Equal(t, "MatchSatellitesToTransponders", reports[0].Operation)
	assert.Equal(t, "MatchAllBouquetServices", reports[3].Operation)
	assert.Equal(t, 1, reports[3].Unmatched, "the DEAD entry does not resolve")

	after, err := files.ReadText(cmdutil.TestDir + "/userbouquet.dbe03.tv")
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestCheckTableOutput(t *testing.T) {
	app := cmdutil.NewTestApp(cmdutil.NewTestFiles(t))

	var out bytes.Buffer
	cmd := NewCommand(app)
	cmd.SetOut(&out)
	cmd.SetArgs(nil)
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "MatchServicesToTransponders")
}

func TestCheckRejectsArguments(t *testing.T) {
	cmd := NewCommand(cmdutil.NewTestApp(cmdutil.NewTestFiles(t)))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"extra"})
	assert.Error(t, cmd.Execute())
}
