package renumber

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/e2settings/internal/cmd/cmdutil"
	"github.com/agentstation/e2settings/pkg/errors"
)

func TestRenumberFiles(t *testing.T) {
	files := cmdutil.NewTestFiles(t)

	cmd := NewCommand(cmdutil.NewTestApp(files))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--markers=false"})
	require.NoError(t, cmd.Execute())

	assert.True(t, files.Exists(cmdutil.TestDir+"/userbouquet.dbe00.tv"))
	assert.False(t, files.Exists(cmdutil.TestDir+"/userbouquet.dbe03.tv"))

	index, err := files.ReadText(cmdutil.TestDir + "/bouquets.tv")
	require.NoError(t, err)
	assert.Contains(t, index, `"userbouquet.dbe00.tv"`)
}

func TestRenumberMarkers(t *testing.T) {
	files := cmdutil.NewTestFiles(t)

	cmd := NewCommand(cmdutil.NewTestApp(files))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--files=false"})
	require.NoError(t, cmd.Execute())

	assert.True(t, files.Exists(cmdutil.TestDir+"/userbouquet.dbe03.tv"))
	text, err := files.ReadText(cmdutil.TestDir + "/userbouquet.dbe03.tv")
	require.NoError(t, err)
	assert.Contains(t, text, "#SERVICE 1:64:1:0:0:0:0:0:0:0::Germany")
}

func TestRenumberNothingSelected(t *testing.T) {
	cmd := NewCommand(cmdutil.NewTestApp(cmdutil.NewTestFiles(t)))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--markers=false", "--files=false"})

	err := cmd.Execute()
	assert.True(t, errors.IsArgument(err))
}
