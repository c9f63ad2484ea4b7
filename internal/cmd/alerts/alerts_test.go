package alerts

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/e2settings/internal/cmd/output"
)

func TestAlertString(t *testing.T) {
	assert.Equal(t, "✓ Settings written", NewSuccess("Settings written").String())
	assert.Equal(t, "✗ Save failed: disk full",
		NewError("Save failed").WithError(errors.New("disk full")).String())
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	alert := NewWarning("Dry run").WithDetails("RemoveStreams: 1 removed")

	require.NoError(t, NewFormatWriter(&buf, output.FormatTable).WriteAlert(alert))
	assert.Equal(t, "! Dry run\n   RemoveStreams: 1 removed\n", buf.String())
}

func TestWriteTextColor(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatWriter(&buf, output.FormatTable).WithColor(true).WriteAlert(NewInfo("No changes")))
	assert.Equal(t, LevelInfo.Color()+"i No changes"+resetColor+"\n", buf.String())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	alert := NewSuccess("Settings written").WithDetails("a", "b")
	require.NoError(t, NewFormatWriter(&buf, output.FormatJSON).WriteAlert(alert))

	var data alertData
	require.NoError(t, json.Unmarshal(buf.Bytes(), &data))
	assert.Equal(t, "success", data.Level)
	assert.Equal(t, []string{"a", "b"}, data.Details)
	assert.Empty(t, data.Error)
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "warning", LevelWarning.String())
	assert.Equal(t, "unknown(9)", Level(9).String())
	assert.Equal(t, "?", Level(9).Icon())
}
