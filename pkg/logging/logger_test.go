package logging_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/e2settings/pkg/logging"
)

func TestDefaultLogger(t *testing.T) {
	original := *logging.Default()
	t.Cleanup(func() { logging.SetDefault(original) })

	buf := &bytes.Buffer{}
	logging.SetDefault(zerolog.New(buf).Level(zerolog.DebugLevel))

	logging.Info().Msg("info message")
	logging.Warn().Msg("warning message")

	assert.Contains(t, buf.String(), "info message")
	assert.Contains(t, buf.String(), "warning message")
}

func TestOrNop(t *testing.T) {
	assert.NotNil(t, logging.OrNop(nil))

	tl := logging.NewTestLogger(t)
	assert.Same(t, tl.Logger, logging.OrNop(tl.Logger))
}

func TestContextLogger(t *testing.T) {
	tl := logging.NewTestLogger(t)

	ctx := logging.WithLogger(context.Background(), tl.Logger)
	ctx = logging.WithSettingsDir(ctx, "/etc/enigma2")
	ctx = logging.WithOperation(ctx, "renumber-markers")

	logging.FromContext(ctx).Info().Msg("done")

	tl.AssertContains(t, "/etc/enigma2")
	tl.AssertContains(t, "renumber-markers")
	tl.AssertCount(t, 1)
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	assert.Same(t, logging.Default(), logging.FromContext(context.Background()))
}

func TestConfiguration(t *testing.T) {
	originalLevel := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(originalLevel) })

	tests := []struct {
		name     string
		config   *logging.Config
		contains string
		excludes string
	}{
		{
			name:     "debug level",
			config:   &logging.Config{Level: "debug", Format: "json", Output: "discard"},
			contains: `"level":"debug"`,
		},
		{
			name:     "error level only",
			config:   &logging.Config{Level: "error", Format: "json", Output: "discard"},
			contains: `"level":"error"`,
			excludes: `"level":"info"`,
		},
		{
			name:     "warning alias",
			config:   &logging.Config{Level: "warning", Format: "json", Output: "discard"},
			contains: `"level":"warn"`,
			excludes: `"level":"info"`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := logging.NewLoggerFromConfig(tc.config).Output(buf)

			logger.Debug().Msg("debug")
			logger.Info().Msg("info")
			logger.Warn().Msg("warn")
			logger.Error().Msg("error")

			assert.Contains(t, buf.String(), tc.contains)
			if tc.excludes != "" {
				assert.NotContains(t, buf.String(), tc.excludes)
			}
		})
	}
}

func TestFileOutputRotates(t *testing.T) {
	originalLevel := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(originalLevel) })

	path := filepath.Join(t.TempDir(), "e2settings.log")
	logger := logging.NewLoggerFromConfig(&logging.Config{
		Level:      "info",
		Format:     "json",
		Output:     path,
		MaxSizeMB:  1,
		MaxBackups: 1,
	})
	logger.Info().Str("bouquet", "userbouquet.dbe00.tv").Msg("renamed")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "userbouquet.dbe00.tv")
}

func TestTestLogger(t *testing.T) {
	tl := logging.NewTestLogger(t)

	tl.Logger.Info().Msg("message 1")
	tl.Logger.Warn().Msg("message 2")

	tl.AssertContains(t, "message 1")
	tl.AssertCount(t, 2)

	tl.Clear()
	assert.Equal(t, 0, tl.Count())
}
