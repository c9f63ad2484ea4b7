package alerts

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/agentstation/e2settings/internal/cmd/output"
)

// Writer handles alert output.
type Writer interface {
	WriteAlert(alert *Alert) error
}

// FormatWriter writes alerts as a text line or as a JSON or YAML document.
type FormatWriter struct {
	writer   io.Writer
	format   output.Format
	useColor bool
}

// NewFormatWriter creates a FormatWriter. Color is used for text output
// on terminals only.
func NewFormatWriter(w io.Writer, format output.Format) *FormatWriter {
	return &FormatWriter{writer: w, format: format, useColor: isTerminal(w)}
}

// WithColor overrides terminal detection.
func (fw *FormatWriter) WithColor(useColor bool) *FormatWriter {
	fw.useColor = useColor
	return fw
}

// alertData represents an alert for structured output.
type alertData struct {
	Level   string   `json:"level" yaml:"level"`
	Message string   `json:"message" yaml:"message"`
	Details []string `json:"details,omitempty" yaml:"details,omitempty"`
	Error   string   `json:"error,omitempty" yaml:"error,omitempty"`
}

// WriteAlert writes an alert in the configured format.
func (fw *FormatWriter) WriteAlert(alert *Alert) error {
	switch fw.format {
	case output.FormatJSON, output.FormatYAML:
		data := alertData{
			Level:   alert.Level.String(),
			Message: alert.Message,
			Details: alert.Details,
		}
		if alert.Err != nil {
			data.Error = alert.Err.Error()
		}
		return output.NewFormatter(fw.format).Format(fw.writer, data)
	default:
		return fw.writeText(alert)
	}
}

func (fw *FormatWriter) writeText(alert *Alert) error {
	message := alert.String()
	if fw.useColor {
		message = alert.Level.Color() + message + resetColor
	}
	if _, err := fmt.Fprintln(fw.writer, message); err != nil {
		return err
	}
	for _, detail := range alert.Details {
		if _, err := fmt.Fprintf(fw.writer, "   %s\n", detail); err != nil {
			return err
		}
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
