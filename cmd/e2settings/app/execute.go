package app

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/e2settings/internal/cmd/alerts"
	"github.com/agentstation/e2settings/internal/cmd/output"
	"github.com/agentstation/e2settings/pkg/logging"
)

// Flags holds the global flags as parsed by cobra.
type Flags struct {
	ConfigFile  string
	SettingsDir string
	Output      string
	LogLevel    string
	Verbose     bool
	Quiet       bool
	NoColor     bool
}

// Execute runs the e2settings CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(logging.WithLogger(ctx, a.logger))
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	flags := &Flags{}

	rootCmd := &cobra.Command{
		Use:     "e2settings",
		Short:   "Enigma2 settings maintenance CLI",
		Version: a.version,
		Long: `e2settings reads the channel settings of an Enigma2 receiver (lamedb,
bouquet files, satellites.xml, cables.xml and the blacklist), reconciles
them and writes them back.

It finds broken references, removes empty or duplicate entries,
renumbers markers and bouquet files and moves a satellite to a new
orbital position.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setupCommand(cmd, flags)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "Core Commands:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "edit",
		Title: "Editing Commands:",
	})

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.ConfigFile, "config", "", "config file (default is $HOME/.e2settings.yaml)")
	pf.StringVar(&flags.SettingsDir, "dir", "", "settings directory (default "+DefaultSettingsDir+")")
	pf.StringVarP(&flags.Output, "output", "o", "", "output format: table, json, yaml")
	pf.StringVar(&flags.LogLevel, "log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")
	pf.BoolVarP(&flags.Verbose, "verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	pf.BoolVarP(&flags.Quiet, "quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	pf.BoolVar(&flags.NoColor, "no-color", false, "disable colored output")

	rootCmd.SetVersionTemplate("e2settings {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, flags *Flags) error {
	if _, err := output.ParseFormat(flags.Output); err != nil {
		return err
	}

	if flags.ConfigFile != "" {
		config, err := LoadConfig(flags.ConfigFile)
		if err != nil {
			return err
		}
		a.config = config
	}

	a.config.UpdateFromFlags(flags)
	if err := a.config.Validate(); err != nil {
		return err
	}

	// Reinitialize logger with updated config; it becomes the default
	// logger and travels to the command through its context.
	logging.Configure(newLogConfig(a.config))
	a.logger = logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.WithOperation(logging.WithLogger(ctx, a.logger), cmd.Name()))
	return nil
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		_ = WriteError(os.Stderr, err)
		os.Exit(1)
	}
}

// WriteError writes err to w as an error alert.
func WriteError(w io.Writer, err error) error {
	return alerts.NewFormatWriter(w, output.FormatTable).WriteAlert(alerts.NewError("Error").WithError(err))
}
