package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/e2settings/pkg/constants"
	"github.com/agentstation/e2settings/pkg/errors"
)

// EnvPrefix prefixes every environment variable read by the CLI.
const EnvPrefix = "E2SETTINGS"

// DefaultSettingsDir is where receivers keep their settings.
const DefaultSettingsDir = "/etc/enigma2"

// Config holds the application configuration loaded from config files,
// environment variables and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Output  string

	// Config file
	ConfigFile string

	// Settings configuration
	SettingsDir        string
	FrequencyTolerance int64
	KeepMarkers        []string
	LamedbVersion      int

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (applied later by UpdateFromFlags)
// 2. Environment variables (E2SETTINGS_*)
// 3. .env files
// 4. Config file (configFile, or .e2settings.yaml in $HOME or the working directory)
// 5. Defaults
func LoadConfig(configFile string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.NewConfigError("config", "cannot read "+configFile, err)
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".e2settings")

		// A missing config file is fine, a broken one is not.
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, errors.NewConfigError("config", "cannot read config file", err)
			}
		}
	}

	config := &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no_color"),
		Output:  v.GetString("output"),

		ConfigFile: v.ConfigFileUsed(),

		SettingsDir:        v.GetString("settings_dir"),
		FrequencyTolerance: v.GetInt64("frequency_tolerance"),
		KeepMarkers:        stringList(v.Get("keep_markers")),
		LamedbVersion:      v.GetInt("lamedb_version"),

		LogLevel:  v.GetString("log_level"),
		LogFormat: v.GetString("log_format"),
		LogOutput: v.GetString("log_output"),
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("settings_dir", DefaultSettingsDir)
	v.SetDefault("frequency_tolerance", constants.DefaultFrequencyTolerance)
	v.SetDefault("lamedb_version", 0)
	v.SetDefault("log_format", "auto")
	v.SetDefault("log_output", "stderr")
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.SettingsDir == "" {
		return errors.NewConfigError("settings_dir", "cannot be empty", nil)
	}
	if c.FrequencyTolerance < 0 {
		return errors.NewConfigError("frequency_tolerance", "cannot be negative", nil)
	}
	switch c.LamedbVersion {
	case 0, constants.LamedbVersion4, constants.LamedbVersion5:
	default:
		return errors.NewConfigError("lamedb_version", "must be 4 or 5", nil)
	}
	return nil
}

// UpdateFromFlags updates config values from parsed command flags.
// Flags only override when set, so env and file values survive.
func (c *Config) UpdateFromFlags(flags *Flags) {
	if flags.Verbose {
		c.Verbose = true
	}
	if flags.Quiet {
		c.Quiet = true
	}
	if flags.NoColor {
		c.NoColor = true
	}
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}
	if flags.SettingsDir != "" {
		c.SettingsDir = flags.SettingsDir
	}
}

// stringList accepts both a YAML list and a comma separated env value.
func stringList(value any) []string {
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		if v == "" {
			return nil
		}
		var out []string
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// loadEnvFiles loads environment variables from .env files.
// .env.local does not override variables set by .env or the shell.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}
}
