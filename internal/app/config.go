package app

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	kserrors "keysigner/internal/errors"
)

// Output formats understood by the CLI.
const (
	OutputText = "text"
	OutputJSON = "json"
)

const (
	envPrefix      = "KEYSIGNER"
	configName     = "config"
	defaultHomeDir = ".keysigner"
)

// Config holds runtime options for building the app.
type Config struct {
	Home     string `mapstructure:"home"`      // config directory, e.g. $HOME/.keysigner
	Keypair  string `mapstructure:"keypair"`   // default keypair path for subcommands
	Output   string `mapstructure:"output"`    // text or json
	LogLevel string `mapstructure:"log_level"` // zerolog level name
}

// NewViper returns a viper instance with keysigner defaults and environment
// binding applied.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("home", "")
	v.SetDefault("keypair", "")
	v.SetDefault("output", OutputText)
	v.SetDefault("log_level", "info")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfig reads configuration into a Config with this precedence (highest
// first): bound flags, KEYSIGNER_* environment, config file, defaults.
//
// configFile names an explicit file; when empty, $home/config.yaml is read if
// it exists. A missing default config file is not an error.
func LoadConfig(v *viper.Viper, configFile string) (*Config, error) {
	home, err := resolveHome(v.GetString("home"))
	if err != nil {
		return nil, err
	}
	v.Set("home", home)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(home)
	}
	if err := v.ReadInConfig(); err != nil && !isConfigNotFoundError(err) {
		return nil, kserrors.Wrap(err, "failed to read config")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, kserrors.Wrap(err, "failed to unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, kserrors.Wrap(err, "invalid configuration")
	}
	return &cfg, nil
}

// Validate checks the option values.
func (c *Config) Validate() error {
	if !slices.Contains([]string{OutputText, OutputJSON}, c.Output) {
		return kserrors.Wrapf(kserrors.ErrInvalidOutputFormat, "%q must be one of [%s %s]", c.Output, OutputText, OutputJSON)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return kserrors.Wrapf(err, "log_level %q", c.LogLevel)
	}
	return nil
}

// resolveHome returns home, or ~/.keysigner when home is empty.
func resolveHome(home string) (string, error) {
	if home != "" {
		return home, nil
	}
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", kserrors.Wrap(err, "failed to get user home directory")
	}
	return filepath.Join(dir, defaultHomeDir), nil
}

func isConfigNotFoundError(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return stderrors.As(err, &notFound)
}
