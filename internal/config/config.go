package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/joshuapare/listkit/pkg/selection"
)

// EnvPrefix is the prefix for environment overrides, e.g.
// LISTCTL_SELECTION_MODE=single.
const EnvPrefix = "LISTCTL"

// Config holds listctl configuration.
type Config struct {
	Selection SelectionConfig `mapstructure:"selection"`
	Filter    FilterConfig    `mapstructure:"filter"`
	Log       LogConfig       `mapstructure:"log"`
}

// SelectionConfig holds the selection behaviour of listed data.
type SelectionConfig struct {
	Mode          string `mapstructure:"mode"`
	DisallowEmpty bool   `mapstructure:"disallow_empty"`
	KeepAll       bool   `mapstructure:"keep_all"`
}

// FilterConfig selects the filter used by --filter and the browse search.
type FilterConfig struct {
	Kind string `mapstructure:"kind"` // text or fuzzy
}

// LogConfig holds logger settings.
type LogConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Dir     string `mapstructure:"dir"`
	Level   string `mapstructure:"level"`
}

// Filter kinds.
const (
	FilterText  = "text"
	FilterFuzzy = "fuzzy"
)

// Load reads configuration from defaults, the config file and the
// environment, in increasing precedence. path overrides the default location
// ($XDG_CONFIG_HOME/listctl/config.yaml); a missing default file is not an
// error, a missing explicit file is.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("selection.mode", "multiple")
	v.SetDefault("selection.disallow_empty", false)
	v.SetDefault("selection.keep_all", false)
	v.SetDefault("filter.kind", FilterText)
	v.SetDefault("log.enabled", false)
	v.SetDefault("log.dir", "")
	v.SetDefault("log.level", "info")

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(defaultDir())
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks enumerated values.
func (c Config) Validate() error {
	if _, err := selection.ParseMode(c.Selection.Mode); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	switch strings.ToLower(c.Filter.Kind) {
	case FilterText, FilterFuzzy:
	default:
		return fmt.Errorf("config: unknown filter kind %q", c.Filter.Kind)
	}
	return nil
}

// SelectionMode returns the parsed selection mode.
func (c Config) SelectionMode() selection.Mode {
	m, _ := selection.ParseMode(c.Selection.Mode)
	return m
}

// Fuzzy reports whether fuzzy filtering is configured.
func (c Config) Fuzzy() bool {
	return strings.EqualFold(c.Filter.Kind, FilterFuzzy)
}

func defaultDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "listctl")
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "listctl")
}
