// Package config loads the boxlayout CLI configuration from defaults, an
// optional file and BOXLAYOUT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"github.com/grindlemire/go-boxlayout/internal/layout"
	"github.com/grindlemire/go-boxlayout/pkg/debug"
)

// EnvPrefix is prepended to every environment override, e.g.
// BOXLAYOUT_VIEWPORT_WIDTH.
const EnvPrefix = "BOXLAYOUT"

// Config holds the whole CLI configuration.
type Config struct {
	Viewport ViewportConfig `mapstructure:"viewport" yaml:"viewport"`
	Layout   LayoutConfig   `mapstructure:"layout" yaml:"layout"`
	Logger   LoggerConfig   `mapstructure:"logger" yaml:"logger"`
}

// ViewportConfig is the size handed to tree roots.
type ViewportConfig struct {
	Width  float64 `mapstructure:"width" yaml:"width"`
	Height float64 `mapstructure:"height" yaml:"height"`
}

// Size returns the viewport as a layout size.
func (v ViewportConfig) Size() layout.Size {
	return layout.Size{Width: v.Width, Height: v.Height}
}

// LayoutConfig controls how passes are run.
type LayoutConfig struct {
	// Locale is the BCP-47 tag used for roots that declare none.
	Locale string `mapstructure:"locale" yaml:"locale"`
	// Direction is the root direction: ltr, rtl, inherit or auto.
	Direction string `mapstructure:"direction" yaml:"direction"`
	// Concurrency bounds how many documents are measured at once.
	Concurrency int `mapstructure:"concurrency" yaml:"concurrency"`
}

// LocaleTag parses Locale. An empty locale is undetermined.
func (l LayoutConfig) LocaleTag() (language.Tag, error) {
	if l.Locale == "" {
		return language.Und, nil
	}
	tag, err := language.Parse(l.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("layout.locale %q: %w", l.Locale, err)
	}
	return tag, nil
}

// TextDirection parses Direction.
func (l LayoutConfig) TextDirection() (layout.TextDirection, error) {
	return layout.ParseTextDirection(l.Direction)
}

// LoggerConfig configures the process-wide logger.
type LoggerConfig struct {
	Level      string `mapstructure:"level" yaml:"level"`
	Format     string `mapstructure:"format" yaml:"format"`
	File       string `mapstructure:"file" yaml:"file"`
	MaxSize    int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge     int    `mapstructure:"max_age" yaml:"max_age"`
	Compress   bool   `mapstructure:"compress" yaml:"compress"`
}

// Options converts the logger section for debug.Initialize.
func (l LoggerConfig) Options() debug.Options {
	return debug.Options{
		Level:      l.Level,
		Format:     l.Format,
		Name:       "boxlayout",
		File:       l.File,
		MaxSize:    l.MaxSize,
		MaxBackups: l.MaxBackups,
		MaxAge:     l.MaxAge,
		Compress:   l.Compress,
	}
}

// NewDefaultConfig returns the configuration used when nothing is set.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)
	var cfg Config
	// Defaults always decode.
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// SetDefaults registers every key's default on v.
func SetDefaults(v *viper.Viper) {
	// -- Viewport --
	v.SetDefault("viewport.width", 1080)
	v.SetDefault("viewport.height", 1920)

	// -- Layout --
	v.SetDefault("layout.locale", "")
	v.SetDefault("layout.direction", "auto")
	v.SetDefault("layout.concurrency", 4)

	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 7)
	v.SetDefault("logger.compress", false)
}

// Load reads defaults, the optional config file at path and BOXLAYOUT_*
// environment overrides into v, then decodes and validates the result.
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}
	return NewConfigFromViper(v)
}

// NewConfigFromViper decodes and validates the configuration held by v.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for sane values.
func (c *Config) Validate() error {
	var errs []error
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		errs = append(errs, fmt.Errorf("viewport must be positive, got %vx%v", c.Viewport.Width, c.Viewport.Height))
	}
	if c.Layout.Concurrency <= 0 {
		errs = append(errs, fmt.Errorf("layout.concurrency must be positive, got %d", c.Layout.Concurrency))
	}
	if _, err := c.Layout.TextDirection(); err != nil {
		errs = append(errs, fmt.Errorf("layout.direction: %w", err))
	}
	if _, err := c.Layout.LocaleTag(); err != nil {
		errs = append(errs, err)
	}
	switch c.Logger.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("logger.format must be json or console, got %q", c.Logger.Format))
	}
	return errors.Join(errs...)
}
