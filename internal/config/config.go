package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/riftlens/winreport/internal/i18n"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// EnvPrefix is the prefix of environment overrides. A double underscore
// separates nested keys: WINREPORT_SERVE__PORT -> serve.port.
const EnvPrefix = "WINREPORT_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (WINREPORT_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Watch calls onChange whenever the config file at path is written. The
// callback receives the freshly loaded config, or the load error. The
// returned stop function ends the watch.
func Watch(path string, onChange func(*Config, error)) (stop func() error, err error) {
	p := file.Provider(path)
	err = p.Watch(func(_ interface{}, err error) {
		if err != nil {
			onChange(nil, fmt.Errorf("watching %s: %w", path, err))
			return
		}
		onChange(Load(path))
	})
	if err != nil {
		return nil, fmt.Errorf("watching %s: %w", path, err)
	}
	return p.Unwatch, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validFormats is the set of recognized export formats.
var validFormats = map[ExportFormat]bool{
	FormatPNG: true,
	FormatSVG: true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("%w: output_dir is required", ErrInvalid)
	}
	if !i18n.IsKnown(c.DefaultLang) {
		return fmt.Errorf("%w: default_lang %q: must be en or ko", ErrInvalid, c.DefaultLang)
	}
	if c.ChartJSURL == "" {
		return fmt.Errorf("%w: chartjs_url is required", ErrInvalid)
	}
	if c.Serve.Port <= 0 || c.Serve.Port > 65535 {
		return fmt.Errorf("%w: serve.port %d out of range", ErrInvalid, c.Serve.Port)
	}
	if !validFormats[c.Export.Format] {
		return fmt.Errorf("%w: export.format %q: must be png or svg", ErrInvalid, c.Export.Format)
	}
	if c.Export.Lang != "" && c.Export.Lang != ExportAllLangs && !i18n.IsKnown(c.Export.Lang) {
		return fmt.Errorf("%w: export.lang %q: must be en, ko or all", ErrInvalid, c.Export.Lang)
	}
	if c.Export.WidthIn <= 0 || c.Export.HeightIn <= 0 {
		return fmt.Errorf("%w: export size must be positive", ErrInvalid)
	}
	return nil
}
