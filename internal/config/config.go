// Package config loads mdview's settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pgavlin/mdview/renderer"
	"github.com/pgavlin/mdview/styles"
	"github.com/sirupsen/logrus"
)

// Config holds the settings that may be given in a configuration file. Command-line flags override these values.
type Config struct {
	// Theme names a registered theme.
	Theme string `toml:"theme"`
	// Placeholder overrides the break-marker placeholder. An empty string disables break protection; nil keeps the
	// default.
	Placeholder *string `toml:"placeholder"`
	// BreakMode is "marker" or "line".
	BreakMode   string `toml:"break_mode"`
	RuleWidth   int    `toml:"rule_width"`
	ColumnWidth int    `toml:"column_width"`

	LogFile  string `toml:"log_file"`
	LogLevel string `toml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Theme:       styles.GitHubDark.Name,
		BreakMode:   renderer.BreakMarker.String(),
		RuleWidth:   renderer.DefaultRuleWidth,
		ColumnWidth: renderer.DefaultColumnWidth,
		LogLevel:    logrus.InfoLevel.String(),
	}
}

// DefaultPath returns the location of the default configuration file.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating configuration directory: %w", err)
	}
	return filepath.Join(dir, "mdview", "config.toml"), nil
}

// Load reads the configuration file at path over the defaults. If path is empty the default path is used, and a
// missing file there is not an error.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	f, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("opening config: %w", err)
	}
	defer f.Close()

	config, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("%v: %w", path, err)
	}
	return config, nil
}

// Decode reads a configuration over the defaults. Unknown keys are an error.
func Decode(r io.Reader) (Config, error) {
	config := Default()
	md, err := toml.NewDecoder(r).Decode(&config)
	if err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("unknown config keys: %v", strings.Join(keys, ", "))
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// Validate checks that every setting names a known value.
func (c Config) Validate() error {
	if _, ok := styles.Lookup(c.Theme); !ok {
		return fmt.Errorf("unknown theme %q", c.Theme)
	}
	if _, ok := renderer.ParseBreakMode(c.BreakMode); !ok {
		return fmt.Errorf("unknown break mode %q (want \"marker\" or \"line\")", c.BreakMode)
	}
	if c.LogLevel != "" {
		if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("invalid log level: %w", err)
		}
	}
	return nil
}

// ThemeValue returns the configured theme.
func (c Config) ThemeValue() (*styles.Theme, error) {
	theme, ok := styles.Lookup(c.Theme)
	if !ok {
		return nil, fmt.Errorf("unknown theme %q", c.Theme)
	}
	return theme, nil
}

// Level returns the configured log level. An empty level selects Info.
func (c Config) Level() (logrus.Level, error) {
	if c.LogLevel == "" {
		return logrus.InfoLevel, nil
	}
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("invalid log level: %w", err)
	}
	return level, nil
}

// RendererOptions converts the configuration into renderer options.
func (c Config) RendererOptions() ([]renderer.RendererOption, error) {
	theme, err := c.ThemeValue()
	if err != nil {
		return nil, err
	}
	mode, ok := renderer.ParseBreakMode(c.BreakMode)
	if !ok {
		return nil, fmt.Errorf("unknown break mode %q", c.BreakMode)
	}

	options := []renderer.RendererOption{
		renderer.WithTheme(theme),
		renderer.WithBreakMode(mode),
		renderer.WithRuleWidth(c.RuleWidth),
		renderer.WithColumnWidth(c.ColumnWidth),
	}
	if c.Placeholder != nil {
		options = append(options, renderer.WithPlaceholder(*c.Placeholder))
	}
	return options, nil
}
