// SPDX-License-Identifier: MIT

// Package config holds the settings of the gridview command: which input to
// read, how verbose to be, and which cells to inspect.
//
// Settings come from, in increasing priority: built-in defaults, an optional
// YAML file, GRIDVIEW_* environment variables (nested keys use '_', e.g.
// GRIDVIEW_PATHS_TEST), and finally command-line flags applied by the caller.
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultActualPath is where the full input is read from.
	DefaultActualPath = "input/input"
	// DefaultTestPath is where the worked example is read from.
	DefaultTestPath = "input/example"

	envPrefix = "GRIDVIEW"
)

// ErrUnknownInput indicates an input name other than "test" or "actual".
var ErrUnknownInput = errors.New("config: unknown input type")

// Paths locates the two input files.
type Paths struct {
	Test   string `yaml:"test"`
	Actual string `yaml:"actual"`
}

// Config is the effective gridview configuration.
type Config struct {
	Input     Input    `yaml:"input"`
	Verbose   bool     `yaml:"verbose"`
	Paths     Paths    `yaml:"paths"`
	Diagonals bool     `yaml:"diagonals"`
	Probes    []string `yaml:"probes"`
	Walk      string   `yaml:"walk"`
}

// Default returns the configuration used when nothing else is given.
func Default() *Config {
	return &Config{
		Input:  InputActual,
		Paths:  Paths{Test: DefaultTestPath, Actual: DefaultActualPath},
		Probes: []string{},
	}
}

// Load reads the YAML file at path, if path is not empty, and applies
// environment overrides on top of the defaults.
//
// viper merges the sources; the merged settings are then re-encoded and
// decoded with yaml.v3 into Config, so field types and the input name are
// checked by the same YAML rules as a config file.
func Load(path string) (*Config, error) {
	vp := viper.New()
	vp.SetTypeByDefaultValue(true)
	if err := setDefaults(vp, Default()); err != nil {
		return nil, err
	}

	vp.SetEnvPrefix(envPrefix)
	vp.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vp.AutomaticEnv()

	if path != "" {
		vp.SetConfigFile(path)
		vp.SetConfigType("yaml")
		if err := vp.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	spec, err := yaml.Marshal(vp.AllSettings())
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(spec, cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}

	return cfg, nil
}

// setDefaults registers every field of def as a viper default, keyed by its
// yaml tag path (e.g. "paths.test"). Registering every key is what lets
// AutomaticEnv find GRIDVIEW_* overrides for keys absent from the file.
func setDefaults(vp *viper.Viper, def *Config) error {
	raw, err := yaml.Marshal(def)
	if err != nil {
		return err
	}
	var tree map[string]interface{}
	if err := yaml.Unmarshal(raw, &tree); err != nil {
		return err
	}
	walkDefaults(vp, "", tree)

	return nil
}

func walkDefaults(vp *viper.Viper, prefix string, tree map[string]interface{}) {
	for k, v := range tree {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch v := v.(type) {
		case map[string]interface{}:
			walkDefaults(vp, key, v)
		case []interface{}:
			// string lists; a typed default lets env values split on spaces
			items := make([]string, 0, len(v))
			for _, item := range v {
				items = append(items, fmt.Sprint(item))
			}
			vp.SetDefault(key, items)
		default:
			vp.SetDefault(key, v)
		}
	}
}

// InputPath returns the file selected by c.Input.
func (c *Config) InputPath() string {
	if c.Input == InputTest {
		return c.Paths.Test
	}

	return c.Paths.Actual
}

// WriteYAML writes c as a YAML document, suitable as a starting config file.
func (c *Config) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}

	return enc.Close()
}
