// SPDX-License-Identifier: MIT

package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvgrid/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gridview.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestParseInput(t *testing.T) {
	for in, want := range map[string]config.Input{
		"test":    config.InputTest,
		"TEST":    config.InputTest,
		"Actual":  config.InputActual,
		" actual": config.InputActual,
	} {
		got, err := config.ParseInput(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := config.ParseInput("example")
	require.ErrorIs(t, err, config.ErrUnknownInput)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, config.InputActual, cfg.Input)
	assert.False(t, cfg.Verbose)
	assert.False(t, cfg.Diagonals)
	assert.Empty(t, cfg.Probes)
	assert.Equal(t, config.DefaultActualPath, cfg.InputPath())
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
input: test
verbose: true
diagonals: true
paths:
  test: data/small.txt
probes:
  - "0,0"
  - "5,0"
walk: right
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, config.InputTest, cfg.Input)
	assert.True(t, cfg.Verbose)
	assert.True(t, cfg.Diagonals)
	assert.Equal(t, "data/small.txt", cfg.InputPath())
	assert.Equal(t, config.DefaultActualPath, cfg.Paths.Actual)
	assert.Equal(t, []string{"0,0", "5,0"}, cfg.Probes)
	assert.Equal(t, "right", cfg.Walk)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "input: actual\n")
	t.Setenv("GRIDVIEW_INPUT", "test")
	t.Setenv("GRIDVIEW_PATHS_TEST", "env/example")
	t.Setenv("GRIDVIEW_VERBOSE", "true")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.InputTest, cfg.Input)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "env/example", cfg.InputPath())
}

func TestLoad_EnvTypedValues(t *testing.T) {
	t.Setenv("GRIDVIEW_DIAGONALS", "true")
	t.Setenv("GRIDVIEW_PROBES", "1,2 3,4")
	t.Setenv("GRIDVIEW_WALK", "down")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.True(t, cfg.Diagonals)
	assert.Equal(t, []string{"1,2", "3,4"}, cfg.Probes)
	assert.Equal(t, "down", cfg.Walk)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	// The input name is checked while decoding into Config.
	_, err = config.Load(writeConfig(t, "input: sample\n"))
	require.ErrorIs(t, err, config.ErrUnknownInput)
	assert.Contains(t, err.Error(), "config: decode")

	t.Setenv("GRIDVIEW_INPUT", "example")
	_, err = config.Load("")
	require.ErrorIs(t, err, config.ErrUnknownInput)
}

func TestWriteYAML(t *testing.T) {
	cfg := config.Default()
	cfg.Input = config.InputTest
	cfg.Probes = []string{"1,2"}

	var buf bytes.Buffer
	require.NoError(t, cfg.WriteYAML(&buf))
	assert.Contains(t, buf.String(), "input: test\n")

	var back config.Config
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, *cfg, back)

	var bad config.Config
	err := yaml.Unmarshal([]byte("input: nope\n"), &bad)
	require.ErrorIs(t, err, config.ErrUnknownInput)
}
