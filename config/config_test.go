// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/blockmul/matmul"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	conf, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), conf)
	assert.Equal(t, []int{64, 128, 256}, conf.Sizes)
	assert.Equal(t, int64(42), conf.Seed)
	assert.Equal(t, PrecisionFloat64, conf.Precision)
	assert.Len(t, conf.Strategies, len(matmul.Strategies()))
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blockmul.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
sizes = [32, 96]
inner = 17
seed = 7
precision = "float32"
strategies = ["naive", "strassen"]
tile_size = 16
min_size = 8
lanes = 4
rel_tolerance = 1e-4
`), 0o600))

	conf, err := LoadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{32, 96}, conf.Sizes)
	assert.Equal(t, 17, conf.Inner)
	assert.Equal(t, int64(7), conf.Seed)
	assert.Equal(t, PrecisionFloat32, conf.Precision)
	assert.Equal(t, []string{"naive", "strassen"}, conf.Strategies)
	assert.Equal(t, 16, conf.TileSize)
	assert.Equal(t, 8, conf.MinSize)
	assert.Equal(t, 4, conf.Lanes)
	assert.Equal(t, 1e-4, conf.RelTolerance)
	assert.Equal(t, 17, conf.InnerFor(32))
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"), nil)
	assert.Error(t, err)
}

func TestLoadConfigEnv(t *testing.T) {
	t.Setenv("BLOCKMUL_SEED", "99")
	t.Setenv("BLOCKMUL_PRECISION", "float32")
	t.Setenv("BLOCKMUL_STRATEGIES", "tiled,simd")
	t.Setenv("BLOCKMUL_TILE_SIZE", "32")

	conf, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(99), conf.Seed)
	assert.Equal(t, PrecisionFloat32, conf.Precision)
	assert.Equal(t, []string{"tiled", "simd"}, conf.Strategies)
	assert.Equal(t, 32, conf.TileSize)
}

func TestLoadConfigFlags(t *testing.T) {
	t.Setenv("BLOCKMUL_SEED", "99")

	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	AddFlags(flagSet)
	require.NoError(t, flagSet.Parse([]string{"--seed=5", "--sizes=8,16", "--min-size=4"}))

	conf, err := LoadConfig("", flagSet)
	require.NoError(t, err)
	// flags win over the environment
	assert.Equal(t, int64(5), conf.Seed)
	assert.Equal(t, []int{8, 16}, conf.Sizes)
	assert.Equal(t, 4, conf.MinSize)
	// unchanged flags leave defaults alone
	assert.Equal(t, matmul.DefaultTileSize, conf.TileSize)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty sizes", func(c *Config) { c.Sizes = nil }},
		{"zero size", func(c *Config) { c.Sizes = []int{0} }},
		{"negative inner", func(c *Config) { c.Inner = -1 }},
		{"precision", func(c *Config) { c.Precision = "float16" }},
		{"unknown strategy", func(c *Config) { c.Strategies = []string{"winograd"} }},
		{"duplicate strategy", func(c *Config) { c.Strategies = []string{"naive", " Naive"} }},
		{"negative tile", func(c *Config) { c.TileSize = -1 }},
		{"zero min size", func(c *Config) { c.MinSize = 0 }},
		{"negative lanes", func(c *Config) { c.Lanes = -2 }},
		{"negative tolerance", func(c *Config) { c.RelTolerance = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := GetDefaultConfig()
			tt.mutate(conf)
			assert.Error(t, conf.Validate())
		})
	}
	assert.NoError(t, GetDefaultConfig().Validate())
}

func TestParsedStrategies(t *testing.T) {
	conf := GetDefaultConfig()
	conf.Strategies = []string{"strassen", "NAIVE"}
	got, err := conf.ParsedStrategies()
	require.NoError(t, err)
	assert.Equal(t, []matmul.Strategy{matmul.StrategyStrassen, matmul.StrategyNaive}, got)
	assert.Equal(t, 12, conf.InnerFor(12))
}
