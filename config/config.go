// SPDX-License-Identifier: MIT

// Package config loads the settings of a verification run from defaults,
// an optional TOML/YAML/JSON file, BLOCKMUL_* environment variables and
// command line flags, in increasing order of precedence.
package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/juju/errors"
	"github.com/katalvlaran/blockmul/matmul"
	"github.com/samber/lo"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment key: tile_size → BLOCKMUL_TILE_SIZE.
const EnvPrefix = "BLOCKMUL"

// Precision names accepted in the configuration.
const (
	PrecisionFloat32 = "float32"
	PrecisionFloat64 = "float64"
)

// Config describes one verification run: which strategies to check, on
// which square sizes, with which generator seed and numeric precision.
type Config struct {
	// Sizes lists the n of every n×inner × inner×n product.
	Sizes []int `mapstructure:"sizes" validate:"required,min=1,dive,gt=0"`
	// Inner fixes the shared dimension; 0 means square (inner = n).
	Inner int `mapstructure:"inner" validate:"gte=0"`
	// Seed initializes the operand generator.
	Seed int64 `mapstructure:"seed"`
	// Precision is float32 or float64.
	Precision string `mapstructure:"precision" validate:"oneof=float32 float64"`
	// Strategies are checked against the naive reference.
	Strategies []string `mapstructure:"strategies" validate:"required,min=1,dive,strategy"`
	// TileSize is passed to tiled; 0 derives it from the L1 cache.
	TileSize int `mapstructure:"tile_size" validate:"gte=0"`
	// MinSize is the Strassen recursion threshold.
	MinSize int `mapstructure:"min_size" validate:"gt=0"`
	// Lanes overrides the SIMD lane count; 0 uses the detected width.
	Lanes int `mapstructure:"lanes" validate:"gte=0"`
	// RelTolerance overrides the acceptance tolerance; 0 derives it from
	// the precision and inner dimension.
	RelTolerance float64 `mapstructure:"rel_tolerance" validate:"gte=0"`
}

// GetDefaultConfig returns the configuration used when nothing is set.
func GetDefaultConfig() *Config {
	return &Config{
		Sizes:        []int{64, 128, 256},
		Inner:        0,
		Seed:         42,
		Precision:    PrecisionFloat64,
		Strategies:   matmul.StrategyNames(),
		TileSize:     matmul.DefaultTileSize,
		MinSize:      matmul.DefaultMinSize,
		Lanes:        matmul.DefaultLanes,
		RelTolerance: 0,
	}
}

func setDefault(v *viper.Viper) {
	def := GetDefaultConfig()
	v.SetDefault("sizes", def.Sizes)
	v.SetDefault("inner", def.Inner)
	v.SetDefault("seed", def.Seed)
	v.SetDefault("precision", def.Precision)
	v.SetDefault("strategies", def.Strategies)
	v.SetDefault("tile_size", def.TileSize)
	v.SetDefault("min_size", def.MinSize)
	v.SetDefault("lanes", def.Lanes)
	v.SetDefault("rel_tolerance", def.RelTolerance)
}

// flagKeys maps command line flag names to configuration keys.
var flagKeys = map[string]string{
	"sizes":         "sizes",
	"inner":         "inner",
	"seed":          "seed",
	"precision":     "precision",
	"strategies":    "strategies",
	"tile-size":     "tile_size",
	"min-size":      "min_size",
	"lanes":         "lanes",
	"rel-tolerance": "rel_tolerance",
}

// AddFlags registers one flag per configuration key on flagSet.
func AddFlags(flagSet *pflag.FlagSet) {
	def := GetDefaultConfig()
	flagSet.IntSlice("sizes", def.Sizes, "square sizes to multiply")
	flagSet.Int("inner", def.Inner, "shared inner dimension (0 = square)")
	flagSet.Int64("seed", def.Seed, "seed of the operand generator")
	flagSet.String("precision", def.Precision, "element type: float32 or float64")
	flagSet.StringSlice("strategies", def.Strategies, "strategies to check against naive")
	flagSet.Int("tile-size", def.TileSize, "tile edge for the tiled strategy (0 = from L1 cache)")
	flagSet.Int("min-size", def.MinSize, "Strassen recursion threshold")
	flagSet.Int("lanes", def.Lanes, "SIMD lane count (0 = detected)")
	flagSet.Float64("rel-tolerance", def.RelTolerance, "acceptance tolerance (0 = derived)")
}

// LoadConfig resolves the configuration. path may be empty (no file);
// flagSet may be nil. Only flags that were set on the command line override
// the file and the environment.
func LoadConfig(path string, flagSet *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefault(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Annotatef(err, "read config %s", path)
		}
	}

	if flagSet != nil {
		for name, key := range flagKeys {
			if f := flagSet.Lookup(name); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, errors.Trace(err)
				}
			}
		}
	}

	var conf Config
	if err := v.Unmarshal(&conf, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToSliceHookFunc(","),
	))); err != nil {
		return nil, errors.Annotate(err, "decode config")
	}
	if err := conf.Validate(); err != nil {
		return nil, errors.Trace(err)
	}

	return &conf, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("strategy", func(fl validator.FieldLevel) bool {
		_, err := matmul.ParseStrategy(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(err)
	}

	return v
}

// Validate checks every field constraint and rejects duplicated strategies.
func (config *Config) Validate() error {
	if err := validate.Struct(config); err != nil {
		return errors.Annotate(err, "invalid config")
	}
	normalized := lo.Map(config.Strategies, func(s string, _ int) string {
		return strings.ToLower(strings.TrimSpace(s))
	})
	if dup := lo.FindDuplicates(normalized); len(dup) > 0 {
		return errors.NotValidf("duplicated strategies %v", dup)
	}

	return nil
}

// ParsedStrategies returns Strategies as matmul values, in order.
func (config *Config) ParsedStrategies() ([]matmul.Strategy, error) {
	out := make([]matmul.Strategy, 0, len(config.Strategies))
	for _, name := range config.Strategies {
		s, err := matmul.ParseStrategy(name)
		if err != nil {
			return nil, errors.Trace(err)
		}
		out = append(out, s)
	}

	return out, nil
}

// InnerFor returns the shared dimension used with size n.
func (config *Config) InnerFor(n int) int {
	if config.Inner > 0 {
		return config.Inner
	}

	return n
}
