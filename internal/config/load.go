package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/errors"
)

// EnvPrefix is prepended to environment variable names, so the key
// "log-level" is read from CHECKERS_LOG_LEVEL.
const EnvPrefix = "CHECKERS"

// Configuration keys, shared by flags, environment and config files.
const (
	KeyNotation  = "notation"
	KeyCollapsed = "collapsed"
	KeyFormat    = "format"
	KeySide      = "side"
	KeyWorkers   = "workers"
	KeyDepth     = "depth"
	KeyDistinct  = "distinct"
	KeyCapacity  = "capacity"
	KeyLogLevel  = "log-level"
	KeyStart     = "start"
)

// RegisterFlags adds a flag for every scalar configuration key to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	d := NewConfig()
	fs.String(KeyNotation, d.Output.Notation.String(), "square notation: numeric or coordinates")
	fs.Bool(KeyCollapsed, d.Output.Collapsed, "write captures as fromxto")
	fs.String(KeyFormat, d.Output.Format.String(), "move list format: text, json or yaml")
	fs.String(KeySide, strings.ToLower(d.Side.String()), "side to move first: black or white")
	fs.Int(KeyWorkers, d.Perft.Workers, "search goroutines, 0 for one per CPU")
	fs.Int(KeyDepth, d.Perft.Depth, "perft depth in plies")
	fs.Bool(KeyDistinct, d.Duplicate.CountDistinct, "count distinct perft leaf positions")
	fs.Int(KeyCapacity, d.Duplicate.Capacity, "distinct position limit, 0 for unlimited")
	fs.String(KeyLogLevel, d.LogLevel.String(), "log level: debug, info, warn, error")
}

// Load reads configuration from defaults, the optional YAML file at path,
// CHECKERS_* environment variables and fs, in increasing precedence. fs may
// be nil.
func Load(fs *pflag.FlagSet, path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, errors.Wrap(errors.ErrInvalidConfig, err.Error())
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read %s: %v: %w", path, err, errors.ErrInvalidConfig)
		}
	}

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	d := NewConfig()
	v.SetDefault(KeyNotation, d.Output.Notation.String())
	v.SetDefault(KeyCollapsed, d.Output.Collapsed)
	v.SetDefault(KeyFormat, d.Output.Format.String())
	v.SetDefault(KeySide, strings.ToLower(d.Side.String()))
	v.SetDefault(KeyWorkers, d.Perft.Workers)
	v.SetDefault(KeyDepth, d.Perft.Depth)
	v.SetDefault(KeyDistinct, d.Duplicate.CountDistinct)
	v.SetDefault(KeyCapacity, d.Duplicate.Capacity)
	v.SetDefault(KeyLogLevel, d.LogLevel.String())
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := NewConfig()

	notation, err := checkers.ParseNotationStyle(v.GetString(KeyNotation))
	if err != nil {
		return nil, err
	}
	cfg.Output.Notation = notation
	cfg.Output.Collapsed = v.GetBool(KeyCollapsed)

	if cfg.Output.Format, err = ParseOutputFormat(v.GetString(KeyFormat)); err != nil {
		return nil, err
	}
	if cfg.Side, err = ParseSide(v.GetString(KeySide)); err != nil {
		return nil, err
	}

	cfg.Perft.Workers = v.GetInt(KeyWorkers)
	cfg.Perft.Depth = v.GetInt(KeyDepth)
	cfg.Duplicate.CountDistinct = v.GetBool(KeyDistinct)
	cfg.Duplicate.Capacity = v.GetInt(KeyCapacity)

	level, err := zerolog.ParseLevel(strings.ToLower(v.GetString(KeyLogLevel)))
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", KeyLogLevel, err, errors.ErrInvalidConfig)
	}
	cfg.LogLevel = level

	if v.IsSet(KeyStart) {
		var rows [][]int
		if err := v.UnmarshalKey(KeyStart, &rows); err != nil {
			return nil, fmt.Errorf("%s: %v: %w", KeyStart, err, errors.ErrInvalidTemplate)
		}
		t, err := ParseTemplate(rows)
		if err != nil {
			return nil, err
		}
		cfg.Start = &t
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseTemplate converts an 8x8 grid of piece codes to a Template.
func ParseTemplate(rows [][]int) (checkers.Template, error) {
	var t checkers.Template
	if len(rows) != checkers.BoardSize {
		return t, fmt.Errorf("%d rows: %w", len(rows), errors.ErrInvalidTemplate)
	}
	for y, row := range rows {
		if len(row) != checkers.BoardSize {
			return t, fmt.Errorf("row %d has %d columns: %w", y, len(row), errors.ErrInvalidTemplate)
		}
		copy(t[y][:], row)
	}
	return t, nil
}
