package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/checkers-go/internal/checkers"
	cerrors "github.com/lgbarn/checkers-go/internal/errors"
)

// TestNewConfig_Defaults verifies Config has sensible defaults
func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, checkers.NumericNotation, cfg.Output.Notation)
	assert.True(t, cfg.Output.Collapsed)
	assert.Equal(t, TextFormat, cfg.Output.Format)
	assert.Equal(t, checkers.Black, cfg.Side)
	assert.Equal(t, 4, cfg.Perft.Depth)
	assert.Equal(t, 0, cfg.Perft.Workers)
	assert.False(t, cfg.Duplicate.CountDistinct)
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
	assert.Nil(t, cfg.Start)
	assert.NoError(t, cfg.Validate())
}

// TestConfigBuilder verifies the fluent builder sets every field
func TestConfigBuilder(t *testing.T) {
	cfg := NewConfigBuilder().
		WithNotation(checkers.CoordinateNotation, false).
		WithOutputFormat(YAMLFormat).
		WithSide(checkers.White).
		WithDepth(6).
		WithWorkers(3).
		WithDistinct(true, 1000).
		WithLogLevel(zerolog.DebugLevel).
		WithStart(checkers.InitialTemplate).
		Build()

	assert.Equal(t, checkers.CoordinateNotation, cfg.Output.Notation)
	assert.False(t, cfg.Output.Collapsed)
	assert.Equal(t, YAMLFormat, cfg.Output.Format)
	assert.Equal(t, checkers.White, cfg.Side)
	assert.Equal(t, 6, cfg.Perft.Depth)
	assert.Equal(t, 3, cfg.Perft.Workers)
	assert.True(t, cfg.Duplicate.CountDistinct)
	assert.Equal(t, 1000, cfg.Duplicate.Capacity)
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
	require.NotNil(t, cfg.Start)
	assert.Equal(t, checkers.InitialTemplate, *cfg.Start)
}

// TestConfig_Validate verifies section validation
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr bool
	}{
		{"defaults", NewConfig(), false},
		{"depth zero", NewConfigBuilder().WithDepth(0).Build(), false},
		{"negative depth", NewConfigBuilder().WithDepth(-1).Build(), true},
		{"depth too large", NewConfigBuilder().WithDepth(MaxPerftDepth + 1).Build(), true},
		{"negative workers", NewConfigBuilder().WithWorkers(-2).Build(), true},
		{"negative capacity", NewConfigBuilder().WithDistinct(true, -1).Build(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, cerrors.ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStartBoard(t *testing.T) {
	b, err := NewConfig().StartBoard()
	require.NoError(t, err)
	assert.Equal(t, checkers.InitialTemplate, b.Template())

	custom := checkers.Template{5: {0, 0, 1}}
	b, err = NewConfigBuilder().WithStart(custom).Build().StartBoard()
	require.NoError(t, err)
	assert.Equal(t, custom, b.Template())

	_, err = NewConfigBuilder().WithStart(checkers.Template{{1}}).Build().StartBoard()
	assert.ErrorIs(t, err, cerrors.ErrWhiteSquare)
}

func TestParseSide(t *testing.T) {
	for input, want := range map[string]checkers.Colour{
		"white": checkers.White, "W": checkers.White, " Black ": checkers.Black, "b": checkers.Black,
	} {
		got, err := ParseSide(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := ParseSide("red")
	assert.ErrorIs(t, err, cerrors.ErrInvalidConfig)
}

func TestParseOutputFormat(t *testing.T) {
	for input, want := range map[string]OutputFormat{
		"": TextFormat, "text": TextFormat, "JSON": JSONFormat, "yml": YAMLFormat, "yaml": YAMLFormat,
	} {
		got, err := ParseOutputFormat(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}
	for _, f := range []OutputFormat{TextFormat, JSONFormat, YAMLFormat} {
		got, err := ParseOutputFormat(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	_, err := ParseOutputFormat("xml")
	assert.ErrorIs(t, err, cerrors.ErrInvalidConfig)
}

func TestParseTemplate(t *testing.T) {
	rows := make([][]int, 8)
	for y := range rows {
		rows[y] = append([]int(nil), checkers.InitialTemplate[y][:]...)
	}
	got, err := ParseTemplate(rows)
	require.NoError(t, err)
	assert.Equal(t, checkers.InitialTemplate, got)

	_, err = ParseTemplate(rows[:7])
	assert.ErrorIs(t, err, cerrors.ErrInvalidTemplate)

	rows[3] = []int{0, 0}
	_, err = ParseTemplate(rows)
	assert.ErrorIs(t, err, cerrors.ErrInvalidTemplate)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil, "")
	require.NoError(t, err)
	assert.Equal(t, NewConfig(), cfg)
}

func TestLoad_Flags(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{
		"--notation=coordinates", "--collapsed=false", "--format", "json",
		"--side=white", "--depth=2", "--workers=5", "--distinct", "--capacity=64",
		"--log-level=debug",
	}))

	cfg, err := Load(fs, "")
	require.NoError(t, err)

	assert.Equal(t, checkers.CoordinateNotation, cfg.Output.Notation)
	assert.False(t, cfg.Output.Collapsed)
	assert.Equal(t, JSONFormat, cfg.Output.Format)
	assert.Equal(t, checkers.White, cfg.Side)
	assert.Equal(t, 2, cfg.Perft.Depth)
	assert.Equal(t, 5, cfg.Perft.Workers)
	assert.True(t, cfg.Duplicate.CountDistinct)
	assert.Equal(t, 64, cfg.Duplicate.Capacity)
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
}

func TestLoad_UnchangedFlagsKeepDefaults(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(nil))

	cfg, err := Load(fs, "")
	require.NoError(t, err)
	assert.Equal(t, NewConfig(), cfg)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("CHECKERS_DEPTH", "7")
	t.Setenv("CHECKERS_LOG_LEVEL", "warn")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--log-level=error"}))

	cfg, err := Load(fs, "")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Perft.Depth)
	assert.Equal(t, zerolog.ErrorLevel, cfg.LogLevel, "flags override environment")
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checkers.yaml")
	content := `format: yaml
side: white
depth: 3
start:
  - [0, 0, 0, 0, 0, 0, 0, 0]
  - [0, 0, 0, 0, 0, 0, 0, 0]
  - [0, 0, 0, 0, 0, 0, 0, 0]
  - [0, 0, 0, 2, 0, 0, 0, 0]
  - [0, 0, 0, 0, 0, 0, 0, 0]
  - [0, 0, 1, 0, 0, 0, 0, 0]
  - [0, 0, 0, 0, 0, 0, 0, 0]
  - [0, 0, 0, 0, 0, 0, 0, 0]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(nil, path)
	require.NoError(t, err)

	assert.Equal(t, YAMLFormat, cfg.Output.Format)
	assert.Equal(t, checkers.White, cfg.Side)
	assert.Equal(t, 3, cfg.Perft.Depth)
	require.NotNil(t, cfg.Start)

	b, err := cfg.StartBoard()
	require.NoError(t, err)
	assert.Equal(t, 1, b.Count(checkers.White))
	assert.Equal(t, 1, b.Count(checkers.Black))
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		return path
	}

	tests := []struct {
		name string
		path string
		want error
	}{
		{"missing file", filepath.Join(dir, "missing.yaml"), cerrors.ErrInvalidConfig},
		{"bad notation", write("notation.yaml", "notation: algebraic\n"), cerrors.ErrInvalidConfig},
		{"bad side", write("side.yaml", "side: red\n"), cerrors.ErrInvalidConfig},
		{"bad format", write("format.yaml", "format: xml\n"), cerrors.ErrInvalidConfig},
		{"bad level", write("level.yaml", "log-level: loud\n"), cerrors.ErrInvalidConfig},
		{"bad depth", write("depth.yaml", "depth: -3\n"), cerrors.ErrInvalidConfig},
		{"short template", write("start.yaml", "start:\n  - [0, 1]\n"), cerrors.ErrInvalidTemplate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(nil, tt.path)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v, want %v", err, tt.want)
		})
	}
}
