package config

import (
	"github.com/rs/zerolog"

	"github.com/lgbarn/checkers-go/internal/checkers"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithNotation sets the notation style and collapsed flag.
func (b *ConfigBuilder) WithNotation(style checkers.NotationStyle, collapsed bool) *ConfigBuilder {
	b.cfg.Output.Notation = style
	b.cfg.Output.Collapsed = collapsed
	return b
}

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithSide sets the colour to move first.
func (b *ConfigBuilder) WithSide(side checkers.Colour) *ConfigBuilder {
	b.cfg.Side = side
	return b
}

// WithDepth sets the perft depth.
func (b *ConfigBuilder) WithDepth(depth int) *ConfigBuilder {
	b.cfg.Perft.Depth = depth
	return b
}

// WithWorkers sets the number of search goroutines.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Perft.Workers = n
	return b
}

// WithDistinct enables distinct-position counting.
func (b *ConfigBuilder) WithDistinct(enabled bool, capacity int) *ConfigBuilder {
	b.cfg.Duplicate.CountDistinct = enabled
	b.cfg.Duplicate.Capacity = capacity
	return b
}

// WithLogLevel sets the console log level.
func (b *ConfigBuilder) WithLogLevel(level zerolog.Level) *ConfigBuilder {
	b.cfg.LogLevel = level
	return b
}

// WithStart sets the initial layout.
func (b *ConfigBuilder) WithStart(t checkers.Template) *ConfigBuilder {
	b.cfg.Start = &t
	return b
}
