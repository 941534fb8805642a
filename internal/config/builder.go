package config

// ConfigBuilder provides a fluent API for overriding Config values, used
// to layer command-line flags over the file.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// From starts a builder from an existing config, which it modifies.
func From(cfg *Config) *ConfigBuilder {
	return &ConfigBuilder{cfg: cfg}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithPieces sets the glyph set.
func (b *ConfigBuilder) WithPieces(pieces string) *ConfigBuilder {
	b.cfg.Render.Pieces = pieces
	return b
}

// WithColour enables ANSI square colours.
func (b *ConfigBuilder) WithColour(enabled bool) *ConfigBuilder {
	b.cfg.Render.Colour = enabled
	return b
}

// WithFlipForBlack turns the board for Black's moves.
func (b *ConfigBuilder) WithFlipForBlack(enabled bool) *ConfigBuilder {
	b.cfg.Render.FlipForBlack = enabled
	return b
}

// WithLogLevel sets the log level name.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}

// WithLogFile sets the log destination.
func (b *ConfigBuilder) WithLogFile(path string) *ConfigBuilder {
	b.cfg.Log.File = path
	return b
}

// WithAutoQueen enables automatic queen promotion.
func (b *ConfigBuilder) WithAutoQueen(enabled bool) *ConfigBuilder {
	b.cfg.Game.AutoQueen = enabled
	return b
}

// WithOpening sets the moves played before the first prompt.
func (b *ConfigBuilder) WithOpening(moves string) *ConfigBuilder {
	b.cfg.Game.Opening = moves
	return b
}
