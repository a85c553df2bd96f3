package config

// Default configuration values.
const (
	DefaultDialect     = "rust"
	DefaultSpecRoot    = "problem-specifications"
	DefaultAttribution = "Generated by casegen $TOOL_VERSION$ from the $EXERCISE$ canonical data. Regenerate instead of editing by hand."
)

// Default returns the configuration used when no .casegen.yaml exists.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults fills in default values for unset configuration fields.
func applyDefaults(cfg *Config) {
	if cfg.Dialect == "" {
		cfg.Dialect = DefaultDialect
	}
	if cfg.SpecRoot == "" {
		cfg.SpecRoot = DefaultSpecRoot
	}
	if cfg.Attribution == "" {
		cfg.Attribution = DefaultAttribution
	}
}
