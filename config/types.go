package config

// Config represents the complete configuration structure
type Config struct {
	Tomato  TomatoConfig  `mapstructure:"tomato"`
	Filter  FilterConfig  `mapstructure:"filter"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// TomatoConfig holds Rotten Tomatoes API settings
type TomatoConfig struct {
	APIKey    string `mapstructure:"api_key"`
	PageLimit int    `mapstructure:"page_limit"`
	Country   string `mapstructure:"country"`
	// RateLimit caps outgoing requests per second; zero disables pacing.
	RateLimit int `mapstructure:"rate_limit"`
}

// FilterConfig contains filter settings for the CLI
type FilterConfig struct {
	// Presets maps preset names to filter expressions.
	Presets map[string]string `mapstructure:"presets"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
