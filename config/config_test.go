package config

import (
	"testing"
)

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Tomato: TomatoConfig{
				APIKey:    "valid-api-key",
				PageLimit: 30,
			},
			Logging: LoggingConfig{
				Level:  "info",
				Format: "console",
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "missing api key",
			mutate:  func(c *Config) { c.Tomato.APIKey = "" },
			wantErr: true,
		},
		{
			name:    "placeholder api key",
			mutate:  func(c *Config) { c.Tomato.APIKey = "your-api-key-here" },
			wantErr: true,
		},
		{
			name:    "zero page limit",
			mutate:  func(c *Config) { c.Tomato.PageLimit = 0 },
			wantErr: true,
		},
		{
			name:    "negative page limit",
			mutate:  func(c *Config) { c.Tomato.PageLimit = -5 },
			wantErr: true,
		},
		{
			name:    "invalid logging level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: true,
		},
		{
			name:    "invalid logging format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
