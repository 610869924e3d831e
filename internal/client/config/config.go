// Package config loads runtime settings for the LanXpert CLI.
//
// Sources are applied in order, later ones overriding earlier ones:
// defaults -> environment (optionally seeded from a .env file) -> JSON file
// (-c/-config) -> command-line flags.
package config

import "time"

// Config holds runtime settings for the LanXpert CLI.
//
// Polling intervals mirror the product defaults: open-chat messages every
// 3s, the chat list every 5s, notifications every 60s. RequestTimeout bounds
// every HTTP call issued by the API client.
type Config struct {
	BaseURL                  string
	RequestTimeout           time.Duration
	MessagePollInterval      time.Duration
	ChatListPollInterval     time.Duration
	NotificationPollInterval time.Duration
	LocalDBPath              string
	LogLevel                 string
}

// LoadDefaults populates c with the stock settings.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:8000/api/v1"
	c.RequestTimeout = 10 * time.Second
	c.MessagePollInterval = 3 * time.Second
	c.ChatListPollInterval = 5 * time.Second
	c.NotificationPollInterval = 60 * time.Second
	c.LocalDBPath = "lanxpert.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if given) and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
