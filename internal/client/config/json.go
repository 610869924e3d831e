package config

import (
	"encoding/json"
	"os"

	"github.com/lanxpert/lanxpert-cli/internal/flagx"
	"github.com/lanxpert/lanxpert-cli/internal/timex"
)

// JSONConfig is a DTO used exclusively for JSON unmarshalling. Intervals can
// be given either as strings like "3s" or as integer nanoseconds
// (timex.Duration handles both). Zero values leave the Config untouched.
type JSONConfig struct {
	BaseURL                  string         `json:"base_url"`
	RequestTimeout           timex.Duration `json:"request_timeout"`
	MessagePollInterval      timex.Duration `json:"message_poll_interval"`
	ChatListPollInterval     timex.Duration `json:"chat_list_poll_interval"`
	NotificationPollInterval timex.Duration `json:"notification_poll_interval"`
	LocalDBPath              string         `json:"local_db_path"`
	LogLevel                 string         `json:"log_level"`
}

// parseJSON overlays Config with values from the file named by -c/-config.
// No file means no overlay. Read or unmarshal errors panic; the loader runs
// before any state exists worth cleaning up.
func parseJSON(cfg *Config) {
	path := flagx.JSONConfigFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JSONConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.MessagePollInterval.Duration != 0 {
		cfg.MessagePollInterval = jc.MessagePollInterval.Duration
	}
	if jc.ChatListPollInterval.Duration != 0 {
		cfg.ChatListPollInterval = jc.ChatListPollInterval.Duration
	}
	if jc.NotificationPollInterval.Duration != 0 {
		cfg.NotificationPollInterval = jc.NotificationPollInterval.Duration
	}
	if jc.LocalDBPath != "" {
		cfg.LocalDBPath = jc.LocalDBPath
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
