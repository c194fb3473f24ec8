package config

import (
	"time"

	"github.com/BurntSushi/toml"
)

func Default() Config {
	return Config{
		Log: LogConfig{Level: "info"},
		Bot: BotConfig{ConfigPath: "bot_config.json"},
		Telegram: TelegramConfig{
			APIURL:  "https://api.telegram.org",
			Timeout: Duration{10 * time.Second},
		},
	}
}

// Parse decodes filename over the defaults.
func Parse(filename string) (cfg Config, err error) {
	cfg = Default()
	_, err = toml.DecodeFile(filename, &cfg)
	return
}
