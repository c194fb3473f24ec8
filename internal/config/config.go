package config

import "time"

type Config struct {
	Log      LogConfig      `toml:"log"`
	Bot      BotConfig      `toml:"bot"`
	Telegram TelegramConfig `toml:"telegram"`
	Metrics  MetricsConfig  `toml:"metrics"`
}

type LogConfig struct {
	Level string `toml:"level" validate:"required,oneof=trace debug info warn error"`
}

type BotConfig struct {
	ConfigPath string `toml:"config_path" validate:"required"`
}

// TelegramConfig credentials are optional: empty values are taken from the environment.
type TelegramConfig struct {
	APIURL  string   `toml:"api_url" validate:"required,url"`
	Timeout Duration `toml:"timeout"`
	Token   string   `toml:"token"`
	ChatID  string   `toml:"chat_id"`
}

type MetricsConfig struct {
	Enabled bool   `toml:"enabled"`
	Addr    string `toml:"addr" validate:"required_if=Enabled true"`
}

type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) (err error) {
	d.Duration, err = time.ParseDuration(string(text))
	return
}
