package main

import (
	"encoding/json"
	"flag"
	"fmt"
	stdlog "log"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Antonboom/deriv-rise-fall-bot/internal/botconfig"
	"github.com/Antonboom/deriv-rise-fall-bot/internal/clients/telegram"
	"github.com/Antonboom/deriv-rise-fall-bot/internal/config"
)

var (
	configPath    = flag.String("config", "configs/config.toml", "Path to config file")
	botConfigPath = flag.String("bot-config", "", "Path to bot config JSON, overrides [bot] config_path")
	presetName    = flag.String("preset", "", "Apply risk preset: conservative, moderate or aggressive")
	listPresets   = flag.Bool("presets", false, "Print preset descriptions and exit")
	progression   = flag.Bool("progression", false, "Print the stake progression of a losing series")
	export        = flag.Bool("export", false, "Print the parameters for the XML bot as JSON")
	telegramURL   = flag.String("telegram-url", "", "Print a sendMessage URL with this text for the XML bot")
	save          = flag.Bool("save", false, "Save the resulting bot config")
)

func init() {
	flag.Parse()
}

func main() {
	if *listPresets {
		for _, l := range botconfig.RiskLevels() {
			fmt.Print(botconfig.PresetDescription(l))
		}
		return
	}

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file")
	}

	cfg, err := config.Parse(*configPath)
	mustNil(err)
	mustNil(validator.New().Struct(cfg))

	lvl, err := zerolog.ParseLevel(strings.ToLower(cfg.Log.Level))
	mustNil(err)
	zerolog.SetGlobalLevel(lvl)

	path := cfg.Bot.ConfigPath
	if *botConfigPath != "" {
		path = *botConfigPath
	}

	m := botconfig.NewManager(path)
	m.Load("")

	if *presetName != "" {
		level, err := botconfig.ParseRiskLevel(strings.ToLower(*presetName))
		mustNil(err)
		m.ApplyPreset(level)
		log.Info().Str("risk_level", level.S()).Msg("preset applied")
	}

	valid, violations := m.Validate()
	for _, v := range violations {
		log.Warn().Str("violation", v).Msg("invalid bot config")
	}

	fmt.Print(m.Summary())

	if *progression {
		printProgression(m.Config())
	}

	if *export {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		mustNil(enc.Encode(m.ExportForXML()))
	}

	if *telegramURL != "" {
		n := m.Config().Notifications
		fmt.Println(telegram.BuildSendMessageURL(telegram.Token(n.BotToken), telegram.ChatID(n.ChatID), *telegramURL))
	}

	if *save {
		if !valid {
			log.Error().Msg("refuse to save invalid bot config")
			os.Exit(1)
		}
		if !m.Save("") {
			os.Exit(1)
		}
	}

	if !valid {
		os.Exit(1)
	}
}

func printProgression(cfg botconfig.BotConfiguration) {
	fmt.Println("STAKE PROGRESSION")
	for i, stake := range botconfig.StakeProgression(cfg) {
		fmt.Printf("  step %d: $%s\n", i+1, botconfig.RoundStake(stake).StringFixed(2))
	}
	fmt.Printf("  risk/reward: %.2f\n", botconfig.RiskRewardRatio(cfg))
	fmt.Printf("  breakeven win rate at 95%% payout: %.1f%%\n", botconfig.BreakevenWinRate(0.95)*100)
}

func mustNil(err error) {
	if err != nil {
		stdlog.Panic(err)
	}
}
