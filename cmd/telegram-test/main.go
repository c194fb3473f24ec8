package main

import (
	"context"
	"flag"
	stdlog "log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Antonboom/deriv-rise-fall-bot/internal/botconfig"
	"github.com/Antonboom/deriv-rise-fall-bot/internal/clients/telegram"
	"github.com/Antonboom/deriv-rise-fall-bot/internal/config"
	"github.com/Antonboom/deriv-rise-fall-bot/internal/services/notifier"
)

var (
	configPath = flag.String("config", "configs/config.toml", "Path to config file")
	message    = flag.String("message", "", "Send this message after the connection test")
	parseMode  = flag.String("parse-mode", string(telegram.ParseModeHTML), "Parse mode of -message: HTML or Markdown")
	samples    = flag.Bool("samples", false, "Send a sample of every notification after the connection test")
)

func init() {
	flag.Parse()
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file")
	}

	cfg, err := config.Parse(*configPath)
	mustNil(err)
	mustNil(validator.New().Struct(cfg))

	lvl, err := zerolog.ParseLevel(strings.ToLower(cfg.Log.Level))
	mustNil(err)
	zerolog.SetGlobalLevel(lvl)

	var metricsDone <-chan error
	if cfg.Metrics.Enabled {
		metricsDone = runMetrics(ctx, cfg.Metrics.Addr)
	}

	botCfg := botconfig.NewManager(cfg.Bot.ConfigPath).Load("")

	// Credentials from the app config win over the bot config ones.
	token, chatID := cfg.Telegram.Token, cfg.Telegram.ChatID
	if s := botCfg.Notifications; s.Enabled {
		if token == "" {
			token = s.BotToken
		}
		if chatID == "" {
			chatID = s.ChatID
		}
	}

	n := notifier.New(token, chatID,
		notifier.WithBaseURL(cfg.Telegram.APIURL),
		notifier.WithTimeout(cfg.Telegram.Timeout.Duration),
		notifier.WithToggles(botCfg.Notifications),
	)

	if !n.TestConnection(ctx) {
		cancel()
		waitMetrics(metricsDone)
		os.Exit(1)
	}

	if *message != "" {
		mode := telegram.ParseMode(*parseMode)
		if mode != telegram.ParseModeHTML && mode != telegram.ParseModeMarkdown {
			log.Fatal().Str("parse_mode", *parseMode).Msg("unknown parse mode")
		}
		report("message", n.SendMessage(ctx, *message, notifier.WithParseMode(mode)))
	}
	if *samples {
		sendSamples(ctx, n, botCfg)
	}

	if metricsDone != nil {
		log.Info().Str("addr", cfg.Metrics.Addr).Msg("serve metrics until interrupted")
		select {
		case <-ctx.Done():
		case <-metricsDone:
		}
	}
	cancel()
	waitMetrics(metricsDone)
}

func sendSamples(ctx context.Context, n *notifier.Notifier, botCfg botconfig.BotConfiguration) {
	const initialBalance = 1000.0

	base := botCfg.Trading.BaseStake
	stats := notifier.SessionStats{
		TotalTrades:  2,
		Wins:         1,
		Losses:       1,
		TotalProfit:  base*0.95 - base,
		Balance:      initialBalance + base*0.95 - base,
		CurrentStake: base,
	}

	report("start", n.SendBotStarted(ctx, initialBalance, notifier.StartSettingsFrom(botCfg)))
	report("win", n.SendWinAlert(ctx, base*0.95, base*0.95, initialBalance+base*0.95, 1))
	report("loss", n.SendLossAlert(ctx, -base, stats.TotalProfit, stats.Balance,
		base*botCfg.Martingale.Multiplier, 1, 2))
	report("session_summary", n.SendSessionSummary(ctx, stats))
	report("stop", n.SendBotStopped(ctx, "Manual stop", stats.Balance, stats.TotalProfit, stats))
}

func report(event string, resp telegram.Response) {
	if resp.OK() {
		log.Info().Str("event", event).Msg("sent")
		return
	}
	log.Warn().Str("event", event).Str("reason", resp.Reason()).Msg("not sent")
}

func mustNil(err error) {
	if err != nil {
		stdlog.Panic(err)
	}
}
