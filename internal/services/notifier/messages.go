package notifier

import (
	"context"
	"fmt"
	"html"
	"math"
	"strings"

	"github.com/Antonboom/deriv-rise-fall-bot/internal/botconfig"
	"github.com/Antonboom/deriv-rise-fall-bot/internal/clients/telegram"
)

const (
	clockLayout    = "15:04:05"
	dateTimeLayout = "2006-01-02 15:04:05"
)

// SessionStats is a snapshot of the trading session counters.
type SessionStats struct {
	TotalTrades  int
	Wins         int
	Losses       int
	TotalProfit  float64
	Balance      float64
	CurrentStake float64
}

// WinRate is the percentage of winning trades, 0 without trades.
func (s SessionStats) WinRate() float64 {
	if s.TotalTrades <= 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.TotalTrades) * 100
}

// StartSettings are the parameters announced when the bot starts.
type StartSettings struct {
	BaseStake  float64
	TakeProfit float64
	StopLoss   float64
	Multiplier float64
	MaxSteps   int
}

func DefaultStartSettings() StartSettings {
	return StartSettings{
		BaseStake:  1,
		TakeProfit: 50,
		StopLoss:   25,
		Multiplier: 2,
		MaxSteps:   5,
	}
}

func StartSettingsFrom(cfg botconfig.BotConfiguration) StartSettings {
	return StartSettings{
		BaseStake:  cfg.Trading.BaseStake,
		TakeProfit: cfg.Risk.TakeProfit,
		StopLoss:   cfg.Risk.StopLoss,
		Multiplier: cfg.Martingale.Multiplier,
		MaxSteps:   cfg.Martingale.MaxSteps,
	}
}

func (n *Notifier) clock() string    { return n.now().Format(clockLayout) }
func (n *Notifier) dateTime() string { return n.now().Format(dateTimeLayout) }

func (n *Notifier) SendWinAlert(ctx context.Context, profit, totalProfit, balance float64, tradeNumber int) telegram.Response {
	msg := fmt.Sprintf(`
✅ <b>WIN TRADE #%d</b>

💰 Profit: <code>+$%.2f</code>
📊 Total P/L: <code>$%.2f</code>
💵 Balance: <code>$%.2f</code>
🕐 Time: %s
`, tradeNumber, profit, totalProfit, balance, n.clock())

	return n.notify(ctx, eventWin, msg)
}

func (n *Notifier) SendLossAlert(
	ctx context.Context,
	loss, totalProfit, balance, nextStake float64,
	martingaleStep, tradeNumber int,
) telegram.Response {
	msg := fmt.Sprintf(`
❌ <b>LOSS TRADE #%d</b>

💸 Loss: <code>-$%.2f</code>
📊 Total P/L: <code>$%.2f</code>
💵 Balance: <code>$%.2f</code>
📈 Next Stake: <code>$%.2f</code>
🔄 Martingale Step: %d
🕐 Time: %s
`, tradeNumber, math.Abs(loss), totalProfit, balance, nextStake, martingaleStep, n.clock())

	return n.notify(ctx, eventLoss, msg)
}

func (n *Notifier) SendBotStarted(ctx context.Context, initialBalance float64, s StartSettings) telegram.Response {
	msg := fmt.Sprintf(`
🤖 <b>BOT STARTED</b>

📍 Rise/Fall Bot Pro v1.0
💵 Initial Balance: <code>$%.2f</code>
💰 Base Stake: <code>$%.2f</code>
🎯 Take Profit: <code>$%.2f</code>
🛑 Stop Loss: <code>$%.2f</code>
📊 Martingale: %sx (Max %d steps)
🕐 Time: %s

<i>Good luck! 🍀</i>
`, initialBalance, s.BaseStake, s.TakeProfit, s.StopLoss,
		botconfig.FormatNumber(s.Multiplier), s.MaxSteps, n.dateTime())

	return n.notify(ctx, eventStart, msg)
}

func (n *Notifier) SendBotStopped(
	ctx context.Context,
	reason string,
	finalBalance, totalProfit float64,
	stats SessionStats,
) telegram.Response {
	msg := fmt.Sprintf(`
%s <b>BOT STOPPED</b>

📍 Reason: <code>%s</code>

📊 <b>SESSION SUMMARY</b>
━━━━━━━━━━━━━━━━━━
📈 Total Trades: %d
✅ Wins: %d
❌ Losses: %d
📊 Win Rate: %.1f%%
━━━━━━━━━━━━━━━━━━
💵 Final Balance: <code>$%.2f</code>
💰 Net P/L: <code>$%+.2f</code>
🕐 Time: %s
`, stopEmoji(reason), html.EscapeString(reason),
		stats.TotalTrades, stats.Wins, stats.Losses, stats.WinRate(),
		finalBalance, totalProfit, n.dateTime())

	return n.notify(ctx, eventStop, msg)
}

func stopEmoji(reason string) string {
	r := strings.ToLower(reason)
	switch {
	case strings.Contains(r, "profit"):
		return "🎯"
	case strings.Contains(r, "loss"):
		return "🛑"
	}
	return "⚠️"
}

func (n *Notifier) SendTakeProfitReached(
	ctx context.Context,
	target, actual, balance float64,
	stats SessionStats,
) telegram.Response {
	msg := fmt.Sprintf(`
🎯 <b>TAKE PROFIT REACHED!</b>

🏆 Target: <code>$%.2f</code>
💰 Achieved: <code>$%.2f</code>
💵 Balance: <code>$%.2f</code>
📈 Total Trades: %d
🕐 Time: %s

<i>Congratulations! 🎉</i>
`, target, actual, balance, stats.TotalTrades, n.clock())

	return n.notify(ctx, eventTakeProfit, msg)
}

func (n *Notifier) SendStopLossTriggered(
	ctx context.Context,
	limit, actual, balance float64,
	stats SessionStats,
) telegram.Response {
	msg := fmt.Sprintf(`
🛑 <b>STOP LOSS TRIGGERED!</b>

⚠️ Limit: <code>-$%.2f</code>
💸 Actual Loss: <code>$%.2f</code>
💵 Balance: <code>$%.2f</code>
📉 Total Trades: %d
🕐 Time: %s

<i>Better luck next time! 💪</i>
`, limit, actual, balance, stats.TotalTrades, n.clock())

	return n.notify(ctx, eventStopLoss, msg)
}

func (n *Notifier) SendMaxLossesReached(ctx context.Context, consecutive, maxAllowed int, balance float64) telegram.Response {
	msg := fmt.Sprintf(`
⚠️ <b>MAX CONSECUTIVE LOSSES!</b>

🔴 Consecutive Losses: %d
📊 Max Allowed: %d
💵 Balance: <code>$%.2f</code>
🕐 Time: %s

<i>Bot stopped for safety.</i>
`, consecutive, maxAllowed, balance, n.clock())

	return n.notify(ctx, eventMaxLosses, msg)
}

func (n *Notifier) SendLowBalanceAlert(ctx context.Context, current, minimum float64) telegram.Response {
	msg := fmt.Sprintf(`
💰 <b>LOW BALANCE ALERT!</b>

💵 Current: <code>$%.2f</code>
⚠️ Minimum: <code>$%.2f</code>
🕐 Time: %s

<i>Bot stopped - insufficient balance.</i>
`, current, minimum, n.clock())

	return n.notify(ctx, eventLowBalance, msg)
}

func (n *Notifier) SendSessionSummary(ctx context.Context, stats SessionStats) telegram.Response {
	profitEmoji := "📈"
	if stats.TotalProfit < 0 {
		profitEmoji = "📉"
	}

	msg := fmt.Sprintf(`
📊 <b>SESSION UPDATE</b>

%s P/L: <code>$%+.2f</code>
💵 Balance: <code>$%.2f</code>

📈 Trades: %d
✅ Wins: %d | ❌ Losses: %d
📊 Win Rate: %.1f%%
🔄 Current Stake: <code>$%.2f</code>

🕐 %s
`, profitEmoji, stats.TotalProfit, stats.Balance,
		stats.TotalTrades, stats.Wins, stats.Losses, stats.WinRate(),
		stats.CurrentStake, n.clock())

	return n.notify(ctx, eventSummary, msg)
}

func (n *Notifier) SendErrorAlert(ctx context.Context, errorType, details string) telegram.Response {
	msg := fmt.Sprintf(`
🚨 <b>ERROR ALERT</b>

❌ Type: <code>%s</code>
📝 Details: %s
🕐 Time: %s

<i>Please check the bot.</i>
`, html.EscapeString(errorType), html.EscapeString(details), n.clock())

	return n.notify(ctx, eventErrorReport, msg)
}
