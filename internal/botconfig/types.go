package botconfig

import (
	"errors"
	"fmt"
)

// Placeholders double as the "not configured" sentinel for Telegram credentials.
const (
	PlaceholderBotToken = "YOUR_BOT_TOKEN"
	PlaceholderChatID   = "YOUR_CHAT_ID"
)

var ErrUnknownRiskLevel = errors.New("unknown risk level")

type RiskLevel string

const (
	RiskLevelConservative RiskLevel = "conservative"
	RiskLevelModerate     RiskLevel = "moderate"
	RiskLevelAggressive   RiskLevel = "aggressive"
	RiskLevelCustom       RiskLevel = "custom"
)

func (l RiskLevel) S() string { return string(l) }

// ParseRiskLevel accepts exactly one of the known risk level values.
func ParseRiskLevel(s string) (RiskLevel, error) {
	switch l := RiskLevel(s); l {
	case RiskLevelConservative, RiskLevelModerate, RiskLevelAggressive, RiskLevelCustom:
		return l, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRiskLevel, s)
}

type TradingParameters struct {
	BaseStake        float64 `json:"base_stake"`
	ContractType     string  `json:"contract_type"`
	ContractDuration int     `json:"contract_duration"`
	DurationUnit     string  `json:"duration_unit"` // ticks, seconds, minutes or t, s, m.
	TradingAsset     string  `json:"trading_asset"`
	TradeDirection   string  `json:"trade_direction"` // random, rise, fall, call, put.
}

type MartingaleParameters struct {
	Enabled    bool    `json:"enabled"`
	Multiplier float64 `json:"multiplier"`
	MaxSteps   int     `json:"max_steps"`
	ResetOnWin bool    `json:"reset_on_win"`
}

type RiskLimits struct {
	TakeProfit           float64 `json:"take_profit"`
	StopLoss             float64 `json:"stop_loss"`
	MaxConsecutiveLosses int     `json:"max_consecutive_losses"`
	MinBalanceThreshold  float64 `json:"min_balance_threshold"`
	MaxDailyTrades       int     `json:"max_daily_trades"` // 0 means unlimited.
}

type NotificationSettings struct {
	Enabled            bool   `json:"enabled"`
	BotToken           string `json:"bot_token"`
	ChatID             string `json:"chat_id"`
	NotifyOnWin        bool   `json:"notify_on_win"`
	NotifyOnLoss       bool   `json:"notify_on_loss"`
	NotifyOnStart      bool   `json:"notify_on_start"`
	NotifyOnStop       bool   `json:"notify_on_stop"`
	NotifyOnTakeProfit bool   `json:"notify_on_take_profit"`
	NotifyOnStopLoss   bool   `json:"notify_on_stop_loss"`
	SendSessionSummary bool   `json:"send_session_summary"`
}

// BotConfiguration is the complete bot setup. It is a plain value:
// copies never share state, so edits go through SetConfig or ApplyPreset.
type BotConfiguration struct {
	Trading       TradingParameters    `json:"trading"`
	Martingale    MartingaleParameters `json:"martingale"`
	Risk          RiskLimits           `json:"risk_management"`
	Notifications NotificationSettings `json:"telegram"`
	RiskLevel     RiskLevel            `json:"risk_level"`
}

func DefaultTrading() TradingParameters {
	return TradingParameters{
		BaseStake:        1.00,
		ContractType:     "rise_fall",
		ContractDuration: 1,
		DurationUnit:     "ticks",
		TradingAsset:     "R_100",
		TradeDirection:   "random",
	}
}

func DefaultMartingale() MartingaleParameters {
	return MartingaleParameters{
		Enabled:    true,
		Multiplier: 2.0,
		MaxSteps:   5,
		ResetOnWin: true,
	}
}

func DefaultRisk() RiskLimits {
	return RiskLimits{
		TakeProfit:           50.00,
		StopLoss:             25.00,
		MaxConsecutiveLosses: 5,
		MinBalanceThreshold:  10.00,
		MaxDailyTrades:       0,
	}
}

func DefaultNotifications() NotificationSettings {
	return NotificationSettings{
		Enabled:            false,
		BotToken:           PlaceholderBotToken,
		ChatID:             PlaceholderChatID,
		NotifyOnWin:        true,
		NotifyOnLoss:       true,
		NotifyOnStart:      true,
		NotifyOnStop:       true,
		NotifyOnTakeProfit: true,
		NotifyOnStopLoss:   true,
		SendSessionSummary: true,
	}
}

// Default returns the configuration a fresh bot starts with.
func Default() BotConfiguration {
	return BotConfiguration{
		Trading:       DefaultTrading(),
		Martingale:    DefaultMartingale(),
		Risk:          DefaultRisk(),
		Notifications: DefaultNotifications(),
		RiskLevel:     RiskLevelModerate,
	}
}

// FromPreset returns the default configuration with the preset of level applied.
func FromPreset(level RiskLevel) BotConfiguration {
	return ApplyPreset(Default(), level)
}
