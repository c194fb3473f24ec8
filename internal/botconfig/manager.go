package botconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Manager holds one bot configuration and moves it between memory and a JSON file.
// It is meant for a single caller; concurrent use must be serialized by the caller.
type Manager struct {
	path   string
	cfg    BotConfiguration
	logger zerolog.Logger
}

type ManagerOption func(m *Manager)

func WithLogger(l zerolog.Logger) ManagerOption {
	return func(m *Manager) {
		m.logger = l
	}
}

// NewManager returns a manager holding the default configuration.
// path is used by Load and Save when they are called with an empty path.
func NewManager(path string, opts ...ManagerOption) *Manager {
	m := &Manager{
		path:   path,
		cfg:    Default(),
		logger: log.With().Str("component", "config-manager").Logger(),
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

func (m *Manager) Path() string { return m.path }

func (m *Manager) Config() BotConfiguration { return m.cfg }

func (m *Manager) SetConfig(cfg BotConfiguration) { m.cfg = cfg }

func (m *Manager) resolve(path string) string {
	if path != "" {
		return path
	}
	return m.path
}

// Load reads the configuration from path (or the manager path) and makes it current.
// It never fails: a missing file keeps the current configuration silently,
// an unreadable or malformed one keeps it and logs the reason.
func (m *Manager) Load(path string) BotConfiguration {
	path = m.resolve(path)
	if path == "" {
		return m.cfg
	}

	logger := m.logger.With().Str("path", path).Logger()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Debug().Msg("config file not found, keep current config")
		return m.cfg
	}
	if err != nil {
		collectOperation(operationLoad, resultFailed)
		logger.Err(err).Msg("error loading config")
		return m.cfg
	}

	cfg, err := Unmarshal(data)
	if err != nil {
		collectOperation(operationLoad, resultFailed)
		logger.Err(err).Msg("error loading config")
		return m.cfg
	}

	collectOperation(operationLoad, resultOK)
	logger.Info().Str("risk_level", cfg.RiskLevel.S()).Msg("config loaded")

	m.cfg = cfg
	return m.cfg
}

// Save writes the current configuration to path (or the manager path).
// It reports false when there is no path or the write fails.
func (m *Manager) Save(path string) bool {
	path = m.resolve(path)
	if path == "" {
		m.logger.Warn().Msg("no config path to save to")
		return false
	}

	logger := m.logger.With().Str("path", path).Logger()

	if err := m.writeFile(path); err != nil {
		collectOperation(operationSave, resultFailed)
		logger.Err(err).Msg("error saving config")
		return false
	}

	collectOperation(operationSave, resultOK)
	logger.Info().Msg("config saved")
	return true
}

func (m *Manager) writeFile(path string) error {
	data, err := Marshal(m.cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (m *Manager) Validate() (bool, []string) {
	return ValidateAll(m.cfg)
}

func (m *Manager) ApplyPreset(level RiskLevel) {
	m.cfg = ApplyPreset(m.cfg, level)
}

// Summary renders the current configuration and its risk analysis as a text box.
func (m *Manager) Summary() string {
	c := m.cfg
	maxLoss := CalculateMaxLoss(c)
	recBalance := RecommendedBalance(c, DefaultSafetyFactor)

	const (
		top    = "╔══════════════════════════════════════════════════════╗"
		middle = "╠══════════════════════════════════════════════════════╣"
		bottom = "╚══════════════════════════════════════════════════════╝"
	)

	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, "║  "+format+"\n", args...)
	}

	b.WriteString("\n" + top + "\n")
	b.WriteString("║         DERIV RISE/FALL BOT PRO - CONFIG             ║\n")
	b.WriteString(middle + "\n")

	line("TRADING SETTINGS")
	line("─────────────────")
	line("Base Stake:      $%.2f", c.Trading.BaseStake)
	line("Asset:           %s", c.Trading.TradingAsset)
	line("Duration:        %d %s", c.Trading.ContractDuration, c.Trading.DurationUnit)
	line("Direction:       %s", c.Trading.TradeDirection)
	b.WriteString(middle + "\n")

	line("MARTINGALE SETTINGS")
	line("───────────────────")
	line("Enabled:         %s", yesNo(c.Martingale.Enabled))
	line("Multiplier:      %sx", FormatNumber(c.Martingale.Multiplier))
	line("Max Steps:       %d", c.Martingale.MaxSteps)
	b.WriteString(middle + "\n")

	line("RISK MANAGEMENT")
	line("────────────────")
	line("Take Profit:     $%.2f", c.Risk.TakeProfit)
	line("Stop Loss:       $%.2f", c.Risk.StopLoss)
	line("Max Consec Loss: %d", c.Risk.MaxConsecutiveLosses)
	line("Min Balance:     $%.2f", c.Risk.MinBalanceThreshold)
	b.WriteString(middle + "\n")

	line("RISK ANALYSIS")
	line("─────────────")
	line("Max Possible Loss: $%.2f", maxLoss)
	line("Recommended Bal:   $%.2f", recBalance)
	line("Risk Level:        %s", strings.ToUpper(c.RiskLevel.S()))
	b.WriteString(middle + "\n")

	line("TELEGRAM")
	line("────────")
	line("Enabled:         %s", yesNo(c.Notifications.Enabled))
	b.WriteString(bottom + "\n")

	return b.String()
}

// XMLExport is the flat parameter set consumed by the external XML bot runner.
// Key names are fixed by that runner.
type XMLExport struct {
	BaseStake            float64 `json:"base_stake"`
	DurationValue        int     `json:"duration_value"`
	DurationType         string  `json:"duration_type"`
	Symbol               string  `json:"symbol"`
	MartingaleEnabled    bool    `json:"martingale_enabled"`
	MartingaleMultiplier float64 `json:"martingale_multiplier"`
	MaxMartingaleSteps   int     `json:"max_martingale_steps"`
	TakeProfit           float64 `json:"take_profit"`
	StopLoss             float64 `json:"stop_loss"`
	MaxConsecutiveLosses int     `json:"max_consecutive_losses"`
	MinBalance           float64 `json:"min_balance"`
	TelegramEnabled      bool    `json:"telegram_enabled"`
	TelegramToken        string  `json:"telegram_token"`
	TelegramChatID       string  `json:"telegram_chat_id"`
}

func (m *Manager) ExportForXML() XMLExport {
	c := m.cfg
	return XMLExport{
		BaseStake:            c.Trading.BaseStake,
		DurationValue:        c.Trading.ContractDuration,
		DurationType:         firstChar(c.Trading.DurationUnit),
		Symbol:               c.Trading.TradingAsset,
		MartingaleEnabled:    c.Martingale.Enabled,
		MartingaleMultiplier: c.Martingale.Multiplier,
		MaxMartingaleSteps:   c.Martingale.MaxSteps,
		TakeProfit:           c.Risk.TakeProfit,
		StopLoss:             c.Risk.StopLoss,
		MaxConsecutiveLosses: c.Risk.MaxConsecutiveLosses,
		MinBalance:           c.Risk.MinBalanceThreshold,
		TelegramEnabled:      c.Notifications.Enabled,
		TelegramToken:        c.Notifications.BotToken,
		TelegramChatID:       c.Notifications.ChatID,
	}
}

// Map returns the export as a flat key-value mapping.
func (e XMLExport) Map() map[string]any {
	return map[string]any{
		"base_stake":             e.BaseStake,
		"duration_value":         e.DurationValue,
		"duration_type":          e.DurationType,
		"symbol":                 e.Symbol,
		"martingale_enabled":     e.MartingaleEnabled,
		"martingale_multiplier":  e.MartingaleMultiplier,
		"max_martingale_steps":   e.MaxMartingaleSteps,
		"take_profit":            e.TakeProfit,
		"stop_loss":              e.StopLoss,
		"max_consecutive_losses": e.MaxConsecutiveLosses,
		"min_balance":            e.MinBalance,
		"telegram_enabled":       e.TelegramEnabled,
		"telegram_token":         e.TelegramToken,
		"telegram_chat_id":       e.TelegramChatID,
	}
}

func firstChar(s string) string {
	if s == "" {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(s)
	return string(r)
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// FormatNumber prints whole numbers with one decimal place (2 -> "2.0", 2.5 -> "2.5").
func FormatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
