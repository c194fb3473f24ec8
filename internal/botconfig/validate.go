package botconfig

import (
	"fmt"
	"strings"
)

const (
	minStake = 0.01
	maxStake = 10000

	minMultiplier = 1.1
	maxMultiplier = 10.0

	minMartingaleSteps = 1
	maxMartingaleSteps = 20
)

var (
	durationUnits   = []string{"ticks", "seconds", "minutes", "t", "s", "m"}
	tradeDirections = []string{"random", "rise", "fall", "call", "put"}
)

// ValidationError carries every violation found in a configuration.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "invalid bot configuration: " + strings.Join(e.Violations, "; ")
}

// CheckPositive reports whether value > 0.
func CheckPositive(value float64, field string) (bool, string) {
	if value <= 0 {
		return false, fmt.Sprintf("%s must be positive (got %v)", field, value)
	}
	return true, ""
}

// CheckRange reports whether min <= value <= max.
func CheckRange(value, min, max float64, field string) (bool, string) {
	if value < min || value > max {
		return false, fmt.Sprintf("%s must be between %v and %v (got %v)", field, min, max, value)
	}
	return true, ""
}

func checkOneOf(value string, allowed []string) bool {
	v := strings.ToLower(value)
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}

type violations []string

func (v *violations) check(ok bool, msg string) {
	if !ok {
		*v = append(*v, msg)
	}
}

func (v *violations) addf(format string, args ...any) {
	*v = append(*v, fmt.Sprintf(format, args...))
}

func ValidateTrading(p TradingParameters) []string {
	var errs violations

	errs.check(CheckPositive(p.BaseStake, "Base stake"))
	errs.check(CheckRange(p.BaseStake, minStake, maxStake, "Base stake"))

	if p.ContractDuration < 1 {
		errs.addf("Contract duration must be at least 1 (got %d)", p.ContractDuration)
	}
	if !checkOneOf(p.DurationUnit, durationUnits) {
		errs.addf("Duration unit must be one of %v (got %s)", durationUnits, p.DurationUnit)
	}
	if !checkOneOf(p.TradeDirection, tradeDirections) {
		errs.addf("Trade direction must be one of %v", tradeDirections)
	}

	return errs
}

// ValidateMartingale skips all checks when martingale is disabled.
func ValidateMartingale(p MartingaleParameters) []string {
	if !p.Enabled {
		return nil
	}

	var errs violations
	errs.check(CheckRange(p.Multiplier, minMultiplier, maxMultiplier, "Multiplier"))
	if p.MaxSteps < minMartingaleSteps || p.MaxSteps > maxMartingaleSteps {
		errs.addf("Max martingale steps must be between %d and %d (got %d)",
			minMartingaleSteps, maxMartingaleSteps, p.MaxSteps)
	}
	return errs
}

func ValidateRisk(r RiskLimits) []string {
	var errs violations

	errs.check(CheckPositive(r.TakeProfit, "Take profit"))
	errs.check(CheckPositive(r.StopLoss, "Stop loss"))
	if r.MaxConsecutiveLosses < 1 {
		errs.addf("Max consecutive losses must be at least 1 (got %d)", r.MaxConsecutiveLosses)
	}
	errs.check(CheckPositive(r.MinBalanceThreshold, "Min balance threshold"))
	if r.MaxDailyTrades < 0 {
		errs.addf("Max daily trades cannot be negative (got %d)", r.MaxDailyTrades)
	}

	return errs
}

// ValidateNotifications skips all checks when notifications are disabled.
// The token format check is a syntactic heuristic only.
func ValidateNotifications(n NotificationSettings) []string {
	if !n.Enabled {
		return nil
	}

	var errs violations
	if n.BotToken == "" || n.BotToken == PlaceholderBotToken {
		errs = append(errs, "Telegram bot token is not configured")
	}
	if n.ChatID == "" || n.ChatID == PlaceholderChatID {
		errs = append(errs, "Telegram chat ID is not configured")
	}
	if n.BotToken != "" && !strings.Contains(n.BotToken, ":") {
		errs = append(errs, "Telegram bot token format appears invalid (should contain ':')")
	}
	return errs
}

// ValidateAll runs the category validators in order: trading, martingale,
// risk, notifications.
func ValidateAll(cfg BotConfiguration) (bool, []string) {
	var errs []string
	errs = append(errs, ValidateTrading(cfg.Trading)...)
	errs = append(errs, ValidateMartingale(cfg.Martingale)...)
	errs = append(errs, ValidateRisk(cfg.Risk)...)
	errs = append(errs, ValidateNotifications(cfg.Notifications)...)
	return len(errs) == 0, errs
}

// Validate is ValidateAll in error form.
func (c BotConfiguration) Validate() error {
	if ok, errs := ValidateAll(c); !ok {
		return &ValidationError{Violations: errs}
	}
	return nil
}
