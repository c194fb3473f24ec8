package botconfig

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const DefaultSafetyFactor = 2.0

var stakeStep = decimal.RequireFromString("0.01")

// CalculateMaxLoss returns the total staked over a full losing martingale
// series, or the base stake when martingale is disabled.
func CalculateMaxLoss(cfg BotConfiguration) float64 {
	if !cfg.Martingale.Enabled {
		return cfg.Trading.BaseStake
	}

	var total float64
	stake := cfg.Trading.BaseStake
	for i := 0; i < cfg.Martingale.MaxSteps; i++ {
		total += stake
		stake *= cfg.Martingale.Multiplier
	}
	return total
}

func RecommendedBalance(cfg BotConfiguration, safetyFactor float64) float64 {
	return CalculateMaxLoss(cfg) * safetyFactor
}

// StakeProgression returns the stakes of a losing series in full precision:
// base * multiplier^i for i in [0, max_steps). Only the base stake is
// returned when martingale is disabled.
func StakeProgression(cfg BotConfiguration) []decimal.Decimal {
	base := decimal.NewFromFloat(cfg.Trading.BaseStake)
	if !cfg.Martingale.Enabled || cfg.Martingale.MaxSteps < 1 {
		return []decimal.Decimal{base}
	}

	mult := decimal.NewFromFloat(cfg.Martingale.Multiplier)
	stakes := make([]decimal.Decimal, 0, cfg.Martingale.MaxSteps)
	stake := base
	for i := 0; i < cfg.Martingale.MaxSteps; i++ {
		stakes = append(stakes, stake)
		stake = stake.Mul(mult)
	}
	return stakes
}

// RoundStake rounds a stake to cents for display, half away from zero (3.375 -> 3.38).
func RoundStake(stake decimal.Decimal) decimal.Decimal {
	return roundToStep(stake, stakeStep)
}

func roundToStep(v, step decimal.Decimal) decimal.Decimal {
	if !step.IsPositive() {
		panic(fmt.Sprintf("invalid usage of botconfig.roundToStep: step: %s <= 0", step.String()))
	}
	return v.Div(step).Round(0).Mul(step)
}

// BreakevenWinRate is the win rate needed to break even at the given payout ratio.
func BreakevenWinRate(payout float64) float64 {
	return 1 / (1 + payout)
}

// RiskRewardRatio is take profit over stop loss; 0 when stop loss is not positive.
func RiskRewardRatio(cfg BotConfiguration) float64 {
	if cfg.Risk.StopLoss <= 0 {
		return 0
	}
	return cfg.Risk.TakeProfit / cfg.Risk.StopLoss
}
