package botconfig_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Antonboom/deriv-rise-fall-bot/internal/botconfig"
)

func TestParseRiskLevel(t *testing.T) {
	for _, s := range []string{"conservative", "moderate", "aggressive", "custom"} {
		l, err := botconfig.ParseRiskLevel(s)
		require.NoError(t, err)
		assert.Equal(t, s, l.S())
	}

	for _, s := range []string{"", "Moderate", "extreme"} {
		_, err := botconfig.ParseRiskLevel(s)
		assert.ErrorIs(t, err, botconfig.ErrUnknownRiskLevel, s)
	}
}

func TestApplyPreset(t *testing.T) {
	cases := []struct {
		level         botconfig.RiskLevel
		expStake      float64
		expMultiplier float64
		expSteps      int
		expTP         float64
		expSL         float64
		expMaxLosses  int
	}{
		{
			level:         botconfig.RiskLevelConservative,
			expStake:      0.5,
			expMultiplier: 1.5,
			expSteps:      3,
			expTP:         25,
			expSL:         15,
			expMaxLosses:  3,
		},
		{
			level:         botconfig.RiskLevelModerate,
			expStake:      1,
			expMultiplier: 2,
			expSteps:      5,
			expTP:         50,
			expSL:         25,
			expMaxLosses:  5,
		},
		{
			level:         botconfig.RiskLevelAggressive,
			expStake:      2,
			expMultiplier: 2.5,
			expSteps:      7,
			expTP:         100,
			expSL:         50,
			expMaxLosses:  7,
		},
		{
			// Custom has no preset of its own.
			level:         botconfig.RiskLevelCustom,
			expStake:      1,
			expMultiplier: 2,
			expSteps:      5,
			expTP:         50,
			expSL:         25,
			expMaxLosses:  5,
		},
	}

	for _, tt := range cases {
		t.Run(tt.level.S(), func(t *testing.T) {
			base := botconfig.Default()
			base.Trading.TradingAsset = "R_50"
			base.Trading.BaseStake = 7
			base.Martingale.ResetOnWin = false
			base.Risk.MinBalanceThreshold = 42
			base.Notifications.Enabled = true
			before := base

			cfg := botconfig.ApplyPreset(base, tt.level)

			assert.Equal(t, before, base, "input must stay untouched")

			assert.Equal(t, tt.level, cfg.RiskLevel)
			assert.Equal(t, tt.expStake, cfg.Trading.BaseStake)
			assert.Equal(t, tt.expMultiplier, cfg.Martingale.Multiplier)
			assert.Equal(t, tt.expSteps, cfg.Martingale.MaxSteps)
			assert.Equal(t, tt.expTP, cfg.Risk.TakeProfit)
			assert.Equal(t, tt.expSL, cfg.Risk.StopLoss)
			assert.Equal(t, tt.expMaxLosses, cfg.Risk.MaxConsecutiveLosses)

			// Fields outside the preset are kept.
			assert.Equal(t, "R_50", cfg.Trading.TradingAsset)
			assert.False(t, cfg.Martingale.ResetOnWin)
			assert.Equal(t, 42.0, cfg.Risk.MinBalanceThreshold)
			assert.True(t, cfg.Notifications.Enabled)
		})
	}
}

func TestApplyPreset_UnknownLevelFallsBackToModerate(t *testing.T) {
	cfg := botconfig.ApplyPreset(botconfig.FromPreset(botconfig.RiskLevelAggressive), "extreme")
	assert.Equal(t, 1.0, cfg.Trading.BaseStake)
	assert.Equal(t, 5, cfg.Martingale.MaxSteps)
	assert.Equal(t, botconfig.RiskLevel("extreme"), cfg.RiskLevel)
}

func TestGetPreset(t *testing.T) {
	p := botconfig.GetPreset(botconfig.RiskLevelConservative)
	require.NotNil(t, p.Trading.BaseStake)
	assert.Equal(t, 0.5, *p.Trading.BaseStake)

	// Callers cannot modify the preset table.
	*p.Trading.BaseStake = 99
	assert.Equal(t, 0.5, botconfig.FromPreset(botconfig.RiskLevelConservative).Trading.BaseStake)
}

func TestPresetDescription(t *testing.T) {
	assert.Contains(t, botconfig.PresetDescription(botconfig.RiskLevelConservative), "CONSERVATIVE (Low Risk)")
	assert.Contains(t, botconfig.PresetDescription(botconfig.RiskLevelModerate), "MODERATE (Balanced)")
	assert.Contains(t, botconfig.PresetDescription(botconfig.RiskLevelAggressive), "AGGRESSIVE (High Risk)")
	assert.Equal(t, "Custom configuration", botconfig.PresetDescription(botconfig.RiskLevelCustom))
	assert.Equal(t, "Custom configuration", botconfig.PresetDescription("extreme"))
}

func TestRiskLevels(t *testing.T) {
	assert.Equal(t, []botconfig.RiskLevel{
		botconfig.RiskLevelConservative,
		botconfig.RiskLevelModerate,
		botconfig.RiskLevelAggressive,
	}, botconfig.RiskLevels())
}
