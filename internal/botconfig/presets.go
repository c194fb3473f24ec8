package botconfig

// Preset is a partial override of a configuration. Nil fields are left untouched.
type Preset struct {
	Trading    TradingOverrides
	Martingale MartingaleOverrides
	Risk       RiskOverrides
}

type TradingOverrides struct {
	BaseStake *float64
}

type MartingaleOverrides struct {
	Multiplier *float64
	MaxSteps   *int
}

type RiskOverrides struct {
	TakeProfit           *float64
	StopLoss             *float64
	MaxConsecutiveLosses *int
}

func float(v float64) *float64 { return &v }
func integer(v int) *int       { return &v }

var presets = map[RiskLevel]Preset{
	RiskLevelConservative: {
		Trading:    TradingOverrides{BaseStake: float(0.50)},
		Martingale: MartingaleOverrides{Multiplier: float(1.5), MaxSteps: integer(3)},
		Risk: RiskOverrides{
			TakeProfit:           float(25.00),
			StopLoss:             float(15.00),
			MaxConsecutiveLosses: integer(3),
		},
	},
	RiskLevelModerate: {
		Trading:    TradingOverrides{BaseStake: float(1.00)},
		Martingale: MartingaleOverrides{Multiplier: float(2.0), MaxSteps: integer(5)},
		Risk: RiskOverrides{
			TakeProfit:           float(50.00),
			StopLoss:             float(25.00),
			MaxConsecutiveLosses: integer(5),
		},
	},
	RiskLevelAggressive: {
		Trading:    TradingOverrides{BaseStake: float(2.00)},
		Martingale: MartingaleOverrides{Multiplier: float(2.5), MaxSteps: integer(7)},
		Risk: RiskOverrides{
			TakeProfit:           float(100.00),
			StopLoss:             float(50.00),
			MaxConsecutiveLosses: integer(7),
		},
	},
}

var presetDescriptions = map[RiskLevel]string{
	RiskLevelConservative: `
🟢 CONSERVATIVE (Low Risk)
━━━━━━━━━━━━━━━━━━━━━━━━
• Base Stake: $0.50
• Multiplier: 1.5x
• Max Steps: 3
• Take Profit: $25
• Stop Loss: $15
• Best for: Beginners, small accounts
• Risk: Low | Reward: Low
`,
	RiskLevelModerate: `
🟡 MODERATE (Balanced)
━━━━━━━━━━━━━━━━━━━━━━━━
• Base Stake: $1.00
• Multiplier: 2.0x
• Max Steps: 5
• Take Profit: $50
• Stop Loss: $25
• Best for: Most traders
• Risk: Medium | Reward: Medium
`,
	RiskLevelAggressive: `
🔴 AGGRESSIVE (High Risk)
━━━━━━━━━━━━━━━━━━━━━━━━
• Base Stake: $2.00
• Multiplier: 2.5x
• Max Steps: 7
• Take Profit: $100
• Stop Loss: $50
• Best for: Experienced, large accounts
• Risk: High | Reward: High
`,
}

// RiskLevels returns the levels that have a preset, from lowest to highest risk.
func RiskLevels() []RiskLevel {
	return []RiskLevel{RiskLevelConservative, RiskLevelModerate, RiskLevelAggressive}
}

// GetPreset returns the preset of level. Custom and unknown levels fall back to moderate.
func GetPreset(level RiskLevel) Preset {
	p, ok := presets[level]
	if !ok {
		p = presets[RiskLevelModerate]
	}
	return p.clone()
}

func (p Preset) clone() Preset {
	return Preset{
		Trading: TradingOverrides{BaseStake: cloneFloat(p.Trading.BaseStake)},
		Martingale: MartingaleOverrides{
			Multiplier: cloneFloat(p.Martingale.Multiplier),
			MaxSteps:   cloneInt(p.Martingale.MaxSteps),
		},
		Risk: RiskOverrides{
			TakeProfit:           cloneFloat(p.Risk.TakeProfit),
			StopLoss:             cloneFloat(p.Risk.StopLoss),
			MaxConsecutiveLosses: cloneInt(p.Risk.MaxConsecutiveLosses),
		},
	}
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	return float(*v)
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	return integer(*v)
}

// ApplyPreset returns a copy of cfg with the preset of level applied and
// RiskLevel set to level. cfg itself is not modified.
func ApplyPreset(cfg BotConfiguration, level RiskLevel) BotConfiguration {
	p := GetPreset(level)

	setFloat(&cfg.Trading.BaseStake, p.Trading.BaseStake)

	setFloat(&cfg.Martingale.Multiplier, p.Martingale.Multiplier)
	setInt(&cfg.Martingale.MaxSteps, p.Martingale.MaxSteps)

	setFloat(&cfg.Risk.TakeProfit, p.Risk.TakeProfit)
	setFloat(&cfg.Risk.StopLoss, p.Risk.StopLoss)
	setInt(&cfg.Risk.MaxConsecutiveLosses, p.Risk.MaxConsecutiveLosses)

	cfg.RiskLevel = level
	return cfg
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

// PresetDescription returns a display-only description of the preset.
func PresetDescription(level RiskLevel) string {
	if d, ok := presetDescriptions[level]; ok {
		return d
	}
	return "Custom configuration"
}
