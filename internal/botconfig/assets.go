package botconfig

type Asset struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	MinStake float64 `json:"min_stake"`
}

type AssetFamily struct {
	ID     string  `json:"id"`
	Assets []Asset `json:"assets"`
}

const defaultMinStake = 0.35

var assetFamilies = []AssetFamily{
	{
		ID: "volatility_indices",
		Assets: []Asset{
			{ID: "R_10", Name: "Volatility 10 Index", MinStake: defaultMinStake},
			{ID: "R_25", Name: "Volatility 25 Index", MinStake: defaultMinStake},
			{ID: "R_50", Name: "Volatility 50 Index", MinStake: defaultMinStake},
			{ID: "R_75", Name: "Volatility 75 Index", MinStake: defaultMinStake},
			{ID: "R_100", Name: "Volatility 100 Index", MinStake: defaultMinStake},
			{ID: "1HZ10V", Name: "Volatility 10 (1s) Index", MinStake: defaultMinStake},
			{ID: "1HZ25V", Name: "Volatility 25 (1s) Index", MinStake: defaultMinStake},
			{ID: "1HZ50V", Name: "Volatility 50 (1s) Index", MinStake: defaultMinStake},
			{ID: "1HZ75V", Name: "Volatility 75 (1s) Index", MinStake: defaultMinStake},
			{ID: "1HZ100V", Name: "Volatility 100 (1s) Index", MinStake: defaultMinStake},
		},
	},
	{
		ID: "crash_boom",
		Assets: []Asset{
			{ID: "BOOM300N", Name: "Boom 300 Index", MinStake: defaultMinStake},
			{ID: "BOOM500", Name: "Boom 500 Index", MinStake: defaultMinStake},
			{ID: "BOOM1000", Name: "Boom 1000 Index", MinStake: defaultMinStake},
			{ID: "CRASH300N", Name: "Crash 300 Index", MinStake: defaultMinStake},
			{ID: "CRASH500", Name: "Crash 500 Index", MinStake: defaultMinStake},
			{ID: "CRASH1000", Name: "Crash 1000 Index", MinStake: defaultMinStake},
		},
	},
	{
		ID: "step_indices",
		Assets: []Asset{
			{ID: "stpRNG", Name: "Step Index", MinStake: defaultMinStake},
		},
	},
	{
		ID: "jump_indices",
		Assets: []Asset{
			{ID: "JD10", Name: "Jump 10 Index", MinStake: defaultMinStake},
			{ID: "JD25", Name: "Jump 25 Index", MinStake: defaultMinStake},
			{ID: "JD50", Name: "Jump 50 Index", MinStake: defaultMinStake},
			{ID: "JD75", Name: "Jump 75 Index", MinStake: defaultMinStake},
			{ID: "JD100", Name: "Jump 100 Index", MinStake: defaultMinStake},
		},
	},
}

// AssetFamilies returns a copy of the tradable asset catalog.
func AssetFamilies() []AssetFamily {
	result := make([]AssetFamily, len(assetFamilies))
	for i, f := range assetFamilies {
		result[i] = AssetFamily{ID: f.ID, Assets: append([]Asset(nil), f.Assets...)}
	}
	return result
}

func LookupAsset(id string) (Asset, bool) {
	for _, f := range assetFamilies {
		for _, a := range f.Assets {
			if a.ID == id {
				return a, true
			}
		}
	}
	return Asset{}, false
}
