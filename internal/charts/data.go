package charts

import "github.com/riftlens/winreport/internal/palette"

// colorPolicy decides bar colors for a recipe. Exactly one of its fields is set.
type colorPolicy struct {
	fixed     []palette.ColorToken
	uniform   palette.ColorToken
	threshold *palette.Thresholds
}

// recipe is the variant-invariant part of a chart plus the text keys that
// the pool fills in.
type recipe struct {
	title     string
	labelKeys []string
	literal   []string // labels shared by every variant
	legendKey string
	values    []float64
	colors    colorPolicy
	bordered  bool
}

var lrFeatures = []string{"feature.gold_diff", "feature.exp_diff", "feature.dragons", "feature.kill_diff", "feature.kda"}

var lrCoefficients = []float64{0.96, 0.51, 0.26, -0.09, 0.08}

var recipes = map[Kind]recipe{
	FirstBlood: {
		title:     "title.fb",
		labelKeys: []string{"label.no_first_blood", "label.first_blood"},
		legendKey: "legend.win_rate",
		values:    []float64{39.7, 59.9},
		colors:    colorPolicy{fixed: []palette.ColorToken{palette.Loss, palette.Accent}},
		bordered:  true,
	},
	Dragon: {
		title:     "title.dragon",
		labelKeys: []string{"label.dragons_0", "label.dragons_1"},
		legendKey: "legend.win_rate",
		values:    []float64{41.9, 64.1},
		colors:    colorPolicy{fixed: []palette.ColorToken{palette.Loss, palette.Accent}},
	},
	Herald: {
		title:     "title.herald",
		labelKeys: []string{"label.heralds_0", "label.heralds_1"},
		legendKey: "legend.win_rate",
		values:    []float64{47.7, 59.5},
		colors:    colorPolicy{fixed: []palette.ColorToken{palette.Loss, palette.Accent}},
	},
	FeatureLR: {
		title:     "title.feat_lr",
		labelKeys: lrFeatures,
		legendKey: "legend.coefficient",
		values:    lrCoefficients,
		colors:    colorPolicy{threshold: &palette.SignSplit},
	},
	FeatureRF: {
		title:     "title.feat_rf",
		labelKeys: []string{"feature.gold_diff", "feature.exp_diff", "feature.kill_diff", "feature.kda", "feature.dragons"},
		legendKey: "legend.importance",
		values:    []float64{0.366, 0.242, 0.160, 0.121, 0.031},
		colors:    colorPolicy{uniform: palette.Gold},
	},
	FeatureLGBM: {
		title:     "title.feat_lgbm",
		labelKeys: []string{"feature.gold_diff", "feature.exp_diff", "feature.dragons", "feature.kda", "feature.wards_placed"},
		legendKey: "legend.gain",
		values:    []float64{89226, 20632, 4304, 2362, 744},
		colors:    colorPolicy{uniform: palette.Accent},
	},
	EliteMonsters: {
		title:     "title.elite",
		labelKeys: []string{"label.elite_0", "label.elite_1", "label.elite_2"},
		legendKey: "legend.win_rate",
		values:    []float64{39.9, 58.6, 73.5},
		colors:    colorPolicy{fixed: []palette.ColorToken{palette.Loss, palette.Accent, palette.Success}},
	},
	KDA: {
		title:     "title.kda",
		literal:   []string{"0-1", "1-1.7", "1.7-2.5", "2.5-4", "4+"},
		legendKey: "legend.win_rate",
		values:    []float64{18.05, 35.17, 50.96, 65.43, 82.69},
		colors:    colorPolicy{threshold: &palette.HalfSplit},
	},
	FeatureLRComp: {
		title:     "title.feat_comp",
		labelKeys: lrFeatures,
		legendKey: "legend.coefficient",
		values:    lrCoefficients,
		colors:    colorPolicy{threshold: &palette.SignSplit},
	},
}
