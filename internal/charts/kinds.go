package charts

// Kind identifies one of the report's charts. Its string value is the
// unprefixed mount-point name.
type Kind string

const (
	FirstBlood    Kind = "fbChart"
	Dragon        Kind = "dragonChart"
	Herald        Kind = "heraldChart"
	FeatureLR     Kind = "featLRChart"
	FeatureRF     Kind = "featRFChart"
	FeatureLGBM   Kind = "featLGBMChart"
	EliteMonsters Kind = "eliteMonstersChart"
	KDA           Kind = "kdaChart"
	FeatureLRComp Kind = "featLRCompChart"
)

// Kinds lists every chart in page order.
var Kinds = []Kind{
	FirstBlood,
	Dragon,
	Herald,
	FeatureLR,
	FeatureRF,
	FeatureLGBM,
	EliteMonsters,
	KDA,
	FeatureLRComp,
}

// Mount returns the unprefixed mount-point id.
func (k Kind) Mount() string { return string(k) }

// IsWinRate reports whether the chart plots a percentage on a fixed 0..100 axis.
func (k Kind) IsWinRate() bool {
	switch k {
	case FirstBlood, Dragon, Herald, EliteMonsters, KDA:
		return true
	}
	return false
}

// ParseKind looks up a kind by mount name.
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}
