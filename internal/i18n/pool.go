package i18n

// Pool is the localized text for one variant. Lookups fall back to the
// English pool and then to the key itself.
type Pool struct {
	variant Variant
	strings map[string]string
}

// PoolFor returns the text pool for v.
func PoolFor(v Variant) Pool {
	if v == English {
		return Pool{variant: English, strings: en}
	}
	return Pool{variant: Korean, strings: ko}
}

// Variant returns the variant this pool belongs to.
func (p Pool) Variant() Variant { return p.variant }

// T returns the text for key.
func (p Pool) T(key string) string {
	if s, ok := p.strings[key]; ok {
		return s
	}
	if s, ok := en[key]; ok {
		return s
	}
	return key
}

// List translates keys in order.
func (p Pool) List(keys ...string) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = p.T(k)
	}
	return out
}

// Keys returns every key known to the English pool.
func Keys() []string {
	out := make([]string, 0, len(en))
	for k := range en {
		out = append(out, k)
	}
	return out
}

var en = map[string]string{
	"legend.win_rate":    "Win Rate (%)",
	"legend.coefficient": "Coefficient Impact",
	"legend.importance":  "Importance",
	"legend.gain":        "Importance (Gain)",

	"label.no_first_blood": "No First Blood",
	"label.first_blood":    "First Blood",
	"label.dragons_0":      "0 Dragons",
	"label.dragons_1":      "1 Dragon",
	"label.heralds_0":      "0 Heralds",
	"label.heralds_1":      "1 Herald",
	"label.elite_0":        "0 Monsters",
	"label.elite_1":        "1 Monster",
	"label.elite_2":        "2 Monsters",

	"feature.gold_diff":    "Gold Diff",
	"feature.exp_diff":     "Exp Diff",
	"feature.dragons":      "Dragons",
	"feature.kill_diff":    "Kill Diff",
	"feature.kda":          "KDA",
	"feature.wards_placed": "Wards Placed",

	"title.fb":        "Win Rate by First Blood",
	"title.dragon":    "Win Rate by Dragon Control",
	"title.herald":    "Win Rate by Herald Control",
	"title.feat_lr":   "Feature Importance (Logistic Regression)",
	"title.feat_rf":   "Feature Importance (Random Forest)",
	"title.feat_lgbm": "Feature Importance (LightGBM)",
	"title.elite":     "Win Rate vs Elite Monsters Killed",
	"title.kda":       "Win Rate by KDA Range",
	"title.feat_comp": "Logistic Regression Coefficients",

	"page.title":       "What Wins a Game in the First 10 Minutes",
	"page.subtitle":    "Diamond ranked matches, early-game statistics",
	"page.switch":      "한국어",
	"nav.overview":     "Overview",
	"nav.data":         "Dataset",
	"nav.eda":          "Early Objectives",
	"nav.kda":          "KDA",
	"nav.models":       "Models",
	"nav.comparison":   "Comparison",
	"nav.conclusion":   "Conclusion",
	"page.footer":      "All figures are precomputed from a public match dataset.",
	"page.chart_label": "Chart",
}

var ko = map[string]string{
	"legend.win_rate":    "승률 (%)",
	"legend.coefficient": "계수 영향력",
	"legend.importance":  "중요도",
	"legend.gain":        "중요도 (Gain)",

	"label.no_first_blood": "퍼스트 블러드 미획득",
	"label.first_blood":    "퍼스트 블러드 획득",
	"label.dragons_0":      "0 드래곤",
	"label.dragons_1":      "1 드래곤",
	"label.heralds_0":      "0 전령",
	"label.heralds_1":      "1 전령",
	"label.elite_0":        "0개",
	"label.elite_1":        "1개",
	"label.elite_2":        "2개",

	"feature.gold_diff":    "골드 차이",
	"feature.exp_diff":     "Exp 차이",
	"feature.dragons":      "드래곤",
	"feature.kill_diff":    "킬 차이",
	"feature.kda":          "KDA",
	"feature.wards_placed": "와드 설치",

	"title.fb":        "퍼스트 블러드에 따른 승률",
	"title.dragon":    "드래곤 획득에 따른 승률",
	"title.herald":    "전령 획득에 따른 승률",
	"title.feat_lr":   "변수 중요도 (로지스틱 회귀)",
	"title.feat_rf":   "변수 중요도 (랜덤 포레스트)",
	"title.feat_lgbm": "변수 중요도 (LightGBM)",
	"title.elite":     "엘리트 몬스터 처치 수에 따른 승률",
	"title.kda":       "KDA 구간별 승률",
	"title.feat_comp": "로지스틱 회귀 계수",

	"page.title":       "초반 10분, 무엇이 승부를 가르는가",
	"page.subtitle":    "다이아몬드 랭크 게임 초반 통계",
	"page.switch":      "English",
	"nav.overview":     "개요",
	"nav.data":         "데이터셋",
	"nav.eda":          "초반 오브젝트",
	"nav.kda":          "KDA",
	"nav.models":       "모델",
	"nav.comparison":   "모델 비교",
	"nav.conclusion":   "결론",
	"page.footer":      "모든 수치는 공개 경기 데이터셋에서 미리 계산된 값입니다.",
	"page.chart_label": "차트",
}
