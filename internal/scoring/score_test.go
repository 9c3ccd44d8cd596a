package scoring

import (
	"reflect"
	"testing"

	"github.com/abhisek/compass/internal/assessment"
)

// percentQuestionnaire has a single 1-100 scale question, so the
// submitted value is exactly the section score.
func percentQuestionnaire(t *testing.T) *assessment.Questionnaire {
	t.Helper()
	qn := &assessment.Questionnaire{
		ID: "pct",
		Sections: []assessment.Section{{
			ID: "only",
			Questions: []assessment.Question{
				{ID: "q1", Type: assessment.TypeScale, Prompt: "p", Min: 1, Max: 100, Weight: 1},
			},
		}},
	}
	if err := qn.Validate(); err != nil {
		t.Fatal(err)
	}
	return qn
}

func twoSectionQuestionnaire(t *testing.T, weightA, weightB float64) *assessment.Questionnaire {
	t.Helper()
	qn := &assessment.Questionnaire{
		ID: "two",
		Sections: []assessment.Section{
			{
				ID:          "alpha",
				ScoreWeight: weightA,
				Questions: []assessment.Question{
					{ID: "a1", Type: assessment.TypeScale, Prompt: "p", Min: 1, Max: 5, Weight: 1},
				},
			},
			{
				ID:          "beta",
				ScoreWeight: weightB,
				Questions: []assessment.Question{
					{ID: "b1", Type: assessment.TypeScale, Prompt: "p", Min: 1, Max: 5, Weight: 1},
				},
			},
		},
	}
	if err := qn.Validate(); err != nil {
		t.Fatal(err)
	}
	return qn
}

func tierConfig() Config {
	return Config{
		Tiers: []Tier{
			{MinScore: 75, Recommendation: RecommendYes, Reason: "strong"},
			{MinScore: 50, Recommendation: RecommendMaybe, Reason: "mixed"},
			{MinScore: 0, Recommendation: RecommendNo, Reason: "weak"},
		},
	}
}

func TestScore_TierBoundaries(t *testing.T) {
	qn := percentQuestionnaire(t)
	cfg := tierConfig()
	cfg.Aggregate = map[string]float64{"only": 1}

	cases := []struct {
		value int
		want  Recommendation
	}{
		{100, RecommendYes},
		{80, RecommendYes},
		{75, RecommendYes},
		{74, RecommendMaybe},
		{60, RecommendMaybe},
		{50, RecommendMaybe},
		{49, RecommendNo},
		{30, RecommendNo},
		{1, RecommendNo},
	}
	for _, tc := range cases {
		res := Score(qn, []assessment.Answer{{QuestionID: "q1", Value: tc.value}}, cfg)
		if res.ConfidenceScore != tc.value {
			t.Errorf("value %d: ConfidenceScore = %d, want %d", tc.value, res.ConfidenceScore, tc.value)
		}
		if res.Recommendation != tc.want {
			t.Errorf("value %d: Recommendation = %q, want %q", tc.value, res.Recommendation, tc.want)
		}
	}
}

func TestScore_NoAnswers(t *testing.T) {
	qn := twoSectionQuestionnaire(t, 0, 0)
	res := Score(qn, nil, tierConfig())

	if res.ConfidenceScore != 0 {
		t.Errorf("ConfidenceScore = %d, want 0", res.ConfidenceScore)
	}
	if res.Recommendation != RecommendNo {
		t.Errorf("Recommendation = %q, want %q", res.Recommendation, RecommendNo)
	}
	for _, s := range res.SectionScores {
		if s.Score != 0 {
			t.Errorf("section %s score = %d, want 0", s.SectionID, s.Score)
		}
	}
}

func TestScore_ClampsOutOfRangeValues(t *testing.T) {
	qn := twoSectionQuestionnaire(t, 0, 0)
	answers := []assessment.Answer{
		{QuestionID: "a1", Value: 50}, // far above the 1-5 scale
		{QuestionID: "b1", Value: -3},
	}
	res := Score(qn, answers, tierConfig())

	if s, ok := res.SectionScoreByID("alpha"); !ok || s.Score != 100 {
		t.Errorf("alpha score = %+v, want 100 (clamped)", s)
	}
	if s, ok := res.SectionScoreByID("beta"); !ok || s.Score != 0 {
		t.Errorf("beta score = %+v, want 0 (clamped)", s)
	}
	if res.ConfidenceScore < 0 || res.ConfidenceScore > 100 {
		t.Errorf("ConfidenceScore = %d, outside [0, 100]", res.ConfidenceScore)
	}
}

func TestScore_SectionExtremes(t *testing.T) {
	qn := &assessment.Questionnaire{
		ID: "extremes",
		Sections: []assessment.Section{{
			ID: "s",
			Questions: []assessment.Question{
				{ID: "q1", Type: assessment.TypeScale, Prompt: "p", Min: 1, Max: 5, Weight: 1},
				{ID: "q2", Type: assessment.TypeScale, Prompt: "p", Min: 1, Max: 5, Weight: 1},
			},
		}},
	}
	if err := qn.Validate(); err != nil {
		t.Fatal(err)
	}

	res := Score(qn, []assessment.Answer{
		{QuestionID: "q1", Value: 5},
		{QuestionID: "q2", Value: 5},
	}, tierConfig())
	if s, _ := res.SectionScoreByID("s"); s.Score != 100 {
		t.Errorf("[5,5] section score = %d, want 100", s.Score)
	}

	res = Score(qn, []assessment.Answer{
		{QuestionID: "q1", Value: 1},
		{QuestionID: "q2", Value: 1},
	}, tierConfig())
	if s, _ := res.SectionScoreByID("s"); s.Score != 20 {
		t.Errorf("[1,1] section score = %d, want 20", s.Score)
	}
}

func TestScore_UnansweredQuestionsExcluded(t *testing.T) {
	qn := &assessment.Questionnaire{
		ID: "partial",
		Sections: []assessment.Section{{
			ID: "s",
			Questions: []assessment.Question{
				{ID: "q1", Type: assessment.TypeScale, Prompt: "p", Min: 1, Max: 5, Weight: 1},
				{ID: "q2", Type: assessment.TypeScale, Prompt: "p", Min: 1, Max: 5, Weight: 1},
			},
		}},
	}
	if err := qn.Validate(); err != nil {
		t.Fatal(err)
	}

	// Only q1 answered, at the maximum: the unanswered q2 must not drag
	// the section down.
	res := Score(qn, []assessment.Answer{{QuestionID: "q1", Value: 5}}, tierConfig())
	if s, ok := res.SectionScoreByID("s"); !ok || s.Score != 100 {
		t.Errorf("section score = %+v, want 100", s)
	}
}

func TestScore_PerQuestionNormalization(t *testing.T) {
	qn := &assessment.Questionnaire{
		ID: "mixed",
		Sections: []assessment.Section{{
			ID: "s",
			Questions: []assessment.Question{
				{ID: "narrow", Type: assessment.TypeScale, Prompt: "p", Min: 1, Max: 3, Weight: 1},
				{ID: "wide", Type: assessment.TypeScale, Prompt: "p", Min: 1, Max: 5, Weight: 1},
			},
		}},
	}
	if err := qn.Validate(); err != nil {
		t.Fatal(err)
	}

	// Both at their maxima: (3 + 5) / (3 + 5) = 100, not penalized for
	// the differing ranges.
	res := Score(qn, []assessment.Answer{
		{QuestionID: "narrow", Value: 3},
		{QuestionID: "wide", Value: 5},
	}, tierConfig())
	if s, _ := res.SectionScoreByID("s"); s.Score != 100 {
		t.Errorf("all-max mixed ranges = %d, want 100", s.Score)
	}

	// 3/3 and 1/5 weighted equally per point: (3+1)/(3+5) = 50.
	res = Score(qn, []assessment.Answer{
		{QuestionID: "narrow", Value: 3},
		{QuestionID: "wide", Value: 1},
	}, tierConfig())
	if s, _ := res.SectionScoreByID("s"); s.Score != 50 {
		t.Errorf("mixed ranges = %d, want 50", s.Score)
	}
}

func TestScore_QuestionWeights(t *testing.T) {
	qn := &assessment.Questionnaire{
		ID: "weighted",
		Sections: []assessment.Section{{
			ID: "s",
			Questions: []assessment.Question{
				{ID: "heavy", Type: assessment.TypeScale, Prompt: "p", Min: 1, Max: 5, Weight: 3},
				{ID: "light", Type: assessment.TypeScale, Prompt: "p", Min: 1, Max: 5, Weight: 1},
			},
		}},
	}
	if err := qn.Validate(); err != nil {
		t.Fatal(err)
	}

	// heavy at max, light at min: (5*3 + 1*1) / (5*3 + 5*1) = 16/20 = 80.
	res := Score(qn, []assessment.Answer{
		{QuestionID: "heavy", Value: 5},
		{QuestionID: "light", Value: 1},
	}, tierConfig())
	if s, _ := res.SectionScoreByID("s"); s.Score != 80 {
		t.Errorf("weighted section = %d, want 80", s.Score)
	}
}

func TestScore_AggregateOverridesSectionWeights(t *testing.T) {
	qn := twoSectionQuestionnaire(t, 10, 90)
	answers := []assessment.Answer{
		{QuestionID: "a1", Value: 5}, // alpha = 100
		{QuestionID: "b1", Value: 1}, // beta = 20
	}

	cfg := tierConfig()
	cfg.Aggregate = map[string]float64{"alpha": 1}
	res := Score(qn, answers, cfg)
	if res.ConfidenceScore != 100 {
		t.Errorf("aggregate blend = %d, want 100 (alpha only)", res.ConfidenceScore)
	}

	// Without an aggregate blend, ScoreWeight decides:
	// (10*100 + 90*20) / 100 = 28.
	res = Score(qn, answers, tierConfig())
	if res.ConfidenceScore != 28 {
		t.Errorf("section-weight fallback = %d, want 28", res.ConfidenceScore)
	}
}

func TestScore_UnweightedFallbackIsPlainMean(t *testing.T) {
	qn := twoSectionQuestionnaire(t, 0, 0)
	answers := []assessment.Answer{
		{QuestionID: "a1", Value: 5}, // 100
		{QuestionID: "b1", Value: 1}, // 20
	}
	res := Score(qn, answers, tierConfig())
	if res.ConfidenceScore != 60 {
		t.Errorf("plain-mean fallback = %d, want 60", res.ConfidenceScore)
	}
}

func TestScore_AxisBlends(t *testing.T) {
	qn := twoSectionQuestionnaire(t, 0, 0)
	answers := []assessment.Answer{
		{QuestionID: "a1", Value: 5}, // alpha = 100
		{QuestionID: "b1", Value: 1}, // beta = 20
	}
	cfg := tierConfig()
	cfg.Axes = []Axis{
		{Key: "even", Label: "Even", Blend: map[string]float64{"alpha": 0.5, "beta": 0.5}},
		{Key: "tilted", Label: "Tilted", Blend: map[string]float64{"alpha": 3, "beta": 1}},
		{Key: "solo", Label: "Solo", Blend: map[string]float64{"beta": 1}},
	}

	res := Score(qn, answers, cfg)
	want := map[string]int{
		"even":   60, // (100 + 20) / 2
		"tilted": 80, // (3*100 + 1*20) / 4
		"solo":   20,
	}
	if len(res.Profile) != len(cfg.Axes) {
		t.Fatalf("Profile has %d axes, want %d", len(res.Profile), len(cfg.Axes))
	}
	for _, axis := range res.Profile {
		if axis.Score != want[axis.Key] {
			t.Errorf("axis %s = %d, want %d", axis.Key, axis.Score, want[axis.Key])
		}
	}
}

func TestScore_CareerAlignment(t *testing.T) {
	qn := percentQuestionnaire(t)
	cfg := tierConfig()
	cfg.Aggregate = map[string]float64{"only": 1}
	cfg.Careers = []Career{
		{Role: "Analyst", Floor: 70, Offset: 5},
		{Role: "Scientist", Floor: 40, Offset: 20},
	}

	// overall = 60: Analyst max(70, 55) = 70, Scientist max(40, 40) = 40.
	res := Score(qn, []assessment.Answer{{QuestionID: "q1", Value: 60}}, cfg)
	wantAlign := map[string]int{"Analyst": 70, "Scientist": 40}
	for _, c := range res.Careers {
		if c.AlignmentScore != wantAlign[c.Role] {
			t.Errorf("%s alignment = %d, want %d", c.Role, c.AlignmentScore, wantAlign[c.Role])
		}
	}

	// overall = 100: offsets apply above the floor.
	res = Score(qn, []assessment.Answer{{QuestionID: "q1", Value: 100}}, cfg)
	wantAlign = map[string]int{"Analyst": 95, "Scientist": 80}
	for _, c := range res.Careers {
		if c.AlignmentScore != wantAlign[c.Role] {
			t.Errorf("%s alignment = %d, want %d", c.Role, c.AlignmentScore, wantAlign[c.Role])
		}
	}
}

func TestScore_Deterministic(t *testing.T) {
	qn := twoSectionQuestionnaire(t, 30, 70)
	answers := []assessment.Answer{
		{QuestionID: "a1", Value: 4},
		{QuestionID: "b1", Value: 2},
	}
	cfg := tierConfig()
	cfg.Axes = []Axis{
		{Key: "x", Label: "X", Blend: map[string]float64{"alpha": 0.6, "beta": 0.4}},
	}
	cfg.Careers = []Career{{Role: "Analyst", Floor: 50, Offset: 10}}

	first := Score(qn, answers, cfg)
	second := Score(qn, answers, cfg)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Score is not deterministic:\n%+v\n%+v", first, second)
	}
}

func TestPickTier_NoTiers(t *testing.T) {
	tier := pickTier(nil, 80)
	if tier.Recommendation != "" {
		t.Errorf("Recommendation = %q, want empty with no tiers configured", tier.Recommendation)
	}
}
