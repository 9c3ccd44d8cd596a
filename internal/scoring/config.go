// Package scoring reduces a questionnaire's answers into a Result: per
// section scores, a profile of named sub-dimensions, a recommendation
// tier, and career alignment scores. Score is a pure function; the
// texts and parameters it evaluates come from configuration.
package scoring

// Recommendation is the discrete outcome of an assessment.
type Recommendation string

const (
	RecommendYes   Recommendation = "yes"
	RecommendMaybe Recommendation = "maybe"
	RecommendNo    Recommendation = "no"
)

// Tier maps a minimum overall score onto a recommendation with its
// canned reason and next steps. Tiers are evaluated highest MinScore
// first; the first tier whose MinScore the overall score meets wins.
type Tier struct {
	MinScore       int
	Recommendation Recommendation
	Reason         string
	NextSteps      []string
}

// Axis declares one profile sub-dimension as a weighted blend of
// section scores. The axis value is the weight-normalized blend,
// rounded and clamped to [0, 100]. A blend with a single entry of any
// weight pins the axis to that section's score.
type Axis struct {
	Key   string
	Label string
	Blend map[string]float64 // section ID -> weight
}

// Career declares one role in the career-match table. Alignment is
// max(Floor, overall-Offset), clamped to [0, 100].
type Career struct {
	Role        string
	Description string
	SkillLevel  string
	Floor       int
	Offset      int
}

// Config is the static result-presentation table the engine evaluates.
type Config struct {
	Tiers []Tier
	Axes  []Axis

	// Aggregate blends section scores into the overall confidence
	// score. When empty, the overall score falls back to the
	// ScoreWeight-normalized mean of all section scores.
	Aggregate map[string]float64

	Careers []Career
}
