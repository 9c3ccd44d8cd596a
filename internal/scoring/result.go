package scoring

// SectionScore is the normalized score for one section.
type SectionScore struct {
	SectionID  string
	Score      int
	MaxScore   int
	Percentage int
}

// AxisScore is one computed profile sub-dimension.
type AxisScore struct {
	Key   string
	Label string
	Score int
}

// CareerMatch is one role from the career table with its computed
// alignment score.
type CareerMatch struct {
	Role           string
	Description    string
	SkillLevel     string
	AlignmentScore int
}

// Result is the final output of a completed assessment run.
type Result struct {
	Recommendation  Recommendation
	ConfidenceScore int
	Reason          string
	NextSteps       []string
	SectionScores   []SectionScore
	Profile         []AxisScore
	Careers         []CareerMatch
}

// SectionScoreByID returns the section score entry for the given ID,
// and whether one exists.
func (r *Result) SectionScoreByID(id string) (SectionScore, bool) {
	for _, s := range r.SectionScores {
		if s.SectionID == id {
			return s, true
		}
	}
	return SectionScore{}, false
}
