package session

// ProgressPercent reports traversal progress: 0 on the introduction,
// 100 on results, and in between
//
//	(completedSections + questionIndex/sectionQuestions) / totalSections * 100
//
// which is monotonically non-decreasing under advance-only traversal.
func (e *Engine) ProgressPercent() float64 {
	switch e.phase {
	case PhaseIntroduction:
		return 0
	case PhaseResults:
		return 100
	}

	total := len(e.questionnaire.Sections)
	if total == 0 {
		return 0
	}

	sec := e.questionnaire.Sections[e.section]
	frac := 0.0
	if n := len(sec.Questions); n > 0 {
		frac = float64(e.question) / float64(n)
	}

	return (float64(e.section) + frac) / float64(total) * 100
}
