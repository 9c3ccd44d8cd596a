package assessment

import (
	"fmt"
	"strings"
)

// Reserved section IDs. The introduction and results phases are states
// of the navigation machine, not scoreable sections, so a definition
// may not claim them.
const (
	SectionIntroduction = "introduction"
	SectionResults      = "results"
)

// ValidationError aggregates every structural problem found in a
// questionnaire definition. A definition that fails validation refuses
// to load; there is no partial acceptance.
type ValidationError struct {
	QuestionnaireID string
	Problems        []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid questionnaire %q:\n  %s",
		e.QuestionnaireID, strings.Join(e.Problems, "\n  "))
}

// Validate performs all structural checks on the questionnaire and
// builds its lookup indexes. Returns a *ValidationError describing all
// problems found, or nil if the questionnaire is well formed.
func (qn *Questionnaire) Validate() error {
	var errs []string

	if len(qn.Sections) == 0 {
		errs = append(errs, "no sections defined")
	}

	idSet := make(map[string]bool)
	secSet := make(map[string]bool)

	for _, sec := range qn.Sections {
		if sec.ID == "" {
			errs = append(errs, "section with empty ID")
		}
		if sec.ID == SectionIntroduction || sec.ID == SectionResults {
			errs = append(errs, fmt.Sprintf("section ID %q is reserved", sec.ID))
		}
		if secSet[sec.ID] {
			errs = append(errs, fmt.Sprintf("duplicate section ID: %q", sec.ID))
		}
		secSet[sec.ID] = true

		if len(sec.Questions) == 0 {
			errs = append(errs, fmt.Sprintf("section %q has no questions", sec.ID))
		}
		if sec.ScoreWeight < 0 {
			errs = append(errs, fmt.Sprintf("section %q: ScoreWeight must be >= 0, got %g", sec.ID, sec.ScoreWeight))
		}

		for _, q := range sec.Questions {
			prefix := fmt.Sprintf("section %q question %q", sec.ID, q.ID)
			if q.ID == "" {
				errs = append(errs, fmt.Sprintf("section %q has a question with empty ID", sec.ID))
			}
			if idSet[q.ID] {
				errs = append(errs, fmt.Sprintf("duplicate question ID: %q", q.ID))
			}
			idSet[q.ID] = true

			switch q.Type {
			case TypeScale:
				if len(q.Options) > 0 {
					errs = append(errs, prefix+": scale questions must not declare options")
				}
				if q.Min >= q.Max {
					errs = append(errs, fmt.Sprintf("%s: scale requires min < max, got [%d, %d]", prefix, q.Min, q.Max))
				}
			case TypeMultipleChoice:
				if len(q.Options) == 0 {
					errs = append(errs, prefix+": multiple-choice requires at least one option")
				}
			default:
				errs = append(errs, fmt.Sprintf("%s: unknown type %q", prefix, q.Type))
			}

			if q.Weight < 0 {
				errs = append(errs, fmt.Sprintf("%s: weight must be >= 0, got %g", prefix, q.Weight))
			}
		}
	}

	if len(errs) > 0 {
		return &ValidationError{QuestionnaireID: qn.ID, Problems: errs}
	}

	qn.buildIndex()
	return nil
}

// ApplyDefaults fills the optional per-question fields a definition may
// omit: scale bounds default to [1, 5] and weight to 1. Call before
// Validate when loading external definitions.
func (qn *Questionnaire) ApplyDefaults() {
	for si := range qn.Sections {
		for qi := range qn.Sections[si].Questions {
			q := &qn.Sections[si].Questions[qi]
			if q.Type == TypeScale && q.Min == 0 && q.Max == 0 {
				q.Min = DefaultScaleMin
				q.Max = DefaultScaleMax
			}
			if q.Weight == 0 {
				q.Weight = DefaultWeight
			}
		}
	}
}
