// Package assessment defines the questionnaire data model: questions,
// sections, the questionnaire itself, and the answers a run collects.
// Everything here is immutable configuration once loaded; only the
// AnswerStore mutates during a run.
package assessment

// QuestionType identifies how a question is answered.
type QuestionType string

const (
	// TypeScale is an integer rating within [Min, Max].
	TypeScale QuestionType = "scale"
	// TypeMultipleChoice selects one option; the answer value is the
	// 1-based index of the chosen option.
	TypeMultipleChoice QuestionType = "multiple-choice"
)

// Defaults applied when a definition omits the optional fields.
const (
	DefaultScaleMin = 1
	DefaultScaleMax = 5
	DefaultWeight   = 1.0
)

// Question is a single prompt within a section.
type Question struct {
	ID       string
	Type     QuestionType
	Prompt   string
	Category string // free-form grouping tag, not validated against a vocabulary
	Options  []string
	Min      int
	Max      int
	Weight   float64
}

// MaxValue returns the largest valid answer value for the question:
// Max for scale questions, the option count for multiple choice.
func (q *Question) MaxValue() int {
	if q.Type == TypeMultipleChoice {
		return len(q.Options)
	}
	return q.Max
}

// MinValue returns the smallest valid answer value for the question:
// Min for scale questions, 1 (the first option) for multiple choice.
func (q *Question) MinValue() int {
	if q.Type == TypeMultipleChoice {
		return 1
	}
	return q.Min
}

// InRange reports whether v is a valid answer value for the question.
func (q *Question) InRange(v int) bool {
	return v >= q.MinValue() && v <= q.MaxValue()
}

// Section is a named, weighted group of questions presented and scored
// together. Question order is the presentation order.
type Section struct {
	ID          string
	Title       string
	Description string
	ScoreWeight float64
	Questions   []Question
}

// Questionnaire is an ordered pipeline of sections plus the display
// metadata shown on the introduction screen. The engine treats all text
// as opaque.
type Questionnaire struct {
	ID          string
	Title       string
	Subtitle    string
	Description string
	Duration    string

	// Introduction extras.
	WhatIs            string
	TypicalCareers    []string
	WhoShouldConsider []string

	Sections []Section

	// sectionOf maps question ID to the owning section's ID. Built once
	// by Validate; scoring and the engine both rely on it.
	sectionOf map[string]string
	questions map[string]*Question
}

// QuestionByID returns the question with the given ID, or nil.
func (qn *Questionnaire) QuestionByID(id string) *Question {
	return qn.questions[id]
}

// SectionOf returns the ID of the section owning the given question ID,
// or "" if the question is unknown.
func (qn *Questionnaire) SectionOf(questionID string) string {
	return qn.sectionOf[questionID]
}

// QuestionCount returns the total number of questions across sections.
func (qn *Questionnaire) QuestionCount() int {
	return len(qn.questions)
}

// buildIndex populates the question lookup tables. Called by Validate
// after the structural checks pass.
func (qn *Questionnaire) buildIndex() {
	qn.sectionOf = make(map[string]string)
	qn.questions = make(map[string]*Question)
	for si := range qn.Sections {
		sec := &qn.Sections[si]
		for qi := range sec.Questions {
			q := &sec.Questions[qi]
			qn.sectionOf[q.ID] = sec.ID
			qn.questions[q.ID] = q
		}
	}
}

// Answer records the submitted value for one question. Value is a scale
// rating or a 1-based option index, depending on the question type.
type Answer struct {
	QuestionID string
	Value      int
}
