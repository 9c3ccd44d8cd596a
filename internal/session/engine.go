// Package session drives a single assessment run: a strictly linear
// walk from the introduction through each section's questions to the
// results phase, collecting answers along the way and scoring them on
// arrival. One engine instance owns one run at a time; calls must be
// serialized by the host.
package session

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/compass/internal/assessment"
	"github.com/abhisek/compass/internal/scoring"
)

// Phase is the coarse state of the navigation machine.
type Phase int

const (
	PhaseIntroduction Phase = iota // entry point, no current question
	PhaseQuestions                 // walking section questions
	PhaseResults                   // terminal, result available
)

// Engine is the navigation state machine over a validated
// questionnaire. The zero value is not usable; construct with New.
type Engine struct {
	questionnaire *assessment.Questionnaire
	config        scoring.Config
	answers       *assessment.AnswerStore

	runID    string
	phase    Phase
	section  int // index into questionnaire.Sections, valid in PhaseQuestions
	question int // index into the current section's questions
	result   *scoring.Result
}

// New validates the questionnaire and returns an engine positioned on
// the introduction. Returns a *assessment.ValidationError when the
// definition violates a structural invariant.
func New(qn *assessment.Questionnaire, cfg scoring.Config) (*Engine, error) {
	if err := qn.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		questionnaire: qn,
		config:        cfg,
		answers:       assessment.NewAnswerStore(),
		runID:         uuid.NewString(),
		phase:         PhaseIntroduction,
	}, nil
}

// RunID identifies the current run; Restart issues a new one.
func (e *Engine) RunID() string { return e.runID }

// Phase returns the current phase.
func (e *Engine) Phase() Phase { return e.phase }

// Questionnaire returns the loaded questionnaire.
func (e *Engine) Questionnaire() *assessment.Questionnaire { return e.questionnaire }

// Answers returns the run's answer store.
func (e *Engine) Answers() *assessment.AnswerStore { return e.answers }

// CurrentSection returns the section being walked, or nil outside the
// question phase.
func (e *Engine) CurrentSection() *assessment.Section {
	if e.phase != PhaseQuestions {
		return nil
	}
	return &e.questionnaire.Sections[e.section]
}

// CurrentQuestion returns the active question, or nil on the
// introduction and results phases.
func (e *Engine) CurrentQuestion() *assessment.Question {
	sec := e.CurrentSection()
	if sec == nil {
		return nil
	}
	return &sec.Questions[e.question]
}

// QuestionIndex returns the zero-based position of the current question
// within its section, or -1 outside the question phase.
func (e *Engine) QuestionIndex() int {
	if e.phase != PhaseQuestions {
		return -1
	}
	return e.question
}

// Result returns the computed result, or nil before the results phase.
func (e *Engine) Result() *scoring.Result { return e.result }

// SubmitAnswer upserts the value for the question ID. Unknown IDs are
// rejected with ErrUnknownQuestion and leave the store unchanged.
// Out-of-range values are stored anyway and flagged with
// ErrOutOfRangeAnswer; scoring clamps them, so callers may treat the
// error as a warning.
func (e *Engine) SubmitAnswer(questionID string, value int) error {
	q := e.questionnaire.QuestionByID(questionID)
	if q == nil {
		return fmt.Errorf("%w: %q", ErrUnknownQuestion, questionID)
	}
	e.answers.Upsert(assessment.Answer{QuestionID: questionID, Value: value})
	if !q.InRange(value) {
		return fmt.Errorf("%w: %d not in [%d, %d] for %q",
			ErrOutOfRangeAnswer, value, q.MinValue(), q.MaxValue(), questionID)
	}
	return nil
}

// Begin leaves the introduction for the first section's first question.
// Equivalent to JumpToSection on the first section.
func (e *Engine) Begin() error {
	if e.phase != PhaseIntroduction {
		return ErrInvalidJump
	}
	e.phase = PhaseQuestions
	e.section = 0
	e.question = 0
	return nil
}

// JumpToSection is only a valid transition from the introduction, and
// only to the first section; the walk is strictly linear.
func (e *Engine) JumpToSection(id string) error {
	if e.phase != PhaseIntroduction || len(e.questionnaire.Sections) == 0 {
		return ErrInvalidJump
	}
	if e.questionnaire.Sections[0].ID != id {
		return fmt.Errorf("%w: %q is not the first section", ErrInvalidJump, id)
	}
	return e.Begin()
}

// Advance moves forward one question, crossing into the next section
// when the current one is exhausted. Advancing past the last question
// of the last section scores the run synchronously and enters the
// results phase. The current question must already have a stored
// answer; otherwise ErrPrematureAdvance is returned and state is
// unchanged.
func (e *Engine) Advance() error {
	if e.phase != PhaseQuestions {
		return ErrNotStarted
	}

	q := e.CurrentQuestion()
	if !e.answers.Has(q.ID) {
		return fmt.Errorf("%w: %q", ErrPrematureAdvance, q.ID)
	}

	sec := e.CurrentSection()
	switch {
	case e.question < len(sec.Questions)-1:
		e.question++
	case e.section < len(e.questionnaire.Sections)-1:
		e.section++
		e.question = 0
	default:
		e.result = scoring.Score(e.questionnaire, e.answers.All(), e.config)
		e.phase = PhaseResults
	}
	return nil
}

// Retreat mirrors Advance: back one question, crossing into the tail of
// the previous section, and from the very first question back to the
// introduction. Retreat never blocks and never discards answers.
func (e *Engine) Retreat() {
	if e.phase != PhaseQuestions {
		return
	}
	switch {
	case e.question > 0:
		e.question--
	case e.section > 0:
		e.section--
		e.question = len(e.questionnaire.Sections[e.section].Questions) - 1
	default:
		e.phase = PhaseIntroduction
	}
}

// Restart unconditionally resets to the introduction: answers cleared,
// result discarded, fresh run ID.
func (e *Engine) Restart() {
	e.phase = PhaseIntroduction
	e.section = 0
	e.question = 0
	e.result = nil
	e.answers.Clear()
	e.runID = uuid.NewString()
}
