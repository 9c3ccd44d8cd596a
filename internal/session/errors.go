package session

import "errors"

var (
	// ErrUnknownQuestion rejects an answer whose question ID is not in
	// the loaded questionnaire. The store is left unchanged.
	ErrUnknownQuestion = errors.New("unknown question")

	// ErrOutOfRangeAnswer is advisory: the answer was stored, but its
	// value is outside the question's declared bounds. Scoring clamps,
	// so navigation may continue.
	ErrOutOfRangeAnswer = errors.New("answer value out of range")

	// ErrPrematureAdvance rejects Advance while the current question has
	// no stored answer. State is unchanged.
	ErrPrematureAdvance = errors.New("current question not answered")

	// ErrNotStarted rejects question-phase operations while the engine
	// is on the introduction or results phase.
	ErrNotStarted = errors.New("no active question")

	// ErrInvalidJump rejects JumpToSection from anywhere but the
	// introduction, or to any section but the first.
	ErrInvalidJump = errors.New("jump not allowed from current phase")
)
