package assessment

// AnswerStore holds the answers collected during a single run. Upserts
// are idempotent per question ID and the store preserves first-insertion
// order for stable iteration. The store does no range validation; that
// is the caller's concern, and scoring clamps regardless.
//
// The store is not safe for concurrent use. A run is driven by discrete
// user actions from a single goroutine; a concurrent host must
// serialize access.
type AnswerStore struct {
	order  []string
	values map[string]int
}

// NewAnswerStore returns an empty store.
func NewAnswerStore() *AnswerStore {
	return &AnswerStore{values: make(map[string]int)}
}

// Upsert records the answer, replacing any existing value for the same
// question ID. The question keeps its original position in iteration
// order when replaced.
func (s *AnswerStore) Upsert(a Answer) {
	if _, exists := s.values[a.QuestionID]; !exists {
		s.order = append(s.order, a.QuestionID)
	}
	s.values[a.QuestionID] = a.Value
}

// Get returns the answer for the question ID, and whether one exists.
func (s *AnswerStore) Get(questionID string) (Answer, bool) {
	v, ok := s.values[questionID]
	if !ok {
		return Answer{}, false
	}
	return Answer{QuestionID: questionID, Value: v}, true
}

// Has reports whether an answer exists for the question ID.
func (s *AnswerStore) Has(questionID string) bool {
	_, ok := s.values[questionID]
	return ok
}

// Len returns the number of stored answers.
func (s *AnswerStore) Len() int {
	return len(s.order)
}

// All returns the answers in insertion order.
func (s *AnswerStore) All() []Answer {
	out := make([]Answer, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, Answer{QuestionID: id, Value: s.values[id]})
	}
	return out
}

// Clear empties the store. Used by restart.
func (s *AnswerStore) Clear() {
	s.order = nil
	s.values = make(map[string]int)
}
