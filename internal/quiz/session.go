package quiz

import "errors"

var (
	ErrNoPassInProgress = errors.New("no pass in progress")
	ErrPassNotFinished  = errors.New("current pass is not finished")
	ErrSessionCleared   = errors.New("session already cleared")
	ErrSessionNotLoaded = errors.New("session has no item list")
)

// State is the lifecycle phase of a drill session.
type State int

const (
	StateNotStarted State = iota
	StateInProgress
	StateFinished
	StateAllCleared
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "NOT_STARTED"
	case StateInProgress:
		return "IN_PROGRESS"
	case StateFinished:
		return "FINISHED"
	case StateAllCleared:
		return "ALL_CLEARED"
	}
	return "UNKNOWN"
}

// Pass distinguishes the first full iteration from retry-wrong-only passes.
type Pass int

const (
	PassPrimary Pass = iota
	PassRetry
)

// Session drives one drill over an ordered item list: a primary pass, then
// optional retry-wrong-only passes with an incrementing round counter. It
// mirrors the state the client holds between submissions; nothing here is
// persisted — progress rows are appended separately for every answer.
type Session struct {
	state State
	pass  Pass
	round int

	items []int64
	index int

	// Items missed in the current pass, in first-miss order. A later retry
	// pass iterates in exactly this order.
	wrong     []int64
	wrongSeen map[int64]bool

	retryItems []int64
}

// NewSession creates a session over the given ordered item IDs and starts
// the primary pass at round 1.
func NewSession(itemIDs []int64) (*Session, error) {
	if len(itemIDs) == 0 {
		return nil, ErrSessionNotLoaded
	}
	s := &Session{}
	s.load(itemIDs)
	return s, nil
}

func (s *Session) load(itemIDs []int64) {
	s.items = append([]int64(nil), itemIDs...)
	s.index = 0
	s.round = 1
	s.pass = PassPrimary
	s.wrong = nil
	s.wrongSeen = make(map[int64]bool)
	s.retryItems = nil
	s.state = StateInProgress
}

// State returns the current lifecycle phase.
func (s *Session) State() State { return s.state }

// Pass returns whether the active pass is primary or retry.
func (s *Session) Pass() Pass { return s.pass }

// Round returns the round number tagged onto progress rows for this pass.
func (s *Session) Round() int { return s.round }

// active returns the item list the current pass iterates over.
func (s *Session) active() []int64 {
	if s.pass == PassRetry {
		return s.retryItems
	}
	return s.items
}

// Current returns the item the learner should answer next. ok is false when
// no pass is in progress.
func (s *Session) Current() (itemID int64, ok bool) {
	if s.state != StateInProgress {
		return 0, false
	}
	list := s.active()
	if s.index >= len(list) {
		return 0, false
	}
	return list[s.index], true
}

// WrongItems returns the items missed in the current pass, in first-miss order.
func (s *Session) WrongItems() []int64 {
	return append([]int64(nil), s.wrong...)
}

// Answer records the outcome of the current item and advances. An item missed
// more than once in the same pass is tracked only once. When the pass is
// exhausted the session moves to FINISHED, or to ALL_CLEARED if nothing was
// missed; FINISHED then awaits an explicit RetryWrong or Restart decision.
func (s *Session) Answer(itemID int64, correct bool) error {
	if s.state != StateInProgress {
		return ErrNoPassInProgress
	}

	if !correct && !s.wrongSeen[itemID] {
		s.wrongSeen[itemID] = true
		s.wrong = append(s.wrong, itemID)
	}

	s.index++
	if s.index >= len(s.active()) {
		if len(s.wrong) == 0 {
			s.state = StateAllCleared
		} else {
			s.state = StateFinished
		}
	}
	return nil
}

// RetryWrong starts a retry pass over the items missed in the pass that just
// finished, in first-miss order, incrementing the round counter.
func (s *Session) RetryWrong() error {
	if s.state != StateFinished {
		return ErrPassNotFinished
	}

	s.round++
	s.retryItems = s.wrong
	s.wrong = nil
	s.wrongSeen = make(map[int64]bool)
	s.index = 0
	s.pass = PassRetry
	s.state = StateInProgress
	return nil
}

// Restart begins the whole drill again from the original item list at
// round 1. In-memory pass history is discarded; previously appended progress
// rows are untouched.
func (s *Session) Restart() error {
	switch s.state {
	case StateNotStarted:
		return ErrSessionNotLoaded
	case StateAllCleared:
		return ErrSessionCleared
	}
	s.load(s.items)
	return nil
}
