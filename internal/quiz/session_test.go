package quiz

import (
	"errors"
	"testing"
)

// answerAll drains the current pass, marking the given IDs wrong.
func answerAll(t *testing.T, s *Session, wrongIDs map[int64]bool) {
	t.Helper()
	for {
		id, ok := s.Current()
		if !ok {
			return
		}
		if err := s.Answer(id, !wrongIDs[id]); err != nil {
			t.Fatalf("Answer(%d): %v", id, err)
		}
	}
}

func TestNewSessionEmptyList(t *testing.T) {
	if _, err := NewSession(nil); !errors.Is(err, ErrSessionNotLoaded) {
		t.Errorf("NewSession(nil) error = %v, want ErrSessionNotLoaded", err)
	}
}

func TestSessionPrimaryPass(t *testing.T) {
	s, err := NewSession([]int64{1, 2, 3, 4, 5})
	if err != nil {
		t.Fatal(err)
	}
	if s.State() != StateInProgress || s.Round() != 1 || s.Pass() != PassPrimary {
		t.Fatalf("fresh session state = %v round %d pass %v", s.State(), s.Round(), s.Pass())
	}

	answerAll(t, s, map[int64]bool{2: true, 4: true})

	if s.State() != StateFinished {
		t.Errorf("state after pass with misses = %v, want FINISHED", s.State())
	}
	wrong := s.WrongItems()
	if len(wrong) != 2 || wrong[0] != 2 || wrong[1] != 4 {
		t.Errorf("WrongItems = %v, want [2 4]", wrong)
	}
}

func TestSessionAllCleared(t *testing.T) {
	s, err := NewSession([]int64{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	answerAll(t, s, nil)

	if s.State() != StateAllCleared {
		t.Errorf("state = %v, want ALL_CLEARED", s.State())
	}
	if err := s.Answer(1, true); !errors.Is(err, ErrNoPassInProgress) {
		t.Errorf("Answer after clear error = %v, want ErrNoPassInProgress", err)
	}
	if err := s.Restart(); !errors.Is(err, ErrSessionCleared) {
		t.Errorf("Restart after clear error = %v, want ErrSessionCleared", err)
	}
}

func TestSessionDuplicateMissTrackedOnce(t *testing.T) {
	s, err := NewSession([]int64{7, 7, 8})
	if err != nil {
		t.Fatal(err)
	}
	answerAll(t, s, map[int64]bool{7: true})

	wrong := s.WrongItems()
	if len(wrong) != 1 || wrong[0] != 7 {
		t.Errorf("WrongItems = %v, want [7]", wrong)
	}
}

func TestSessionRetryWrong(t *testing.T) {
	s, err := NewSession([]int64{1, 2, 3, 4, 5})
	if err != nil {
		t.Fatal(err)
	}

	if err := s.RetryWrong(); !errors.Is(err, ErrPassNotFinished) {
		t.Errorf("RetryWrong mid-pass error = %v, want ErrPassNotFinished", err)
	}

	answerAll(t, s, map[int64]bool{2: true, 4: true})
	if err := s.RetryWrong(); err != nil {
		t.Fatalf("RetryWrong: %v", err)
	}

	if s.Round() != 2 || s.Pass() != PassRetry || s.State() != StateInProgress {
		t.Fatalf("retry pass round %d pass %v state %v", s.Round(), s.Pass(), s.State())
	}

	// Retry iterates missed items in first-miss order
	var order []int64
	for {
		id, ok := s.Current()
		if !ok {
			break
		}
		order = append(order, id)
		if err := s.Answer(id, true); err != nil {
			t.Fatal(err)
		}
	}
	if len(order) != 2 || order[0] != 2 || order[1] != 4 {
		t.Errorf("retry order = %v, want [2 4]", order)
	}
	if s.State() != StateAllCleared {
		t.Errorf("state after clean retry = %v, want ALL_CLEARED", s.State())
	}
}

func TestSessionRepeatedRetry(t *testing.T) {
	s, err := NewSession([]int64{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	answerAll(t, s, map[int64]bool{1: true, 3: true})

	if err := s.RetryWrong(); err != nil {
		t.Fatal(err)
	}
	answerAll(t, s, map[int64]bool{3: true})

	if s.State() != StateFinished {
		t.Fatalf("state = %v, want FINISHED", s.State())
	}
	if err := s.RetryWrong(); err != nil {
		t.Fatal(err)
	}
	if s.Round() != 3 {
		t.Errorf("round = %d, want 3", s.Round())
	}
	id, ok := s.Current()
	if !ok || id != 3 {
		t.Errorf("Current = %d,%v, want 3,true", id, ok)
	}
}

func TestSessionRestart(t *testing.T) {
	s, err := NewSession([]int64{1, 2})
	if err != nil {
		t.Fatal(err)
	}
	answerAll(t, s, map[int64]bool{2: true})
	if err := s.RetryWrong(); err != nil {
		t.Fatal(err)
	}

	if err := s.Restart(); err != nil {
		t.Fatalf("Restart: %v", err)
	}
	if s.Round() != 1 || s.Pass() != PassPrimary || s.State() != StateInProgress {
		t.Errorf("after restart: round %d pass %v state %v", s.Round(), s.Pass(), s.State())
	}
	id, ok := s.Current()
	if !ok || id != 1 {
		t.Errorf("Current after restart = %d,%v, want 1,true", id, ok)
	}
	if len(s.WrongItems()) != 0 {
		t.Errorf("WrongItems after restart = %v, want empty", s.WrongItems())
	}
}
