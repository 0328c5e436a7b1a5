package session

import (
	"errors"
	"testing"

	"deckgen/pkg/core/generate"
)

func TestNewSessionIsIdle(t *testing.T) {
	s := New()
	if s.Phase != PhaseIdle {
		t.Errorf("Phase = %q, want idle", s.Phase)
	}
	if s.ID == "" {
		t.Error("session ID should be assigned")
	}
}

func TestGenerateTransition(t *testing.T) {
	s := New()

	next, err := Apply(s, Generate{Day: 1, RawAnswers: "my answers"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.Phase != PhaseGenerating {
		t.Errorf("Phase = %q, want generating", next.Phase)
	}
	if next.Day != 1 || next.RawAnswers != "my answers" {
		t.Errorf("inputs not recorded: %+v", next)
	}
}

func TestGenerateRejectsEmptyAnswers(t *testing.T) {
	s := New()
	_, err := Apply(s, Generate{Day: 1})
	if !errors.Is(err, ErrNoAnswers) {
		t.Errorf("got %v, want ErrNoAnswers", err)
	}
}

func TestGenerateRejectedWhileInFlight(t *testing.T) {
	s := New()
	s, _ = Apply(s, Generate{Day: 1, RawAnswers: "answers"})

	if _, err := Apply(s, Generate{Day: 2, RawAnswers: "more"}); !errors.Is(err, ErrGenerationInFlight) {
		t.Errorf("got %v, want ErrGenerationInFlight", err)
	}
	if _, err := Apply(s, RegenerateWithOverrides{}); !errors.Is(err, ErrGenerationInFlight) {
		t.Errorf("got %v, want ErrGenerationInFlight", err)
	}
}

func TestCompleteTransition(t *testing.T) {
	s := New()
	s, _ = Apply(s, Generate{Day: 1, RawAnswers: "answers"})

	result := &generate.Result{Day: 1, Data: map[string]interface{}{"clientName": "Amy"}}
	s, err := Apply(s, Complete{Result: result})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Phase != PhaseReady {
		t.Errorf("Phase = %q, want ready", s.Phase)
	}
	if s.Result != result {
		t.Error("result not recorded")
	}
	if s.Err != nil {
		t.Error("error should be cleared on success")
	}
}

func TestCompleteOnlyFromGenerating(t *testing.T) {
	s := New()
	if _, err := Apply(s, Complete{}); !errors.Is(err, ErrNotGenerating) {
		t.Errorf("got %v, want ErrNotGenerating", err)
	}
	if _, err := Apply(s, Fail{}); !errors.Is(err, ErrNotGenerating) {
		t.Errorf("got %v, want ErrNotGenerating", err)
	}
}

func TestFailKeepsLastResult(t *testing.T) {
	s := New()
	s, _ = Apply(s, Generate{Day: 1, RawAnswers: "answers"})
	result := &generate.Result{Day: 1, Data: map[string]interface{}{}}
	s, _ = Apply(s, Complete{Result: result})

	// Regenerate, then fail: the previous deck stays visible.
	s, _ = Apply(s, RegenerateWithOverrides{Overrides: map[string]string{"niche": "fitness"}})
	s, err := Apply(s, Fail{Err: &generate.Error{Kind: generate.KindRateLimited, Message: "slow down"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.Phase != PhaseFailed {
		t.Errorf("Phase = %q, want failed", s.Phase)
	}
	if s.Result != result {
		t.Error("previous result should survive a failed regenerate")
	}
	if s.Err == nil || s.Err.Kind != generate.KindRateLimited {
		t.Errorf("Err = %+v", s.Err)
	}
}

func TestRegenerateRequiresPriorAnswers(t *testing.T) {
	s := New()
	_, err := Apply(s, RegenerateWithOverrides{Overrides: map[string]string{"a": "b"}})
	if !errors.Is(err, ErrNoAnswers) {
		t.Errorf("got %v, want ErrNoAnswers", err)
	}
}

func TestRegenerateCopiesOverrides(t *testing.T) {
	s := New()
	s, _ = Apply(s, Generate{Day: 1, RawAnswers: "answers"})
	s, _ = Apply(s, Complete{Result: &generate.Result{Day: 1}})

	overrides := map[string]string{"revenueGoal": "$500,000"}
	s, _ = Apply(s, RegenerateWithOverrides{Overrides: overrides})

	// Mutating the caller's map must not leak into session state.
	overrides["revenueGoal"] = "$1"
	if s.Overrides["revenueGoal"] != "$500,000" {
		t.Errorf("Overrides = %v, caller mutation leaked", s.Overrides)
	}
}

func TestFreshGenerateDropsOverrides(t *testing.T) {
	s := New()
	s, _ = Apply(s, Generate{Day: 1, RawAnswers: "answers"})
	s, _ = Apply(s, Complete{Result: &generate.Result{Day: 1}})
	s, _ = Apply(s, RegenerateWithOverrides{Overrides: map[string]string{"a": "b"}})
	s, _ = Apply(s, Complete{Result: &generate.Result{Day: 1}})

	s, _ = Apply(s, Generate{Day: 2, RawAnswers: "new answers"})
	if s.Overrides != nil {
		t.Errorf("Overrides = %v, want nil after fresh generate", s.Overrides)
	}
}

func TestResetKeepsID(t *testing.T) {
	s := New()
	id := s.ID
	s, _ = Apply(s, Generate{Day: 1, RawAnswers: "answers"})
	s, _ = Apply(s, Fail{Err: &generate.Error{Kind: generate.KindEmptyResponse}})

	s, err := Apply(s, Reset{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.ID != id {
		t.Error("reset should keep the session ID")
	}
	if s.Phase != PhaseIdle || s.Result != nil || s.Err != nil || s.RawAnswers != "" {
		t.Errorf("reset state not clean: %+v", s)
	}
}

func TestInvalidTransitionLeavesStateUnchanged(t *testing.T) {
	s := New()
	s, _ = Apply(s, Generate{Day: 1, RawAnswers: "answers"})

	next, err := Apply(s, Generate{Day: 2, RawAnswers: "more"})
	if err == nil {
		t.Fatal("expected error")
	}
	if next.Day != 1 || next.Phase != PhaseGenerating {
		t.Errorf("state mutated on rejected action: %+v", next)
	}
}
