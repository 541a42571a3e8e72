package app

import (
	"context"
	"testing"
	"time"

	appErrors "mathwiz/internal/errors"
	"mathwiz/models"
)

func newTestPuzzleService(solver *fakeSolver, at time.Time) *PuzzleService {
	s := NewPuzzleService(solver)
	s.now = func() time.Time { return at }
	return s
}

func TestPuzzleServiceCachesWithinDay(t *testing.T) {
	solver := &fakeSolver{Puzzle: models.PuzzlePayload{
		Question: "What is 6 times 4?", Answer: "24", Difficulty: models.DifficultyEasy,
	}}
	svc := newTestPuzzleService(solver, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))

	first, err := svc.Current(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.PuzzleID != "2025-03-10" {
		t.Errorf("puzzle id = %q", first.PuzzleID)
	}

	second, err := svc.Current(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second != first {
		t.Error("same-day request did not reuse the cached puzzle")
	}
	if solver.PuzzleCalls != 1 {
		t.Errorf("generator called %d times, want 1", solver.PuzzleCalls)
	}
}

func TestPuzzleServiceRegeneratesOnRollover(t *testing.T) {
	solver := &fakeSolver{Puzzle: models.PuzzlePayload{
		Question: "q", Answer: "a", Difficulty: models.DifficultyMedium,
	}}
	svc := newTestPuzzleService(solver, time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC))

	if _, err := svc.Current(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	svc.now = func() time.Time { return time.Date(2025, 3, 11, 0, 30, 0, 0, time.UTC) }
	next, err := svc.Current(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.PuzzleID != "2025-03-11" {
		t.Errorf("puzzle id = %q", next.PuzzleID)
	}
	if solver.PuzzleCalls != 2 {
		t.Errorf("generator called %d times, want 2", solver.PuzzleCalls)
	}
}

func TestPuzzleServiceFailureKeepsOldSlot(t *testing.T) {
	solver := &fakeSolver{Puzzle: models.PuzzlePayload{
		Question: "q", Answer: "a", Difficulty: models.DifficultyHard,
	}}
	svc := newTestPuzzleService(solver, time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))

	old, err := svc.Current(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	svc.now = func() time.Time { return time.Date(2025, 3, 11, 12, 0, 0, 0, time.UTC) }
	solver.Err = appErrors.AIEmpty()

	if _, err := svc.Current(context.Background()); err == nil {
		t.Fatal("expected generation failure")
	}
	if svc.cached != old {
		t.Error("failed generation replaced the cached puzzle")
	}
}

func TestPuzzleServiceSubmit(t *testing.T) {
	solver := &fakeSolver{Puzzle: models.PuzzlePayload{
		Question: "What is 6 times 4?", Answer: "24", Difficulty: models.DifficultyEasy,
	}}
	svc := newTestPuzzleService(solver, time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))

	tests := []struct {
		name     string
		puzzleID string
		answer   string
		want     bool
		wantErr  bool
	}{
		{"correct", "2025-03-10", "24", true, false},
		{"correct with whitespace and case", "2025-03-10", "  24 ", true, false},
		{"incorrect", "2025-03-10", "25", false, false},
		{"stale puzzle id", "2025-03-09", "24", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			correct, puzzle, err := svc.Submit(context.Background(), tt.puzzleID, tt.answer)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if correct != tt.want {
				t.Errorf("correct = %v, want %v", correct, tt.want)
			}
			if puzzle == nil || puzzle.Answer != "24" {
				t.Errorf("puzzle = %+v", puzzle)
			}
		})
	}
}
