package app

import (
	"context"
	"log"
	"time"

	"mathwiz/ai"
	appErrors "mathwiz/internal/errors"
	"mathwiz/models"
	"mathwiz/ports"
)

// PuzzleService serves one shared puzzle per calendar day out of a
// single cache slot. The slot is read and replaced without a lock:
// concurrent first requests of the day may each trigger a generation and
// the last write wins, which is harmless since every generated puzzle
// for a date is equally valid. A failed generation leaves the previous
// slot untouched.
type PuzzleService struct {
	solver ports.Solver
	now    func() time.Time
	cached *models.DailyPuzzle
}

// NewPuzzleService creates a puzzle service using the wall clock.
func NewPuzzleService(solver ports.Solver) *PuzzleService {
	return &PuzzleService{solver: solver, now: time.Now}
}

// Current returns today's puzzle, generating and caching it on the first
// request of the day.
func (s *PuzzleService) Current(ctx context.Context) (*models.DailyPuzzle, error) {
	today := s.now().UTC()
	todayID := today.Format("2006-01-02")

	if cached := s.cached; cached != nil && cached.PuzzleID == todayID {
		return cached, nil
	}

	payload, err := s.solver.GenerateDailyPuzzle(ctx)
	if err != nil {
		return nil, err
	}

	puzzle := &models.DailyPuzzle{
		PuzzleID:        todayID,
		Question:        payload.Question,
		Answer:          payload.Answer,
		Difficulty:      payload.Difficulty,
		GeneratedOnDate: today.Truncate(24 * time.Hour),
	}
	s.cached = puzzle
	log.Printf("[Puzzle] Generated daily puzzle %s (%s)", todayID, puzzle.Difficulty)
	return puzzle, nil
}

// Submit checks an answer against today's puzzle. A stale puzzle ID is
// rejected so yesterday's answer cannot score against today's puzzle.
func (s *PuzzleService) Submit(ctx context.Context, puzzleID, answer string) (bool, *models.DailyPuzzle, error) {
	puzzle, err := s.Current(ctx)
	if err != nil {
		return false, nil, err
	}
	if puzzleID != puzzle.PuzzleID {
		return false, nil, appErrors.InvalidInput("puzzle ID does not match today's puzzle")
	}
	return ai.AnswersMatch(answer, puzzle.Answer), puzzle, nil
}
