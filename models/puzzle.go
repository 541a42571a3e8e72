package models

import "time"

// Difficulty is the rating of a daily puzzle.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ValidDifficulty reports whether d is one of the recognized ratings.
func ValidDifficulty(d Difficulty) bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// DailyPuzzle is the single puzzle shared by all users on a calendar day.
// PuzzleID is the ISO date it was generated on; the answer never leaves the
// server except when revealing it after an incorrect submission.
type DailyPuzzle struct {
	PuzzleID        string     `json:"puzzle_id"`
	Question        string     `json:"question"`
	Answer          string     `json:"-"`
	Difficulty      Difficulty `json:"difficulty"`
	GeneratedOnDate time.Time  `json:"generated_on_date"`
}

// PuzzlePayload is a freshly generated puzzle before it is stamped with
// an ID and date.
type PuzzlePayload struct {
	Question   string
	Answer     string
	Difficulty Difficulty
}
