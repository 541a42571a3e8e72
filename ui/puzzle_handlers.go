package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleDailyPuzzle(c *gin.Context) {
	puzzle, err := s.puzzle.Current(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, DailyPuzzleResponse{
		PuzzleID:   puzzle.PuzzleID,
		Question:   puzzle.Question,
		Difficulty: string(puzzle.Difficulty),
	})
}

func (s *Server) handleSubmitPuzzle(c *gin.Context) {
	var req SubmitPuzzleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	correct, puzzle, err := s.puzzle.Submit(c.Request.Context(), req.PuzzleID, req.UserAnswer)
	if err != nil {
		respondError(c, err)
		return
	}

	if correct {
		c.JSON(http.StatusOK, SubmitPuzzleResponse{
			IsCorrect: true,
			Message:   "Congratulations! Your answer is correct.",
			PuzzleID:  puzzle.PuzzleID,
		})
		return
	}
	c.JSON(http.StatusOK, SubmitPuzzleResponse{
		IsCorrect:     false,
		Message:       "Sorry, that's not the correct answer. Try again tomorrow or review the solution!",
		CorrectAnswer: puzzle.Answer,
		PuzzleID:      puzzle.PuzzleID,
	})
}
