package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mathwiz/models"
	"mathwiz/ports"
)

func (s *Server) handleCSQuestion(c *gin.Context) {
	var req CSQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	kind := models.CSQuestionKind(req.RequestedQuestionType)
	switch kind {
	case "", models.CSQuestionMCQ, models.CSQuestionCoding, models.CSQuestionTheory:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"detail": "unsupported question type"})
		return
	}

	question, err := s.quiz.Question(c.Request.Context(), req.ChapterName, kind)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, question)
}

func (s *Server) handleCSSubmit(c *gin.Context) {
	var req CSSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	feedback, err := s.quiz.Evaluate(c.Request.Context(), ports.CSSubmission{
		Question: models.CSQuestion{
			ID:           req.QuestionID,
			QuestionType: models.CSQuestionKind(req.QuestionType),
			QuestionText: req.QuestionText,
			Options:      req.Options,
		},
		Answer: req.Answer,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, CSSubmissionFeedbackResponse{
		Correct:           feedback.IsCorrect,
		Explanation:       feedback.Explanation,
		DetailedSolution:  feedback.DetailedSolution,
		SimulatedOutput:   feedback.SimulatedOutput,
		AIFeedback:        feedback.AIFeedback,
		CorrectOptionID:   feedback.CorrectOptionID,
		CorrectOptionText: feedback.CorrectOptionText,
	})
}

func (s *Server) handleLearningAids(c *gin.Context) {
	var req LearningAidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	ctx := c.Request.Context()
	switch req.AidType {
	case "flashcards":
		cards, err := s.quiz.Flashcards(ctx, req.ChapterName)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, FlashcardsResponse{Chapter: req.ChapterName, AidType: "flashcards", Flashcards: cards})
	case "summary":
		summary, err := s.quiz.Summary(ctx, req.ChapterName)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, SummaryResponse{Chapter: req.ChapterName, AidType: "summary", Summary: summary})
	case "key_points":
		points, err := s.quiz.KeyPoints(ctx, req.ChapterName)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, KeyPointsResponse{Chapter: req.ChapterName, AidType: "key_points", KeyPoints: points})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"detail": "unsupported aid type"})
	}
}
