package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "mathwiz/internal/errors"
	"mathwiz/models"
	"mathwiz/ports"
)

func (s *Server) handleSolveText(c *gin.Context) {
	var req SolveTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	solution, xp, err := s.solver.SolveForUser(c.Request.Context(), currentUser(c), req.QuestionText)
	if err != nil {
		s.respondSolverError(c, req.QuestionText, err)
		return
	}
	c.JSON(http.StatusOK, SolutionResponse{
		OriginalProblem: solution.Problem,
		Steps:           stepsOrEmpty(solution.Steps),
		FinalAnswer:     solution.FinalAnswer,
		Explanation:     solution.Explanation,
		UpdatedXP:       xp,
	})
}

// handleGenerateSolution is the unauthenticated variant; no XP changes.
func (s *Server) handleGenerateSolution(c *gin.Context) {
	var req SolveTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	solution, err := s.solver.Solve(c.Request.Context(), req.QuestionText)
	if err != nil {
		s.respondSolverError(c, req.QuestionText, err)
		return
	}
	c.JSON(http.StatusOK, SolutionResponse{
		OriginalProblem: solution.Problem,
		Steps:           stepsOrEmpty(solution.Steps),
		FinalAnswer:     solution.FinalAnswer,
		Explanation:     solution.Explanation,
	})
}

func (s *Server) handleExplainStep(c *gin.Context) {
	var req ExplanationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	var step *models.SolutionStep
	for i := range req.AllSteps {
		if req.AllSteps[i].StepNumber == req.StepNumberToExplain {
			step = &req.AllSteps[i]
			break
		}
	}
	if step == nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Step number not found"})
		return
	}

	explanation, xp, err := s.solver.ExplainStep(c.Request.Context(), currentUser(c), ports.ExplainStepRequest{
		Problem:   req.ProblemText,
		AllSteps:  req.AllSteps,
		Step:      *step,
		QueryType: req.QueryType,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ExplanationResponse{Explanation: explanation, UpdatedXP: xp})
}

func (s *Server) handlePractice(c *gin.Context) {
	var req PracticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	problem, xp, err := s.practice.Generate(c.Request.Context(), currentUser(c), req.Topic, req.PreviousProblem)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, PracticeResponse{
		Problem:             problem.Problem,
		SolutionExplanation: problem.SolutionExplanation,
		UpdatedXP:           xp,
	})
}

func (s *Server) handleDiagnose(c *gin.Context) {
	var req DiagnoseSolutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	feedback, err := s.solver.Diagnose(c.Request.Context(), req.ProblemText, req.UserSteps)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, DiagnoseSolutionResponse{
		Feedback:     feedback,
		FeedbackHTML: renderMarkdown(feedback),
	})
}

func (s *Server) handleChat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	answer, err := s.solver.Chat(c.Request.Context(), req.Question, req.History)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ChatResponse{
		Answer:     answer,
		AnswerHTML: renderMarkdown(answer),
	})
}

// respondSolverError keeps the solve endpoints' contract: upstream AI
// failures come back inside a SolutionResponse body with the matching
// HTTP status.
func (s *Server) respondSolverError(c *gin.Context, question string, err error) {
	if appErrors.HasCode(err, appErrors.CodeInvalidInput) {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(statusForError(err), SolutionResponse{
		OriginalProblem: question,
		Steps:           []models.SolutionStep{},
		Error:           err.Error(),
	})
}

func stepsOrEmpty(steps []models.SolutionStep) []models.SolutionStep {
	if steps == nil {
		return []models.SolutionStep{}
	}
	return steps
}
