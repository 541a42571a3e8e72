package ports

import (
	"context"

	"mathwiz/models"
)

// ExplainStepRequest carries the context for explaining one step of a
// previously produced solution.
type ExplainStepRequest struct {
	Problem   string
	AllSteps  []models.SolutionStep
	Step      models.SolutionStep
	QueryType string // "why" or "how"
}

// CSSubmission carries a student's answer to a generated CS question.
type CSSubmission struct {
	Question models.CSQuestion
	Answer   string
}

// Solver delegates tutoring work to a language model and returns typed
// results. Implementations degrade parse failures in-band; errors are
// reserved for configuration, transport, and content-policy failures.
type Solver interface {
	SolveProblem(ctx context.Context, question string) (models.ParsedSolution, error)
	ExplainStep(ctx context.Context, req ExplainStepRequest) (string, error)
	GeneratePractice(ctx context.Context, topic, previousProblem string) (models.PracticeProblem, error)
	DiagnoseSolution(ctx context.Context, problem, userSteps string) (string, error)
	Chat(ctx context.Context, question string, history []models.ChatMessage) (string, error)

	GenerateDailyPuzzle(ctx context.Context) (models.PuzzlePayload, error)

	GenerateCSQuestion(ctx context.Context, chapter string, kind models.CSQuestionKind) (models.CSQuestion, error)
	EvaluateMCQ(ctx context.Context, sub CSSubmission) (models.ParsedExplanationFeedback, error)
	EvaluateSubmission(ctx context.Context, sub CSSubmission) (models.ParsedExplanationFeedback, error)

	GenerateFlashcards(ctx context.Context, chapter string) ([]models.Flashcard, error)
	GenerateSummary(ctx context.Context, chapter string) (string, error)
	GenerateKeyPoints(ctx context.Context, chapter string) ([]string, error)
}
