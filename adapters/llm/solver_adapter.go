package llm

import (
	"context"
	"fmt"
	"log"
	"math/rand"

	"mathwiz/ai"
	"mathwiz/models"
	"mathwiz/ports"
)

// SolverAdapter implements ports.Solver on top of the Gemini client.
// Replies are sanitized before parsing; parsers never fail, so every
// error out of this adapter is a configuration, transport, or
// content-policy failure.
type SolverAdapter struct {
	client *Client
}

// NewSolverAdapter creates a Gemini-backed solver
func NewSolverAdapter(client *Client) ports.Solver {
	return &SolverAdapter{client: client}
}

func (a *SolverAdapter) SolveProblem(ctx context.Context, question string) (models.ParsedSolution, error) {
	text, err := a.client.Generate(ctx, "", ai.SolvePrompt(question))
	if err != nil {
		return models.ParsedSolution{}, err
	}
	return ai.BuildSolution(question, ai.Sanitize(text)), nil
}

func (a *SolverAdapter) ExplainStep(ctx context.Context, req ports.ExplainStepRequest) (string, error) {
	prompt := ai.ExplainStepPrompt(req.Problem, req.AllSteps, req.Step, req.QueryType)
	text, err := a.client.Generate(ctx, "", prompt)
	if err != nil {
		return "", err
	}
	return ai.Sanitize(text), nil
}

func (a *SolverAdapter) GeneratePractice(ctx context.Context, topic, previousProblem string) (models.PracticeProblem, error) {
	text, err := a.client.Generate(ctx, "", ai.PracticePrompt(topic, previousProblem))
	if err != nil {
		return models.PracticeProblem{}, err
	}
	return ai.SplitPractice(ai.Sanitize(text)), nil
}

func (a *SolverAdapter) DiagnoseSolution(ctx context.Context, problem, userSteps string) (string, error) {
	// Produce a reference solution first so the diagnosis prompt can
	// compare against it. A failed reference solve is not fatal.
	var correctSteps []models.SolutionStep
	var correctSolution string
	if ref, err := a.SolveProblem(ctx, problem); err == nil {
		correctSteps = ref.Steps
		correctSolution = ref.FinalAnswer
	} else {
		log.Printf("[Solver] Reference solve failed, diagnosing without it: %v", err)
	}

	prompt := ai.DiagnosePrompt(problem, userSteps, correctSteps, correctSolution)
	text, err := a.client.Generate(ctx, "", prompt)
	if err != nil {
		return "", err
	}
	return ai.Sanitize(text), nil
}

func (a *SolverAdapter) Chat(ctx context.Context, question string, history []models.ChatMessage) (string, error) {
	text, err := a.client.Generate(ctx, "", ai.ChatPrompt(question, history))
	if err != nil {
		return "", err
	}
	return ai.Sanitize(text), nil
}

func (a *SolverAdapter) GenerateDailyPuzzle(ctx context.Context) (models.PuzzlePayload, error) {
	text, err := a.client.Generate(ctx, "", ai.DailyPuzzlePrompt)
	if err != nil {
		return models.PuzzlePayload{}, err
	}
	return ai.ParsePuzzlePayload(ai.Sanitize(text))
}

func (a *SolverAdapter) GenerateCSQuestion(ctx context.Context, chapter string, kind models.CSQuestionKind) (models.CSQuestion, error) {
	if kind == "" {
		kinds := []models.CSQuestionKind{models.CSQuestionMCQ, models.CSQuestionCoding, models.CSQuestionTheory}
		kind = kinds[rand.Intn(len(kinds))]
	}
	text, err := a.client.Generate(ctx, "", ai.CSQuestionPrompt(chapter, kind))
	if err != nil {
		return models.CSQuestion{}, err
	}
	text = ai.Sanitize(text)

	id := fmt.Sprintf("%s_%d", kind, 1000+rand.Intn(9000))
	if kind == models.CSQuestionMCQ {
		return ai.BuildMCQ(id, chapter, text), nil
	}
	return ai.BuildOpenQuestion(id, chapter, kind, text), nil
}

func (a *SolverAdapter) EvaluateMCQ(ctx context.Context, sub ports.CSSubmission) (models.ParsedExplanationFeedback, error) {
	selectedText := ""
	for _, opt := range sub.Question.Options {
		if opt.ID == sub.Answer {
			selectedText = opt.Text
		}
	}
	prompt := ai.MCQEvalPrompt(sub.Question, sub.Answer, selectedText)
	text, err := a.client.Generate(ctx, "", prompt)
	if err != nil {
		return models.ParsedExplanationFeedback{}, err
	}
	return ai.BuildFeedback(ai.Sanitize(text)), nil
}

func (a *SolverAdapter) EvaluateSubmission(ctx context.Context, sub ports.CSSubmission) (models.ParsedExplanationFeedback, error) {
	prompt := ai.SubmissionEvalPrompt(sub.Question.QuestionType, sub.Question.QuestionText, sub.Answer)
	text, err := a.client.Generate(ctx, "", prompt)
	if err != nil {
		return models.ParsedExplanationFeedback{}, err
	}
	return ai.BuildEvalFeedback(ai.Sanitize(text)), nil
}

func (a *SolverAdapter) GenerateFlashcards(ctx context.Context, chapter string) ([]models.Flashcard, error) {
	text, err := a.client.Generate(ctx, "", ai.FlashcardsPrompt(chapter))
	if err != nil {
		return nil, err
	}
	return ai.ParseFlashcards(ai.Sanitize(text)), nil
}

func (a *SolverAdapter) GenerateSummary(ctx context.Context, chapter string) (string, error) {
	text, err := a.client.Generate(ctx, "", ai.SummaryPrompt(chapter))
	if err != nil {
		return "", err
	}
	return ai.Sanitize(text), nil
}

func (a *SolverAdapter) GenerateKeyPoints(ctx context.Context, chapter string) ([]string, error) {
	text, err := a.client.Generate(ctx, "", ai.KeyPointsPrompt(chapter))
	if err != nil {
		return nil, err
	}
	return ai.ParseKeyPoints(ai.Sanitize(text)), nil
}
