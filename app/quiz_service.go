package app

import (
	"context"
	"fmt"
	"log"
	"strings"

	appErrors "mathwiz/internal/errors"
	"mathwiz/models"
	"mathwiz/ports"
)

// QuizService generates CS practice questions, evaluates submissions and
// produces learning aids. MCQ evaluation failures degrade to an in-band
// feedback record so the student always gets a verdict page.
type QuizService struct {
	solver ports.Solver
}

// NewQuizService creates a quiz service
func NewQuizService(solver ports.Solver) *QuizService {
	return &QuizService{solver: solver}
}

// Question generates one practice question. An empty kind lets the
// solver pick one at random.
func (s *QuizService) Question(ctx context.Context, chapter string, kind models.CSQuestionKind) (models.CSQuestion, error) {
	if strings.TrimSpace(chapter) == "" {
		return models.CSQuestion{}, appErrors.InvalidInput("chapter name is required")
	}
	return s.solver.GenerateCSQuestion(ctx, chapter, kind)
}

// Evaluate grades a submission. MCQ verdicts come back even when the
// model call fails; coding and theory evaluations propagate errors.
func (s *QuizService) Evaluate(ctx context.Context, sub ports.CSSubmission) (models.ParsedExplanationFeedback, error) {
	if strings.TrimSpace(sub.Answer) == "" {
		return models.ParsedExplanationFeedback{}, appErrors.InvalidInput("answer is required")
	}

	switch sub.Question.QuestionType {
	case models.CSQuestionMCQ:
		fb, err := s.solver.EvaluateMCQ(ctx, sub)
		if err != nil {
			log.Printf("[Quiz] MCQ evaluation failed for %s: %v", sub.Question.ID, err)
			return models.ParsedExplanationFeedback{
				IsCorrect:        false,
				Explanation:      fmt.Sprintf("Error during AI evaluation: %v. Please try again.", err),
				DetailedSolution: "Could not determine the solution due to an evaluation error.",
				AIFeedback:       "An issue occurred while trying to get AI feedback.",
			}, nil
		}
		return fb, nil
	case models.CSQuestionCoding, models.CSQuestionTheory:
		return s.solver.EvaluateSubmission(ctx, sub)
	default:
		return models.ParsedExplanationFeedback{}, appErrors.InvalidInput(fmt.Sprintf("unsupported question type: %s", sub.Question.QuestionType))
	}
}

// Flashcards generates Q/A study cards for a chapter.
func (s *QuizService) Flashcards(ctx context.Context, chapter string) ([]models.Flashcard, error) {
	if strings.TrimSpace(chapter) == "" {
		return nil, appErrors.InvalidInput("chapter name is required")
	}
	return s.solver.GenerateFlashcards(ctx, chapter)
}

// Summary generates a short prose summary for a chapter.
func (s *QuizService) Summary(ctx context.Context, chapter string) (string, error) {
	if strings.TrimSpace(chapter) == "" {
		return "", appErrors.InvalidInput("chapter name is required")
	}
	return s.solver.GenerateSummary(ctx, chapter)
}

// KeyPoints generates a bullet list of key points for a chapter.
func (s *QuizService) KeyPoints(ctx context.Context, chapter string) ([]string, error) {
	if strings.TrimSpace(chapter) == "" {
		return nil, appErrors.InvalidInput("chapter name is required")
	}
	return s.solver.GenerateKeyPoints(ctx, chapter)
}
