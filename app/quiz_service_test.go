package app

import (
	"context"
	"strings"
	"testing"

	appErrors "mathwiz/internal/errors"
	"mathwiz/models"
	"mathwiz/ports"
)

func TestQuizEvaluateMCQDegradesOnFailure(t *testing.T) {
	solver := &fakeSolver{Err: appErrors.AIEmpty()}
	svc := NewQuizService(solver)

	fb, err := svc.Evaluate(context.Background(), ports.CSSubmission{
		Question: models.CSQuestion{ID: "mcq_1", QuestionType: models.CSQuestionMCQ},
		Answer:   models.OptionID1,
	})
	if err != nil {
		t.Fatalf("MCQ evaluation must degrade in-band, got %v", err)
	}
	if fb.IsCorrect {
		t.Error("degraded verdict must be incorrect")
	}
	if !strings.Contains(fb.Explanation, "Error during AI evaluation") {
		t.Errorf("explanation = %q", fb.Explanation)
	}
}

func TestQuizEvaluateCodingPropagatesFailure(t *testing.T) {
	solver := &fakeSolver{Err: appErrors.AIEmpty()}
	svc := NewQuizService(solver)

	_, err := svc.Evaluate(context.Background(), ports.CSSubmission{
		Question: models.CSQuestion{ID: "coding_1", QuestionType: models.CSQuestionCoding},
		Answer:   "def f(): pass",
	})
	if !appErrors.HasCode(err, appErrors.CodeAIEmpty) {
		t.Errorf("err = %v", err)
	}
}

func TestQuizEvaluateValidation(t *testing.T) {
	svc := NewQuizService(&fakeSolver{})

	_, err := svc.Evaluate(context.Background(), ports.CSSubmission{
		Question: models.CSQuestion{QuestionType: models.CSQuestionMCQ},
	})
	if !appErrors.HasCode(err, appErrors.CodeInvalidInput) {
		t.Errorf("empty answer: err = %v", err)
	}

	_, err = svc.Evaluate(context.Background(), ports.CSSubmission{
		Question: models.CSQuestion{QuestionType: "essay"},
		Answer:   "words",
	})
	if !appErrors.HasCode(err, appErrors.CodeInvalidInput) {
		t.Errorf("bad kind: err = %v", err)
	}
}

func TestQuizChapterRequired(t *testing.T) {
	svc := NewQuizService(&fakeSolver{})

	if _, err := svc.Question(context.Background(), " ", models.CSQuestionMCQ); !appErrors.HasCode(err, appErrors.CodeInvalidInput) {
		t.Errorf("question: err = %v", err)
	}
	if _, err := svc.Flashcards(context.Background(), ""); !appErrors.HasCode(err, appErrors.CodeInvalidInput) {
		t.Errorf("flashcards: err = %v", err)
	}
	if _, err := svc.Summary(context.Background(), ""); !appErrors.HasCode(err, appErrors.CodeInvalidInput) {
		t.Errorf("summary: err = %v", err)
	}
	if _, err := svc.KeyPoints(context.Background(), ""); !appErrors.HasCode(err, appErrors.CodeInvalidInput) {
		t.Errorf("key points: err = %v", err)
	}
}
