package ai

import (
	"testing"

	"mathwiz/models"
)

func TestBuildOpenQuestionCoding(t *testing.T) {
	text := "Problem: Write a function that reverses a string.\nCode Stub:\n```python\ndef reverse(s):\n    pass\n```"
	q := BuildOpenQuestion("coding_1", "Strings", models.CSQuestionCoding, text)

	if q.QuestionText != "Write a function that reverses a string." {
		t.Errorf("question = %q", q.QuestionText)
	}
	if q.CodeStub != "def reverse(s):\n    pass" {
		t.Errorf("code stub = %q", q.CodeStub)
	}
	if q.QuestionType != models.CSQuestionCoding {
		t.Errorf("kind = %q", q.QuestionType)
	}
}

func TestBuildOpenQuestionTheory(t *testing.T) {
	q := BuildOpenQuestion("theory_1", "OS", models.CSQuestionTheory, "Question: What is a context switch?")
	if q.QuestionText != "What is a context switch?" {
		t.Errorf("question = %q", q.QuestionText)
	}
	if q.CodeStub != "" {
		t.Errorf("code stub = %q", q.CodeStub)
	}
}

func TestBuildOpenQuestionNoMarkers(t *testing.T) {
	q := BuildOpenQuestion("theory_2", "OS", models.CSQuestionTheory, "Explain what a deadlock is.\n")
	if q.QuestionText != "Explain what a deadlock is." {
		t.Errorf("question = %q", q.QuestionText)
	}
}

func TestBuildOpenQuestionUnfencedStub(t *testing.T) {
	text := "Problem: Sum a list.\nCode Stub:\ndef total(xs):\n    pass"
	q := BuildOpenQuestion("coding_2", "Lists", models.CSQuestionCoding, text)
	if q.CodeStub != "def total(xs):\n    pass" {
		t.Errorf("code stub = %q", q.CodeStub)
	}
}
