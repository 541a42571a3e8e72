package ai

import (
	"testing"

	"mathwiz/models"
)

func TestParsePuzzlePayload(t *testing.T) {
	text := `{"question": "What is 6 times 4?", "answer": "24", "difficulty": "easy"}`
	p, err := ParsePuzzlePayload(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Question != "What is 6 times 4?" || p.Answer != "24" || p.Difficulty != models.DifficultyEasy {
		t.Errorf("payload = %+v", p)
	}
}

func TestParsePuzzlePayloadCodeFence(t *testing.T) {
	text := "Here you go:\n```json\n{\"question\": \"q\", \"answer\": \"a\", \"difficulty\": \"medium\"}\n```"
	p, err := ParsePuzzlePayload(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Question != "q" || p.Difficulty != models.DifficultyMedium {
		t.Errorf("payload = %+v", p)
	}
}

func TestParsePuzzlePayloadNumericAnswer(t *testing.T) {
	p, err := ParsePuzzlePayload(`{"question": "q", "answer": 24, "difficulty": "hard"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Answer != "24" {
		t.Errorf("answer = %q", p.Answer)
	}
}

func TestParsePuzzlePayloadErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"not json", "the puzzle is: what is 2+2?"},
		{"missing question", `{"answer": "24", "difficulty": "easy"}`},
		{"missing answer", `{"question": "q", "difficulty": "easy"}`},
		{"bad difficulty", `{"question": "q", "answer": "a", "difficulty": "impossible"}`},
		{"answer is object", `{"question": "q", "answer": {"v": 1}, "difficulty": "easy"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParsePuzzlePayload(tt.text); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
