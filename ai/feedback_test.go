package ai

import "testing"

func TestBuildFeedbackWellFormed(t *testing.T) {
	text := `Correctness: Yes
CorrectOptionID: opt2
CorrectOptionText: Depth-first search
Explanation: DFS explores as deep as possible before backtracking.
AI_Feedback: Good job!
DetailedSolution: Option opt2 is correct because DFS uses a stack.`

	fb := BuildFeedback(text)

	if !fb.IsCorrect {
		t.Error("expected correct verdict")
	}
	if fb.CorrectOptionID != "opt2" {
		t.Errorf("correct option id = %q", fb.CorrectOptionID)
	}
	if fb.CorrectOptionText != "Depth-first search" {
		t.Errorf("correct option text = %q", fb.CorrectOptionText)
	}
	if fb.Explanation != "DFS explores as deep as possible before backtracking." {
		t.Errorf("explanation = %q", fb.Explanation)
	}
}

func TestBuildFeedbackCorrectnessVerdicts(t *testing.T) {
	tests := []struct {
		name string
		span string
		want bool
	}{
		{"yes", "Correctness: Yes", true},
		{"yes lowercase", "correctness: yes", true},
		{"yes with period", "Correctness: Yes.", true},
		{"no", "Correctness: No", false},
		{"partially", "Correctness: Partially", false},
		{"missing", "Explanation: something", false},
		{"garbage", "Correctness: maybe so", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildFeedback(tt.span).IsCorrect; got != tt.want {
				t.Errorf("IsCorrect = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildFeedbackPlaceholders(t *testing.T) {
	fb := BuildFeedback("rambling reply with no labels at all")
	if fb.IsCorrect {
		t.Error("unlabeled reply must not be marked correct")
	}
	if fb.Explanation != "AI could not provide a clear explanation." {
		t.Errorf("explanation = %q", fb.Explanation)
	}
	if fb.CorrectOptionText != "Could not determine from AI." {
		t.Errorf("correct option text = %q", fb.CorrectOptionText)
	}
}

func TestBuildEvalFeedbackCoding(t *testing.T) {
	text := `Correctness: Partially
Explanation: The loop bound is off by one.
AI Feedback: Consider range(len(xs)) instead.
Detailed Solution: def total(xs): return sum(xs)
Simulated Output: Calling total([1, 2]) should return 3`

	fb := BuildEvalFeedback(text)

	if fb.IsCorrect {
		t.Error("partially must map to false")
	}
	if fb.Explanation != "The loop bound is off by one." {
		t.Errorf("explanation = %q", fb.Explanation)
	}
	if fb.AIFeedback != "Consider range(len(xs)) instead." {
		t.Errorf("ai feedback = %q", fb.AIFeedback)
	}
	if fb.DetailedSolution != "def total(xs): return sum(xs)" {
		t.Errorf("detailed solution = %q", fb.DetailedSolution)
	}
	if fb.SimulatedOutput != "Calling total([1, 2]) should return 3" {
		t.Errorf("simulated output = %q", fb.SimulatedOutput)
	}
}

func TestBuildEvalFeedbackUnparseable(t *testing.T) {
	fb := BuildEvalFeedback("free prose with nothing labeled")
	if fb.Explanation != "Could not parse explanation." {
		t.Errorf("explanation = %q", fb.Explanation)
	}
	if fb.IsCorrect {
		t.Error("unlabeled reply must not be marked correct")
	}
}
