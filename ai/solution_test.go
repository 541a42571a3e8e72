package ai

import (
	"fmt"
	"strings"
	"testing"
)

func TestBuildSolutionFullReply(t *testing.T) {
	text := "Explanation:\nUse substitution.\nSteps:\n1. Set y=2x\n2. Substitute\nSolution:\nx=4"
	sol := BuildSolution("solve for x", text)

	if sol.Problem != "solve for x" {
		t.Errorf("problem = %q", sol.Problem)
	}
	if sol.Explanation != "Use substitution." {
		t.Errorf("explanation = %q", sol.Explanation)
	}
	if len(sol.Steps) != 2 {
		t.Fatalf("got %d steps, want 2", len(sol.Steps))
	}
	if sol.Steps[0].StepNumber != 1 || sol.Steps[0].Explanation != "Set y=2x" {
		t.Errorf("step 1 = %+v", sol.Steps[0])
	}
	if sol.Steps[1].StepNumber != 2 || sol.Steps[1].Explanation != "Substitute" {
		t.Errorf("step 2 = %+v", sol.Steps[1])
	}
	if sol.FinalAnswer != "x=4" {
		t.Errorf("final answer = %q", sol.FinalAnswer)
	}
}

func TestBuildSolutionNoMarkers(t *testing.T) {
	text := "The answer is simply 42."
	sol := BuildSolution("p", text)

	if sol.Explanation != "The answer is simply 42." {
		t.Errorf("explanation = %q", sol.Explanation)
	}
	if len(sol.Steps) != 0 {
		t.Errorf("steps = %+v", sol.Steps)
	}
	if sol.FinalAnswer != "" {
		t.Errorf("final answer = %q", sol.FinalAnswer)
	}
}

func TestBuildSolutionStepVariants(t *testing.T) {
	tests := []struct {
		name string
		span string
		want []string
	}{
		{"numbered with dots", "1. first\n2. second\n3. third", []string{"first", "second", "third"}},
		{"numbered with parens", "1) first\n2) second", []string{"first", "second"}},
		{"hyphen bullets", "- first\n- second", []string{"first", "second"}},
		{"star bullets", "* first\n* second", []string{"first", "second"}},
		{"bare lines", "first\nsecond", []string{"first", "second"}},
		{"blank lines skipped", "first\n\n\nsecond\n", []string{"first", "second"}},
		{"misnumbered renumbered", "7. first\n3. second", []string{"first", "second"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sol := BuildSolution("p", "Steps:\n"+tt.span)
			if len(sol.Steps) != len(tt.want) {
				t.Fatalf("got %d steps, want %d", len(sol.Steps), len(tt.want))
			}
			for i, w := range tt.want {
				if sol.Steps[i].Explanation != w {
					t.Errorf("step %d = %q, want %q", i+1, sol.Steps[i].Explanation, w)
				}
				if sol.Steps[i].StepNumber != i+1 {
					t.Errorf("step %d numbered %d", i+1, sol.Steps[i].StepNumber)
				}
			}
		})
	}
}

func TestBuildSolutionStepCountMatchesLines(t *testing.T) {
	for _, n := range []int{1, 5, 20} {
		var lines []string
		for i := 1; i <= n; i++ {
			lines = append(lines, fmt.Sprintf("%d. step number %d", i, i))
		}
		sol := BuildSolution("p", "Steps:\n"+strings.Join(lines, "\n"))
		if len(sol.Steps) != n {
			t.Errorf("%d lines produced %d steps", n, len(sol.Steps))
		}
	}
}

func TestBuildSolutionFinalAnswerRecovery(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"assignment in last step", "Steps:\n1. Multiply both sides\n2. Therefore x = 4", "x = 4"},
		{"bare equals in last step", "Steps:\n1. Simplify\n2. 6 + 6 = 12", "12"},
		{"no equation no answer", "Steps:\n1. Think hard\n2. Conclude broadly", ""},
		{"explicit section wins", "Steps:\n1. x = 9\nSolution:\n7", "7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sol := BuildSolution("p", tt.text)
			if sol.FinalAnswer != tt.want {
				t.Errorf("final answer = %q, want %q", sol.FinalAnswer, tt.want)
			}
		})
	}
}

func TestBuildSolutionExplanationFallbacks(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"preamble becomes explanation", "We substitute first.\nSteps:\n1. Set y=2x", "We substitute first."},
		{"steps only", "Steps:\n1. Set y=2x", "See steps above."},
		{"answer only", "Solution:\n42", "Solution details provided."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sol := BuildSolution("p", tt.text)
			if sol.Explanation != tt.want {
				t.Errorf("explanation = %q, want %q", sol.Explanation, tt.want)
			}
		})
	}
}

func TestBuildSolutionMultilineAnswerJoined(t *testing.T) {
	sol := BuildSolution("p", "Solution:\nx = 4\ny = 8")
	if sol.FinalAnswer != "x = 4, y = 8" {
		t.Errorf("final answer = %q", sol.FinalAnswer)
	}
}
