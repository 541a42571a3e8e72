package ai

import (
	"strings"

	"mathwiz/models"
)

// SplitPractice divides a model reply into a practice problem and its
// worked solution. When the expected markers are absent the first line
// becomes the problem and the remainder the solution; a single-line
// reply serves as both.
func SplitPractice(text string) models.PracticeProblem {
	sections, _ := SplitSections(text, PracticeRules)
	m := SectionMap(sections)

	if m[LabelProblem] != "" && m[LabelSolutionExplained] != "" {
		return models.PracticeProblem{
			Problem:             m[LabelProblem],
			SolutionExplanation: m[LabelSolutionExplained],
		}
	}

	trimmed := strings.TrimSpace(text)
	problem, rest, found := strings.Cut(trimmed, "\n")
	problem = strings.TrimSpace(problem)
	rest = strings.TrimSpace(rest)
	if !found || rest == "" {
		return models.PracticeProblem{Problem: problem, SolutionExplanation: trimmed}
	}
	return models.PracticeProblem{Problem: problem, SolutionExplanation: rest}
}
