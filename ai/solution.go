package ai

import (
	"regexp"
	"strings"

	"mathwiz/models"
)

var (
	enumPrefixRe = regexp.MustCompile(`^\s*(?:\d+[.)]?|[-*+])\s+`)
	// Trailing assignment like "x = 4" or "= 12" at the end of a step.
	finalAnswerRe = regexp.MustCompile(`([a-zA-Z]\s*=[^=]+)$|=([^=]+)$`)
)

// BuildSolution assembles a ParsedSolution from a free-form model reply.
// It tolerates missing sections: a reply with no recognized markers
// becomes a solution whose explanation is the whole text.
func BuildSolution(problem, text string) models.ParsedSolution {
	sections, preamble := SplitSections(text, SolutionRules)
	m := SectionMap(sections)

	sol := models.ParsedSolution{Problem: problem}

	if span, ok := m[LabelSteps]; ok {
		sol.Steps = parseSteps(span)
	}
	if span, ok := m[LabelExplanation]; ok {
		sol.Explanation = span
	}
	if span, ok := m[LabelSolution]; ok {
		sol.FinalAnswer = joinLines(span)
	}

	if sol.FinalAnswer == "" && len(sol.Steps) > 0 {
		sol.FinalAnswer = recoverFinalAnswer(sol.Steps[len(sol.Steps)-1].Explanation)
	}

	if sol.Explanation == "" {
		switch {
		case len(sections) == 0:
			sol.Explanation = strings.TrimSpace(text)
		case strings.TrimSpace(preamble) != "":
			sol.Explanation = strings.TrimSpace(preamble)
		case len(sol.Steps) > 0:
			sol.Explanation = "See steps above."
		case sol.FinalAnswer != "":
			sol.Explanation = "Solution details provided."
		}
	}
	return sol
}

// parseSteps turns each non-empty line into a step, stripping any leading
// enumeration marker and renumbering sequentially from 1.
func parseSteps(span string) []models.SolutionStep {
	var steps []models.SolutionStep
	for _, line := range strings.Split(span, "\n") {
		line = strings.TrimSpace(enumPrefixRe.ReplaceAllString(line, ""))
		if line == "" {
			continue
		}
		steps = append(steps, models.SolutionStep{
			StepNumber:  len(steps) + 1,
			Explanation: line,
		})
	}
	return steps
}

// recoverFinalAnswer pulls a trailing assignment out of the last step
// when the reply carried no explicit answer section.
func recoverFinalAnswer(lastStep string) string {
	groups := finalAnswerRe.FindStringSubmatch(lastStep)
	if groups == nil {
		return ""
	}
	for _, g := range groups[1:] {
		if s := strings.TrimSpace(g); s != "" {
			return s
		}
	}
	return ""
}

func joinLines(span string) string {
	var parts []string
	for _, line := range strings.Split(span, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, ", ")
}
