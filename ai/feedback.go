package ai

import (
	"strings"

	"mathwiz/models"
)

// BuildFeedback assembles an MCQ evaluation from a model reply. Missing
// sections fall back to in-band placeholder text; correctness defaults
// to false unless the model said "yes".
func BuildFeedback(text string) models.ParsedExplanationFeedback {
	sections, _ := SplitSections(text, FeedbackRules)
	m := SectionMap(sections)

	fb := models.ParsedExplanationFeedback{
		Explanation:       "AI could not provide a clear explanation.",
		CorrectOptionText: "Could not determine from AI.",
	}
	fb.IsCorrect = isAffirmative(m[LabelCorrectness])
	if v := firstToken(m[LabelCorrectOptionID]); v != "" {
		fb.CorrectOptionID = v
	}
	if v := firstLine(m[LabelCorrectOptionText]); v != "" {
		fb.CorrectOptionText = v
	}
	if v := m[LabelExplanation]; v != "" {
		fb.Explanation = v
	}
	if v := m[LabelAIFeedback]; v != "" {
		fb.AIFeedback = v
	}
	if v := m[LabelDetailedSolution]; v != "" {
		fb.DetailedSolution = v
	}
	return fb
}

// BuildEvalFeedback assembles the looser evaluation used for coding and
// theory submissions, which carries prose feedback instead of option IDs.
func BuildEvalFeedback(text string) models.ParsedExplanationFeedback {
	sections, _ := SplitSections(text, FeedbackRules)
	m := SectionMap(sections)

	fb := models.ParsedExplanationFeedback{
		Explanation: "Could not parse explanation.",
	}
	fb.IsCorrect = isAffirmative(m[LabelCorrectness])
	if v := m[LabelAIFeedback]; v != "" {
		fb.AIFeedback = v
	}
	if v := m[LabelDetailedSolution]; v != "" {
		fb.DetailedSolution = v
	}
	if v := m[LabelSimulatedOutput]; v != "" {
		fb.SimulatedOutput = v
	}
	if v := m[LabelExplanation]; v != "" {
		fb.Explanation = v
	}
	return fb
}

// isAffirmative treats only a leading "yes" as true. "Partially", "No",
// and unparseable spans all evaluate to false.
func isAffirmative(span string) bool {
	return strings.EqualFold(firstToken(span), "yes")
}

func firstToken(span string) string {
	fields := strings.Fields(span)
	if len(fields) == 0 {
		return ""
	}
	return strings.TrimRight(fields[0], ".,;")
}

func firstLine(span string) string {
	line, _, _ := strings.Cut(span, "\n")
	return strings.TrimSpace(line)
}
