package ai

import (
	"regexp"
	"sort"
	"strings"
)

// Canonical section labels produced by SplitSections.
const (
	LabelExplanation       = "explanation"
	LabelSteps             = "steps"
	LabelSolution          = "solution"
	LabelQuestion          = "question"
	LabelCorrectAnswer     = "correct_answer"
	LabelCorrectness       = "correctness"
	LabelCorrectOptionID   = "correct_option_id"
	LabelCorrectOptionText = "correct_option_text"
	LabelAIFeedback        = "ai_feedback"
	LabelDetailedSolution  = "detailed_solution"
	LabelSimulatedOutput   = "simulated_output"
	LabelProblem           = "problem"
	LabelCodeStub          = "code_stub"
	LabelSolutionExplained = "solution_explanation"
)

// Rule binds a canonical label to the marker pattern that introduces it.
type Rule struct {
	Label string
	re    *regexp.Regexp
}

// NewRule compiles pattern case-insensitively.
func NewRule(label, pattern string) Rule {
	return Rule{Label: label, re: regexp.MustCompile(`(?i)` + pattern)}
}

// SolutionRules recognize the sections of a worked-solution reply.
var SolutionRules = []Rule{
	NewRule(LabelExplanation, `(?:explanation|summary)\s*:`),
	NewRule(LabelSteps, `(?:steps|step-by-step|working)\s*:`),
	NewRule(LabelSolution, `(?:final answer|solution|result)\s*:`),
}

// FeedbackRules recognize the sections of an answer-evaluation reply.
var FeedbackRules = []Rule{
	NewRule(LabelCorrectness, `correctness\s*:`),
	NewRule(LabelCorrectOptionID, `correct\s*option\s*id\s*:`),
	NewRule(LabelCorrectOptionText, `correct\s*option\s*text\s*:`),
	NewRule(LabelExplanation, `explanation\s*:`),
	NewRule(LabelAIFeedback, `ai[_ ]?feedback\s*:`),
	NewRule(LabelDetailedSolution, `detailed\s*solution\s*:`),
	NewRule(LabelSimulatedOutput, `simulated\s*output\s*:`),
}

// PracticeRules recognize the two halves of a generated practice problem.
var PracticeRules = []Rule{
	NewRule(LabelProblem, `problem\s*:`),
	NewRule(LabelSolutionExplained, `solution\s*&?\s*explanation\s*:`),
}

// Section is one labeled span of a model reply. Marker holds the matched
// label text verbatim so that Preamble + Marker + Text concatenated in
// order reconstruct the input exactly.
type Section struct {
	Label  string
	Marker string
	Text   string
}

// SplitSections locates the first occurrence of each rule's marker and
// slices the text into labeled spans. Each span runs from the end of its
// marker to the start of the next marker found, the last to the end of
// the text. Text before the first marker is returned as the preamble.
// Spans are not trimmed.
func SplitSections(text string, rules []Rule) ([]Section, string) {
	type hit struct {
		label      string
		start, end int
	}
	var hits []hit
	for _, r := range rules {
		if loc := r.re.FindStringIndex(text); loc != nil {
			hits = append(hits, hit{r.Label, loc[0], loc[1]})
		}
	}
	if len(hits) == 0 {
		return nil, text
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].start < hits[j].start })

	sections := make([]Section, 0, len(hits))
	for i, h := range hits {
		end := len(text)
		if i+1 < len(hits) {
			end = hits[i+1].start
		}
		sections = append(sections, Section{
			Label:  h.label,
			Marker: text[h.start:h.end],
			Text:   text[h.end:end],
		})
	}
	return sections, text[:hits[0].start]
}

// SectionMap indexes sections by label with surrounding whitespace trimmed.
func SectionMap(sections []Section) map[string]string {
	m := make(map[string]string, len(sections))
	for _, s := range sections {
		m[s.Label] = strings.TrimSpace(s.Text)
	}
	return m
}
