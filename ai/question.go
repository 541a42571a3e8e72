package ai

import (
	"regexp"
	"strings"

	"mathwiz/models"
)

// OpenQuestionRules recognize the sections of a coding or theory
// question reply.
var OpenQuestionRules = []Rule{
	NewRule(LabelQuestion, `question\s*:`),
	NewRule(LabelProblem, `problem\s*:`),
	NewRule(LabelCodeStub, `code\s*stub\s*:`),
}

// BuildOpenQuestion assembles a coding or theory question from a model
// reply. The whole reply serves as the question text when no marker is
// recognized.
func BuildOpenQuestion(id, chapter string, kind models.CSQuestionKind, text string) models.CSQuestion {
	sections, preamble := SplitSections(text, OpenQuestionRules)
	m := SectionMap(sections)

	q := models.CSQuestion{
		ID:           id,
		Chapter:      chapter,
		QuestionType: kind,
	}
	switch {
	case m[LabelProblem] != "":
		q.QuestionText = m[LabelProblem]
	case m[LabelQuestion] != "":
		q.QuestionText = m[LabelQuestion]
	default:
		q.QuestionText = trimOrWhole(preamble, text)
	}
	if stub := m[LabelCodeStub]; stub != "" {
		q.CodeStub = stripCodeFence(stub)
	}
	return q
}

var codeFenceRe = regexp.MustCompile("(?s)```[a-zA-Z]*\\s*\\n?(.*?)```")

func stripCodeFence(s string) string {
	if g := codeFenceRe.FindStringSubmatch(s); g != nil {
		return strings.TrimSpace(g[1])
	}
	return strings.TrimSpace(s)
}

func trimOrWhole(preamble, whole string) string {
	if s := strings.TrimSpace(preamble); s != "" {
		return s
	}
	return strings.TrimSpace(whole)
}
