package ai

import (
	"regexp"
	"strings"

	"mathwiz/models"
)

var (
	questionRe      = regexp.MustCompile(`(?is)question\s*:\s*(.*?)\s*(?:option\s+[a-d1-4]\s*[:.)]|correct\s*answer|$)`)
	optionMarkerRe  = regexp.MustCompile(`(?im)(?:option\s+([a-d]|[1-4])|^\s*([a-d]|[1-4]))\s*[:.)]`)
	correctAnswerRe = regexp.MustCompile(`(?i)correct\s*answer\s*:?\s*(?:option\s+)?([a-d]|[1-4])`)
	correctCutRe    = regexp.MustCompile(`(?i)correct\s*answer`)
)

// optionIDs maps option labels, letter or positional, to canonical IDs.
var optionIDs = map[string]string{
	"a": models.OptionID1, "1": models.OptionID1,
	"b": models.OptionID2, "2": models.OptionID2,
	"c": models.OptionID3, "3": models.OptionID3,
	"d": models.OptionID4, "4": models.OptionID4,
}

// BuildMCQ assembles a multiple-choice question from a model reply.
// Replies with fewer than two recognizable options degrade to a pair of
// placeholder options rather than an error.
func BuildMCQ(id, chapter, text string) models.CSQuestion {
	q := models.CSQuestion{
		ID:           id,
		Chapter:      chapter,
		QuestionType: models.CSQuestionMCQ,
		QuestionText: "Could not parse question from AI response.",
	}

	if g := questionRe.FindStringSubmatch(text); g != nil && strings.TrimSpace(g[1]) != "" {
		q.QuestionText = strings.TrimSpace(g[1])
	}

	// Options live before any "Correct Answer" marker.
	optionText := text
	if loc := correctCutRe.FindStringIndex(text); loc != nil {
		optionText = text[:loc[0]]
	}
	q.Options = parseOptions(optionText)

	if len(q.Options) < 2 {
		q.Options = []models.MCQOption{
			{ID: models.OptionID1, Text: "Parse Error Option 1"},
			{ID: models.OptionID2, Text: "Parse Error Option 2"},
		}
	}

	if g := correctAnswerRe.FindStringSubmatch(text); g != nil {
		q.CorrectOptionID = optionIDs[strings.ToLower(g[1])]
	}
	return q
}

// parseOptions scans for option markers and takes each option's text as
// the span running to the next marker. Duplicate IDs keep the first span.
func parseOptions(text string) []models.MCQOption {
	matches := optionMarkerRe.FindAllStringSubmatchIndex(text, -1)
	var options []models.MCQOption
	seen := make(map[string]bool)
	for i, m := range matches {
		key := submatch(text, m, 1)
		if key == "" {
			key = submatch(text, m, 2)
		}
		id := optionIDs[strings.ToLower(key)]
		if id == "" || seen[id] {
			continue
		}
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		body := strings.TrimSpace(text[m[1]:end])
		if body == "" {
			continue
		}
		seen[id] = true
		options = append(options, models.MCQOption{ID: id, Text: body})
	}
	return options
}

func submatch(text string, m []int, n int) string {
	if 2*n+1 >= len(m) || m[2*n] < 0 {
		return ""
	}
	return text[m[2*n]:m[2*n+1]]
}
