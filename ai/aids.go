package ai

import (
	"regexp"
	"strings"

	"mathwiz/models"
)

var (
	flashQuestionRe = regexp.MustCompile(`(?im)^\s*(?:q|question)\s*\d*\s*:`)
	flashAnswerRe   = regexp.MustCompile(`(?im)^\s*(?:a|answer)\s*\d*\s*:`)
	keyPointRe      = regexp.MustCompile(`(?m)^\s*(?:[-*]|\d+[.)])\s+(.*)$`)
)

// ParseFlashcards extracts Q/A pairs from a model reply. Each question
// marker opens a card that runs to the next question marker; the card's
// answer marker splits it in two. Cards missing either half are dropped.
func ParseFlashcards(text string) []models.Flashcard {
	starts := flashQuestionRe.FindAllStringIndex(text, -1)
	var cards []models.Flashcard
	for i, loc := range starts {
		end := len(text)
		if i+1 < len(starts) {
			end = starts[i+1][0]
		}
		block := text[loc[1]:end]
		aLoc := flashAnswerRe.FindStringIndex(block)
		if aLoc == nil {
			continue
		}
		q := strings.TrimSpace(block[:aLoc[0]])
		a := strings.TrimSpace(block[aLoc[1]:])
		if q == "" || a == "" {
			continue
		}
		cards = append(cards, models.Flashcard{Question: q, Answer: a})
	}
	return cards
}

// ParseKeyPoints collects bullet and numbered lines. A reply with no
// list-like lines yields a single in-band message rather than an error.
func ParseKeyPoints(text string) []string {
	var points []string
	for _, g := range keyPointRe.FindAllStringSubmatch(text, -1) {
		if p := strings.TrimSpace(g[1]); p != "" {
			points = append(points, p)
		}
	}
	if len(points) == 0 {
		points = []string{"Could not parse key points from AI response. Please try again."}
	}
	return points
}
