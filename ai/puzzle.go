package ai

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	appErrors "mathwiz/internal/errors"
	"mathwiz/models"
)

var jsonFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")

// ParsePuzzlePayload decodes the JSON object of a daily puzzle reply,
// tolerating a surrounding markdown code fence and a numeric answer.
func ParsePuzzlePayload(text string) (models.PuzzlePayload, error) {
	body := strings.TrimSpace(text)
	if g := jsonFenceRe.FindStringSubmatch(body); g != nil {
		body = g[1]
	}

	var raw struct {
		Question   string          `json:"question"`
		Answer     json.RawMessage `json:"answer"`
		Difficulty string          `json:"difficulty"`
	}
	if err := json.Unmarshal([]byte(body), &raw); err != nil {
		return models.PuzzlePayload{}, appErrors.Wrap(err, "puzzle reply is not valid JSON")
	}

	answer, err := decodeAnswer(raw.Answer)
	if err != nil {
		return models.PuzzlePayload{}, err
	}
	if strings.TrimSpace(raw.Question) == "" || strings.TrimSpace(answer) == "" {
		return models.PuzzlePayload{}, appErrors.InternalError("puzzle reply is missing question or answer")
	}

	difficulty := models.Difficulty(strings.ToLower(strings.TrimSpace(raw.Difficulty)))
	if !models.ValidDifficulty(difficulty) {
		return models.PuzzlePayload{}, appErrors.InternalError(fmt.Sprintf("puzzle reply has unknown difficulty %q", raw.Difficulty))
	}

	return models.PuzzlePayload{
		Question:   strings.TrimSpace(raw.Question),
		Answer:     strings.TrimSpace(answer),
		Difficulty: difficulty,
	}, nil
}

// decodeAnswer accepts both string and numeric answers.
func decodeAnswer(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String(), nil
	}
	return "", appErrors.InternalError("puzzle reply has an unusable answer field")
}
