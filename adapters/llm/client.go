package llm

import (
	"context"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"mathwiz/internal"
	"mathwiz/internal/config"
	appErrors "mathwiz/internal/errors"
)

// Client talks to the Gemini API. A client built without an API key is
// valid; every call on it reports AINotConfigured so the server can run
// without AI features.
type Client struct {
	apiKey      string
	model       string
	temperature float32
}

// NewClient creates a Gemini client from configuration
func NewClient(cfg config.AIConfig) *Client {
	return &Client{
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		temperature: float32(cfg.Temperature),
	}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// Generate sends one prompt and returns the reply text. systemInstruction
// may be empty.
func (c *Client) Generate(ctx context.Context, systemInstruction, prompt string) (string, error) {
	if !c.Configured() {
		return "", appErrors.AINotConfigured()
	}

	cl, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return "", classifyError(err)
	}
	defer cl.Close()

	m := cl.GenerativeModel(c.model)
	m.GenerationConfig = genai.GenerationConfig{
		Temperature: ptrFloat32(c.temperature),
	}
	if systemInstruction != "" {
		m.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(systemInstruction)},
		}
	}

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", classifyError(err)
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != genai.BlockReasonUnspecified {
		reason := resp.PromptFeedback.BlockReason.String()
		log.Printf("[Gemini] Request blocked: %s", reason)
		return "", appErrors.AIBlocked(reason)
	}

	text := firstText(resp)
	if strings.TrimSpace(text) == "" {
		return "", appErrors.AIEmpty()
	}
	internal.DefaultLogger.Debug("Gemini reply: %d chars from %s", len(text), c.model)
	return text, nil
}

// classifyError separates credential problems from transport failures.
func classifyError(err error) error {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "api key") ||
		strings.Contains(msg, "permission denied") ||
		strings.Contains(msg, "unauthenticated") ||
		strings.Contains(msg, "authentication") {
		return appErrors.AIAuthFailed(err)
	}
	return appErrors.Wrap(err, "gemini request failed")
}

// firstText returns the first text part of the first candidate.
func firstText(resp *genai.GenerateContentResponse) string {
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				return string(t)
			}
		}
	}
	return ""
}

func ptrFloat32(v float32) *float32 {
	return &v
}
