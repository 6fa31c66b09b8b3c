// Package llm wraps the external text-generation service. Everything that
// touches the upstream API lives here: prompt construction, the HTTP call,
// response cleanup and the structured-span parsing. Any failure surfaces as
// an error wrapping ErrGeneration so callers can fall back to the rule
// engines.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sahiti3636/finwise-ai/models"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-1.5-flash"
	defaultTimeout = 10 * time.Second

	chatConfidence = 0.9
)

// ErrGeneration marks the upstream service as unreachable, timed out, or
// having returned unusable content. Always recoverable via rule fallback.
var ErrGeneration = errors.New("text generation failed")

// Client calls the Gemini generateContent endpoint. Construct once at startup
// and inject where needed; the embedded http.Client is reused across calls.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		model:      defaultModel,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

type generateRequest struct {
	Contents []generateContent `json:"contents"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generatePart struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content generateContent `json:"content"`
	} `json:"candidates"`
}

// Generate sends a single stateless prompt and returns the raw generated
// text. One attempt, no retry.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	reqBody := generateRequest{
		Contents: []generateContent{{Parts: []generatePart{{Text: prompt}}}},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("%w: marshaling request: %v", ErrGeneration, err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("%w: building request: %v", ErrGeneration, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: unexpected status code %d", ErrGeneration, resp.StatusCode)
	}

	var genResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", fmt.Errorf("%w: decoding response: %v", ErrGeneration, err)
	}

	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty response", ErrGeneration)
	}

	text := strings.TrimSpace(genResp.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", fmt.Errorf("%w: empty response", ErrGeneration)
	}
	return text, nil
}

// Chat generates a conversational reply for the user's message in the
// context of their profile.
func (c *Client) Chat(ctx context.Context, message string, p *models.Profile) (*models.ChatReply, error) {
	text, err := c.Generate(ctx, chatPrompt(message, p))
	if err != nil {
		return nil, err
	}
	return &models.ChatReply{
		Response:    Clean(text),
		Suggestions: Suggestions(message),
		Confidence:  chatConfidence,
	}, nil
}

// TaxAdvice generates structured tax recommendations. The generated text is
// cleaned and its first JSON object span parsed; unparsable text degrades to
// a single synthetic recommendation, never an error.
func (c *Client) TaxAdvice(ctx context.Context, p *models.Profile) (*models.TaxPlan, error) {
	text, err := c.Generate(ctx, taxPrompt(p))
	if err != nil {
		return nil, err
	}
	return ParseTaxPlan(Clean(text)), nil
}

// BenefitsAdvice generates government-benefit recommendations, parsing the
// first JSON array span out of the cleaned text.
func (c *Client) BenefitsAdvice(ctx context.Context, p *models.Profile) ([]models.BenefitEntry, error) {
	text, err := c.Generate(ctx, benefitsPrompt(p))
	if err != nil {
		return nil, err
	}
	return ParseBenefits(Clean(text)), nil
}
