package advice

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"
)

// Model is the Gemini model used for all advice requests.
const Model = "gemini-2.5-flash-lite"

// requestTimeout bounds a single upstream call.
const requestTimeout = 30 * time.Second

// Gemini is an Advisor backed by the Gemini API.
type Gemini struct {
	client *genai.Client
}

// NewGemini returns an Advisor that sends prompts to the Gemini API.
func NewGemini(ctx context.Context, apiKey string) (*Gemini, error) {
	if apiKey == "" {
		return nil, ErrNotConfigured
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUpstream, err.Error())
	}

	return &Gemini{client: client}, nil
}

// Advise forwards the prompt with the fixed suffix appended and returns the
// model response verbatim. There is no retry and no caching, a failed call
// surfaces as ErrUpstream with the upstream message attached.
func (g *Gemini) Advise(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	res, err := g.client.Models.GenerateContent(ctx, Model, genai.Text(prompt+promptSuffix), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrUpstream, err.Error())
	}

	return res.Text(), nil
}
