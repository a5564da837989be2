package services

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// CompletionRequest is one chat-completion call: a persona, a single user
// prompt, and the session the call belongs to.
type CompletionRequest struct {
	SessionKey        string
	SystemInstruction string
	Prompt            string
}

// LLMGateway returns the model's raw text reply for a completion request.
type LLMGateway interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

type GeminiOptions struct {
	Model           string
	Temperature     float32
	MaxOutputTokens int32
}

type geminiGateway struct {
	client *genai.Client
	opts   GeminiOptions
}

func NewGeminiGateway(ctx context.Context, apiKey string, opts GeminiOptions) (LLMGateway, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is empty")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiGateway{client: client, opts: opts}, nil
}

// Complete implements LLMGateway. Every call is a standalone request, so
// sessions are isolated by construction.
func (g *geminiGateway) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	temperature := g.opts.Temperature
	config := &genai.GenerateContentConfig{
		Temperature:       &temperature,
		MaxOutputTokens:   g.opts.MaxOutputTokens,
		ResponseMIMEType:  "application/json",
		SystemInstruction: genai.NewContentFromText(req.SystemInstruction, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.opts.Model, genai.Text(req.Prompt), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return text, nil
}
