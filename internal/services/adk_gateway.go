package services

import (
	"context"
	"fmt"

	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/model"
	"google.golang.org/adk/model/gemini"
	"google.golang.org/adk/runner"
	"google.golang.org/adk/session"
	"google.golang.org/genai"
)

const adkUserID = "career-mentor"

type adkGateway struct {
	appName  string
	model    model.LLM
	sessions session.Service
}

// NewADKGateway runs completions through an agent whose conversation state
// lives in an in-memory session named after the request's session key.
func NewADKGateway(ctx context.Context, apiKey, modelName, appName string) (LLMGateway, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is empty")
	}

	llm, err := gemini.NewModel(ctx, modelName, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create model: %w", err)
	}

	return newADKGateway(llm, appName), nil
}

func newADKGateway(llm model.LLM, appName string) *adkGateway {
	return &adkGateway{
		appName:  appName,
		model:    llm,
		sessions: session.InMemoryService(),
	}
}

// Complete implements LLMGateway.
func (g *adkGateway) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	mentor, err := llmagent.New(llmagent.Config{
		Name:        g.appName,
		Model:       g.model,
		Description: "Generates career learning roadmaps",
		Instruction: req.SystemInstruction,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create agent: %w", err)
	}

	r, err := runner.New(runner.Config{
		AppName:        g.appName,
		Agent:          mentor,
		SessionService: g.sessions,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create runner: %w", err)
	}

	created, err := g.sessions.Create(ctx, &session.CreateRequest{
		AppName:   g.appName,
		UserID:    adkUserID,
		SessionID: req.SessionKey,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create session %s: %w", req.SessionKey, err)
	}
	defer g.sessions.Delete(context.WithoutCancel(ctx), &session.DeleteRequest{
		AppName:   created.Session.AppName(),
		UserID:    created.Session.UserID(),
		SessionID: created.Session.ID(),
	})

	msg := &genai.Content{
		Role:  "user",
		Parts: []*genai.Part{{Text: req.Prompt}},
	}

	var output string
	for event, err := range r.Run(ctx, created.Session.UserID(), created.Session.ID(), msg, agent.RunConfig{}) {
		if err != nil {
			return "", fmt.Errorf("agent run failed: %w", err)
		}
		if event != nil && event.IsFinalResponse() && event.Content != nil && len(event.Content.Parts) > 0 {
			output = event.Content.Parts[0].Text
		}
	}

	if output == "" {
		return "", fmt.Errorf("empty agent response")
	}
	return output, nil
}
