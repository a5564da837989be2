package services

import (
	"context"
	"errors"
	"iter"
	"strings"
	"testing"

	"google.golang.org/adk/model"
	"google.golang.org/adk/session"
	"google.golang.org/genai"
)

type fakeLLM struct {
	reply string
	err   error
	seen  []*model.LLMRequest
}

func (f *fakeLLM) Name() string {
	return "fake-llm"
}

func (f *fakeLLM) GenerateContent(ctx context.Context, req *model.LLMRequest, stream bool) iter.Seq2[*model.LLMResponse, error] {
	f.seen = append(f.seen, req)
	return func(yield func(*model.LLMResponse, error) bool) {
		if f.err != nil {
			yield(nil, f.err)
			return
		}
		yield(&model.LLMResponse{
			Content: genai.NewContentFromText(f.reply, genai.RoleModel),
		}, nil)
	}
}

func assertSessionDeleted(t *testing.T, g *adkGateway, key string) {
	t.Helper()
	if _, err := g.sessions.Get(context.Background(), &session.GetRequest{
		AppName:   g.appName,
		UserID:    adkUserID,
		SessionID: key,
	}); err == nil {
		t.Fatalf("session %q still exists after Complete", key)
	}
}

func TestADKGatewayCompleteReturnsFinalText(t *testing.T) {
	llm := &fakeLLM{reply: `{"roadmap":[]}`}
	g := newADKGateway(llm, adkAppName)
	req := CompletionRequest{
		SessionKey:        "career_mentor_abc",
		SystemInstruction: RoadmapPersona,
		Prompt:            "Build a roadmap for a junior in Computer Science",
	}

	out, err := g.Complete(context.Background(), req)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if out != `{"roadmap":[]}` {
		t.Fatalf("reply: want=%q got=%q", `{"roadmap":[]}`, out)
	}

	if len(llm.seen) != 1 {
		t.Fatalf("model calls: want=1 got=%d", len(llm.seen))
	}
	var sent strings.Builder
	for _, c := range llm.seen[0].Contents {
		for _, p := range c.Parts {
			sent.WriteString(p.Text)
		}
	}
	if !strings.Contains(sent.String(), "Computer Science") {
		t.Fatalf("prompt not forwarded to the model: %q", sent.String())
	}

	assertSessionDeleted(t, g, req.SessionKey)
}

func TestADKGatewayCompleteEmptyReply(t *testing.T) {
	g := newADKGateway(&fakeLLM{reply: ""}, adkAppName)

	if _, err := g.Complete(context.Background(), CompletionRequest{SessionKey: "career_mentor_empty", Prompt: "hi"}); err == nil {
		t.Fatalf("Complete: want error for empty reply")
	}
	assertSessionDeleted(t, g, "career_mentor_empty")
}

func TestADKGatewayCompleteModelError(t *testing.T) {
	g := newADKGateway(&fakeLLM{err: errors.New("quota exceeded")}, adkAppName)

	_, err := g.Complete(context.Background(), CompletionRequest{SessionKey: "career_mentor_err", Prompt: "hi"})
	if err == nil || !strings.Contains(err.Error(), "quota exceeded") {
		t.Fatalf("Complete: want model error, got %v", err)
	}
	assertSessionDeleted(t, g, "career_mentor_err")
}

func TestADKGatewaySessionKeyReusable(t *testing.T) {
	g := newADKGateway(&fakeLLM{reply: "ok"}, adkAppName)
	req := CompletionRequest{SessionKey: "career_mentor_same", Prompt: "hi"}

	for i := 0; i < 2; i++ {
		if _, err := g.Complete(context.Background(), req); err != nil {
			t.Fatalf("Complete #%d: %v", i+1, err)
		}
	}
}
