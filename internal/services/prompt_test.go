package services_test

import (
	"strings"
	"testing"

	"alfredoptarigan/career-mentor/internal/services"
)

func TestBuildRoadmapPrompt(t *testing.T) {
	form := sampleForm()
	prompt := services.NewPromptBuilder().BuildRoadmapPrompt(form)

	for _, want := range []string{
		"- Degree/Field: Computer Science",
		"- Academic Year: junior",
		"- Current Skills: Python",
		"- Target Career: ai-ml",
		"- Learning Preference: mixed",
		"12-18 month roadmap with 5-6 phases",
		"FREE and PAID",
		`"interview_prep"`,
		"Focus on ai-ml career path with mixed learning approach.",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}

	for _, domain := range services.TrustedResourceDomains {
		if !strings.Contains(prompt, domain) {
			t.Errorf("prompt missing trusted source %q", domain)
		}
	}
}

func TestSessionKeyPerForm(t *testing.T) {
	pb := services.NewPromptBuilder()
	a, b := sampleForm(), sampleForm()

	if pb.SessionKey(a) == pb.SessionKey(b) {
		t.Fatalf("distinct forms share session key %q", pb.SessionKey(a))
	}
	if !strings.HasPrefix(pb.SessionKey(a), "career_mentor_") {
		t.Fatalf("session key: got=%q", pb.SessionKey(a))
	}
}
