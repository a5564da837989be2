package services_test

import (
	"testing"

	"alfredoptarigan/career-mentor/internal/services"
)

func TestFallbackRoadmapShape(t *testing.T) {
	fb := services.FallbackRoadmap()

	if len(fb.Roadmap) != 2 {
		t.Fatalf("phases: want=2 got=%d", len(fb.Roadmap))
	}
	if fb.Roadmap[0].Phase != "Months 1-3" || fb.Roadmap[1].Phase != "Months 4-6" {
		t.Fatalf("phase labels: got=%q,%q", fb.Roadmap[0].Phase, fb.Roadmap[1].Phase)
	}
	if len(fb.JobRoles) != 3 || fb.JobRoles[0] != "Junior Developer" {
		t.Fatalf("job roles: got=%v", fb.JobRoles)
	}
	if len(fb.InterviewPrep.Resources) != 1 || fb.InterviewPrep.Resources[0].Type != "" {
		t.Fatalf("interview resources: got=%+v", fb.InterviewPrep.Resources)
	}
}

func TestFallbackRoadmapIsFreshCopy(t *testing.T) {
	first := services.FallbackRoadmap()
	first.Roadmap[0].Phase = "changed"
	first.JobRoles[0] = "changed"

	second := services.FallbackRoadmap()
	if second.Roadmap[0].Phase != "Months 1-3" || second.JobRoles[0] != "Junior Developer" {
		t.Fatalf("fallback shares state between calls")
	}
}
