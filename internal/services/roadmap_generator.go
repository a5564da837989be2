package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"alfredoptarigan/career-mentor/internal/models"
	"alfredoptarigan/career-mentor/internal/pkg/logger"
)

type FailureReason string

const (
	FailureGateway FailureReason = "gateway_error"
	FailureParse   FailureReason = "parse_error"
	FailureSchema  FailureReason = "schema_mismatch"
)

// GenerationResult is either a payload or the reason there is none.
type GenerationResult struct {
	Payload *models.RoadmapPayload
	Failure FailureReason
	Err     error
}

func (r GenerationResult) OK() bool {
	return r.Failure == "" && r.Payload != nil
}

// ResolveRoadmap picks the generated payload, or the fallback for every
// failure variant. The result is always a complete roadmap.
func ResolveRoadmap(res GenerationResult) models.RoadmapPayload {
	if !res.OK() {
		return FallbackRoadmap()
	}
	return *res.Payload
}

type RoadmapGenerator interface {
	// Attempt makes a single gateway call and reports what happened.
	Attempt(ctx context.Context, form *models.CareerForm) GenerationResult
	// Generate never fails: any unsuccessful attempt yields FallbackRoadmap.
	Generate(ctx context.Context, form *models.CareerForm) models.RoadmapPayload
}

type GeneratorOptions struct {
	Timeout      time.Duration
	StrictSchema bool
}

type roadmapGenerator struct {
	gateway       LLMGateway
	promptBuilder *PromptBuilder
	opts          GeneratorOptions
	log           *logger.Logger
}

var errGatewayNotConfigured = errors.New("llm gateway not configured")

// NewRoadmapGenerator accepts a nil gateway; every attempt then fails over
// to the fallback roadmap.
func NewRoadmapGenerator(gateway LLMGateway, opts GeneratorOptions, log *logger.Logger) RoadmapGenerator {
	return &roadmapGenerator{
		gateway:       gateway,
		promptBuilder: NewPromptBuilder(),
		opts:          opts,
		log:           log,
	}
}

// Attempt implements RoadmapGenerator. No retries are made.
func (g *roadmapGenerator) Attempt(ctx context.Context, form *models.CareerForm) GenerationResult {
	if g.gateway == nil {
		return GenerationResult{Failure: FailureGateway, Err: errGatewayNotConfigured}
	}

	if g.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.opts.Timeout)
		defer cancel()
	}

	response, err := g.gateway.Complete(ctx, CompletionRequest{
		SessionKey:        g.promptBuilder.SessionKey(form),
		SystemInstruction: RoadmapPersona,
		Prompt:            g.promptBuilder.BuildRoadmapPrompt(form),
	})
	if err != nil {
		return GenerationResult{Failure: FailureGateway, Err: err}
	}

	payload, err := parseRoadmapPayload(response)
	if err != nil {
		return GenerationResult{Failure: FailureParse, Err: err}
	}

	if err := validatePayload(payload, g.opts.StrictSchema); err != nil {
		return GenerationResult{Failure: FailureSchema, Err: err}
	}

	return GenerationResult{Payload: payload}
}

// Generate implements RoadmapGenerator.
func (g *roadmapGenerator) Generate(ctx context.Context, form *models.CareerForm) models.RoadmapPayload {
	res := g.Attempt(ctx, form)
	if !res.OK() {
		g.log.Error("roadmap generation failed, serving fallback",
			"form_id", form.ID.String(),
			"reason", string(res.Failure),
			"error", res.Err,
		)
	} else {
		g.log.Info("roadmap generated", "form_id", form.ID.String(), "phases", len(res.Payload.Roadmap))
	}
	return ResolveRoadmap(res)
}

func parseRoadmapPayload(response string) (*models.RoadmapPayload, error) {
	var payload models.RoadmapPayload
	if err := json.Unmarshal([]byte(cleanJSON(response)), &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal roadmap JSON: %w", err)
	}
	return &payload, nil
}

// cleanJSON strips a surrounding markdown code fence, which models add even
// when told not to.
func cleanJSON(input string) string {
	clean := strings.TrimSpace(input)

	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimSuffix(strings.TrimSpace(clean), "```")

	return strings.TrimSpace(clean)
}

// validatePayload always requires at least one phase. In strict mode every
// section must be present (an empty list is fine, a missing one is not) and
// every nested entry must carry the fields the roadmap view relies on.
func validatePayload(p *models.RoadmapPayload, strict bool) error {
	if len(p.Roadmap) == 0 {
		return fmt.Errorf("roadmap has no phases")
	}
	if !strict {
		return nil
	}

	switch {
	case p.JobRoles == nil:
		return fmt.Errorf("missing job_roles")
	case p.ExampleCompanies == nil:
		return fmt.Errorf("missing example_companies")
	case p.InterviewPrep.ImportantTopics == nil:
		return fmt.Errorf("missing interview_prep.important_topics")
	case p.InterviewPrep.Resources == nil:
		return fmt.Errorf("missing interview_prep.resources")
	}

	for i, phase := range p.Roadmap {
		if strings.TrimSpace(phase.Phase) == "" {
			return fmt.Errorf("phase %d: missing label", i)
		}
		switch {
		case phase.FocusAreas == nil:
			return fmt.Errorf("phase %d: missing focus_areas", i)
		case phase.LearningResources == nil:
			return fmt.Errorf("phase %d: missing learning_resources", i)
		case phase.Projects == nil:
			return fmt.Errorf("phase %d: missing projects", i)
		}
		for j, res := range phase.LearningResources {
			if res.Title == "" || res.URL == "" {
				return fmt.Errorf("phase %d resource %d: missing title or url", i, j)
			}
		}
		for j, project := range phase.Projects {
			if project.Title == "" {
				return fmt.Errorf("phase %d project %d: missing title", i, j)
			}
		}
	}

	for j, res := range p.InterviewPrep.Resources {
		if res.Title == "" || res.URL == "" {
			return fmt.Errorf("interview resource %d: missing title or url", j)
		}
	}

	return nil
}
