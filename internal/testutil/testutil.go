// Package testutil holds shared fixtures for package tests.
package testutil

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/career-mentor/internal/config"
	"alfredoptarigan/career-mentor/internal/services"
)

// OpenDB returns a migrated in-memory SQLite store private to the test.
func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Driver:     config.DriverSQLite,
			SQLitePath: fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		},
	}
	db, err := config.InitDatabase(cfg)
	if err != nil {
		t.Fatalf("InitDatabase: %v", err)
	}
	t.Cleanup(func() {
		_ = config.CloseDatabase(db)
	})
	return db
}

// StubGateway answers every completion with Reply or Err and records the
// requests it received.
type StubGateway struct {
	Reply string
	Err   error
	// Block makes Complete wait for context cancellation.
	Block bool

	mu       sync.Mutex
	requests []services.CompletionRequest
}

func (s *StubGateway) Complete(ctx context.Context, req services.CompletionRequest) (string, error) {
	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()

	if s.Block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	if s.Err != nil {
		return "", s.Err
	}
	return s.Reply, nil
}

func (s *StubGateway) Requests() []services.CompletionRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]services.CompletionRequest(nil), s.requests...)
}

// RoadmapJSON renders a valid roadmap reply with the given number of phases.
func RoadmapJSON(phases int) string {
	out := `{"roadmap":[`
	for i := 0; i < phases; i++ {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprintf(`{"phase":"Months %d-%d","focus_areas":["Skill %d"],`+
			`"learning_resources":[{"title":"Course %d","type":"course","url":"https://www.coursera.org/learn/c%d"}],`+
			`"projects":[{"title":"Project %d","description":"Build it","difficulty":"Intermediate"}]}`,
			i*3+1, i*3+3, i, i, i, i)
	}
	out += `],"job_roles":["ML Engineer"],"example_companies":["OpenAI","DeepMind"],` +
		`"interview_prep":{"important_topics":["Linear Algebra"],"resources":[{"title":"LeetCode","url":"https://leetcode.com"}]}}`
	return out
}
