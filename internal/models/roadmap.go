package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type LearningResource struct {
	Title string `json:"title"`
	Type  string `json:"type,omitempty"`
	URL   string `json:"url"`
}

type Project struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Difficulty  string `json:"difficulty"`
}

type Phase struct {
	Phase             string             `json:"phase"`
	FocusAreas        []string           `json:"focus_areas"`
	LearningResources []LearningResource `json:"learning_resources"`
	Projects          []Project          `json:"projects"`
}

// InterviewPrep resources carry only a title and URL.
type InterviewPrep struct {
	ImportantTopics []string           `json:"important_topics"`
	Resources       []LearningResource `json:"resources"`
}

// RoadmapPayload is the generator output: a roadmap without identifiers.
type RoadmapPayload struct {
	Roadmap          []Phase       `json:"roadmap"`
	JobRoles         []string      `json:"job_roles"`
	ExampleCompanies []string      `json:"example_companies"`
	InterviewPrep    InterviewPrep `json:"interview_prep"`
}

// Roadmap is the persisted roadmap document. FormID is a weak reference:
// no foreign key is declared, so a roadmap stays readable without its form.
type Roadmap struct {
	ID               uuid.UUID                         `gorm:"type:uuid;primaryKey" json:"id"`
	FormID           uuid.UUID                         `gorm:"type:uuid;not null;index" json:"form_id"`
	Phases           datatypes.JSONSlice[Phase]        `gorm:"column:roadmap" json:"roadmap"`
	JobRoles         datatypes.JSONSlice[string]       `json:"job_roles"`
	ExampleCompanies datatypes.JSONSlice[string]       `json:"example_companies"`
	InterviewPrep    datatypes.JSONType[InterviewPrep] `json:"interview_prep"`
	Timestamp        time.Time                         `gorm:"column:created_at;not null" json:"timestamp"`
}

func (Roadmap) TableName() string {
	return "career_roadmaps"
}

// NewRoadmap builds the record for a generated payload with a fresh identifier.
func NewRoadmap(formID uuid.UUID, payload RoadmapPayload) *Roadmap {
	return &Roadmap{
		ID:               uuid.New(),
		FormID:           formID,
		Phases:           datatypes.JSONSlice[Phase](payload.Roadmap),
		JobRoles:         datatypes.JSONSlice[string](payload.JobRoles),
		ExampleCompanies: datatypes.JSONSlice[string](payload.ExampleCompanies),
		InterviewPrep:    datatypes.NewJSONType(payload.InterviewPrep),
		Timestamp:        time.Now().UTC(),
	}
}

// Payload returns the roadmap body without identifiers.
func (r *Roadmap) Payload() RoadmapPayload {
	return RoadmapPayload{
		Roadmap:          []Phase(r.Phases),
		JobRoles:         []string(r.JobRoles),
		ExampleCompanies: []string(r.ExampleCompanies),
		InterviewPrep:    r.InterviewPrep.Data(),
	}
}
