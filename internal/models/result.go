package models

import (
	"time"

	"github.com/google/uuid"
)

type CareerFormRequest struct {
	Degree         string `json:"degree" validate:"required"`
	Year           string `json:"year" validate:"required"`
	Skills         string `json:"skills" validate:"required"`
	CareerInterest string `json:"career_interest" validate:"required"`
	LearningStyle  string `json:"learning_style" validate:"required"`
}

type CareerFormResponse struct {
	Success   bool           `json:"success"`
	FormID    string         `json:"form_id"`
	RoadmapID string         `json:"roadmap_id"`
	Roadmap   RoadmapPayload `json:"roadmap"`
}

// RoadmapResponse is the public shape of a stored roadmap.
type RoadmapResponse struct {
	ID               uuid.UUID     `json:"id"`
	FormID           uuid.UUID     `json:"form_id"`
	Roadmap          []Phase       `json:"roadmap"`
	JobRoles         []string      `json:"job_roles"`
	ExampleCompanies []string      `json:"example_companies"`
	InterviewPrep    InterviewPrep `json:"interview_prep"`
	Timestamp        time.Time     `json:"timestamp"`
}

func NewRoadmapResponse(r *Roadmap) RoadmapResponse {
	payload := r.Payload()
	return RoadmapResponse{
		ID:               r.ID,
		FormID:           r.FormID,
		Roadmap:          payload.Roadmap,
		JobRoles:         payload.JobRoles,
		ExampleCompanies: payload.ExampleCompanies,
		InterviewPrep:    payload.InterviewPrep,
		Timestamp:        r.Timestamp,
	}
}

type StatusCheckRequest struct {
	ClientName string `json:"client_name" validate:"required"`
}
