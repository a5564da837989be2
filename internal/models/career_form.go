package models

import (
	"time"

	"github.com/google/uuid"
)

// CareerForm is the student profile submitted through POST /career-form.
// Records are written once and never updated.
type CareerForm struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Degree         string    `gorm:"type:text;not null" json:"degree"`
	Year           string    `gorm:"type:text;not null" json:"year"`
	Skills         string    `gorm:"type:text;not null" json:"skills"`
	CareerInterest string    `gorm:"type:text;not null" json:"career_interest"`
	LearningStyle  string    `gorm:"type:text;not null" json:"learning_style"`
	Timestamp      time.Time `gorm:"column:created_at;not null" json:"timestamp"`
}

func (CareerForm) TableName() string {
	return "career_forms"
}

// NewCareerForm assigns a fresh identifier and creation time to the request fields.
func NewCareerForm(req CareerFormRequest) *CareerForm {
	return &CareerForm{
		ID:             uuid.New(),
		Degree:         req.Degree,
		Year:           req.Year,
		Skills:         req.Skills,
		CareerInterest: req.CareerInterest,
		LearningStyle:  req.LearningStyle,
		Timestamp:      time.Now().UTC(),
	}
}
