package models

import (
	"time"

	"github.com/google/uuid"
)

// StatusCheck is a client health probe record, unrelated to roadmaps.
type StatusCheck struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ClientName string    `gorm:"type:text;not null" json:"client_name"`
	Timestamp  time.Time `gorm:"column:created_at;not null" json:"timestamp"`
}

func (StatusCheck) TableName() string {
	return "status_checks"
}

func NewStatusCheck(clientName string) *StatusCheck {
	return &StatusCheck{
		ID:         uuid.New(),
		ClientName: clientName,
		Timestamp:  time.Now().UTC(),
	}
}
