package models

import (
	"time"
)

type ScreeningStatus string

const (
	StatusApplied      ScreeningStatus = "applied"
	StatusScreening    ScreeningStatus = "screening"
	StatusAutoRejected ScreeningStatus = "auto-rejected"
)

// AnonymousProfile is the redacted view of a candidate that recruiters see
// before a reveal.
type AnonymousProfile struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	CandidateID     string          `gorm:"type:text;uniqueIndex;not null" json:"candidate_id"`
	JobID           *string         `gorm:"type:text" json:"job_id,omitempty"`
	Skills          []string        `gorm:"type:jsonb;serializer:json" json:"skills"`
	ExperienceLevel string          `gorm:"type:text" json:"experience_level"`
	Status          ScreeningStatus `gorm:"type:text;not null;default:'applied'" json:"status"`
	CreatedAt       time.Time       `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (AnonymousProfile) TableName() string {
	return "anonymous_profiles"
}
