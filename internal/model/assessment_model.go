package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Outcome string

const (
	OutcomeFit    Outcome = "FIT"
	OutcomeNotFit Outcome = "NOT FIT"
)

// FitThreshold is the lowest score that counts as FIT.
const FitThreshold = 70

func OutcomeForScore(score int) Outcome {
	if score >= FitThreshold {
		return OutcomeFit
	}
	return OutcomeNotFit
}

// Assessment is written once per request and never updated. Role and
// candidate are referenced by id only; there is no foreign key so historical
// records survive deletion of either side.
type Assessment struct {
	ID              uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	RoleID          uuid.UUID        `gorm:"type:uuid;index;not null" json:"role_id"`
	CandidateID     uuid.UUID        `gorm:"type:uuid;index;not null" json:"candidate_id"`
	Score           int              `gorm:"not null" json:"score"`
	Outcome         Outcome          `gorm:"type:varchar(10);not null" json:"outcome"`
	Report          string           `gorm:"type:text;not null" json:"report"`
	EnrichedProfile *EnrichedProfile `gorm:"type:jsonb;serializer:json" json:"enriched_profile"`
	CreatedAt       time.Time        `gorm:"index" json:"created_at"`
}

func (a *Assessment) TableName() string {
	return "assessments"
}

func (a *Assessment) BeforeCreate(_ *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// AssessmentSummary is a listing row. RoleTitle and CandidateName are nil
// when the referenced record no longer exists.
type AssessmentSummary struct {
	Assessment
	RoleTitle     *string `json:"role_title"`
	CandidateName *string `json:"candidate_name"`
}
