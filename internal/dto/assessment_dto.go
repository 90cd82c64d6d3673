package dto

import (
	"strings"
	"time"

	"github.com/fadilmartias/talent-fit/internal/model"
	"github.com/google/uuid"
)

// CreateAssessmentRequest accepts both snake_case and camelCase ids.
type CreateAssessmentRequest struct {
	RoleID           string `json:"role_id"`
	CandidateID      string `json:"candidate_id"`
	RoleIDCamel      string `json:"roleId,omitempty"`
	CandidateIDCamel string `json:"candidateId,omitempty"`
}

func (r CreateAssessmentRequest) IDs() (roleID, candidateID string) {
	roleID = strings.TrimSpace(r.RoleID)
	if roleID == "" {
		roleID = strings.TrimSpace(r.RoleIDCamel)
	}
	candidateID = strings.TrimSpace(r.CandidateID)
	if candidateID == "" {
		candidateID = strings.TrimSpace(r.CandidateIDCamel)
	}
	return roleID, candidateID
}

// AssessmentDTO is an assessment with its role and candidate inlined. Either
// side is null when the record was deleted after the assessment was made.
type AssessmentDTO struct {
	ID              uuid.UUID              `json:"id"`
	RoleID          uuid.UUID              `json:"role_id"`
	CandidateID     uuid.UUID              `json:"candidate_id"`
	Score           int                    `json:"score"`
	Outcome         model.Outcome          `json:"outcome"`
	Report          string                 `json:"report"`
	EnrichedProfile *model.EnrichedProfile `json:"enriched_profile"`
	CreatedAt       time.Time              `json:"created_at"`
	Role            *model.Role            `json:"role"`
	Candidate       *model.Candidate       `json:"candidate"`
}

func NewAssessmentDTO(a model.Assessment, role *model.Role, candidate *model.Candidate) AssessmentDTO {
	return AssessmentDTO{
		ID:              a.ID,
		RoleID:          a.RoleID,
		CandidateID:     a.CandidateID,
		Score:           a.Score,
		Outcome:         a.Outcome,
		Report:          a.Report,
		EnrichedProfile: a.EnrichedProfile,
		CreatedAt:       a.CreatedAt,
		Role:            role,
		Candidate:       candidate,
	}
}
