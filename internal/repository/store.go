package repository

import (
	"context"
	"errors"

	"github.com/fadilmartias/talent-fit/internal/model"
	"github.com/google/uuid"
)

// ErrNotFound is returned by every store when the requested record does not
// exist or the id cannot name one.
var ErrNotFound = errors.New("record not found")

type RoleStore interface {
	CreateRole(ctx context.Context, role *model.Role) error
	ListRoles(ctx context.Context) ([]model.Role, error)
	GetRole(ctx context.Context, id string) (*model.Role, error)
	UpdateRoleStatus(ctx context.Context, id string, status model.RoleStatus) (*model.Role, error)
	DeleteRole(ctx context.Context, id string) error
}

type CandidateStore interface {
	CreateCandidate(ctx context.Context, candidate *model.Candidate) error
	ListCandidates(ctx context.Context) ([]model.Candidate, error)
	GetCandidate(ctx context.Context, id string) (*model.Candidate, error)
	UpdateCandidate(ctx context.Context, candidate *model.Candidate) error
	DeleteCandidate(ctx context.Context, id string) error
}

type AssessmentStore interface {
	// InsertAssessment assigns the id and creation time.
	InsertAssessment(ctx context.Context, assessment *model.Assessment) error
	// ListAssessments returns newest first.
	ListAssessments(ctx context.Context) ([]model.AssessmentSummary, error)
	GetAssessment(ctx context.Context, id string) (*model.Assessment, error)
}

type Store interface {
	RoleStore
	CandidateStore
	AssessmentStore
}

func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil || parsed == uuid.Nil {
		return uuid.Nil, ErrNotFound
	}
	return parsed, nil
}
