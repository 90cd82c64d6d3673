package repository

import (
	"errors"

	"gorm.io/gorm"
)

// PostgresStore groups the GORM repositories behind the Store interface.
type PostgresStore struct {
	*RoleRepository
	*CandidateRepository
	*AssessmentRepository
}

func NewPostgresStore(db *gorm.DB) *PostgresStore {
	return &PostgresStore{
		RoleRepository:       NewRoleRepository(db),
		CandidateRepository:  NewCandidateRepository(db),
		AssessmentRepository: NewAssessmentRepository(db),
	}
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
