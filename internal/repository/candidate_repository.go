package repository

import (
	"context"

	"github.com/fadilmartias/talent-fit/internal/model"
	"gorm.io/gorm"
)

type CandidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) *CandidateRepository {
	return &CandidateRepository{db}
}

func (r *CandidateRepository) CreateCandidate(ctx context.Context, candidate *model.Candidate) error {
	return r.db.WithContext(ctx).Create(candidate).Error
}

func (r *CandidateRepository) ListCandidates(ctx context.Context) ([]model.Candidate, error) {
	var candidates []model.Candidate
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&candidates).Error
	return candidates, err
}

func (r *CandidateRepository) GetCandidate(ctx context.Context, id string) (*model.Candidate, error) {
	uid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var c model.Candidate
	if err := r.db.WithContext(ctx).First(&c, "id = ?", uid).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

// UpdateCandidate writes the mutable fields only. The creation time is kept.
func (r *CandidateRepository) UpdateCandidate(ctx context.Context, candidate *model.Candidate) error {
	res := r.db.WithContext(ctx).Model(&model.Candidate{}).
		Where("id = ?", candidate.ID).
		Updates(map[string]any{
			"name":         candidate.Name,
			"email":        candidate.Email,
			"linkedin_url": candidate.LinkedInURL,
			"description":  candidate.Description,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CandidateRepository) DeleteCandidate(ctx context.Context, id string) error {
	uid, err := parseID(id)
	if err != nil {
		return err
	}
	res := r.db.WithContext(ctx).Delete(&model.Candidate{}, "id = ?", uid)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
