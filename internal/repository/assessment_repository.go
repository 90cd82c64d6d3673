package repository

import (
	"context"

	"github.com/fadilmartias/talent-fit/internal/model"
	"gorm.io/gorm"
)

type AssessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{db}
}

func (r *AssessmentRepository) InsertAssessment(ctx context.Context, assessment *model.Assessment) error {
	return r.db.WithContext(ctx).Create(assessment).Error
}

func (r *AssessmentRepository) ListAssessments(ctx context.Context) ([]model.AssessmentSummary, error) {
	var rows []model.AssessmentSummary

	// left joins: assessments outlive the role and candidate they point at
	err := r.db.WithContext(ctx).
		Table("assessments AS a").
		Select("a.*, r.title AS role_title, c.name AS candidate_name").
		Joins("LEFT JOIN roles r ON r.id = a.role_id").
		Joins("LEFT JOIN candidates c ON c.id = a.candidate_id").
		Order("a.created_at DESC").
		Scan(&rows).Error

	return rows, err
}

func (r *AssessmentRepository) GetAssessment(ctx context.Context, id string) (*model.Assessment, error) {
	uid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var a model.Assessment
	if err := r.db.WithContext(ctx).First(&a, "id = ?", uid).Error; err != nil {
		return nil, translate(err)
	}
	return &a, nil
}
