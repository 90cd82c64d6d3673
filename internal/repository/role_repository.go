package repository

import (
	"context"

	"github.com/fadilmartias/talent-fit/internal/model"
	"gorm.io/gorm"
)

type RoleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{db}
}

func (r *RoleRepository) CreateRole(ctx context.Context, role *model.Role) error {
	return r.db.WithContext(ctx).Create(role).Error
}

func (r *RoleRepository) ListRoles(ctx context.Context) ([]model.Role, error) {
	var roles []model.Role
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&roles).Error
	return roles, err
}

func (r *RoleRepository) GetRole(ctx context.Context, id string) (*model.Role, error) {
	uid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var role model.Role
	if err := r.db.WithContext(ctx).First(&role, "id = ?", uid).Error; err != nil {
		return nil, translate(err)
	}
	return &role, nil
}

func (r *RoleRepository) UpdateRoleStatus(ctx context.Context, id string, status model.RoleStatus) (*model.Role, error) {
	uid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	res := r.db.WithContext(ctx).Model(&model.Role{}).Where("id = ?", uid).Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetRole(ctx, id)
}

func (r *RoleRepository) DeleteRole(ctx context.Context, id string) error {
	uid, err := parseID(id)
	if err != nil {
		return err
	}
	res := r.db.WithContext(ctx).Delete(&model.Role{}, "id = ?", uid)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
