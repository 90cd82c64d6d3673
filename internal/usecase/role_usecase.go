package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/fadilmartias/talent-fit/internal/apperror"
	"github.com/fadilmartias/talent-fit/internal/dto"
	"github.com/fadilmartias/talent-fit/internal/model"
	"github.com/fadilmartias/talent-fit/internal/repository"
	"github.com/fadilmartias/talent-fit/internal/util"
)

type RoleUsecase struct {
	roles repository.RoleStore
}

func NewRoleUsecase(roles repository.RoleStore) *RoleUsecase {
	return &RoleUsecase{roles: roles}
}

func (uc *RoleUsecase) Create(ctx context.Context, req dto.CreateRoleRequest) (*model.Role, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	req.Requirements = strings.TrimSpace(req.Requirements)
	if err := util.ValidateStruct(req); err != nil {
		return nil, err
	}

	role := &model.Role{
		Title:            req.Title,
		Description:      req.Description,
		Requirements:     req.Requirements,
		Responsibilities: strings.TrimSpace(req.Responsibilities),
		Status:           model.RoleActive,
	}
	if err := uc.roles.CreateRole(ctx, role); err != nil {
		return nil, apperror.Persistence("creating", err)
	}
	return role, nil
}

func (uc *RoleUsecase) List(ctx context.Context) ([]model.Role, error) {
	roles, err := uc.roles.ListRoles(ctx)
	if err != nil {
		return nil, apperror.Persistence("listing", err)
	}
	return roles, nil
}

func (uc *RoleUsecase) Get(ctx context.Context, id string) (*model.Role, error) {
	role, err := uc.roles.GetRole(ctx, id)
	if err != nil {
		return nil, storeError("loading", err)
	}
	return role, nil
}

// UpdateStatus is the only mutation a role supports after creation.
func (uc *RoleUsecase) UpdateStatus(ctx context.Context, id string, req dto.UpdateRoleStatusRequest) (*model.Role, error) {
	req.Status = strings.ToLower(strings.TrimSpace(req.Status))
	if err := util.ValidateStruct(req); err != nil {
		return nil, err
	}
	role, err := uc.roles.UpdateRoleStatus(ctx, id, model.RoleStatus(req.Status))
	if err != nil {
		return nil, storeError("updating", err)
	}
	return role, nil
}

func (uc *RoleUsecase) Delete(ctx context.Context, id string) error {
	if err := uc.roles.DeleteRole(ctx, id); err != nil {
		return storeError("deleting", err)
	}
	return nil
}

func storeError(stage string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperror.NotFound(stage, err)
	}
	return apperror.Persistence(stage, err)
}
