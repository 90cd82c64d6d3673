package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/fadilmartias/talent-fit/internal/apperror"
	"github.com/fadilmartias/talent-fit/internal/dto"
	"github.com/fadilmartias/talent-fit/internal/model"
	"github.com/fadilmartias/talent-fit/internal/repository"
	"github.com/fadilmartias/talent-fit/internal/util"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleLifecycle(t *testing.T) {
	ctx := context.Background()
	uc := NewRoleUsecase(repository.NewMemoryStore())

	role, err := uc.Create(ctx, dto.CreateRoleRequest{
		Title:        " Platform Engineer ",
		Description:  "Owns the platform",
		Requirements: "Kubernetes",
	})
	require.NoError(t, err)
	assert.Equal(t, "Platform Engineer", role.Title)
	assert.Equal(t, model.RoleActive, role.Status)

	updated, err := uc.UpdateStatus(ctx, role.ID.String(), dto.UpdateRoleStatusRequest{Status: "INACTIVE"})
	require.NoError(t, err)
	assert.Equal(t, model.RoleInactive, updated.Status)

	_, err = uc.UpdateStatus(ctx, role.ID.String(), dto.UpdateRoleStatusRequest{Status: "archived"})
	var form *util.FormError
	require.True(t, errors.As(err, &form))
	assert.Contains(t, form.Errors, "status")

	require.NoError(t, uc.Delete(ctx, role.ID.String()))
	_, err = uc.Get(ctx, role.ID.String())
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestRoleCreateRequiresFields(t *testing.T) {
	_, err := NewRoleUsecase(repository.NewMemoryStore()).Create(context.Background(), dto.CreateRoleRequest{Title: "t"})
	var form *util.FormError
	require.True(t, errors.As(err, &form))
	assert.Contains(t, form.Errors, "description")
	assert.Contains(t, form.Errors, "requirements")
}

func TestRoleUpdateUnknown(t *testing.T) {
	_, err := NewRoleUsecase(repository.NewMemoryStore()).UpdateStatus(context.Background(), uuid.NewString(), dto.UpdateRoleStatusRequest{Status: "inactive"})
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}
