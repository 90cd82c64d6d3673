package usecase

import (
	"context"
	"strings"

	"github.com/fadilmartias/talent-fit/internal/apperror"
	"github.com/fadilmartias/talent-fit/internal/dto"
	"github.com/fadilmartias/talent-fit/internal/model"
	"github.com/fadilmartias/talent-fit/internal/repository"
	"github.com/fadilmartias/talent-fit/internal/util"
)

type CandidateUsecase struct {
	candidates repository.CandidateStore
}

func NewCandidateUsecase(candidates repository.CandidateStore) *CandidateUsecase {
	return &CandidateUsecase{candidates: candidates}
}

func (uc *CandidateUsecase) Create(ctx context.Context, req dto.CreateCandidateRequest) (*model.Candidate, error) {
	req = trimCandidate(req)
	if err := util.ValidateStruct(req); err != nil {
		return nil, err
	}

	candidate := &model.Candidate{
		Name:        req.Name,
		Email:       req.Email,
		LinkedInURL: req.LinkedInURL,
		Description: req.Description,
	}
	if err := uc.candidates.CreateCandidate(ctx, candidate); err != nil {
		return nil, apperror.Persistence("creating", err)
	}
	return candidate, nil
}

func (uc *CandidateUsecase) List(ctx context.Context) ([]model.Candidate, error) {
	candidates, err := uc.candidates.ListCandidates(ctx)
	if err != nil {
		return nil, apperror.Persistence("listing", err)
	}
	return candidates, nil
}

func (uc *CandidateUsecase) Get(ctx context.Context, id string) (*model.Candidate, error) {
	c, err := uc.candidates.GetCandidate(ctx, id)
	if err != nil {
		return nil, storeError("loading", err)
	}
	return c, nil
}

// Update applies the present fields and re-validates the merged record.
func (uc *CandidateUsecase) Update(ctx context.Context, id string, req dto.UpdateCandidateRequest) (*model.Candidate, error) {
	current, err := uc.candidates.GetCandidate(ctx, id)
	if err != nil {
		return nil, storeError("loading", err)
	}

	merged := dto.CreateCandidateRequest{
		Name:        current.Name,
		Email:       current.Email,
		LinkedInURL: current.LinkedInURL,
		Description: current.Description,
	}
	if req.Name != nil {
		merged.Name = *req.Name
	}
	if req.Email != nil {
		merged.Email = *req.Email
	}
	if req.LinkedInURL != nil {
		merged.LinkedInURL = *req.LinkedInURL
	}
	if req.Description != nil {
		merged.Description = *req.Description
	}
	merged = trimCandidate(merged)
	if err := util.ValidateStruct(merged); err != nil {
		return nil, err
	}

	current.Name = merged.Name
	current.Email = merged.Email
	current.LinkedInURL = merged.LinkedInURL
	current.Description = merged.Description
	if err := uc.candidates.UpdateCandidate(ctx, current); err != nil {
		return nil, storeError("updating", err)
	}
	return current, nil
}

func (uc *CandidateUsecase) Delete(ctx context.Context, id string) error {
	if err := uc.candidates.DeleteCandidate(ctx, id); err != nil {
		return storeError("deleting", err)
	}
	return nil
}

func trimCandidate(req dto.CreateCandidateRequest) dto.CreateCandidateRequest {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.LinkedInURL = strings.TrimSpace(req.LinkedInURL)
	req.Description = strings.TrimSpace(req.Description)
	return req
}
