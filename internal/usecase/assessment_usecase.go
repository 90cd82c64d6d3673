package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fadilmartias/talent-fit/internal/apperror"
	"github.com/fadilmartias/talent-fit/internal/model"
	"github.com/fadilmartias/talent-fit/internal/repository"
	"github.com/fadilmartias/talent-fit/internal/service"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultEnrichTimeout = 10 * time.Second

var (
	errEnrichmentDisabled = errors.New("enrichment disabled")
	errPlaceholderProfile = errors.New("enrichment source returned a placeholder profile")
)

// AssessmentDetail is a stored assessment with the records it references.
type AssessmentDetail struct {
	Assessment model.Assessment
	Role       *model.Role
	Candidate  *model.Candidate
}

// enrichment is the outcome of the best-effort profile fetch. Exactly one of
// profile and diag is set.
type enrichment struct {
	profile *model.EnrichedProfile
	diag    error
}

type AssessmentUsecase struct {
	store         repository.Store
	enricher      service.ProfileEnricher
	engine        service.AssessmentServiceInterface
	logger        *zap.Logger
	enrichTimeout time.Duration
}

// NewAssessmentUsecase wires the orchestrator. enricher may be nil, in which
// case every assessment runs without enrichment.
func NewAssessmentUsecase(store repository.Store, enricher service.ProfileEnricher, engine service.AssessmentServiceInterface, log *zap.Logger, enrichTimeout time.Duration) *AssessmentUsecase {
	if enrichTimeout <= 0 {
		enrichTimeout = defaultEnrichTimeout
	}
	return &AssessmentUsecase{
		store:         store,
		enricher:      enricher,
		engine:        engine,
		logger:        log,
		enrichTimeout: enrichTimeout,
	}
}

// Create runs one assessment end to end. Nothing is written unless the
// reasoning step produced a valid verdict.
func (uc *AssessmentUsecase) Create(ctx context.Context, roleID, candidateID string) (*AssessmentDetail, error) {
	roleID, candidateID = strings.TrimSpace(roleID), strings.TrimSpace(candidateID)
	if roleID == "" || candidateID == "" {
		return nil, apperror.Validation("missing parameters")
	}

	role, candidate, err := uc.resolve(ctx, roleID, candidateID)
	if err != nil {
		return nil, err
	}

	enriched := uc.enrich(ctx, candidate)
	if enriched.diag != nil {
		uc.logger.Warn("continuing without enrichment",
			zap.String("candidate_id", candidate.ID.String()),
			zap.Error(enriched.diag),
		)
	}

	verdict, err := uc.engine.Assess(ctx, service.AssessmentInput{
		RoleDescription:      role.Description,
		RoleRequirements:     role.Requirements,
		CandidateDescription: candidate.Description,
		Profile:              enriched.profile,
	})
	if err != nil {
		uc.logger.Error("assessment failed",
			zap.String("role_id", roleID),
			zap.String("candidate_id", candidateID),
			zap.Error(err),
		)
		return nil, apperror.Reasoning(err)
	}

	assessment := model.Assessment{
		RoleID:          role.ID,
		CandidateID:     candidate.ID,
		Score:           verdict.Score,
		Outcome:         verdict.Outcome,
		Report:          verdict.Report,
		EnrichedProfile: enriched.profile,
	}
	if err := uc.store.InsertAssessment(ctx, &assessment); err != nil {
		uc.logger.Error("persist assessment", zap.Error(err))
		return nil, apperror.Persistence("persisting", err)
	}

	uc.logger.Info("assessment created",
		zap.String("assessment_id", assessment.ID.String()),
		zap.String("role_id", roleID),
		zap.String("candidate_id", candidateID),
		zap.Int("score", assessment.Score),
		zap.String("outcome", string(assessment.Outcome)),
		zap.Bool("enriched", enriched.profile != nil),
	)

	return &AssessmentDetail{Assessment: assessment, Role: role, Candidate: candidate}, nil
}

// resolve loads the role and the candidate concurrently.
func (uc *AssessmentUsecase) resolve(ctx context.Context, roleID, candidateID string) (*model.Role, *model.Candidate, error) {
	var (
		role      *model.Role
		candidate *model.Candidate
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, err := uc.store.GetRole(gctx, roleID)
		if err != nil {
			return lookupError("role", roleID, err)
		}
		role = r
		return nil
	})
	g.Go(func() error {
		c, err := uc.store.GetCandidate(gctx, candidateID)
		if err != nil {
			return lookupError("candidate", candidateID, err)
		}
		candidate = c
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return role, candidate, nil
}

func lookupError(entity, id string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperror.NotFound("resolving_entities", fmt.Errorf("%s %s: %w", entity, id, err))
	}
	return apperror.Persistence("resolving_entities", fmt.Errorf("load %s %s: %w", entity, id, err))
}

// enrich never fails: errors, timeouts and placeholder profiles all come
// back as a diagnostic with no profile.
func (uc *AssessmentUsecase) enrich(ctx context.Context, candidate *model.Candidate) enrichment {
	if uc.enricher == nil {
		return enrichment{diag: errEnrichmentDisabled}
	}

	ectx, cancel := context.WithTimeout(ctx, uc.enrichTimeout)
	defer cancel()

	profile, err := uc.enricher.Enrich(ectx, candidate.LinkedInURL)
	switch {
	case err != nil:
		return enrichment{diag: err}
	case !profile.Usable():
		return enrichment{diag: errPlaceholderProfile}
	default:
		return enrichment{profile: profile}
	}
}

func (uc *AssessmentUsecase) List(ctx context.Context) ([]model.AssessmentSummary, error) {
	rows, err := uc.store.ListAssessments(ctx)
	if err != nil {
		return nil, apperror.Persistence("listing", err)
	}
	return rows, nil
}

// Get returns one assessment. A role or candidate that no longer exists is
// reported as nil rather than an error.
func (uc *AssessmentUsecase) Get(ctx context.Context, id string) (*AssessmentDetail, error) {
	a, err := uc.store.GetAssessment(ctx, id)
	if err != nil {
		return nil, storeError("loading", err)
	}

	detail := &AssessmentDetail{Assessment: *a}
	if role, err := uc.store.GetRole(ctx, a.RoleID.String()); err == nil {
		detail.Role = role
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, apperror.Persistence("loading", err)
	}
	if candidate, err := uc.store.GetCandidate(ctx, a.CandidateID.String()); err == nil {
		detail.Candidate = candidate
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, apperror.Persistence("loading", err)
	}
	return detail, nil
}
