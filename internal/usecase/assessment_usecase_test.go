package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/fadilmartias/talent-fit/internal/apperror"
	"github.com/fadilmartias/talent-fit/internal/model"
	"github.com/fadilmartias/talent-fit/internal/repository"
	"github.com/fadilmartias/talent-fit/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeEnricher struct {
	mu      sync.Mutex
	calls   int
	profile *model.EnrichedProfile
	err     error
}

func (f *fakeEnricher) Enrich(_ context.Context, _ string) (*model.EnrichedProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.profile, f.err
}

// blockingEnricher never answers on its own and only returns once ctx is done.
type blockingEnricher struct {
	calls int
}

func (b *blockingEnricher) Enrich(ctx context.Context, _ string) (*model.EnrichedProfile, error) {
	b.calls++
	<-ctx.Done()
	return nil, ctx.Err()
}

type fakeEngine struct {
	mu      sync.Mutex
	calls   int
	lastIn  service.AssessmentInput
	verdict *service.Verdict
	err     error
}

func (f *fakeEngine) Assess(_ context.Context, in service.AssessmentInput) (*service.Verdict, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.lastIn = in
	return f.verdict, f.err
}

type failingInsertStore struct {
	*repository.MemoryStore
}

func (failingInsertStore) InsertAssessment(context.Context, *model.Assessment) error {
	return errors.New("disk full")
}

func seededStore(t *testing.T) *repository.MemoryStore {
	t.Helper()
	s := repository.NewMemoryStore()
	require.NoError(t, repository.SeedFixtures(context.Background(), s))
	return s
}

func fitVerdict() *service.Verdict {
	return &service.Verdict{Score: 85, Outcome: model.OutcomeFit, ReportedOutcome: model.OutcomeFit, Report: "Strong match"}
}

var (
	roleID      = repository.FixtureRoleFullStackID.String()
	candidateID = repository.FixtureCandidateAnaID.String()
)

func TestCreateAssessment(t *testing.T) {
	store := seededStore(t)
	profile := &model.EnrichedProfile{Headline: "Full Stack Developer"}
	enricher := &fakeEnricher{profile: profile}
	engine := &fakeEngine{verdict: fitVerdict()}
	uc := NewAssessmentUsecase(store, enricher, engine, zap.NewNop(), 0)

	detail, err := uc.Create(context.Background(), roleID, candidateID)
	require.NoError(t, err)

	assert.Equal(t, 1, enricher.calls)
	assert.Equal(t, 1, engine.calls)
	assert.Equal(t, profile, engine.lastIn.Profile)
	assert.Contains(t, engine.lastIn.RoleRequirements, "React")
	assert.Contains(t, engine.lastIn.CandidateDescription, "6 years")

	assert.NotEqual(t, uuid.Nil, detail.Assessment.ID)
	assert.Equal(t, 85, detail.Assessment.Score)
	assert.Equal(t, model.OutcomeFit, detail.Assessment.Outcome)
	assert.Equal(t, profile, detail.Assessment.EnrichedProfile)
	require.NotNil(t, detail.Role)
	require.NotNil(t, detail.Candidate)
	assert.Equal(t, "Senior Full Stack Developer", detail.Role.Title)
	assert.Equal(t, "Ana Silva Costa", detail.Candidate.Name)

	stored, err := store.GetAssessment(context.Background(), detail.Assessment.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Strong match", stored.Report)
	assert.Equal(t, "Full Stack Developer", stored.EnrichedProfile.Headline)
}

func TestCreateAssessmentMissingParameters(t *testing.T) {
	cases := []struct{ role, candidate string }{
		{"", candidateID},
		{roleID, ""},
		{"  ", "\t"},
	}
	for _, tc := range cases {
		store := seededStore(t)
		enricher := &fakeEnricher{}
		engine := &fakeEngine{verdict: fitVerdict()}
		uc := NewAssessmentUsecase(store, enricher, engine, zap.NewNop(), 0)

		_, err := uc.Create(context.Background(), tc.role, tc.candidate)
		require.Error(t, err)
		assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
		assert.Equal(t, "missing parameters", err.Error())
		assert.Zero(t, enricher.calls)
		assert.Zero(t, engine.calls)
	}
}

func TestCreateAssessmentNotFound(t *testing.T) {
	cases := map[string]struct{ role, candidate string }{
		"unknown role":      {uuid.NewString(), candidateID},
		"unknown candidate": {roleID, uuid.NewString()},
		"malformed role id": {"42", candidateID},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			store := seededStore(t)
			enricher := &fakeEnricher{}
			engine := &fakeEngine{verdict: fitVerdict()}
			uc := NewAssessmentUsecase(store, enricher, engine, zap.NewNop(), 0)

			_, err := uc.Create(context.Background(), tc.role, tc.candidate)
			require.Error(t, err)
			assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
			assert.True(t, errors.Is(err, repository.ErrNotFound))
			assert.Zero(t, enricher.calls)
			assert.Zero(t, engine.calls)

			rows, err := store.ListAssessments(context.Background())
			require.NoError(t, err)
			assert.Empty(t, rows)
		})
	}
}

func TestCreateAssessmentSurvivesEnrichmentFailure(t *testing.T) {
	cases := map[string]service.ProfileEnricher{
		"transport error": &fakeEnricher{err: errors.New("connection refused")},
		"placeholder":     &fakeEnricher{profile: service.PlaceholderProfile("https://linkedin.com/in/ana-silva-dev")},
		"disabled":        nil,
	}
	for name, enricher := range cases {
		t.Run(name, func(t *testing.T) {
			store := seededStore(t)
			engine := &fakeEngine{verdict: fitVerdict()}
			uc := NewAssessmentUsecase(store, enricher, engine, zap.NewNop(), 0)

			detail, err := uc.Create(context.Background(), roleID, candidateID)
			require.NoError(t, err)
			assert.Nil(t, engine.lastIn.Profile)
			assert.Nil(t, detail.Assessment.EnrichedProfile)

			stored, err := store.GetAssessment(context.Background(), detail.Assessment.ID.String())
			require.NoError(t, err)
			assert.Nil(t, stored.EnrichedProfile)
		})
	}
}

func TestCreateAssessmentSwallowsEnrichmentTimeout(t *testing.T) {
	store := seededStore(t)
	enricher := &blockingEnricher{}
	engine := &fakeEngine{verdict: fitVerdict()}
	uc := NewAssessmentUsecase(store, enricher, engine, zap.NewNop(), 50*time.Millisecond)

	start := time.Now()
	detail, err := uc.Create(context.Background(), roleID, candidateID)
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)

	assert.Equal(t, 1, enricher.calls)
	assert.Equal(t, 1, engine.calls)
	assert.Nil(t, engine.lastIn.Profile)
	assert.Nil(t, detail.Assessment.EnrichedProfile)

	stored, err := store.GetAssessment(context.Background(), detail.Assessment.ID.String())
	require.NoError(t, err)
	assert.Nil(t, stored.EnrichedProfile)
}

func TestCreateAssessmentReasoningFailureIsFatal(t *testing.T) {
	failures := []error{
		service.ErrServiceUnavailable,
		service.ErrEmptyResponse,
		service.ErrInvalidResponseFormat,
		service.ErrInvalidAnalysisData,
	}
	for _, failure := range failures {
		t.Run(failure.Error(), func(t *testing.T) {
			store := seededStore(t)
			engine := &fakeEngine{err: failure}
			uc := NewAssessmentUsecase(store, &fakeEnricher{profile: &model.EnrichedProfile{Name: "x"}}, engine, zap.NewNop(), 0)

			_, err := uc.Create(context.Background(), roleID, candidateID)
			require.Error(t, err)
			assert.Equal(t, apperror.KindReasoning, apperror.KindOf(err))
			assert.True(t, errors.Is(err, failure))
			assert.Contains(t, err.Error(), "assessment failed: ")

			rows, err := store.ListAssessments(context.Background())
			require.NoError(t, err)
			assert.Empty(t, rows)
		})
	}
}

func TestCreateAssessmentPersistenceFailure(t *testing.T) {
	store := failingInsertStore{seededStore(t)}
	uc := NewAssessmentUsecase(store, nil, &fakeEngine{verdict: fitVerdict()}, zap.NewNop(), 0)

	_, err := uc.Create(context.Background(), roleID, candidateID)
	require.Error(t, err)
	assert.Equal(t, apperror.KindPersistence, apperror.KindOf(err))
}

func TestCreateAssessmentIsNotDeduplicated(t *testing.T) {
	store := seededStore(t)
	uc := NewAssessmentUsecase(store, nil, &fakeEngine{verdict: fitVerdict()}, zap.NewNop(), 0)

	a, err := uc.Create(context.Background(), roleID, candidateID)
	require.NoError(t, err)
	b, err := uc.Create(context.Background(), roleID, candidateID)
	require.NoError(t, err)
	assert.NotEqual(t, a.Assessment.ID, b.Assessment.ID)

	rows, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestGetAssessmentWithDanglingReferences(t *testing.T) {
	store := seededStore(t)
	uc := NewAssessmentUsecase(store, nil, &fakeEngine{verdict: fitVerdict()}, zap.NewNop(), 0)

	created, err := uc.Create(context.Background(), roleID, candidateID)
	require.NoError(t, err)
	require.NoError(t, store.DeleteRole(context.Background(), roleID))

	detail, err := uc.Get(context.Background(), created.Assessment.ID.String())
	require.NoError(t, err)
	assert.Nil(t, detail.Role)
	require.NotNil(t, detail.Candidate)

	_, err = uc.Get(context.Background(), uuid.NewString())
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}
