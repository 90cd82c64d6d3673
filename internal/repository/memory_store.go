package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/fadilmartias/talent-fit/internal/model"
	"github.com/google/uuid"
)

// MemoryStore keeps everything in process memory. It backs local runs without
// a database and the tests.
type MemoryStore struct {
	mu          sync.RWMutex
	seq         int64
	roles       map[uuid.UUID]entry[model.Role]
	candidates  map[uuid.UUID]entry[model.Candidate]
	assessments map[uuid.UUID]entry[model.Assessment]
	now         func() time.Time
}

// entry carries an insertion sequence so equal timestamps still sort
// newest first.
type entry[T any] struct {
	seq int64
	v   T
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		roles:       make(map[uuid.UUID]entry[model.Role]),
		candidates:  make(map[uuid.UUID]entry[model.Candidate]),
		assessments: make(map[uuid.UUID]entry[model.Assessment]),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *MemoryStore) next() int64 {
	s.seq++
	return s.seq
}

func (s *MemoryStore) CreateRole(_ context.Context, role *model.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if role.ID == uuid.Nil {
		role.ID = uuid.New()
	}
	if role.Status == "" {
		role.Status = model.RoleActive
	}
	if role.CreatedAt.IsZero() {
		role.CreatedAt = s.now()
	}
	s.roles[role.ID] = entry[model.Role]{seq: s.next(), v: *role}
	return nil
}

func (s *MemoryStore) ListRoles(_ context.Context) ([]model.Role, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return newestFirst(s.roles, func(r model.Role) time.Time { return r.CreatedAt }), nil
}

func (s *MemoryStore) GetRole(_ context.Context, id string) (*model.Role, error) {
	uid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.roles[uid]
	if !ok {
		return nil, ErrNotFound
	}
	role := e.v
	return &role, nil
}

func (s *MemoryStore) UpdateRoleStatus(_ context.Context, id string, status model.RoleStatus) (*model.Role, error) {
	uid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.roles[uid]
	if !ok {
		return nil, ErrNotFound
	}
	e.v.Status = status
	s.roles[uid] = e
	role := e.v
	return &role, nil
}

func (s *MemoryStore) DeleteRole(_ context.Context, id string) error {
	uid, err := parseID(id)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.roles[uid]; !ok {
		return ErrNotFound
	}
	delete(s.roles, uid)
	return nil
}

func (s *MemoryStore) CreateCandidate(_ context.Context, candidate *model.Candidate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if candidate.ID == uuid.Nil {
		candidate.ID = uuid.New()
	}
	if candidate.CreatedAt.IsZero() {
		candidate.CreatedAt = s.now()
	}
	s.candidates[candidate.ID] = entry[model.Candidate]{seq: s.next(), v: *candidate}
	return nil
}

func (s *MemoryStore) ListCandidates(_ context.Context) ([]model.Candidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return newestFirst(s.candidates, func(c model.Candidate) time.Time { return c.CreatedAt }), nil
}

func (s *MemoryStore) GetCandidate(_ context.Context, id string) (*model.Candidate, error) {
	uid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.candidates[uid]
	if !ok {
		return nil, ErrNotFound
	}
	c := e.v
	return &c, nil
}

func (s *MemoryStore) UpdateCandidate(_ context.Context, candidate *model.Candidate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.candidates[candidate.ID]
	if !ok {
		return ErrNotFound
	}
	e.v.Name = candidate.Name
	e.v.Email = candidate.Email
	e.v.LinkedInURL = candidate.LinkedInURL
	e.v.Description = candidate.Description
	s.candidates[candidate.ID] = e
	return nil
}

func (s *MemoryStore) DeleteCandidate(_ context.Context, id string) error {
	uid, err := parseID(id)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.candidates[uid]; !ok {
		return ErrNotFound
	}
	delete(s.candidates, uid)
	return nil
}

func (s *MemoryStore) InsertAssessment(_ context.Context, assessment *model.Assessment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	assessment.ID = uuid.New()
	assessment.CreatedAt = s.now()
	s.assessments[assessment.ID] = entry[model.Assessment]{seq: s.next(), v: *assessment}
	return nil
}

func (s *MemoryStore) ListAssessments(_ context.Context) ([]model.AssessmentSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := newestFirst(s.assessments, func(a model.Assessment) time.Time { return a.CreatedAt })
	out := make([]model.AssessmentSummary, 0, len(items))
	for _, a := range items {
		row := model.AssessmentSummary{Assessment: a}
		if r, ok := s.roles[a.RoleID]; ok {
			title := r.v.Title
			row.RoleTitle = &title
		}
		if c, ok := s.candidates[a.CandidateID]; ok {
			name := c.v.Name
			row.CandidateName = &name
		}
		out = append(out, row)
	}
	return out, nil
}

func (s *MemoryStore) GetAssessment(_ context.Context, id string) (*model.Assessment, error) {
	uid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.assessments[uid]
	if !ok {
		return nil, ErrNotFound
	}
	a := e.v
	return &a, nil
}

func newestFirst[T any](m map[uuid.UUID]entry[T], createdAt func(T) time.Time) []T {
	entries := make([]entry[T], 0, len(m))
	for _, e := range m {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		ti, tj := createdAt(entries[i].v), createdAt(entries[j].v)
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return entries[i].seq > entries[j].seq
	})
	out := make([]T, len(entries))
	for i, e := range entries {
		out[i] = e.v
	}
	return out
}
