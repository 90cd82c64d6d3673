package repository

import (
	"context"

	"github.com/fadilmartias/talent-fit/internal/model"
	"github.com/google/uuid"
)

var (
	FixtureRoleFullStackID   = uuid.MustParse("6f1c2b0e-8a57-4c36-9d0e-2f4a1b7c9e01")
	FixtureRoleDesignerID    = uuid.MustParse("6f1c2b0e-8a57-4c36-9d0e-2f4a1b7c9e02")
	FixtureCandidateAnaID    = uuid.MustParse("a3d9e5f1-2b4c-4e6a-8f1d-7c5b3a9e0d11")
	FixtureCandidateCarlosID = uuid.MustParse("a3d9e5f1-2b4c-4e6a-8f1d-7c5b3a9e0d12")
)

// SeedFixtures loads the demo roles and candidates used when no database is
// configured.
func SeedFixtures(ctx context.Context, s Store) error {
	roles := []model.Role{
		{
			ID:               FixtureRoleDesignerID,
			Title:            "Mid-level UX/UI Designer",
			Description:      "We are looking for a creative designer to join our product team.",
			Requirements:     "At least 3 years of UX/UI experience. Figma, Adobe XD.",
			Responsibilities: "Create wireframes, prototypes and interfaces.",
			Status:           model.RoleActive,
		},
		{
			ID:               FixtureRoleFullStackID,
			Title:            "Senior Full Stack Developer",
			Description:      "Role for an experienced developer at a growing technology startup.",
			Requirements:     "At least 5 years of web development experience. React, Node.js, TypeScript.",
			Responsibilities: "Build and maintain complex web applications.",
			Status:           model.RoleActive,
		},
	}
	for i := range roles {
		if err := s.CreateRole(ctx, &roles[i]); err != nil {
			return err
		}
	}

	candidates := []model.Candidate{
		{
			ID:          FixtureCandidateCarlosID,
			Name:        "Carlos Mendes",
			Email:       "carlos.mendes@example.com",
			LinkedInURL: "https://linkedin.com/in/carlos-mendes-designer",
			Description: "UX/UI designer with a strong background in user research.",
		},
		{
			ID:          FixtureCandidateAnaID,
			Name:        "Ana Silva Costa",
			Email:       "ana.silva@example.com",
			LinkedInURL: "https://linkedin.com/in/ana-silva-dev",
			Description: "Full stack developer with 6 years of experience.",
		},
	}
	for i := range candidates {
		if err := s.CreateCandidate(ctx, &candidates[i]); err != nil {
			return err
		}
	}
	return nil
}
