package service

import (
	"context"

	"github.com/fadilmartias/talent-fit/internal/model"
	"github.com/fadilmartias/talent-fit/internal/util"
)

// ProfileEnricher fetches supplementary profile data for a profile URL.
// Callers treat every failure as "no enrichment".
type ProfileEnricher interface {
	Enrich(ctx context.Context, profileURL string) (*model.EnrichedProfile, error)
}

// PlaceholderProfile is what a degraded source hands back instead of an
// error. It is flagged unavailable so callers can drop it.
func PlaceholderProfile(profileURL string) *model.EnrichedProfile {
	return &model.EnrichedProfile{
		Name:        "unavailable",
		Headline:    "LinkedIn profile could not be analysed",
		About:       "Add more detail to the candidate description for a better assessment.",
		SourceURL:   profileURL,
		Unavailable: true,
	}
}

// FixtureProfileService returns a canned profile without any network call.
// It stands in for a real source in demos and local runs.
type FixtureProfileService struct{}

func NewFixtureProfileService() *FixtureProfileService {
	return &FixtureProfileService{}
}

func (FixtureProfileService) Enrich(ctx context.Context, profileURL string) (*model.EnrichedProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name := util.LinkedInUsername(profileURL)
	if name == "" {
		name = "Candidate"
	}
	return &model.EnrichedProfile{
		Name:     name,
		Headline: "Full Stack Developer | React | Node.js | TypeScript",
		About:    "Developer passionate about technology with 5 years of web development experience. Specialised in React, Node.js and TypeScript.",
		Experience: []model.Experience{
			{
				Title:       "Full Stack Developer",
				Company:     "Tech Company",
				Duration:    "2022 - Present",
				Description: "Web applications with React, Node.js and MongoDB. Led the modernisation of a legacy system.",
			},
			{
				Title:       "Frontend Developer",
				Company:     "Startup XYZ",
				Duration:    "2020 - 2022",
				Description: "Responsive interfaces with React and TypeScript. Automated test suites.",
			},
		},
		Education: []model.Education{
			{Institution: "Federal University", Degree: "Bachelor", Field: "Computer Science", Duration: "2016 - 2020"},
		},
		Skills:    []string{"JavaScript", "TypeScript", "React", "Node.js", "MongoDB", "HTML", "CSS", "Git", "Docker", "AWS"},
		SourceURL: profileURL,
	}, nil
}
