package model

// EnrichedProfile is supplementary profile data pulled from a professional
// network. It is never stored on its own, only as a snapshot inside an
// Assessment.
type EnrichedProfile struct {
	Name        string       `json:"name,omitempty"`
	Headline    string       `json:"headline,omitempty"`
	About       string       `json:"about,omitempty"`
	Experience  []Experience `json:"experience,omitempty"`
	Education   []Education  `json:"education,omitempty"`
	Skills      []string     `json:"skills,omitempty"`
	SourceURL   string       `json:"source_url,omitempty"`
	Unavailable bool         `json:"unavailable,omitempty"`
}

type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Duration    string `json:"duration,omitempty"`
	Description string `json:"description,omitempty"`
}

type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree,omitempty"`
	Field       string `json:"field,omitempty"`
	Duration    string `json:"duration,omitempty"`
}

// Usable reports whether the profile carries real data. Placeholder profiles
// returned by a degraded source are not usable.
func (p *EnrichedProfile) Usable() bool {
	return p != nil && !p.Unavailable
}
