package util

import "regexp"

var (
	reLinkedInProfile  = regexp.MustCompile(`^https?://(www\.)?linkedin\.com/in/[a-zA-Z0-9-]+/?$`)
	reLinkedInUsername = regexp.MustCompile(`linkedin\.com/in/([a-zA-Z0-9-]+)/?$`)
)

// IsValidLinkedInURL accepts public profile URLs only: scheme, optional www,
// linkedin.com and a single /in/<slug> segment.
func IsValidLinkedInURL(raw string) bool {
	return reLinkedInProfile.MatchString(raw)
}

// LinkedInUsername returns the profile slug, or "" when raw is not a profile URL.
func LinkedInUsername(raw string) string {
	m := reLinkedInUsername.FindStringSubmatch(raw)
	if m == nil {
		return ""
	}
	return m[1]
}
