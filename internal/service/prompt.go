package service

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
)

//go:embed system_prompt.md
var systemPrompt string

// SystemPrompt is the fixed instruction sent with every assessment.
func SystemPrompt() string {
	return strings.TrimSpace(systemPrompt)
}

// BuildDataPrompt renders the role and candidate data. The enriched profile
// block is omitted when profile is nil.
func BuildDataPrompt(in AssessmentInput) (string, error) {
	var b strings.Builder

	b.WriteString("CANDIDATE-ROLE FIT ANALYSIS\n\n")
	b.WriteString("=== ROLE ===\n")
	fmt.Fprintf(&b, "Description: %s\n", strings.TrimSpace(in.RoleDescription))
	fmt.Fprintf(&b, "Requirements: %s\n\n", strings.TrimSpace(in.RoleRequirements))
	b.WriteString("=== CANDIDATE ===\n")
	fmt.Fprintf(&b, "Description: %s\n", strings.TrimSpace(in.CandidateDescription))

	if in.Profile != nil {
		profileJSON, err := json.MarshalIndent(in.Profile, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshal enriched profile: %w", err)
		}
		fmt.Fprintf(&b, "LinkedIn data: %s\n", profileJSON)
	}

	b.WriteString("\nPlease perform the fit analysis and answer in the JSON format specified.")
	return b.String(), nil
}
