package dto

type CreateCandidateRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	LinkedInURL string `json:"linkedin_url" validate:"required,linkedin_profile"`
	Description string `json:"description"`
}

// UpdateCandidateRequest changes only the fields that are present.
type UpdateCandidateRequest struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	LinkedInURL *string `json:"linkedin_url"`
	Description *string `json:"description"`
}
