package model

// GenerationRequest is the input of a single proposal generation.
// UserSkills may be omitted; an absent value is treated as empty.
type GenerationRequest struct {
	JobDescription string `json:"jobDescription" validate:"trimmed_min=10,max=5000"`
	UserSkills     string `json:"userSkills" validate:"max=1000"`
}

// GenerationResult carries the generated proposal. Proposal is never empty.
type GenerationResult struct {
	Proposal string `json:"proposal"`
}
