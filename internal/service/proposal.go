package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/proposalcraft/proposalcraft-go/internal/llm"
	"github.com/proposalcraft/proposalcraft-go/internal/model"
	"github.com/proposalcraft/proposalcraft-go/internal/prompt"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrGenerationFailed = errors.New("failed to generate proposal")
	ErrUpstream         = errors.New("completion service failed")
)

// ProposalService turns a job description into a proposal draft.
type ProposalService struct {
	client llm.Client
}

// NewProposalService creates a new ProposalService.
func NewProposalService(client llm.Client) *ProposalService {
	return &ProposalService{client: client}
}

// Validate checks req against the length bounds without calling the provider.
func (s *ProposalService) Validate(req model.GenerationRequest) error {
	return validateStruct(req)
}

// Generate validates req, sends the conversation to the provider once and
// returns the first choice verbatim. The provider call is detached from ctx
// cancellation so an abandoned client request still completes.
func (s *ProposalService) Generate(ctx context.Context, req model.GenerationRequest) (model.GenerationResult, error) {
	if err := s.Validate(req); err != nil {
		return model.GenerationResult{}, err
	}

	completion, err := s.client.Complete(context.WithoutCancel(ctx), prompt.Conversation(req))
	if err != nil {
		return model.GenerationResult{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	proposal, ok := firstContent(completion)
	if !ok {
		return model.GenerationResult{}, ErrGenerationFailed
	}

	slog.DebugContext(ctx, "proposal generated",
		"job_chars", utf8.RuneCountInString(req.JobDescription),
		"has_skills", req.UserSkills != "",
		"proposal_chars", utf8.RuneCountInString(proposal),
	)

	return model.GenerationResult{Proposal: proposal}, nil
}

func firstContent(c *llm.Completion) (string, bool) {
	if c == nil || len(c.Choices) == 0 || c.Choices[0].Content == nil {
		return "", false
	}
	content := *c.Choices[0].Content
	if strings.TrimSpace(content) == "" {
		return "", false
	}
	return content, true
}
