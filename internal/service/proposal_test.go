package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/proposalcraft/proposalcraft-go/internal/llm"
	"github.com/proposalcraft/proposalcraft-go/internal/model"
	"github.com/proposalcraft/proposalcraft-go/internal/prompt"
)

type fakeClient struct {
	completion *llm.Completion
	err        error
	calls      int
	messages   []llm.Message
	ctxErr     error
}

func (f *fakeClient) Complete(ctx context.Context, messages []llm.Message) (*llm.Completion, error) {
	f.calls++
	f.messages = messages
	f.ctxErr = ctx.Err()
	return f.completion, f.err
}

func reply(s string) *llm.Completion {
	return &llm.Completion{Choices: []llm.Choice{{Content: &s}}}
}

const logoJob = "Need a logo designed for my startup, budget $200"

func TestGenerate_Success(t *testing.T) {
	want := "  Hi there,\n\nI'd love to help with your logo.\n"
	fc := &fakeClient{completion: reply(want)}
	svc := NewProposalService(fc)

	got, err := svc.Generate(context.Background(), model.GenerationRequest{JobDescription: logoJob})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Proposal != want {
		t.Errorf("Proposal = %q, want verbatim %q", got.Proposal, want)
	}
	if fc.calls != 1 {
		t.Errorf("calls = %d, want 1", fc.calls)
	}
	if len(fc.messages) != 2 || fc.messages[0].Role != llm.RoleSystem || fc.messages[1].Role != llm.RoleUser {
		t.Fatalf("messages = %+v, want system then user", fc.messages)
	}
	wantUser := "Job Description:\n" + logoJob + "\n\nGenerate a winning proposal for this job."
	if fc.messages[1].Content != wantUser {
		t.Errorf("user message = %q, want %q", fc.messages[1].Content, wantUser)
	}
}

func TestGenerate_WithSkills(t *testing.T) {
	fc := &fakeClient{completion: reply("proposal")}
	svc := NewProposalService(fc)

	skills := "Graphic designer, 10 years experience"
	if _, err := svc.Generate(context.Background(), model.GenerationRequest{JobDescription: logoJob, UserSkills: skills}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user := fc.messages[1].Content
	jd := strings.Index(user, prompt.JobDescriptionLabel+"\n"+logoJob)
	sk := strings.Index(user, prompt.SkillsLabel+"\n"+skills)
	if jd < 0 || sk < 0 || jd > sk {
		t.Errorf("user message sections missing or out of order: %q", user)
	}
}

func TestGenerate_ValidationRejectsWithoutCalling(t *testing.T) {
	tests := []struct {
		name    string
		req     model.GenerationRequest
		field   string
		message string
	}{
		{"empty", model.GenerationRequest{}, "jobDescription", "please enter a job description"},
		{"blank", model.GenerationRequest{JobDescription: "   \n\t  "}, "jobDescription", "please enter a job description"},
		{"too short", model.GenerationRequest{JobDescription: "short"}, "jobDescription", "job description must be at least 10 characters"},
		{"short after trim", model.GenerationRequest{JobDescription: "   nine char   "}, "jobDescription", "job description must be at least 10 characters"},
		{"too long", model.GenerationRequest{JobDescription: strings.Repeat("a", 5001)}, "jobDescription", "job description must be at most 5000 characters"},
		{"skills too long", model.GenerationRequest{JobDescription: logoJob, UserSkills: strings.Repeat("s", 1001)}, "userSkills", "skills must be at most 1000 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := &fakeClient{completion: reply("never")}
			svc := NewProposalService(fc)

			_, err := svc.Generate(context.Background(), tt.req)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("err = %v, want ErrInvalidInput", err)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("err = %T, want *ValidationError", err)
			}
			if verr.Field != tt.field || verr.Message != tt.message {
				t.Errorf("ValidationError = %+v, want field %q message %q", verr, tt.field, tt.message)
			}
			if fc.calls != 0 {
				t.Errorf("calls = %d, want 0", fc.calls)
			}
		})
	}
}

func TestGenerate_BoundsCountCharacters(t *testing.T) {
	fc := &fakeClient{completion: reply("ok")}
	svc := NewProposalService(fc)

	// 5000 multi-byte runes is within bounds even though it is 15000 bytes.
	jd := strings.Repeat("設", 5000)
	skills := strings.Repeat("é", 1000)
	if _, err := svc.Generate(context.Background(), model.GenerationRequest{JobDescription: jd, UserSkills: skills}); err != nil {
		t.Fatalf("unexpected error at upper bounds: %v", err)
	}

	if _, err := svc.Generate(context.Background(), model.GenerationRequest{JobDescription: strings.Repeat("x", 10)}); err != nil {
		t.Fatalf("unexpected error at lower bound: %v", err)
	}
	if fc.calls != 2 {
		t.Errorf("calls = %d, want 2", fc.calls)
	}
}

func TestGenerate_BoundsCountCodePointsNotUTF16(t *testing.T) {
	fc := &fakeClient{completion: reply("ok")}
	svc := NewProposalService(fc)

	// Each emoji is one code point but two UTF-16 units.
	job := strings.Repeat("🚀", 10)
	skills := strings.Repeat("🚀", 1000)
	if _, err := svc.Generate(context.Background(), model.GenerationRequest{JobDescription: job, UserSkills: skills}); err != nil {
		t.Fatalf("1000 astral runes rejected: %v", err)
	}

	_, err := svc.Generate(context.Background(), model.GenerationRequest{JobDescription: job, UserSkills: skills + "🚀"})
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "userSkills" {
		t.Fatalf("err = %v, want userSkills ValidationError", err)
	}
	if fc.calls != 1 {
		t.Errorf("calls = %d, want 1", fc.calls)
	}
}

func TestGenerate_NoUsableContent(t *testing.T) {
	empty := ""
	tests := []struct {
		name       string
		completion *llm.Completion
	}{
		{"nil completion", nil},
		{"no choices", &llm.Completion{}},
		{"nil content", &llm.Completion{Choices: []llm.Choice{{}}}},
		{"empty content", &llm.Completion{Choices: []llm.Choice{{Content: &empty}}}},
		{"whitespace content", reply(" \n\t ")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewProposalService(&fakeClient{completion: tt.completion})
			got, err := svc.Generate(context.Background(), model.GenerationRequest{JobDescription: logoJob})
			if !errors.Is(err, ErrGenerationFailed) {
				t.Fatalf("err = %v, want ErrGenerationFailed", err)
			}
			if got.Proposal != "" {
				t.Errorf("Proposal = %q on failure", got.Proposal)
			}
		})
	}
}

func TestGenerate_UsesFirstChoiceOnly(t *testing.T) {
	second := "second"
	fc := &fakeClient{completion: &llm.Completion{Choices: []llm.Choice{{}, {Content: &second}}}}
	svc := NewProposalService(fc)

	if _, err := svc.Generate(context.Background(), model.GenerationRequest{JobDescription: logoJob}); !errors.Is(err, ErrGenerationFailed) {
		t.Fatalf("err = %v, want ErrGenerationFailed", err)
	}
}

func TestGenerate_UpstreamError(t *testing.T) {
	cause := errors.New("llm returned HTTP 401: bad key")
	fc := &fakeClient{err: cause}
	svc := NewProposalService(fc)

	_, err := svc.Generate(context.Background(), model.GenerationRequest{JobDescription: logoJob})
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("err = %v, want ErrUpstream", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("err = %v, should wrap the provider error", err)
	}
	if fc.calls != 1 {
		t.Errorf("calls = %d, want exactly 1 (no retry)", fc.calls)
	}
}

func TestGenerate_DetachedFromCancellation(t *testing.T) {
	fc := &fakeClient{completion: reply("done")}
	svc := NewProposalService(fc)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.Generate(ctx, model.GenerationRequest{JobDescription: logoJob}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fc.ctxErr != nil {
		t.Errorf("provider context err = %v, want nil", fc.ctxErr)
	}
}
