// Package prompt builds the two-message conversation sent to the completion
// service for a proposal request. Output is a pure function of the input.
package prompt

import (
	_ "embed"
	"strings"

	"github.com/proposalcraft/proposalcraft-go/internal/llm"
	"github.com/proposalcraft/proposalcraft-go/internal/model"
)

const (
	JobDescriptionLabel = "Job Description:"
	SkillsLabel         = "My Skills and Experience:"
	ClosingInstruction  = "Generate a winning proposal for this job."
)

//go:embed system.txt
var systemInstruction string

// System returns the fixed system instruction.
func System() string {
	return systemInstruction
}

// Section is one block of the user message. An optional section with an
// empty body is dropped from the output.
type Section struct {
	Label    string
	Body     string
	Optional bool
}

func (s Section) render() string {
	if s.Label == "" {
		return s.Body
	}
	return s.Label + "\n" + s.Body
}

// Builder accumulates sections and joins them with a blank line.
type Builder struct {
	sections []Section
}

// Add appends a required section.
func (b *Builder) Add(label, body string) *Builder {
	b.sections = append(b.sections, Section{Label: label, Body: body})
	return b
}

// AddOptional appends a section that is omitted when body is empty.
func (b *Builder) AddOptional(label, body string) *Builder {
	b.sections = append(b.sections, Section{Label: label, Body: body, Optional: true})
	return b
}

// String renders the kept sections.
func (b *Builder) String() string {
	parts := make([]string, 0, len(b.sections))
	for _, s := range b.sections {
		if s.Optional && s.Body == "" {
			continue
		}
		parts = append(parts, s.render())
	}
	return strings.Join(parts, "\n\n")
}

// User assembles the user message for req. Inputs are embedded verbatim.
func User(req model.GenerationRequest) string {
	var b Builder
	b.Add(JobDescriptionLabel, req.JobDescription).
		AddOptional(SkillsLabel, req.UserSkills).
		Add("", ClosingInstruction)
	return b.String()
}

// Conversation returns the system and user messages for req, in that order.
func Conversation(req model.GenerationRequest) []llm.Message {
	return []llm.Message{
		{Role: llm.RoleSystem, Content: System()},
		{Role: llm.RoleUser, Content: User(req)},
	}
}
