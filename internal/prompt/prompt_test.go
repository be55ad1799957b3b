package prompt

import (
	"strings"
	"testing"

	"github.com/proposalcraft/proposalcraft-go/internal/llm"
	"github.com/proposalcraft/proposalcraft-go/internal/model"
)

const logoJob = "Need a logo designed for my startup, budget $200"

func TestUserWithoutSkills(t *testing.T) {
	got := User(model.GenerationRequest{JobDescription: logoJob})
	want := "Job Description:\nNeed a logo designed for my startup, budget $200\n\nGenerate a winning proposal for this job."
	if got != want {
		t.Fatalf("User() = %q, want %q", got, want)
	}
	if strings.Contains(got, SkillsLabel) {
		t.Errorf("User() contains skills label without skills: %q", got)
	}
}

func TestUserWithSkills(t *testing.T) {
	skills := "Graphic designer, 10 years experience"
	got := User(model.GenerationRequest{JobDescription: logoJob, UserSkills: skills})

	want := "Job Description:\n" + logoJob +
		"\n\nMy Skills and Experience:\n" + skills +
		"\n\nGenerate a winning proposal for this job."
	if got != want {
		t.Fatalf("User() = %q, want %q", got, want)
	}

	jd := strings.Index(got, JobDescriptionLabel+"\n"+logoJob)
	sk := strings.Index(got, SkillsLabel+"\n"+skills)
	if jd < 0 || sk < 0 || jd > sk {
		t.Errorf("sections out of order or missing: jd=%d skills=%d", jd, sk)
	}
}

func TestUserKeepsInputVerbatim(t *testing.T) {
	jd := "  Build a scraper\n\nwith   odd   spacing  "
	skills := "\tGo, Python\n"
	got := User(model.GenerationRequest{JobDescription: jd, UserSkills: skills})

	if !strings.Contains(got, JobDescriptionLabel+"\n"+jd) {
		t.Errorf("job description not embedded verbatim: %q", got)
	}
	if !strings.Contains(got, SkillsLabel+"\n"+skills) {
		t.Errorf("skills not embedded verbatim: %q", got)
	}
}

func TestUserIsDeterministic(t *testing.T) {
	req := model.GenerationRequest{JobDescription: logoJob, UserSkills: "Illustrator"}
	if User(req) != User(req) {
		t.Fatal("User() is not deterministic")
	}
}

func TestBuilderDropsOnlyEmptyOptionalSections(t *testing.T) {
	var b Builder
	b.Add("A:", "").AddOptional("B:", "").AddOptional("C:", "c")

	got := b.String()
	want := "A:\n\n\nC:\nc"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestSystemInstruction(t *testing.T) {
	s := System()
	for _, want := range []string{
		"genuine interest",
		"experience and skills",
		"solve the client's problem",
		"call-to-action",
		"300-500 words",
		"professional, confident, and specific",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("System() missing %q", want)
		}
	}
	if strings.HasSuffix(s, "\n") {
		t.Error("System() should not end with a newline")
	}
}

func TestConversation(t *testing.T) {
	req := model.GenerationRequest{JobDescription: logoJob}
	msgs := Conversation(req)

	if len(msgs) != 2 {
		t.Fatalf("Conversation() returned %d messages, want 2", len(msgs))
	}
	if msgs[0].Role != llm.RoleSystem || msgs[0].Content != System() {
		t.Errorf("first message = %+v, want system instruction", msgs[0])
	}
	if msgs[1].Role != llm.RoleUser || msgs[1].Content != User(req) {
		t.Errorf("second message = %+v, want user message", msgs[1])
	}
}
