// Package web holds the server-rendered pages and their static assets.
package web

import (
	"embed"
	"html/template"
	"io"
	"io/fs"

	"github.com/proposalcraft/proposalcraft-go/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Limits mirror the server-side bounds so the page can warn early.
type Limits struct {
	JobMin    int
	JobMax    int
	SkillsMax int
}

// Example is a sample job post offered on the generator page.
type Example struct {
	Title       string
	Description string
}

// PageData is passed to every page template.
type PageData struct {
	Title    string
	Identity *model.Identity
	Limits   Limits
	Examples []Example
}

var DefaultLimits = Limits{JobMin: 10, JobMax: 5000, SkillsMax: 1000}

var Examples = []Example{
	{
		Title:       "Full-Stack Developer for SaaS MVP",
		Description: "We are looking for an experienced full-stack developer to build the MVP of our SaaS product. The project requires React for the frontend, Node.js for the backend, and PostgreSQL for the database. You should be able to deliver a working prototype in 4 weeks.",
	},
	{
		Title:       "AI Integration Specialist",
		Description: "Need someone to integrate OpenAI API into our existing web application. The goal is to add a chatbot feature that can answer customer questions based on our knowledge base.",
	},
	{
		Title:       "Mobile App Developer - React Native",
		Description: "Looking for a skilled React Native developer to build a cross-platform mobile app for our e-commerce business. Must have experience with payment integration and push notifications.",
	},
}

// Render executes the named page template.
func Render(w io.Writer, name string, data PageData) error {
	return pages.ExecuteTemplate(w, name, data)
}

// Static returns the embedded static asset tree rooted at static/.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
