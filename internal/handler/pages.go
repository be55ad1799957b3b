package handler

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/proposalcraft/proposalcraft-go/internal/middleware"
	"github.com/proposalcraft/proposalcraft-go/internal/web"
)

// PageHandler serves the HTML pages.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// HandleHome handles GET / requests.
func (h *PageHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "home", web.PageData{Title: "Home"})
}

// HandleGenerator handles GET /generator requests.
func (h *PageHandler) HandleGenerator(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "generator", web.PageData{
		Title:    "Generator",
		Limits:   web.DefaultLimits,
		Examples: web.Examples,
	})
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, name string, data web.PageData) {
	data.Identity, _ = middleware.IdentityFromContext(r.Context())

	var buf bytes.Buffer
	if err := web.Render(&buf, name, data); err != nil {
		slog.Error("render page", "page", name, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
