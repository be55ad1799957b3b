// Package server wires handlers and middleware into the HTTP router.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/proposalcraft/proposalcraft-go/internal/handler"
	"github.com/proposalcraft/proposalcraft-go/internal/middleware"
	"github.com/proposalcraft/proposalcraft-go/internal/service"
	"github.com/proposalcraft/proposalcraft-go/internal/session"
	"github.com/proposalcraft/proposalcraft-go/internal/web"
)

// Deps are the collaborators the router needs.
type Deps struct {
	Proposals    *service.ProposalService
	Auth         *service.AuthService
	Signer       *session.Signer
	Cookies      session.Cookies
	LoginEnabled bool

	// LoginRate and LoginBurst throttle sign-in attempts per client IP.
	// Zero values fall back to 5 per second with a burst of 10.
	LoginRate  float64
	LoginBurst int
}

func NewRouter(d Deps) http.Handler {
	proposalHandler := handler.NewProposalHandler(d.Proposals)
	authHandler := handler.NewAuthHandler(d.Auth, d.Cookies, d.Signer)
	pageHandler := handler.NewPageHandler()

	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(web.Static())))

	r.Group(func(r chi.Router) {
		r.Use(middleware.Session(d.Cookies, d.Auth))

		r.Get("/", pageHandler.HandleHome)
		r.Get("/generator", pageHandler.HandleGenerator)

		r.Post("/api/v1/proposal/generate", proposalHandler.HandleGenerate)

		r.Get("/api/v1/auth/me", authHandler.HandleMe)
		r.Post("/api/v1/auth/logout", authHandler.HandleLogout)
		if d.LoginEnabled {
			r.Group(func(r chi.Router) {
				r.Use(middleware.RateLimit(loginLimit(d)))
				r.Post("/api/v1/auth/login", authHandler.HandleLogin)
			})
		}
	})

	return r
}

func loginLimit(d Deps) (float64, int) {
	rps, burst := d.LoginRate, d.LoginBurst
	if rps <= 0 {
		rps = 5
	}
	if burst <= 0 {
		burst = 10
	}
	return rps, burst
}
