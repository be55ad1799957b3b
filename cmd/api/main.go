package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/proposalcraft/proposalcraft-go/internal/config"
	"github.com/proposalcraft/proposalcraft-go/internal/crypto"
	"github.com/proposalcraft/proposalcraft-go/internal/llm"
	"github.com/proposalcraft/proposalcraft-go/internal/model"
	"github.com/proposalcraft/proposalcraft-go/internal/server"
	"github.com/proposalcraft/proposalcraft-go/internal/service"
	"github.com/proposalcraft/proposalcraft-go/internal/session"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()
	setupLogger(cfg)

	client, err := llm.New(context.Background(), cfg.LLM)
	if err != nil {
		slog.Error("llm client setup failed", "provider", cfg.LLM.Provider, "error", err)
		os.Exit(1)
	}
	proposals := service.NewProposalService(client)

	signer := session.NewSigner(cfg.SessionSecret, cfg.SessionTTL)
	owner := model.Identity{ID: "owner", Name: cfg.OwnerName, Email: cfg.OwnerEmail}
	auth := service.NewAuthService(owner, cfg.OwnerPasswordHash, signer)

	loginEnabled := cfg.LoginEnabled()
	if loginEnabled && cfg.OwnerEmail == "" {
		slog.Warn("OWNER_PASSWORD_HASH set without OWNER_EMAIL, login route disabled")
		loginEnabled = false
	}
	if loginEnabled {
		if err := crypto.CheckHash(cfg.OwnerPasswordHash); err != nil {
			slog.Error("invalid OWNER_PASSWORD_HASH", "error", err)
			os.Exit(1)
		}
	}

	router := server.NewRouter(server.Deps{
		Proposals:    proposals,
		Auth:         auth,
		Signer:       signer,
		Cookies:      session.Cookies{Name: cfg.SessionCookie, ForceSecure: cfg.IsProduction()},
		LoginEnabled: loginEnabled,
		LoginRate:    cfg.LoginRate,
		LoginBurst:   cfg.LoginBurst,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server starting",
			"port", cfg.Port,
			"env", cfg.Env,
			"llm_provider", cfg.LLM.Provider,
			"llm_model", cfg.LLM.Model,
			"login_enabled", loginEnabled,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

func setupLogger(cfg config.Config) {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	var h slog.Handler = slog.NewTextHandler(os.Stdout, opts)
	if cfg.IsProduction() {
		h = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(h))
}
