package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/proposalcraft/proposalcraft-go/internal/middleware"
	"github.com/proposalcraft/proposalcraft-go/internal/model"
	"github.com/proposalcraft/proposalcraft-go/internal/service"
)

// ProposalHandler handles HTTP requests for proposal generation.
type ProposalHandler struct {
	service *service.ProposalService
}

// NewProposalHandler creates a new ProposalHandler.
func NewProposalHandler(svc *service.ProposalService) *ProposalHandler {
	return &ProposalHandler{service: svc}
}

// HandleGenerate handles POST /api/v1/proposal/generate requests.
func (h *ProposalHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	resp, err := h.service.Generate(r.Context(), req)
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			writeJSON(w, http.StatusBadRequest, errorResponse(verr.Message))
		case errors.Is(err, service.ErrGenerationFailed), errors.Is(err, service.ErrUpstream):
			slog.Warn("proposal generation failed",
				"request_id", middleware.RequestID(r.Context()),
				"error", err,
			)
			writeJSON(w, http.StatusBadGateway, errorResponse(service.ErrGenerationFailed.Error()))
		default:
			slog.Error("proposal generation error", "request_id", middleware.RequestID(r.Context()), "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
