// Package handler provides HTTP handlers for the DriveWise API.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/drivewise/drivewise/internal/api/middleware"
	"github.com/drivewise/drivewise/internal/api/models"
	"github.com/drivewise/drivewise/internal/api/response"
	"github.com/drivewise/drivewise/internal/drivewise"
)

// AnalyzeHandler handles the car-acquisition analysis endpoint.
type AnalyzeHandler struct {
	service *drivewise.Service

	// narratorConfigured is false when no narrative provider API key was
	// supplied at startup. The analysis endpoint refuses to run without one.
	narratorConfigured bool

	logger zerolog.Logger
}

// NewAnalyzeHandler creates a new AnalyzeHandler.
func NewAnalyzeHandler(service *drivewise.Service, narratorConfigured bool, logger zerolog.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{
		service:            service,
		narratorConfigured: narratorConfigured,
		logger:             logger,
	}
}

// Analyze handles POST /v1/tools/drivewise:analyze.
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	if !h.narratorConfigured {
		response.ConfigurationError(w, r, "OpenAI API key not configured")
		return
	}

	var input models.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	result, err := h.service.Analyze(r.Context(), &input)
	if err != nil {
		var valErr *drivewise.ValidationError
		if errors.As(err, &valErr) {
			response.BadRequest(w, r, "validation failed", valErr.Errors)
			return
		}

		h.logger.Error().
			Err(err).
			Str("request_id", middleware.GetRequestID(r.Context())).
			Msg("analysis failed")
		response.InternalError(w, r, "Failed to analyze car options")
		return
	}

	response.JSON(w, r, http.StatusOK, result)
}
