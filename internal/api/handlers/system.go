package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/api/request"
	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/api/response"
	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/apperrors"
	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/service"
)

// SystemHandler handles system-related HTTP requests
type SystemHandler struct {
	systemService *service.SystemService
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(systemService *service.SystemService) *SystemHandler {
	return &SystemHandler{
		systemService: systemService,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Error    string `json:"error,omitempty"`
}

// Health checks the health of the system and database connectivity
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.systemService.CheckHealth(); err != nil {
		body := HealthResponse{
			Status:   "unhealthy",
			Database: "disconnected",
			Error:    err.Error(),
		}
		response.RespondJSON(w, http.StatusServiceUnavailable, body)
		return
	}

	body := HealthResponse{
		Status:   "healthy",
		Database: "connected",
	}
	response.RespondJSON(w, http.StatusOK, body)
}

// MarketDataStatus reports upstream credential presence (never the value),
// the remaining rate budget, and cache sizes.
//
// Endpoint: GET /api/system/market-data-status
func (h *SystemHandler) MarketDataStatus(w http.ResponseWriter, r *http.Request) {
	response.RespondData(w, h.systemService.MarketDataStatus())
}

// UpdateMarketDataKey stores a new upstream API credential and installs it on
// the live client.
//
// Endpoint: PUT /api/system/market-data-key
// Error: 400 Bad Request for an unreadable body or empty key
func (h *SystemHandler) UpdateMarketDataKey(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateMarketDataKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.systemService.UpdateAPIKey(req.APIKey); err != nil {
		if errors.Is(err, apperrors.ErrEmptyCredential) {
			response.RespondError(w, http.StatusBadRequest, "apiKey is required")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to store API key")
		return
	}
	response.RespondMessage(w, http.StatusOK, "market data key updated")
}
