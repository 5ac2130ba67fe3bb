package handler

import (
	"net/http"

	"github.com/mossvale/farmstead/internal/farm"
	"github.com/mossvale/farmstead/internal/logger"
)

// TillRequest represents the request to till a field tile
type TillRequest struct {
	PlayerID string `json:"player_id" validate:"required,uuid"`
	X        int    `json:"x" validate:"gte=0"`
	Y        int    `json:"y" validate:"gte=0"`
}

// FarmHandler handles field-related HTTP requests
type FarmHandler struct {
	farmSvc farm.Service
}

// NewFarmHandler creates a new farm handler
func NewFarmHandler(farmSvc farm.Service) *FarmHandler {
	return &FarmHandler{
		farmSvc: farmSvc,
	}
}

// GetFarm handles the farm view endpoint
// @Summary Get the farm view
// @Description Retrieve the tile grid, zone layout and crops for a player
// @Tags farm
// @Produce json
// @Param player_id query string true "Player ID"
// @Success 200 {object} farm.View "Farm state"
// @Failure 404 {object} ErrorResponse "Player not found"
// @Router /farm [get]
func (h *FarmHandler) GetFarm(w http.ResponseWriter, r *http.Request) {
	playerID, ok := GetQueryParam(r, w, "player_id")
	if !ok {
		return
	}

	view, err := h.farmSvc.GetFarm(r.Context(), playerID)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetFarmFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, view)
}

// Till handles the tilling endpoint
// @Summary Till a tile
// @Description Turn an empty planting zone tile into tilled soil
// @Tags farm
// @Accept json
// @Produce json
// @Param request body TillRequest true "Till request"
// @Success 200 {object} farm.TillResult "Tile tilled"
// @Failure 400 {object} ErrorResponse "Invalid request or tile not tillable"
// @Failure 409 {object} ErrorResponse "Tile occupied"
// @Router /farm/till [post]
func (h *FarmHandler) Till(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req TillRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Till"); err != nil {
		return
	}

	result, err := h.farmSvc.Till(r.Context(), req.PlayerID, req.X, req.Y)
	if err != nil {
		respondServiceError(w, r, ErrMsgTillFailed, err)
		return
	}

	log.Info("Tile tilled", "player_id", req.PlayerID, "x", req.X, "y", req.Y)
	respondJSON(w, http.StatusOK, result)
}
