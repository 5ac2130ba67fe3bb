package handler

import (
	"net/http"

	"github.com/mossvale/farmstead/internal/logger"
	"github.com/mossvale/farmstead/internal/world"
)

// AdvanceClockRequest represents the request to advance the game clock
type AdvanceClockRequest struct {
	PlayerID string `json:"player_id" validate:"required,uuid"`
	Minutes  int    `json:"minutes" validate:"required,gte=1"`
}

// EndDayRequest represents the request to end the current day
type EndDayRequest struct {
	PlayerID string `json:"player_id" validate:"required,uuid"`
}

// WorldHandler handles game clock HTTP requests
type WorldHandler struct {
	worldSvc world.Service
}

// NewWorldHandler creates a new world handler
func NewWorldHandler(worldSvc world.Service) *WorldHandler {
	return &WorldHandler{
		worldSvc: worldSvc,
	}
}

// Advance handles the clock advance endpoint
// @Summary Advance the game clock
// @Description Add minutes to the game clock, rolling the day over when it fills
// @Tags world
// @Accept json
// @Produce json
// @Param request body AdvanceClockRequest true "Advance request"
// @Success 200 {object} world.ClockState "Clock state"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Router /world/advance [post]
func (h *WorldHandler) Advance(w http.ResponseWriter, r *http.Request) {
	var req AdvanceClockRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Advance"); err != nil {
		return
	}

	state, err := h.worldSvc.Advance(r.Context(), req.PlayerID, req.Minutes)
	if err != nil {
		respondServiceError(w, r, ErrMsgAdvanceFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, state)
}

// EndDay handles the end of day endpoint
// @Summary End the current day
// @Description Grow watered crops, progress fed animals, roll weather and restore energy
// @Tags world
// @Accept json
// @Produce json
// @Param request body EndDayRequest true "End day request"
// @Success 200 {object} world.DayResult "Day summary"
// @Failure 404 {object} ErrorResponse "Player not found"
// @Router /world/end-day [post]
func (h *WorldHandler) EndDay(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req EndDayRequest
	if err := DecodeAndValidateRequest(r, w, &req, "EndDay"); err != nil {
		return
	}

	result, err := h.worldSvc.EndDay(r.Context(), req.PlayerID)
	if err != nil {
		respondServiceError(w, r, ErrMsgEndDayFailed, err)
		return
	}

	log.Info("Day ended",
		"player_id", req.PlayerID,
		"day", result.Day,
		"weather", result.Weather,
		"crops_grown", result.CropsGrown,
		"animals_fed", result.AnimalsFed)
	respondJSON(w, http.StatusOK, result)
}
