package handler

import (
	"net/http"

	"github.com/mossvale/farmstead/internal/logger"
	"github.com/mossvale/farmstead/internal/player"
)

// CreatePlayerRequest represents the request to create a new player
type CreatePlayerRequest struct {
	Name string `json:"name" validate:"required,max=100,excludesall=<>"`
}

// EatFoodRequest represents the request to eat a food item
type EatFoodRequest struct {
	PlayerID string `json:"player_id" validate:"required,uuid"`
	Food     string `json:"food" validate:"required,max=100"`
}

// PlayerHandler handles player-related HTTP requests
type PlayerHandler struct {
	playerSvc player.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(playerSvc player.Service) *PlayerHandler {
	return &PlayerHandler{
		playerSvc: playerSvc,
	}
}

// CreatePlayer handles the player creation endpoint
// @Summary Create a new player
// @Description Create a player with starting money, seeds and tools
// @Tags player
// @Accept json
// @Produce json
// @Param request body CreatePlayerRequest true "Create player request"
// @Success 201 {object} domain.Player "Player created"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /player [post]
func (h *PlayerHandler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req CreatePlayerRequest
	if err := DecodeAndValidateRequest(r, w, &req, "CreatePlayer"); err != nil {
		return
	}

	log.Info("Create player request received", "name", req.Name)

	p, err := h.playerSvc.CreatePlayer(r.Context(), req.Name)
	if err != nil {
		respondServiceError(w, r, ErrMsgCreatePlayerFailed, err)
		return
	}

	log.Info("Player created", "player_id", p.ID, "name", p.Name)
	respondJSON(w, http.StatusCreated, p)
}

// GetPlayer handles the player lookup endpoint
// @Summary Get a player
// @Description Retrieve a player's current state by ID
// @Tags player
// @Produce json
// @Param player_id query string true "Player ID"
// @Success 200 {object} domain.Player "Player state"
// @Failure 404 {object} ErrorResponse "Player not found"
// @Router /player [get]
func (h *PlayerHandler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	playerID, ok := GetQueryParam(r, w, "player_id")
	if !ok {
		return
	}

	p, err := h.playerSvc.GetPlayer(r.Context(), playerID)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetPlayerFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, p)
}

// DeletePlayer handles the player deletion endpoint
// @Summary Delete a player
// @Description Remove a player and all associated farm state
// @Tags player
// @Produce json
// @Param player_id query string true "Player ID"
// @Success 200 {object} SuccessResponse "Player deleted"
// @Failure 404 {object} ErrorResponse "Player not found"
// @Router /player [delete]
func (h *PlayerHandler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	playerID, ok := GetQueryParam(r, w, "player_id")
	if !ok {
		return
	}

	if err := h.playerSvc.DeletePlayer(r.Context(), playerID); err != nil {
		respondServiceError(w, r, ErrMsgDeletePlayerFailed, err)
		return
	}

	log.Info("Player deleted", "player_id", playerID)
	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Player deleted"})
}

// GetInventory handles the inventory listing endpoint
// @Summary Get player inventory
// @Description List all inventory items held by a player
// @Tags player
// @Produce json
// @Param player_id query string true "Player ID"
// @Success 200 {object} DataResponse "Inventory items"
// @Failure 404 {object} ErrorResponse "Player not found"
// @Router /player/inventory [get]
func (h *PlayerHandler) GetInventory(w http.ResponseWriter, r *http.Request) {
	playerID, ok := GetQueryParam(r, w, "player_id")
	if !ok {
		return
	}

	items, err := h.playerSvc.GetInventory(r.Context(), playerID)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetInventoryFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: items})
}

// GetTools handles the tool listing endpoint
// @Summary Get player tools
// @Description List a player's tools with level and durability
// @Tags player
// @Produce json
// @Param player_id query string true "Player ID"
// @Success 200 {object} DataResponse "Tools"
// @Failure 404 {object} ErrorResponse "Player not found"
// @Router /player/tools [get]
func (h *PlayerHandler) GetTools(w http.ResponseWriter, r *http.Request) {
	playerID, ok := GetQueryParam(r, w, "player_id")
	if !ok {
		return
	}

	tools, err := h.playerSvc.GetTools(r.Context(), playerID)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetToolsFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: tools})
}

// EatFood handles the eat endpoint
// @Summary Eat a food item
// @Description Consume one unit of a food item to restore energy
// @Tags player
// @Accept json
// @Produce json
// @Param request body EatFoodRequest true "Eat food request"
// @Success 200 {object} player.EatResult "Energy restored"
// @Failure 400 {object} ErrorResponse "Invalid request or not a food item"
// @Failure 404 {object} ErrorResponse "Player not found"
// @Router /player/eat [post]
func (h *PlayerHandler) EatFood(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req EatFoodRequest
	if err := DecodeAndValidateRequest(r, w, &req, "EatFood"); err != nil {
		return
	}

	result, err := h.playerSvc.EatFood(r.Context(), req.PlayerID, req.Food)
	if err != nil {
		respondServiceError(w, r, ErrMsgEatFoodFailed, err)
		return
	}

	log.Info("Food eaten", "player_id", req.PlayerID, "food", req.Food, "energy", result.Energy)
	respondJSON(w, http.StatusOK, result)
}
