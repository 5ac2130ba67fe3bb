package handler

import (
	"net/http"

	"github.com/mossvale/farmstead/internal/animal"
	"github.com/mossvale/farmstead/internal/logger"
)

// FeedAnimalRequest represents the request to feed an animal
type FeedAnimalRequest struct {
	PlayerID string `json:"player_id" validate:"required,uuid"`
	AnimalID int64  `json:"animal_id" validate:"required,gte=1"`
	Feed     string `json:"feed" validate:"required,max=100"`
}

// CollectProductRequest represents the request to collect an animal product
type CollectProductRequest struct {
	PlayerID string `json:"player_id" validate:"required,uuid"`
	AnimalID int64  `json:"animal_id" validate:"required,gte=1"`
}

// MoveAnimalRequest represents the request to move an animal
type MoveAnimalRequest struct {
	PlayerID string `json:"player_id" validate:"required,uuid"`
	AnimalID int64  `json:"animal_id" validate:"required,gte=1"`
	DX       int    `json:"dx" validate:"gte=-1,lte=1"`
	DY       int    `json:"dy" validate:"gte=-1,lte=1"`
}

// AnimalHandler handles livestock-related HTTP requests
type AnimalHandler struct {
	animalSvc animal.Service
}

// NewAnimalHandler creates a new animal handler
func NewAnimalHandler(animalSvc animal.Service) *AnimalHandler {
	return &AnimalHandler{
		animalSvc: animalSvc,
	}
}

// GetAnimals handles the animal listing endpoint
// @Summary List animals
// @Description List all animals in a player's breeding zone
// @Tags animals
// @Produce json
// @Param player_id query string true "Player ID"
// @Success 200 {object} DataResponse "Animals"
// @Failure 404 {object} ErrorResponse "Player not found"
// @Router /animals [get]
func (h *AnimalHandler) GetAnimals(w http.ResponseWriter, r *http.Request) {
	playerID, ok := GetQueryParam(r, w, "player_id")
	if !ok {
		return
	}

	animals, err := h.animalSvc.GetAnimals(r.Context(), playerID)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetAnimalsFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: animals})
}

// Feed handles the feeding endpoint
// @Summary Feed an animal
// @Description Feed an animal its matching feed from the inventory
// @Tags animals
// @Accept json
// @Produce json
// @Param request body FeedAnimalRequest true "Feed request"
// @Success 200 {object} animal.FeedResult "Animal fed"
// @Failure 400 {object} ErrorResponse "Wrong feed or not enough energy"
// @Failure 409 {object} ErrorResponse "Already fed today"
// @Router /animals/feed [post]
func (h *AnimalHandler) Feed(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req FeedAnimalRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Feed"); err != nil {
		return
	}

	result, err := h.animalSvc.Feed(r.Context(), req.PlayerID, req.AnimalID, req.Feed)
	if err != nil {
		respondServiceError(w, r, ErrMsgFeedFailed, err)
		return
	}

	log.Info("Animal fed", "player_id", req.PlayerID, "animal_id", req.AnimalID, "feed", req.Feed)
	respondJSON(w, http.StatusOK, result)
}

// Collect handles the product collection endpoint
// @Summary Collect an animal product
// @Description Collect a ready product such as milk, wool or eggs
// @Tags animals
// @Accept json
// @Produce json
// @Param request body CollectProductRequest true "Collect request"
// @Success 200 {object} animal.CollectResult "Product collected"
// @Failure 404 {object} ErrorResponse "Animal not found"
// @Failure 409 {object} ErrorResponse "Nothing to collect yet"
// @Router /animals/collect [post]
func (h *AnimalHandler) Collect(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req CollectProductRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Collect"); err != nil {
		return
	}

	result, err := h.animalSvc.Collect(r.Context(), req.PlayerID, req.AnimalID)
	if err != nil {
		respondServiceError(w, r, ErrMsgCollectFailed, err)
		return
	}

	log.Info("Product collected",
		"player_id", req.PlayerID,
		"animal_id", req.AnimalID,
		"product", result.Product,
		"exp", result.Exp)
	respondJSON(w, http.StatusOK, result)
}

// Move handles the animal movement endpoint
// @Summary Move an animal
// @Description Move an animal one tile within the breeding zone
// @Tags animals
// @Accept json
// @Produce json
// @Param request body MoveAnimalRequest true "Move request"
// @Success 200 {object} animal.MoveResult "Animal moved"
// @Failure 400 {object} ErrorResponse "Destination outside the breeding zone"
// @Failure 409 {object} ErrorResponse "Destination blocked"
// @Router /animals/move [post]
func (h *AnimalHandler) Move(w http.ResponseWriter, r *http.Request) {
	var req MoveAnimalRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Move"); err != nil {
		return
	}

	result, err := h.animalSvc.Move(r.Context(), req.PlayerID, req.AnimalID, req.DX, req.DY)
	if err != nil {
		respondServiceError(w, r, ErrMsgMoveFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
