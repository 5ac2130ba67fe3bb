package handler

import (
	"net/http"

	"github.com/mossvale/farmstead/internal/crop"
	"github.com/mossvale/farmstead/internal/logger"
)

// PlantRequest represents the request to plant a seed
type PlantRequest struct {
	PlayerID string `json:"player_id" validate:"required,uuid"`
	Seed     string `json:"seed" validate:"required,max=100"`
	X        int    `json:"x" validate:"gte=0"`
	Y        int    `json:"y" validate:"gte=0"`
}

// TileRequest represents a request targeting a single tile
type TileRequest struct {
	PlayerID string `json:"player_id" validate:"required,uuid"`
	X        int    `json:"x" validate:"gte=0"`
	Y        int    `json:"y" validate:"gte=0"`
}

// CropHandler handles crop-related HTTP requests
type CropHandler struct {
	cropSvc crop.Service
}

// NewCropHandler creates a new crop handler
func NewCropHandler(cropSvc crop.Service) *CropHandler {
	return &CropHandler{
		cropSvc: cropSvc,
	}
}

// GetCrops handles the crop listing endpoint
// @Summary List crops
// @Description List all crops growing on a player's farm
// @Tags crops
// @Produce json
// @Param player_id query string true "Player ID"
// @Success 200 {object} DataResponse "Crops"
// @Failure 404 {object} ErrorResponse "Player not found"
// @Router /crops [get]
func (h *CropHandler) GetCrops(w http.ResponseWriter, r *http.Request) {
	playerID, ok := GetQueryParam(r, w, "player_id")
	if !ok {
		return
	}

	crops, err := h.cropSvc.GetCrops(r.Context(), playerID)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetCropsFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: crops})
}

// Plant handles the planting endpoint
// @Summary Plant a seed
// @Description Plant a seed from the inventory on a tilled tile
// @Tags crops
// @Accept json
// @Produce json
// @Param request body PlantRequest true "Plant request"
// @Success 200 {object} crop.PlantResult "Seed planted"
// @Failure 400 {object} ErrorResponse "Invalid request or tile not tilled"
// @Failure 409 {object} ErrorResponse "Tile occupied"
// @Router /crops/plant [post]
func (h *CropHandler) Plant(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req PlantRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Plant"); err != nil {
		return
	}

	log.Info("Plant request received", "player_id", req.PlayerID, "seed", req.Seed, "x", req.X, "y", req.Y)

	result, err := h.cropSvc.Plant(r.Context(), req.PlayerID, req.Seed, req.X, req.Y)
	if err != nil {
		respondServiceError(w, r, ErrMsgPlantFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Water handles the watering endpoint
// @Summary Water a tile
// @Description Water a crop or tilled tile using the watering can
// @Tags crops
// @Accept json
// @Produce json
// @Param request body TileRequest true "Water request"
// @Success 200 {object} crop.WaterResult "Tile watered"
// @Failure 400 {object} ErrorResponse "Invalid request or not enough energy"
// @Failure 409 {object} ErrorResponse "Already watered or crop mature"
// @Router /crops/water [post]
func (h *CropHandler) Water(w http.ResponseWriter, r *http.Request) {
	var req TileRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Water"); err != nil {
		return
	}

	result, err := h.cropSvc.Water(r.Context(), req.PlayerID, req.X, req.Y)
	if err != nil {
		respondServiceError(w, r, ErrMsgWaterFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Harvest handles the harvesting endpoint
// @Summary Harvest a mature crop
// @Description Cut a mature crop with the sickle and add it to the inventory
// @Tags crops
// @Accept json
// @Produce json
// @Param request body TileRequest true "Harvest request"
// @Success 200 {object} crop.HarvestResult "Crop harvested"
// @Failure 400 {object} ErrorResponse "Invalid request or not enough energy"
// @Failure 409 {object} ErrorResponse "Crop not mature"
// @Router /crops/harvest [post]
func (h *CropHandler) Harvest(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req TileRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Harvest"); err != nil {
		return
	}

	result, err := h.cropSvc.Harvest(r.Context(), req.PlayerID, req.X, req.Y)
	if err != nil {
		respondServiceError(w, r, ErrMsgHarvestFailed, err)
		return
	}

	log.Info("Crop harvested", "player_id", req.PlayerID, "kind", result.Kind, "exp", result.Exp)
	respondJSON(w, http.StatusOK, result)
}
