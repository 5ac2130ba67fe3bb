package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mossvale/farmstead/internal/domain"
	"github.com/mossvale/farmstead/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Encode via a pooled buffer to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent, nothing to do but log
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped
// HTTP response.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())
	status, message := mapServiceErrorToUserMessage(err)
	if status >= http.StatusInternalServerError {
		log.Error(opName, "error", err)
	} else {
		log.Warn(opName, "error", err)
	}
	respondError(w, status, message)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidInputError   = "Invalid request. Please check your inputs."
	ErrMsgPlayerNotFoundError = "Player not found"
	ErrMsgUnknownKindError    = "Unknown crop, animal or tool"

	ErrMsgInvalidZoneError   = "That spot is outside the required zone"
	ErrMsgOutOfBoundsError   = "That spot is outside the farm"
	ErrMsgTileOccupiedError  = "That tile is occupied"
	ErrMsgTileNotTilledError = "That tile is not tilled"

	ErrMsgCropNotFoundError   = "No crop there"
	ErrMsgAlreadyWateredError = "Already watered"
	ErrMsgCropMatureError     = "That crop is fully grown"
	ErrMsgCropNotMatureError  = "That crop is not ready to harvest"

	ErrMsgAnimalNotFoundError = "Animal not found"
	ErrMsgAlreadyFedError     = "Already fed today"
	ErrMsgWrongFeedError      = "That animal won't eat that"
	ErrMsgNotProducibleError  = "Nothing to collect yet"
	ErrMsgBlockedError        = "That spot is blocked"

	ErrMsgToolNotFoundError = "Tool not found"
	ErrMsgToolDepletedError = "That tool is worn out"
	ErrMsgToolMaxLevelError = "That tool is already at max level"

	ErrMsgNotEnoughMoneyError  = "Not enough money"
	ErrMsgNotEnoughEnergyError = "Not enough energy"
	ErrMsgNotEnoughItemsError  = "Not enough items"
	ErrMsgNotSellableError     = "Item is not sellable"
	ErrMsgNotBuyableError      = "Item is not buyable"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// status codes and messages.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrUnknownKind):
		return http.StatusBadRequest, ErrMsgUnknownKindError
	case errors.Is(err, domain.ErrPlayerNotFound):
		return http.StatusNotFound, ErrMsgPlayerNotFoundError
	case errors.Is(err, domain.ErrInvalidZone):
		return http.StatusBadRequest, ErrMsgInvalidZoneError
	case errors.Is(err, domain.ErrOutOfBounds):
		return http.StatusBadRequest, ErrMsgOutOfBoundsError
	case errors.Is(err, domain.ErrTileOccupied):
		return http.StatusConflict, ErrMsgTileOccupiedError
	case errors.Is(err, domain.ErrTileNotTilled):
		return http.StatusBadRequest, ErrMsgTileNotTilledError
	case errors.Is(err, domain.ErrCropNotFound):
		return http.StatusNotFound, ErrMsgCropNotFoundError
	case errors.Is(err, domain.ErrAlreadyWatered):
		return http.StatusConflict, ErrMsgAlreadyWateredError
	case errors.Is(err, domain.ErrCropMature):
		return http.StatusConflict, ErrMsgCropMatureError
	case errors.Is(err, domain.ErrCropNotMature):
		return http.StatusConflict, ErrMsgCropNotMatureError
	case errors.Is(err, domain.ErrAnimalNotFound):
		return http.StatusNotFound, ErrMsgAnimalNotFoundError
	case errors.Is(err, domain.ErrAlreadyFed):
		return http.StatusConflict, ErrMsgAlreadyFedError
	case errors.Is(err, domain.ErrWrongFeed):
		return http.StatusBadRequest, ErrMsgWrongFeedError
	case errors.Is(err, domain.ErrNotProducible):
		return http.StatusConflict, ErrMsgNotProducibleError
	case errors.Is(err, domain.ErrBlocked):
		return http.StatusConflict, ErrMsgBlockedError
	case errors.Is(err, domain.ErrToolNotFound):
		return http.StatusNotFound, ErrMsgToolNotFoundError
	case errors.Is(err, domain.ErrToolDepleted):
		return http.StatusBadRequest, ErrMsgToolDepletedError
	case errors.Is(err, domain.ErrToolMaxLevel):
		return http.StatusBadRequest, ErrMsgToolMaxLevelError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughMoneyError
	case errors.Is(err, domain.ErrInsufficientEnergy):
		return http.StatusBadRequest, ErrMsgNotEnoughEnergyError
	case errors.Is(err, domain.ErrInsufficientQuantity):
		return http.StatusBadRequest, ErrMsgNotEnoughItemsError
	case errors.Is(err, domain.ErrNotSellable):
		return http.StatusBadRequest, ErrMsgNotSellableError
	case errors.Is(err, domain.ErrNotBuyable):
		return http.StatusBadRequest, ErrMsgNotBuyableError
	case errors.Is(err, domain.ErrPersistence):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
