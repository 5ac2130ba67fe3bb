package handler

import (
	"net/http"

	"github.com/mossvale/farmstead/internal/economy"
	"github.com/mossvale/farmstead/internal/logger"
)

// TradeRequest represents a buy or sell request
type TradeRequest struct {
	PlayerID string `json:"player_id" validate:"required,uuid"`
	ItemName string `json:"item_name" validate:"required,max=100"`
	Quantity int    `json:"quantity" validate:"required,gte=1,lte=99"`
}

// UpgradeToolRequest represents the request to upgrade a tool
type UpgradeToolRequest struct {
	PlayerID string `json:"player_id" validate:"required,uuid"`
	Kind     string `json:"kind" validate:"required,max=100"`
}

// MarketHandler handles market HTTP requests
type MarketHandler struct {
	economySvc economy.Service
}

// NewMarketHandler creates a new market handler
func NewMarketHandler(economySvc economy.Service) *MarketHandler {
	return &MarketHandler{
		economySvc: economySvc,
	}
}

// Prices handles the price listing endpoint
// @Summary List market prices
// @Description List buy and sell prices for everything the market trades. With a player_id the tool rows only cover kinds the player lost.
// @Tags market
// @Produce json
// @Param player_id query string false "Player UUID"
// @Success 200 {object} DataResponse "Price list"
// @Router /market/prices [get]
func (h *MarketHandler) Prices(w http.ResponseWriter, r *http.Request) {
	playerID := GetOptionalQueryParam(r, "player_id", "")
	entries, err := h.economySvc.Prices(r.Context(), playerID)
	if err != nil {
		respondServiceError(w, r, "list prices", err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: entries})
}

// Buy handles the purchase endpoint
// @Summary Buy items
// @Description Buy seeds, feed, animals or tools from the market
// @Tags market
// @Accept json
// @Produce json
// @Param request body TradeRequest true "Buy request"
// @Success 200 {object} economy.BuyResult "Purchase complete"
// @Failure 400 {object} ErrorResponse "Unknown item or insufficient funds"
// @Failure 409 {object} ErrorResponse "No free space in the breeding zone"
// @Router /market/buy [post]
func (h *MarketHandler) Buy(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req TradeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Buy"); err != nil {
		return
	}

	log.Info("Buy request received", "player_id", req.PlayerID, "item", req.ItemName, "quantity", req.Quantity)

	result, err := h.economySvc.Buy(r.Context(), req.PlayerID, req.ItemName, req.Quantity)
	if err != nil {
		respondServiceError(w, r, ErrMsgBuyItemFailed, err)
		return
	}

	log.Info("Purchase complete", "player_id", req.PlayerID, "item", result.ItemName, "total", result.Total)
	respondJSON(w, http.StatusOK, result)
}

// Sell handles the sale endpoint
// @Summary Sell items
// @Description Sell crops or animal products at level-adjusted prices
// @Tags market
// @Accept json
// @Produce json
// @Param request body TradeRequest true "Sell request"
// @Success 200 {object} economy.SellResult "Sale complete"
// @Failure 400 {object} ErrorResponse "Item not sellable or insufficient quantity"
// @Router /market/sell [post]
func (h *MarketHandler) Sell(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req TradeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Sell"); err != nil {
		return
	}

	result, err := h.economySvc.Sell(r.Context(), req.PlayerID, req.ItemName, req.Quantity)
	if err != nil {
		respondServiceError(w, r, ErrMsgSellItemFailed, err)
		return
	}

	log.Info("Sale complete", "player_id", req.PlayerID, "item", result.ItemName, "total", result.Total)
	respondJSON(w, http.StatusOK, result)
}

// UpgradeTool handles the tool upgrade endpoint
// @Summary Upgrade a tool
// @Description Pay to raise a tool's level and restore its durability
// @Tags market
// @Accept json
// @Produce json
// @Param request body UpgradeToolRequest true "Upgrade request"
// @Success 200 {object} economy.UpgradeResult "Upgrade complete"
// @Failure 400 {object} ErrorResponse "Tool at max level or insufficient funds"
// @Failure 404 {object} ErrorResponse "Tool not found"
// @Router /market/upgrade-tool [post]
func (h *MarketHandler) UpgradeTool(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req UpgradeToolRequest
	if err := DecodeAndValidateRequest(r, w, &req, "UpgradeTool"); err != nil {
		return
	}

	result, err := h.economySvc.UpgradeTool(r.Context(), req.PlayerID, req.Kind)
	if err != nil {
		respondServiceError(w, r, ErrMsgUpgradeToolFailed, err)
		return
	}

	log.Info("Tool upgraded", "player_id", req.PlayerID, "kind", result.Kind, "level", result.Level)
	respondJSON(w, http.StatusOK, result)
}

// SalesHistory handles the sales history endpoint
// @Summary Get sales history
// @Description List a player's most recent sales, newest first
// @Tags market
// @Produce json
// @Param player_id query string true "Player ID"
// @Param limit query int false "Maximum records to return"
// @Success 200 {object} DataResponse "Sales records"
// @Failure 404 {object} ErrorResponse "Player not found"
// @Router /market/sales [get]
func (h *MarketHandler) SalesHistory(w http.ResponseWriter, r *http.Request) {
	playerID, ok := GetQueryParam(r, w, "player_id")
	if !ok {
		return
	}
	limit := GetOptionalIntParam(r, "limit", 20)

	records, err := h.economySvc.SalesHistory(r.Context(), playerID, limit)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetSalesFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: records})
}
