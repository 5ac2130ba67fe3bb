package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mossvale/farmstead/internal/domain"
	"github.com/mossvale/farmstead/internal/economy"
	"github.com/mossvale/farmstead/internal/handler"
)

func TestMarketHandler_Buy(t *testing.T) {
	handler.InitValidator()

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockEconomyService)
		expectedStatus int
		expectedError  string
	}{
		{
			name:        "Success",
			requestBody: handler.TradeRequest{PlayerID: testPlayerID, ItemName: "番茄种子", Quantity: 5},
			setupMock: func(m *MockEconomyService) {
				m.On("Buy", mock.Anything, testPlayerID, "番茄种子", 5).
					Return(&economy.BuyResult{ItemName: "番茄种子", Quantity: 5, Total: 100, Money: 900}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "Insufficient Funds",
			requestBody: handler.TradeRequest{PlayerID: testPlayerID, ItemName: "牛", Quantity: 1},
			setupMock: func(m *MockEconomyService) {
				m.On("Buy", mock.Anything, testPlayerID, "牛", 1).
					Return(nil, domain.ErrInsufficientFunds)
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "not enough money",
		},
		{
			name:        "Unknown Item",
			requestBody: handler.TradeRequest{PlayerID: testPlayerID, ItemName: "龙", Quantity: 1},
			setupMock: func(m *MockEconomyService) {
				m.On("Buy", mock.Anything, testPlayerID, "龙", 1).
					Return(nil, domain.ErrNotBuyable)
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "not buyable",
		},
		{
			name:           "Quantity Over Limit",
			requestBody:    handler.TradeRequest{PlayerID: testPlayerID, ItemName: "小麦种子", Quantity: 100},
			setupMock:      func(m *MockEconomyService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid request",
		},
		{
			name:           "Zero Quantity",
			requestBody:    handler.TradeRequest{PlayerID: testPlayerID, ItemName: "小麦种子"},
			setupMock:      func(m *MockEconomyService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid request",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockEconomyService)
			tt.setupMock(mockSvc)

			h := handler.NewMarketHandler(mockSvc)
			body, err := json.Marshal(tt.requestBody)
			if err != nil {
				t.Fatalf("Failed to marshal request body: %v", err)
			}

			req := httptest.NewRequest(http.MethodPost, "/market/buy", bytes.NewReader(body))
			w := httptest.NewRecorder()

			h.Buy(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, strings.ToLower(w.Body.String()), strings.ToLower(tt.expectedError))
			}
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestMarketHandler_Sell(t *testing.T) {
	handler.InitValidator()

	t.Run("Success", func(t *testing.T) {
		mockSvc := new(MockEconomyService)
		mockSvc.On("Sell", mock.Anything, testPlayerID, "番茄", 4).
			Return(&economy.SellResult{ItemName: "番茄", Quantity: 4, UnitPrice: 44, Total: 176, Money: 1176}, nil)

		h := handler.NewMarketHandler(mockSvc)
		body, _ := json.Marshal(handler.TradeRequest{PlayerID: testPlayerID, ItemName: "番茄", Quantity: 4})
		req := httptest.NewRequest(http.MethodPost, "/market/sell", bytes.NewReader(body))
		w := httptest.NewRecorder()

		h.Sell(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var result economy.SellResult
		err := json.Unmarshal(w.Body.Bytes(), &result)
		assert.NoError(t, err)
		assert.Equal(t, 176, result.Total)
	})

	t.Run("Not Sellable", func(t *testing.T) {
		mockSvc := new(MockEconomyService)
		mockSvc.On("Sell", mock.Anything, testPlayerID, "小麦种子", 1).
			Return(nil, domain.ErrNotSellable)

		h := handler.NewMarketHandler(mockSvc)
		body, _ := json.Marshal(handler.TradeRequest{PlayerID: testPlayerID, ItemName: "小麦种子", Quantity: 1})
		req := httptest.NewRequest(http.MethodPost, "/market/sell", bytes.NewReader(body))
		w := httptest.NewRecorder()

		h.Sell(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "not sellable")
	})
}

func TestMarketHandler_UpgradeTool(t *testing.T) {
	handler.InitValidator()

	t.Run("Success", func(t *testing.T) {
		mockSvc := new(MockEconomyService)
		mockSvc.On("UpgradeTool", mock.Anything, testPlayerID, "锄头").
			Return(&economy.UpgradeResult{Kind: "锄头", Level: 2, Durability: 100, Cost: 500, Money: 500}, nil)

		h := handler.NewMarketHandler(mockSvc)
		body, _ := json.Marshal(handler.UpgradeToolRequest{PlayerID: testPlayerID, Kind: "锄头"})
		req := httptest.NewRequest(http.MethodPost, "/market/upgrade-tool", bytes.NewReader(body))
		w := httptest.NewRecorder()

		h.UpgradeTool(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var result economy.UpgradeResult
		err := json.Unmarshal(w.Body.Bytes(), &result)
		assert.NoError(t, err)
		assert.Equal(t, 2, result.Level)
	})

	t.Run("Max Level", func(t *testing.T) {
		mockSvc := new(MockEconomyService)
		mockSvc.On("UpgradeTool", mock.Anything, testPlayerID, "锄头").
			Return(nil, domain.ErrToolMaxLevel)

		h := handler.NewMarketHandler(mockSvc)
		body, _ := json.Marshal(handler.UpgradeToolRequest{PlayerID: testPlayerID, Kind: "锄头"})
		req := httptest.NewRequest(http.MethodPost, "/market/upgrade-tool", bytes.NewReader(body))
		w := httptest.NewRecorder()

		h.UpgradeTool(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "max level")
	})
}

func TestMarketHandler_Prices(t *testing.T) {
	mockSvc := new(MockEconomyService)
	mockSvc.On("Prices", mock.Anything, "").
		Return([]economy.PriceEntry{
			{Name: "小麦种子", Category: "种子", Buy: 10},
			{Name: "小麦", Category: "作物", Sell: 25},
		}, nil)

	h := handler.NewMarketHandler(mockSvc)
	req := httptest.NewRequest(http.MethodGet, "/market/prices", nil)
	w := httptest.NewRecorder()

	h.Prices(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "小麦种子")
}

func TestMarketHandler_SalesHistory(t *testing.T) {
	mockSvc := new(MockEconomyService)
	mockSvc.On("SalesHistory", mock.Anything, testPlayerID, 20).
		Return([]domain.SalesRecord{
			{ItemName: "番茄", Quantity: 2, PriceTotal: 80},
		}, nil)

	h := handler.NewMarketHandler(mockSvc)
	req := httptest.NewRequest(http.MethodGet, "/market/sales?player_id="+testPlayerID, nil)
	w := httptest.NewRecorder()

	h.SalesHistory(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "番茄")
}
