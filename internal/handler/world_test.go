package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mossvale/farmstead/internal/domain"
	"github.com/mossvale/farmstead/internal/handler"
	"github.com/mossvale/farmstead/internal/world"
)

func TestWorldHandler_Advance(t *testing.T) {
	handler.InitValidator()

	t.Run("Success", func(t *testing.T) {
		mockSvc := new(MockWorldService)
		mockSvc.On("Advance", mock.Anything, testPlayerID, 90).
			Return(&world.ClockState{Day: 3, Minutes: 90}, nil)

		h := handler.NewWorldHandler(mockSvc)
		body, _ := json.Marshal(handler.AdvanceClockRequest{PlayerID: testPlayerID, Minutes: 90})
		req := httptest.NewRequest(http.MethodPost, "/world/advance", bytes.NewReader(body))
		w := httptest.NewRecorder()

		h.Advance(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var state world.ClockState
		err := json.Unmarshal(w.Body.Bytes(), &state)
		assert.NoError(t, err)
		assert.Equal(t, 90, state.Minutes)
		assert.False(t, state.DayOver)
	})

	t.Run("Day Rollover", func(t *testing.T) {
		mockSvc := new(MockWorldService)
		mockSvc.On("Advance", mock.Anything, testPlayerID, domain.DayLength).
			Return(&world.ClockState{Day: 4, Minutes: 0, DayOver: true}, nil)

		h := handler.NewWorldHandler(mockSvc)
		body, _ := json.Marshal(handler.AdvanceClockRequest{PlayerID: testPlayerID, Minutes: domain.DayLength})
		req := httptest.NewRequest(http.MethodPost, "/world/advance", bytes.NewReader(body))
		w := httptest.NewRecorder()

		h.Advance(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var state world.ClockState
		err := json.Unmarshal(w.Body.Bytes(), &state)
		assert.NoError(t, err)
		assert.True(t, state.DayOver)
		assert.Equal(t, 4, state.Day)
	})

	t.Run("Missing Minutes", func(t *testing.T) {
		mockSvc := new(MockWorldService)
		h := handler.NewWorldHandler(mockSvc)
		body, _ := json.Marshal(handler.AdvanceClockRequest{PlayerID: testPlayerID})
		req := httptest.NewRequest(http.MethodPost, "/world/advance", bytes.NewReader(body))
		w := httptest.NewRecorder()

		h.Advance(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockSvc.AssertNotCalled(t, "Advance")
	})
}

func TestWorldHandler_EndDay(t *testing.T) {
	handler.InitValidator()

	t.Run("Success", func(t *testing.T) {
		mockSvc := new(MockWorldService)
		mockSvc.On("EndDay", mock.Anything, testPlayerID).
			Return(&world.DayResult{
				Day:        4,
				Weather:    domain.WeatherRainy,
				Energy:     100,
				CropsGrown: 2,
				AnimalsFed: 1,
			}, nil)

		h := handler.NewWorldHandler(mockSvc)
		body, _ := json.Marshal(handler.EndDayRequest{PlayerID: testPlayerID})
		req := httptest.NewRequest(http.MethodPost, "/world/end-day", bytes.NewReader(body))
		w := httptest.NewRecorder()

		h.EndDay(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var result world.DayResult
		err := json.Unmarshal(w.Body.Bytes(), &result)
		assert.NoError(t, err)
		assert.Equal(t, 4, result.Day)
		assert.Equal(t, domain.WeatherRainy, result.Weather)
		assert.Equal(t, 2, result.CropsGrown)
	})

	t.Run("Player Not Found", func(t *testing.T) {
		mockSvc := new(MockWorldService)
		mockSvc.On("EndDay", mock.Anything, testPlayerID).
			Return(nil, domain.ErrPlayerNotFound)

		h := handler.NewWorldHandler(mockSvc)
		body, _ := json.Marshal(handler.EndDayRequest{PlayerID: testPlayerID})
		req := httptest.NewRequest(http.MethodPost, "/world/end-day", bytes.NewReader(body))
		w := httptest.NewRecorder()

		h.EndDay(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
