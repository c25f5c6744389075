package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vedakart/storefront-gateway/internal/api/handlers"
	"github.com/vedakart/storefront-gateway/internal/backend/mocks"
	appErrors "github.com/vedakart/storefront-gateway/internal/errors"
	"github.com/vedakart/storefront-gateway/internal/models"
	"github.com/vedakart/storefront-gateway/internal/testutils"
	"github.com/vedakart/storefront-gateway/internal/utils/response"
)

func TestRecordSale(t *testing.T) {

	t.Run("Confirmed sale", func(t *testing.T) {
		// Arrange
		mockFacade := new(mocks.Facade)
		mockFacade.On("RecordSale", mock.Anything, models.SaleInput{ProductID: 7, Quantity: 2}).
			Return(models.SaleID(31), nil)

		handler := handlers.NewSalesHandler(newTestStore(t, mockFacade))

		body := strings.NewReader(`{"product_id": 7, "quantity": 2}`)
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/admin/sales", body, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.RecordSale().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)

		var resp response.APIResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Success)

		mockFacade.AssertExpectations(t)
	})

	t.Run("Insufficient stock surfaces as 409 with the remote message", func(t *testing.T) {
		mockFacade := new(mocks.Facade)
		mockFacade.On("RecordSale", mock.Anything, mock.Anything).
			Return(models.SaleID(0), appErrors.InsufficientStockError("only 3 units in stock"))

		handler := handlers.NewSalesHandler(newTestStore(t, mockFacade))

		body := strings.NewReader(`{"product_id": 7, "quantity": 5}`)
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/admin/sales", body, nil)
		rr := httptest.NewRecorder()

		handler.RecordSale().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)

		var resp response.APIResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.NotNil(t, resp.Error)
		assert.Equal(t, "INSUFFICIENT_STOCK", resp.Error.Code)
		assert.Equal(t, "only 3 units in stock", resp.Error.Message)
	})

	t.Run("Zero quantity is rejected locally", func(t *testing.T) {
		mockFacade := new(mocks.Facade)

		handler := handlers.NewSalesHandler(newTestStore(t, mockFacade))

		body := strings.NewReader(`{"product_id": 7, "quantity": 0}`)
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/admin/sales", body, nil)
		rr := httptest.NewRecorder()

		handler.RecordSale().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockFacade.AssertNotCalled(t, "RecordSale", mock.Anything, mock.Anything)
	})
}

func TestListSales(t *testing.T) {

	t.Run("By date", func(t *testing.T) {
		mockFacade := new(mocks.Facade)
		mockFacade.On("GetSalesByDate", mock.Anything, uint64(1700000000)).
			Return([]models.Sale{{ID: 1, ProductID: 7}}, nil)

		handler := handlers.NewSalesHandler(newTestStore(t, mockFacade))

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/admin/sales?date=1700000000", nil, nil)
		rr := httptest.NewRecorder()

		handler.ListSales().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockFacade.AssertExpectations(t)
	})

	t.Run("By month", func(t *testing.T) {
		mockFacade := new(mocks.Facade)
		mockFacade.On("GetSalesByMonth", mock.Anything, uint64(2024), uint64(11)).
			Return([]models.Sale{}, nil)

		handler := handlers.NewSalesHandler(newTestStore(t, mockFacade))

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/admin/sales?year=2024&month=11", nil, nil)
		rr := httptest.NewRecorder()

		handler.ListSales().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockFacade.AssertExpectations(t)
	})

	t.Run("Missing filter yields 400", func(t *testing.T) {
		mockFacade := new(mocks.Facade)

		handler := handlers.NewSalesHandler(newTestStore(t, mockFacade))

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/admin/sales", nil, nil)
		rr := httptest.NewRecorder()

		handler.ListSales().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestGetIncomeStats(t *testing.T) {

	t.Run("Returns the backend snapshot", func(t *testing.T) {
		stats := models.IncomeStats{TodayIncome: 120.5, MonthlyIncome: 1500, TotalIncome: 98000}

		mockFacade := new(mocks.Facade)
		mockFacade.On("GetIncomeStats", mock.Anything).Return(stats, nil)

		handler := handlers.NewSalesHandler(newTestStore(t, mockFacade))

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/admin/income-stats", nil, nil)
		rr := httptest.NewRecorder()

		handler.GetIncomeStats().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			Success bool               `json:"success"`
			Data    models.IncomeStats `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, stats, resp.Data)
	})
}
