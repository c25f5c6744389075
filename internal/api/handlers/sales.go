package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/vedakart/storefront-gateway/internal/api/middleware"
	appErrors "github.com/vedakart/storefront-gateway/internal/errors"
	"github.com/vedakart/storefront-gateway/internal/models"
	"github.com/vedakart/storefront-gateway/internal/store"
	"github.com/vedakart/storefront-gateway/internal/utils"
	"github.com/vedakart/storefront-gateway/internal/utils/response"
)

type SalesHandler struct {
	store     *store.Store
	validator *validator.Validate
}

func NewSalesHandler(s *store.Store) *SalesHandler {
	return &SalesHandler{store: s, validator: validator.New()}
}

// RecordSale confirms a sale against live stock. An insufficient-stock
// rejection from the backend comes back as a 409 with the remote message.
func (h *SalesHandler) RecordSale() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.SaleInput
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		id, err := h.store.RecordSale(r.Context(), req)
		if err != nil {
			logger.Error("Sale recording failed",
				slog.Uint64("productId", uint64(req.ProductID)),
				slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Sale recorded",
			slog.Uint64("saleId", uint64(id)),
			slog.Uint64("productId", uint64(req.ProductID)),
			slog.Uint64("quantity", req.Quantity))
		response.Success(w, http.StatusCreated, map[string]models.SaleID{"id": id})
	}
}

// ListSales answers exactly one of three filters: ?date=<epoch day start>,
// ?year=&month=, or ?productId=.
func (h *SalesHandler) ListSales() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		date, err := utils.QueryUint(r, "date")
		if err != nil {
			response.Error(w, err)

			return
		}

		year, err := utils.QueryUint(r, "year")
		if err != nil {
			response.Error(w, err)

			return
		}

		month, err := utils.QueryUint(r, "month")
		if err != nil {
			response.Error(w, err)

			return
		}

		rawProductID, err := utils.QueryUint(r, "productId")
		if err != nil {
			response.Error(w, err)

			return
		}

		var sales []models.Sale

		switch {
		case date != nil:
			sales, err = h.store.SalesByDate(r.Context(), date)
		case year != nil || month != nil:
			sales, err = h.store.SalesByMonth(r.Context(), year, month)
		case rawProductID != nil:
			productID := models.ProductID(*rawProductID)
			sales, err = h.store.SalesByProduct(r.Context(), &productID)
		default:
			response.Error(w, appErrors.BadRequestError("One of 'date', 'year'+'month' or 'productId' is required"))

			return
		}

		if err != nil {
			logger.Error("Failed to list sales", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, sales)
	}
}

func (h *SalesHandler) GetIncomeStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		stats, err := h.store.IncomeStats(r.Context())
		if err != nil {
			logger.Error("Failed to fetch income stats", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, stats)
	}
}
