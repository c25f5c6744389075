package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/vedakart/storefront-gateway/internal/api/middleware"
	"github.com/vedakart/storefront-gateway/internal/models"
	"github.com/vedakart/storefront-gateway/internal/store"
	"github.com/vedakart/storefront-gateway/internal/utils"
	"github.com/vedakart/storefront-gateway/internal/utils/response"
)

// ProductAdminHandler is the back-office product management surface. Every
// route sits behind the admin middleware.
type ProductAdminHandler struct {
	store     *store.Store
	validator *validator.Validate
}

func NewProductAdminHandler(s *store.Store) *ProductAdminHandler {
	return &ProductAdminHandler{store: s, validator: validator.New()}
}

// ListProducts returns the full catalog including out-of-stock and hidden
// items.
func (h *ProductAdminHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		products, err := h.store.Products(r.Context(), false)
		if err != nil {
			logger.Error("Failed to list products", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, products)
	}
}

func (h *ProductAdminHandler) CreateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.ProductInput
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		id, err := h.store.CreateProduct(r.Context(), req)
		if err != nil {
			logger.Error("Product creation failed", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Product created", slog.Uint64("productId", uint64(id)))
		response.Success(w, http.StatusCreated, map[string]models.ProductID{"id": id})
	}
}

func (h *ProductAdminHandler) UpdateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.PathID(r)
		if err != nil {
			response.Error(w, err)

			return
		}

		var req models.ProductInput
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		if err := h.store.UpdateProduct(r.Context(), models.ProductID(id), req); err != nil {
			logger.Error("Product update failed", slog.Uint64("productId", id), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Product updated", slog.Uint64("productId", id))
		response.Success(w, http.StatusOK, map[string]uint64{"id": id})
	}
}

func (h *ProductAdminHandler) DeleteProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.PathID(r)
		if err != nil {
			response.Error(w, err)

			return
		}

		if err := h.store.DeleteProduct(r.Context(), models.ProductID(id)); err != nil {
			logger.Error("Product deletion failed", slog.Uint64("productId", id), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Product deleted", slog.Uint64("productId", id))
		response.Success(w, http.StatusOK, map[string]uint64{"id": id})
	}
}

func (h *ProductAdminHandler) ListLowStockProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		products, err := h.store.LowStockProducts(r.Context())
		if err != nil {
			logger.Error("Failed to list low stock products", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, products)
	}
}

func (h *ProductAdminHandler) SetLowStockThreshold() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.LowStockThresholdRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		if err := h.store.SetLowStockThreshold(r.Context(), req.Threshold); err != nil {
			logger.Error("Failed to set low stock threshold", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Low stock threshold updated", slog.Uint64("threshold", req.Threshold))
		response.Success(w, http.StatusOK, req)
	}
}
