package handlers

import (
	"log/slog"
	"net/http"

	"github.com/vedakart/storefront-gateway/internal/api/middleware"
	appErrors "github.com/vedakart/storefront-gateway/internal/errors"
	"github.com/vedakart/storefront-gateway/internal/models"
	"github.com/vedakart/storefront-gateway/internal/store"
	"github.com/vedakart/storefront-gateway/internal/utils"
	"github.com/vedakart/storefront-gateway/internal/utils/response"
)

// CatalogHandler serves the public storefront: product listing and single
// product pages. No authentication; out-of-stock items are hidden unless the
// shopper asks for them.
type CatalogHandler struct {
	store *store.Store
}

func NewCatalogHandler(s *store.Store) *CatalogHandler {
	return &CatalogHandler{store: s}
}

func (h *CatalogHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		hideOutOfStock := r.URL.Query().Get("includeOutOfStock") != "true"

		products, err := h.store.Products(r.Context(), hideOutOfStock)
		if err != nil {
			logger.Error("Failed to list catalog products", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, products)
	}
}

func (h *CatalogHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.PathID(r)
		if err != nil {
			response.Error(w, err)

			return
		}

		productID := models.ProductID(id)

		product, err := h.store.ProductByID(r.Context(), &productID)
		if err != nil {
			logger.Error("Failed to fetch product", slog.Uint64("productId", id), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		if product == nil {
			response.Error(w, appErrors.NotFoundError("Product not found"))

			return
		}

		response.Success(w, http.StatusOK, product)
	}
}
