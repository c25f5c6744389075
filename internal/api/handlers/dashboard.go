package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vedakart/storefront-gateway/internal/api/middleware"
	"github.com/vedakart/storefront-gateway/internal/models"
	"github.com/vedakart/storefront-gateway/internal/store"
	"github.com/vedakart/storefront-gateway/internal/utils/response"
)

type DashboardHandler struct {
	store *store.Store
	now   func() time.Time
}

func NewDashboardHandler(s *store.Store) *DashboardHandler {
	return &DashboardHandler{store: s, now: time.Now}
}

// DashboardSummary is the back-office landing payload, assembled from four
// independent queries.
type DashboardSummary struct {
	IncomeStats     models.IncomeStats `json:"income_stats"`
	LowStock        []models.Product   `json:"low_stock"`
	TodaySales      []models.Sale      `json:"today_sales"`
	UnreadInquiries int                `json:"unread_inquiries"`
}

// GetSummary fans the four queries out concurrently; the first failure
// cancels the rest.
func (h *DashboardHandler) GetSummary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var summary DashboardSummary

		g, ctx := errgroup.WithContext(r.Context())

		g.Go(func() error {
			stats, err := h.store.IncomeStats(ctx)
			if err != nil {
				return err
			}

			summary.IncomeStats = stats

			return nil
		})

		g.Go(func() error {
			products, err := h.store.LowStockProducts(ctx)
			if err != nil {
				return err
			}

			summary.LowStock = products

			return nil
		})

		g.Go(func() error {
			dayStart := uint64(startOfDay(h.now().UTC()).Unix())

			sales, err := h.store.SalesByDate(ctx, &dayStart)
			if err != nil {
				return err
			}

			summary.TodaySales = sales

			return nil
		})

		g.Go(func() error {
			inquiries, err := h.store.Inquiries(ctx)
			if err != nil {
				return err
			}

			for _, inquiry := range inquiries {
				if !inquiry.IsRead {
					summary.UnreadInquiries++
				}
			}

			return nil
		})

		if err := g.Wait(); err != nil {
			logger.Error("Failed to assemble dashboard summary", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, summary)
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
