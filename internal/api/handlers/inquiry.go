package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"

	"github.com/vedakart/storefront-gateway/internal/api/middleware"
	"github.com/vedakart/storefront-gateway/internal/models"
	"github.com/vedakart/storefront-gateway/internal/store"
	"github.com/vedakart/storefront-gateway/internal/utils"
	"github.com/vedakart/storefront-gateway/internal/utils/response"
	"github.com/vedakart/storefront-gateway/pkg/sendgrid"
)

// InquiryHandler covers both sides of the contact form: the public submit
// endpoint and the back-office inbox.
type InquiryHandler struct {
	store      *store.Store
	validator  *validator.Validate
	sanitizer  *bluemonday.Policy
	emails     sendgrid.EmailService
	ownerEmail string
}

func NewInquiryHandler(s *store.Store, emails sendgrid.EmailService, ownerEmail string) *InquiryHandler {
	return &InquiryHandler{
		store:      s,
		validator:  validator.New(),
		sanitizer:  bluemonday.StrictPolicy(),
		emails:     emails,
		ownerEmail: ownerEmail,
	}
}

// SubmitInquiry accepts a customer message. Free-text fields are stripped of
// markup before they leave this service. The shop owner is notified by email
// best effort; a notification failure never fails the submission.
func (h *InquiryHandler) SubmitInquiry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.InquiryInput
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		req.Name = h.sanitizer.Sanitize(req.Name)
		req.Message = h.sanitizer.Sanitize(req.Message)

		id, err := h.store.SubmitInquiry(r.Context(), req)
		if err != nil {
			logger.Error("Inquiry submission failed", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Inquiry submitted", slog.Uint64("inquiryId", uint64(id)))

		h.notifyOwner(logger, req)

		response.Success(w, http.StatusCreated, map[string]models.InquiryID{"id": id})
	}
}

func (h *InquiryHandler) notifyOwner(logger *slog.Logger, req models.InquiryInput) {

	if h.emails == nil || h.ownerEmail == "" {
		return
	}

	go func() {
		ctx, cancel := utils.WithNotifyTimeout(context.Background())
		defer cancel()

		notification := &models.EmailNotificationRequest{
			To:      h.ownerEmail,
			Subject: "New customer inquiry from " + req.Name,
			Content: fmt.Sprintf("From: %s (%s)\n\n%s", req.Name, req.Phone, req.Message),
		}

		if err := h.emails.Send(ctx, notification); err != nil {
			logger.Warn("Owner notification failed", slog.String("error", err.Error()))
		}
	}()
}

func (h *InquiryHandler) ListInquiries() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		inquiries, err := h.store.Inquiries(r.Context())
		if err != nil {
			logger.Error("Failed to list inquiries", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, inquiries)
	}
}

func (h *InquiryHandler) MarkInquiryRead() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.PathID(r)
		if err != nil {
			response.Error(w, err)

			return
		}

		if err := h.store.MarkInquiryRead(r.Context(), models.InquiryID(id)); err != nil {
			logger.Error("Failed to mark inquiry read", slog.Uint64("inquiryId", id), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, map[string]uint64{"id": id})
	}
}

func (h *InquiryHandler) DeleteInquiry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.PathID(r)
		if err != nil {
			response.Error(w, err)

			return
		}

		if err := h.store.DeleteInquiry(r.Context(), models.InquiryID(id)); err != nil {
			logger.Error("Failed to delete inquiry", slog.Uint64("inquiryId", id), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Inquiry deleted", slog.Uint64("inquiryId", id))
		response.Success(w, http.StatusOK, map[string]uint64{"id": id})
	}
}
