package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/vedakart/storefront-gateway/internal/api/handlers"
	"github.com/vedakart/storefront-gateway/internal/backend/mocks"
	"github.com/vedakart/storefront-gateway/internal/models"
	"github.com/vedakart/storefront-gateway/internal/testutils"
)

func TestSubmitInquiry(t *testing.T) {

	t.Run("Accepts a valid inquiry", func(t *testing.T) {
		// Arrange
		mockFacade := new(mocks.Facade)
		mockFacade.On("SubmitInquiry", mock.Anything, mock.MatchedBy(func(input models.InquiryInput) bool {
			return input.Name == "Asha" && input.Phone == "9876543210"
		})).Return(models.InquiryID(5), nil)

		handler := handlers.NewInquiryHandler(newTestStore(t, mockFacade), nil, "")

		body := strings.NewReader(`{"name": "Asha", "phone": "9876543210", "message": "Is this in stock?"}`)
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/inquiries", body, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.SubmitInquiry().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)
		mockFacade.AssertExpectations(t)
	})

	t.Run("Strips markup from free-text fields", func(t *testing.T) {
		mockFacade := new(mocks.Facade)
		mockFacade.On("SubmitInquiry", mock.Anything, mock.MatchedBy(func(input models.InquiryInput) bool {
			return !strings.Contains(input.Name, "<") && !strings.Contains(input.Message, "<")
		})).Return(models.InquiryID(6), nil)

		handler := handlers.NewInquiryHandler(newTestStore(t, mockFacade), nil, "")

		body := strings.NewReader(`{"name": "Asha <b>!</b>", "phone": "9876543210", "message": "hi <script>alert(1)</script>"}`)
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/inquiries", body, nil)
		rr := httptest.NewRecorder()

		handler.SubmitInquiry().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		mockFacade.AssertExpectations(t)
	})

	t.Run("Rejects a nameless inquiry locally", func(t *testing.T) {
		mockFacade := new(mocks.Facade)

		handler := handlers.NewInquiryHandler(newTestStore(t, mockFacade), nil, "")

		body := strings.NewReader(`{"phone": "9876543210", "message": "hello"}`)
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/inquiries", body, nil)
		rr := httptest.NewRecorder()

		handler.SubmitInquiry().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockFacade.AssertNotCalled(t, "SubmitInquiry", mock.Anything, mock.Anything)
	})
}

func TestInquiryInbox(t *testing.T) {

	t.Run("Lists the inbox", func(t *testing.T) {
		mockFacade := new(mocks.Facade)
		mockFacade.On("GetInquiries", mock.Anything).
			Return([]models.Inquiry{{ID: 1, Name: "Asha", IsRead: false}}, nil)

		handler := handlers.NewInquiryHandler(newTestStore(t, mockFacade), nil, "")

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/admin/inquiries", nil, nil)
		rr := httptest.NewRecorder()

		handler.ListInquiries().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockFacade.AssertExpectations(t)
	})

	t.Run("Marks an inquiry read", func(t *testing.T) {
		mockFacade := new(mocks.Facade)
		mockFacade.On("MarkInquiryRead", mock.Anything, models.InquiryID(3)).Return(nil)

		handler := handlers.NewInquiryHandler(newTestStore(t, mockFacade), nil, "")

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/admin/inquiries/3/read", nil, map[string]string{"id": "3"})
		rr := httptest.NewRecorder()

		handler.MarkInquiryRead().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockFacade.AssertExpectations(t)
	})
}
