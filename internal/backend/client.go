package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	appErrors "github.com/vedakart/storefront-gateway/internal/errors"
	"github.com/vedakart/storefront-gateway/internal/models"
)

// Client talks JSON over HTTP to the remote shop backend. The identity is
// carried as a bearer token; authorization itself is enforced remotely.
type Client struct {
	baseURL    string
	identity   string
	httpClient *http.Client
}

var _ Facade = (*Client)(nil)

func NewClient(baseURL, identity string, timeout time.Duration) *Client {
	return &Client{
		baseURL:  baseURL,
		identity: identity,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (c *Client) Identity() string {
	return c.identity
}

// remoteError mirrors the backend's error envelope.
type remoteError struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body for %s %s: %w", method, path, err)
		}

		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request for %s %s: %w", method, path, err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.identity)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return appErrors.UpstreamError("Backend unreachable").WithError(err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return appErrors.UpstreamError("Failed to read backend response").WithError(err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return c.mapError(resp.StatusCode, respBody)
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return appErrors.UpstreamError("Failed to decode backend response").WithError(err)
		}
	}

	return nil
}

// mapError converts a non-2xx reply into an AppError. The remote message is
// passed through unmodified; the layer does no retry and no classification
// beyond the status code.
func (c *Client) mapError(statusCode int, body []byte) error {

	var envelope remoteError

	message := http.StatusText(statusCode)
	code := ""

	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		message = envelope.Error.Message
		code = envelope.Error.Code
	}

	switch {
	case code == appErrors.ErrCodeInsufficientStock:
		return appErrors.InsufficientStockError(message)
	case statusCode == http.StatusNotFound:
		return appErrors.NotFoundError(message)
	case statusCode == http.StatusBadRequest:
		return appErrors.ValidationError(message)
	case statusCode == http.StatusUnauthorized:
		return appErrors.UnauthorizedError(message)
	case statusCode == http.StatusForbidden:
		return appErrors.ForbiddenError(message)
	case statusCode == http.StatusConflict:
		return appErrors.InsufficientStockError(message)
	default:
		return appErrors.UpstreamError(message)
	}
}

func formatUint(v uint64) string {
	return strconv.FormatUint(v, 10)
}

func (c *Client) GetProducts(ctx context.Context, hideOutOfStock bool) ([]models.Product, error) {

	query := url.Values{"hideOutOfStock": {strconv.FormatBool(hideOutOfStock)}}

	products := []models.Product{}
	if err := c.do(ctx, http.MethodGet, "/products", query, nil, &products); err != nil {
		return nil, err
	}

	return products, nil
}

func (c *Client) GetProductByID(ctx context.Context, id models.ProductID) (*models.Product, error) {

	var product models.Product

	err := c.do(ctx, http.MethodGet, "/products/"+formatUint(uint64(id)), nil, nil, &product)
	if err != nil {
		if appErr, ok := appErrors.IsAppError(err); ok && appErr.Code == appErrors.ErrCodeNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &product, nil
}

func (c *Client) GetLowStockProducts(ctx context.Context) ([]models.Product, error) {

	products := []models.Product{}
	if err := c.do(ctx, http.MethodGet, "/products/low-stock", nil, nil, &products); err != nil {
		return nil, err
	}

	return products, nil
}

func (c *Client) CreateProduct(ctx context.Context, input models.ProductInput) (models.ProductID, error) {

	var created struct {
		ID models.ProductID `json:"id"`
	}

	if err := c.do(ctx, http.MethodPost, "/products", nil, input, &created); err != nil {
		return 0, err
	}

	return created.ID, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id models.ProductID, input models.ProductInput) error {
	return c.do(ctx, http.MethodPut, "/products/"+formatUint(uint64(id)), nil, input, nil)
}

func (c *Client) DeleteProduct(ctx context.Context, id models.ProductID) error {
	return c.do(ctx, http.MethodDelete, "/products/"+formatUint(uint64(id)), nil, nil, nil)
}

func (c *Client) SetLowStockThreshold(ctx context.Context, threshold uint64) error {

	body := models.LowStockThresholdRequest{Threshold: threshold}

	return c.do(ctx, http.MethodPut, "/settings/low-stock-threshold", nil, body, nil)
}

func (c *Client) GetInquiries(ctx context.Context) ([]models.Inquiry, error) {

	inquiries := []models.Inquiry{}
	if err := c.do(ctx, http.MethodGet, "/inquiries", nil, nil, &inquiries); err != nil {
		return nil, err
	}

	return inquiries, nil
}

func (c *Client) SubmitInquiry(ctx context.Context, input models.InquiryInput) (models.InquiryID, error) {

	var created struct {
		ID models.InquiryID `json:"id"`
	}

	if err := c.do(ctx, http.MethodPost, "/inquiries", nil, input, &created); err != nil {
		return 0, err
	}

	return created.ID, nil
}

func (c *Client) MarkInquiryRead(ctx context.Context, id models.InquiryID) error {
	return c.do(ctx, http.MethodPost, "/inquiries/"+formatUint(uint64(id))+"/read", nil, nil, nil)
}

func (c *Client) DeleteInquiry(ctx context.Context, id models.InquiryID) error {
	return c.do(ctx, http.MethodDelete, "/inquiries/"+formatUint(uint64(id)), nil, nil, nil)
}

func (c *Client) RecordSale(ctx context.Context, input models.SaleInput) (models.SaleID, error) {

	var created struct {
		ID models.SaleID `json:"id"`
	}

	if err := c.do(ctx, http.MethodPost, "/sales", nil, input, &created); err != nil {
		return 0, err
	}

	return created.ID, nil
}

func (c *Client) GetSalesByDate(ctx context.Context, dayTimestamp uint64) ([]models.Sale, error) {

	query := url.Values{"date": {formatUint(dayTimestamp)}}

	sales := []models.Sale{}
	if err := c.do(ctx, http.MethodGet, "/sales", query, nil, &sales); err != nil {
		return nil, err
	}

	return sales, nil
}

func (c *Client) GetSalesByMonth(ctx context.Context, year, month uint64) ([]models.Sale, error) {

	query := url.Values{
		"year":  {formatUint(year)},
		"month": {formatUint(month)},
	}

	sales := []models.Sale{}
	if err := c.do(ctx, http.MethodGet, "/sales", query, nil, &sales); err != nil {
		return nil, err
	}

	return sales, nil
}

func (c *Client) GetSalesByProduct(ctx context.Context, productID models.ProductID) ([]models.Sale, error) {

	query := url.Values{"productId": {formatUint(uint64(productID))}}

	sales := []models.Sale{}
	if err := c.do(ctx, http.MethodGet, "/sales", query, nil, &sales); err != nil {
		return nil, err
	}

	return sales, nil
}

func (c *Client) GetIncomeStats(ctx context.Context) (models.IncomeStats, error) {

	var stats models.IncomeStats
	if err := c.do(ctx, http.MethodGet, "/income-stats", nil, nil, &stats); err != nil {
		return models.IncomeStats{}, err
	}

	return stats, nil
}

func (c *Client) IsCallerAdmin(ctx context.Context) (bool, error) {

	var result struct {
		IsAdmin bool `json:"is_admin"`
	}

	if err := c.do(ctx, http.MethodGet, "/me/is-admin", nil, nil, &result); err != nil {
		return false, err
	}

	return result.IsAdmin, nil
}

func (c *Client) GetCallerUserRole(ctx context.Context) (models.UserRole, error) {

	var result struct {
		Role models.UserRole `json:"role"`
	}

	if err := c.do(ctx, http.MethodGet, "/me/role", nil, nil, &result); err != nil {
		return models.RoleGuest, err
	}

	return result.Role, nil
}

func (c *Client) GetCallerUserProfile(ctx context.Context) (*models.UserProfile, error) {

	var profile models.UserProfile

	err := c.do(ctx, http.MethodGet, "/me/profile", nil, nil, &profile)
	if err != nil {
		if appErr, ok := appErrors.IsAppError(err); ok && appErr.Code == appErrors.ErrCodeNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &profile, nil
}

func (c *Client) SaveCallerUserProfile(ctx context.Context, profile models.UserProfile) error {
	return c.do(ctx, http.MethodPut, "/me/profile", nil, profile, nil)
}
