package handlers

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"

	"github.com/vedakart/storefront-gateway/internal/api/middleware"
	"github.com/vedakart/storefront-gateway/internal/config"
	appErrors "github.com/vedakart/storefront-gateway/internal/errors"
	"github.com/vedakart/storefront-gateway/internal/models"
	"github.com/vedakart/storefront-gateway/internal/store"
	"github.com/vedakart/storefront-gateway/internal/utils"
	"github.com/vedakart/storefront-gateway/internal/utils/response"
)

// AuthHandler issues back-office tokens and serves the caller's own profile
// and role.
type AuthHandler struct {
	store     *store.Store
	security  *config.Security
	identity  string
	validator *validator.Validate
}

func NewAuthHandler(s *store.Store, security *config.Security, identity string) *AuthHandler {
	return &AuthHandler{
		store:     s,
		security:  security,
		identity:  identity,
		validator: validator.New(),
	}
}

// Login exchanges the shared admin access key for a signed JWT. There is one
// back-office operator; no user database sits behind this.
func (h *AuthHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.LoginRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		if subtle.ConstantTimeCompare([]byte(req.AccessKey), []byte(h.security.AdminAccessKey)) != 1 {
			logger.Warn("Login rejected: wrong access key")
			response.Error(w, appErrors.UnauthorizedError("Invalid access key"))

			return
		}

		expiry := time.Duration(h.security.JWTExpiryHours) * time.Hour

		claims := &models.Claims{
			Identity: h.identity,
			Role:     models.RoleAdmin,
			RegisteredClaims: jwt.RegisteredClaims{
				IssuedAt:  jwt.NewNumericDate(time.Now()),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
			},
		}

		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(h.security.JWTKey))
		if err != nil {
			logger.Error("Token signing failed", slog.String("error", err.Error()))
			response.Error(w, appErrors.InternalError("Failed to issue token"))

			return
		}

		logger.Info("Admin logged in")
		response.Success(w, http.StatusOK, models.LoginResponse{
			Token:     token,
			ExpiresIn: int(expiry.Seconds()),
		})
	}
}

// IsAdmin reports whether the gateway's backend identity has admin rights.
// The flag is cached: the storefront asks on every page load.
func (h *AuthHandler) IsAdmin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		isAdmin, err := h.store.IsCallerAdmin(r.Context())
		if err != nil {
			logger.Error("Failed to fetch admin flag", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, map[string]bool{"is_admin": isAdmin})
	}
}

func (h *AuthHandler) GetRole() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		role, err := h.store.CallerUserRole(r.Context())
		if err != nil {
			logger.Error("Failed to fetch caller role", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, map[string]models.UserRole{"role": role})
	}
}

// GetProfile returns 404 when no profile has been saved yet; the client
// treats that as "show the setup form".
func (h *AuthHandler) GetProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		profile, err := h.store.CallerUserProfile(r.Context())
		if err != nil {
			logger.Error("Failed to fetch profile", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		if profile == nil {
			response.Error(w, appErrors.NotFoundError("No profile saved"))

			return
		}

		response.Success(w, http.StatusOK, profile)
	}
}

func (h *AuthHandler) SaveProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.UserProfile
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		if err := h.store.SaveCallerUserProfile(r.Context(), req); err != nil {
			logger.Error("Failed to save profile", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Profile saved")
		response.Success(w, http.StatusOK, req)
	}
}
