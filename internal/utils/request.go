package utils

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	appErrors "github.com/vedakart/storefront-gateway/internal/errors"
	"github.com/vedakart/storefront-gateway/internal/utils/response"
)

// ParseAndValidate decodes the JSON body into dest and validates it. On
// failure it writes the error response itself and returns false.
func ParseAndValidate(r *http.Request, w http.ResponseWriter, dest any, validate *validator.Validate) bool {

	if err := DecodeJSONBody(r, dest); err != nil {
		slog.Warn("Invalid request", slog.String("error", err.Error()))
		response.Error(w, appErrors.BadRequestError("Invalid request body").WithError(err))

		return false
	}

	if err := ValidateStruct(validate, dest); err != nil {

		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			response.ValidationError(w, validationErrs)

			return false
		}

		slog.Warn("Validation failed", slog.String("error", err.Error()))
		response.Error(w, appErrors.ValidationError("Invalid input data"))

		return false
	}

	return true
}

// PathID parses the {id} path value of a REST route.
func PathID(r *http.Request) (uint64, error) {

	raw := r.PathValue("id")

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, appErrors.BadRequestError("Invalid id in path").WithError(err)
	}

	return id, nil
}

// QueryUint parses an optional unsigned query parameter. A missing parameter
// yields (nil, nil).
func QueryUint(r *http.Request, name string) (*uint64, error) {

	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, appErrors.BadRequestError("Invalid query parameter '" + name + "'").WithError(err)
	}

	return &v, nil
}
