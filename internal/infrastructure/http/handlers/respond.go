// Package handlers provides HTTP handlers for the REST API
package handlers

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/fridgewise/v1/pkg/errors"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// validate checks request payloads against their struct tags
var validate = validator.New()

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("Failed to encode JSON response", zap.Error(err))
	}
}

// writeError maps an application error onto its HTTP status and a
// {"error": ...} body
func writeError(w http.ResponseWriter, logger *zap.Logger, err error) {
	appErr := apperrors.Wrap(err, "request failed")

	if appErr.StatusCode() >= http.StatusInternalServerError {
		logger.Error("Request error",
			zap.String("code", string(appErr.Code)),
			zap.String("message", appErr.Message),
			zap.Error(appErr.Cause),
		)
	}

	writeJSON(w, logger, appErr.StatusCode(), apperrors.ErrorResponse{
		Error: appErr.Message,
	})
}

// decodeAndValidate decodes the JSON body into dst and applies
// validator tags
func decodeAndValidate(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperrors.NewBadRequestError("Invalid JSON body")
	}
	if err := validate.Struct(dst); err != nil {
		return apperrors.NewValidationError(err.Error())
	}
	return nil
}
