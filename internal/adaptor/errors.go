package adaptor

import (
	"errors"
	"net/http"

	"zoo-admin/internal/usecase"
	"zoo-admin/pkg/utils"

	"go.uber.org/zap"
)

// handleServiceError maps a usecase error onto a status code. failMsg is
// what the client sees for storage failures, whose details stay in the log.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation, failMsg string) {
	var validationErr *usecase.ValidationError

	switch {
	case errors.As(err, &validationErr):
		log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, validationErr.Message(), validationErr.Fields)

	case errors.Is(err, usecase.ErrAlreadyCheckedIn):
		utils.ResponseBadRequest(w, "Already checked in today", nil)

	case errors.Is(err, usecase.ErrInvalidCredentials):
		utils.ResponseUnauthorized(w, "Invalid email or password")

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, "Not found")

	default:
		// conflicts land here too: clients have always seen them as 500
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, failMsg)
	}
}

// decodeBody binds the JSON body into dst, answering 400 itself when the
// body is not a JSON object.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) (map[string]any, bool) {
	body, err := utils.DecodeBody(r.Body, dst)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return nil, false
	}
	return body, true
}
