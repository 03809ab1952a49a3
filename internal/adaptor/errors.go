package adaptor

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"fitness-booking/pkg/apperror"
	"fitness-booking/pkg/utils"

	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

// decodeJSON reads the request body into dst. An empty body leaves dst
// untouched so field validation reports the missing fields.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// handleServiceError maps error kinds to HTTP responses
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch apperror.KindOf(err) {
	case apperror.KindValidation:
		log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, apperror.MessageOf(err, "Validation failed"), apperror.FieldsOf(err))

	default:
		log.Error("Unexpected error in "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, apperror.MessageOf(err, "An unexpected error occurred."))
	}
}
