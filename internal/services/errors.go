package services

import (
	"context"
	"errors"
	"net/http"

	goahttp "goa.design/goa/v3/http"
	goamiddleware "goa.design/goa/v3/middleware"
	goa "goa.design/goa/v3/pkg"

	"github.com/Brendon2203/techsolutions/internal/logging"
	apperrors "github.com/Brendon2203/techsolutions/pkg/errors"
)

// ErrorResponse is the body written for errors that are not declared in the
// API design: request decoding failures and unexpected faults.
type ErrorResponse struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
}

// StatusCode implements goahttp.Statuser
func (r *ErrorResponse) StatusCode() int {
	return r.Status
}

// FormatError maps errors raised outside the service methods to a response.
// Decoder and validation errors become 422, anything else is a 500 whose
// detail is only logged.
func FormatError(ctx context.Context, err error) goahttp.Statuser {
	var serr *goa.ServiceError
	if errors.As(err, &serr) && !serr.Fault {
		return &ErrorResponse{Status: http.StatusUnprocessableEntity, Error: serr.Message}
	}
	var appErr *apperrors.AppError
	if apperrors.IsValidation(err) && errors.As(err, &appErr) {
		return &ErrorResponse{Status: http.StatusUnprocessableEntity, Error: appErr.Detail()}
	}

	logging.Error("unhandled error", "request_id", requestID(ctx),
		"error", apperrors.Internal("unhandled error", err))
	return &ErrorResponse{Status: http.StatusInternalServerError, Error: "internal server error"}
}

// ErrorHandler logs errors that happen while writing a response
func ErrorHandler(ctx context.Context, w http.ResponseWriter, err error) {
	logging.Error("failed to encode response", "request_id", requestID(ctx), "error", err)
}

func requestID(ctx context.Context) string {
	if id, ok := ctx.Value(goamiddleware.RequestIDKey).(string); ok {
		return id
	}
	return ""
}
