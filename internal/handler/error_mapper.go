package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/forgo/jobly/internal/middleware"
	"github.com/forgo/jobly/internal/model"
	"github.com/forgo/jobly/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error messages across the API.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	switch {
	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrJobNotFound):
		return model.NewNotFoundError("job")

	// ===== Bad Request Errors → 400 =====
	case errors.Is(err, service.ErrNoUpdateFields),
		errors.Is(err, service.ErrInvalidMinSalary):
		return model.NewBadRequestError(err.Error())

	// ===== Default → 500 =====
	default:
		return model.NewInternalError("")
	}
}

// MapServiceErrorWithContext converts a service error to a ProblemDetails response
// with additional context about the operation that failed.
func MapServiceErrorWithContext(err error, operation string) *model.ProblemDetails {
	pd := MapServiceError(err)
	if pd != nil && pd.Status == http.StatusInternalServerError {
		pd.Detail = operation + ": an unexpected error occurred"
	}
	return pd
}

// writeServiceError maps err and writes it. Unexpected errors are logged
// with the request id since the response hides them.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, operation string) {
	pd := MapServiceErrorWithContext(err, operation)
	if pd.Status >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed",
			slog.String("operation", operation),
			slog.String("request_id", middleware.GetRequestID(r.Context())),
			slog.String("error", err.Error()),
		)
	}
	pd.Instance = r.URL.Path
	WriteError(w, pd)
}
