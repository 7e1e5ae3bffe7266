package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/render"

	"github.com/pivotal-cf/cred-audit/audit"
	"github.com/pivotal-cf/cred-audit/lgctx"
	"github.com/pivotal-cf/cred-audit/lifecycle"
	"github.com/pivotal-cf/cred-audit/models"
)

var errBadRequest = errors.New("bad request")

func badRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", errBadRequest, fmt.Sprintf(format, args...))
}

type errorResponse struct {
	Error         string `json:"error"`
	CurrentStatus string `json:"current_status,omitempty"`
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, audit.ErrInvalidEvent),
		errors.Is(err, lifecycle.ErrActorRequired):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrInvalidTransition),
		errors.Is(err, models.ErrConcurrentModification),
		errors.Is(err, models.ErrScanInProgress):
		return http.StatusConflict
	case errors.Is(err, models.ErrRedactionViolation):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)

	response := errorResponse{Error: err.Error()}

	var conflict models.ConcurrentModificationError
	if errors.As(err, &conflict) {
		response.CurrentStatus = conflict.Actual
	}

	if status == http.StatusInternalServerError {
		lgctx.FromContext(r.Context()).Error("failed-to-handle-request", err)

		var scanErr models.ScanExecutionError
		if !errors.As(err, &scanErr) {
			response.Error = http.StatusText(status)
		}
	}

	render.Status(r, status)
	render.JSON(w, r, response)
}

func writeErrorMessage(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	render.JSON(w, r, errorResponse{Error: message})
}
