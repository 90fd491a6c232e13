// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/shanakasp/backendNextSupabase/middleware"
	"github.com/shanakasp/backendNextSupabase/models"
	"github.com/shanakasp/backendNextSupabase/store"
	"github.com/shanakasp/backendNextSupabase/survey"
)

// classify maps an error to its HTTP status and error kind.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, survey.ErrInvalidIdentifier):
		return http.StatusBadRequest, models.KindInvalidIdentifier
	case errors.Is(err, survey.ErrUnknownQuestion):
		return http.StatusBadRequest, models.KindUnknownQuestion
	case errors.Is(err, survey.ErrMissingSubpart):
		return http.StatusBadRequest, models.KindMissingSubpart
	case errors.Is(err, survey.ErrPrerequisiteNotMet):
		return http.StatusConflict, models.KindPrerequisiteNotMet
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound, models.KindRecordNotFound
	case errors.Is(err, store.ErrUnavailable):
		return http.StatusServiceUnavailable, models.KindStoreUnavailable
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Field() == "Email" {
				return http.StatusBadRequest, models.KindInvalidIdentifier
			}
		}
		return http.StatusBadRequest, models.KindInvalidRequest
	}

	return http.StatusInternalServerError, models.KindStoreUnavailable
}

// writeError writes the failure payload. Server-side failures are logged
// and answered with msg instead of the underlying error text.
func writeError(w http.ResponseWriter, err error, msg string) {
	status, kind := classify(err)
	if status >= http.StatusInternalServerError {
		slog.Error(msg, "kind", kind, "error", err)
		middleware.ErrorResponse(w, status, kind, msg)
		return
	}
	middleware.ErrorResponse(w, status, kind, err.Error())
}
