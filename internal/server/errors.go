package server

import (
	"errors"
	"net/http"

	"github.com/jfelix/resume-matcher/internal/ai"
	"github.com/jfelix/resume-matcher/internal/match"
	"github.com/jfelix/resume-matcher/internal/profile"
	"github.com/jfelix/resume-matcher/internal/schemas"
)

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var (
		sparse     *profile.ErrInputTooSparse
		invalidJob *match.ErrInvalidJob
		validation *schemas.ValidationError
		signal     *ai.ErrExternalSignal
	)
	switch {
	case errors.As(err, &sparse):
		return http.StatusUnprocessableEntity
	case errors.As(err, &invalidJob), errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &signal):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
