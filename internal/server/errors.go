package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/jonathan/cv-online/internal/fetch"
	"github.com/jonathan/cv-online/internal/types"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var unsupported *types.UnsupportedLanguageError
	var fetchErr *fetch.Error
	var parseErr *fetch.ParseError

	switch {
	case err == nil:
		return http.StatusInternalServerError
	case errors.As(err, &unsupported):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.As(err, &fetchErr), errors.As(err, &parseErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
