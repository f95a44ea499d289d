package server

import (
	"errors"
	"net/http"

	"github.com/Naiitikk/cv-creator/internal/export"
	"github.com/Naiitikk/cv-creator/internal/llm"
	"github.com/Naiitikk/cv-creator/internal/types"
)

// HTTPStatus returns the appropriate HTTP status code for an error:
// validation failures map to 400, upstream completion failures and export
// failures to 500.
func HTTPStatus(err error) int {
	var (
		validationErr *types.ErrValidation
		upstreamErr   *llm.UpstreamError
		exportErr     *export.ExportError
	)
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &upstreamErr), errors.As(err, &exportErr):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
