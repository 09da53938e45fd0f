package http

import (
	"errors"

	"percept-srv/internal/reviews"
	pkgErrors "percept-srv/pkg/errors"
)

var (
	errWrongBody = pkgErrors.NewHTTPError(
		400, "Invalid request body",
	)
	errProductNameRequired = pkgErrors.NewHTTPError(
		400, "Product name is required",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, reviews.ErrProductNameRequired):
		return errProductNameRequired
	default:
		panic(err)
	}
}
