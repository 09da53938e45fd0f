package http

import (
	"errors"

	"percept-srv/internal/history"
	pkgErrors "percept-srv/pkg/errors"
)

var (
	errProductNameRequired = pkgErrors.NewHTTPError(
		400, "Product name is required",
	)
	errProductNotFound = pkgErrors.NewHTTPError(
		404, "Product not found",
	)
	errSnapshotNotFound = pkgErrors.NewHTTPError(
		404, "No scans recorded for this product",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, history.ErrProductNameRequired):
		return errProductNameRequired
	case errors.Is(err, history.ErrProductNotFound):
		return errProductNotFound
	case errors.Is(err, history.ErrSnapshotNotFound):
		return errSnapshotNotFound
	default:
		panic(err)
	}
}
