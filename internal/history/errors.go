package history

import "errors"

var (
	ErrProductNameRequired = errors.New("product name is required")
	ErrProductNotFound     = errors.New("product not found")
	ErrSnapshotNotFound    = errors.New("snapshot not found")
)
