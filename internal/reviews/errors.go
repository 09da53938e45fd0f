package reviews

import "errors"

var (
	ErrProductNameRequired = errors.New("product name is required")
)
