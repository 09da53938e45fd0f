package repository

import "errors"

var (
	ErrCacheMiss = errors.New("source reviews not in cache")
)
