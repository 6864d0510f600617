package repository

import "errors"

// ErrNotFound is returned when the requested venue or artist does not exist.
var ErrNotFound = errors.New("record not found")
