package surrealhttp

import (
	"errors"
	"fmt"
)

// ErrKeyNotFound is matched by errors returned when a record-addressed Select
// or Create comes back empty. Use errors.Is to test for it.
var ErrKeyNotFound = errors.New("key not found")

// KeyNotFoundError reports which record was missing.
type KeyNotFoundError struct {
	Table string
	ID    string
}

func (e KeyNotFoundError) Error() string {
	return fmt.Sprintf("key %s not found in table %s", e.ID, e.Table)
}

func (e KeyNotFoundError) Unwrap() error {
	return ErrKeyNotFound
}
