package repositories

import "errors"

// Store-level sentinels. Services translate these into the externally visible
// error taxonomy; repositories never know about HTTP.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate key")
)
