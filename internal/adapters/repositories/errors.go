package repositories

import "errors"

// ErrNotFound is returned when a requested entity does not exist. Callers
// match with errors.Is; repositories wrap it with the entity kind.
var ErrNotFound = errors.New("not found")
