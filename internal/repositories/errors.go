package repositories

import "errors"

// ErrItemNotFound is returned when no item matches the requested ID.
var ErrItemNotFound = errors.New("item not found")
