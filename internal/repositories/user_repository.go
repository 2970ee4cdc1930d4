package repositories

import "gudang/internal/models"

// UserRepository is the credential lookup used by authentication.
// A missing user is reported as ok == false, not as an error.
type UserRepository interface {
	GetByUsername(username string) (user *models.User, ok bool, err error)
}
