package repositories

import (
	"gudang/internal/models"
)

// StaticUserRepository serves a fixed credential table defined at start-up.
type StaticUserRepository struct {
	users map[string]models.User
}

// NewStaticUserRepository builds a repository from users. Later entries win on duplicate usernames.
func NewStaticUserRepository(users []models.User) *StaticUserRepository {
	r := &StaticUserRepository{
		users: make(map[string]models.User, len(users)),
	}
	for _, u := range users {
		r.users[u.Username] = u
	}
	return r
}

// GetByUsername returns a copy of the user entry.
func (r *StaticUserRepository) GetByUsername(username string) (*models.User, bool, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, false, nil
	}
	return &u, true, nil
}
