package repositories

import (
	"errors"
	"fmt"

	"gudang/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// GetByUsername retrieves a user by their username from the database.
func (r *GORMUserRepository) GetByUsername(username string) (*models.User, bool, error) {
	var user models.User
	if err := r.db.First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get user by username %s: %w", username, err)
	}
	return &user, true, nil
}

// Seed inserts users that are not present yet. Existing rows are left as they are.
func (r *GORMUserRepository) Seed(users []models.User) error {
	if len(users) == 0 {
		return nil
	}
	if err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&users).Error; err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}
	return nil
}
