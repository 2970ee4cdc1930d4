package repositories

import (
	"gudang/internal/models"
)

// ItemRepository defines the interface for inventory data access.
// Implementations list items in insertion order and never reuse an ID.
type ItemRepository interface {
	GetAll() ([]models.Item, error)
	GetByID(id uint) (*models.Item, error)
	Create(item *models.Item) error
	Update(item *models.Item) error
	Delete(id uint) error
}
