package repositories

import (
	"errors"
	"fmt"

	"gudang/internal/models"

	"gorm.io/gorm"
)

// GORMItemRepository is a GORM implementation of ItemRepository.
type GORMItemRepository struct {
	db *gorm.DB
}

// NewGORMItemRepository creates a new instance of GORMItemRepository.
func NewGORMItemRepository(db *gorm.DB) *GORMItemRepository {
	return &GORMItemRepository{
		db: db,
	}
}

// GetAll retrieves all items ordered by ID, which matches insertion order.
func (r *GORMItemRepository) GetAll() ([]models.Item, error) {
	items := []models.Item{}
	if err := r.db.Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to get all items: %w", err)
	}
	return items, nil
}

// GetByID retrieves a single item by its ID.
func (r *GORMItemRepository) GetByID(id uint) (*models.Item, error) {
	var item models.Item
	if err := r.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("item with ID %d: %w", id, ErrItemNotFound)
		}
		return nil, fmt.Errorf("failed to get item by ID %d: %w", id, err)
	}
	return &item, nil
}

// Create inserts item; the database assigns its ID.
func (r *GORMItemRepository) Create(item *models.Item) error {
	item.ID = 0
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}
	return nil
}

// Update overwrites name, quantity and price of an existing item.
func (r *GORMItemRepository) Update(item *models.Item) error {
	// Select forces zero values (quantity 0, price 0) to be written too.
	res := r.db.Model(&models.Item{}).
		Where("id = ?", item.ID).
		Select("name", "quantity", "price").
		Updates(item)
	if res.Error != nil {
		return fmt.Errorf("failed to update item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("item with ID %d not updated: %w", item.ID, ErrItemNotFound)
	}
	return nil
}

// Delete removes an item by its ID.
func (r *GORMItemRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Item{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("item with ID %d not deleted: %w", id, ErrItemNotFound)
	}
	return nil
}
