package repositories

import (
	"fmt"
	"sync"

	"gudang/internal/models"
)

// MemoryItemRepository is a process-lifetime, in-memory implementation of ItemRepository.
type MemoryItemRepository struct {
	mu     sync.RWMutex
	items  []models.Item
	nextID uint
}

// NewMemoryItemRepository creates an empty repository whose first item gets ID 1.
func NewMemoryItemRepository() *MemoryItemRepository {
	return &MemoryItemRepository{
		nextID: 1,
	}
}

// GetAll returns a copy of all items in insertion order.
func (r *MemoryItemRepository) GetAll() ([]models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]models.Item, len(r.items))
	copy(items, r.items)
	return items, nil
}

// GetByID returns a copy of the item with the given ID.
func (r *MemoryItemRepository) GetByID(id uint) (*models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("item with ID %d: %w", id, ErrItemNotFound)
	}
	item := r.items[i]
	return &item, nil
}

// Create assigns the next ID to item and appends it.
func (r *MemoryItemRepository) Create(item *models.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = r.nextID
	r.nextID++
	r.items = append(r.items, *item)
	return nil
}

// Update overwrites the stored item carrying item.ID, keeping its position.
func (r *MemoryItemRepository) Update(item *models.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(item.ID)
	if i < 0 {
		return fmt.Errorf("item with ID %d not updated: %w", item.ID, ErrItemNotFound)
	}
	r.items[i] = *item
	return nil
}

// Delete removes the item with the given ID. The ID counter is left untouched.
func (r *MemoryItemRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return fmt.Errorf("item with ID %d not deleted: %w", id, ErrItemNotFound)
	}
	r.items = append(r.items[:i], r.items[i+1:]...)
	return nil
}

// indexOf must be called with mu held.
func (r *MemoryItemRepository) indexOf(id uint) int {
	for i := range r.items {
		if r.items[i].ID == id {
			return i
		}
	}
	return -1
}
