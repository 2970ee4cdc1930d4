package services

import (
	"errors"
	"log/slog"
	"time"

	"gudang/internal/models"
	"gudang/internal/repositories"

	"github.com/google/uuid"
)

// EventPublisher delivers inventory change events to interested consumers.
type EventPublisher interface {
	PublishItemEvent(event models.ItemEvent) error
}

// InventoryService handles business logic related to inventory items.
type InventoryService struct {
	repo      repositories.ItemRepository
	publisher EventPublisher // optional
	log       *slog.Logger
}

// NewInventoryService creates a new InventoryService. publisher may be nil.
func NewInventoryService(repo repositories.ItemRepository, publisher EventPublisher, log *slog.Logger) *InventoryService {
	return &InventoryService{
		repo:      repo,
		publisher: publisher,
		log:       log,
	}
}

// ListItems returns every item in insertion order.
func (s *InventoryService) ListItems() ([]models.Item, error) {
	return s.repo.GetAll()
}

// FindItem looks up an item. ok is false when no item has the given ID.
func (s *InventoryService) FindItem(id uint) (item *models.Item, ok bool, err error) {
	item, err = s.repo.GetByID(id)
	if errors.Is(err, repositories.ErrItemNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return item, true, nil
}

// CreateItem stores a new item under the next free ID.
func (s *InventoryService) CreateItem(name string, quantity int, price float64, actor string) (*models.Item, error) {
	item := &models.Item{Name: name, Quantity: quantity, Price: price}
	if err := s.repo.Create(item); err != nil {
		return nil, err
	}
	s.log.Info("item created", "id", item.ID, "name", item.Name, "by", actor)
	s.publish(models.ItemCreated, *item, actor)
	return item, nil
}

// UpdateItem overwrites the fields of an existing item. It reports whether the item existed.
func (s *InventoryService) UpdateItem(id uint, name string, quantity int, price float64, actor string) (bool, error) {
	item := models.Item{ID: id, Name: name, Quantity: quantity, Price: price}
	err := s.repo.Update(&item)
	if errors.Is(err, repositories.ErrItemNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	s.log.Info("item updated", "id", id, "by", actor)
	s.publish(models.ItemUpdated, item, actor)
	return true, nil
}

// DeleteItem removes an item. It reports whether anything was removed.
func (s *InventoryService) DeleteItem(id uint, actor string) (bool, error) {
	err := s.repo.Delete(id)
	if errors.Is(err, repositories.ErrItemNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	s.log.Info("item deleted", "id", id, "by", actor)
	s.publish(models.ItemDeleted, models.Item{ID: id}, actor)
	return true, nil
}

// publish sends an event if a publisher is configured. Failures are logged only.
func (s *InventoryService) publish(eventType models.ItemEventType, item models.Item, actor string) {
	if s.publisher == nil {
		return
	}
	event := models.ItemEvent{
		ID:         uuid.New().String(),
		Type:       eventType,
		Item:       item,
		Actor:      actor,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.PublishItemEvent(event); err != nil {
		s.log.Warn("failed to publish item event", "type", eventType, "item_id", item.ID, "error", err)
	}
}
