package models

import "time"

// ItemEventType names a change made to the inventory.
type ItemEventType string

const (
	ItemCreated ItemEventType = "item.created"
	ItemUpdated ItemEventType = "item.updated"
	ItemDeleted ItemEventType = "item.deleted"
)

// ItemEvent describes one inventory change, published after the change is applied.
type ItemEvent struct {
	ID         string        `json:"id"`
	Type       ItemEventType `json:"type"`
	Item       Item          `json:"item"`
	Actor      string        `json:"actor"` // username of the admin who made the change
	OccurredAt time.Time     `json:"occurred_at"`
}
