package models

// Item represents a single inventory record.
type Item struct {
	ID       uint    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name     string  `json:"name" gorm:"type:varchar(255);not null"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}
