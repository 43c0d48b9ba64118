package models

import "time"

// Item is the placeholder resource served under /items. Items are not
// persisted.
type Item struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateItemRequest is the body of POST /items.
type CreateItemRequest struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Description *string `json:"description"`
}

// UpdateItemRequest is the body of PUT /items/{id}; nil fields keep their
// defaults.
type UpdateItemRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=255"`
	Description *string `json:"description"`
	Status      *string `json:"status" validate:"omitempty,max=50"`
}
