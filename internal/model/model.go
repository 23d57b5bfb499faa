// Package model contains domain entities and DTOs used across layers.
// I keep it lean and focused on data shapes without behavior.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Item is the entity served by the reference list endpoint.
type Item struct {
	ID        uuid.UUID `json:"id" example:"5f0c1c3e-2f3a-4d4e-9b7a-0c1d2e3f4a5b"`
	Name      string    `json:"name" example:"widget"`
	CreatedAt time.Time `json:"created_at"`
} //	@name	Item
