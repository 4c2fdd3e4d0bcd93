package entity

import (
	"time"

	"github.com/google/uuid"
)

// FirmwareVersion is a published device build. Number orders versions; the highest is the latest.
type FirmwareVersion struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Link        string    `json:"link"`
	Number      int       `json:"number"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
