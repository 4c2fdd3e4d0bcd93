package entity

import (
	"time"

	"github.com/google/uuid"
)

// Device is the physical companion paired with exactly one user. Its code equals the owner's user code.
type Device struct {
	ID             uuid.UUID `json:"id"`
	Code           string    `json:"code"`
	Nickname       string    `json:"nickname,omitempty"`
	Mood           Mood      `json:"mood"`
	UserID         uuid.UUID `json:"user"`
	AssignedBundle *string   `json:"assignedBundle,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
