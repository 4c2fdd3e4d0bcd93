// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// User is a person known to the identity provider, addressed on the wire by a short user code.
// The friend and request sets are read views over the relation tables; one pending edge backs
// both the sender's sent set and the receiver's received set.
type User struct {
	ID                            uuid.UUID   `json:"id"`
	ExternalID                    string      `json:"externalId"` // Identity provider subject.
	Username                      string      `json:"username,omitempty"`
	FirstName                     string      `json:"firstName,omitempty"`
	LastName                      string      `json:"lastName,omitempty"`
	Email                         string      `json:"email,omitempty"`
	PhoneNumber                   string      `json:"phoneNumber,omitempty"`
	UserCode                      string      `json:"userCode"`
	DeviceID                      *uuid.UUID  `json:"device,omitempty"`
	Friends                       []uuid.UUID `json:"friends"`
	SentPendingFriendRequests     []uuid.UUID `json:"sentPendingFriendRequests"`
	ReceivedPendingFriendRequests []uuid.UUID `json:"receivedPendingFriendRequests"`
	AnimationBundles              []string    `json:"animationBundles"`
	CreatedAt                     time.Time   `json:"createdAt"`
	UpdatedAt                     time.Time   `json:"updatedAt"`
}

// DisplayName returns the best human-readable name, falling back to the user code.
func (u *User) DisplayName() string {
	switch {
	case u.Username != "":
		return u.Username
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	default:
		return u.UserCode
	}
}

// IsFriendWith reports whether other is in the user's friend set.
func (u *User) IsFriendWith(other uuid.UUID) bool {
	return slices.Contains(u.Friends, other)
}

// HasPendingRequestFrom reports whether requester has a pending request to this user.
func (u *User) HasPendingRequestFrom(requester uuid.UUID) bool {
	return slices.Contains(u.ReceivedPendingFriendRequests, requester)
}

// HasDevice reports whether a device is paired with the user.
func (u *User) HasDevice() bool {
	return u.DeviceID != nil && *u.DeviceID != uuid.Nil
}
