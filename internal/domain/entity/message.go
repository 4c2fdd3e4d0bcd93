package entity

import (
	"time"

	"github.com/google/uuid"
)

// SourceType identifies who authored a message.
type SourceType string

const (
	SourceTypeUser   SourceType = "USER"
	SourceTypeAdmin  SourceType = "ADMIN"
	SourceTypeSystem SourceType = "SYSTEM"
)

// IsValid checks if the SourceType is a supported value.
func (s SourceType) IsValid() bool {
	switch s {
	case SourceTypeUser, SourceTypeAdmin, SourceTypeSystem:
		return true
	default:
		return false
	}
}

// Message is one unit of content sent from one user code to another.
// SourceUserID and DestinationUserID are a best-effort cache of the code owners.
type Message struct {
	ID                string         `json:"id"`
	SourceCode        string         `json:"sourceCode"`
	DestinationCode   string         `json:"destinationCode"`
	SourceUserID      *uuid.UUID     `json:"sourceUserId,omitempty"`
	DestinationUserID *uuid.UUID     `json:"destinationUserId,omitempty"`
	SourceType        SourceType     `json:"sourceType"`
	Content           string         `json:"content"`
	Meta              map[string]any `json:"meta"`
	Opened            bool           `json:"opened"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
}

// PartnerOf returns the code on the other side of the message relative to code.
func (m *Message) PartnerOf(code string) string {
	if m.SourceCode == code {
		return m.DestinationCode
	}

	return m.SourceCode
}

// ConversationSummary is one inbox row: the latest message exchanged with a partner plus the
// number of messages from that partner the owner has not opened.
type ConversationSummary struct {
	PartnerCode   string     `json:"partnerCode"`
	PartnerName   string     `json:"partnerName"`
	PartnerUserID *uuid.UUID `json:"partnerUserId,omitempty"`
	LastMessage   *Message   `json:"lastMessage"`
	UnreadCount   int        `json:"unreadCount"`
}
