package events

import (
	"time"

	"github.com/boz-concept/shop-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventOrderCreated        EventType = "order_created"
	EventOrderStatusChanged  EventType = "order_status_changed"
	EventMembershipRequested EventType = "membership_requested"
	EventMembershipApproved  EventType = "membership_approved"
	EventMembershipRejected  EventType = "membership_rejected"
	EventMembershipExtended  EventType = "membership_extended"
	EventMembershipRevoked   EventType = "membership_revoked"
)

// AllEventTypes lists every event identifier, for sinks that forward
// the full stream.
func AllEventTypes() []EventType {
	return []EventType{
		EventOrderCreated,
		EventOrderStatusChanged,
		EventMembershipRequested,
		EventMembershipApproved,
		EventMembershipRejected,
		EventMembershipExtended,
		EventMembershipRevoked,
	}
}

// Actor encapsulates actor metadata for an event.
type Actor struct {
	Type    domain.SubjectType `json:"type"`
	UserID  *string            `json:"user_id,omitempty"`
	AdminID *string            `json:"admin_id,omitempty"`
}

// Event represents a domain event emitted by services. EntityID is the
// order or user the event is about.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	EntityID  string      `json:"entity_id"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// OrderCreatedPayload payload.
type OrderCreatedPayload struct {
	UserID    string  `json:"user_id"`
	Total     float64 `json:"total"`
	ItemCount int     `json:"item_count"`
}

// OrderStatusChangedPayload payload.
type OrderStatusChangedPayload struct {
	OldStatus domain.OrderStatus `json:"old_status"`
	NewStatus domain.OrderStatus `json:"new_status"`
}

// MembershipChangedPayload payload for the membership lifecycle events.
type MembershipChangedPayload struct {
	UserID    string     `json:"user_id"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}
