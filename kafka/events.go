package kafka

import "time"

// UserEvent represents a user lifecycle event
type UserEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Role      string    `json:"role,omitempty"`
	Status    string    `json:"status,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeUserRegistered    = "user.registered"
	EventTypeUserRoleChanged   = "user.role_changed"
	EventTypeUserStatusChanged = "user.status_changed"
)

// Kafka topics
const (
	TopicUserEvents = "user-events"
)
