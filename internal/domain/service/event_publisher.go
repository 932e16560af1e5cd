package service

import (
	"context"
)

// Moderation event entity types.
const (
	ModerationEntityVendor = "vendor"
	ModerationEntityGoods  = "goods"
)

// ModerationEvent records an admin status transition on a vendor or a goods
// listing. Events are published best-effort after the transition is persisted.
type ModerationEvent struct {
	RequestID  string `json:"request_id,omitempty"` // For distributed tracing
	EntityType string `json:"entity_type"`          // "vendor" or "goods"
	EntityID   string `json:"entity_id"`
	Status     string `json:"status"`
	ActorID    string `json:"actor_id"`
	Reason     string `json:"reason,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishModerationEvent publishes a moderation event for async consumers.
	PublishModerationEvent(ctx context.Context, event *ModerationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
