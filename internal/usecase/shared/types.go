package shared

import (
	"encoding/json"
	"time"
)

type Vehicle struct {
	Plate        string
	Client       string
	Brand        string
	Model        string
	ContractType string
	Odometer     int64
	CreatedAt    time.Time
}

// Message is one delivery on a topic. Payload is JSON.
type Message struct {
	Topic       string
	Payload     json.RawMessage
	PublishedAt time.Time
}

// Subscription is a live attachment to a topic. Events is closed once the
// subscription is closed.
type Subscription struct {
	Events <-chan Message
	cancel func()
}

func NewSubscription(events <-chan Message, cancel func()) *Subscription {
	return &Subscription{Events: events, cancel: cancel}
}

// Close detaches the subscriber. It is safe to call more than once.
func (s *Subscription) Close() {
	if s != nil && s.cancel != nil {
		s.cancel()
	}
}
