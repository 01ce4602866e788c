package bus

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"time"

	"fleet-workflow/internal/pkg/errs"
	"fleet-workflow/internal/usecase/shared"
)

const defaultSubscriberCapacity = 64

var ErrEmptyTopic = errs.New("topic is required")

// RouterOption customizes Router construction.
type RouterOption func(*Router)

// Router is an in-process topic bus. Each subscriber owns a bounded buffer;
// when it is full the oldest queued message is dropped. Nothing is replayed
// to subscribers that attach after a publish.
type Router struct {
	mu          sync.RWMutex
	subscribers map[string]map[*subscriber]struct{}
	channelSize int
	logger      *slog.Logger
	now         func() time.Time
}

func NewRouter(opts ...RouterOption) *Router {
	r := &Router{
		subscribers: map[string]map[*subscriber]struct{}{},
		channelSize: defaultSubscriberCapacity,
		logger:      slog.Default(),
		now:         time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

func WithLogger(logger *slog.Logger) RouterOption {
	return func(r *Router) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithSubscriberCapacity overrides the buffered channel size per subscriber.
func WithSubscriberCapacity(capacity int) RouterOption {
	return func(r *Router) {
		if capacity > 0 {
			r.channelSize = capacity
		}
	}
}

func WithClock(now func() time.Time) RouterOption {
	return func(r *Router) {
		if now != nil {
			r.now = now
		}
	}
}

// Publish encodes payload as JSON and hands it to every current subscriber of topic.
func (r *Router) Publish(ctx context.Context, topic string, payload any) error {
	topic = normalizeTopic(topic)
	if topic == "" {
		return ErrEmptyTopic
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrapf(err, "encode payload for %s", topic)
	}
	msg := shared.Message{Topic: topic, Payload: body, PublishedAt: r.now()}

	r.mu.RLock()
	subs := r.snapshotSubscribers(topic)
	r.mu.RUnlock()

	for _, sub := range subs {
		sub.deliver(msg)
	}
	return nil
}

func (r *Router) Subscribe(topic string) *shared.Subscription {
	topic = normalizeTopic(topic)
	sub := newSubscriber(topic, r.channelSize, r.logger)

	r.mu.Lock()
	if r.subscribers[topic] == nil {
		r.subscribers[topic] = map[*subscriber]struct{}{}
	}
	r.subscribers[topic][sub] = struct{}{}
	r.mu.Unlock()

	return shared.NewSubscription(sub.channel(), func() {
		r.removeSubscriber(topic, sub)
	})
}

// SubscriberCount reports how many subscribers are attached to topic.
func (r *Router) SubscriberCount(topic string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.subscribers[normalizeTopic(topic)])
}

// Close detaches every subscriber, closing their channels.
func (r *Router) Close() {
	r.mu.Lock()
	all := r.subscribers
	r.subscribers = map[string]map[*subscriber]struct{}{}
	r.mu.Unlock()

	for _, subs := range all {
		for sub := range subs {
			sub.close()
		}
	}
}

func (r *Router) snapshotSubscribers(topic string) []*subscriber {
	live := r.subscribers[topic]
	if len(live) == 0 {
		return nil
	}
	items := make([]*subscriber, 0, len(live))
	for sub := range live {
		items = append(items, sub)
	}
	return items
}

func (r *Router) removeSubscriber(topic string, sub *subscriber) {
	r.mu.Lock()
	if subs := r.subscribers[topic]; subs != nil {
		delete(subs, sub)
		if len(subs) == 0 {
			delete(r.subscribers, topic)
		}
	}
	r.mu.Unlock()
	sub.close()
}

// Topics are case sensitive; only surrounding whitespace is trimmed.
func normalizeTopic(topic string) string {
	return strings.TrimSpace(topic)
}

type subscriber struct {
	topic  string
	ch     chan shared.Message
	logger *slog.Logger
	mu     sync.Mutex
	closed bool
}

func newSubscriber(topic string, capacity int, logger *slog.Logger) *subscriber {
	if capacity <= 0 {
		capacity = defaultSubscriberCapacity
	}
	return &subscriber{
		topic:  topic,
		ch:     make(chan shared.Message, capacity),
		logger: logger,
	}
}

func (s *subscriber) channel() <-chan shared.Message {
	return s.ch
}

// deliver holds the lock so close cannot race a send.
func (s *subscriber) deliver(msg shared.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	for {
		select {
		case s.ch <- msg:
			return
		default:
		}
		select {
		case dropped := <-s.ch:
			s.logger.Warn("bus: dropped message on overflow",
				slog.String("topic", s.topic),
				slog.Time("published_at", dropped.PublishedAt))
		default:
		}
	}
}

func (s *subscriber) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.ch)
}
