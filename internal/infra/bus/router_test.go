//go:build unit

package bus_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"fleet-workflow/internal/infra/bus"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	N int `json:"n"`
}

func decode(t *testing.T, raw json.RawMessage) payload {
	t.Helper()
	var p payload
	require.NoError(t, json.Unmarshal(raw, &p))
	return p
}

func TestRouterDeliversToEverySubscriber(t *testing.T) {
	router := bus.NewRouter(bus.WithSubscriberCapacity(4))
	first := router.Subscribe("Actividades")
	second := router.Subscribe("Actividades")
	other := router.Subscribe("admin")
	defer first.Close()
	defer second.Close()
	defer other.Close()

	require.NoError(t, router.Publish(context.Background(), "Actividades", payload{N: 1}))

	assert.Equal(t, 1, decode(t, (<-first.Events).Payload).N)
	assert.Equal(t, 1, decode(t, (<-second.Events).Payload).N)
	select {
	case <-other.Events:
		t.Fatal("message leaked to another topic")
	default:
	}
}

func TestRouterHasNoReplay(t *testing.T) {
	router := bus.NewRouter()
	require.NoError(t, router.Publish(context.Background(), "admin", payload{N: 1}))

	sub := router.Subscribe("admin")
	defer sub.Close()
	select {
	case <-sub.Events:
		t.Fatal("late subscriber received an earlier message")
	default:
	}
}

func TestRouterDropsOldestOnOverflow(t *testing.T) {
	router := bus.NewRouter(bus.WithSubscriberCapacity(2))
	sub := router.Subscribe("calendarTecnico")
	defer sub.Close()

	for i := 1; i <= 3; i++ {
		require.NoError(t, router.Publish(context.Background(), "calendarTecnico", payload{N: i}))
	}

	assert.Equal(t, 2, decode(t, (<-sub.Events).Payload).N)
	assert.Equal(t, 3, decode(t, (<-sub.Events).Payload).N)
}

func TestSubscriptionClose(t *testing.T) {
	router := bus.NewRouter()
	sub := router.Subscribe("tecnico")
	assert.Equal(t, 1, router.SubscriberCount("tecnico"))

	sub.Close()
	sub.Close()

	_, open := <-sub.Events
	assert.False(t, open)
	assert.Equal(t, 0, router.SubscriberCount("tecnico"))
	assert.NoError(t, router.Publish(context.Background(), "tecnico", payload{N: 1}))
}

func TestPublishValidation(t *testing.T) {
	router := bus.NewRouter()

	assert.ErrorIs(t, router.Publish(context.Background(), "  ", payload{}), bus.ErrEmptyTopic)
	assert.Error(t, router.Publish(context.Background(), "admin", make(chan int)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, router.Publish(ctx, "admin", payload{}), context.Canceled)
}

func TestConcurrentPublishAndClose(t *testing.T) {
	router := bus.NewRouter(bus.WithSubscriberCapacity(1))
	subs := make([]func(), 0, 8)
	for range 8 {
		s := router.Subscribe("Actividades")
		subs = append(subs, s.Close)
	}

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = router.Publish(context.Background(), "Actividades", payload{N: i})
		}()
	}
	for _, closeFn := range subs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			closeFn()
		}()
	}
	wg.Wait()
	router.Close()
	assert.Equal(t, 0, router.SubscriberCount("Actividades"))
}
