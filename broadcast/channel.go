// Package broadcast provides the fire notification channel: a parameterless
// publish/subscribe signal owned by a simulation and shared by reference.
package broadcast

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// Handler is a zero-argument notification callback.
type Handler func()

// Subscription identifies a registered handler. The zero value is never issued.
type Subscription uint64

// Fired is the event carried through the world's event queue.
type Fired struct{}

type subscriber struct {
	id      Subscription
	handler Handler
}

// Channel delivers Publish calls to every subscribed handler synchronously.
// It must only be used from the simulation goroutine.
type Channel struct {
	world       donburi.World
	fired       *events.EventType[Fired]
	subscribers []subscriber
	next        Subscription
	published   int
}

// NewChannel creates a channel whose events travel through w.
func NewChannel(w donburi.World) *Channel {
	c := &Channel{
		world: w,
		fired: events.NewEventType[Fired](),
	}
	c.fired.Subscribe(w, c.dispatch)
	return c
}

// Subscribe registers h and returns the token used to remove it.
func (c *Channel) Subscribe(h Handler) Subscription {
	c.next++
	c.subscribers = append(c.subscribers, subscriber{id: c.next, handler: h})
	return c.next
}

// Unsubscribe removes the handler registered under s. Removing an unknown or
// already removed subscription is a no-op.
func (c *Channel) Unsubscribe(s Subscription) {
	for i, sub := range c.subscribers {
		if sub.id == s {
			c.subscribers = append(c.subscribers[:i], c.subscribers[i+1:]...)
			return
		}
	}
}

// Subscribed reports whether s is currently registered.
func (c *Channel) Subscribed(s Subscription) bool {
	for _, sub := range c.subscribers {
		if sub.id == s {
			return true
		}
	}
	return false
}

// Publish invokes every registered handler before returning.
func (c *Channel) Publish() {
	c.fired.Publish(c.world, Fired{})
	c.fired.ProcessEvents(c.world)
}

// Len returns the number of registered handlers.
func (c *Channel) Len() int {
	return len(c.subscribers)
}

// Published returns how many notifications have been delivered.
func (c *Channel) Published() int {
	return c.published
}

func (c *Channel) dispatch(_ donburi.World, _ Fired) {
	c.published++

	// Handlers may subscribe or unsubscribe while we iterate; walk a snapshot
	// and skip anything removed along the way.
	snapshot := make([]subscriber, len(c.subscribers))
	copy(snapshot, c.subscribers)
	for _, sub := range snapshot {
		if !c.Subscribed(sub.id) {
			continue
		}
		sub.handler()
	}
}
