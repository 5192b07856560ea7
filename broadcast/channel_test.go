package broadcast

import (
	"testing"

	"github.com/yohamta/donburi"
)

func TestPublishReachesAllSubscribers(t *testing.T) {
	c := NewChannel(donburi.NewWorld())

	calls := make([]int, 3)
	for i := range calls {
		i := i
		c.Subscribe(func() { calls[i]++ })
	}

	c.Publish()
	for i, n := range calls {
		if n != 1 {
			t.Errorf("handler %d called %d times, want 1", i, n)
		}
	}
	if c.Published() != 1 {
		t.Errorf("expected 1 publication, got %d", c.Published())
	}
}

func TestPublishWithoutSubscribers(t *testing.T) {
	c := NewChannel(donburi.NewWorld())
	c.Publish()
	if c.Published() != 1 {
		t.Errorf("expected 1 publication, got %d", c.Published())
	}
}

func TestUnsubscribeIsIdempotent(t *testing.T) {
	c := NewChannel(donburi.NewWorld())

	called := 0
	sub := c.Subscribe(func() { called++ })
	other := c.Subscribe(func() {})
	if c.Len() != 2 {
		t.Fatalf("expected 2 subscribers, got %d", c.Len())
	}

	c.Unsubscribe(sub)
	c.Unsubscribe(sub)
	c.Unsubscribe(Subscription(999))

	if c.Len() != 1 {
		t.Errorf("expected 1 subscriber, got %d", c.Len())
	}
	if !c.Subscribed(other) {
		t.Error("unrelated subscription should survive")
	}

	c.Publish()
	if called != 0 {
		t.Errorf("removed handler was called %d times", called)
	}
}

func TestHandlerUnsubscribingDuringPublish(t *testing.T) {
	c := NewChannel(donburi.NewWorld())

	var first, second Subscription
	secondCalls := 0
	firstCalls := 0
	first = c.Subscribe(func() {
		firstCalls++
		c.Unsubscribe(first)
		c.Unsubscribe(second)
	})
	second = c.Subscribe(func() { secondCalls++ })

	c.Publish()

	if firstCalls != 1 {
		t.Errorf("expected first handler once, got %d", firstCalls)
	}
	if secondCalls != 0 {
		t.Errorf("handler removed mid-publish still ran %d times", secondCalls)
	}
	if c.Len() != 0 {
		t.Errorf("expected empty channel, got %d", c.Len())
	}
}

func TestChannelsAreIndependent(t *testing.T) {
	w := donburi.NewWorld()
	a := NewChannel(w)
	b := NewChannel(w)

	aCalls, bCalls := 0, 0
	a.Subscribe(func() { aCalls++ })
	b.Subscribe(func() { bCalls++ })

	a.Publish()
	if aCalls != 1 || bCalls != 0 {
		t.Errorf("expected only channel a to fire, got a=%d b=%d", aCalls, bCalls)
	}
}
