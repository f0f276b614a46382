package notifier

import (
	"context"
	"sync"
)

const subscriberBuffer = 16

// Event is what subscribers of the broker receive; exactly one payload is set
type Event struct {
	Type      EventType
	Timer     *TimerUpdateEvent
	Completed *SessionCompletedEvent
	Cancelled *SessionCancelledEvent
}

// Broker is an in-process pub/sub keyed by session ID. Slow subscribers miss
// events rather than stall the publisher.
type Broker struct {
	mu   sync.RWMutex
	subs map[string]map[chan Event]struct{}
}

func NewBroker() *Broker {
	return &Broker{
		subs: make(map[string]map[chan Event]struct{}),
	}
}

// Subscribe returns a channel that receives events for the given session
func (b *Broker) Subscribe(sessionID string) chan Event {
	ch := make(chan Event, subscriberBuffer)
	b.mu.Lock()
	if b.subs[sessionID] == nil {
		b.subs[sessionID] = make(map[chan Event]struct{})
	}
	b.subs[sessionID][ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes a channel from the session's subscribers and closes it
func (b *Broker) Unsubscribe(sessionID string, ch chan Event) {
	b.mu.Lock()
	if _, ok := b.subs[sessionID][ch]; ok {
		delete(b.subs[sessionID], ch)
		close(ch)
	}
	if len(b.subs[sessionID]) == 0 {
		delete(b.subs, sessionID)
	}
	b.mu.Unlock()
}

// Subscribers returns the number of subscribers of a session
func (b *Broker) Subscribers(sessionID string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[sessionID])
}

func (b *Broker) publish(sessionID string, event Event) {
	b.mu.RLock()
	for ch := range b.subs[sessionID] {
		select {
		case ch <- event:
		default:
			// Drop if subscriber is slow.
		}
	}
	b.mu.RUnlock()
}

// TimerUpdate publishes a tick to the session's subscribers
func (b *Broker) TimerUpdate(_ context.Context, event *TimerUpdateEvent) {
	if event == nil {
		return
	}
	b.publish(event.SessionID, Event{Type: EventTimerUpdate, Timer: event})
}

// SessionCompleted publishes the completion to the session's subscribers
func (b *Broker) SessionCompleted(_ context.Context, event *SessionCompletedEvent) {
	if event == nil {
		return
	}
	b.publish(event.SessionID, Event{Type: EventSessionCompleted, Completed: event})
}

// SessionCancelled publishes the cancellation to the session's subscribers
func (b *Broker) SessionCancelled(_ context.Context, event *SessionCancelledEvent) {
	if event == nil {
		return
	}
	b.publish(event.SessionID, Event{Type: EventSessionCancelled, Cancelled: event})
}
