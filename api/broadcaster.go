package api

import (
	"sync"
)

// InstructionEvent is broadcast once per instruction of a program that
// /assemble has encoded successfully (spec.md §4.12).
type InstructionEvent struct {
	Address uint32 `json:"address"`
	Word    string `json:"word"`
	Line    string `json:"line"`
}

// Subscription represents a client's subscription to assembly events.
type Subscription struct {
	Channel chan InstructionEvent
}

// Broadcaster manages event distribution to multiple WebSocket clients.
// It uses a fan-out pattern where events are broadcast to all subscribed
// clients, adapted from the teacher's hub/broadcaster pattern.
type Broadcaster struct {
	mu            sync.RWMutex
	subscriptions map[*Subscription]bool
	broadcast     chan InstructionEvent
	register      chan *Subscription
	unregister    chan *Subscription
	done          chan struct{}
}

// NewBroadcaster creates and starts a new event broadcaster
func NewBroadcaster() *Broadcaster {
	b := &Broadcaster{
		subscriptions: make(map[*Subscription]bool),
		broadcast:     make(chan InstructionEvent, 256),
		register:      make(chan *Subscription),
		unregister:    make(chan *Subscription),
		done:          make(chan struct{}),
	}

	go b.run()
	return b
}

func (b *Broadcaster) run() {
	for {
		select {
		case sub := <-b.register:
			b.mu.Lock()
			b.subscriptions[sub] = true
			b.mu.Unlock()

		case sub := <-b.unregister:
			b.mu.Lock()
			if b.subscriptions[sub] {
				delete(b.subscriptions, sub)
				close(sub.Channel)
			}
			b.mu.Unlock()

		case event := <-b.broadcast:
			b.mu.RLock()
			for sub := range b.subscriptions {
				select {
				case sub.Channel <- event:
				default:
					// slow client: drop the event rather than block the broadcaster
				}
			}
			b.mu.RUnlock()

		case <-b.done:
			b.mu.Lock()
			for sub := range b.subscriptions {
				close(sub.Channel)
			}
			b.subscriptions = make(map[*Subscription]bool)
			b.mu.Unlock()
			return
		}
	}
}

// Subscribe creates a new subscription for events.
func (b *Broadcaster) Subscribe() *Subscription {
	sub := &Subscription{Channel: make(chan InstructionEvent, 64)}
	b.register <- sub
	return sub
}

// Unsubscribe removes a subscription and closes its channel
func (b *Broadcaster) Unsubscribe(sub *Subscription) {
	b.unregister <- sub
}

// Broadcast sends an event to all subscriptions.
func (b *Broadcaster) Broadcast(event InstructionEvent) {
	select {
	case b.broadcast <- event:
	default:
		// broadcast channel full: drop rather than block the assembler
	}
}

// Close shuts down the broadcaster and closes all subscriptions
func (b *Broadcaster) Close() {
	close(b.done)
}

// SubscriptionCount returns the number of active subscriptions
func (b *Broadcaster) SubscriptionCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscriptions)
}
