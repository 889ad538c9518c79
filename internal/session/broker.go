package session

import (
	"sync"
	"sync/atomic"
)

type EventType string

const (
	EventSignedIn  EventType = "signed_in"
	EventSignedOut EventType = "signed_out"
)

type Event struct {
	Type    EventType
	Session Session
}

const subscriberBuffer = 16

// Broker distribui eventos de sessão. Publish nunca bloqueia: se o canal do
// assinante estiver cheio o evento é descartado para ele.
type Broker struct {
	mu          sync.RWMutex
	subscribers map[int]chan Event
	nextID      int
	closed      bool
	dropped     atomic.Uint64
}

func NewBroker() *Broker {
	return &Broker{
		subscribers: make(map[int]chan Event),
	}
}

// Subscribe retorna o canal de eventos e a função para cancelar a assinatura
func (b *Broker) Subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, subscriberBuffer)
	if b.closed {
		close(ch)
		return ch, func() {}
	}

	id := b.nextID
	b.nextID++
	b.subscribers[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if sub, ok := b.subscribers[id]; ok {
				delete(b.subscribers, id)
				close(sub)
			}
		})
	}
}

func (b *Broker) Publish(event Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}

	for _, ch := range b.subscribers {
		select {
		case ch <- event:
		default:
			b.dropped.Add(1)
		}
	}
}

// Dropped retorna quantos eventos foram descartados por assinantes lentos
func (b *Broker) Dropped() uint64 {
	return b.dropped.Load()
}

// Close fecha todos os canais; publicações posteriores são ignoradas
func (b *Broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true

	for id, ch := range b.subscribers {
		delete(b.subscribers, id)
		close(ch)
	}
}
