package orders

import "sync"

// Log is the in-memory list of finalized orders. Append-only, not
// persisted; the orders view receives a by-value snapshot.
type Log struct {
	mu     sync.RWMutex
	orders []Order
}

func NewLog() *Log { return &Log{} }

func (l *Log) Append(o Order) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.orders = append(l.orders, o)
}

// Snapshot copies the log in finalization order.
func (l *Log) Snapshot() []Order {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Order, len(l.orders))
	copy(out, l.orders)
	return out
}

func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.orders)
}
