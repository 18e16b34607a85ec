package broker

import (
	"context"
	"sync"

	"github.com/McZenith/liza.ai.server/internal/message"
)

// Memory is the in-process default Broker: an unbounded FIFO slice queue with
// no external dependency, used whenever KAFKA_BROKERS is unset.
type Memory struct {
	mu     sync.Mutex
	queue  []*message.Msg
	nextID int
	closed bool
}

// NewMemory creates an empty in-process queue.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Produce(_ context.Context, msgs ...*message.Msg) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, msgs...)
	return nil
}

func (m *Memory) Consume(_ context.Context) (*message.Msg, message.ID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.queue) == 0 {
		return nil, nil, nil
	}
	msg := m.queue[0]
	m.queue = m.queue[1:]
	m.nextID++
	return msg, m.nextID, nil
}

func (m *Memory) Ack(_ context.Context, _ message.ID) error {
	return nil
}

func (m *Memory) Nack(ctx context.Context, _ message.ID) error {
	return nil
}

func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
