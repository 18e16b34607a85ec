// Package broker abstracts the warm-up region work queue: a Broker
// produces messages onto a queue and consumes/acks/nacks them, decoupling
// the scheduled trigger from the StreamWorker that actually runs warm-up.
package broker

import (
	"context"
	"io"

	"github.com/McZenith/liza.ai.server/internal/message"
)

// Producer enqueues messages.
type Producer interface {
	Produce(ctx context.Context, msgs ...*message.Msg) error
}

// Consumer dequeues and acknowledges messages.
type Consumer interface {
	Consume(ctx context.Context) (*message.Msg, message.ID, error)
	Ack(ctx context.Context, id message.ID) error
	Nack(ctx context.Context, id message.ID) error
}

// Broker is a Producer and Consumer pair bound to one queue/topic.
type Broker interface {
	Producer
	Consumer
	io.Closer
}
