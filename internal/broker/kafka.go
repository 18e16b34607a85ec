package broker

import (
	"context"
	"errors"
	"time"

	kafka "github.com/segmentio/kafka-go"

	"github.com/McZenith/liza.ai.server/internal/message"
)

// KafkaConfig configures the optional production broker for the warm-up
// region queue.
type KafkaConfig struct {
	Brokers      []string      `yaml:"Brokers"`
	Topic        string        `yaml:"Topic"`
	GroupID      string        `yaml:"GroupID"`
	WriteTimeout time.Duration `yaml:"WriteTimeout"`
	ReadTimeout  time.Duration `yaml:"ReadTimeout"`
}

// Kafka is a Broker backed by segmentio/kafka-go, used in place of Memory
// when the deployment needs the warm-up queue to survive process
// restarts or to be shared across instances.
type Kafka struct {
	cfg    *KafkaConfig
	writer *kafka.Writer
	reader *kafka.Reader
}

// NewKafka dials the configured topic for both producing and consuming.
func NewKafka(cfg *KafkaConfig) *Kafka {
	writeTimeout := cfg.WriteTimeout
	if writeTimeout <= 0 {
		writeTimeout = 10 * time.Second
	}
	readTimeout := cfg.ReadTimeout
	if readTimeout <= 0 {
		readTimeout = 10 * time.Second
	}
	return &Kafka{
		cfg: cfg,
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.LeastBytes{},
			WriteTimeout: writeTimeout,
		},
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			Topic:   cfg.Topic,
			GroupID: cfg.GroupID,
			MaxWait: readTimeout,
		}),
	}
}

func (k *Kafka) Produce(ctx context.Context, msgs ...*message.Msg) error {
	kmsgs := make([]kafka.Message, 0, len(msgs))
	for _, m := range msgs {
		kmsgs = append(kmsgs, kafka.Message{Value: m.Payload()})
	}
	return k.writer.WriteMessages(ctx, kmsgs...)
}

func (k *Kafka) Consume(ctx context.Context) (*message.Msg, message.ID, error) {
	km, err := k.reader.FetchMessage(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	return message.New(km.Value), km.Offset, nil
}

func (k *Kafka) Ack(ctx context.Context, id message.ID) error {
	offset, ok := id.(int64)
	if !ok {
		return nil
	}
	return k.reader.CommitMessages(ctx, kafka.Message{Offset: offset})
}

func (k *Kafka) Nack(_ context.Context, _ message.ID) error {
	// consumer group will redeliver on next rebalance; nothing to do
	// explicitly since the offset was never committed.
	return nil
}

func (k *Kafka) Close() error {
	return errors.Join(k.writer.Close(), k.reader.Close())
}
