package kafka

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"

	appoutbox "smarthost/internal/app/outbox"
)

type Producer struct {
	sync sarama.SyncProducer
}

// NewConfig returns the producer settings: every replica acknowledges and the
// broker deduplicates retried sends.
func NewConfig(clientID string) *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.ClientID = clientID
	cfg.Version = sarama.V2_1_0_0
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Idempotent = true
	cfg.Producer.Return.Successes = true
	cfg.Producer.Retry.Max = 5
	cfg.Net.MaxOpenRequests = 1
	return cfg
}

func NewProducer(brokers []string, cfg *sarama.Config) (*Producer, error) {
	if cfg == nil {
		cfg = NewConfig("smarthost")
	}
	sync, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("kafka: producer: %w", err)
	}
	return &Producer{sync: sync}, nil
}

// NewProducerFrom wraps an existing client, such as a sarama mock.
func NewProducerFrom(sync sarama.SyncProducer) *Producer {
	return &Producer{sync: sync}
}

func (p *Producer) Publish(ctx context.Context, topic string, key string, payload []byte, headers map[string]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var hs []sarama.RecordHeader
	for k, v := range headers {
		hs = append(hs, sarama.RecordHeader{Key: []byte(k), Value: []byte(v)})
	}
	msg := &sarama.ProducerMessage{
		Topic:   topic,
		Key:     sarama.StringEncoder(key),
		Value:   sarama.ByteEncoder(payload),
		Headers: hs,
	}
	if _, _, err := p.sync.SendMessage(msg); err != nil {
		return fmt.Errorf("kafka: send %s: %w", topic, err)
	}
	return nil
}

func (p *Producer) Close() error {
	if p.sync == nil {
		return nil
	}
	return p.sync.Close()
}

var _ appoutbox.Producer = (*Producer)(nil)
