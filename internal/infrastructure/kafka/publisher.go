package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
)

type SettlementPublisher struct {
	writer *kafka.Writer
}

func NewSettlementPublisher(brokers []string, topic string) *SettlementPublisher {
	return &SettlementPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// PublishSettlementEvent writes the event keyed by seller id, so all events
// for one seller land on the same partition in order.
func (k *SettlementPublisher) PublishSettlementEvent(event SettlementEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return k.writer.WriteMessages(context.Background(), kafka.Message{
		Key:   []byte(event.SellerID),
		Value: v,
		Time:  time.Now(),
	})
}

func (k *SettlementPublisher) Close() error {
	return k.writer.Close()
}
