package usecase

import "github.com/charlesnunot/seller-settlement-service/internal/infrastructure/kafka"

// EventPublisher is implemented by kafka.SettlementPublisher; usecase tests
// substitute an in-memory fake.
type EventPublisher interface {
	PublishSettlementEvent(event kafka.SettlementEvent) error
}
