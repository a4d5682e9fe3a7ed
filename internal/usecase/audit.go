package usecase

import (
	"log"
	"time"

	"github.com/charlesnunot/seller-settlement-service/internal/domain"
	"github.com/charlesnunot/seller-settlement-service/internal/infrastructure/kafka"
)

// recordAudit writes the outcome of a state-changing call. Audit failures are
// logged, never propagated: losing an audit row must not fail the financial
// operation it describes.
func recordAudit(audit domain.AuditLogger, actor, action, resourceID, resourceType string, success bool, failReason string) {
	err := audit.Record(domain.AuditEntry{
		Actor:        actor,
		Action:       action,
		ResourceID:   resourceID,
		ResourceType: resourceType,
		Success:      success,
		FailReason:   failReason,
		At:           time.Now(),
	})
	if err != nil {
		log.Printf("Failed to write audit record for %s: %v\n", action, err)
	}
}

func publishEvent(publisher EventPublisher, event kafka.SettlementEvent) {
	if err := publisher.PublishSettlementEvent(event); err != nil {
		log.Printf("Failed to publish %s event: %v\n", event.Kind, err)
	}
}

const actorEngine = "settlement-engine"
