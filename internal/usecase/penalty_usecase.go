package usecase

import (
	"fmt"
	"log"
	"time"

	"github.com/charlesnunot/seller-settlement-service/internal/domain"
	"github.com/charlesnunot/seller-settlement-service/internal/infrastructure/kafka"
	penaltydto "github.com/charlesnunot/seller-settlement-service/internal/usecase/dto/penalty"
	"github.com/google/uuid"
)

type PenaltyUsecase interface {
	ApplyPenaltiesForOverdue(now time.Time) (*penaltydto.SweepOutput, error)
	ResolvePenalty(sellerID, obligationID string) (*penaltydto.ResolveOutput, error)
	GetActiveBySeller(sellerID string) ([]*domain.SellerPenalty, error)
}

type DefaultPenaltyUsecase struct {
	penaltyRepo    domain.PenaltyRepository
	obligationRepo domain.ObligationRepository
	sellers        domain.SellerDirectory
	notifier       domain.SellerNotifier
	publisher      EventPublisher
	audit          domain.AuditLogger
}

func NewDefaultPenaltyUsecase(
	penaltyRepo domain.PenaltyRepository,
	obligationRepo domain.ObligationRepository,
	sellers domain.SellerDirectory,
	notifier domain.SellerNotifier,
	publisher EventPublisher,
	audit domain.AuditLogger,
) *DefaultPenaltyUsecase {
	return &DefaultPenaltyUsecase{
		penaltyRepo:    penaltyRepo,
		obligationRepo: obligationRepo,
		sellers:        sellers,
		notifier:       notifier,
		publisher:      publisher,
		audit:          audit,
	}
}

// ApplyPenaltiesForOverdue is the scheduled penalty sweep. Each past-due
// obligation climbs the seller's ladder independently; the active-penalty
// count is recounted after every application, so two obligations going
// overdue in one sweep produce two consecutive rungs. One seller's failure
// never blocks the rest of the batch, and an obligation that already carries
// a penalty row is skipped, which makes re-runs no-ops.
func (uc *DefaultPenaltyUsecase) ApplyPenaltiesForOverdue(now time.Time) (*penaltydto.SweepOutput, error) {
	obligations, err := uc.obligationRepo.FindEscalatable(now)
	if err != nil {
		return nil, err
	}

	out := &penaltydto.SweepOutput{}
	for _, obligation := range obligations {
		applied, err := uc.escalateObligation(obligation)
		if err != nil {
			// not retried here: the obligation stays overdue, the next
			// scheduled run picks it up again
			log.Printf("Penalty escalation failed for obligation %s (seller %s): %v\n", obligation.ID, obligation.SellerID, err)
			recordAudit(uc.audit, actorEngine, "penalty.apply", obligation.ID, "commission_obligation", false, err.Error())
			out.Failed++
			continue
		}
		if applied {
			out.Applied++
		} else {
			out.Skipped++
		}
	}

	return out, nil
}

func (uc *DefaultPenaltyUsecase) escalateObligation(obligation *domain.CommissionObligation) (bool, error) {
	if _, err := uc.obligationRepo.MarkOverdueCAS(obligation.ID); err != nil {
		return false, err
	}

	exists, err := uc.penaltyRepo.HasPenaltyForObligation(obligation.ID)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	activeCount, err := uc.penaltyRepo.CountActiveBySeller(obligation.SellerID)
	if err != nil {
		return false, err
	}
	tier := domain.TierForActiveCount(int(activeCount))

	// The role/listing effect goes first. If it fails, no penalty row exists
	// yet and the next sweep re-attempts the obligation; SetRole is
	// idempotent, so a crash between the effect and the row is retried safely.
	if err := uc.applyTierEffect(obligation.SellerID, tier); err != nil {
		return false, err
	}

	penalty := domain.SellerPenalty{
		ID:           uuid.New().String(),
		SellerID:     obligation.SellerID,
		ObligationID: obligation.ID,
		Tier:         tier,
		Status:       domain.PenaltyActive,
		CreatedAt:    time.Now(),
	}
	if err := uc.penaltyRepo.CreatePenalty(&penalty); err != nil {
		return false, err
	}

	uc.notifier.NotifySeller(domain.Notification{
		SellerID: obligation.SellerID,
		Kind:     "PENALTY_APPLIED",
		Message:  fmt.Sprintf("A %s penalty was applied for the unpaid commission on order %s", tier, obligation.OrderID),
		Amount:   obligation.Amount,
		Currency: obligation.Currency,
	})
	publishEvent(uc.publisher, kafka.SettlementEvent{
		Kind:       kafka.EventPenaltyApplied,
		SellerID:   obligation.SellerID,
		ResourceID: penalty.ID,
		Status:     string(tier),
		Reason:     fmt.Sprintf("overdue commission for order %s", obligation.OrderID),
	})
	recordAudit(uc.audit, actorEngine, "penalty.apply", penalty.ID, "seller_penalty", true, "")

	return true, nil
}

func (uc *DefaultPenaltyUsecase) applyTierEffect(sellerID string, tier domain.PenaltyTier) error {
	switch tier {
	case domain.TierSuspend:
		// blocks new listings and orders, preserves data
		return uc.sellers.SetRole(sellerID, domain.RoleSellerSuspended)
	case domain.TierDisable:
		if err := uc.sellers.SetRole(sellerID, domain.RoleSellerDisabled); err != nil {
			return err
		}
		return uc.sellers.HideListings(sellerID)
	}
	return nil
}

// ResolvePenalty marks the penalties created by the obligation RESOLVED and
// restores the seller's privilege level to whatever the remaining active
// penalties still demand. Resolving an obligation with no active penalties
// is a no-op.
func (uc *DefaultPenaltyUsecase) ResolvePenalty(sellerID, obligationID string) (*penaltydto.ResolveOutput, error) {
	resolved, err := uc.penaltyRepo.ResolveByObligation(sellerID, obligationID, time.Now())
	if err != nil {
		recordAudit(uc.audit, actorEngine, "penalty.resolve", obligationID, "commission_obligation", false, err.Error())
		return nil, err
	}
	if resolved == 0 {
		return &penaltydto.ResolveOutput{Resolved: 0}, nil
	}

	if err := uc.restorePrivileges(sellerID); err != nil {
		recordAudit(uc.audit, actorEngine, "penalty.resolve", obligationID, "commission_obligation", false, err.Error())
		return nil, err
	}

	plural := "penalties"
	if resolved == 1 {
		plural = "penalty"
	}
	uc.notifier.NotifySeller(domain.Notification{
		SellerID: sellerID,
		Kind:     "PENALTY_RESOLVED",
		Message:  fmt.Sprintf("%d %s resolved", resolved, plural),
	})
	publishEvent(uc.publisher, kafka.SettlementEvent{
		Kind:       kafka.EventPenaltyResolved,
		SellerID:   sellerID,
		ResourceID: obligationID,
	})
	recordAudit(uc.audit, actorEngine, "penalty.resolve", obligationID, "commission_obligation", true, "")

	return &penaltydto.ResolveOutput{Resolved: resolved}, nil
}

func (uc *DefaultPenaltyUsecase) restorePrivileges(sellerID string) error {
	remaining, err := uc.penaltyRepo.GetActiveBySeller(sellerID)
	if err != nil {
		return err
	}

	highest := highestTier(remaining)
	switch highest {
	case domain.TierDisable:
		return nil
	case domain.TierSuspend:
		return uc.sellers.SetRole(sellerID, domain.RoleSellerSuspended)
	default:
		return uc.sellers.RestorePrivileges(sellerID)
	}
}

func (uc *DefaultPenaltyUsecase) GetActiveBySeller(sellerID string) ([]*domain.SellerPenalty, error) {
	return uc.penaltyRepo.GetActiveBySeller(sellerID)
}

func highestTier(penalties []*domain.SellerPenalty) domain.PenaltyTier {
	rank := map[domain.PenaltyTier]int{
		domain.TierWarning:       0,
		domain.TierRestrictSales: 1,
		domain.TierSuspend:       2,
		domain.TierDisable:       3,
	}
	highest := domain.PenaltyTier("")
	best := -1
	for _, penalty := range penalties {
		if r, ok := rank[penalty.Tier]; ok && r > best {
			best = r
			highest = penalty.Tier
		}
	}
	return highest
}
