package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/charlesnunot/seller-settlement-service/internal/domain"
)

type penaltyFixture struct {
	uc             *DefaultPenaltyUsecase
	penaltyRepo    *fakePenaltyRepo
	obligationRepo *fakeObligationRepo
	sellers        *fakeSellerDirectory
	notifier       *fakeNotifier
	publisher      *fakePublisher
}

func newPenaltyFixture() *penaltyFixture {
	penaltyRepo := newFakePenaltyRepo()
	obligationRepo := newFakeObligationRepo()
	sellers := newFakeSellerDirectory()
	notifier := &fakeNotifier{}
	publisher := &fakePublisher{}
	uc := NewDefaultPenaltyUsecase(penaltyRepo, obligationRepo, sellers, notifier, publisher, &fakeAudit{})
	return &penaltyFixture{
		uc:             uc,
		penaltyRepo:    penaltyRepo,
		obligationRepo: obligationRepo,
		sellers:        sellers,
		notifier:       notifier,
		publisher:      publisher,
	}
}

func pastDueObligation(id, sellerID string, now time.Time) *domain.CommissionObligation {
	return &domain.CommissionObligation{
		ID:       id,
		SellerID: sellerID,
		OrderID:  "order-" + id,
		Amount:   100,
		Currency: "USD",
		DueDate:  now.Add(-24 * time.Hour),
		Status:   domain.ObligationPending,
	}
}

func activeTiers(t *testing.T, repo *fakePenaltyRepo, sellerID string) map[domain.PenaltyTier]int {
	t.Helper()
	penalties, err := repo.GetActiveBySeller(sellerID)
	if err != nil {
		t.Fatalf("GetActiveBySeller() error = %v", err)
	}
	tiers := make(map[domain.PenaltyTier]int)
	for _, penalty := range penalties {
		tiers[penalty.Tier]++
	}
	return tiers
}

func TestSweep_LadderClimbsPerObligation(t *testing.T) {
	f := newPenaltyFixture()
	now := time.Now()
	f.obligationRepo.CreateObligation(pastDueObligation("ob-1", "seller-1", now))
	f.obligationRepo.CreateObligation(pastDueObligation("ob-2", "seller-1", now))

	out, err := f.uc.ApplyPenaltiesForOverdue(now)
	if err != nil {
		t.Fatalf("ApplyPenaltiesForOverdue() error = %v", err)
	}
	if out.Applied != 2 {
		t.Fatalf("Applied = %d, want 2", out.Applied)
	}

	tiers := activeTiers(t, f.penaltyRepo, "seller-1")
	if tiers[domain.TierWarning] != 1 || tiers[domain.TierRestrictSales] != 1 {
		t.Errorf("tiers = %v, want one WARNING and one RESTRICT_SALES", tiers)
	}

	ob1, _ := f.obligationRepo.GetObligationByID("ob-1")
	if ob1.Status != domain.ObligationOverdue {
		t.Errorf("obligation status = %v, want OVERDUE", ob1.Status)
	}
}

func TestSweep_RepeatRunIsNoOp(t *testing.T) {
	f := newPenaltyFixture()
	now := time.Now()
	f.obligationRepo.CreateObligation(pastDueObligation("ob-1", "seller-1", now))

	if _, err := f.uc.ApplyPenaltiesForOverdue(now); err != nil {
		t.Fatalf("first sweep error = %v", err)
	}
	out, err := f.uc.ApplyPenaltiesForOverdue(now)
	if err != nil {
		t.Fatalf("second sweep error = %v", err)
	}
	if out.Applied != 0 || out.Skipped != 1 {
		t.Errorf("second sweep = %+v, want Applied=0 Skipped=1", out)
	}

	count, _ := f.penaltyRepo.CountActiveBySeller("seller-1")
	if count != 1 {
		t.Errorf("active penalties = %d, want 1", count)
	}
}

func TestSweep_TierClampsAtDisable(t *testing.T) {
	f := newPenaltyFixture()
	now := time.Now()
	for _, id := range []string{"ob-1", "ob-2", "ob-3", "ob-4", "ob-5"} {
		f.obligationRepo.CreateObligation(pastDueObligation(id, "seller-1", now))
	}

	out, err := f.uc.ApplyPenaltiesForOverdue(now)
	if err != nil {
		t.Fatalf("ApplyPenaltiesForOverdue() error = %v", err)
	}
	if out.Applied != 5 {
		t.Fatalf("Applied = %d, want 5", out.Applied)
	}

	tiers := activeTiers(t, f.penaltyRepo, "seller-1")
	if tiers[domain.TierDisable] != 2 {
		t.Errorf("DISABLE penalties = %d, want 2 (clamped at the last rung)", tiers[domain.TierDisable])
	}

	profile, _ := f.sellers.GetSeller("seller-1")
	if profile.Role != domain.RoleSellerDisabled {
		t.Errorf("seller role = %v, want SELLER_DISABLED", profile.Role)
	}
	if !f.sellers.hidden["seller-1"] {
		t.Error("listings should be hidden at DISABLE")
	}
}

func TestSweep_SuspendSetsRole(t *testing.T) {
	f := newPenaltyFixture()
	now := time.Now()
	for _, id := range []string{"ob-1", "ob-2", "ob-3"} {
		f.obligationRepo.CreateObligation(pastDueObligation(id, "seller-1", now))
	}

	if _, err := f.uc.ApplyPenaltiesForOverdue(now); err != nil {
		t.Fatalf("ApplyPenaltiesForOverdue() error = %v", err)
	}

	profile, _ := f.sellers.GetSeller("seller-1")
	if profile.Role != domain.RoleSellerSuspended {
		t.Errorf("seller role = %v, want SELLER_SUSPENDED", profile.Role)
	}
	if f.sellers.hidden["seller-1"] {
		t.Error("listings should stay visible at SUSPEND")
	}
}

func TestSweep_OneSellerFailureDoesNotBlockOthers(t *testing.T) {
	f := newPenaltyFixture()
	now := time.Now()
	f.obligationRepo.CreateObligation(pastDueObligation("ob-1", "seller-bad", now))
	f.obligationRepo.CreateObligation(pastDueObligation("ob-2", "seller-good", now))
	f.penaltyRepo.createErr = errors.New("write refused")

	out, err := f.uc.ApplyPenaltiesForOverdue(now)
	if err != nil {
		t.Fatalf("ApplyPenaltiesForOverdue() error = %v", err)
	}
	if out.Failed != 2 || out.Applied != 0 {
		t.Fatalf("sweep = %+v, want both failed while repo is down", out)
	}

	// repo recovers; both obligations are picked up again
	f.penaltyRepo.createErr = nil
	out, err = f.uc.ApplyPenaltiesForOverdue(now)
	if err != nil {
		t.Fatalf("second sweep error = %v", err)
	}
	if out.Applied != 2 {
		t.Errorf("Applied after recovery = %d, want 2", out.Applied)
	}
}

func TestSweep_RoleFailureLeavesObligationRetryable(t *testing.T) {
	f := newPenaltyFixture()
	now := time.Now()
	// staggered due dates pin the ladder order; ob-3 lands on SUSPEND
	for i, id := range []string{"ob-1", "ob-2", "ob-3"} {
		obligation := pastDueObligation(id, "seller-1", now)
		obligation.DueDate = now.Add(time.Duration(-72+i*24) * time.Hour)
		f.obligationRepo.CreateObligation(obligation)
	}
	f.sellers.setErr = errors.New("directory unavailable")

	out, err := f.uc.ApplyPenaltiesForOverdue(now)
	if err != nil {
		t.Fatalf("ApplyPenaltiesForOverdue() error = %v", err)
	}
	if out.Applied != 2 || out.Failed != 1 {
		t.Fatalf("sweep = %+v, want WARNING and RESTRICT_SALES applied, SUSPEND failed", out)
	}
	// no penalty row may exist for the failed obligation, or it would be
	// skipped on every future run with the role never set
	exists, _ := f.penaltyRepo.HasPenaltyForObligation("ob-3")
	if exists {
		t.Fatal("penalty row exists for ob-3 although the role change failed")
	}

	// directory recovers; the obligation is still overdue and escalates
	f.sellers.setErr = nil
	out, err = f.uc.ApplyPenaltiesForOverdue(now)
	if err != nil {
		t.Fatalf("second sweep error = %v", err)
	}
	if out.Applied != 1 || out.Skipped != 2 {
		t.Fatalf("second sweep = %+v, want only ob-3 applied", out)
	}
	profile, _ := f.sellers.GetSeller("seller-1")
	if profile.Role != domain.RoleSellerSuspended {
		t.Errorf("seller role = %v, want SELLER_SUSPENDED after recovery", profile.Role)
	}
	if exists, _ := f.penaltyRepo.HasPenaltyForObligation("ob-3"); !exists {
		t.Error("SUSPEND penalty row missing after recovery")
	}
}

func TestResolvePenalty_RestoresPrivileges(t *testing.T) {
	f := newPenaltyFixture()
	now := time.Now()
	f.obligationRepo.CreateObligation(pastDueObligation("ob-1", "seller-1", now))
	if _, err := f.uc.ApplyPenaltiesForOverdue(now); err != nil {
		t.Fatalf("sweep error = %v", err)
	}

	out, err := f.uc.ResolvePenalty("seller-1", "ob-1")
	if err != nil {
		t.Fatalf("ResolvePenalty() error = %v", err)
	}
	if out.Resolved != 1 {
		t.Errorf("Resolved = %d, want 1", out.Resolved)
	}

	count, _ := f.penaltyRepo.CountActiveBySeller("seller-1")
	if count != 0 {
		t.Errorf("active penalties = %d, want 0", count)
	}
	profile, _ := f.sellers.GetSeller("seller-1")
	if profile.Role != domain.RoleSeller {
		t.Errorf("seller role = %v, want SELLER", profile.Role)
	}
}

func TestResolvePenalty_KeepsHighestRemainingTier(t *testing.T) {
	f := newPenaltyFixture()
	now := time.Now()
	// staggered due dates pin the ladder order: ob-1 WARNING, ob-2
	// RESTRICT_SALES, ob-3 SUSPEND
	for i, id := range []string{"ob-1", "ob-2", "ob-3"} {
		obligation := pastDueObligation(id, "seller-1", now)
		obligation.DueDate = now.Add(time.Duration(-72+i*24) * time.Hour)
		f.obligationRepo.CreateObligation(obligation)
	}
	if _, err := f.uc.ApplyPenaltiesForOverdue(now); err != nil {
		t.Fatalf("sweep error = %v", err)
	}

	// resolving the WARNING leaves RESTRICT_SALES and SUSPEND active
	if _, err := f.uc.ResolvePenalty("seller-1", "ob-1"); err != nil {
		t.Fatalf("ResolvePenalty() error = %v", err)
	}
	profile, _ := f.sellers.GetSeller("seller-1")
	if profile.Role != domain.RoleSellerSuspended {
		t.Errorf("seller role = %v, want SELLER_SUSPENDED while a SUSPEND remains", profile.Role)
	}
}

func TestResolvePenalty_NoActivePenaltiesIsNoOp(t *testing.T) {
	f := newPenaltyFixture()

	out, err := f.uc.ResolvePenalty("seller-1", "ob-unknown")
	if err != nil {
		t.Fatalf("ResolvePenalty() error = %v", err)
	}
	if out.Resolved != 0 {
		t.Errorf("Resolved = %d, want 0", out.Resolved)
	}
	if len(f.notifier.notifications) != 0 {
		t.Errorf("notifications = %d, want 0", len(f.notifier.notifications))
	}
}
