package usecase

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/charlesnunot/seller-settlement-service/internal/domain"
	"github.com/charlesnunot/seller-settlement-service/internal/infrastructure/kafka"
)

// In-memory fakes shared by the usecase tests. They keep the same invariants
// the postgres repositories enforce: guarded status updates, oldest-first lot
// consumption, uniqueness per related id.

type fakeLotRepo struct {
	mu   sync.Mutex
	lots map[string]*domain.DepositLot
}

func newFakeLotRepo() *fakeLotRepo {
	return &fakeLotRepo{lots: make(map[string]*domain.DepositLot)}
}

func (r *fakeLotRepo) CreateLot(lot *domain.DepositLot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *lot
	r.lots[lot.ID] = &copied
	return nil
}

func (r *fakeLotRepo) GetLotByID(lotID string) (*domain.DepositLot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	lot, ok := r.lots[lotID]
	if !ok {
		return nil, fmt.Errorf("%w: lot %s", domain.ErrNotFound, lotID)
	}
	copied := *lot
	return &copied, nil
}

func (r *fakeLotRepo) GetLotsBySellerID(sellerID string) ([]*domain.DepositLot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.DepositLot
	for _, lot := range r.lots {
		if lot.SellerID == sellerID {
			copied := *lot
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeLotRepo) UpdateLotStatusCAS(lotID string, from, to domain.DepositLotStatus, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	lot, ok := r.lots[lotID]
	if !ok {
		return false, fmt.Errorf("%w: lot %s", domain.ErrNotFound, lotID)
	}
	if lot.Status != from {
		return false, nil
	}
	lot.Status = to
	switch to {
	case domain.DepositHeld:
		lot.HeldAt = &at
		lot.Balance = lot.RequiredAmount
	case domain.DepositRefundable:
		lot.RefundableAt = &at
	case domain.DepositRefunded:
		lot.RefundedAt = &at
	}
	return true, nil
}

func (r *fakeLotRepo) MatureLots(now time.Time, holdingPeriod time.Duration) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matured int64
	for _, lot := range r.lots {
		if lot.Status == domain.DepositHeld && lot.HeldAt != nil && !lot.HeldAt.After(now.Add(-holdingPeriod)) {
			lot.Status = domain.DepositRefundable
			at := now
			lot.RefundableAt = &at
			matured++
		}
	}
	return matured, nil
}

func (r *fakeLotRepo) HeldBalance(sellerID string) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var total float64
	for _, lot := range r.lots {
		if lot.SellerID == sellerID && lot.Status == domain.DepositHeld {
			total += lot.Balance
		}
	}
	return total, nil
}

func (r *fakeLotRepo) DeductFromHeld(sellerID string, amount float64) (float64, float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var held []*domain.DepositLot
	for _, lot := range r.lots {
		if lot.SellerID == sellerID && lot.Status == domain.DepositHeld {
			held = append(held, lot)
		}
	}
	sort.Slice(held, func(i, j int) bool {
		return held[i].HeldAt.Before(*held[j].HeldAt)
	})

	remaining := amount
	var deducted float64
	for _, lot := range held {
		if remaining <= 0 {
			break
		}
		take := lot.Balance
		if take > remaining {
			take = remaining
		}
		lot.Balance -= take
		deducted += take
		remaining -= take
	}

	var balanceLeft float64
	for _, lot := range held {
		balanceLeft += lot.Balance
	}
	return deducted, balanceLeft, nil
}

type fakeObligationRepo struct {
	mu          sync.Mutex
	obligations map[string]*domain.CommissionObligation
}

func newFakeObligationRepo() *fakeObligationRepo {
	return &fakeObligationRepo{obligations: make(map[string]*domain.CommissionObligation)}
}

func (r *fakeObligationRepo) CreateObligation(obligation *domain.CommissionObligation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *obligation
	r.obligations[obligation.ID] = &copied
	return nil
}

func (r *fakeObligationRepo) GetObligationByID(obligationID string) (*domain.CommissionObligation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	obligation, ok := r.obligations[obligationID]
	if !ok {
		return nil, fmt.Errorf("%w: obligation %s", domain.ErrNotFound, obligationID)
	}
	copied := *obligation
	return &copied, nil
}

func (r *fakeObligationRepo) FindOverdue(now time.Time) ([]*domain.CommissionObligation, error) {
	return r.find(func(o *domain.CommissionObligation) bool {
		return o.Status == domain.ObligationPending && o.DueDate.Before(now)
	})
}

func (r *fakeObligationRepo) FindEscalatable(now time.Time) ([]*domain.CommissionObligation, error) {
	return r.find(func(o *domain.CommissionObligation) bool {
		return (o.Status == domain.ObligationPending || o.Status == domain.ObligationOverdue) && o.DueDate.Before(now)
	})
}

func (r *fakeObligationRepo) FindDueSoon(now time.Time, within time.Duration) ([]*domain.CommissionObligation, error) {
	return r.find(func(o *domain.CommissionObligation) bool {
		return o.Status == domain.ObligationPending && o.DueDate.After(now) && o.DueDate.Before(now.Add(within))
	})
}

func (r *fakeObligationRepo) find(match func(*domain.CommissionObligation) bool) ([]*domain.CommissionObligation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.CommissionObligation
	for _, obligation := range r.obligations {
		if match(obligation) {
			copied := *obligation
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DueDate.Before(out[j].DueDate) })
	return out, nil
}

func (r *fakeObligationRepo) MarkOverdueCAS(obligationID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	obligation, ok := r.obligations[obligationID]
	if !ok {
		return false, fmt.Errorf("%w: obligation %s", domain.ErrNotFound, obligationID)
	}
	if obligation.Status != domain.ObligationPending {
		return false, nil
	}
	obligation.Status = domain.ObligationOverdue
	return true, nil
}

func (r *fakeObligationRepo) MarkPaidCAS(obligationID string) (domain.ObligationStatus, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	obligation, ok := r.obligations[obligationID]
	if !ok {
		return "", false, fmt.Errorf("%w: obligation %s", domain.ErrNotFound, obligationID)
	}
	previous := obligation.Status
	if previous == domain.ObligationPaid {
		return previous, false, nil
	}
	obligation.Status = domain.ObligationPaid
	return previous, true, nil
}

type fakePenaltyRepo struct {
	mu        sync.Mutex
	penalties map[string]*domain.SellerPenalty
	createErr error
}

func newFakePenaltyRepo() *fakePenaltyRepo {
	return &fakePenaltyRepo{penalties: make(map[string]*domain.SellerPenalty)}
}

func (r *fakePenaltyRepo) CreatePenalty(penalty *domain.SellerPenalty) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	copied := *penalty
	r.penalties[penalty.ID] = &copied
	return nil
}

func (r *fakePenaltyRepo) CountActiveBySeller(sellerID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, penalty := range r.penalties {
		if penalty.SellerID == sellerID && penalty.Status == domain.PenaltyActive {
			count++
		}
	}
	return count, nil
}

func (r *fakePenaltyRepo) GetActiveBySeller(sellerID string) ([]*domain.SellerPenalty, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.SellerPenalty
	for _, penalty := range r.penalties {
		if penalty.SellerID == sellerID && penalty.Status == domain.PenaltyActive {
			copied := *penalty
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakePenaltyRepo) HasPenaltyForObligation(obligationID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, penalty := range r.penalties {
		if penalty.ObligationID == obligationID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakePenaltyRepo) ResolveByObligation(sellerID, obligationID string, at time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var resolved int64
	for _, penalty := range r.penalties {
		if penalty.SellerID == sellerID && penalty.ObligationID == obligationID && penalty.Status == domain.PenaltyActive {
			penalty.Status = domain.PenaltyResolved
			resolvedAt := at
			penalty.ResolvedAt = &resolvedAt
			resolved++
		}
	}
	return resolved, nil
}

type fakeDebtRepo struct {
	mu    sync.Mutex
	debts map[string]*domain.SellerDebt
}

func newFakeDebtRepo() *fakeDebtRepo {
	return &fakeDebtRepo{debts: make(map[string]*domain.SellerDebt)}
}

func (r *fakeDebtRepo) CreateDebt(debt *domain.SellerDebt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *debt
	r.debts[debt.ID] = &copied
	return nil
}

func (r *fakeDebtRepo) GetDebtByID(debtID string) (*domain.SellerDebt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	debt, ok := r.debts[debtID]
	if !ok {
		return nil, fmt.Errorf("%w: debt %s", domain.ErrNotFound, debtID)
	}
	copied := *debt
	return &copied, nil
}

func (r *fakeDebtRepo) GetDebtsBySellerID(sellerID string) ([]*domain.SellerDebt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.SellerDebt
	for _, debt := range r.debts {
		if debt.SellerID == sellerID {
			copied := *debt
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeDebtRepo) ExistsByRefundID(refundID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, debt := range r.debts {
		if debt.RefundID == refundID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeDebtRepo) UpdateDebtStatusCAS(debtID string, from, to domain.DebtStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	debt, ok := r.debts[debtID]
	if !ok {
		return false, fmt.Errorf("%w: debt %s", domain.ErrNotFound, debtID)
	}
	if debt.Status != from {
		return false, nil
	}
	debt.Status = to
	return true, nil
}

type fakeCompensationRepo struct {
	mu            sync.Mutex
	compensations map[string]*domain.PaymentCompensation
	byRelated     map[string]string
}

func newFakeCompensationRepo() *fakeCompensationRepo {
	return &fakeCompensationRepo{
		compensations: make(map[string]*domain.PaymentCompensation),
		byRelated:     make(map[string]string),
	}
}

func (r *fakeCompensationRepo) CreateIfAbsent(compensation *domain.PaymentCompensation) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byRelated[compensation.RelatedID]; exists {
		return false, nil
	}
	copied := *compensation
	r.compensations[compensation.ID] = &copied
	r.byRelated[compensation.RelatedID] = compensation.ID
	return true, nil
}

func (r *fakeCompensationRepo) GetCompensationByID(compensationID string) (*domain.PaymentCompensation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	compensation, ok := r.compensations[compensationID]
	if !ok {
		return nil, fmt.Errorf("%w: compensation %s", domain.ErrNotFound, compensationID)
	}
	copied := *compensation
	return &copied, nil
}

func (r *fakeCompensationRepo) FindByStatus(status domain.CompensationStatus, limit int) ([]*domain.PaymentCompensation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.PaymentCompensation
	for _, compensation := range r.compensations {
		if compensation.Status == status && len(out) < limit {
			copied := *compensation
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeCompensationRepo) UpdateCompensationStatusCAS(compensationID string, from, to domain.CompensationStatus, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	compensation, ok := r.compensations[compensationID]
	if !ok {
		return false, fmt.Errorf("%w: compensation %s", domain.ErrNotFound, compensationID)
	}
	if compensation.Status != from {
		return false, nil
	}
	compensation.Status = to
	if to == domain.CompensationResolved || to == domain.CompensationFailed {
		resolvedAt := at
		compensation.ResolvedAt = &resolvedAt
	}
	return true, nil
}

type fakeTransferRepo struct {
	mu        sync.Mutex
	transfers map[string]*domain.TransferRecord
}

func newFakeTransferRepo() *fakeTransferRepo {
	return &fakeTransferRepo{transfers: make(map[string]*domain.TransferRecord)}
}

func (r *fakeTransferRepo) CreateTransfer(transfer *domain.TransferRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.transfers {
		if existing.IdempotencyKey == transfer.IdempotencyKey {
			return fmt.Errorf("duplicate idempotency key %s", transfer.IdempotencyKey)
		}
	}
	copied := *transfer
	r.transfers[transfer.ID] = &copied
	return nil
}

func (r *fakeTransferRepo) GetTransferByID(transferID string) (*domain.TransferRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	transfer, ok := r.transfers[transferID]
	if !ok {
		return nil, fmt.Errorf("%w: transfer %s", domain.ErrNotFound, transferID)
	}
	copied := *transfer
	return &copied, nil
}

func (r *fakeTransferRepo) FindFailed(limit int) ([]*domain.TransferRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.TransferRecord
	for _, transfer := range r.transfers {
		if transfer.Status == domain.TransferFailed && len(out) < limit {
			copied := *transfer
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeTransferRepo) FindSettledMismatch(limit int) ([]*domain.TransferRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var candidates []*domain.TransferRecord
	for _, transfer := range r.transfers {
		if transfer.Status == domain.TransferSucceeded && transfer.SettledAmount > transfer.Amount {
			copied := *transfer
			candidates = append(candidates, &copied)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		left, right := candidates[i].LastAttemptAt, candidates[j].LastAttemptAt
		switch {
		case left == nil:
			return true
		case right == nil:
			return false
		default:
			return left.Before(*right)
		}
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates, nil
}

func (r *fakeTransferRepo) UpdateTransferStatusCAS(transferID string, from, to domain.TransferStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	transfer, ok := r.transfers[transferID]
	if !ok {
		return false, fmt.Errorf("%w: transfer %s", domain.ErrNotFound, transferID)
	}
	if transfer.Status != from {
		return false, nil
	}
	transfer.Status = to
	return true, nil
}

func (r *fakeTransferRepo) RecordAttempt(transferID string, status domain.TransferStatus, providerRef string, settledAmount float64, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	transfer, ok := r.transfers[transferID]
	if !ok {
		return fmt.Errorf("%w: transfer %s", domain.ErrNotFound, transferID)
	}
	transfer.Status = status
	transfer.ProviderRef = providerRef
	transfer.SettledAmount = settledAmount
	transfer.AttemptCount++
	attemptAt := at
	transfer.LastAttemptAt = &attemptAt
	return nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []kafka.SettlementEvent
}

func (p *fakePublisher) PublishSettlementEvent(event kafka.SettlementEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *fakePublisher) eventsOfKind(kind string) []kafka.SettlementEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []kafka.SettlementEvent
	for _, event := range p.events {
		if event.Kind == kind {
			out = append(out, event)
		}
	}
	return out
}

type fakeAudit struct {
	mu      sync.Mutex
	entries []domain.AuditEntry
}

func (a *fakeAudit) Record(entry domain.AuditEntry) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = append(a.entries, entry)
	return nil
}

type fakeNotifier struct {
	mu            sync.Mutex
	notifications []domain.Notification
}

func (n *fakeNotifier) NotifySeller(notification domain.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notifications = append(n.notifications, notification)
}

type fakeSellerDirectory struct {
	mu     sync.Mutex
	roles  map[string]domain.SellerRole
	hidden map[string]bool
	setErr error
}

func newFakeSellerDirectory() *fakeSellerDirectory {
	return &fakeSellerDirectory{
		roles:  make(map[string]domain.SellerRole),
		hidden: make(map[string]bool),
	}
}

func (d *fakeSellerDirectory) GetSeller(sellerID string) (*domain.SellerProfile, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	role, ok := d.roles[sellerID]
	if !ok {
		role = domain.RoleSeller
	}
	return &domain.SellerProfile{ID: sellerID, Role: role}, nil
}

func (d *fakeSellerDirectory) SetRole(sellerID string, role domain.SellerRole) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.setErr != nil {
		return d.setErr
	}
	d.roles[sellerID] = role
	return nil
}

func (d *fakeSellerDirectory) HideListings(sellerID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.hidden[sellerID] = true
	return nil
}

func (d *fakeSellerDirectory) RestorePrivileges(sellerID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.roles[sellerID] = domain.RoleSeller
	d.hidden[sellerID] = false
	return nil
}

type fakeRefundDirectory struct {
	refunds map[string]*domain.RefundRecord
}

func newFakeRefundDirectory() *fakeRefundDirectory {
	return &fakeRefundDirectory{refunds: make(map[string]*domain.RefundRecord)}
}

func (d *fakeRefundDirectory) GetRefund(refundID string) (*domain.RefundRecord, error) {
	refund, ok := d.refunds[refundID]
	if !ok {
		return nil, fmt.Errorf("%w: refund %s", domain.ErrNotFound, refundID)
	}
	return refund, nil
}

func (d *fakeRefundDirectory) ListAdvanced(limit int) ([]*domain.RefundRecord, error) {
	var out []*domain.RefundRecord
	for _, refund := range d.refunds {
		if refund.AdvancedByPlatform && len(out) < limit {
			out = append(out, refund)
		}
	}
	return out, nil
}

type fakeProvider struct {
	mu       sync.Mutex
	err      error
	settled  float64
	requests []domain.TransferRequest
}

func (p *fakeProvider) ExecuteTransfer(req domain.TransferRequest) (*domain.TransferResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.requests = append(p.requests, req)
	if p.err != nil {
		return nil, p.err
	}
	settled := p.settled
	if settled == 0 {
		settled = req.Amount
	}
	return &domain.TransferResult{ProviderRef: "prov-" + req.TransferID, SettledAmount: settled}, nil
}

type identityRates struct{}

func (identityRates) Convert(amount float64, from, to string) (float64, error) {
	return amount, nil
}
