package usecase

import (
	"errors"
	"testing"

	"github.com/charlesnunot/seller-settlement-service/internal/domain"
	transferdto "github.com/charlesnunot/seller-settlement-service/internal/usecase/dto/transfer"
)

func newTransferFixture() (*DefaultTransferUsecase, *fakeTransferRepo, *fakeProvider) {
	transferRepo := newFakeTransferRepo()
	provider := &fakeProvider{}
	uc := NewDefaultTransferUsecase(transferRepo, provider, &fakePublisher{}, &fakeAudit{})
	return uc, transferRepo, provider
}

func TestCreatePayout_Succeeds(t *testing.T) {
	uc, transferRepo, provider := newTransferFixture()

	transfer, err := uc.CreatePayout(&transferdto.CreatePayoutInput{
		SellerID: "seller-1",
		Amount:   200,
		Currency: "USD",
	})
	if err != nil {
		t.Fatalf("CreatePayout() error = %v", err)
	}
	if transfer.IdempotencyKey == "" {
		t.Fatal("idempotency key was not minted")
	}

	stored, _ := transferRepo.GetTransferByID(transfer.ID)
	if stored.Status != domain.TransferSucceeded {
		t.Errorf("transfer status = %v, want SUCCEEDED", stored.Status)
	}
	if stored.AttemptCount != 1 {
		t.Errorf("attempt count = %d, want 1", stored.AttemptCount)
	}
	if stored.SettledAmount != 200 {
		t.Errorf("settled amount = %v, want 200", stored.SettledAmount)
	}
	if len(provider.requests) != 1 {
		t.Errorf("provider calls = %d, want 1", len(provider.requests))
	}
}

func TestRetry_ReusesIdempotencyKey(t *testing.T) {
	uc, transferRepo, provider := newTransferFixture()

	provider.err = errors.New("provider unavailable")
	transfer, err := uc.CreatePayout(&transferdto.CreatePayoutInput{
		SellerID: "seller-1",
		Amount:   100,
		Currency: "USD",
	})
	if err == nil {
		t.Fatal("CreatePayout() expected error while provider is down")
	}

	failed, _ := transferRepo.GetTransferByID(transfer.ID)
	if failed.Status != domain.TransferFailed {
		t.Fatalf("transfer status = %v, want FAILED", failed.Status)
	}
	if failed.AttemptCount != 1 {
		t.Fatalf("attempt count = %d, want 1", failed.AttemptCount)
	}

	provider.err = nil
	if err := uc.Retry(transfer.ID); err != nil {
		t.Fatalf("Retry() error = %v", err)
	}

	if len(provider.requests) != 2 {
		t.Fatalf("provider calls = %d, want 2", len(provider.requests))
	}
	if provider.requests[0].IdempotencyKey != provider.requests[1].IdempotencyKey {
		t.Error("retry must reuse the original idempotency key")
	}

	retried, _ := transferRepo.GetTransferByID(transfer.ID)
	if retried.Status != domain.TransferSucceeded {
		t.Errorf("transfer status = %v, want SUCCEEDED", retried.Status)
	}
	if retried.AttemptCount != 2 {
		t.Errorf("attempt count = %d, want 2", retried.AttemptCount)
	}
}

func TestRetry_OnlyFailedTransfers(t *testing.T) {
	uc, _, _ := newTransferFixture()

	transfer, err := uc.CreatePayout(&transferdto.CreatePayoutInput{
		SellerID: "seller-1",
		Amount:   100,
		Currency: "USD",
	})
	if err != nil {
		t.Fatalf("CreatePayout() error = %v", err)
	}

	if err := uc.Retry(transfer.ID); !errors.Is(err, domain.ErrInvalidStateTransition) {
		t.Errorf("Retry() on succeeded transfer error = %v, want ErrInvalidStateTransition", err)
	}
}

func TestRetryBatch_CountsOutcomes(t *testing.T) {
	uc, transferRepo, provider := newTransferFixture()

	provider.err = errors.New("provider unavailable")
	var ids []string
	for range [3]struct{}{} {
		transfer, _ := uc.CreatePayout(&transferdto.CreatePayoutInput{
			SellerID: "seller-1",
			Amount:   50,
			Currency: "USD",
		})
		ids = append(ids, transfer.ID)
	}

	provider.err = nil
	out, err := uc.RetryBatch(10)
	if err != nil {
		t.Fatalf("RetryBatch() error = %v", err)
	}
	if out.SucceededCount != 3 || out.FailedCount != 0 {
		t.Errorf("RetryBatch() = %+v, want 3 succeeded", out)
	}

	for _, id := range ids {
		transfer, _ := transferRepo.GetTransferByID(id)
		if transfer.Status != domain.TransferSucceeded {
			t.Errorf("transfer %s status = %v, want SUCCEEDED", id, transfer.Status)
		}
	}
}

func TestCreatePayout_Validation(t *testing.T) {
	uc, _, _ := newTransferFixture()

	tests := []struct {
		name  string
		input *transferdto.CreatePayoutInput
	}{
		{"missing seller", &transferdto.CreatePayoutInput{Amount: 10, Currency: "USD"}},
		{"zero amount", &transferdto.CreatePayoutInput{SellerID: "seller-1", Currency: "USD"}},
		{"missing currency", &transferdto.CreatePayoutInput{SellerID: "seller-1", Amount: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := uc.CreatePayout(tt.input); !errors.Is(err, domain.ErrValidation) {
				t.Errorf("CreatePayout() error = %v, want ErrValidation", err)
			}
		})
	}
}
