package directory

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/charlesnunot/seller-settlement-service/internal/domain"
)

type refundBody struct {
	ID                 string  `json:"id"`
	OrderID            string  `json:"order_id"`
	SellerID           string  `json:"seller_id"`
	Amount             float64 `json:"amount"`
	Currency           string  `json:"currency"`
	AdvancedByPlatform bool    `json:"advanced_by_platform"`
}

// HTTPRefundDirectory reads refund records from the refund service.
type HTTPRefundDirectory struct {
	Address string
	client  *http.Client
}

func NewHTTPRefundDirectory(address string) *HTTPRefundDirectory {
	return &HTTPRefundDirectory{
		Address: address,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func (d *HTTPRefundDirectory) GetRefund(refundID string) (*domain.RefundRecord, error) {
	resp, err := d.client.Get(fmt.Sprintf("%s/refunds/%s", d.Address, refundID))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: refund %s", domain.ErrNotFound, refundID)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("refund directory returned status %d", resp.StatusCode)
	}

	var body refundBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	return toRefundRecord(body), nil
}

func (d *HTTPRefundDirectory) ListAdvanced(limit int) ([]*domain.RefundRecord, error) {
	resp, err := d.client.Get(fmt.Sprintf("%s/refunds?advanced=true&limit=%d", d.Address, limit))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("refund directory returned status %d", resp.StatusCode)
	}

	var bodies []refundBody
	if err := json.NewDecoder(resp.Body).Decode(&bodies); err != nil {
		return nil, err
	}
	refunds := make([]*domain.RefundRecord, 0, len(bodies))
	for _, body := range bodies {
		refunds = append(refunds, toRefundRecord(body))
	}
	return refunds, nil
}

func toRefundRecord(body refundBody) *domain.RefundRecord {
	return &domain.RefundRecord{
		ID:                 body.ID,
		OrderID:            body.OrderID,
		SellerID:           body.SellerID,
		Amount:             body.Amount,
		Currency:           body.Currency,
		AdvancedByPlatform: body.AdvancedByPlatform,
	}
}
