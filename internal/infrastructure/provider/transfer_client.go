package provider

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charlesnunot/seller-settlement-service/internal/domain"
)

type transferRequestBody struct {
	TransferID string  `json:"transfer_id"`
	SellerID   string  `json:"seller_id"`
	Amount     float64 `json:"amount"`
	Currency   string  `json:"currency"`
}

type transferResponseBody struct {
	ProviderRef   string  `json:"provider_ref"`
	SettledAmount float64 `json:"settled_amount"`
}

type errorResponseBody struct {
	Error string `json:"error"`
}

// HTTPTransferClient executes payouts against the payment provider.
// Every request carries the transfer's idempotency key so a retried call
// can never produce a second payout.
type HTTPTransferClient struct {
	Address string
	apiKey  string
	client  *http.Client
}

func NewHTTPTransferClient(address, apiKey string, timeout time.Duration) *HTTPTransferClient {
	return &HTTPTransferClient{
		Address: address,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *HTTPTransferClient) ExecuteTransfer(req domain.TransferRequest) (*domain.TransferResult, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("%w: payment provider api key is not set", domain.ErrConfiguration)
	}

	requestBodyBytes, err := json.Marshal(transferRequestBody{
		TransferID: req.TransferID,
		SellerID:   req.SellerID,
		Amount:     req.Amount,
		Currency:   req.Currency,
	})
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequest("POST", fmt.Sprintf("%s/transfers", c.Address), bytes.NewBuffer(requestBodyBytes))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Idempotency-Key", req.IdempotencyKey)

	response, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderFailure, err)
	}
	defer response.Body.Close()
	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderFailure, err)
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		var result transferResponseBody
		if err := json.Unmarshal(responseBodyBytes, &result); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrProviderFailure, err)
		}
		return &domain.TransferResult{
			ProviderRef:   result.ProviderRef,
			SettledAmount: result.SettledAmount,
		}, nil
	}

	var errorResponse errorResponseBody
	if err := json.Unmarshal(responseBodyBytes, &errorResponse); err != nil {
		return nil, fmt.Errorf("%w: provider returned status %d", domain.ErrProviderFailure, response.StatusCode)
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrProviderFailure, errorResponse.Error)
}
