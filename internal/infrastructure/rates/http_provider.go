package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type rateResponse struct {
	Pair  string  `json:"pair"`
	Price float64 `json:"price"`
}

// HTTPRateProvider fetches spot rates from an exchange-rate endpoint.
// Used by the background rate-refresh job to keep the RateTable current.
type HTTPRateProvider struct {
	baseURL string
	client  *http.Client
}

func NewHTTPRateProvider(baseURL string) *HTTPRateProvider {
	return &HTTPRateProvider{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

func (p *HTTPRateProvider) GetRate(ctx context.Context, pair string) (float64, error) {
	url := fmt.Sprintf("%s/rates?pair=%s", p.baseURL, pair)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to get rate for %s: %w", pair, err)
	}
	defer resp.Body.Close()

	responseBodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, err
	}
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("rates API returned status: %d", resp.StatusCode)
	}

	var rate rateResponse
	if err := json.Unmarshal(responseBodyBytes, &rate); err != nil {
		return 0, err
	}
	return rate.Price, nil
}
