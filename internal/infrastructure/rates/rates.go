package rates

import (
	"fmt"
	"sync"

	"github.com/charlesnunot/seller-settlement-service/internal/domain"
)

// RateTable converts through per-currency rates against the settlement
// currency. Conversion is deterministic for the table state at call time;
// a background job may refresh rates via SetRate.
type RateTable struct {
	mu                 sync.RWMutex
	settlementCurrency string
	// rates - units of settlement currency per one unit of the keyed currency
	rates map[string]float64
}

func NewRateTable(settlementCurrency string, perCurrency map[string]float64) *RateTable {
	rateTable := map[string]float64{settlementCurrency: 1}
	for currency, rate := range perCurrency {
		rateTable[currency] = rate
	}
	return &RateTable{
		settlementCurrency: settlementCurrency,
		rates:              rateTable,
	}
}

func (t *RateTable) SetRate(currency string, rate float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rates[currency] = rate
}

func (t *RateTable) Convert(amount float64, from, to string) (float64, error) {
	if from == to {
		return amount, nil
	}

	t.mu.RLock()
	defer t.mu.RUnlock()
	fromRate, ok := t.rates[from]
	if !ok {
		return 0, fmt.Errorf("%w: unknown currency %q", domain.ErrValidation, from)
	}
	toRate, ok := t.rates[to]
	if !ok {
		return 0, fmt.Errorf("%w: unknown currency %q", domain.ErrValidation, to)
	}
	return amount * fromRate / toRate, nil
}

var _ domain.RateSource = (*RateTable)(nil)
