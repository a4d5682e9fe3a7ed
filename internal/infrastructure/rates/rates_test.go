package rates

import (
	"errors"
	"testing"

	"github.com/charlesnunot/seller-settlement-service/internal/domain"
)

func TestConvert(t *testing.T) {
	table := NewRateTable("USD", map[string]float64{
		"EUR": 1.10,
		"GBP": 1.25,
	})

	tests := []struct {
		name   string
		amount float64
		from   string
		to     string
		want   float64
	}{
		{"same currency", 42, "USD", "USD", 42},
		{"to settlement", 100, "EUR", "USD", 110},
		{"from settlement", 110, "USD", "EUR", 100},
		{"cross rate", 125, "GBP", "EUR", 125 * 1.25 / 1.10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := table.Convert(tt.amount, tt.from, tt.to)
			if err != nil {
				t.Fatalf("Convert() error = %v", err)
			}
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("Convert() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConvert_UnknownCurrency(t *testing.T) {
	table := NewRateTable("USD", nil)

	if _, err := table.Convert(10, "JPY", "USD"); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("Convert() error = %v, want ErrValidation", err)
	}
	if _, err := table.Convert(10, "USD", "JPY"); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("Convert() error = %v, want ErrValidation", err)
	}
}

func TestSetRate(t *testing.T) {
	table := NewRateTable("USD", nil)
	table.SetRate("EUR", 1.08)

	got, err := table.Convert(100, "EUR", "USD")
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if diff := got - 108; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Convert() = %v, want 108", got)
	}
}
