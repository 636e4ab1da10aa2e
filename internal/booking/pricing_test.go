package booking

import (
	"math"
	"testing"

	"arendaBack/internal/models"
)

func TestPriceRateSelection(t *testing.T) {
	rates := models.RateSchedule{HourlyRate: 5, DailyRate: 25}

	cases := []struct {
		name         string
		totalHours   int
		wantSubtotal float64
	}{
		{"hourly path below a day", 23, 115},
		{"daily path at exactly one day", 24, 25},
		{"daily path above a day", 48, 50},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Price(rates, tc.totalHours, false)
			if got.Subtotal != tc.wantSubtotal {
				t.Fatalf("expected subtotal %.2f, got %.2f", tc.wantSubtotal, got.Subtotal)
			}
		})
	}
}

func TestPricePartialDayRoundsUp(t *testing.T) {
	rates := models.RateSchedule{DailyRate: 25}
	got := Price(rates, 25, false)
	if got.Subtotal != 50 {
		t.Fatalf("expected 2 billed days = 50, got %.2f", got.Subtotal)
	}
}

func TestPriceNoHourlyRateUsesDailyPath(t *testing.T) {
	rates := models.RateSchedule{DailyRate: 25}
	got := Price(rates, 3, false)
	// Without an hourly rate even a short rental bills a full day.
	if got.Subtotal != 25 {
		t.Fatalf("expected full-day subtotal 25, got %.2f", got.Subtotal)
	}
}

func TestPriceFullScenario(t *testing.T) {
	rates := models.RateSchedule{DailyRate: 25, SecurityDeposit: 50, DeliveryFee: 10}
	got := Price(rates, 48, true)

	if got.TotalHours != 48 {
		t.Fatalf("expected 48 hours, got %d", got.TotalHours)
	}
	if got.Subtotal != 50 {
		t.Fatalf("expected subtotal 50, got %.2f", got.Subtotal)
	}
	if got.ServiceFee != 5 {
		t.Fatalf("expected service fee 5.00, got %.2f", got.ServiceFee)
	}
	if got.DeliveryFee != 10 {
		t.Fatalf("expected delivery fee 10, got %.2f", got.DeliveryFee)
	}
	if got.SecurityDeposit != 50 {
		t.Fatalf("expected deposit 50, got %.2f", got.SecurityDeposit)
	}
	if got.TotalAmount != 115 {
		t.Fatalf("expected total 115.00, got %.2f", got.TotalAmount)
	}
}

func TestPriceServiceFeeRounding(t *testing.T) {
	rates := models.RateSchedule{HourlyRate: 4.45, DailyRate: 80}
	got := Price(rates, 3, false)
	// subtotal 13.35, 10% = 1.335, rounded to 1.34.
	if math.Abs(got.ServiceFee-1.34) > 1e-9 {
		t.Fatalf("expected service fee 1.34, got %.4f", got.ServiceFee)
	}
	if math.Abs(got.TotalAmount-14.69) > 1e-9 {
		t.Fatalf("expected total 14.69, got %.4f", got.TotalAmount)
	}
}

func TestPriceDeliveryNotRequested(t *testing.T) {
	rates := models.RateSchedule{DailyRate: 25, DeliveryFee: 10}
	got := Price(rates, 24, false)
	if got.DeliveryFee != 0 {
		t.Fatalf("expected no delivery fee, got %.2f", got.DeliveryFee)
	}
}
