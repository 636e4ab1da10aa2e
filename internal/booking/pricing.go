package booking

import (
	"math"

	"arendaBack/internal/models"
)

const (
	hoursPerDay    = 24
	serviceFeeRate = 0.10
)

// Price computes the itemized cost of a validated rental window. Rentals
// shorter than a day use the hourly rate when the listing offers one;
// everything else is billed per day with partial days rounded up to a full
// day. The service fee is rounded to two decimals, the summed total is not.
func Price(rates models.RateSchedule, totalHours int, deliveryRequested bool) models.PricingBreakdown {
	var subtotal float64
	if rates.HourlyRate > 0 && totalHours < hoursPerDay {
		subtotal = float64(totalHours) * rates.HourlyRate
	} else {
		days := totalHours / hoursPerDay
		if totalHours%hoursPerDay != 0 {
			days++
		}
		subtotal = float64(days) * rates.DailyRate
	}

	serviceFee := round2(subtotal * serviceFeeRate)

	var deliveryFee float64
	if deliveryRequested {
		deliveryFee = rates.DeliveryFee
	}

	return models.PricingBreakdown{
		TotalHours:      totalHours,
		Subtotal:        subtotal,
		ServiceFee:      serviceFee,
		DeliveryFee:     deliveryFee,
		SecurityDeposit: rates.SecurityDeposit,
		TotalAmount:     subtotal + serviceFee + deliveryFee + rates.SecurityDeposit,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
