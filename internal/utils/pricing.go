package utils

import (
	"math"

	"mietpark-backend/internal/domain"
)

// daysPerMonth is the fixed commercial month used for monthly rate proration.
// Civil months vary in length; reports use 30 days for fairness across months.
const daysPerMonth = 30.0

// RentForPeriod converts a billing rate into a money amount for a day count.
// Unrecognized units (including WOECHENTLICH, which the schema admits but no
// deployment ever priced) yield 0.0 rather than an error; callers rely on
// this being silent.
func RentForPeriod(rateValue float64, unit domain.RateUnit, days int) float64 {
	if days <= 0 {
		return 0.0
	}
	switch unit {
	case domain.RateUnitDaily:
		return rateValue * float64(days)
	case domain.RateUnitMonthly:
		return rateValue * (float64(days) / daysPerMonth)
	default:
		return 0.0
	}
}

// Round2 rounds a monetary amount to 2 decimal places. Reports accumulate at
// full precision and round only at the output boundary.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
