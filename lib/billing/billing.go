package billing

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var secondsPerHour = decimal.NewFromInt(3600)

// SessionDuration returns the elapsed time of a session. Closed sessions
// measure end minus start; open sessions measure now minus start. The
// result is clamped at zero since this is a derived display value.
func SessionDuration(start time.Time, end *time.Time, now time.Time) time.Duration {
	var d time.Duration
	if end != nil {
		d = end.Sub(start)
	} else {
		d = now.Sub(start)
	}
	if d < 0 {
		return 0
	}
	return d
}

// SessionCost prices a duration at an hourly rate. The result is left
// unrounded so that totals can be summed exactly and rounded once at the
// presentation edge.
func SessionCost(rate decimal.Decimal, d time.Duration) decimal.Decimal {
	seconds := decimal.NewFromInt(int64(d / time.Second))
	return rate.Mul(seconds).Div(secondsPerHour)
}

// RoundMoney rounds an amount to the smallest currency unit (2 decimal
// places, half away from zero). Apply only to final values, never to
// intermediates.
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}

// FormatDuration renders a duration as HH:MM:SS. Hours are not wrapped at
// 24, so multi-day totals stay additive.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
