package billing_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/timekeep-simple/lib/billing"
)

func TestSessionDuration(t *testing.T) {
	t0 := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("closed session measures end minus start", func(t *testing.T) {
		end := t0.Add(3661 * time.Second)
		d := billing.SessionDuration(t0, &end, t0.Add(48*time.Hour))
		assert.Equal(t, 3661*time.Second, d)
	})

	t.Run("open session measures now minus start", func(t *testing.T) {
		d := billing.SessionDuration(t0, nil, t0.Add(90*time.Second))
		assert.Equal(t, 90*time.Second, d)
	})

	t.Run("open session before start clamps to zero", func(t *testing.T) {
		d := billing.SessionDuration(t0, nil, t0.Add(-time.Minute))
		assert.Equal(t, time.Duration(0), d)
	})
}

func TestSessionCost(t *testing.T) {
	rate := decimal.RequireFromString("75")

	t.Run("one hour one minute one second at 75 per hour", func(t *testing.T) {
		cost := billing.SessionCost(rate, 3661*time.Second)
		assert.Equal(t, "76.27", billing.RoundMoney(cost).StringFixed(2))
	})

	t.Run("zero duration costs nothing", func(t *testing.T) {
		cost := billing.SessionCost(rate, 0)
		assert.True(t, cost.IsZero())
	})

	t.Run("exact hours stay exact", func(t *testing.T) {
		cost := billing.SessionCost(rate, 2*time.Hour)
		assert.True(t, cost.Equal(decimal.RequireFromString("150")))
	})
}

func TestRoundMoney(t *testing.T) {
	// Round half away from zero, not banker's rounding
	assert.Equal(t, "0.01", billing.RoundMoney(decimal.RequireFromString("0.005")).StringFixed(2))
	assert.Equal(t, "-0.01", billing.RoundMoney(decimal.RequireFromString("-0.005")).StringFixed(2))
	assert.Equal(t, "76.27", billing.RoundMoney(decimal.RequireFromString("76.2708333")).StringFixed(2))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "00:00:00", billing.FormatDuration(0))
	assert.Equal(t, "01:01:01", billing.FormatDuration(3661*time.Second))
	assert.Equal(t, "00:05:30", billing.FormatDuration(5*time.Minute+30*time.Second))
	// Hours are not wrapped at 24
	assert.Equal(t, "49:30:00", billing.FormatDuration(49*time.Hour+30*time.Minute))
	assert.Equal(t, "00:00:00", billing.FormatDuration(-time.Hour))
}
