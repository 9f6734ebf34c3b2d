package model

import "github.com/shopspring/decimal"

// AlertLevel is the qualitative band a budget sits in, derived from the
// percentage of its limit already spent.
type AlertLevel string

const (
	// AlertNormal means less than 50% of the budget is used.
	AlertNormal AlertLevel = "normal"
	// AlertCaution means 50% or more of the budget is used.
	AlertCaution AlertLevel = "caution"
	// AlertWarning means 80% or more of the budget is used.
	AlertWarning AlertLevel = "warning"
	// AlertExceeded means the budget is fully used or over.
	AlertExceeded AlertLevel = "exceeded"
)

// Budget caps spending for one category. Spent mirrors the engine's running
// expense total for the category; it is re-synced on every transaction
// mutation touching the category rather than derived lazily.
type Budget struct {
	Category string
	Limit    decimal.Decimal
	Spent    decimal.Decimal
}

// PercentUsed returns Spent/Limit as a percentage. A zero limit reports 0.
func (b Budget) PercentUsed() float64 {
	if b.Limit.IsZero() {
		return 0
	}
	percent, _ := b.Spent.Div(b.Limit).Mul(decimal.NewFromInt(100)).Float64()
	return percent
}

// Level maps the percent used onto the alert bands.
func (b Budget) Level() AlertLevel {
	switch percent := b.PercentUsed(); {
	case percent >= 100:
		return AlertExceeded
	case percent >= 80:
		return AlertWarning
	case percent >= 50:
		return AlertCaution
	default:
		return AlertNormal
	}
}

// BudgetAlert is a point-in-time snapshot of a budget past its normal band.
// Rendering it as user-facing text is the presentation layer's job.
type BudgetAlert struct {
	Category    string
	Level       AlertLevel
	PercentUsed float64
	Spent       decimal.Decimal
	Limit       decimal.Decimal
}
