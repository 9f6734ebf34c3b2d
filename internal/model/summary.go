package model

import "github.com/shopspring/decimal"

// CategoryAmount pairs a category with an aggregate expense amount. It is
// produced by ranking and summary queries and never persisted.
type CategoryAmount struct {
	Category string
	Total    decimal.Decimal
}

// MonthlySummary aggregates one calendar month of activity.
type MonthlySummary struct {
	Month             string // YYYY-MM
	TotalIncome       decimal.Decimal
	TotalExpenses     decimal.Decimal
	NetSavings        decimal.Decimal
	TransactionCount  int
	CategoryBreakdown []CategoryAmount
}
