package model

import "github.com/shopspring/decimal"

// Bill is a payable tracked in arrival order. PayBill flips IsPaid in
// place; everything else is fixed at creation.
type Bill struct {
	ID       string
	Name     string
	Amount   decimal.Decimal
	DueDate  string // YYYY-MM-DD
	Category string
	IsPaid   bool
}
