// Package coinscribe is the public surface of the bookkeeping engine. The
// implementation lives in internal packages; this package re-exports the
// constructors and value types external collaborators need, so embedding
// applications never reach for internal paths.
package coinscribe

import (
	"github.com/coinscribe/coinscribe/internal/config"
	"github.com/coinscribe/coinscribe/internal/engine"
	"github.com/coinscribe/coinscribe/internal/model"
	"github.com/coinscribe/coinscribe/internal/undo"
)

// Engine is the bookkeeping engine: one canonical ledger plus its
// secondary indexes behind a single synchronous API. No method is safe
// for concurrent use; callers needing shared access serialize around the
// Engine as a whole.
type Engine = engine.Engine

// Config holds the tunables for a new Engine.
type Config = engine.Config

// Core value types.
type (
	Kind           = model.Kind
	Transaction    = model.Transaction
	Budget         = model.Budget
	Bill           = model.Bill
	BudgetAlert    = model.BudgetAlert
	MonthlySummary = model.MonthlySummary
	CategoryAmount = model.CategoryAmount
	AlertLevel     = model.AlertLevel
)

// Undo history types, as returned by Engine.ActionHistory.
type (
	Action     = undo.Action
	ActionKind = undo.ActionKind
)

// Transaction kinds.
const (
	KindIncome  = model.KindIncome
	KindExpense = model.KindExpense
)

// Budget alert bands.
const (
	AlertNormal   = model.AlertNormal
	AlertCaution  = model.AlertCaution
	AlertWarning  = model.AlertWarning
	AlertExceeded = model.AlertExceeded
)

// Action kinds.
const (
	ActionAddTransaction    = undo.AddTransaction
	ActionDeleteTransaction = undo.DeleteTransaction
	ActionAddBudget         = undo.AddBudget
	ActionUpdateBudget      = undo.UpdateBudget
	ActionAddBill           = undo.AddBill
	ActionDeleteBill        = undo.DeleteBill
	ActionPayBill           = undo.PayBill
)

// New creates an engine with the default configuration.
func New() *Engine {
	return engine.New()
}

// NewWithConfig creates an engine with custom limits and seed categories.
func NewWithConfig(cfg Config) *Engine {
	return engine.NewWithConfig(cfg)
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return engine.DefaultConfig()
}

// Settings is everything the embedding application configures.
type Settings = config.Settings

// Logging holds the global logger settings.
type Logging = config.Logging

// LoadSettings reads configuration from cfgFile, or from the standard
// search path when empty, plus COINSCRIBE_* environment variables.
func LoadSettings(cfgFile string) (Settings, error) {
	return config.Load(cfgFile)
}

// SetupLogging installs the global slog handler described by the settings.
func SetupLogging(l Logging) error {
	return config.SetupLogging(l)
}
