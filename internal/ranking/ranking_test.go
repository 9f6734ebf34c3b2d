package ranking

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coinscribe/coinscribe/internal/model"
)

func expense(id string, amount int64) model.Transaction {
	return model.Transaction{
		ID:       id,
		Kind:     model.KindExpense,
		Amount:   decimal.NewFromInt(amount),
		Category: "Food",
		Date:     "2024-01-01",
	}
}

func TestTopExpenses(t *testing.T) {
	txns := []model.Transaction{
		expense("a", 10),
		expense("b", 50),
		expense("c", 30),
		expense("d", 90),
		expense("e", 20),
	}

	top := TopExpenses(txns, 3)
	require.Len(t, top, 3)
	assert.Equal(t, "d", top[0].ID)
	assert.Equal(t, "b", top[1].ID)
	assert.Equal(t, "c", top[2].ID)
}

func TestTopExpenses_Bounds(t *testing.T) {
	txns := []model.Transaction{expense("a", 10), expense("b", 50)}

	assert.Empty(t, TopExpenses(txns, 0))
	assert.Empty(t, TopExpenses(txns, -3))
	assert.Empty(t, TopExpenses(nil, 5))

	all := TopExpenses(txns, 10)
	require.Len(t, all, 2, "k beyond the input yields everything")
	assert.Equal(t, "b", all[0].ID)
	assert.Equal(t, "a", all[1].ID)
}

func TestTopExpenses_DoesNotMutateInput(t *testing.T) {
	txns := []model.Transaction{
		expense("a", 10),
		expense("b", 50),
		expense("c", 30),
	}

	TopExpenses(txns, 2)

	assert.Equal(t, "a", txns[0].ID)
	assert.Equal(t, "b", txns[1].ID)
	assert.Equal(t, "c", txns[2].ID)
}

func TestTopCategories(t *testing.T) {
	totals := map[string]decimal.Decimal{
		"Food":      decimal.NewFromInt(300),
		"Transport": decimal.NewFromInt(120),
		"Rent":      decimal.NewFromInt(900),
		"Shopping":  decimal.NewFromInt(45),
	}

	top := TopCategories(totals, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "Rent", top[0].Category)
	assert.Equal(t, "Food", top[1].Category)
}

func TestTopCategories_ExcludesZeroTotals(t *testing.T) {
	totals := map[string]decimal.Decimal{
		"Food":  decimal.NewFromInt(50),
		"Ghost": decimal.Zero,
	}

	top := TopCategories(totals, 5)
	require.Len(t, top, 1)
	assert.Equal(t, "Food", top[0].Category)
}

func TestTopCategories_Bounds(t *testing.T) {
	assert.Empty(t, TopCategories(nil, 3))
	assert.Empty(t, TopCategories(map[string]decimal.Decimal{"Food": decimal.NewFromInt(5)}, 0))
}
