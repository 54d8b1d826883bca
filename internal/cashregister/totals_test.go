package cashregister

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cashdesk/internal/domain"
)

var t0 = time.Date(2025, 10, 1, 8, 0, 0, 0, time.UTC)

func amt(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func assertAmount(t *testing.T, want int64, got decimal.Decimal, field string) {
	t.Helper()
	assert.Truef(t, got.Equal(amt(want)), "%s: want %d, got %s", field, want, got.String())
}

var methods = []domain.PaymentMethod{
	{ID: 1, Name: "Espèces", IsPrincipal: true},
	{ID: 2, Name: "Mobile money"},
	{ID: 3, Name: "Virement"},
}

func TestComputeSessionTotals(t *testing.T) {
	session := domain.CashRegisterSession{ID: 5, OpeningAmount: amt(10000), Status: domain.SessionOpen}
	transactions := []domain.Transaction{
		{ID: 100, CashRegisterSessionID: 5, TotalAmount: amt(8000), Type: domain.TransactionTypeIncome, CreatedAt: t0},
		{ID: 101, CashRegisterSessionID: 5, TotalAmount: amt(2000), Type: domain.TransactionTypeOutcome, CreatedAt: t0},
		{ID: 200, CashRegisterSessionID: 6, TotalAmount: amt(9000), Type: domain.TransactionTypeIncome, CreatedAt: t0},
	}
	payments := []domain.Payment{
		{ID: 1, TransactionID: 100, Amount: amt(8000), PaymentMethods: []domain.MethodSplit{
			{PaymentMethodID: 1, Amount: amt(5000)},
			{PaymentMethodID: 2, Amount: amt(3000)},
		}},
		{ID: 2, TransactionID: 200, Amount: amt(9000), PaymentMethods: []domain.MethodSplit{
			{PaymentMethodID: 1, Amount: amt(9000)},
		}},
	}
	expenses := []domain.Expense{
		{ID: 1, TransactionID: 101, Amount: amt(2000)},
	}

	got := ComputeSessionTotals(session, transactions, payments, expenses, methods)

	assert.Equal(t, uint(5), got.SessionID)
	assertAmount(t, 5000, got.MainMethodAmount, "main method")
	assertAmount(t, 2000, got.TotalExpenses, "expenses")
	assertAmount(t, 13000, got.ExpectedAmount, "expected")
	assertAmount(t, 8000, got.PaymentMethodsTotal, "methods total")
	assertAmount(t, 8000, got.TransactionsTotal, "transactions total")
	assert.Equal(t, 2, got.TransactionCount)

	require.Len(t, got.PaymentMethods, 2)
	assert.Equal(t, uint(1), got.PaymentMethods[0].PaymentMethodID)
	assert.Equal(t, "Espèces", got.PaymentMethods[0].Name)
	assert.True(t, got.PaymentMethods[0].IsPrincipal)
	assertAmount(t, 5000, got.PaymentMethods[0].Amount, "cash")
	assert.Equal(t, uint(2), got.PaymentMethods[1].PaymentMethodID)
	assertAmount(t, 3000, got.PaymentMethods[1].Amount, "mobile money")
}

func TestComputeSessionTotals_NoPrincipalMethod(t *testing.T) {
	session := domain.CashRegisterSession{ID: 5, OpeningAmount: amt(10000)}
	transactions := []domain.Transaction{{ID: 100, CashRegisterSessionID: 5, TotalAmount: amt(4000), Type: domain.TransactionTypeIncome}}
	payments := []domain.Payment{{ID: 1, TransactionID: 100, Amount: amt(4000), PaymentMethods: []domain.MethodSplit{{PaymentMethodID: 2, Amount: amt(4000)}}}}
	noPrincipal := []domain.PaymentMethod{{ID: 2, Name: "Mobile money"}}

	got := ComputeSessionTotals(session, transactions, payments, nil, noPrincipal)

	assertAmount(t, 0, got.MainMethodAmount, "main method")
	assertAmount(t, 10000, got.ExpectedAmount, "expected")
	assertAmount(t, 4000, got.PaymentMethodsTotal, "methods total")
}

func TestComputeSessionTotals_PrincipalUnused(t *testing.T) {
	session := domain.CashRegisterSession{ID: 5, OpeningAmount: amt(1000)}
	got := ComputeSessionTotals(session, nil, nil, nil, methods)

	assertAmount(t, 0, got.MainMethodAmount, "main method")
	assertAmount(t, 1000, got.ExpectedAmount, "expected")
	assert.Empty(t, got.PaymentMethods)
	assert.NotNil(t, got.PaymentMethods)
}

func TestComputeSessionTotals_ExpensesCountedAsAbsolute(t *testing.T) {
	session := domain.CashRegisterSession{ID: 5, OpeningAmount: amt(10000)}
	transactions := []domain.Transaction{{ID: 101, CashRegisterSessionID: 5, Type: domain.TransactionTypeOutcome}}
	expenses := []domain.Expense{
		{ID: 1, TransactionID: 101, Amount: amt(-1500)},
		{ID: 2, TransactionID: 101, Amount: amt(500)},
		{ID: 3, TransactionID: 999, Amount: amt(700)},
	}

	got := ComputeSessionTotals(session, transactions, nil, expenses, methods)

	assertAmount(t, 2000, got.TotalExpenses, "expenses")
	assertAmount(t, 8000, got.ExpectedAmount, "expected")
}

func TestComputeSessionTotals_ExpectedFormulaHolds(t *testing.T) {
	cases := []struct{ opening, cash, other, expense int64 }{
		{0, 0, 0, 0},
		{10000, 5000, 3000, 2000},
		{500, 0, 7000, 900},
		{0, 1200, 0, 5000},
	}
	for _, c := range cases {
		session := domain.CashRegisterSession{ID: 1, OpeningAmount: amt(c.opening)}
		transactions := []domain.Transaction{
			{ID: 1, CashRegisterSessionID: 1, Type: domain.TransactionTypeIncome, TotalAmount: amt(c.cash + c.other)},
			{ID: 2, CashRegisterSessionID: 1, Type: domain.TransactionTypeOutcome, TotalAmount: amt(c.expense)},
		}
		payments := []domain.Payment{{ID: 1, TransactionID: 1, Amount: amt(c.cash + c.other), PaymentMethods: []domain.MethodSplit{
			{PaymentMethodID: 1, Amount: amt(c.cash)},
			{PaymentMethodID: 3, Amount: amt(c.other)},
		}}}
		expenses := []domain.Expense{{ID: 1, TransactionID: 2, Amount: amt(c.expense)}}

		got := ComputeSessionTotals(session, transactions, payments, expenses, methods)

		want := got.OpeningAmount.Add(got.MainMethodAmount).Sub(got.TotalExpenses)
		assert.True(t, got.ExpectedAmount.Equal(want))
		assertAmount(t, c.opening+c.cash-c.expense, got.ExpectedAmount, "expected")
	}
}

func TestPrincipalMethod(t *testing.T) {
	m, ok := PrincipalMethod([]domain.PaymentMethod{{ID: 4, IsPrincipal: true}, {ID: 2, IsPrincipal: true}, {ID: 1}})
	assert.True(t, ok)
	assert.Equal(t, uint(2), m.ID)

	_, ok = PrincipalMethod(nil)
	assert.False(t, ok)
}
