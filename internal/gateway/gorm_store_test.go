package gateway

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"cashdesk/internal/domain"
	"cashdesk/internal/usecase"
)

func setupStore(t *testing.T) *GormStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	store := NewGormStore(db)
	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func importSample(t *testing.T, store *GormStore) *domain.Dataset {
	t.Helper()
	ds, err := NewCSVRepository().Load(context.Background(), writeDataset(t, sampleDataset()))
	require.NoError(t, err)
	require.NoError(t, store.Import(context.Background(), ds))
	return ds
}

func amountEq(t *testing.T, want int64, got decimal.Decimal, field string) {
	t.Helper()
	assert.Truef(t, got.Equal(decimal.NewFromInt(want)), "%s: want %d, got %s", field, want, got.String())
}

func TestGormStore_ImportAndRead(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	importSample(t, store)

	p, err := store.GetPayment(ctx, 77)
	require.NoError(t, err)
	assert.Equal(t, "REF-77", p.Reference)
	amountEq(t, 8000, p.Amount, "amount")
	require.Len(t, p.PaymentMethods, 2)
	assert.NoError(t, p.CheckSplit())
	assert.True(t, p.CreatedAt.Equal(time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)))

	payments, err := store.ListStudentPayments(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, payments, 1)

	reg, err := store.FindRegistration(ctx, 7, 1)
	require.NoError(t, err)
	assert.Equal(t, "10", reg.DiscountPercentage)

	session, err := store.GetSession(ctx, 5)
	require.NoError(t, err)
	assert.True(t, session.IsOpen())
	assert.Nil(t, session.ClosingAmount)
	amountEq(t, 10000, session.OpeningAmount, "opening")

	txs, err := store.ListSessionTransactions(ctx, 5)
	require.NoError(t, err)
	require.Len(t, txs, 2)
	ids := []uint{txs[0].ID, txs[1].ID}

	byTx, err := store.ListPaymentsByTransactions(ctx, ids)
	require.NoError(t, err)
	assert.Len(t, byTx, 1)
	expenses, err := store.ListExpensesByTransactions(ctx, ids)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	amountEq(t, 2000, expenses[0].Amount, "expense")

	methods, err := store.ListPaymentMethods(ctx)
	require.NoError(t, err)
	require.Len(t, methods, 2)
	assert.True(t, methods[0].IsPrincipal)

	pricings, err := store.ListPricings(ctx)
	require.NoError(t, err)
	require.Len(t, pricings, 1)
	amountEq(t, 100000, pricings[0].Amount, "pricing")

	installments, err := store.ListInstallments(ctx)
	require.NoError(t, err)
	assert.Len(t, installments, 2)

	years, err := store.ListAcademicYears(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2025-2026", years[0].Label)
}

func TestGormStore_ImportIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	ds := importSample(t, store)

	require.NoError(t, store.Import(ctx, ds))

	var splits int64
	require.NoError(t, store.db.Model(&paymentSplitRecord{}).Count(&splits).Error)
	assert.Equal(t, int64(2), splits)
	var students int64
	require.NoError(t, store.db.Model(&studentRecord{}).Count(&students).Error)
	assert.Equal(t, int64(1), students)
}

func TestGormStore_ImportRejectsInvalidDataset(t *testing.T) {
	store := setupStore(t)
	ds := &domain.Dataset{Payments: []domain.Payment{{ID: 1}}}

	err := store.Import(context.Background(), ds)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGormStore_NotFound(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)

	_, err := store.GetPayment(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = store.GetSession(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = store.GetStudent(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = store.FindRegistration(ctx, 7, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = store.UpdateSession(ctx, domain.CashRegisterSession{ID: 999, CashRegisterID: 1, Status: domain.SessionClosed})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	empty, err := store.ListPaymentsByTransactions(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestGormStore_UpdateSession_ClosedIsImmutable(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	importSample(t, store)

	session, err := store.GetSession(ctx, 5)
	require.NoError(t, err)
	closedAt := time.Date(2025, 10, 1, 18, 0, 0, 0, time.UTC)

	first := session
	firstAmount := decimal.NewFromInt(13000)
	first.Status, first.ClosingAmount, first.ClosingDate = domain.SessionClosed, &firstAmount, &closedAt
	require.NoError(t, store.UpdateSession(ctx, first))

	second := session
	secondAmount := decimal.NewFromInt(9000)
	second.Status, second.ClosingAmount, second.ClosingDate = domain.SessionClosed, &secondAmount, &closedAt
	err = store.UpdateSession(ctx, second)
	assert.ErrorIs(t, err, domain.ErrAlreadyClosed)

	stored, err := store.GetSession(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionClosed, stored.Status)
	require.NotNil(t, stored.ClosingAmount)
	amountEq(t, 13000, *stored.ClosingAmount, "closing")
}

func TestGormStore_PaymentLifecycle(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	importSample(t, store)

	tx := domain.Transaction{CashRegisterSessionID: 5, TotalAmount: decimal.NewFromInt(3000), Type: domain.TransactionTypeIncome, CreatedAt: time.Now().UTC()}
	require.NoError(t, store.CreateTransaction(ctx, &tx))
	require.NotZero(t, tx.ID)

	p := domain.Payment{
		StudentID:     7,
		InstallmentID: 101,
		TransactionID: tx.ID,
		Amount:        decimal.RequireFromString("3000.50"),
		PaymentMethods: []domain.MethodSplit{
			{PaymentMethodID: 1, Amount: decimal.RequireFromString("1000.25")},
			{PaymentMethodID: 2, Amount: decimal.RequireFromString("2000.25")},
		},
		CreatedAt: tx.CreatedAt,
	}
	require.NoError(t, store.CreatePayment(ctx, &p))
	require.NotZero(t, p.ID)

	got, err := store.GetPayment(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, got.Amount.Equal(decimal.RequireFromString("3000.50")))
	assert.NoError(t, got.CheckSplit())

	require.NoError(t, store.DeletePayment(ctx, p.ID))
	require.NoError(t, store.DeleteTransaction(ctx, tx.ID))
	_, err = store.GetPayment(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	var splits int64
	require.NoError(t, store.db.Model(&paymentSplitRecord{}).Where("payment_id = ?", p.ID).Count(&splits).Error)
	assert.Zero(t, splits)

	assert.NoError(t, store.DeletePayment(ctx, p.ID), "deleting twice is harmless")
}

func TestGormStore_ExpenseLifecycle(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	importSample(t, store)

	tx := domain.Transaction{
		CashRegisterSessionID: 5,
		TotalAmount:           decimal.NewFromInt(1500),
		Type:                  domain.TransactionTypeOutcome,
		CreatedAt:             time.Date(2025, 10, 1, 11, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.CreateTransaction(ctx, &tx))
	e := domain.Expense{TransactionID: tx.ID, ExpenseTypeID: 1, Label: "Encre", Amount: decimal.NewFromInt(1500)}
	require.NoError(t, store.CreateExpense(ctx, &e))
	require.NotZero(t, e.ID)

	require.NoError(t, store.DeleteExpense(ctx, e.ID))
	got, err := store.ListExpensesByTransactions(ctx, []uint{tx.ID})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, store.DeleteExpense(ctx, e.ID), "deleting twice is harmless")
}

func TestGormStore_EnrollmentWriter(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)

	st := domain.Student{FirstName: "Awa", LastName: "Diallo"}
	require.NoError(t, store.CreateStudent(ctx, &st))
	tu := domain.Tutor{StudentID: st.ID, FullName: "Mariam Diallo"}
	require.NoError(t, store.CreateTutor(ctx, &tu))
	reg := domain.Registration{StudentID: st.ID, AcademicYearID: 1, DiscountAmount: "5000"}
	require.NoError(t, store.CreateRegistration(ctx, &reg))
	doc := domain.Document{StudentID: st.ID, Kind: "photo", Path: "uploads/photo.jpg"}
	require.NoError(t, store.CreateDocument(ctx, &doc))

	found, err := store.FindRegistration(ctx, st.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "5000", found.DiscountAmount)

	require.NoError(t, store.DeleteDocument(ctx, doc.ID))
	require.NoError(t, store.DeleteRegistration(ctx, reg.ID))
	require.NoError(t, store.DeleteTutor(ctx, tu.ID))
	require.NoError(t, store.DeleteStudent(ctx, st.ID))

	_, err = store.GetStudent(ctx, st.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGormStore_CashierFlow(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	importSample(t, store)
	active := NewMemoryActiveSessions()
	cashier := usecase.NewCashierUseCase(store, store, store, active)

	session, err := cashier.OpenSession(ctx, usecase.OpenSessionRequest{CashRegisterID: 3, UserID: 11, OpeningAmount: "10000"})
	require.NoError(t, err)

	_, err = cashier.RecordPayment(ctx, usecase.PaymentRequest{
		CashierID:     11,
		StudentID:     7,
		InstallmentID: 101,
		Amount:        "8000",
		Methods: []usecase.MethodAmount{
			{PaymentMethodID: 1, Amount: "5000"},
			{PaymentMethodID: 2, Amount: "3000"},
		},
	})
	require.NoError(t, err)

	_, err = cashier.RecordExpense(ctx, usecase.ExpenseRequest{CashierID: 11, ExpenseTypeID: 4, Label: "Craies", Amount: "2000"})
	require.NoError(t, err)

	_, err = cashier.RecordPayment(ctx, usecase.PaymentRequest{
		CashierID:     11,
		StudentID:     7,
		InstallmentID: 101,
		Amount:        "90000",
		Methods:       []usecase.MethodAmount{{PaymentMethodID: 1, Amount: "90000"}},
	})
	assert.ErrorIs(t, err, domain.ErrExceedsDue)

	report, err := cashier.CloseSession(ctx, session.ID, "13000")
	require.NoError(t, err)
	amountEq(t, 5000, report.Totals.MainMethodAmount, "main")
	amountEq(t, 2000, report.Totals.TotalExpenses, "expenses")
	amountEq(t, 13000, report.Totals.ExpectedAmount, "expected")
	amountEq(t, 0, report.Closing.Difference, "difference")

	_, ok, err := active.Current(ctx, 11)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = cashier.CloseSession(ctx, session.ID, "13000")
	assert.True(t, errors.Is(err, domain.ErrAlreadyClosed))

	stored, err := store.GetSession(ctx, session.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.ClosingAmount)
	amountEq(t, 13000, *stored.ClosingAmount, "closing")
}
