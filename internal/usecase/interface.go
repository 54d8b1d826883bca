package usecase

import (
	"context"

	"cashdesk/internal/domain"
)

// The usecase layer depends on these interfaces, not on a concrete store.
// Implementations return an error matching domain.ErrNotFound when a record
// does not exist; any other error is treated as a failed persistence call.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go

// LedgerReader reads the billing side of the ledger.
type LedgerReader interface {
	GetStudent(ctx context.Context, id uint) (domain.Student, error)
	GetPayment(ctx context.Context, id uint) (domain.Payment, error)
	ListStudentPayments(ctx context.Context, studentID uint) ([]domain.Payment, error)
	ListPricings(ctx context.Context) ([]domain.Pricing, error)
	ListInstallments(ctx context.Context) ([]domain.Installment, error)
	ListAcademicYears(ctx context.Context) ([]domain.AcademicYear, error)
	FindRegistration(ctx context.Context, studentID, academicYearID uint) (domain.Registration, error)
}

// SessionRepository reads and writes cash-register sessions and the
// transactions recorded under them.
type SessionRepository interface {
	GetSession(ctx context.Context, id uint) (domain.CashRegisterSession, error)
	CreateSession(ctx context.Context, s *domain.CashRegisterSession) error
	// UpdateSession only rewrites an open session; a closed one fails with
	// ALREADY_CLOSED.
	UpdateSession(ctx context.Context, s domain.CashRegisterSession) error
	ListSessionTransactions(ctx context.Context, sessionID uint) ([]domain.Transaction, error)
	ListPaymentsByTransactions(ctx context.Context, transactionIDs []uint) ([]domain.Payment, error)
	ListExpensesByTransactions(ctx context.Context, transactionIDs []uint) ([]domain.Expense, error)
	ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error)
}

// LedgerWriter creates ledger entries. Create methods assign the ID.
type LedgerWriter interface {
	CreateTransaction(ctx context.Context, tx *domain.Transaction) error
	DeleteTransaction(ctx context.Context, id uint) error
	CreatePayment(ctx context.Context, p *domain.Payment) error
	DeletePayment(ctx context.Context, id uint) error
	CreateExpense(ctx context.Context, e *domain.Expense) error
	DeleteExpense(ctx context.Context, id uint) error
}

// EnrollmentWriter creates the records of a new enrollment.
type EnrollmentWriter interface {
	CreateStudent(ctx context.Context, s *domain.Student) error
	DeleteStudent(ctx context.Context, id uint) error
	CreateTutor(ctx context.Context, t *domain.Tutor) error
	DeleteTutor(ctx context.Context, id uint) error
	CreateRegistration(ctx context.Context, r *domain.Registration) error
	DeleteRegistration(ctx context.Context, id uint) error
	CreateDocument(ctx context.Context, d *domain.Document) error
	DeleteDocument(ctx context.Context, id uint) error
}

// ActiveSessions tracks the session each cashier is currently working in.
type ActiveSessions interface {
	Current(ctx context.Context, cashierID uint) (sessionID uint, ok bool, err error)
	Set(ctx context.Context, cashierID, sessionID uint) error
	// ClearIf removes the pointer only while it still names sessionID.
	ClearIf(ctx context.Context, cashierID, sessionID uint) (cleared bool, err error)
}
