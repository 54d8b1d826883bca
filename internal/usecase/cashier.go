package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"cashdesk/internal/billing"
	"cashdesk/internal/cashregister"
	"cashdesk/internal/domain"
	"cashdesk/internal/money"
	"cashdesk/internal/saga"
)

// MethodAmount is one line of a payment split as entered at the desk.
type MethodAmount struct {
	PaymentMethodID uint   `json:"id"`
	Amount          string `json:"amount"`
}

// PaymentRequest asks to collect a payment. A zero SessionID means the
// cashier's active session.
type PaymentRequest struct {
	SessionID     uint           `json:"session_id"`
	CashierID     uint           `json:"cashier_id"`
	StudentID     uint           `json:"student_id"`
	InstallmentID uint           `json:"installment_id"`
	Amount        string         `json:"amount"`
	Methods       []MethodAmount `json:"payment_methods"`
}

// ExpenseRequest asks to pay an expense out of a session's drawer.
type ExpenseRequest struct {
	SessionID     uint   `json:"session_id"`
	CashierID     uint   `json:"cashier_id"`
	ExpenseTypeID uint   `json:"expense_type_id"`
	Label         string `json:"label"`
	Amount        string `json:"amount"`
}

// OpenSessionRequest asks to open a session on a register.
type OpenSessionRequest struct {
	CashRegisterID uint   `json:"cash_register_id"`
	UserID         uint   `json:"user_id"`
	OpeningAmount  string `json:"opening_amount"`
}

// CashierUseCase runs the cash desk: sessions, payments and expenses.
type CashierUseCase struct {
	sessions         SessionRepository
	ledger           LedgerReader
	writer           LedgerWriter
	active           ActiveSessions
	allowOverpayment bool
	logger           *slog.Logger
	now              func() time.Time
}

type CashierOption func(*CashierUseCase)

// WithOverpayment lets a payment exceed the remaining balance of its pricing.
func WithOverpayment(allow bool) CashierOption {
	return func(uc *CashierUseCase) { uc.allowOverpayment = allow }
}

func WithLogger(l *slog.Logger) CashierOption {
	return func(uc *CashierUseCase) { uc.logger = l }
}

func WithClock(now func() time.Time) CashierOption {
	return func(uc *CashierUseCase) { uc.now = now }
}

// NewCashierUseCase creates a new instance of the usecase.
func NewCashierUseCase(sessions SessionRepository, ledger LedgerReader, writer LedgerWriter, active ActiveSessions, opts ...CashierOption) *CashierUseCase {
	uc := &CashierUseCase{
		sessions: sessions,
		ledger:   ledger,
		writer:   writer,
		active:   active,
		logger:   slog.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// OpenSession opens a session and makes it the cashier's active one. A
// cashier whose active session is still open cannot open another.
func (uc *CashierUseCase) OpenSession(ctx context.Context, req OpenSessionRequest) (*domain.CashRegisterSession, error) {
	if req.UserID == 0 {
		return nil, domain.NewError(domain.CodeInvalidInput, "user is required")
	}
	currentID, ok, err := uc.active.Current(ctx, req.UserID)
	if err != nil {
		return nil, storeErr("read active session", err)
	}
	if ok {
		current, err := uc.sessions.GetSession(ctx, currentID)
		if err != nil && !isNotFound(err) {
			return nil, storeErr("get active session", err)
		}
		if err == nil && current.IsOpen() {
			return nil, domain.NewError(domain.CodeInvalidInput,
				fmt.Sprintf("user %d already has session %d open", req.UserID, current.ID))
		}
	}

	session, err := cashregister.Open(req.CashRegisterID, req.UserID, req.OpeningAmount, uc.now())
	if err != nil {
		return nil, err
	}
	if err := uc.sessions.CreateSession(ctx, &session); err != nil {
		return nil, storeErr("create session", err)
	}
	if err := uc.active.Set(ctx, session.UserID, session.ID); err != nil {
		return nil, storeErr("set active session", err)
	}
	uc.logger.Info("session opened",
		"session_id", session.ID,
		"cash_register_id", session.CashRegisterID,
		"user_id", session.UserID,
		"opening_amount", session.OpeningAmount.String())
	return &session, nil
}

// RecordPayment collects a payment into an open session. The amount and the
// split are checked before anything is written. The income transaction and
// the payment are created in that order; if the payment cannot be written
// the transaction is deleted again.
func (uc *CashierUseCase) RecordPayment(ctx context.Context, req PaymentRequest) (*domain.Payment, error) {
	s := saga.New("record_payment", uc.logger)
	payment, err := uc.recordPayment(ctx, s, req)
	if err != nil {
		return nil, s.Compensate(ctx, err)
	}
	return payment, nil
}

func (uc *CashierUseCase) recordPayment(ctx context.Context, s *saga.Saga, req PaymentRequest) (*domain.Payment, error) {
	payment, err := preparePayment(req)
	if err != nil {
		return nil, err
	}
	session, err := uc.openSession(ctx, req.SessionID, req.CashierID)
	if err != nil {
		return nil, err
	}
	if err := uc.checkMethods(ctx, payment); err != nil {
		return nil, err
	}
	if err := uc.checkBalance(ctx, payment); err != nil {
		return nil, err
	}

	now := uc.now()
	tx := domain.Transaction{
		CashRegisterSessionID: session.ID,
		TotalAmount:           payment.Amount,
		Type:                  domain.TransactionTypeIncome,
		CreatedAt:             now,
	}
	err = s.Run(ctx, "create transaction",
		func(ctx context.Context) error {
			return storeErr("create transaction", uc.writer.CreateTransaction(ctx, &tx))
		},
		func(ctx context.Context) error { return uc.writer.DeleteTransaction(ctx, tx.ID) })
	if err != nil {
		return nil, err
	}

	payment.TransactionID = tx.ID
	payment.CreatedAt = now
	payment.CashRegisterID = session.CashRegisterID
	payment.Reference = uuid.NewString()
	err = s.Run(ctx, "create payment",
		func(ctx context.Context) error {
			return storeErr("create payment", uc.writer.CreatePayment(ctx, &payment))
		},
		func(ctx context.Context) error { return uc.writer.DeletePayment(ctx, payment.ID) })
	if err != nil {
		return nil, err
	}

	uc.logger.Info("payment recorded",
		"payment_id", payment.ID,
		"reference", payment.Reference,
		"session_id", session.ID,
		"student_id", payment.StudentID,
		"amount", payment.Amount.String())
	return &payment, nil
}

// preparePayment parses a request into a payment and checks its split.
func preparePayment(req PaymentRequest) (domain.Payment, error) {
	if req.StudentID == 0 || req.InstallmentID == 0 {
		return domain.Payment{}, domain.NewError(domain.CodeInvalidInput, "student and installment are required")
	}
	return parsePayment(req)
}

func parsePayment(req PaymentRequest) (domain.Payment, error) {
	amount, err := money.ParseStrict(req.Amount)
	if err != nil {
		return domain.Payment{}, err
	}
	if !amount.IsPositive() {
		return domain.Payment{}, domain.NewError(domain.CodeInvalidAmount, "payment amount must be positive")
	}
	payment := domain.Payment{
		StudentID:      req.StudentID,
		InstallmentID:  req.InstallmentID,
		CashierID:      req.CashierID,
		Amount:         amount,
		PaymentMethods: make([]domain.MethodSplit, 0, len(req.Methods)),
	}
	for _, m := range req.Methods {
		if m.PaymentMethodID == 0 {
			return domain.Payment{}, domain.NewError(domain.CodeInvalidInput, "payment method id is required")
		}
		part, err := money.ParseNonNegative(m.Amount)
		if err != nil {
			return domain.Payment{}, fmt.Errorf("payment method %d: %w", m.PaymentMethodID, err)
		}
		payment.PaymentMethods = append(payment.PaymentMethods, domain.MethodSplit{
			PaymentMethodID: m.PaymentMethodID,
			Amount:          part,
		})
	}
	if err := payment.CheckSplit(); err != nil {
		return domain.Payment{}, err
	}
	return payment, nil
}

// openSession resolves the session a write goes to and checks it is open.
func (uc *CashierUseCase) openSession(ctx context.Context, sessionID, cashierID uint) (domain.CashRegisterSession, error) {
	if sessionID == 0 {
		id, ok, err := uc.active.Current(ctx, cashierID)
		if err != nil {
			return domain.CashRegisterSession{}, storeErr("read active session", err)
		}
		if !ok {
			return domain.CashRegisterSession{}, domain.NewError(domain.CodeSessionNotOpen,
				fmt.Sprintf("user %d has no active session", cashierID))
		}
		sessionID = id
	}
	session, err := uc.sessions.GetSession(ctx, sessionID)
	if isNotFound(err) {
		return domain.CashRegisterSession{}, domain.WrapError(domain.CodeSessionNotOpen,
			fmt.Sprintf("session %d", sessionID), err)
	}
	if err != nil {
		return domain.CashRegisterSession{}, storeErr("get session", err)
	}
	if !session.IsOpen() {
		return domain.CashRegisterSession{}, domain.NewError(domain.CodeSessionNotOpen,
			fmt.Sprintf("session %d is %s", session.ID, session.Status))
	}
	return session, nil
}

// confirmOpen re-reads a session after a write. A close that committed in
// between has already reported its totals, so the write must be undone.
func (uc *CashierUseCase) confirmOpen(ctx context.Context, sessionID uint) error {
	session, err := uc.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return storeErr("get session", err)
	}
	if !session.IsOpen() {
		return domain.NewError(domain.CodeSessionNotOpen,
			fmt.Sprintf("session %d was closed during the write", session.ID))
	}
	return nil
}

// checkMethods rejects split lines on a payment method that is not
// configured.
func (uc *CashierUseCase) checkMethods(ctx context.Context, payment domain.Payment) error {
	methods, err := uc.sessions.ListPaymentMethods(ctx)
	if err != nil {
		return storeErr("list payment methods", err)
	}
	known := make(map[uint]bool, len(methods))
	for _, m := range methods {
		known[m.ID] = true
	}
	for _, split := range payment.PaymentMethods {
		if !known[split.PaymentMethodID] {
			return domain.NewError(domain.CodeInvalidInput,
				fmt.Sprintf("payment method %d is not configured", split.PaymentMethodID))
		}
	}
	return nil
}

// checkBalance rejects a payment larger than what the student still owes on
// the installment's pricing.
func (uc *CashierUseCase) checkBalance(ctx context.Context, payment domain.Payment) error {
	installments, err := uc.ledger.ListInstallments(ctx)
	if err != nil {
		return storeErr("list installments", err)
	}
	var inst *domain.Installment
	for i := range installments {
		if installments[i].ID == payment.InstallmentID {
			inst = &installments[i]
			break
		}
	}
	if inst == nil {
		return domain.NewError(domain.CodeNotFound, fmt.Sprintf("installment %d", payment.InstallmentID))
	}
	if uc.allowOverpayment {
		return nil
	}

	pricings, err := uc.ledger.ListPricings(ctx)
	if err != nil {
		return storeErr("list pricings", err)
	}
	var pricing *domain.Pricing
	for i := range pricings {
		if pricings[i].ID == inst.PricingID {
			pricing = &pricings[i]
			break
		}
	}
	if pricing == nil {
		return domain.NewError(domain.CodeNotFound, fmt.Sprintf("pricing %d", inst.PricingID))
	}
	paid, err := uc.ledger.ListStudentPayments(ctx, payment.StudentID)
	if err != nil {
		return storeErr("list payments", err)
	}

	remaining := billing.PricingBalance(payment.StudentID, *pricing, installments, paid)
	if payment.Amount.GreaterThan(remaining) {
		return domain.NewError(domain.CodeExceedsDue, fmt.Sprintf("payment %s exceeds remaining %s on %s",
			payment.Amount.String(), decimal.Max(remaining, decimal.Zero).String(), pricing.Label))
	}
	return nil
}

// RecordExpense pays an expense out of an open session.
func (uc *CashierUseCase) RecordExpense(ctx context.Context, req ExpenseRequest) (*domain.Expense, error) {
	amount, err := money.ParseStrict(req.Amount)
	if err != nil {
		return nil, err
	}
	if !amount.IsPositive() {
		return nil, domain.NewError(domain.CodeInvalidAmount, "expense amount must be positive")
	}
	session, err := uc.openSession(ctx, req.SessionID, req.CashierID)
	if err != nil {
		return nil, err
	}

	s := saga.New("record_expense", uc.logger)
	tx := domain.Transaction{
		CashRegisterSessionID: session.ID,
		TotalAmount:           amount,
		Type:                  domain.TransactionTypeOutcome,
		CreatedAt:             uc.now(),
	}
	expense := domain.Expense{
		Amount:        amount,
		ExpenseTypeID: req.ExpenseTypeID,
		Label:         req.Label,
	}
	err = s.Run(ctx, "create transaction",
		func(ctx context.Context) error {
			return storeErr("create transaction", uc.writer.CreateTransaction(ctx, &tx))
		},
		func(ctx context.Context) error { return uc.writer.DeleteTransaction(ctx, tx.ID) })
	if err == nil {
		expense.TransactionID = tx.ID
		err = s.Run(ctx, "create expense",
			func(ctx context.Context) error {
				return storeErr("create expense", uc.writer.CreateExpense(ctx, &expense))
			},
			func(ctx context.Context) error { return uc.writer.DeleteExpense(ctx, expense.ID) })
	}
	if err == nil {
		err = s.Run(ctx, "confirm session", func(ctx context.Context) error {
			return uc.confirmOpen(ctx, session.ID)
		}, nil)
	}
	if err != nil {
		return nil, s.Compensate(ctx, err)
	}

	uc.logger.Info("expense recorded",
		"expense_id", expense.ID,
		"session_id", session.ID,
		"amount", amount.String())
	return &expense, nil
}

// SessionReport computes the totals of a session and, once it is closed,
// the comparison of declared and expected amounts.
func (uc *CashierUseCase) SessionReport(ctx context.Context, sessionID uint) (*domain.SessionReport, error) {
	session, err := uc.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, storeErr(fmt.Sprintf("get session %d", sessionID), err)
	}
	return uc.report(ctx, session)
}

func (uc *CashierUseCase) report(ctx context.Context, session domain.CashRegisterSession) (*domain.SessionReport, error) {
	transactions, err := uc.sessions.ListSessionTransactions(ctx, session.ID)
	if err != nil {
		return nil, storeErr("list transactions", err)
	}
	ids := make([]uint, 0, len(transactions))
	for _, tx := range transactions {
		ids = append(ids, tx.ID)
	}
	payments, err := uc.sessions.ListPaymentsByTransactions(ctx, ids)
	if err != nil {
		return nil, storeErr("list payments", err)
	}
	expenses, err := uc.sessions.ListExpensesByTransactions(ctx, ids)
	if err != nil {
		return nil, storeErr("list expenses", err)
	}
	methods, err := uc.sessions.ListPaymentMethods(ctx)
	if err != nil {
		return nil, storeErr("list payment methods", err)
	}

	totals := cashregister.ComputeSessionTotals(session, transactions, payments, expenses, methods)
	return &domain.SessionReport{
		Session: session,
		Totals:  totals,
		Closing: cashregister.Summarize(session, totals),
	}, nil
}

// CloseSession closes a session with the amount the cashier counted and
// clears the cashier's active-session pointer if it still names it.
func (uc *CashierUseCase) CloseSession(ctx context.Context, sessionID uint, rawAmount string) (*domain.SessionReport, error) {
	session, err := uc.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, storeErr(fmt.Sprintf("get session %d", sessionID), err)
	}

	closed := session
	if err := cashregister.Close(&closed, rawAmount, uc.now()); err != nil {
		return nil, err
	}
	if err := uc.sessions.UpdateSession(ctx, closed); err != nil {
		return nil, storeErr("update session", err)
	}
	if _, err := uc.active.ClearIf(ctx, closed.UserID, closed.ID); err != nil {
		uc.logger.Warn("active session not cleared", "session_id", closed.ID, "user_id", closed.UserID, "error", err)
	}

	report, err := uc.report(ctx, closed)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("session closed",
		"session_id", closed.ID,
		"expected", report.Closing.Expected.String(),
		"declared", report.Closing.Declared.String(),
		"difference", report.Closing.Difference.String())
	return report, nil
}
