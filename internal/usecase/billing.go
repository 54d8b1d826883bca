package usecase

import (
	"context"

	"cashdesk/internal/billing"
	"cashdesk/internal/domain"
)

// BillingUseCase answers questions about what a student owes and has paid.
type BillingUseCase struct {
	ledger LedgerReader
}

// NewBillingUseCase creates a new instance of the usecase.
func NewBillingUseCase(ledger LedgerReader) *BillingUseCase {
	return &BillingUseCase{ledger: ledger}
}

// Statement builds the student's position on the fees of cohort. When the
// cohort only names an academic year, the level and assignment type are
// taken from the student's registration for that year. The registration's
// discount applies to the total; without a registration there is none.
func (uc *BillingUseCase) Statement(ctx context.Context, studentID uint, cohort domain.Cohort) (*domain.Statement, error) {
	if studentID == 0 || cohort.AcademicYearID == 0 {
		return nil, domain.NewError(domain.CodeInvalidInput, "student and academic year are required")
	}

	var reg *domain.Registration
	found, err := uc.ledger.FindRegistration(ctx, studentID, cohort.AcademicYearID)
	switch {
	case err == nil:
		reg = &found
		if cohort.LevelID == 0 && cohort.AssignmentTypeID == 0 {
			cohort = found.Cohort()
		}
	case !isNotFound(err):
		return nil, storeErr("find registration", err)
	}

	payments, err := uc.ledger.ListStudentPayments(ctx, studentID)
	if err != nil {
		return nil, storeErr("list payments", err)
	}
	pricings, err := uc.ledger.ListPricings(ctx)
	if err != nil {
		return nil, storeErr("list pricings", err)
	}
	installments, err := uc.ledger.ListInstallments(ctx)
	if err != nil {
		return nil, storeErr("list installments", err)
	}

	fees := billing.PaymentSummary(studentID, payments, pricings, installments, cohort)
	totals := billing.TotalPaymentAmounts(fees)
	discount := billing.ApplyDiscount(totals.TotalAmount, reg)

	return &domain.Statement{
		StudentID:          studentID,
		Cohort:             cohort,
		Fees:               fees,
		Totals:             totals,
		Discount:           discount,
		RemainingAfterDisc: discount.TotalAfterDiscount.Sub(totals.TotalPaid),
	}, nil
}

// Receipt returns the balance snapshot of a payment, or nil when the payment
// or any record it links to is missing.
func (uc *BillingUseCase) Receipt(ctx context.Context, paymentID uint) (*domain.PaymentDetails, error) {
	payment, err := uc.ledger.GetPayment(ctx, paymentID)
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr("get payment", err)
	}

	payments, err := uc.ledger.ListStudentPayments(ctx, payment.StudentID)
	if err != nil {
		return nil, storeErr("list payments", err)
	}
	installments, err := uc.ledger.ListInstallments(ctx)
	if err != nil {
		return nil, storeErr("list installments", err)
	}
	pricings, err := uc.ledger.ListPricings(ctx)
	if err != nil {
		return nil, storeErr("list pricings", err)
	}
	years, err := uc.ledger.ListAcademicYears(ctx)
	if err != nil {
		return nil, storeErr("list academic years", err)
	}

	ledger := billing.Ledger{
		Payments:      ensurePayment(payments, payment),
		Installments:  installments,
		Pricings:      pricings,
		AcademicYears: years,
	}
	student, err := uc.ledger.GetStudent(ctx, payment.StudentID)
	switch {
	case err == nil:
		ledger.Students = []domain.Student{student}
	case !isNotFound(err):
		return nil, storeErr("get student", err)
	}

	return billing.PaymentDetails(paymentID, ledger), nil
}

// InstallmentStatuses derives the status of every installment for a student.
func (uc *BillingUseCase) InstallmentStatuses(ctx context.Context, studentID uint) (map[uint]domain.InstallmentStatus, error) {
	payments, err := uc.ledger.ListStudentPayments(ctx, studentID)
	if err != nil {
		return nil, storeErr("list payments", err)
	}
	installments, err := uc.ledger.ListInstallments(ctx)
	if err != nil {
		return nil, storeErr("list installments", err)
	}
	return billing.InstallmentStatuses(studentID, installments, payments), nil
}

func ensurePayment(payments []domain.Payment, p domain.Payment) []domain.Payment {
	for _, other := range payments {
		if other.ID == p.ID {
			return payments
		}
	}
	return append(payments, p)
}
