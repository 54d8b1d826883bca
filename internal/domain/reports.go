package domain

import "github.com/shopspring/decimal"

// FeeTypeSummary is the paid-versus-due position of a student on one fee type.
type FeeTypeSummary struct {
	FeeTypeID uint            `json:"fee_type_id"`
	Label     string          `json:"label"`
	Total     decimal.Decimal `json:"total"`
	Paid      decimal.Decimal `json:"paid"`
	PricingID uint            `json:"pricing_id"`
}

// PaymentTotals reduces a summary. Remaining is negative when overpaid.
type PaymentTotals struct {
	TotalAmount     decimal.Decimal `json:"total_amount"`
	TotalPaid       decimal.Decimal `json:"total_paid"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
}

// DiscountResult is the outcome of applying a registration discount to a total.
// Conflict is set when both a fixed amount and a percentage were present; the
// fixed amount is applied and the percentage is only carried for display.
type DiscountResult struct {
	DiscountAmount     decimal.Decimal `json:"discount_amount"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	TotalAfterDiscount decimal.Decimal `json:"total_after_discount"`
	Conflict           bool            `json:"conflict,omitempty"`
}

// PaymentDetails is the balance snapshot printed on a payment receipt.
type PaymentDetails struct {
	Payment       Payment         `json:"payment"`
	Student       *Student        `json:"student,omitempty"`
	AcademicYear  AcademicYear    `json:"academic_year"`
	FeeTypeLabel  string          `json:"fee_type_label"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
	BalanceBefore decimal.Decimal `json:"balance_before"`
	BalanceAfter  decimal.Decimal `json:"balance_after"`
}

type MethodTotal struct {
	PaymentMethodID uint            `json:"payment_method_id"`
	Name            string          `json:"name"`
	IsPrincipal     bool            `json:"is_principal"`
	Amount          decimal.Decimal `json:"amount"`
}

// SessionTotals is the computed cash position of a session.
// ExpectedAmount = opening + principal method takings - expenses.
type SessionTotals struct {
	SessionID           uint            `json:"session_id"`
	OpeningAmount       decimal.Decimal `json:"opening_amount"`
	PaymentMethods      []MethodTotal   `json:"payment_methods"`
	PaymentMethodsTotal decimal.Decimal `json:"payment_methods_total"`
	TotalExpenses       decimal.Decimal `json:"total_expenses"`
	MainMethodAmount    decimal.Decimal `json:"main_method_amount"`
	ExpectedAmount      decimal.Decimal `json:"expected_amount"`
	TransactionsTotal   decimal.Decimal `json:"transactions_total"`
	TransactionCount    int             `json:"transaction_count"`
}

// ClosingSummary compares the declared closing amount with the expected one.
type ClosingSummary struct {
	Expected   decimal.Decimal `json:"expected"`
	Declared   decimal.Decimal `json:"declared"`
	Difference decimal.Decimal `json:"difference"`
}

// Statement is a student's full billing position for a cohort.
type Statement struct {
	StudentID          uint             `json:"student_id"`
	Cohort             Cohort           `json:"cohort"`
	Fees               []FeeTypeSummary `json:"fees"`
	Totals             PaymentTotals    `json:"totals"`
	Discount           DiscountResult   `json:"discount"`
	RemainingAfterDisc decimal.Decimal  `json:"remaining_after_discount"`
}

type SessionReport struct {
	Session CashRegisterSession `json:"session"`
	Totals  SessionTotals       `json:"totals"`
	Closing *ClosingSummary     `json:"closing,omitempty"`
}
