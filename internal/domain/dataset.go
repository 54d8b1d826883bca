package domain

import (
	"fmt"

	"cashdesk/internal/validation"
)

// Dataset is a full export of the collections the core reads.
type Dataset struct {
	PaymentMethods []PaymentMethod
	AcademicYears  []AcademicYear
	Students       []Student
	Pricings       []Pricing
	Installments   []Installment
	Registrations  []Registration
	Sessions       []CashRegisterSession
	Transactions   []Transaction
	Payments       []Payment
	Expenses       []Expense
}

// Validate checks every row and the references between collections. It
// returns an INVALID_INPUT error listing all violations.
func (d *Dataset) Validate() error {
	v := make(validation.Violations)

	pricings := make(map[uint]bool, len(d.Pricings))
	for i, p := range d.Pricings {
		v.Merge(fmt.Sprintf("pricings[%d].", i), p.Validate())
		pricings[p.ID] = true
	}
	installments := make(map[uint]bool, len(d.Installments))
	for i, inst := range d.Installments {
		v.Merge(fmt.Sprintf("installments[%d].", i), inst.Validate())
		if !pricings[inst.PricingID] {
			v[fmt.Sprintf("installments[%d].pricing_id", i)] = string(CodeNotFound)
		}
		installments[inst.ID] = true
	}
	for i, r := range d.Registrations {
		v.Merge(fmt.Sprintf("registrations[%d].", i), r.Validate())
	}
	sessions := make(map[uint]bool, len(d.Sessions))
	for i, s := range d.Sessions {
		v.Merge(fmt.Sprintf("sessions[%d].", i), s.Validate())
		sessions[s.ID] = true
	}
	transactions := make(map[uint]bool, len(d.Transactions))
	for i, t := range d.Transactions {
		v.Merge(fmt.Sprintf("transactions[%d].", i), t.Validate())
		if !sessions[t.CashRegisterSessionID] {
			v[fmt.Sprintf("transactions[%d].cash_register_session_id", i)] = string(CodeNotFound)
		}
		transactions[t.ID] = true
	}
	for i, p := range d.Payments {
		v.Merge(fmt.Sprintf("payments[%d].", i), p.Validate())
		if !installments[p.InstallmentID] {
			v[fmt.Sprintf("payments[%d].installment_id", i)] = string(CodeNotFound)
		}
		if !transactions[p.TransactionID] {
			v[fmt.Sprintf("payments[%d].transaction_id", i)] = string(CodeNotFound)
		}
	}
	for i, e := range d.Expenses {
		v.Merge(fmt.Sprintf("expenses[%d].", i), e.Validate())
		if !transactions[e.TransactionID] {
			v[fmt.Sprintf("expenses[%d].transaction_id", i)] = string(CodeNotFound)
		}
	}

	if !v.Empty() {
		return NewError(CodeInvalidInput, "invalid dataset: "+v.Error())
	}
	return nil
}
