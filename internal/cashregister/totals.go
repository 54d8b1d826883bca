// Package cashregister computes the cash position of a register session and
// enforces its open → closed lifecycle.
package cashregister

import (
	"sort"

	"github.com/shopspring/decimal"

	"cashdesk/internal/domain"
)

// ComputeSessionTotals computes the takings of session per payment method,
// its expenses and the amount expected in the drawer:
//
//	expected = opening + principal method takings - expenses
//
// Only the principal method feeds the expectation; other methods (mobile
// money, transfers) never reach the drawer. Payments and expenses are
// attributed to the session through their owning transaction, so callers may
// pass wider collections than the session's own.
func ComputeSessionTotals(session domain.CashRegisterSession, transactions []domain.Transaction, payments []domain.Payment, expenses []domain.Expense, methods []domain.PaymentMethod) domain.SessionTotals {
	totals := domain.SessionTotals{
		SessionID:           session.ID,
		OpeningAmount:       session.OpeningAmount,
		PaymentMethods:      []domain.MethodTotal{},
		PaymentMethodsTotal: decimal.Zero,
		TotalExpenses:       decimal.Zero,
		MainMethodAmount:    decimal.Zero,
		TransactionsTotal:   decimal.Zero,
	}

	inSession := make(map[uint]bool)
	for _, tx := range transactions {
		if tx.CashRegisterSessionID != session.ID {
			continue
		}
		inSession[tx.ID] = true
		totals.TransactionCount++
		if tx.Type == domain.TransactionTypeIncome {
			totals.TransactionsTotal = totals.TransactionsTotal.Add(tx.TotalAmount.Abs())
		}
	}

	byMethod := make(map[uint]decimal.Decimal)
	for _, p := range payments {
		if !inSession[p.TransactionID] {
			continue
		}
		for _, split := range p.PaymentMethods {
			byMethod[split.PaymentMethodID] = byMethod[split.PaymentMethodID].Add(split.Amount)
		}
	}

	methodsByID := make(map[uint]domain.PaymentMethod, len(methods))
	for _, m := range methods {
		methodsByID[m.ID] = m
	}
	for id, amount := range byMethod {
		m := methodsByID[id]
		totals.PaymentMethods = append(totals.PaymentMethods, domain.MethodTotal{
			PaymentMethodID: id,
			Name:            m.Name,
			IsPrincipal:     m.IsPrincipal,
			Amount:          amount,
		})
		totals.PaymentMethodsTotal = totals.PaymentMethodsTotal.Add(amount)
	}
	sort.Slice(totals.PaymentMethods, func(i, j int) bool {
		return totals.PaymentMethods[i].PaymentMethodID < totals.PaymentMethods[j].PaymentMethodID
	})

	if principal, ok := PrincipalMethod(methods); ok {
		if amount, used := byMethod[principal.ID]; used {
			totals.MainMethodAmount = amount
		}
	}

	for _, e := range expenses {
		if inSession[e.TransactionID] {
			totals.TotalExpenses = totals.TotalExpenses.Add(e.Amount.Abs())
		}
	}

	totals.ExpectedAmount = session.OpeningAmount.Add(totals.MainMethodAmount).Sub(totals.TotalExpenses)
	return totals
}

// PrincipalMethod returns the principal method with the lowest id. A
// configuration without one is tolerated: ok is false.
func PrincipalMethod(methods []domain.PaymentMethod) (domain.PaymentMethod, bool) {
	var found domain.PaymentMethod
	ok := false
	for _, m := range methods {
		if m.IsPrincipal && (!ok || m.ID < found.ID) {
			found, ok = m, true
		}
	}
	return found, ok
}
