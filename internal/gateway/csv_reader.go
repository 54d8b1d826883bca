package gateway

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"cashdesk/internal/domain"
	"cashdesk/internal/money"
)

// CSVRepository reads a dataset exported as one CSV file per collection.
// Columns are matched by header name, so their order does not matter.
type CSVRepository struct{}

// NewCSVRepository creates a new repository instance.
func NewCSVRepository() *CSVRepository {
	return &CSVRepository{}
}

// Load reads every collection from dir and validates the result. The split
// lines of payments come from payment_splits.csv.
func (r *CSVRepository) Load(ctx context.Context, dir string) (*domain.Dataset, error) {
	var ds domain.Dataset
	splits := make(map[uint][]domain.MethodSplit)

	files := []struct {
		name string
		row  func(row *csvRow)
	}{
		{"payment_methods.csv", func(row *csvRow) {
			ds.PaymentMethods = append(ds.PaymentMethods, domain.PaymentMethod{
				ID:          row.ID("id"),
				Name:        row.String("name"),
				IsPrincipal: row.Bool("is_principal"),
			})
		}},
		{"academic_years.csv", func(row *csvRow) {
			ds.AcademicYears = append(ds.AcademicYears, domain.AcademicYear{
				ID:        row.ID("id"),
				Label:     row.String("label"),
				StartDate: row.Time("start_date"),
				EndDate:   row.Time("end_date"),
			})
		}},
		{"students.csv", func(row *csvRow) {
			ds.Students = append(ds.Students, domain.Student{
				ID:        row.ID("id"),
				Matricule: row.String("matricule"),
				FirstName: row.String("first_name"),
				LastName:  row.String("last_name"),
			})
		}},
		{"pricings.csv", func(row *csvRow) {
			ds.Pricings = append(ds.Pricings, domain.Pricing{
				ID:               row.ID("id"),
				FeeTypeID:        row.ID("fee_type_id"),
				Label:            row.String("label"),
				Amount:           row.Amount("amount"),
				AcademicYearID:   row.ID("academic_year_id"),
				LevelID:          row.ID("level_id"),
				AssignmentTypeID: row.ID("assignment_type_id"),
			})
		}},
		{"installments.csv", func(row *csvRow) {
			ds.Installments = append(ds.Installments, domain.Installment{
				ID:        row.ID("id"),
				PricingID: row.ID("pricing_id"),
				AmountDue: row.Amount("amount_due"),
				DueDate:   row.Time("due_date"),
				Status:    domain.InstallmentStatus(row.String("status")),
			})
		}},
		{"registrations.csv", func(row *csvRow) {
			ds.Registrations = append(ds.Registrations, domain.Registration{
				ID:                 row.ID("id"),
				StudentID:          row.ID("student_id"),
				AcademicYearID:     row.ID("academic_year_id"),
				PricingID:          row.ID("pricing_id"),
				LevelID:            row.ID("level_id"),
				AssignmentTypeID:   row.ID("assignment_type_id"),
				DiscountPercentage: row.String("discount_percentage"),
				DiscountAmount:     row.String("discount_amount"),
			})
		}},
		{"sessions.csv", func(row *csvRow) {
			ds.Sessions = append(ds.Sessions, domain.CashRegisterSession{
				ID:             row.ID("id"),
				CashRegisterID: row.ID("cash_register_id"),
				UserID:         row.ID("user_id"),
				OpeningAmount:  row.Amount("opening_amount"),
				OpeningDate:    row.Time("opening_date"),
				ClosingAmount:  row.OptionalAmount("closing_amount"),
				ClosingDate:    row.OptionalTime("closing_date"),
				Status:         domain.SessionStatus(row.String("status")),
			})
		}},
		{"transactions.csv", func(row *csvRow) {
			ds.Transactions = append(ds.Transactions, domain.Transaction{
				ID:                    row.ID("id"),
				CashRegisterSessionID: row.ID("cash_register_session_id"),
				TotalAmount:           row.Amount("total_amount"),
				Type:                  domain.TransactionType(row.String("transaction_type")),
				CreatedAt:             row.Time("created_at"),
			})
		}},
		{"payment_splits.csv", func(row *csvRow) {
			paymentID := row.ID("payment_id")
			splits[paymentID] = append(splits[paymentID], domain.MethodSplit{
				PaymentMethodID: row.ID("payment_method_id"),
				Amount:          row.Amount("amount"),
			})
		}},
		{"payments.csv", func(row *csvRow) {
			ds.Payments = append(ds.Payments, domain.Payment{
				ID:             row.ID("id"),
				Reference:      row.String("reference"),
				StudentID:      row.ID("student_id"),
				InstallmentID:  row.ID("installment_id"),
				TransactionID:  row.ID("transaction_id"),
				Amount:         row.Amount("amount"),
				CreatedAt:      row.Time("created_at"),
				CashierID:      row.ID("cashier_id"),
				CashRegisterID: row.ID("cash_register_id"),
			})
		}},
		{"expenses.csv", func(row *csvRow) {
			ds.Expenses = append(ds.Expenses, domain.Expense{
				ID:            row.ID("id"),
				TransactionID: row.ID("transaction_id"),
				Amount:        row.Amount("amount"),
				ExpenseTypeID: row.ID("expense_type_id"),
				Label:         row.String("label"),
			})
		}},
	}

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := readCSV(filepath.Join(dir, f.name), f.row); err != nil {
			return nil, err
		}
	}

	for i := range ds.Payments {
		ds.Payments[i].PaymentMethods = splits[ds.Payments[i].ID]
		if ds.Payments[i].PaymentMethods == nil {
			ds.Payments[i].PaymentMethods = []domain.MethodSplit{}
		}
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

// readCSV calls fn for every record of path after the header. fn reads the
// record through the row accessors; the first conversion error aborts.
func readCSV(path string, fn func(row *csvRow)) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("failed to read header from %s: %w", path, err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))] = i
	}

	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("error reading record from %s: %w", path, err)
		}
		row := &csvRow{cols: cols, record: record}
		fn(row)
		if row.err != nil {
			return domain.WrapError(domain.CodeInvalidInput, fmt.Sprintf("%s line %d", filepath.Base(path), line), row.err)
		}
	}
}

// csvRow reads typed columns from one record. The first failure is kept in
// err and later reads return zero values.
type csvRow struct {
	cols   map[string]int
	record []string
	err    error
}

func (r *csvRow) String(col string) string {
	i, ok := r.cols[col]
	if !ok || i >= len(r.record) {
		return ""
	}
	return strings.TrimSpace(r.record[i])
}

func (r *csvRow) fail(col, raw string, err error) {
	if r.err == nil {
		r.err = fmt.Errorf("could not parse %s '%s': %w", col, raw, err)
	}
}

func (r *csvRow) ID(col string) uint {
	raw := r.String(col)
	if raw == "" {
		return 0
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		r.fail(col, raw, err)
		return 0
	}
	return uint(id)
}

func (r *csvRow) Bool(col string) bool {
	raw := r.String(col)
	if raw == "" {
		return false
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		r.fail(col, raw, err)
	}
	return b
}

func (r *csvRow) Amount(col string) decimal.Decimal {
	raw := r.String(col)
	d, err := money.ParseStrict(raw)
	if err != nil {
		r.fail(col, raw, err)
		return decimal.Zero
	}
	return d
}

func (r *csvRow) OptionalAmount(col string) *decimal.Decimal {
	if r.String(col) == "" {
		return nil
	}
	d := r.Amount(col)
	return &d
}

func (r *csvRow) Time(col string) time.Time {
	raw := r.String(col)
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, time.DateTime, time.DateOnly} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	r.fail(col, raw, errors.New("expected RFC3339, 2006-01-02 15:04:05 or 2006-01-02"))
	return time.Time{}
}

func (r *csvRow) OptionalTime(col string) *time.Time {
	if r.String(col) == "" {
		return nil
	}
	t := r.Time(col)
	return &t
}
