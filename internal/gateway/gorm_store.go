package gateway

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cashdesk/internal/domain"
)

const importBatchSize = 500

// GormStore persists the ledger through gorm. It implements every
// repository interface of the usecase layer.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates or updates the schema.
func (s *GormStore) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(allRecords()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// Import upserts a validated dataset in one transaction. Rows are matched
// by primary key, so importing the same export twice is harmless.
func (s *GormStore) Import(ctx context.Context, ds *domain.Dataset) error {
	if err := ds.Validate(); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		upsert := tx.Clauses(clause.OnConflict{UpdateAll: true}).Session(&gorm.Session{})

		steps := []struct {
			name    string
			records any
			n       int
		}{
			{"payment methods", mapRecords(ds.PaymentMethods, func(m domain.PaymentMethod) paymentMethodRecord {
				return paymentMethodRecord{ID: m.ID, Name: m.Name, IsPrincipal: m.IsPrincipal}
			}), len(ds.PaymentMethods)},
			{"academic years", mapRecords(ds.AcademicYears, func(y domain.AcademicYear) academicYearRecord {
				return academicYearRecord{ID: y.ID, Label: y.Label, StartDate: y.StartDate, EndDate: y.EndDate}
			}), len(ds.AcademicYears)},
			{"students", mapRecords(ds.Students, func(st domain.Student) studentRecord {
				return studentRecord{ID: st.ID, Matricule: st.Matricule, FirstName: st.FirstName, LastName: st.LastName}
			}), len(ds.Students)},
			{"pricings", mapRecords(ds.Pricings, func(p domain.Pricing) pricingRecord {
				return pricingRecord{ID: p.ID, FeeTypeID: p.FeeTypeID, Label: p.Label, Amount: p.Amount,
					AcademicYearID: p.AcademicYearID, LevelID: p.LevelID, AssignmentTypeID: p.AssignmentTypeID}
			}), len(ds.Pricings)},
			{"installments", mapRecords(ds.Installments, func(i domain.Installment) installmentRecord {
				return installmentRecord{ID: i.ID, PricingID: i.PricingID, AmountDue: i.AmountDue, DueDate: i.DueDate, Status: string(i.Status)}
			}), len(ds.Installments)},
			{"registrations", mapRecords(ds.Registrations, registrationFromDomain), len(ds.Registrations)},
			{"sessions", mapRecords(ds.Sessions, sessionFromDomain), len(ds.Sessions)},
			{"transactions", mapRecords(ds.Transactions, transactionFromDomain), len(ds.Transactions)},
			{"expenses", mapRecords(ds.Expenses, expenseFromDomain), len(ds.Expenses)},
		}
		for _, step := range steps {
			if step.n == 0 {
				continue
			}
			if err := upsert.CreateInBatches(step.records, importBatchSize).Error; err != nil {
				return fmt.Errorf("import %s: %w", step.name, err)
			}
		}

		// Splits have no identity in an export; they are replaced per payment.
		for _, p := range ds.Payments {
			rec := paymentFromDomain(p)
			splits := rec.Splits
			rec.Splits = nil
			if err := upsert.Create(&rec).Error; err != nil {
				return fmt.Errorf("import payment %d: %w", p.ID, err)
			}
			if err := tx.Where("payment_id = ?", p.ID).Delete(&paymentSplitRecord{}).Error; err != nil {
				return fmt.Errorf("import payment %d splits: %w", p.ID, err)
			}
			for i := range splits {
				splits[i].PaymentID = p.ID
			}
			if len(splits) > 0 {
				if err := tx.Create(&splits).Error; err != nil {
					return fmt.Errorf("import payment %d splits: %w", p.ID, err)
				}
			}
		}
		return nil
	})
}

func notFound(err error, what string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.WrapError(domain.CodeNotFound, fmt.Sprintf("%s %d", what, id), err)
	}
	return fmt.Errorf("get %s %d: %w", what, id, err)
}

// LedgerReader

func (s *GormStore) GetStudent(ctx context.Context, id uint) (domain.Student, error) {
	var rec studentRecord
	if err := s.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		return domain.Student{}, notFound(err, "student", id)
	}
	return rec.toDomain(), nil
}

func (s *GormStore) GetPayment(ctx context.Context, id uint) (domain.Payment, error) {
	var rec paymentRecord
	if err := s.db.WithContext(ctx).Preload("Splits").First(&rec, id).Error; err != nil {
		return domain.Payment{}, notFound(err, "payment", id)
	}
	return rec.toDomain(), nil
}

func (s *GormStore) ListStudentPayments(ctx context.Context, studentID uint) ([]domain.Payment, error) {
	var recs []paymentRecord
	err := s.db.WithContext(ctx).Preload("Splits").
		Where("student_id = ?", studentID).
		Order("created_at, id").
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("list payments of student %d: %w", studentID, err)
	}
	return mapRecords(recs, paymentRecord.toDomain), nil
}

func (s *GormStore) ListPricings(ctx context.Context) ([]domain.Pricing, error) {
	var recs []pricingRecord
	if err := s.db.WithContext(ctx).Order("id").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list pricings: %w", err)
	}
	return mapRecords(recs, pricingRecord.toDomain), nil
}

func (s *GormStore) ListInstallments(ctx context.Context) ([]domain.Installment, error) {
	var recs []installmentRecord
	if err := s.db.WithContext(ctx).Order("due_date, id").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list installments: %w", err)
	}
	return mapRecords(recs, installmentRecord.toDomain), nil
}

func (s *GormStore) ListAcademicYears(ctx context.Context) ([]domain.AcademicYear, error) {
	var recs []academicYearRecord
	if err := s.db.WithContext(ctx).Order("id").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list academic years: %w", err)
	}
	return mapRecords(recs, academicYearRecord.toDomain), nil
}

// FindRegistration returns the latest registration of a student for a year.
func (s *GormStore) FindRegistration(ctx context.Context, studentID, academicYearID uint) (domain.Registration, error) {
	var rec registrationRecord
	err := s.db.WithContext(ctx).
		Where("student_id = ? AND academic_year_id = ?", studentID, academicYearID).
		Order("id desc").
		First(&rec).Error
	if err != nil {
		return domain.Registration{}, notFound(err, "registration of student", studentID)
	}
	return rec.toDomain(), nil
}

// SessionRepository

func (s *GormStore) GetSession(ctx context.Context, id uint) (domain.CashRegisterSession, error) {
	var rec sessionRecord
	if err := s.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		return domain.CashRegisterSession{}, notFound(err, "session", id)
	}
	return rec.toDomain(), nil
}

func (s *GormStore) CreateSession(ctx context.Context, session *domain.CashRegisterSession) error {
	rec := sessionFromDomain(*session)
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	session.ID = rec.ID
	return nil
}

// UpdateSession writes every column of a session that is still open. A
// closed session is never rewritten: the update fails with ALREADY_CLOSED,
// so of two concurrent closes only the first one is kept.
func (s *GormStore) UpdateSession(ctx context.Context, session domain.CashRegisterSession) error {
	rec := sessionFromDomain(session)
	res := s.db.WithContext(ctx).Model(&rec).
		Where("status = ?", string(domain.SessionOpen)).
		Select("*").
		Updates(&rec)
	if res.Error != nil {
		return fmt.Errorf("update session %d: %w", session.ID, res.Error)
	}
	if res.RowsAffected > 0 {
		return nil
	}
	current, err := s.GetSession(ctx, session.ID)
	if err != nil {
		return err
	}
	return domain.NewError(domain.CodeAlreadyClosed, fmt.Sprintf("session %d is %s", current.ID, current.Status))
}

func (s *GormStore) ListSessionTransactions(ctx context.Context, sessionID uint) ([]domain.Transaction, error) {
	var recs []transactionRecord
	err := s.db.WithContext(ctx).
		Where("cash_register_session_id = ?", sessionID).
		Order("created_at, id").
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("list transactions of session %d: %w", sessionID, err)
	}
	return mapRecords(recs, transactionRecord.toDomain), nil
}

func (s *GormStore) ListPaymentsByTransactions(ctx context.Context, transactionIDs []uint) ([]domain.Payment, error) {
	if len(transactionIDs) == 0 {
		return []domain.Payment{}, nil
	}
	var recs []paymentRecord
	err := s.db.WithContext(ctx).Preload("Splits").
		Where("transaction_id IN ?", transactionIDs).
		Order("created_at, id").
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("list payments by transactions: %w", err)
	}
	return mapRecords(recs, paymentRecord.toDomain), nil
}

func (s *GormStore) ListExpensesByTransactions(ctx context.Context, transactionIDs []uint) ([]domain.Expense, error) {
	if len(transactionIDs) == 0 {
		return []domain.Expense{}, nil
	}
	var recs []expenseRecord
	if err := s.db.WithContext(ctx).Where("transaction_id IN ?", transactionIDs).Order("id").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list expenses by transactions: %w", err)
	}
	return mapRecords(recs, expenseRecord.toDomain), nil
}

func (s *GormStore) ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	var recs []paymentMethodRecord
	if err := s.db.WithContext(ctx).Order("id").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list payment methods: %w", err)
	}
	return mapRecords(recs, paymentMethodRecord.toDomain), nil
}

// LedgerWriter

func (s *GormStore) CreateTransaction(ctx context.Context, tx *domain.Transaction) error {
	rec := transactionFromDomain(*tx)
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("create transaction: %w", err)
	}
	tx.ID = rec.ID
	tx.CreatedAt = rec.CreatedAt
	return nil
}

func (s *GormStore) DeleteTransaction(ctx context.Context, id uint) error {
	return deleteByID[transactionRecord](ctx, s.db, "transaction", id)
}

// CreatePayment writes the payment and its split lines together.
func (s *GormStore) CreatePayment(ctx context.Context, p *domain.Payment) error {
	rec := paymentFromDomain(*p)
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("create payment: %w", err)
	}
	p.ID = rec.ID
	p.CreatedAt = rec.CreatedAt
	return nil
}

func (s *GormStore) DeletePayment(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("payment_id = ?", id).Delete(&paymentSplitRecord{}).Error; err != nil {
			return fmt.Errorf("delete splits of payment %d: %w", id, err)
		}
		return deleteByID[paymentRecord](ctx, tx, "payment", id)
	})
}

func (s *GormStore) CreateExpense(ctx context.Context, e *domain.Expense) error {
	rec := expenseFromDomain(*e)
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("create expense: %w", err)
	}
	e.ID = rec.ID
	return nil
}

func (s *GormStore) DeleteExpense(ctx context.Context, id uint) error {
	return deleteByID[expenseRecord](ctx, s.db, "expense", id)
}

// EnrollmentWriter

func (s *GormStore) CreateStudent(ctx context.Context, st *domain.Student) error {
	rec := studentRecord{ID: st.ID, Matricule: st.Matricule, FirstName: st.FirstName, LastName: st.LastName}
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("create student: %w", err)
	}
	st.ID = rec.ID
	return nil
}

func (s *GormStore) DeleteStudent(ctx context.Context, id uint) error {
	return deleteByID[studentRecord](ctx, s.db, "student", id)
}

func (s *GormStore) CreateTutor(ctx context.Context, t *domain.Tutor) error {
	rec := tutorRecord{ID: t.ID, StudentID: t.StudentID, FullName: t.FullName, Phone: t.Phone, Relation: t.Relation}
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("create tutor: %w", err)
	}
	t.ID = rec.ID
	return nil
}

func (s *GormStore) DeleteTutor(ctx context.Context, id uint) error {
	return deleteByID[tutorRecord](ctx, s.db, "tutor", id)
}

func (s *GormStore) CreateRegistration(ctx context.Context, r *domain.Registration) error {
	rec := registrationFromDomain(*r)
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("create registration: %w", err)
	}
	r.ID = rec.ID
	return nil
}

func (s *GormStore) DeleteRegistration(ctx context.Context, id uint) error {
	return deleteByID[registrationRecord](ctx, s.db, "registration", id)
}

func (s *GormStore) CreateDocument(ctx context.Context, d *domain.Document) error {
	rec := documentRecord{ID: d.ID, StudentID: d.StudentID, Kind: d.Kind, Path: d.Path}
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("create document: %w", err)
	}
	d.ID = rec.ID
	return nil
}

func (s *GormStore) DeleteDocument(ctx context.Context, id uint) error {
	return deleteByID[documentRecord](ctx, s.db, "document", id)
}

// deleteByID removes one row. Deleting a row that is already gone succeeds,
// so a compensation can be retried.
func deleteByID[R any](ctx context.Context, db *gorm.DB, what string, id uint) error {
	var rec R
	if err := db.WithContext(ctx).Delete(&rec, id).Error; err != nil {
		return fmt.Errorf("delete %s %d: %w", what, id, err)
	}
	return nil
}

func registrationFromDomain(r domain.Registration) registrationRecord {
	return registrationRecord{
		ID:                 r.ID,
		StudentID:          r.StudentID,
		AcademicYearID:     r.AcademicYearID,
		PricingID:          r.PricingID,
		LevelID:            r.LevelID,
		AssignmentTypeID:   r.AssignmentTypeID,
		DiscountPercentage: r.DiscountPercentage,
		DiscountAmount:     r.DiscountAmount,
	}
}

func transactionFromDomain(t domain.Transaction) transactionRecord {
	return transactionRecord{
		ID:                    t.ID,
		CashRegisterSessionID: t.CashRegisterSessionID,
		TotalAmount:           t.TotalAmount,
		TransactionType:       string(t.Type),
		CreatedAt:             t.CreatedAt,
	}
}

func expenseFromDomain(e domain.Expense) expenseRecord {
	return expenseRecord{
		ID:            e.ID,
		TransactionID: e.TransactionID,
		Amount:        e.Amount,
		ExpenseTypeID: e.ExpenseTypeID,
		Label:         e.Label,
	}
}
