package gateway

import (
	"time"

	"github.com/shopspring/decimal"

	"cashdesk/internal/domain"
)

// gorm records. Amounts are stored as fixed-point decimals, never floats.

type paymentMethodRecord struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	IsPrincipal bool   `gorm:"not null;default:false"`
}

func (paymentMethodRecord) TableName() string { return "payment_methods" }

type academicYearRecord struct {
	ID        uint   `gorm:"primaryKey"`
	Label     string `gorm:"not null"`
	StartDate time.Time
	EndDate   time.Time
}

func (academicYearRecord) TableName() string { return "academic_years" }

type studentRecord struct {
	ID        uint   `gorm:"primaryKey"`
	Matricule string `gorm:"index"`
	FirstName string
	LastName  string `gorm:"not null"`
}

func (studentRecord) TableName() string { return "students" }

type tutorRecord struct {
	ID        uint `gorm:"primaryKey"`
	StudentID uint `gorm:"not null;index"`
	FullName  string
	Phone     string
	Relation  string
}

func (tutorRecord) TableName() string { return "tutors" }

type documentRecord struct {
	ID        uint `gorm:"primaryKey"`
	StudentID uint `gorm:"not null;index"`
	Kind      string
	Path      string
}

func (documentRecord) TableName() string { return "documents" }

type pricingRecord struct {
	ID               uint            `gorm:"primaryKey"`
	FeeTypeID        uint            `gorm:"not null"`
	Label            string          `gorm:"not null"`
	Amount           decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	AcademicYearID   uint            `gorm:"not null;index"`
	LevelID          uint
	AssignmentTypeID uint
}

func (pricingRecord) TableName() string { return "pricings" }

type installmentRecord struct {
	ID        uint            `gorm:"primaryKey"`
	PricingID uint            `gorm:"not null;index"`
	AmountDue decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	DueDate   time.Time
	Status    string
}

func (installmentRecord) TableName() string { return "installments" }

type registrationRecord struct {
	ID                 uint `gorm:"primaryKey"`
	StudentID          uint `gorm:"not null;index:idx_registration_student_year"`
	AcademicYearID     uint `gorm:"not null;index:idx_registration_student_year"`
	PricingID          uint
	LevelID            uint
	AssignmentTypeID   uint
	DiscountPercentage string
	DiscountAmount     string
}

func (registrationRecord) TableName() string { return "registrations" }

type sessionRecord struct {
	ID             uint                `gorm:"primaryKey"`
	CashRegisterID uint                `gorm:"not null;index"`
	UserID         uint                `gorm:"index"`
	OpeningAmount  decimal.Decimal     `gorm:"type:decimal(14,2);not null"`
	OpeningDate    time.Time           `gorm:"not null"`
	ClosingAmount  decimal.NullDecimal `gorm:"type:decimal(14,2)"`
	ClosingDate    *time.Time
	Status         string `gorm:"not null"`
}

func (sessionRecord) TableName() string { return "cash_register_sessions" }

type transactionRecord struct {
	ID                    uint            `gorm:"primaryKey"`
	CashRegisterSessionID uint            `gorm:"not null;index"`
	TotalAmount           decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	TransactionType       string          `gorm:"not null"`
	CreatedAt             time.Time
}

func (transactionRecord) TableName() string { return "transactions" }

type paymentRecord struct {
	ID             uint            `gorm:"primaryKey"`
	Reference      string          `gorm:"index"`
	StudentID      uint            `gorm:"not null;index"`
	InstallmentID  uint            `gorm:"not null;index"`
	TransactionID  uint            `gorm:"not null;index"`
	Amount         decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	CreatedAt      time.Time
	CashierID      uint
	CashRegisterID uint
	Splits         []paymentSplitRecord `gorm:"foreignKey:PaymentID"`
}

func (paymentRecord) TableName() string { return "payments" }

// paymentSplitRecord is the pivot between a payment and its methods.
type paymentSplitRecord struct {
	ID              uint            `gorm:"primaryKey"`
	PaymentID       uint            `gorm:"not null;index"`
	PaymentMethodID uint            `gorm:"not null"`
	Amount          decimal.Decimal `gorm:"type:decimal(14,2);not null"`
}

func (paymentSplitRecord) TableName() string { return "payment_splits" }

type expenseRecord struct {
	ID            uint            `gorm:"primaryKey"`
	TransactionID uint            `gorm:"not null;index"`
	Amount        decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	ExpenseTypeID uint
	Label         string
}

func (expenseRecord) TableName() string { return "expenses" }

func allRecords() []any {
	return []any{
		&paymentMethodRecord{}, &academicYearRecord{}, &studentRecord{}, &tutorRecord{},
		&documentRecord{}, &pricingRecord{}, &installmentRecord{}, &registrationRecord{},
		&sessionRecord{}, &transactionRecord{}, &paymentRecord{}, &paymentSplitRecord{},
		&expenseRecord{},
	}
}

func (r paymentMethodRecord) toDomain() domain.PaymentMethod {
	return domain.PaymentMethod{ID: r.ID, Name: r.Name, IsPrincipal: r.IsPrincipal}
}

func (r academicYearRecord) toDomain() domain.AcademicYear {
	return domain.AcademicYear{ID: r.ID, Label: r.Label, StartDate: r.StartDate, EndDate: r.EndDate}
}

func (r studentRecord) toDomain() domain.Student {
	return domain.Student{ID: r.ID, Matricule: r.Matricule, FirstName: r.FirstName, LastName: r.LastName}
}

func (r pricingRecord) toDomain() domain.Pricing {
	return domain.Pricing{
		ID:               r.ID,
		FeeTypeID:        r.FeeTypeID,
		Label:            r.Label,
		Amount:           r.Amount,
		AcademicYearID:   r.AcademicYearID,
		LevelID:          r.LevelID,
		AssignmentTypeID: r.AssignmentTypeID,
	}
}

func (r installmentRecord) toDomain() domain.Installment {
	return domain.Installment{
		ID:        r.ID,
		PricingID: r.PricingID,
		AmountDue: r.AmountDue,
		DueDate:   r.DueDate,
		Status:    domain.InstallmentStatus(r.Status),
	}
}

func (r registrationRecord) toDomain() domain.Registration {
	return domain.Registration{
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

func (r sessionRecord) toDomain() domain.CashRegisterSession {
	s := domain.CashRegisterSession{
		ID:             r.ID,
		CashRegisterID: r.CashRegisterID,
		UserID:         r.UserID,
		OpeningAmount:  r.OpeningAmount,
		OpeningDate:    r.OpeningDate,
		ClosingDate:    r.ClosingDate,
		Status:         domain.SessionStatus(r.Status),
	}
	if r.ClosingAmount.Valid {
		amount := r.ClosingAmount.Decimal
		s.ClosingAmount = &amount
	}
	return s
}

func sessionFromDomain(s domain.CashRegisterSession) sessionRecord {
	r := sessionRecord{
		ID:             s.ID,
		CashRegisterID: s.CashRegisterID,
		UserID:         s.UserID,
		OpeningAmount:  s.OpeningAmount,
		OpeningDate:    s.OpeningDate,
		ClosingDate:    s.ClosingDate,
		Status:         string(s.Status),
	}
	if s.ClosingAmount != nil {
		r.ClosingAmount = decimal.NewNullDecimal(*s.ClosingAmount)
	}
	return r
}

func (r transactionRecord) toDomain() domain.Transaction {
	return domain.Transaction{
		ID:                    r.ID,
		CashRegisterSessionID: r.CashRegisterSessionID,
		TotalAmount:           r.TotalAmount,
		Type:                  domain.TransactionType(r.TransactionType),
		CreatedAt:             r.CreatedAt,
	}
}

func (r paymentRecord) toDomain() domain.Payment {
	p := domain.Payment{
		ID:             r.ID,
		Reference:      r.Reference,
		StudentID:      r.StudentID,
		InstallmentID:  r.InstallmentID,
		TransactionID:  r.TransactionID,
		Amount:         r.Amount,
		PaymentMethods: make([]domain.MethodSplit, 0, len(r.Splits)),
		CreatedAt:      r.CreatedAt,
		CashierID:      r.CashierID,
		CashRegisterID: r.CashRegisterID,
	}
	for _, s := range r.Splits {
		p.PaymentMethods = append(p.PaymentMethods, domain.MethodSplit{PaymentMethodID: s.PaymentMethodID, Amount: s.Amount})
	}
	return p
}

func paymentFromDomain(p domain.Payment) paymentRecord {
	r := paymentRecord{
		ID:             p.ID,
		Reference:      p.Reference,
		StudentID:      p.StudentID,
		InstallmentID:  p.InstallmentID,
		TransactionID:  p.TransactionID,
		Amount:         p.Amount,
		CreatedAt:      p.CreatedAt,
		CashierID:      p.CashierID,
		CashRegisterID: p.CashRegisterID,
	}
	for _, m := range p.PaymentMethods {
		r.Splits = append(r.Splits, paymentSplitRecord{PaymentMethodID: m.PaymentMethodID, Amount: m.Amount})
	}
	return r
}

func (r expenseRecord) toDomain() domain.Expense {
	return domain.Expense{
		ID:            r.ID,
		TransactionID: r.TransactionID,
		Amount:        r.Amount,
		ExpenseTypeID: r.ExpenseTypeID,
		Label:         r.Label,
	}
}

// mapRecords converts a slice of records with fn.
func mapRecords[R any, D any](records []R, fn func(R) D) []D {
	out := make([]D, 0, len(records))
	for _, r := range records {
		out = append(out, fn(r))
	}
	return out
}
