package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"cashdesk/internal/validation"
)

// Student is the payer a fee obligation belongs to.
type Student struct {
	ID        uint   `json:"id"`
	Matricule string `json:"matricule"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (s Student) FullName() string {
	switch {
	case s.FirstName == "":
		return s.LastName
	case s.LastName == "":
		return s.FirstName
	}
	return s.FirstName + " " + s.LastName
}

func (s Student) Validate() validation.Violations {
	v := make(validation.Violations)
	validation.Required("last_name", s.LastName, v)
	return v
}

// Tutor is a guardian created alongside a student during enrollment.
type Tutor struct {
	ID        uint   `json:"id"`
	StudentID uint   `json:"student_id"`
	FullName  string `json:"full_name"`
	Phone     string `json:"phone"`
	Relation  string `json:"relation"`
}

// Document is an uploaded file reference attached to a student's enrollment.
type Document struct {
	ID        uint   `json:"id"`
	StudentID uint   `json:"student_id"`
	Kind      string `json:"kind"`
	Path      string `json:"path"`
}

type AcademicYear struct {
	ID        uint      `json:"id"`
	Label     string    `json:"label"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// Cohort identifies the pricings that apply to a group of students.
type Cohort struct {
	AcademicYearID   uint `json:"academic_year_id"`
	LevelID          uint `json:"level_id"`
	AssignmentTypeID uint `json:"assignment_type_id"`
}

// Pricing is a billable fee line for a cohort. The sum of its installments'
// AmountDue is expected to equal Amount.
type Pricing struct {
	ID               uint            `json:"id"`
	FeeTypeID        uint            `json:"fee_type_id"`
	Label            string          `json:"label"`
	Amount           decimal.Decimal `json:"amount"`
	AcademicYearID   uint            `json:"academic_year_id"`
	LevelID          uint            `json:"level_id"`
	AssignmentTypeID uint            `json:"assignment_type_id"`
	Installments     []Installment   `json:"installments,omitempty"`
}

func (p Pricing) Matches(c Cohort) bool {
	return p.AcademicYearID == c.AcademicYearID &&
		p.LevelID == c.LevelID &&
		p.AssignmentTypeID == c.AssignmentTypeID
}

func (p Pricing) Validate() validation.Violations {
	v := make(validation.Violations)
	validation.RequiredID("id", p.ID, v)
	validation.RequiredID("fee_type_id", p.FeeTypeID, v)
	validation.Required("label", p.Label, v)
	validation.NonNegative("amount", p.Amount, v)
	validation.RequiredID("academic_year_id", p.AcademicYearID, v)
	return v
}

type InstallmentStatus string

const (
	InstallmentPending InstallmentStatus = "pending"
	InstallmentPartial InstallmentStatus = "partial"
	InstallmentPaid    InstallmentStatus = "paid"
)

// Installment is a scheduled part of a Pricing.
type Installment struct {
	ID        uint              `json:"id"`
	PricingID uint              `json:"pricing_id"`
	AmountDue decimal.Decimal   `json:"amount_due"`
	DueDate   time.Time         `json:"due_date"`
	Status    InstallmentStatus `json:"status"`
}

func (i Installment) Validate() validation.Violations {
	v := make(validation.Violations)
	validation.RequiredID("id", i.ID, v)
	validation.RequiredID("pricing_id", i.PricingID, v)
	validation.NonNegative("amount_due", i.AmountDue, v)
	if i.Status != "" {
		validation.OneOf("status", string(i.Status), []string{
			string(InstallmentPending), string(InstallmentPartial), string(InstallmentPaid),
		}, v)
	}
	return v
}

// Registration enrolls a student for an academic year. Discount fields are
// kept as entered; an empty string means the discount is absent.
type Registration struct {
	ID                 uint   `json:"id"`
	StudentID          uint   `json:"student_id"`
	AcademicYearID     uint   `json:"academic_year_id"`
	PricingID          uint   `json:"pricing_id"`
	LevelID            uint   `json:"level_id"`
	AssignmentTypeID   uint   `json:"assignment_type_id"`
	DiscountPercentage string `json:"discount_percentage,omitempty"`
	DiscountAmount     string `json:"discount_amount,omitempty"`
}

func (r Registration) Cohort() Cohort {
	return Cohort{
		AcademicYearID:   r.AcademicYearID,
		LevelID:          r.LevelID,
		AssignmentTypeID: r.AssignmentTypeID,
	}
}

func (r Registration) Validate() validation.Violations {
	v := make(validation.Violations)
	validation.RequiredID("student_id", r.StudentID, v)
	validation.RequiredID("academic_year_id", r.AcademicYearID, v)
	return v
}
