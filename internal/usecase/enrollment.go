package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"cashdesk/internal/domain"
	"cashdesk/internal/saga"
)

// EnrollmentRequest carries everything created when a student enrolls.
// StudentID fields of the nested records are filled in by Enroll.
type EnrollmentRequest struct {
	Student      domain.Student      `json:"student"`
	Tutors       []domain.Tutor      `json:"tutors"`
	Registration domain.Registration `json:"registration"`
	Payments     []PaymentRequest    `json:"payments"`
	Documents    []domain.Document   `json:"documents"`
}

type EnrollmentResult struct {
	Student      domain.Student      `json:"student"`
	Tutors       []domain.Tutor      `json:"tutors"`
	Registration domain.Registration `json:"registration"`
	Payments     []domain.Payment    `json:"payments"`
	Documents    []domain.Document   `json:"documents"`
}

// EnrollmentUseCase creates a student with its tutors, registration, first
// payments and documents.
type EnrollmentUseCase struct {
	writer  EnrollmentWriter
	cashier *CashierUseCase
	logger  *slog.Logger
}

// NewEnrollmentUseCase creates a new instance of the usecase.
func NewEnrollmentUseCase(writer EnrollmentWriter, cashier *CashierUseCase, logger *slog.Logger) *EnrollmentUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &EnrollmentUseCase{writer: writer, cashier: cashier, logger: logger}
}

// Enroll writes the enrollment step by step. When a step fails, the records
// already written are deleted in reverse order. If some of them cannot be
// deleted the error matches domain.ErrPartialRollback and lists them.
func (uc *EnrollmentUseCase) Enroll(ctx context.Context, req EnrollmentRequest) (*EnrollmentResult, error) {
	if v := req.Student.Validate(); !v.Empty() {
		return nil, domain.NewError(domain.CodeInvalidInput, "student: "+v.Error())
	}
	if req.Registration.AcademicYearID == 0 {
		return nil, domain.NewError(domain.CodeInvalidInput, "registration: academic_year_id: required")
	}
	for i, p := range req.Payments {
		if p.InstallmentID == 0 {
			return nil, domain.NewError(domain.CodeInvalidInput, fmt.Sprintf("payment %d: installment_id: required", i))
		}
		if _, err := parsePayment(p); err != nil {
			return nil, fmt.Errorf("payment %d: %w", i, err)
		}
	}

	s := saga.New("enroll", uc.logger)
	result, err := uc.enroll(ctx, s, req)
	if err != nil {
		return nil, s.Compensate(ctx, err)
	}
	uc.logger.Info("student enrolled",
		"student_id", result.Student.ID,
		"registration_id", result.Registration.ID,
		"payments", len(result.Payments))
	return result, nil
}

func (uc *EnrollmentUseCase) enroll(ctx context.Context, s *saga.Saga, req EnrollmentRequest) (*EnrollmentResult, error) {
	result := &EnrollmentResult{
		Student:   req.Student,
		Tutors:    make([]domain.Tutor, 0, len(req.Tutors)),
		Payments:  make([]domain.Payment, 0, len(req.Payments)),
		Documents: make([]domain.Document, 0, len(req.Documents)),
	}

	student := &result.Student
	err := s.Run(ctx, "create student",
		func(ctx context.Context) error {
			return storeErr("create student", uc.writer.CreateStudent(ctx, student))
		},
		func(ctx context.Context) error { return uc.writer.DeleteStudent(ctx, student.ID) })
	if err != nil {
		return nil, err
	}

	for _, t := range req.Tutors {
		tutor := t
		tutor.StudentID = student.ID
		err := s.Run(ctx, "create tutor",
			func(ctx context.Context) error {
				return storeErr("create tutor", uc.writer.CreateTutor(ctx, &tutor))
			},
			func(ctx context.Context) error { return uc.writer.DeleteTutor(ctx, tutor.ID) })
		if err != nil {
			return nil, err
		}
		result.Tutors = append(result.Tutors, tutor)
	}

	reg := req.Registration
	reg.StudentID = student.ID
	err = s.Run(ctx, "create registration",
		func(ctx context.Context) error {
			return storeErr("create registration", uc.writer.CreateRegistration(ctx, &reg))
		},
		func(ctx context.Context) error { return uc.writer.DeleteRegistration(ctx, reg.ID) })
	if err != nil {
		return nil, err
	}
	result.Registration = reg

	for _, p := range req.Payments {
		p.StudentID = student.ID
		payment, err := uc.cashier.recordPayment(ctx, s, p)
		if err != nil {
			return nil, err
		}
		result.Payments = append(result.Payments, *payment)
	}

	for _, d := range req.Documents {
		doc := d
		doc.StudentID = student.ID
		err := s.Run(ctx, "create document",
			func(ctx context.Context) error {
				return storeErr("create document", uc.writer.CreateDocument(ctx, &doc))
			},
			func(ctx context.Context) error { return uc.writer.DeleteDocument(ctx, doc.ID) })
		if err != nil {
			return nil, err
		}
		result.Documents = append(result.Documents, doc)
	}
	return result, nil
}
