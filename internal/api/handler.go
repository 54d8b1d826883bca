package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cashdesk/internal/domain"
	"cashdesk/internal/money"
	"cashdesk/internal/usecase"
)

// Handler exposes the use cases over HTTP.
type Handler struct {
	billing    *usecase.BillingUseCase
	cashier    *usecase.CashierUseCase
	enrollment *usecase.EnrollmentUseCase
	formatter  *money.Formatter
}

func NewHandler(billing *usecase.BillingUseCase, cashier *usecase.CashierUseCase, enrollment *usecase.EnrollmentUseCase, formatter *money.Formatter) *Handler {
	return &Handler{billing: billing, cashier: cashier, enrollment: enrollment, formatter: formatter}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		badRequest(c, fmt.Errorf("invalid %s %q", name, c.Param(name)))
		return 0, false
	}
	return uint(id), true
}

type statementQuery struct {
	AcademicYearID   uint `form:"academic_year_id" binding:"required"`
	LevelID          uint `form:"level_id"`
	AssignmentTypeID uint `form:"assignment_type_id"`
}

// Statement handles GET /students/:id/statement?academic_year_id=
func (h *Handler) Statement(c *gin.Context) {
	studentID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var q statementQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	st, err := h.billing.Statement(c.Request.Context(), studentID, domain.Cohort{
		AcademicYearID:   q.AcademicYearID,
		LevelID:          q.LevelID,
		AssignmentTypeID: q.AssignmentTypeID,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

func (h *Handler) InstallmentStatuses(c *gin.Context) {
	studentID, ok := idParam(c, "id")
	if !ok {
		return
	}
	statuses, err := h.billing.InstallmentStatuses(c.Request.Context(), studentID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"student_id": studentID, "installments": statuses})
}

type receiptResponse struct {
	*domain.PaymentDetails
	Formatted map[string]string `json:"formatted"`
}

// Receipt handles GET /payments/:id/receipt. Amounts are also returned
// formatted for printing.
func (h *Handler) Receipt(c *gin.Context) {
	paymentID, ok := idParam(c, "id")
	if !ok {
		return
	}
	details, err := h.billing.Receipt(c.Request.Context(), paymentID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if details == nil {
		abortWithError(c, domain.NewError(domain.CodeNotFound, fmt.Sprintf("receipt for payment %d", paymentID)))
		return
	}
	c.JSON(http.StatusOK, receiptResponse{
		PaymentDetails: details,
		Formatted: map[string]string{
			"amount_paid":    h.formatter.Format(details.AmountPaid),
			"balance_before": h.formatter.Format(details.BalanceBefore),
			"balance_after":  h.formatter.Format(details.BalanceAfter),
		},
	})
}

func (h *Handler) RecordPayment(c *gin.Context) {
	var req usecase.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	payment, err := h.cashier.RecordPayment(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}

func (h *Handler) RecordExpense(c *gin.Context) {
	var req usecase.ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	expense, err := h.cashier.RecordExpense(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, expense)
}

func (h *Handler) OpenSession(c *gin.Context) {
	var req usecase.OpenSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	session, err := h.cashier.OpenSession(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

func (h *Handler) SessionReport(c *gin.Context) {
	sessionID, ok := idParam(c, "id")
	if !ok {
		return
	}
	report, err := h.cashier.SessionReport(c.Request.Context(), sessionID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

type closeRequest struct {
	ClosingAmount string `json:"closing_amount"`
}

// CloseSession handles POST /sessions/:id/close.
func (h *Handler) CloseSession(c *gin.Context) {
	sessionID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req closeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	report, err := h.cashier.CloseSession(c.Request.Context(), sessionID, req.ClosingAmount)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *Handler) Enroll(c *gin.Context) {
	var req usecase.EnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	result, err := h.enrollment.Enroll(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}
