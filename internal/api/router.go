package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// NewRouter registers every route of the cash desk API on a new engine.
func NewRouter(h *Handler, logger *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(logger))

	r.GET("/healthz", h.Health)

	students := r.Group("/students")
	{
		students.GET("/:id/statement", h.Statement)
		students.GET("/:id/installments", h.InstallmentStatuses)
	}

	r.GET("/payments/:id/receipt", h.Receipt)
	r.POST("/payments", h.RecordPayment)
	r.POST("/expenses", h.RecordExpense)

	sessions := r.Group("/sessions")
	{
		sessions.POST("", h.OpenSession)
		sessions.GET("/:id/report", h.SessionReport)
		sessions.POST("/:id/close", h.CloseSession)
	}

	r.POST("/enrollments", h.Enroll)
	return r
}
