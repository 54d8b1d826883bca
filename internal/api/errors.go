package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"cashdesk/internal/domain"
	"cashdesk/internal/saga"
)

type errorResponse struct {
	Code     domain.Code `json:"code"`
	Error    string      `json:"error"`
	Rollback []string    `json:"rollback_failures,omitempty"`
}

func statusFor(code domain.Code) int {
	switch code {
	case domain.CodeNotFound:
		return http.StatusNotFound
	case domain.CodeInvalidInput, domain.CodeInvalidAmount, domain.CodeInconsistentSplit, domain.CodeExceedsDue:
		return http.StatusUnprocessableEntity
	case domain.CodeAlreadyClosed, domain.CodeSessionNotOpen, domain.CodePartialRollback:
		return http.StatusConflict
	case domain.CodeNetworkFailure:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// abortWithError writes err as JSON with the status of its domain code.
// Uncoded errors are logged and hidden behind a generic message.
func abortWithError(c *gin.Context, err error) {
	code := domain.CodeOf(err)
	status := statusFor(code)
	resp := errorResponse{Code: code, Error: err.Error()}
	if rb, ok := saga.AsRollbackError(err); ok {
		for _, f := range rb.Failures {
			resp.Rollback = append(resp.Rollback, f.Step+": "+f.Err.Error())
		}
	}
	if status == http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err)
		resp.Error = "internal error"
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, resp)
}

func badRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Code: domain.CodeInvalidInput, Error: err.Error()})
}
