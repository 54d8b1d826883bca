package cashregister

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cashdesk/internal/domain"
	"cashdesk/internal/money"
)

func TestOpen(t *testing.T) {
	s, err := Open(2, 9, "10 000", t0)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionOpen, s.Status)
	assert.Equal(t, uint(2), s.CashRegisterID)
	assert.Equal(t, uint(9), s.UserID)
	assertAmount(t, 10000, s.OpeningAmount, "opening")
	assert.Equal(t, t0, s.OpeningDate)

	_, err = Open(2, 9, "-1", t0)
	assert.True(t, errors.Is(err, domain.ErrInvalidAmount))

	_, err = Open(0, 9, "100", t0)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestClose(t *testing.T) {
	closeAt := t0.Add(9 * time.Hour)

	tests := []struct {
		name    string
		status  domain.SessionStatus
		raw     string
		wantErr *domain.Error
	}{
		{"open with amount", domain.SessionOpen, "13 000", nil},
		{"open with zero", domain.SessionOpen, "0", nil},
		{"open with garbage", domain.SessionOpen, "treize mille", domain.ErrInvalidAmount},
		{"open with empty", domain.SessionOpen, "", domain.ErrInvalidAmount},
		{"open with negative", domain.SessionOpen, "-5", domain.ErrInvalidAmount},
		{"open with exponent", domain.SessionOpen, "1e3", domain.ErrInvalidAmount},
		{"open with letter O for zero", domain.SessionOpen, "1O00", domain.ErrInvalidAmount},
		{"open with trailing letters", domain.SessionOpen, "12abc", domain.ErrInvalidAmount},
		{"open with leading letters", domain.SessionOpen, "abc12", domain.ErrInvalidAmount},
		{"open with currency suffix", domain.SessionOpen, "13 000 FCFA", nil},
		{"closed with valid amount", domain.SessionClosed, "5000", domain.ErrAlreadyClosed},
		{"closed with garbage", domain.SessionClosed, "abc", domain.ErrAlreadyClosed},
		{"unknown status", domain.SessionStatus(""), "5000", domain.ErrAlreadyClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := domain.CashRegisterSession{ID: 5, OpeningAmount: amt(10000), Status: tt.status}
			before := s

			err := Close(&s, tt.raw, closeAt)

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				assert.Equal(t, before, s, "session must not change on failure")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.SessionClosed, s.Status)
			require.NotNil(t, s.ClosingAmount)
			require.NotNil(t, s.ClosingDate)
			assert.True(t, s.ClosingAmount.Equal(money.Parse(tt.raw)))
			assert.Equal(t, closeAt, *s.ClosingDate)
		})
	}
}

func TestClose_IsOneWay(t *testing.T) {
	s := domain.CashRegisterSession{ID: 5, Status: domain.SessionOpen}
	require.NoError(t, Close(&s, "100", t0))
	first := *s.ClosingAmount

	for _, raw := range []string{"100", "0", "999999", "", "x"} {
		err := Close(&s, raw, t0.Add(time.Hour))
		assert.True(t, errors.Is(err, domain.ErrAlreadyClosed))
	}
	assert.True(t, s.ClosingAmount.Equal(first))
	assert.Equal(t, t0, *s.ClosingDate)
}

func TestSummarize(t *testing.T) {
	totals := domain.SessionTotals{ExpectedAmount: amt(13000)}

	open := domain.CashRegisterSession{ID: 5, Status: domain.SessionOpen}
	assert.Nil(t, Summarize(open, totals))

	closed := domain.CashRegisterSession{ID: 5, Status: domain.SessionOpen}
	require.NoError(t, Close(&closed, "12 500", t0))
	sum := Summarize(closed, totals)
	require.NotNil(t, sum)
	assertAmount(t, 13000, sum.Expected, "expected")
	assertAmount(t, 12500, sum.Declared, "declared")
	assertAmount(t, -500, sum.Difference, "difference")
}
