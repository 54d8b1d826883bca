package usecase

import (
	"errors"
	"fmt"

	"cashdesk/internal/domain"
)

// storeErr wraps a repository error. Errors that already carry a domain code
// keep it; anything else is reported as NETWORK_FAILURE.
func storeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if domain.CodeOf(err) != "" {
		return fmt.Errorf("%s: %w", op, err)
	}
	return domain.WrapError(domain.CodeNetworkFailure, op, err)
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
