package models

import (
	"errors"
	"fmt"
)

// EconomyError is the kind of failure an economy operation reports
type EconomyError string

// Error implements the error interface
func (e EconomyError) Error() string {
	return string(e)
}

// Error kinds returned by ledger and configuration operations
const (
	ErrInsufficientBalance  EconomyError = "insufficient balance"
	ErrInvalidTarget        EconomyError = "invalid target"
	ErrOutOfRange           EconomyError = "amount out of range"
	ErrConfigurationInvalid EconomyError = "configuration invalid"
	ErrExternalUnavailable  EconomyError = "external service unavailable"
	ErrNotFound             EconomyError = "not found"
	ErrInvalidInput         EconomyError = "invalid input"
	ErrOnCooldown           EconomyError = "on cooldown"
	ErrAlreadyOwned         EconomyError = "already owned"
)

// Unavailable wraps a store or channel failure so that it matches
// ErrExternalUnavailable while keeping the cause reachable.
func Unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrExternalUnavailable, op, err)
}

// Invalid builds an ErrConfigurationInvalid with detail
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfigurationInvalid, fmt.Sprintf(format, args...))
}

// KindOf returns the economy error kind of err, "internal" for other
// errors and "" for nil.
func KindOf(err error) string {
	if err == nil {
		return ""
	}
	var kind EconomyError
	if errors.As(err, &kind) {
		return string(kind)
	}
	return "internal"
}
