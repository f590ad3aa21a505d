package engine

import "fmt"

// Status is the signed result code returned by every engine entry point.
// Zero is success; negatives map 1:1 onto the sentinel taxonomy in
// errors.go.
type Status int32

const (
	// StatusOK — success.
	StatusOK Status = 0
	// StatusInconsistentInput — see ErrInconsistentInput.
	StatusInconsistentInput Status = -1
	// StatusOutOfMemory — see ErrOutOfMemory.
	StatusOutOfMemory Status = -2
	// StatusReordering — see ErrReordering.
	StatusReordering Status = -3
	// StatusNumerical — see ErrNumerical.
	StatusNumerical Status = -4
	// StatusInternal — see ErrInternal.
	StatusInternal Status = -5
	// StatusPreordering — see ErrPreordering.
	StatusPreordering Status = -6
	// StatusDiagonalMatrix — see ErrDiagonalMatrix.
	StatusDiagonalMatrix Status = -7
	// StatusIntegerOverflow — see ErrIntegerOverflow.
	StatusIntegerOverflow Status = -8
	// StatusNoLicense, StatusLicenseExpired, StatusWrongLicense — see ErrLicense.
	StatusNoLicense      Status = -10
	StatusLicenseExpired Status = -11
	StatusWrongLicense   Status = -12
	// StatusIterativeMaxIter .. StatusIterativeBreakdown — see ErrIterative.
	StatusIterativeMaxIter       Status = -100
	StatusIterativeNoConvergence Status = -101
	StatusIterativeError         Status = -102
	StatusIterativeBreakdown     Status = -103
)

// Err decodes the status into the typed taxonomy. StatusOK yields nil;
// every documented negative wraps its sentinel with the numeric code so
// errors.Is matching survives the wrap; undocumented codes wrap ErrUnknown.
func (s Status) Err() error {
	if s == StatusOK {
		return nil
	}

	var sentinel error
	switch {
	case s == StatusInconsistentInput:
		sentinel = ErrInconsistentInput
	case s == StatusOutOfMemory:
		sentinel = ErrOutOfMemory
	case s == StatusReordering:
		sentinel = ErrReordering
	case s == StatusNumerical:
		sentinel = ErrNumerical
	case s == StatusInternal:
		sentinel = ErrInternal
	case s == StatusPreordering:
		sentinel = ErrPreordering
	case s == StatusDiagonalMatrix:
		sentinel = ErrDiagonalMatrix
	case s == StatusIntegerOverflow:
		sentinel = ErrIntegerOverflow
	case s <= StatusNoLicense && s >= StatusWrongLicense:
		sentinel = ErrLicense
	case s <= StatusIterativeMaxIter && s >= StatusIterativeBreakdown:
		sentinel = ErrIterative
	default:
		sentinel = ErrUnknown
	}

	return fmt.Errorf("status %d: %w", int32(s), sentinel)
}

// Terminal reports whether the status ends the session's useful life:
// out-of-memory and license failures leave engine state that no further
// phase can repair.
func (s Status) Terminal() bool {
	return s == StatusOutOfMemory || (s <= StatusNoLicense && s >= StatusWrongLicense)
}
