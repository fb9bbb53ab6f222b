package calc

import "errors"

// Sentinel errors
var (
	// ErrUnknownOp is returned by ParseOp for tokens outside the operation set.
	ErrUnknownOp = errors.New("unknown operation")
)

// DomainError reports a mathematically undefined or non-real result for the
// given operation and operands, such as division by zero or the square root
// of a negative number. The Reason is user-facing text.
type DomainError struct {
	Op     Op
	Reason string
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	return e.Reason
}

func domainErr(op Op, reason string) error {
	return &DomainError{Op: op, Reason: reason}
}
