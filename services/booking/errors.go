package booking

import "fmt"

// ValidationError signals a malformed booking request. Rejected before any
// persistence attempt.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// NotFoundError signals a lookup miss for a booking number. Treated as a
// normal outcome by callers, not a fault.
type NotFoundError struct {
	BookingNumber string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no booking found with reference %s", e.BookingNumber)
}

// AlreadyCancelledError signals a second cancellation of the same booking.
type AlreadyCancelledError struct {
	BookingNumber string
}

func (e *AlreadyCancelledError) Error() string {
	return fmt.Sprintf("booking %s has already been cancelled", e.BookingNumber)
}

// StorageError wraps a persistence failure. The booking is left in its prior
// state when this is returned from a mutating operation.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
