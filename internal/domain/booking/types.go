package booking

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusPaid      Status = "PAID"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsActive reports whether the booking still consumes capacity.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusPaid
}

// CanTransitionTo encodes the payment state machine:
// PENDING -> PAID, PENDING -> CANCELLED, PAID -> CANCELLED.
// CANCELLED is terminal; re-cancelling is rejected too.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusPaid || next == StatusCancelled
	case StatusPaid:
		return next == StatusCancelled
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
