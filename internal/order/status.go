package order

import "fmt"

// transitions maps each status to the statuses it may move to. A
// cancelled order can be revived to confirmed; completed is terminal.
var transitions = map[OrderStatus][]OrderStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCancelled: {StatusConfirmed},
	StatusCompleted: {},
}

// ValidStatus reports whether s is one of the known order statuses.
func ValidStatus(s OrderStatus) bool {
	_, ok := transitions[s]
	return ok
}

// CanTransition checks if a transition from `from` to `to` is valid.
func CanTransition(from, to OrderStatus) bool {
	allowed, ok := transitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// CheckTransition distinguishes an unknown status value (validation
// failure) from a known-but-disallowed transition (conflict).
func CheckTransition(from, to OrderStatus) error {
	if !ValidStatus(to) {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, to)
	}
	if !CanTransition(from, to) {
		return &TransitionError{From: from, To: to}
	}
	return nil
}

// TransitionError names both ends of a rejected status change.
type TransitionError struct {
	From OrderStatus
	To   OrderStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot change status from %s to %s", e.From, e.To)
}

func (e *TransitionError) Unwrap() error { return ErrIllegalTransition }
