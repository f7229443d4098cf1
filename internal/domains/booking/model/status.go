package model

import (
	"fmt"
	"slices"
)

// Status is the lifecycle state of a booking.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// validTransitions only moves forward; completed and cancelled are terminal.
var validTransitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

// ActiveStatuses are the statuses that hold a slot.
var ActiveStatuses = []Status{StatusPending, StatusConfirmed}

func (s Status) IsValid() bool {
	_, exists := validTransitions[s]

	return exists
}

func (s Status) CanTransitionTo(target Status) bool {
	return slices.Contains(validTransitions[s], target)
}

// IsTerminal reports whether no transition leaves s. Unknown statuses are terminal.
func (s Status) IsTerminal() bool {
	return len(validTransitions[s]) == 0
}

// HoldsSlot reports whether a booking in this status blocks overlapping bookings.
func (s Status) HoldsSlot() bool {
	return slices.Contains(ActiveStatuses, s)
}

func (s Status) String() string {
	return string(s)
}

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid booking status: %s", s)
	}

	return status, nil
}
