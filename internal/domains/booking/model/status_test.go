package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mallbook/internal/domains/booking/model"
)

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from model.Status
		to   model.Status
		want bool
	}{
		{name: "pending to confirmed", from: model.StatusPending, to: model.StatusConfirmed, want: true},
		{name: "pending to cancelled", from: model.StatusPending, to: model.StatusCancelled, want: true},
		{name: "pending to completed", from: model.StatusPending, to: model.StatusCompleted, want: false},
		{name: "confirmed to completed", from: model.StatusConfirmed, to: model.StatusCompleted, want: true},
		{name: "confirmed to cancelled", from: model.StatusConfirmed, to: model.StatusCancelled, want: true},
		{name: "confirmed back to pending", from: model.StatusConfirmed, to: model.StatusPending, want: false},
		{name: "completed to cancelled", from: model.StatusCompleted, to: model.StatusCancelled, want: false},
		{name: "cancelled to pending", from: model.StatusCancelled, to: model.StatusPending, want: false},
		{name: "self transition", from: model.StatusPending, to: model.StatusPending, want: false},
		{name: "unknown status", from: model.Status("archived"), to: model.StatusCancelled, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, model.StatusPending.IsTerminal())
	assert.False(t, model.StatusConfirmed.IsTerminal())
	assert.True(t, model.StatusCompleted.IsTerminal())
	assert.True(t, model.StatusCancelled.IsTerminal())
	assert.True(t, model.Status("unknown").IsTerminal())
}

func TestStatus_HoldsSlot(t *testing.T) {
	assert.True(t, model.StatusPending.HoldsSlot())
	assert.True(t, model.StatusConfirmed.HoldsSlot())
	assert.False(t, model.StatusCompleted.HoldsSlot())
	assert.False(t, model.StatusCancelled.HoldsSlot())
}

func TestParseStatus(t *testing.T) {
	status, err := model.ParseStatus("confirmed")
	assert.NoError(t, err)
	assert.Equal(t, model.StatusConfirmed, status)

	_, err = model.ParseStatus("archived")
	assert.Error(t, err)
}

func TestBooking_Overlaps(t *testing.T) {
	// 10:00 for 60 minutes
	existing := model.Booking{StartMinute: 600, DurationMinutes: 60}

	tests := []struct {
		name     string
		start    int
		duration int
		want     bool
	}{
		{name: "starts inside", start: 620, duration: 30, want: true},
		{name: "ends inside", start: 570, duration: 45, want: true},
		{name: "contains existing", start: 590, duration: 120, want: true},
		{name: "back to back after", start: 660, duration: 30, want: false},
		{name: "back to back before", start: 570, duration: 30, want: false},
		{name: "far away", start: 900, duration: 30, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, existing.Overlaps(tt.start, tt.duration))
		})
	}
}

func TestCancelledByRole(t *testing.T) {
	assert.Equal(t, model.CancelledByAdmin, model.CancelledByRole("admin"))
	assert.Equal(t, model.CancelledByStore, model.CancelledByRole("store_manager"))
	assert.Equal(t, model.CancelledByCustomer, model.CancelledByRole("customer"))
}
