package service

import (
	"mallbook/shared/failure"
	"net/http"
)

// Booking rejections. Compare with errors.Is.
var (
	ErrServiceUnavailable     = failure.New(http.StatusBadRequest, "service not found or inactive")
	ErrPastDate               = failure.New(http.StatusBadRequest, "cannot book for past dates")
	ErrClosedOnDay            = failure.New(http.StatusBadRequest, "service is not available on this day")
	ErrOutsideOperatingHours  = failure.New(http.StatusBadRequest, "booking time is outside operating hours")
	ErrCapacityExceeded       = failure.New(http.StatusBadRequest, "number of people exceeds service capacity")
	ErrSlotConflict           = failure.New(http.StatusConflict, "time slot is already booked")
	ErrNotAuthorized          = failure.New(http.StatusForbidden, "not authorized to access this booking")
	ErrAlreadyCancelled       = failure.New(http.StatusBadRequest, "booking is already cancelled")
	ErrCannotCancelCompleted  = failure.New(http.StatusBadRequest, "cannot cancel completed booking")
	ErrIllegalTransition      = failure.New(http.StatusConflict, "booking status transition is not allowed")
	ErrNotFound               = failure.New(http.StatusNotFound, "booking not found")
	errInvalidDateOrTimeInput = failure.New(http.StatusBadRequest, "invalid date or time format")
)
