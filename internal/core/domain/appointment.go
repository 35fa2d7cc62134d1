package domain

import (
	"errors"
	"time"
)

// AppointmentStatus represents the lifecycle state of a booked slot.
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "Scheduled"
	AppointmentCompleted AppointmentStatus = "Completed"
	AppointmentCancelled AppointmentStatus = "Cancelled"
)

var ErrAppointmentNotFound = errors.New("appointment not found")
var ErrInvalidTimeRange = errors.New("end time must be after start time")
var ErrInvalidDay = errors.New("invalid day format")
var ErrSlotConflict = errors.New("time slot not available")
var ErrCalendarBusy = errors.New("calendar temporarily unavailable")

// Valid reports whether s is one of the known appointment statuses.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentScheduled, AppointmentCompleted, AppointmentCancelled:
		return true
	}
	return false
}

// Appointment is a booked calendar slot. Intervals are half-open
// [StartTime, EndTime): a slot ending exactly when another starts does not
// overlap it.
type Appointment struct {
	ID        string            `json:"id" bson:"_id,omitempty"`
	ClientID  string            `json:"client_id,omitempty" bson:"client_id,omitempty"`
	Service   string            `json:"service" bson:"service"`
	StartTime time.Time         `json:"start_time" bson:"start_time"`
	EndTime   time.Time         `json:"end_time" bson:"end_time"`
	Location  string            `json:"location,omitempty" bson:"location,omitempty"`
	Notes     string            `json:"notes,omitempty" bson:"notes,omitempty"`
	Status    AppointmentStatus `json:"status" bson:"status"`
	CaseID    string            `json:"case_id,omitempty" bson:"case_id,omitempty"`
	CreatedAt time.Time         `json:"created_at" bson:"created_at"`
}

// Overlaps reports whether [aStart, aEnd) intersects [bStart, bEnd).
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}
