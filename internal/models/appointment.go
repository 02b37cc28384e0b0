package models

import (
	"regexp"
	"time"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusUnscheduled AppointmentStatus = "Unscheduled"
	StatusScheduled   AppointmentStatus = "Scheduled"
)

// gboxPattern matches institutional Gbox addresses. The domain suffix is
// fixed; only the local part varies.
var gboxPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@gbox\.adnu\.edu\.ph$`)

// IsGboxAddress reports whether addr is a valid institutional e-mail address.
func IsGboxAddress(addr string) bool {
	return gboxPattern.MatchString(addr)
}

// Appointment represents one request for a clinic visit.
//
// DesiredDate is the date the requester originally asked for and is never
// touched by the scheduling flow. ScheduledDate is nil until staff confirm a
// visit; Status is always derived from its presence (see SyncStatus), so the
// two cannot drift apart.
type Appointment struct {
	BaseModel
	LastName       string            `gorm:"size:100;not null" json:"lastName"`
	FirstName      string            `gorm:"size:100;not null" json:"firstName"`
	MiddleName     string            `gorm:"size:100" json:"middleName,omitempty"`
	GboxAcc        string            `gorm:"size:255;not null" json:"gboxAcc"`
	IDNum          int64             `gorm:"not null" json:"idNum"`
	Sex            string            `gorm:"size:20;not null" json:"sex"`
	Department     string            `gorm:"size:100" json:"department,omitempty"`
	Course         string            `gorm:"size:100" json:"course,omitempty"`
	DesiredDate    time.Time         `gorm:"not null" json:"desiredDate"`
	ScheduledDate  *time.Time        `json:"scheduledDate,omitempty"`
	Concern        string            `gorm:"type:text;not null" json:"concern"`
	Status         AppointmentStatus `gorm:"size:20;default:'Unscheduled'" json:"status"`
	IdempotencyKey *string           `gorm:"size:36;uniqueIndex" json:"idempotencyKey,omitempty"`
}

// SyncStatus derives Status from the presence of ScheduledDate. Called on
// every write path so a generic edit cannot leave the pair inconsistent.
func (a *Appointment) SyncStatus() {
	if a.ScheduledDate != nil {
		a.Status = StatusScheduled
	} else {
		a.Status = StatusUnscheduled
	}
}

// Approve confirms the visit for the given date. DesiredDate is preserved
// unchanged for later comparison against what the requester asked for.
func (a *Appointment) Approve(scheduledDate time.Time) {
	d := scheduledDate
	a.ScheduledDate = &d
	a.Status = StatusScheduled
}

// MarkUnscheduled clears the confirmed date and returns the appointment to
// the queue of pending requests.
func (a *Appointment) MarkUnscheduled() {
	a.ScheduledDate = nil
	a.Status = StatusUnscheduled
}

// IsScheduled reports whether staff have confirmed a visit date.
func (a *Appointment) IsScheduled() bool {
	return a.ScheduledDate != nil
}
