// Package triage turns the flat appointment collection into the ordered,
// filterable view the admin inbox works from. Everything here is a pure
// projection over already-fetched records so it can be tested against
// fixtures without a database.
package triage

import (
	"fmt"
	"sort"
	"strings"

	"infirmary-app-server/internal/models"
)

// Filter selects which slice of the inbox is shown.
type Filter string

const (
	FilterAll         Filter = "All"
	FilterUnscheduled Filter = "Unscheduled"
	FilterScheduled   Filter = "Scheduled"
)

// ParseFilter maps a query-string value onto a Filter. Empty and unknown
// values fall back to All; matching is case-insensitive to tolerate the
// lowercase values older clients send.
func ParseFilter(s string) Filter {
	switch strings.ToLower(s) {
	case "unscheduled":
		return FilterUnscheduled
	case "scheduled":
		return FilterScheduled
	default:
		return FilterAll
	}
}

// Apply returns the appointments selected by the filter. Unscheduled and
// Scheduled partition the collection on the presence of a confirmed date:
// every record is in exactly one of the two.
func Apply(f Filter, appointments []models.Appointment) []models.Appointment {
	if f == FilterAll {
		out := make([]models.Appointment, len(appointments))
		copy(out, appointments)
		return out
	}

	out := make([]models.Appointment, 0, len(appointments))
	for _, a := range appointments {
		switch f {
		case FilterUnscheduled:
			if !a.IsScheduled() {
				out = append(out, a)
			}
		case FilterScheduled:
			if a.IsScheduled() {
				out = append(out, a)
			}
		}
	}
	return out
}

// Sort orders appointments for the inbox: pending requests bubble to the top,
// newest submission first, while confirmed visits follow ordered by their
// scheduled date, most recent first. Ties fall back to createdAt descending
// and finally id ascending, so the order is total and sorting twice yields
// the same sequence.
func Sort(appointments []models.Appointment) []models.Appointment {
	out := make([]models.Appointment, len(appointments))
	copy(out, appointments)

	sort.SliceStable(out, func(i, j int) bool {
		return less(&out[i], &out[j])
	})
	return out
}

func less(a, b *models.Appointment) bool {
	// Unscheduled before scheduled.
	if a.IsScheduled() != b.IsScheduled() {
		return !a.IsScheduled()
	}

	if a.IsScheduled() {
		if !a.ScheduledDate.Equal(*b.ScheduledDate) {
			return a.ScheduledDate.After(*b.ScheduledDate)
		}
	}

	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID < b.ID
}

// UnscheduledCount is the badge projection: how many requests still await
// triage. Recomputed from the collection on every call.
func UnscheduledCount(appointments []models.Appointment) int {
	n := 0
	for _, a := range appointments {
		if a.Status == models.StatusUnscheduled {
			n++
		}
	}
	return n
}

// Notification is a prefilled e-mail for the requester, ready to be handed
// to a mail client. Composing it has no network side effect.
type Notification struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

const visitDateLayout = "01/02/2006 Monday 03:04 PM"

// ComposeNotification builds the message an admin sends a requester about
// their appointment. The body branches on whether a visit has been
// confirmed, and whether the confirmed date matches the one asked for.
func ComposeNotification(a models.Appointment, clinicName string) Notification {
	name := strings.TrimSpace(a.FirstName + " " + a.LastName)
	desired := a.DesiredDate.Format(visitDateLayout)

	var subject, body string
	switch {
	case a.ScheduledDate == nil:
		subject = "Your appointment request is pending"
		body = fmt.Sprintf(
			"Dear %s,\n\nWe have received your appointment request for %s regarding: %s. "+
				"It is currently awaiting confirmation; we will notify you once a visit date is set.\n\n%s",
			name, desired, a.Concern, clinicName)
	case a.ScheduledDate.Equal(a.DesiredDate):
		subject = "Your appointment has been confirmed"
		body = fmt.Sprintf(
			"Dear %s,\n\nYour appointment has been confirmed for %s, as requested. "+
				"Please arrive a few minutes early and bring your ID.\n\n%s",
			name, desired, clinicName)
	default:
		scheduled := a.ScheduledDate.Format(visitDateLayout)
		subject = "Your appointment has been rescheduled"
		body = fmt.Sprintf(
			"Dear %s,\n\nYour appointment originally requested for %s has been scheduled for %s instead. "+
				"If the new date does not work for you, please reply to this e-mail.\n\n%s",
			name, desired, scheduled, clinicName)
	}

	return Notification{To: a.GboxAcc, Subject: subject, Body: body}
}
