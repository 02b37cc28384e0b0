package triage

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"infirmary-app-server/internal/models"
)

func date(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func datePtr(s string) *time.Time {
	t := date(s)
	return &t
}

func appt(id string, created string, scheduled *time.Time) models.Appointment {
	a := models.Appointment{
		LastName:    "Cruz",
		FirstName:   "Ana",
		GboxAcc:     "ana@gbox.adnu.edu.ph",
		IDNum:       12345,
		Sex:         "Female",
		DesiredDate: date("2024-06-01T09:00:00Z"),
		Concern:     "Checkup",
	}
	a.ID = id
	a.CreatedAt = date(created)
	a.ScheduledDate = scheduled
	a.SyncStatus()
	return a
}

func ids(appointments []models.Appointment) []string {
	out := make([]string, len(appointments))
	for i, a := range appointments {
		out[i] = a.ID
	}
	return out
}

func fixture() []models.Appointment {
	return []models.Appointment{
		appt("a", "2024-05-01T08:00:00Z", datePtr("2024-06-03T10:00:00Z")),
		appt("b", "2024-05-02T08:00:00Z", nil),
		appt("c", "2024-05-03T08:00:00Z", datePtr("2024-06-05T10:00:00Z")),
		appt("d", "2024-05-04T08:00:00Z", nil),
		appt("e", "2024-05-04T08:00:00Z", nil), // same createdAt as d
	}
}

func TestParseFilter(t *testing.T) {
	cases := []struct {
		in       string
		expected Filter
	}{
		{in: "All", expected: FilterAll},
		{in: "all", expected: FilterAll},
		{in: "Unscheduled", expected: FilterUnscheduled},
		{in: "unscheduled", expected: FilterUnscheduled},
		{in: "Scheduled", expected: FilterScheduled},
		{in: "scheduled", expected: FilterScheduled},
		{in: "", expected: FilterAll},
		{in: "bogus", expected: FilterAll},
	}

	for _, c := range cases {
		if got := ParseFilter(c.in); got != c.expected {
			t.Fatalf("ParseFilter(%q): expected %q, got %q", c.in, c.expected, got)
		}
	}
}

func TestApplyPartition(t *testing.T) {
	all := fixture()

	unscheduled := Apply(FilterUnscheduled, all)
	scheduled := Apply(FilterScheduled, all)

	seen := map[string]string{}
	for _, a := range unscheduled {
		if a.IsScheduled() {
			t.Fatalf("unscheduled filter returned scheduled record %s", a.ID)
		}
		seen[a.ID] = "unscheduled"
	}
	for _, a := range scheduled {
		if !a.IsScheduled() {
			t.Fatalf("scheduled filter returned unscheduled record %s", a.ID)
		}
		if seen[a.ID] != "" {
			t.Fatalf("record %s selected by both filters", a.ID)
		}
		seen[a.ID] = "scheduled"
	}

	if len(unscheduled)+len(scheduled) != len(all) {
		t.Fatalf("filters do not partition the collection: %d + %d != %d",
			len(unscheduled), len(scheduled), len(all))
	}
	if len(Apply(FilterAll, all)) != len(all) {
		t.Fatalf("All filter must return the whole collection")
	}
}

func TestSortOrder(t *testing.T) {
	cases := []struct {
		name     string
		in       []models.Appointment
		expected []string
	}{
		{
			name: "unscheduled first, newest submission first, then scheduled by date desc",
			in:   fixture(),
			// d and e share createdAt, so the id breaks the tie.
			expected: []string{"d", "e", "b", "c", "a"},
		},
		{
			name: "all scheduled ordered by scheduled date descending",
			in: []models.Appointment{
				appt("x", "2024-05-01T08:00:00Z", datePtr("2024-06-01T09:00:00Z")),
				appt("y", "2024-05-02T08:00:00Z", datePtr("2024-06-04T09:00:00Z")),
				appt("z", "2024-05-03T08:00:00Z", datePtr("2024-06-02T09:00:00Z")),
			},
			expected: []string{"y", "z", "x"},
		},
		{
			name: "all unscheduled ordered by createdAt descending",
			in: []models.Appointment{
				appt("x", "2024-05-01T08:00:00Z", nil),
				appt("y", "2024-05-03T08:00:00Z", nil),
				appt("z", "2024-05-02T08:00:00Z", nil),
			},
			expected: []string{"y", "z", "x"},
		},
		{
			name:     "empty collection",
			in:       nil,
			expected: []string{},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ids(Sort(c.in))
			if len(got) == 0 && len(c.expected) == 0 {
				return
			}
			if !reflect.DeepEqual(got, c.expected) {
				t.Fatalf("expected order %v, got %v", c.expected, got)
			}
		})
	}
}

func TestSortIdempotent(t *testing.T) {
	once := Sort(fixture())
	twice := Sort(once)

	if !reflect.DeepEqual(ids(once), ids(twice)) {
		t.Fatalf("sorting twice changed the order: %v vs %v", ids(once), ids(twice))
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	in := fixture()
	before := ids(in)

	Sort(in)

	if !reflect.DeepEqual(ids(in), before) {
		t.Fatalf("Sort mutated its input: %v became %v", before, ids(in))
	}
}

func TestUnscheduledCount(t *testing.T) {
	cases := []struct {
		name     string
		in       []models.Appointment
		expected int
	}{
		{name: "mixed", in: fixture(), expected: 3},
		{name: "empty", in: nil, expected: 0},
		{
			name: "all scheduled",
			in: []models.Appointment{
				appt("x", "2024-05-01T08:00:00Z", datePtr("2024-06-01T09:00:00Z")),
			},
			expected: 0,
		},
	}

	for _, c := range cases {
		if got := UnscheduledCount(c.in); got != c.expected {
			t.Fatalf("%s: expected %d, got %d", c.name, c.expected, got)
		}
	}
}

func TestComposeNotification(t *testing.T) {
	cases := []struct {
		name            string
		scheduled       *time.Time
		expectedSubject string
		bodyContains    []string
	}{
		{
			name:            "pending request",
			scheduled:       nil,
			expectedSubject: "Your appointment request is pending",
			bodyContains:    []string{"06/01/2024", "awaiting confirmation", "Checkup"},
		},
		{
			name:            "confirmed as requested",
			scheduled:       datePtr("2024-06-01T09:00:00Z"),
			expectedSubject: "Your appointment has been confirmed",
			bodyContains:    []string{"06/01/2024", "as requested"},
		},
		{
			name:            "moved to another date",
			scheduled:       datePtr("2024-06-03T10:00:00Z"),
			expectedSubject: "Your appointment has been rescheduled",
			bodyContains:    []string{"06/01/2024", "06/03/2024"},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := appt("a", "2024-05-01T08:00:00Z", c.scheduled)
			got := ComposeNotification(a, "University Infirmary")

			if got.To != "ana@gbox.adnu.edu.ph" {
				t.Fatalf("expected recipient ana@gbox.adnu.edu.ph, got %s", got.To)
			}
			if got.Subject != c.expectedSubject {
				t.Fatalf("expected subject %q, got %q", c.expectedSubject, got.Subject)
			}
			for _, s := range c.bodyContains {
				if !strings.Contains(got.Body, s) {
					t.Fatalf("expected body to contain %q, got: %s", s, got.Body)
				}
			}
			if !strings.Contains(got.Body, "University Infirmary") {
				t.Fatalf("expected body to carry the clinic signature")
			}
		})
	}
}
