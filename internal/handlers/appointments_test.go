package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"infirmary-app-server/internal/config"
	"infirmary-app-server/internal/utils"
)

// newTestRouter wires the appointment routes against a handler with no
// database. Every case below must be rejected at the edge, before any store
// round-trip, so the nil DB is never touched.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAppointmentHandler(nil, &config.Config{})

	r := gin.New()
	r.POST("/api/appointments", h.CreateAppointment)
	r.GET("/api/appointments/:id", h.GetAppointmentByID)
	r.PATCH("/api/appointments/:id/status", h.UpdateAppointmentStatus)
	r.DELETE("/api/appointments/:id", h.DeleteAppointment)
	r.DELETE("/api/appointments", h.BulkDeleteAppointments)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, utils.ResponseData) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp utils.ResponseData
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body %q: %v", w.Body.String(), err)
	}
	return w, resp
}

const validBooking = `{
	"lastName": "Cruz",
	"firstName": "Ana",
	"gboxAcc": "ana@gbox.adnu.edu.ph",
	"idNum": 12345,
	"sex": "Female",
	"desiredDate": "2024-06-01T09:00:00Z",
	"concern": "Checkup"
}`

func TestCreateAppointmentRejectsMissingFields(t *testing.T) {
	r := newTestRouter()

	cases := []struct {
		name          string
		body          string
		errorContains string
	}{
		{
			name:          "empty body",
			body:          `{}`,
			errorContains: "LastName",
		},
		{
			name: "missing last name only",
			body: `{
				"firstName": "Ana",
				"gboxAcc": "ana@gbox.adnu.edu.ph",
				"idNum": 12345,
				"sex": "Female",
				"desiredDate": "2024-06-01T09:00:00Z",
				"concern": "Checkup"
			}`,
			errorContains: "LastName",
		},
		{
			name: "missing concern and desired date",
			body: `{
				"lastName": "Cruz",
				"firstName": "Ana",
				"gboxAcc": "ana@gbox.adnu.edu.ph",
				"idNum": 12345,
				"sex": "Female"
			}`,
			errorContains: "DesiredDate",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, resp := doJSON(t, r, http.MethodPost, "/api/appointments", c.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
			if !strings.Contains(resp.Error, c.errorContains) {
				t.Fatalf("expected error naming %q, got %q", c.errorContains, resp.Error)
			}
		})
	}
}

func TestCreateAppointmentRejectsBadGboxAddress(t *testing.T) {
	r := newTestRouter()

	body := strings.Replace(validBooking, "ana@gbox.adnu.edu.ph", "ana@gmail.com", 1)
	w, resp := doJSON(t, r, http.MethodPost, "/api/appointments", body)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(resp.Error, "Gbox") {
		t.Fatalf("expected Gbox address error, got %q", resp.Error)
	}
}

func TestCreateAppointmentRejectsBadIdempotencyKey(t *testing.T) {
	r := newTestRouter()

	body := strings.Replace(validBooking, `"concern": "Checkup"`,
		`"concern": "Checkup", "idempotencyKey": "not-a-uuid"`, 1)
	w, resp := doJSON(t, r, http.MethodPost, "/api/appointments", body)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(resp.Error, "idempotency") {
		t.Fatalf("expected idempotency key error, got %q", resp.Error)
	}
}

func TestMalformedIDRejectedBeforeStore(t *testing.T) {
	r := newTestRouter()

	cases := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{name: "get", method: http.MethodGet, path: "/api/appointments/notanid"},
		{name: "delete", method: http.MethodDelete, path: "/api/appointments/notanid"},
		{
			name:   "status patch",
			method: http.MethodPatch,
			path:   "/api/appointments/notanid/status",
			body:   `{"status": "Scheduled", "scheduledDate": "2024-06-03T10:00:00Z"}`,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, resp := doJSON(t, r, c.method, c.path, c.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 for malformed id, got %d", w.Code)
			}
			if !strings.Contains(resp.Error, "Invalid Appointment ID") {
				t.Fatalf("expected invalid id error, got %q", resp.Error)
			}
		})
	}
}

func TestUpdateStatusValidation(t *testing.T) {
	r := newTestRouter()
	path := "/api/appointments/8d7f2c45-3f66-4c7a-9a69-0a5d8e2f1b34/status"

	cases := []struct {
		name string
		body string
	}{
		{name: "missing status", body: `{"scheduledDate": "2024-06-03T10:00:00Z"}`},
		{name: "scheduled without date", body: `{"status": "Scheduled"}`},
		{name: "unknown status value", body: `{"status": "Declined"}`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, _ := doJSON(t, r, http.MethodPatch, path, c.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
		})
	}
}

func TestBulkDeleteRequiresIDs(t *testing.T) {
	r := newTestRouter()

	for _, body := range []string{`{}`, `{"ids": []}`} {
		w, _ := doJSON(t, r, http.MethodDelete, "/api/appointments", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for body %s, got %d", body, w.Code)
		}
	}
}
