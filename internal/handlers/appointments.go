package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"infirmary-app-server/internal/config"
	"infirmary-app-server/internal/models"
	"infirmary-app-server/internal/triage"
	"infirmary-app-server/internal/utils"
)

// AppointmentHandler handles appointment related requests.
type AppointmentHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(db *gorm.DB, cfg *config.Config) *AppointmentHandler {
	return &AppointmentHandler{DB: db, Cfg: cfg}
}

// CreateAppointmentRequest represents the request body for the public
// booking form.
type CreateAppointmentRequest struct {
	LastName       string    `json:"lastName" binding:"required"`
	FirstName      string    `json:"firstName" binding:"required"`
	MiddleName     string    `json:"middleName"`
	GboxAcc        string    `json:"gboxAcc" binding:"required"`
	IDNum          int64     `json:"idNum" binding:"required"`
	Sex            string    `json:"sex" binding:"required"`
	Department     string    `json:"department"`
	Course         string    `json:"course"`
	DesiredDate    time.Time `json:"desiredDate" binding:"required"`
	Concern        string    `json:"concern" binding:"required"`
	IdempotencyKey string    `json:"idempotencyKey"`
}

func (r *CreateAppointmentRequest) toModel() models.Appointment {
	return models.Appointment{
		LastName:    r.LastName,
		FirstName:   r.FirstName,
		MiddleName:  r.MiddleName,
		GboxAcc:     r.GboxAcc,
		IDNum:       r.IDNum,
		Sex:         r.Sex,
		Department:  r.Department,
		Course:      r.Course,
		DesiredDate: r.DesiredDate,
		Concern:     r.Concern,
	}
}

// CreateAppointment handles the public booking form. The created record is
// always Unscheduled; any status a client sends is ignored. A repeated
// submission carrying the same idempotency key returns the booking created
// the first time instead of duplicating it.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if !models.IsGboxAddress(req.GboxAcc) {
		utils.BadRequest(c, "Please provide a valid Gbox email address with @gbox.adnu.edu.ph domain")
		return
	}

	appointment := req.toModel()
	appointment.MarkUnscheduled()

	if req.IdempotencyKey != "" {
		if _, err := uuid.Parse(req.IdempotencyKey); err != nil {
			utils.BadRequest(c, "Invalid idempotency key format")
			return
		}

		var existing models.Appointment
		err := h.DB.Where("idempotency_key = ?", req.IdempotencyKey).First(&existing).Error
		if err == nil {
			// Replayed submission; hand back the original booking.
			utils.Success(c, "Appointment already booked", existing)
			return
		}
		if err != gorm.ErrRecordNotFound {
			utils.InternalServerError(c, err)
			return
		}
		key := req.IdempotencyKey
		appointment.IdempotencyKey = &key
	}

	if err := h.DB.Create(&appointment).Error; err != nil {
		utils.InternalServerError(c, err)
		return
	}

	utils.Created(c, "Appointment booked successfully", appointment)
}

// CreateScheduledAppointmentRequest represents the request body for an
// admin-initiated appointment, created directly as Scheduled.
type CreateScheduledAppointmentRequest struct {
	CreateAppointmentRequest
	ScheduledDate *time.Time `json:"scheduledDate"`
}

// CreateScheduledAppointment handles an admin creating an appointment on
// behalf of a patient. The scheduled date defaults to the desired date when
// not given explicitly.
func (h *AppointmentHandler) CreateScheduledAppointment(c *gin.Context) {
	var req CreateScheduledAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if !models.IsGboxAddress(req.GboxAcc) {
		utils.BadRequest(c, "Please provide a valid Gbox email address with @gbox.adnu.edu.ph domain")
		return
	}

	appointment := req.toModel()
	if req.ScheduledDate != nil {
		appointment.Approve(*req.ScheduledDate)
	} else {
		appointment.Approve(req.DesiredDate)
	}

	if err := h.DB.Create(&appointment).Error; err != nil {
		utils.InternalServerError(c, err)
		return
	}

	utils.Created(c, "Appointment created successfully", appointment)
}

// GetAppointments handles fetching the appointment collection. An optional
// ?filter=All|Unscheduled|Scheduled query applies the inbox triage view:
// the filtered set in triage order.
func (h *AppointmentHandler) GetAppointments(c *gin.Context) {
	var appointments []models.Appointment
	if err := h.DB.Find(&appointments).Error; err != nil {
		utils.InternalServerError(c, err)
		return
	}

	if filterParam, ok := c.GetQuery("filter"); ok {
		filtered := triage.Apply(triage.ParseFilter(filterParam), appointments)
		utils.Success(c, "Appointments fetched successfully", triage.Sort(filtered))
		return
	}

	utils.Success(c, "Appointments fetched successfully", appointments)
}

// GetInboxCount returns the number of requests still awaiting triage, used
// as the admin notification badge.
func (h *AppointmentHandler) GetInboxCount(c *gin.Context) {
	var appointments []models.Appointment
	if err := h.DB.Find(&appointments).Error; err != nil {
		utils.InternalServerError(c, err)
		return
	}

	utils.Success(c, "Inbox count fetched successfully", gin.H{
		"unscheduled": triage.UnscheduledCount(appointments),
	})
}

// GetAppointmentByID handles fetching a single appointment by its ID.
func (h *AppointmentHandler) GetAppointmentByID(c *gin.Context) {
	appointment, ok := h.findByID(c)
	if !ok {
		return
	}
	utils.Success(c, "Appointment fetched successfully", appointment)
}

// GetAppointmentNotification composes the prefilled notification e-mail for
// an appointment. Composing is a pure projection; nothing is sent.
func (h *AppointmentHandler) GetAppointmentNotification(c *gin.Context) {
	appointment, ok := h.findByID(c)
	if !ok {
		return
	}

	notification := triage.ComposeNotification(*appointment, h.Cfg.Mailer.ClinicName)
	utils.Success(c, "Notification composed successfully", notification)
}

// UpdateAppointmentRequest represents a partial edit of an appointment.
// Absent fields are left untouched.
type UpdateAppointmentRequest struct {
	LastName      *string    `json:"lastName"`
	FirstName     *string    `json:"firstName"`
	MiddleName    *string    `json:"middleName"`
	GboxAcc       *string    `json:"gboxAcc"`
	IDNum         *int64     `json:"idNum"`
	Sex           *string    `json:"sex"`
	Department    *string    `json:"department"`
	Course        *string    `json:"course"`
	DesiredDate   *time.Time `json:"desiredDate"`
	ScheduledDate *time.Time `json:"scheduledDate"`
	Concern       *string    `json:"concern"`
}

// UpdateAppointment handles a full or partial edit by an admin. Status is
// re-derived from the scheduled date after applying the edit, so the two
// cannot be left inconsistent.
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	appointment, ok := h.findByID(c)
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	if req.GboxAcc != nil && !models.IsGboxAddress(*req.GboxAcc) {
		utils.BadRequest(c, "Please provide a valid Gbox email address with @gbox.adnu.edu.ph domain")
		return
	}

	if req.LastName != nil {
		appointment.LastName = *req.LastName
	}
	if req.FirstName != nil {
		appointment.FirstName = *req.FirstName
	}
	if req.MiddleName != nil {
		appointment.MiddleName = *req.MiddleName
	}
	if req.GboxAcc != nil {
		appointment.GboxAcc = *req.GboxAcc
	}
	if req.IDNum != nil {
		appointment.IDNum = *req.IDNum
	}
	if req.Sex != nil {
		appointment.Sex = *req.Sex
	}
	if req.Department != nil {
		appointment.Department = *req.Department
	}
	if req.Course != nil {
		appointment.Course = *req.Course
	}
	if req.DesiredDate != nil {
		appointment.DesiredDate = *req.DesiredDate
	}
	if req.ScheduledDate != nil {
		appointment.ScheduledDate = req.ScheduledDate
	}
	if req.Concern != nil {
		appointment.Concern = *req.Concern
	}

	appointment.SyncStatus()

	if err := h.DB.Save(appointment).Error; err != nil {
		utils.InternalServerError(c, err)
		return
	}

	utils.Success(c, "Appointment updated successfully", appointment)
}

// UpdateAppointmentStatusRequest represents the approve/unschedule action
// from the inbox. A Scheduled status must carry the confirmed date.
type UpdateAppointmentStatusRequest struct {
	Status        models.AppointmentStatus `json:"status" binding:"required,oneof=Scheduled Unscheduled"`
	ScheduledDate *time.Time               `json:"scheduledDate" binding:"required_if=Status Scheduled"`
}

// UpdateAppointmentStatus handles approving an appointment (status plus
// scheduled date in a single update) or returning it to the pending queue.
// The desired date is never touched.
func (h *AppointmentHandler) UpdateAppointmentStatus(c *gin.Context) {
	var req UpdateAppointmentStatusRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	appointment, ok := h.findByID(c)
	if !ok {
		return
	}

	if req.Status == models.StatusScheduled {
		appointment.Approve(*req.ScheduledDate)
	} else {
		appointment.MarkUnscheduled()
	}

	// One UPDATE carrying both fields, so readers never observe a record
	// with status and scheduled date out of step.
	err := h.DB.Model(appointment).
		Select("status", "scheduled_date").
		Updates(map[string]interface{}{
			"status":         appointment.Status,
			"scheduled_date": appointment.ScheduledDate,
		}).Error
	if err != nil {
		utils.InternalServerError(c, err)
		return
	}

	utils.Success(c, "Appointment status updated successfully", appointment)
}

// DeleteAppointment handles declining (deleting) a single appointment.
// Decline is destructive: there is no soft state and no recovery.
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	appointmentID := c.Param("id")
	if _, err := uuid.Parse(appointmentID); err != nil {
		utils.BadRequest(c, "Invalid Appointment ID format")
		return
	}

	result := h.DB.Delete(&models.Appointment{}, "id = ?", appointmentID)
	if result.Error != nil {
		utils.InternalServerError(c, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, "Appointment not found")
		return
	}

	utils.Success(c, "Appointment deleted successfully", nil)
}

// BulkDeleteAppointmentsRequest carries the inbox multi-selection.
type BulkDeleteAppointmentsRequest struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}

// BulkDeleteResult reports the outcome for one id of a bulk delete.
type BulkDeleteResult struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
	Error   string `json:"error,omitempty"`
}

// BulkDeleteAppointments deletes every selected appointment. Each delete is
// independent: one id failing (already deleted by another admin, say) does
// not roll back the others.
func (h *AppointmentHandler) BulkDeleteAppointments(c *gin.Context) {
	var req BulkDeleteAppointmentsRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	results := make([]BulkDeleteResult, 0, len(req.IDs))
	for _, id := range req.IDs {
		if _, err := uuid.Parse(id); err != nil {
			results = append(results, BulkDeleteResult{ID: id, Error: "invalid id format"})
			continue
		}

		result := h.DB.Delete(&models.Appointment{}, "id = ?", id)
		switch {
		case result.Error != nil:
			results = append(results, BulkDeleteResult{ID: id, Error: "server error"})
		case result.RowsAffected == 0:
			results = append(results, BulkDeleteResult{ID: id, Error: "not found"})
		default:
			results = append(results, BulkDeleteResult{ID: id, Deleted: true})
		}
	}

	utils.Success(c, "Bulk delete completed", results)
}

// findByID resolves the :id route param to an appointment. A malformed id is
// rejected with a 400 before any store round-trip; a well-formed id with no
// matching record yields a 404.
func (h *AppointmentHandler) findByID(c *gin.Context) (*models.Appointment, bool) {
	appointmentID := c.Param("id")
	if _, err := uuid.Parse(appointmentID); err != nil {
		utils.BadRequest(c, "Invalid Appointment ID format")
		return nil, false
	}

	var appointment models.Appointment
	if err := h.DB.First(&appointment, "id = ?", appointmentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, err)
		}
		return nil, false
	}
	return &appointment, true
}
