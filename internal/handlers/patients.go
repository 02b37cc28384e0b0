package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"infirmary-app-server/internal/models"
	"infirmary-app-server/internal/utils"
)

// PatientHandler handles patient record related requests.
type PatientHandler struct {
	DB *gorm.DB
}

// NewPatientHandler creates a new PatientHandler.
func NewPatientHandler(db *gorm.DB) *PatientHandler {
	return &PatientHandler{DB: db}
}

// CreatePatientRequest represents the request body for creating a patient record.
type CreatePatientRequest struct {
	FirstName  string `json:"firstName" binding:"required"`
	LastName   string `json:"lastName" binding:"required"`
	MiddleName string `json:"middleName"`
	Suffix     string `json:"suffix"`
	Gbox       string `json:"gbox" binding:"required"`
	Address    string `json:"address" binding:"required"`
	Department string `json:"department" binding:"required"`
	Course     string `json:"course" binding:"required"`
	Image      string `json:"image"`
	IDNum      int64  `json:"idNum" binding:"required"`
	Sex        string `json:"sex" binding:"required"`
}

// CreatePatient handles creating a new patient record.
func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var req CreatePatientRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if !models.IsGboxAddress(req.Gbox) {
		utils.BadRequest(c, "Please provide a valid Gbox email address with @gbox.adnu.edu.ph domain")
		return
	}

	patient := models.Patient{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		MiddleName: req.MiddleName,
		Suffix:     req.Suffix,
		Gbox:       req.Gbox,
		Address:    req.Address,
		Department: req.Department,
		Course:     req.Course,
		Image:      req.Image,
		IDNum:      req.IDNum,
		Sex:        req.Sex,
	}

	if err := h.DB.Create(&patient).Error; err != nil {
		utils.InternalServerError(c, err)
		return
	}

	utils.Created(c, "Patient created successfully", patient)
}

// GetPatients handles fetching all patient records.
func (h *PatientHandler) GetPatients(c *gin.Context) {
	var patients []models.Patient
	if err := h.DB.Find(&patients).Error; err != nil {
		utils.InternalServerError(c, err)
		return
	}
	utils.Success(c, "Patients fetched successfully", patients)
}

// GetPatientByID handles fetching a single patient record.
func (h *PatientHandler) GetPatientByID(c *gin.Context) {
	patient, ok := h.findByID(c)
	if !ok {
		return
	}
	utils.Success(c, "Patient fetched successfully", patient)
}

// UpdatePatientRequest represents a partial edit of a patient record.
type UpdatePatientRequest struct {
	FirstName  *string `json:"firstName"`
	LastName   *string `json:"lastName"`
	MiddleName *string `json:"middleName"`
	Suffix     *string `json:"suffix"`
	Gbox       *string `json:"gbox"`
	Address    *string `json:"address"`
	Department *string `json:"department"`
	Course     *string `json:"course"`
	Image      *string `json:"image"`
	IDNum      *int64  `json:"idNum"`
	Sex        *string `json:"sex"`
}

// UpdatePatient handles updating a patient record by ID.
func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	patient, ok := h.findByID(c)
	if !ok {
		return
	}

	var req UpdatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	if req.Gbox != nil && !models.IsGboxAddress(*req.Gbox) {
		utils.BadRequest(c, "Please provide a valid Gbox email address with @gbox.adnu.edu.ph domain")
		return
	}

	if req.FirstName != nil {
		patient.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		patient.LastName = *req.LastName
	}
	if req.MiddleName != nil {
		patient.MiddleName = *req.MiddleName
	}
	if req.Suffix != nil {
		patient.Suffix = *req.Suffix
	}
	if req.Gbox != nil {
		patient.Gbox = *req.Gbox
	}
	if req.Address != nil {
		patient.Address = *req.Address
	}
	if req.Department != nil {
		patient.Department = *req.Department
	}
	if req.Course != nil {
		patient.Course = *req.Course
	}
	if req.Image != nil {
		patient.Image = *req.Image
	}
	if req.IDNum != nil {
		patient.IDNum = *req.IDNum
	}
	if req.Sex != nil {
		patient.Sex = *req.Sex
	}

	if err := h.DB.Save(patient).Error; err != nil {
		utils.InternalServerError(c, err)
		return
	}

	utils.Success(c, "Patient updated successfully", patient)
}

// DeletePatient handles deleting a patient record by ID.
func (h *PatientHandler) DeletePatient(c *gin.Context) {
	patientID := c.Param("id")
	if _, err := uuid.Parse(patientID); err != nil {
		utils.BadRequest(c, "Invalid Patient ID format")
		return
	}

	result := h.DB.Delete(&models.Patient{}, "id = ?", patientID)
	if result.Error != nil {
		utils.InternalServerError(c, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, "Patient not found")
		return
	}

	utils.Success(c, "Patient deleted successfully", nil)
}

func (h *PatientHandler) findByID(c *gin.Context) (*models.Patient, bool) {
	patientID := c.Param("id")
	if _, err := uuid.Parse(patientID); err != nil {
		utils.BadRequest(c, "Invalid Patient ID format")
		return nil, false
	}

	var patient models.Patient
	if err := h.DB.First(&patient, "id = ?", patientID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Patient not found")
		} else {
			utils.InternalServerError(c, err)
		}
		return nil, false
	}
	return &patient, true
}
