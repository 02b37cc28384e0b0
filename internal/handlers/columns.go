package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"infirmary-app-server/internal/models"
	"infirmary-app-server/internal/utils"
)

// ColumnHandler handles news/column publishing requests.
type ColumnHandler struct {
	DB *gorm.DB
}

// NewColumnHandler creates a new ColumnHandler.
func NewColumnHandler(db *gorm.DB) *ColumnHandler {
	return &ColumnHandler{DB: db}
}

// CreateColumnRequest represents the request body for publishing a column.
type CreateColumnRequest struct {
	Image       string `json:"image" binding:"required"`
	ColumnTitle string `json:"columnTitle" binding:"required"`
	Author      string `json:"author"`
	Content     string `json:"content" binding:"required"`
}

// CreateColumn handles publishing a new column.
func (h *ColumnHandler) CreateColumn(c *gin.Context) {
	var req CreateColumnRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	column := models.Column{
		Image:       req.Image,
		ColumnTitle: req.ColumnTitle,
		Author:      req.Author,
		Content:     req.Content,
	}

	if err := h.DB.Create(&column).Error; err != nil {
		utils.InternalServerError(c, err)
		return
	}

	utils.Created(c, "Column created successfully", column)
}

// GetColumns handles fetching all published columns.
func (h *ColumnHandler) GetColumns(c *gin.Context) {
	var columns []models.Column
	if err := h.DB.Order("created_at desc").Find(&columns).Error; err != nil {
		utils.InternalServerError(c, err)
		return
	}
	utils.Success(c, "Columns fetched successfully", columns)
}

// GetColumnByID handles fetching a single column.
func (h *ColumnHandler) GetColumnByID(c *gin.Context) {
	column, ok := h.findByID(c)
	if !ok {
		return
	}
	utils.Success(c, "Column fetched successfully", column)
}

// UpdateColumnRequest represents a partial edit of a column.
type UpdateColumnRequest struct {
	Image       *string `json:"image"`
	ColumnTitle *string `json:"columnTitle"`
	Author      *string `json:"author"`
	Content     *string `json:"content"`
}

// UpdateColumn handles updating a column by ID.
func (h *ColumnHandler) UpdateColumn(c *gin.Context) {
	column, ok := h.findByID(c)
	if !ok {
		return
	}

	var req UpdateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	if req.Image != nil {
		column.Image = *req.Image
	}
	if req.ColumnTitle != nil {
		column.ColumnTitle = *req.ColumnTitle
	}
	if req.Author != nil {
		column.Author = *req.Author
	}
	if req.Content != nil {
		column.Content = *req.Content
	}

	if err := h.DB.Save(column).Error; err != nil {
		utils.InternalServerError(c, err)
		return
	}

	utils.Success(c, "Column updated successfully", column)
}

// DeleteColumn handles deleting a column by ID.
func (h *ColumnHandler) DeleteColumn(c *gin.Context) {
	columnID := c.Param("id")
	if _, err := uuid.Parse(columnID); err != nil {
		utils.BadRequest(c, "Invalid Column ID format")
		return
	}

	result := h.DB.Delete(&models.Column{}, "id = ?", columnID)
	if result.Error != nil {
		utils.InternalServerError(c, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, "Column not found")
		return
	}

	utils.Success(c, "Column deleted successfully", nil)
}

func (h *ColumnHandler) findByID(c *gin.Context) (*models.Column, bool) {
	columnID := c.Param("id")
	if _, err := uuid.Parse(columnID); err != nil {
		utils.BadRequest(c, "Invalid Column ID format")
		return nil, false
	}

	var column models.Column
	if err := h.DB.First(&column, "id = ?", columnID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Column not found")
		} else {
			utils.InternalServerError(c, err)
		}
		return nil, false
	}
	return &column, true
}
