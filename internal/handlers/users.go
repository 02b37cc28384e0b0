package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"infirmary-app-server/internal/models"
	"infirmary-app-server/internal/utils"
)

// UserHandler handles admin account management requests.
type UserHandler struct {
	DB *gorm.DB
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{DB: db}
}

// GetUsers handles fetching all admin accounts.
func (h *UserHandler) GetUsers(c *gin.Context) {
	var users []models.User
	if err := h.DB.Find(&users).Error; err != nil {
		utils.InternalServerError(c, err)
		return
	}

	sanitizedUsers := make([]models.UserSanitized, len(users))
	for i, u := range users {
		sanitizedUsers[i] = u.Sanitize()
	}

	utils.Success(c, "Users fetched successfully", sanitizedUsers)
}

// GetUserByID handles fetching a single admin account by ID.
func (h *UserHandler) GetUserByID(c *gin.Context) {
	user, ok := h.findByID(c)
	if !ok {
		return
	}
	utils.Success(c, "User fetched successfully", user.Sanitize())
}

// UpdateUserRequest represents a partial edit of an admin account.
type UpdateUserRequest struct {
	Username   *string `json:"username"`
	Email      *string `json:"email"`
	Password   *string `json:"password"`
	FirstName  *string `json:"firstName"`
	LastName   *string `json:"lastName"`
	MiddleName *string `json:"middleName"`
	Suffix     *string `json:"suffix"`
	Image      *string `json:"image"`
}

// UpdateUser handles updating an admin account by ID.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	user, ok := h.findByID(c)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = strings.ToLower(*req.Email)
	}
	if req.Password != nil {
		if len(*req.Password) < 6 {
			utils.BadRequest(c, "Password must be at least 6 characters long")
			return
		}
		if err := user.SetPassword(*req.Password); err != nil {
			utils.InternalServerError(c, err)
			return
		}
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.MiddleName != nil {
		user.MiddleName = *req.MiddleName
	}
	if req.Suffix != nil {
		user.Suffix = *req.Suffix
	}
	if req.Image != nil {
		user.Image = *req.Image
	}

	if err := h.DB.Save(user).Error; err != nil {
		utils.InternalServerError(c, err)
		return
	}

	utils.Success(c, "User updated successfully", user.Sanitize())
}

// DeleteUser handles deleting an admin account by ID.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID := c.Param("id")
	if _, err := uuid.Parse(userID); err != nil {
		utils.BadRequest(c, "Invalid User ID format")
		return
	}

	result := h.DB.Delete(&models.User{}, "id = ?", userID)
	if result.Error != nil {
		utils.InternalServerError(c, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, "User not found")
		return
	}

	utils.Success(c, "User deleted successfully", nil)
}

func (h *UserHandler) findByID(c *gin.Context) (*models.User, bool) {
	userID := c.Param("id")
	if _, err := uuid.Parse(userID); err != nil {
		utils.BadRequest(c, "Invalid User ID format")
		return nil, false
	}

	var user models.User
	if err := h.DB.First(&user, "id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "User not found")
		} else {
			utils.InternalServerError(c, err)
		}
		return nil, false
	}
	return &user, true
}
