// internal/handlers/user.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"productshop/internal/models"
	"productshop/internal/services"
	"productshop/internal/utils"
)

type UserHandler struct {
	authService *services.AuthService
	userService *services.UserService
}

func NewUserHandler(authService *services.AuthService, userService *services.UserService) *UserHandler {
	return &UserHandler{
		authService: authService,
		userService: userService,
	}
}

// GET /users/profile
func (h *UserHandler) GetProfile(c *gin.Context) {
	username, exists := utils.GetUsernameFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	user, firstVisit, err := h.authService.Profile(username)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"user":        user,
		"first_visit": firstVisit,
	})
}

// PUT /users/profile
func (h *UserHandler) EditProfile(c *gin.Context) {
	username, exists := utils.GetUsernameFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.EditProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	user, err := h.authService.EditProfile(username, &req)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Profile updated",
		"user":    user,
	})
}

// GET /users
func (h *UserHandler) GetUsers(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	users, total, err := h.userService.GetUsers(params)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponseWithMeta(c, gin.H{"users": users}, utils.CreatePaginationResult(nil, total, params))
}

// POST /users/set-user/:id
func (h *UserHandler) SetUser(c *gin.Context) {
	h.setRole(c, models.TierUser)
}

// POST /users/set-moderator/:id
func (h *UserHandler) SetModerator(c *gin.Context) {
	h.setRole(c, models.TierModerator)
}

// POST /users/set-admin/:id
func (h *UserHandler) SetAdmin(c *gin.Context) {
	h.setRole(c, models.TierAdmin)
}

func (h *UserHandler) setRole(c *gin.Context, tier models.RoleTier) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user ID", nil)
		return
	}

	user, err := h.userService.SetUserRole(id, tier)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Roles updated",
		"user":    user,
	})
}
