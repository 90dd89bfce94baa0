package handlers

import (
	"net/http"

	"workaholic_backend/internal/middleware"
	"workaholic_backend/internal/services"
	"workaholic_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// UserHandler covers registration, login and the profile endpoints.
type UserHandler struct {
	*BaseHandler
	authService    services.AuthService
	profileService services.ProfileService
}

func NewUserHandler(base *BaseHandler, authService services.AuthService, profileService services.ProfileService) *UserHandler {
	return &UserHandler{
		BaseHandler:    base,
		authService:    authService,
		profileService: profileService,
	}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.POST("/register", h.Register)
		users.POST("/login", h.Login)
		users.GET("/:email", h.GetByEmail)
	}

	protected := rg.Group("/users")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/profile", h.GetProfile)
		protected.PUT("/update", h.UpdateDetails)
		protected.DELETE("/details", h.DeleteDetails)
	}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	response, err := h.authService.Register(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	response, err := h.authService.Login(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetByEmail returns the bare profile snapshot with no envelope, which
// existing clients rely on.
func (h *UserHandler) GetByEmail(c *gin.Context) {
	email := c.Param("email")

	snapshot, err := h.profileService.GetByEmail(email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	response, err := h.profileService.GetProfile(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *UserHandler) UpdateDetails(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateDetailsRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	snapshot, err := h.profileService.UpdateDetails(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UpdateDetailsResponse{
		Success:     true,
		Message:     "User details updated",
		UserDetails: snapshot,
	})
}

func (h *UserHandler) DeleteDetails(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.profileService.ClearDetails(userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User details deleted",
	})
}
