package handlers

import (
	"net/http"

	"workaholic_backend/internal/services"
	"workaholic_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// ApplicationHandler covers applying, withdrawing and the two
// application listings, plus the company respond action.
type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(jobs *gin.RouterGroup) {
	jobs.POST("/apply", h.Apply)
	jobs.DELETE("/withdraw", h.Withdraw)
	jobs.GET("/freelancer/:email/applications", h.ListByFreelancer)
	jobs.GET("/:jobId/applications", h.ListByJob)
	jobs.PUT("/applications/:applicationId/respond", h.Respond)
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req dto.ApplyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.applicationService.Apply(&req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Applied successfully",
	})
}

func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	var req dto.WithdrawRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.applicationService.Withdraw(&req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Application withdrawn successfully",
	})
}

// ListByJob returns the applicant rows as a bare array with no envelope,
// which existing clients rely on.
func (h *ApplicationHandler) ListByJob(c *gin.Context) {
	jobID, err := ParseParamUint(c, "jobId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	applicants, err := h.applicationService.ListByJob(jobID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, applicants)
}

func (h *ApplicationHandler) Respond(c *gin.Context) {
	applicationID, err := ParseParamUint(c, "applicationId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.RespondRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if _, err := h.applicationService.Respond(applicationID, req.Action); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Application " + req.Action + "ed successfully",
	})
}

func (h *ApplicationHandler) ListByFreelancer(c *gin.Context) {
	email := c.Param("email")

	response, err := h.applicationService.ListByFreelancer(email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
