package handlers

import (
	"net/http"

	"workaholic_backend/internal/services"
	"workaholic_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// JobHandler covers job post CRUD and the paginated listing.
type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

func (h *JobHandler) RegisterRoutes(jobs *gin.RouterGroup) {
	jobs.POST("/create", h.Create)
	jobs.GET("", h.List)
	jobs.PUT("/:jobId", h.Update)
	jobs.DELETE("/:jobId", h.Delete)
}

func (h *JobHandler) Create(c *gin.Context) {
	var req dto.CreateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.jobService.Create(&req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Job posted successfully",
	})
}

func (h *JobHandler) List(c *gin.Context) {
	page := ParseQueryInt(c, "page", 1)
	limit := ParseQueryInt(c, "limit", 10)

	response, err := h.jobService.List(page, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *JobHandler) Update(c *gin.Context) {
	jobID, err := ParseParamUint(c, "jobId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.jobService.Update(jobID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Job updated successfully",
	})
}

func (h *JobHandler) Delete(c *gin.Context) {
	jobID, err := ParseParamUint(c, "jobId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.jobService.Delete(jobID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Job deleted successfully",
	})
}
