package dto

import "workaholic_backend/internal/models"

type ApplyRequest struct {
	UserEmail string `json:"user_email" validate:"required,email"`
	JobID     uint   `json:"job_id" validate:"required"`
}

type WithdrawRequest struct {
	UserEmail string `json:"user_email" validate:"required,email"`
	JobID     uint   `json:"job_id" validate:"required"`
}

type RespondRequest struct {
	Action string `json:"action" validate:"required,oneof=accept reject"`
}

// ApplicantResponse is one applicant of a posting, with the freelancer's
// skill list decoded.
type ApplicantResponse struct {
	ApplicationID uint                     `json:"applicationId"`
	Status        models.ApplicationStatus `json:"status"`
	UserEmail     string                   `json:"user_email"`
	Name          *string                  `json:"name"`
	SkillsList    []models.SkillEntry      `json:"skillsList"`
	Experience    *int                     `json:"experience"`
}

// FreelancerApplication is one of an applicant's applications joined with
// its posting.
type FreelancerApplication struct {
	ApplicationID uint                     `json:"applicationId"`
	Status        models.ApplicationStatus `json:"status"`
	JobID         uint                     `json:"job_id"`
	Title         string                   `json:"title"`
	Description   string                   `json:"description"`
	CompanyName   *string                  `json:"companyName"`
	Location      *string                  `json:"location"`
}

type FreelancerApplicationsResponse struct {
	Success      bool                    `json:"success"`
	Applications []FreelancerApplication `json:"applications"`
}
