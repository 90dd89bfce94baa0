package dto

import "workaholic_backend/internal/models"

// UserDetails is the flat profile snapshot: UserDetails and
// FreelancerDetails reassembled into one record with the JSON list
// columns decoded. detailsCompleted is server-computed and authoritative.
type UserDetails struct {
	Name             *string               `json:"name"`
	Age              *int                  `json:"age"`
	Role             *models.UserRole      `json:"role"`
	CompanyName      *string               `json:"companyName"`
	Location         *string               `json:"location"`
	Companies        []models.CompanyEntry `json:"companies"`
	SkillsList       []models.SkillEntry   `json:"skillsList"`
	Experience       *int                  `json:"experience"`
	DetailsCompleted bool                  `json:"detailsCompleted"`
}

type UpdateDetailsRequest struct {
	Name        *string             `json:"name"`
	Age         *int                `json:"age"`
	Role        *models.UserRole    `json:"role" validate:"omitempty,oneof=company freelancer"`
	CompanyName *string             `json:"companyName"`
	Location    *string             `json:"location"`
	SkillsList  []models.SkillEntry `json:"skillsList"`
	Experience  *int                `json:"experience"`
}

type ProfileResponse struct {
	Success     bool         `json:"success"`
	UserEmail   string       `json:"user_email"`
	UserDetails *UserDetails `json:"userDetails"`
}

type UpdateDetailsResponse struct {
	Success     bool         `json:"success"`
	Message     string       `json:"message"`
	UserDetails *UserDetails `json:"userDetails"`
}
