package dto

type CreateJobRequest struct {
	UserEmail   string  `json:"user_email" validate:"required,email"`
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Location    *string `json:"location"`
}

type UpdateJobRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Location    *string `json:"location"`
}

type JobRow struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Location    *string `json:"location"`
	CompanyID   uint    `json:"company_id"`
	CompanyName *string `json:"companyName"`
}

type JobListResponse struct {
	CurrentPage int      `json:"currentPage"`
	TotalPages  int      `json:"totalPages"`
	TotalJobs   int64    `json:"totalJobs"`
	Limit       int      `json:"limit"`
	Jobs        []JobRow `json:"jobs"`
}
