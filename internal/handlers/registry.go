package handlers

import (
	"workaholic_backend/internal/services"
	"workaholic_backend/internal/validator"
)

// AppHandlers bundles every HTTP handler behind a single constructor.
type AppHandlers struct {
	User        *UserHandler
	Job         *JobHandler
	Application *ApplicationHandler
}

func NewAppHandlers(container *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		User:        NewUserHandler(base, container.AuthService, container.ProfileService),
		Job:         NewJobHandler(base, container.JobService),
		Application: NewApplicationHandler(base, container.ApplicationService),
	}
}
