package services

// ServiceContainer groups every service for wiring in app and tests.
type ServiceContainer struct {
	AuthService        AuthService
	ProfileService     ProfileService
	JobService         JobService
	ApplicationService ApplicationService
}
