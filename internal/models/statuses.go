package models

type UserRole string
type ApplicationStatus string

const (
	UserRoleCompany    UserRole = "company"
	UserRoleFreelancer UserRole = "freelancer"

	// Application statuses are stored exactly as the respond actions
	// ("accept"/"reject"), so the two sets stay interchangeable on the wire.
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accept"
	ApplicationStatusRejected ApplicationStatus = "reject"
)

// Decided reports whether the application reached a terminal status.
// Terminal applications cannot be withdrawn by the applicant.
func (s ApplicationStatus) Decided() bool {
	return s == ApplicationStatusAccepted || s == ApplicationStatusRejected
}
