package models

// JobApplication links a posting and an applicant account. The composite
// unique index is the authority on the one-application-per-job rule; the
// service-level existence check only exists for the friendlier message.
type JobApplication struct {
	BaseModel
	JobID       uint              `gorm:"not null;uniqueIndex:idx_job_applicant"`
	ApplicantID uint              `gorm:"not null;uniqueIndex:idx_job_applicant"`
	Status      ApplicationStatus `gorm:"type:varchar(20);not null;default:'pending'"`
}

func (JobApplication) TableName() string { return "job_applications" }
