package repositories

import (
	"errors"

	"workaholic_backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("application already exists")
)

// JobApplicantRow is an application joined with the applicant's login and
// freelancer details, for the company-side listing.
type JobApplicantRow struct {
	ApplicationID uint
	Status        models.ApplicationStatus
	UserEmail     string
	Name          *string
	Skills        datatypes.JSON
	Experience    *int
}

// FreelancerApplicationRow is an application joined with its posting and
// the posting company's name, for the applicant-side listing.
type FreelancerApplicationRow struct {
	ApplicationID uint
	Status        models.ApplicationStatus
	JobID         uint
	Title         string
	Description   string
	CompanyName   *string
	Location      *string
}

type ApplicationRepository interface {
	// Create inserts a pending application. A (job, applicant) collision
	// surfaces as ErrDuplicateApplication via the unique index, which
	// also closes the race two concurrent applies would otherwise win
	// past the existence check.
	Create(app *models.JobApplication) error
	FindByID(id uint) (*models.JobApplication, error)
	FindByJobAndApplicant(jobID, applicantID uint) (*models.JobApplication, error)
	UpdateStatus(id uint, status models.ApplicationStatus) error
	Delete(id uint) error
	ListByJob(jobID uint) ([]JobApplicantRow, error)
	ListByApplicant(applicantID uint) ([]FreelancerApplicationRow, error)
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) Create(app *models.JobApplication) error {
	if err := r.db.Create(app).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateApplication
		}
		return err
	}
	return nil
}

func (r *ApplicationRepositoryImpl) FindByID(id uint) (*models.JobApplication, error) {
	var app models.JobApplication
	err := r.db.First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) FindByJobAndApplicant(jobID, applicantID uint) (*models.JobApplication, error) {
	var app models.JobApplication
	err := r.db.First(&app, "job_id = ? AND applicant_id = ?", jobID, applicantID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) UpdateStatus(id uint, status models.ApplicationStatus) error {
	// Existence is checked explicitly instead of via RowsAffected: MySQL
	// counts changed rows, so a no-op re-respond would look like a miss.
	var app models.JobApplication
	if err := r.db.First(&app, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrApplicationNotFound
		}
		return err
	}

	return r.db.Model(&models.JobApplication{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *ApplicationRepositoryImpl) Delete(id uint) error {
	return r.db.Delete(&models.JobApplication{}, id).Error
}

func (r *ApplicationRepositoryImpl) ListByJob(jobID uint) ([]JobApplicantRow, error) {
	var rows []JobApplicantRow
	err := r.db.Table("job_applications AS ja").
		Select("ja.id AS application_id, ja.status, u.user_email, fd.name, fd.skills_json AS skills, fd.experience").
		Joins("JOIN user_login u ON ja.applicant_id = u.id").
		Joins("LEFT JOIN freelancer_details fd ON u.id = fd.user_id").
		Where("ja.job_id = ?", jobID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ApplicationRepositoryImpl) ListByApplicant(applicantID uint) ([]FreelancerApplicationRow, error) {
	var rows []FreelancerApplicationRow
	err := r.db.Table("job_applications AS ja").
		Select("ja.id AS application_id, ja.status, ja.job_id, jp.title, jp.description, ud.company_name, jp.location").
		Joins("JOIN job_posts jp ON ja.job_id = jp.id").
		Joins("LEFT JOIN user_details ud ON jp.company_id = ud.user_id").
		Where("ja.applicant_id = ?", applicantID).
		Order("ja.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
