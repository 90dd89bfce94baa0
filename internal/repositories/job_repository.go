package repositories

import (
	"errors"

	"workaholic_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

// JobListRow is one row of the paginated listing: the posting joined with
// the owning company's display name.
type JobListRow struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Location    *string `json:"location"`
	CompanyID   uint    `json:"company_id"`
	CompanyName *string `json:"companyName"`
}

type JobRepository interface {
	Create(job *models.JobPost) error
	FindByID(id uint) (*models.JobPost, error)
	Update(job *models.JobPost) error
	// DeleteCascade removes the posting's applications and then the
	// posting itself in one transaction.
	DeleteCascade(id uint) error
	List(limit, offset int) ([]JobListRow, error)
	Count() (int64, error)
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) Create(job *models.JobPost) error {
	return r.db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(id uint) (*models.JobPost, error) {
	var job models.JobPost
	err := r.db.First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) Update(job *models.JobPost) error {
	return r.db.Save(job).Error
}

func (r *JobRepositoryImpl) DeleteCascade(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", id).Delete(&models.JobApplication{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.JobPost{}, id).Error
	})
}

func (r *JobRepositoryImpl) List(limit, offset int) ([]JobListRow, error) {
	var rows []JobListRow
	err := r.db.Table("job_posts AS jp").
		Select("jp.id, jp.title, jp.description, jp.location, jp.company_id, ud.company_name").
		Joins("LEFT JOIN user_details ud ON ud.user_id = jp.company_id").
		Order("jp.id DESC").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *JobRepositoryImpl) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.JobPost{}).Count(&count).Error
	return count, err
}
