package repositories

import (
	"errors"

	"workaholic_backend/internal/models"

	"gorm.io/gorm"
)

var ErrDetailsNotFound = errors.New("details not found")

type ProfileRepository interface {
	FindDetails(userID uint) (*models.UserDetails, error)
	FindFreelancerDetails(userID uint) (*models.FreelancerDetails, error)
	SaveDetails(details *models.UserDetails) error
	SaveFreelancerDetails(details *models.FreelancerDetails) error
	// ClearDetails nulls out both detail rows in one transaction. Rows are
	// never deleted; an account keeps its allocation for life.
	ClearDetails(userID uint) error
}

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

func (r *ProfileRepositoryImpl) FindDetails(userID uint) (*models.UserDetails, error) {
	var details models.UserDetails
	err := r.db.First(&details, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDetailsNotFound
		}
		return nil, err
	}
	return &details, nil
}

func (r *ProfileRepositoryImpl) FindFreelancerDetails(userID uint) (*models.FreelancerDetails, error) {
	var details models.FreelancerDetails
	err := r.db.First(&details, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDetailsNotFound
		}
		return nil, err
	}
	return &details, nil
}

func (r *ProfileRepositoryImpl) SaveDetails(details *models.UserDetails) error {
	return r.db.Save(details).Error
}

func (r *ProfileRepositoryImpl) SaveFreelancerDetails(details *models.FreelancerDetails) error {
	return r.db.Save(details).Error
}

func (r *ProfileRepositoryImpl) ClearDetails(userID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.UserDetails{}).
			Where("user_id = ?", userID).
			Updates(map[string]interface{}{
				"name":              nil,
				"age":               nil,
				"role":              nil,
				"company_name":      nil,
				"location":          nil,
				"companies":         nil,
				"details_completed": false,
			}).Error
		if err != nil {
			return err
		}

		return tx.Model(&models.FreelancerDetails{}).
			Where("user_id = ?", userID).
			Updates(map[string]interface{}{
				"name":        nil,
				"skills_json": nil,
				"experience":  nil,
			}).Error
	})
}
