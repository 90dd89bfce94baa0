package services

import (
	"workaholic_backend/internal/models"
	"workaholic_backend/internal/repositories"
	"workaholic_backend/internal/services/dto"
	"workaholic_backend/pkg/apperrors"
)

type ProfileService interface {
	// Snapshot reassembles UserDetails and FreelancerDetails into the flat
	// profile record returned by every read path.
	Snapshot(userID uint) (*dto.UserDetails, error)
	GetByEmail(email string) (*dto.UserDetails, error)
	GetProfile(userID uint) (*dto.ProfileResponse, error)
	UpdateDetails(userID uint, req *dto.UpdateDetailsRequest) (*dto.UserDetails, error)
	ClearDetails(userID uint) error
}

type ProfileServiceImpl struct {
	profileRepo repositories.ProfileRepository
	userRepo    repositories.UserRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository, userRepo repositories.UserRepository) ProfileService {
	return &ProfileServiceImpl{
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

// resolveRole decides the persisted role for a profile update. An explicit
// role always wins; otherwise the previously stored role is sticky; only a
// profile that never had a role falls back to inference from companyName
// presence. Read paths never run this — the stored role is authoritative
// once the update persists it.
func resolveRole(explicit, stored *models.UserRole, companyName *string) models.UserRole {
	if explicit != nil && *explicit != "" {
		return *explicit
	}
	if stored != nil && *stored != "" {
		return *stored
	}
	if companyName != nil && *companyName != "" {
		return models.UserRoleCompany
	}
	return models.UserRoleFreelancer
}

// companiesProjection builds the single-element companies list from the
// profile's company fields. The column is list-shaped but the application
// layer never stores more than one entry; the frontend depends on that.
func companiesProjection(companyName, location *string) []models.CompanyEntry {
	if companyName == nil || *companyName == "" {
		return []models.CompanyEntry{}
	}
	entry := models.CompanyEntry{CompanyName: *companyName}
	if location != nil {
		entry.Location = *location
	}
	return []models.CompanyEntry{entry}
}

// buildSnapshot merges the two detail rows into one flat record. Either
// row may be nil for legacy accounts; JSON list columns decode leniently
// to empty lists.
func buildSnapshot(details *models.UserDetails, freelancer *models.FreelancerDetails) *dto.UserDetails {
	snapshot := &dto.UserDetails{
		Companies:  []models.CompanyEntry{},
		SkillsList: []models.SkillEntry{},
	}

	if details != nil {
		snapshot.Name = details.Name
		snapshot.Age = details.Age
		snapshot.Role = details.Role
		snapshot.CompanyName = details.CompanyName
		snapshot.Location = details.Location
		snapshot.Companies = details.GetCompanies()
		snapshot.DetailsCompleted = details.DetailsCompleted
	}

	if freelancer != nil {
		if snapshot.Name == nil {
			snapshot.Name = freelancer.Name
		}
		snapshot.SkillsList = freelancer.GetSkills()
		snapshot.Experience = freelancer.Experience
	}

	return snapshot
}

func (s *ProfileServiceImpl) Snapshot(userID uint) (*dto.UserDetails, error) {
	details, err := s.profileRepo.FindDetails(userID)
	if err != nil && !apperrors.Is(err, repositories.ErrDetailsNotFound) {
		return nil, apperrors.InternalError(err)
	}

	freelancer, err := s.profileRepo.FindFreelancerDetails(userID)
	if err != nil && !apperrors.Is(err, repositories.ErrDetailsNotFound) {
		return nil, apperrors.InternalError(err)
	}

	return buildSnapshot(details, freelancer), nil
}

func (s *ProfileServiceImpl) GetByEmail(email string) (*dto.UserDetails, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return s.Snapshot(user.ID)
}

func (s *ProfileServiceImpl) GetProfile(userID uint) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	snapshot, err := s.Snapshot(user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.ProfileResponse{
		Success:     true,
		UserEmail:   user.Email,
		UserDetails: snapshot,
	}, nil
}

// UpdateDetails is the profile upsert. It persists the resolved role,
// marks the profile completed, and projects the role-specific fields:
// freelancers get their FreelancerDetails row upserted with the skill
// list, companies get the single-element companies list.
func (s *ProfileServiceImpl) UpdateDetails(userID uint, req *dto.UpdateDetailsRequest) (*dto.UserDetails, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	details, err := s.profileRepo.FindDetails(userID)
	if err != nil {
		if !apperrors.Is(err, repositories.ErrDetailsNotFound) {
			return nil, apperrors.InternalError(err)
		}
		details = &models.UserDetails{UserID: userID}
	}

	role := resolveRole(req.Role, details.Role, req.CompanyName)

	details.Name = req.Name
	details.Age = req.Age
	details.Role = &role
	details.CompanyName = req.CompanyName
	details.Location = req.Location
	if role == models.UserRoleCompany {
		details.SetCompanies(companiesProjection(req.CompanyName, req.Location))
	} else {
		details.SetCompanies(nil)
	}
	details.DetailsCompleted = true

	if err := s.profileRepo.SaveDetails(details); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if role == models.UserRoleFreelancer {
		freelancer, err := s.profileRepo.FindFreelancerDetails(userID)
		if err != nil {
			if !apperrors.Is(err, repositories.ErrDetailsNotFound) {
				return nil, apperrors.InternalError(err)
			}
			freelancer = &models.FreelancerDetails{UserID: userID}
		}

		freelancer.Name = req.Name
		freelancer.SetSkills(req.SkillsList)
		freelancer.Experience = req.Experience

		if err := s.profileRepo.SaveFreelancerDetails(freelancer); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	return s.Snapshot(userID)
}

func (s *ProfileServiceImpl) ClearDetails(userID uint) error {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	if err := s.profileRepo.ClearDetails(userID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
