package services

import (
	"workaholic_backend/internal/models"
	"workaholic_backend/internal/repositories"
	"workaholic_backend/internal/services/dto"
	"workaholic_backend/pkg/apperrors"
)

type ApplicationService interface {
	// Apply creates a pending application. One application per
	// (job, applicant) pair while the row exists; a rejected applicant
	// cannot reapply unless the row is removed.
	Apply(req *dto.ApplyRequest) error
	// Withdraw deletes a pending application. Decided applications are
	// immutable to the applicant.
	Withdraw(req *dto.WithdrawRequest) error
	Respond(applicationID uint, action string) (models.ApplicationStatus, error)
	ListByJob(jobID uint) ([]dto.ApplicantResponse, error)
	ListByFreelancer(email string) (*dto.FreelancerApplicationsResponse, error)
}

type ApplicationServiceImpl struct {
	appRepo  repositories.ApplicationRepository
	userRepo repositories.UserRepository
	jobRepo  repositories.JobRepository
}

func NewApplicationService(
	appRepo repositories.ApplicationRepository,
	userRepo repositories.UserRepository,
	jobRepo repositories.JobRepository,
) ApplicationService {
	return &ApplicationServiceImpl{
		appRepo:  appRepo,
		userRepo: userRepo,
		jobRepo:  jobRepo,
	}
}

// statusForAction maps a respond action onto the stored status. Only the
// two terminal transitions out of pending are exposed.
func statusForAction(action string) (models.ApplicationStatus, error) {
	switch action {
	case "accept":
		return models.ApplicationStatusAccepted, nil
	case "reject":
		return models.ApplicationStatusRejected, nil
	default:
		return "", apperrors.ErrInvalidAction
	}
}

func (s *ApplicationServiceImpl) Apply(req *dto.ApplyRequest) error {
	user, err := s.userRepo.FindByEmail(req.UserEmail)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	if _, err := s.jobRepo.FindByID(req.JobID); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrJobNotFound
		}
		return apperrors.InternalError(err)
	}

	// Pre-check for the friendly message; the unique index is the
	// authority when two applies race.
	_, err = s.appRepo.FindByJobAndApplicant(req.JobID, user.ID)
	if err == nil {
		return apperrors.ErrAlreadyApplied
	}
	if !apperrors.Is(err, repositories.ErrApplicationNotFound) {
		return apperrors.InternalError(err)
	}

	app := &models.JobApplication{
		JobID:       req.JobID,
		ApplicantID: user.ID,
		Status:      models.ApplicationStatusPending,
	}
	if err := s.appRepo.Create(app); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateApplication) {
			return apperrors.ErrAlreadyApplied
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ApplicationServiceImpl) Withdraw(req *dto.WithdrawRequest) error {
	user, err := s.userRepo.FindByEmail(req.UserEmail)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	app, err := s.appRepo.FindByJobAndApplicant(req.JobID, user.ID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.ErrApplicationNotFound
		}
		return apperrors.InternalError(err)
	}

	if app.Status.Decided() {
		return apperrors.ErrApplicationDecided
	}

	if err := s.appRepo.Delete(app.ID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ApplicationServiceImpl) Respond(applicationID uint, action string) (models.ApplicationStatus, error) {
	status, err := statusForAction(action)
	if err != nil {
		return "", err
	}

	// Unconditional overwrite: re-responding to a decided application is
	// allowed and idempotent.
	if err := s.appRepo.UpdateStatus(applicationID, status); err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return "", apperrors.ErrApplicationNotFound
		}
		return "", apperrors.InternalError(err)
	}
	return status, nil
}

func (s *ApplicationServiceImpl) ListByJob(jobID uint) ([]dto.ApplicantResponse, error) {
	rows, err := s.appRepo.ListByJob(jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	applicants := make([]dto.ApplicantResponse, 0, len(rows))
	for _, row := range rows {
		fd := models.FreelancerDetails{Skills: row.Skills}
		applicants = append(applicants, dto.ApplicantResponse{
			ApplicationID: row.ApplicationID,
			Status:        row.Status,
			UserEmail:     row.UserEmail,
			Name:          row.Name,
			SkillsList:    fd.GetSkills(),
			Experience:    row.Experience,
		})
	}
	return applicants, nil
}

func (s *ApplicationServiceImpl) ListByFreelancer(email string) (*dto.FreelancerApplicationsResponse, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	rows, err := s.appRepo.ListByApplicant(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	applications := make([]dto.FreelancerApplication, 0, len(rows))
	for _, row := range rows {
		applications = append(applications, dto.FreelancerApplication{
			ApplicationID: row.ApplicationID,
			Status:        row.Status,
			JobID:         row.JobID,
			Title:         row.Title,
			Description:   row.Description,
			CompanyName:   row.CompanyName,
			Location:      row.Location,
		})
	}

	return &dto.FreelancerApplicationsResponse{
		Success:      true,
		Applications: applications,
	}, nil
}
