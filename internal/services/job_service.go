package services

import (
	"workaholic_backend/internal/models"
	"workaholic_backend/internal/repositories"
	"workaholic_backend/internal/services/dto"
	"workaholic_backend/pkg/apperrors"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

type JobService interface {
	Create(req *dto.CreateJobRequest) error
	List(page, limit int) (*dto.JobListResponse, error)
	Update(jobID uint, req *dto.UpdateJobRequest) error
	// Delete removes the posting and all of its applications.
	Delete(jobID uint) error
}

type JobServiceImpl struct {
	jobRepo  repositories.JobRepository
	userRepo repositories.UserRepository
}

func NewJobService(jobRepo repositories.JobRepository, userRepo repositories.UserRepository) JobService {
	return &JobServiceImpl{
		jobRepo:  jobRepo,
		userRepo: userRepo,
	}
}

// pageCount is ceil(total/limit) for a positive limit.
func pageCount(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

func normalizePagination(page, limit int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	return page, limit
}

func (s *JobServiceImpl) Create(req *dto.CreateJobRequest) error {
	user, err := s.userRepo.FindByEmail(req.UserEmail)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	job := &models.JobPost{
		CompanyID:   user.ID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
	}
	if err := s.jobRepo.Create(job); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *JobServiceImpl) List(page, limit int) (*dto.JobListResponse, error) {
	page, limit = normalizePagination(page, limit)
	offset := (page - 1) * limit

	total, err := s.jobRepo.Count()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	rows, err := s.jobRepo.List(limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	jobs := make([]dto.JobRow, 0, len(rows))
	for _, row := range rows {
		jobs = append(jobs, dto.JobRow{
			ID:          row.ID,
			Title:       row.Title,
			Description: row.Description,
			Location:    row.Location,
			CompanyID:   row.CompanyID,
			CompanyName: row.CompanyName,
		})
	}

	return &dto.JobListResponse{
		CurrentPage: page,
		TotalPages:  pageCount(total, limit),
		TotalJobs:   total,
		Limit:       limit,
		Jobs:        jobs,
	}, nil
}

func (s *JobServiceImpl) Update(jobID uint, req *dto.UpdateJobRequest) error {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrJobNotFound
		}
		return apperrors.InternalError(err)
	}

	job.Title = req.Title
	job.Description = req.Description
	job.Location = req.Location

	if err := s.jobRepo.Update(job); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *JobServiceImpl) Delete(jobID uint) error {
	if _, err := s.jobRepo.FindByID(jobID); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrJobNotFound
		}
		return apperrors.InternalError(err)
	}

	if err := s.jobRepo.DeleteCascade(jobID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
