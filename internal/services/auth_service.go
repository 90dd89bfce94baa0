package services

import (
	"strings"

	"workaholic_backend/internal/auth"
	"workaholic_backend/internal/logger"
	"workaholic_backend/internal/models"
	"workaholic_backend/internal/repositories"
	"workaholic_backend/internal/services/dto"
	"workaholic_backend/pkg/apperrors"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
	profiles ProfileService
}

func NewAuthService(userRepo repositories.UserRepository, profiles ProfileService) AuthService {
	return &AuthServiceImpl{
		userRepo: userRepo,
		profiles: profiles,
	}
}

func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	email := strings.TrimSpace(req.UserEmail)
	password := strings.TrimSpace(req.Password)
	if email == "" || password == "" {
		return nil, apperrors.NewBadRequestError("user_email and password required")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.userRepo.Register(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrUserAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	token, err := auth.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	snapshot, err := s.profiles.Snapshot(user.ID)
	if err != nil {
		return nil, err
	}

	logger.Info("user registered", "user_id", user.ID)

	return &dto.AuthResponse{
		Success:     true,
		Message:     "User registered successfully",
		Token:       token,
		UserEmail:   user.Email,
		UserDetails: snapshot,
		IsNewUser:   true,
		Role:        nil,
	}, nil
}

// Login verifies the credentials and returns a fresh token with the
// profile snapshot. Unknown email and wrong password are deliberately
// distinct errors; the client messaging depends on the split.
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	email := strings.TrimSpace(req.UserEmail)
	password := strings.TrimSpace(req.Password)
	if email == "" || password == "" {
		return nil, apperrors.NewBadRequestError("user_email and password required")
	}

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotRegistered
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrIncorrectPassword
	}

	token, err := auth.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	snapshot, err := s.profiles.Snapshot(user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Success:     true,
		Message:     "Login successful",
		Token:       token,
		UserEmail:   user.Email,
		UserDetails: snapshot,
		IsNewUser:   !snapshot.DetailsCompleted,
		Role:        snapshot.Role,
	}, nil
}
