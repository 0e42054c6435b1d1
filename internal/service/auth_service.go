package service

import (
	"errors"
	"net/http"
	"strings"

	"synergysphere/internal/dto"
	"synergysphere/internal/model"
	"synergysphere/internal/pkg/crypto"
	"synergysphere/internal/pkg/jwt"
	"synergysphere/internal/repository"
	pkgErrors "synergysphere/pkg/errors"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
	Me(userID string) (*dto.UserResponse, error)
	ChangePassword(userID string, req *dto.ChangePasswordRequest) error
}

type authService struct {
	userRepo repository.UserRepository
	jwtMgr   *jwt.Manager
}

func NewAuthService(userRepo repository.UserRepository, jwtMgr *jwt.Manager) AuthService {
	return &authService{
		userRepo: userRepo,
		jwtMgr:   jwtMgr,
	}
}

// Register 邮箱统一转小写存储, 重复注册返回 409
func (s *authService) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.userRepo.FindByEmail(email)
	if err != nil && !errors.Is(err, pkgErrors.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, pkgErrors.ErrEmailTaken
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return nil, pkgErrors.Wrap(http.StatusInternalServerError, "Failed to hash password", err)
	}

	user := &model.User{
		Email:        email,
		PasswordHash: hash,
		FullName:     strings.TrimSpace(req.FullName),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	token, err := s.jwtMgr.GenerateToken(user.ID, user.Email, user.FullName)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{User: dto.NewUserResponse(user), Token: token}, nil
}

// Login 凭证错误与用户不存在返回同一错误, 避免账号枚举
func (s *authService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, pkgErrors.ErrRecordNotFound) {
			return nil, pkgErrors.ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, pkgErrors.ErrUserDisabled
	}
	if !crypto.CheckPassword(req.Password, user.PasswordHash) {
		return nil, pkgErrors.ErrInvalidCredentials
	}

	token, err := s.jwtMgr.GenerateToken(user.ID, user.Email, user.FullName)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{User: dto.NewUserResponse(user), Token: token}, nil
}

func (s *authService) Me(userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, pkgErrors.ErrRecordNotFound) {
			return nil, pkgErrors.ErrUserNotFound
		}
		return nil, err
	}
	return dto.NewUserResponse(user), nil
}

func (s *authService) ChangePassword(userID string, req *dto.ChangePasswordRequest) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, pkgErrors.ErrRecordNotFound) {
			return pkgErrors.ErrUserNotFound
		}
		return err
	}
	if !crypto.CheckPassword(req.CurrentPassword, user.PasswordHash) {
		return pkgErrors.New(http.StatusBadRequest, "Current password is incorrect")
	}

	hash, err := crypto.HashPassword(req.NewPassword)
	if err != nil {
		return pkgErrors.Wrap(http.StatusInternalServerError, "Failed to hash password", err)
	}
	return s.userRepo.UpdatePassword(userID, hash)
}
