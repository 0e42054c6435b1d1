package service

import (
	"errors"

	"github.com/samber/lo"

	"synergysphere/internal/dto"
	"synergysphere/internal/model"
	"synergysphere/internal/repository"
	pkgErrors "synergysphere/pkg/errors"
)

type UserService interface {
	List(q *dto.UserListQuery) (*dto.PageResponse, error)
	GetByID(id string) (*dto.UserResponse, error)
	UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) List(q *dto.UserListQuery) (*dto.PageResponse, error) {
	users, total, err := s.userRepo.List(q)
	if err != nil {
		return nil, err
	}
	items := lo.Map(users, func(u *model.User, _ int) *dto.UserResponse {
		return dto.NewUserResponse(u)
	})
	return dto.NewPageResponse(items, total, q.GetPage(), q.GetLimit()), nil
}

func (s *userService) GetByID(id string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, pkgErrors.ErrRecordNotFound) {
			return nil, pkgErrors.ErrUserNotFound
		}
		return nil, err
	}
	return dto.NewUserResponse(user), nil
}

func (s *userService) UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, pkgErrors.ErrRecordNotFound) {
			return nil, pkgErrors.ErrUserNotFound
		}
		return nil, err
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.AvatarURL != nil {
		user.AvatarURL = req.AvatarURL
	}
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return dto.NewUserResponse(user), nil
}
