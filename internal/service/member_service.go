package service

import (
	"errors"

	"synergysphere/internal/dto"
	"synergysphere/internal/model"
	"synergysphere/internal/repository"
	"synergysphere/pkg/constants"
	pkgErrors "synergysphere/pkg/errors"
)

type MemberService interface {
	Add(projectID, actorID string, req *dto.AddMemberRequest) (*dto.MemberItem, error)
	List(projectID, actorID string) ([]*dto.MemberItem, error)
	Get(projectID, actorID, userID string) (*dto.MemberItem, error)
	UpdateRole(projectID, actorID, userID string, req *dto.UpdateMemberRequest) (*dto.MemberItem, error)
	Remove(projectID, actorID, userID string) error
}

type memberService struct {
	memberRepo repository.MemberRepository
	userRepo   repository.UserRepository
	access     AccessService
	notify     NotificationService
}

func NewMemberService(
	memberRepo repository.MemberRepository,
	userRepo repository.UserRepository,
	access AccessService,
	notify NotificationService,
) MemberService {
	return &memberService{
		memberRepo: memberRepo,
		userRepo:   userRepo,
		access:     access,
		notify:     notify,
	}
}

// Add 重复添加按更新角色处理, 保持幂等
func (s *memberService) Add(projectID, actorID string, req *dto.AddMemberRequest) (*dto.MemberItem, error) {
	project, err := s.access.ResolveProjectForManage(projectID, actorID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(req.UserID)
	if err != nil {
		if errors.Is(err, pkgErrors.ErrRecordNotFound) {
			return nil, pkgErrors.ErrUserNotFound
		}
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = constants.RoleMember
	}
	member := &model.ProjectMember{
		ProjectID: projectID,
		UserID:    user.ID,
		Role:      role,
	}
	if err := s.memberRepo.Upsert(member); err != nil {
		return nil, err
	}

	s.notify.NotifyMemberAdded(project, actorID, user.ID, role)

	return s.memberRepo.FindItem(projectID, user.ID)
}

func (s *memberService) List(projectID, actorID string) ([]*dto.MemberItem, error) {
	if _, err := s.access.ResolveProjectForView(projectID, actorID); err != nil {
		return nil, err
	}
	return s.memberRepo.ListWithUsers(projectID)
}

func (s *memberService) Get(projectID, actorID, userID string) (*dto.MemberItem, error) {
	if _, err := s.access.ResolveProjectForView(projectID, actorID); err != nil {
		return nil, err
	}
	item, err := s.memberRepo.FindItem(projectID, userID)
	if err != nil {
		if errors.Is(err, pkgErrors.ErrRecordNotFound) {
			return nil, pkgErrors.ErrMemberNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *memberService) UpdateRole(projectID, actorID, userID string, req *dto.UpdateMemberRequest) (*dto.MemberItem, error) {
	if _, err := s.access.ResolveProjectForManage(projectID, actorID); err != nil {
		return nil, err
	}

	affected, err := s.memberRepo.UpdateRole(projectID, userID, req.Role)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, pkgErrors.ErrMemberNotFound
	}
	return s.memberRepo.FindItem(projectID, userID)
}

// Remove 管理者可移除任何成员, 成员可自行退出
func (s *memberService) Remove(projectID, actorID, userID string) error {
	if actorID != userID {
		if _, err := s.access.ResolveProjectForManage(projectID, actorID); err != nil {
			return err
		}
	} else {
		if _, err := s.access.ResolveProjectForView(projectID, actorID); err != nil {
			return err
		}
	}

	affected, err := s.memberRepo.Delete(projectID, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return pkgErrors.ErrMemberNotFound
	}
	return nil
}
