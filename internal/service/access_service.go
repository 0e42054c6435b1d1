package service

import (
	"errors"

	"github.com/samber/lo"

	"synergysphere/internal/model"
	"synergysphere/internal/repository"
	"synergysphere/pkg/constants"
	pkgErrors "synergysphere/pkg/errors"
)

// AccessService 集中处理项目可见性与管理权限判定
// 统一策略: 不可见一律返回 404, 可见但无权操作返回 403
type AccessService interface {
	CanView(projectID, userID string) (bool, error)
	CanManage(projectID, userID string) (bool, error)
	ResolveProjectForView(projectID, userID string) (*model.Project, error)
	ResolveProjectForManage(projectID, userID string) (*model.Project, error)
	ResolveTaskForView(taskID, userID string) (*model.Task, error)
	ResolveThreadForView(threadID, userID string) (*model.DiscussionThread, error)
}

type accessService struct {
	projectRepo repository.ProjectRepository
	memberRepo  repository.MemberRepository
	taskRepo    repository.TaskRepository
	threadRepo  repository.ThreadRepository
}

func NewAccessService(
	projectRepo repository.ProjectRepository,
	memberRepo repository.MemberRepository,
	taskRepo repository.TaskRepository,
	threadRepo repository.ThreadRepository,
) AccessService {
	return &accessService{
		projectRepo: projectRepo,
		memberRepo:  memberRepo,
		taskRepo:    taskRepo,
		threadRepo:  threadRepo,
	}
}

// CanView 创建者或任意成员可见
func (s *accessService) CanView(projectID, userID string) (bool, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, pkgErrors.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	if project.CreatedBy == userID {
		return true, nil
	}
	_, err = s.memberRepo.Find(projectID, userID)
	if err != nil {
		if errors.Is(err, pkgErrors.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// CanManage 创建者或角色为 owner/admin 的成员
func (s *accessService) CanManage(projectID, userID string) (bool, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, pkgErrors.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	if project.CreatedBy == userID {
		return true, nil
	}
	member, err := s.memberRepo.Find(projectID, userID)
	if err != nil {
		if errors.Is(err, pkgErrors.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return lo.Contains([]string{constants.RoleOwner, constants.RoleAdmin}, member.Role), nil
}

func (s *accessService) ResolveProjectForView(projectID, userID string) (*model.Project, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, pkgErrors.ErrRecordNotFound) {
			return nil, pkgErrors.ErrProjectNotFound
		}
		return nil, err
	}
	ok, err := s.CanView(projectID, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, pkgErrors.ErrProjectNotFound
	}
	return project, nil
}

func (s *accessService) ResolveProjectForManage(projectID, userID string) (*model.Project, error) {
	project, err := s.ResolveProjectForView(projectID, userID)
	if err != nil {
		return nil, err
	}
	ok, err := s.CanManage(projectID, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, pkgErrors.ErrForbidden
	}
	return project, nil
}

// ResolveTaskForView 加载任务并校验所属项目的可见性
func (s *accessService) ResolveTaskForView(taskID, userID string) (*model.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, pkgErrors.ErrRecordNotFound) {
			return nil, pkgErrors.ErrTaskNotFound
		}
		return nil, err
	}
	ok, err := s.CanView(task.ProjectID, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, pkgErrors.ErrTaskNotFound
	}
	return task, nil
}

// ResolveThreadForView 加载讨论主题并校验所属项目的可见性
func (s *accessService) ResolveThreadForView(threadID, userID string) (*model.DiscussionThread, error) {
	thread, err := s.threadRepo.FindByID(threadID)
	if err != nil {
		if errors.Is(err, pkgErrors.ErrRecordNotFound) {
			return nil, pkgErrors.ErrThreadNotFound
		}
		return nil, err
	}
	ok, err := s.CanView(thread.ProjectID, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, pkgErrors.ErrThreadNotFound
	}
	return thread, nil
}
