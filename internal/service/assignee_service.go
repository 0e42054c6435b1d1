package service

import (
	"net/http"

	"github.com/samber/lo"

	"synergysphere/internal/dto"
	"synergysphere/internal/model"
	"synergysphere/internal/repository"
	pkgErrors "synergysphere/pkg/errors"
	"synergysphere/pkg/utils"
)

type AssigneeService interface {
	List(taskID, userID string) ([]*dto.AssigneeItem, error)
	Add(taskID, userID string, req *dto.AddAssigneesRequest) (*dto.AddAssigneesResponse, error)
	Remove(taskID, actorID, userID string) error
}

type assigneeService struct {
	assigneeRepo repository.AssigneeRepository
	memberRepo   repository.MemberRepository
	projectRepo  repository.ProjectRepository
	access       AccessService
	notify       NotificationService
}

func NewAssigneeService(
	assigneeRepo repository.AssigneeRepository,
	memberRepo repository.MemberRepository,
	projectRepo repository.ProjectRepository,
	access AccessService,
	notify NotificationService,
) AssigneeService {
	return &assigneeService{
		assigneeRepo: assigneeRepo,
		memberRepo:   memberRepo,
		projectRepo:  projectRepo,
		access:       access,
		notify:       notify,
	}
}

func (s *assigneeService) List(taskID, userID string) ([]*dto.AssigneeItem, error) {
	if _, err := s.access.ResolveTaskForView(taskID, userID); err != nil {
		return nil, err
	}
	return s.assigneeRepo.ListWithUsers(taskID)
}

// canAssign 管理者或任务创建者可指派
func (s *assigneeService) canAssign(task *model.Task, userID string) (bool, error) {
	if task.CreatedBy == userID {
		return true, nil
	}
	return s.access.CanManage(task.ProjectID, userID)
}

// Add 批量指派: 去重后逐级过滤, 汇总各环节丢弃数量
// 非成员与已指派不报错, 体现在 summary 中
func (s *assigneeService) Add(taskID, userID string, req *dto.AddAssigneesRequest) (*dto.AddAssigneesResponse, error) {
	task, err := s.access.ResolveTaskForView(taskID, userID)
	if err != nil {
		return nil, err
	}
	ok, err := s.canAssign(task, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, pkgErrors.ErrForbidden
	}

	candidates := lo.Uniq(req.AllIDs())
	if len(candidates) == 0 {
		return nil, pkgErrors.ErrBadRequest
	}

	valid := lo.Filter(candidates, func(id string, _ int) bool {
		return utils.IsUUID(id)
	})
	invalid := len(candidates) - len(valid)

	project, err := s.projectRepo.FindByID(task.ProjectID)
	if err != nil {
		return nil, err
	}
	memberIDs, err := s.memberRepo.MemberUserIDs(task.ProjectID, valid)
	if err != nil {
		return nil, err
	}
	members := lo.Filter(valid, func(id string, _ int) bool {
		return id == project.CreatedBy || lo.Contains(memberIDs, id)
	})
	notMembers := len(valid) - len(members)

	assignedIDs, err := s.assigneeRepo.AssignedUserIDs(taskID, members)
	if err != nil {
		return nil, err
	}
	toInsert, _ := lo.Difference(members, assignedIDs)

	if err := s.assigneeRepo.Insert(taskID, toInsert); err != nil {
		return nil, err
	}

	if len(toInsert) > 0 {
		s.notify.NotifyTaskAssigned(project, task, userID, toInsert)
	}

	all, err := s.assigneeRepo.ListWithUsers(taskID)
	if err != nil {
		return nil, err
	}
	added := lo.Filter(all, func(item *dto.AssigneeItem, _ int) bool {
		return lo.Contains(toInsert, item.UserID)
	})

	return &dto.AddAssigneesResponse{
		Added: added,
		Summary: dto.AssigneeSummary{
			Requested:       len(candidates),
			Invalid:         invalid,
			NotMembers:      notMembers,
			AlreadyAssigned: len(assignedIDs),
			Inserted:        len(toInsert),
		},
	}, nil
}

// Remove 管理者, 任务创建者或本人可移除
func (s *assigneeService) Remove(taskID, actorID, userID string) error {
	task, err := s.access.ResolveTaskForView(taskID, actorID)
	if err != nil {
		return err
	}
	if actorID != userID {
		ok, err := s.canAssign(task, actorID)
		if err != nil {
			return err
		}
		if !ok {
			return pkgErrors.ErrForbidden
		}
	}

	affected, err := s.assigneeRepo.Delete(taskID, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return pkgErrors.New(http.StatusNotFound, "Assignee not found")
	}
	return nil
}
