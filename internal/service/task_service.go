package service

import (
	"time"

	"github.com/samber/lo"

	"synergysphere/internal/dto"
	"synergysphere/internal/model"
	"synergysphere/internal/repository"
	"synergysphere/pkg/constants"
	pkgErrors "synergysphere/pkg/errors"
)

type TaskService interface {
	Create(projectID, userID string, req *dto.CreateTaskRequest) (*model.Task, error)
	ListByProject(projectID, userID string, q *dto.TaskListQuery) (*dto.PageResponse, error)
	GetByID(taskID, userID string) (*model.Task, error)
	Update(taskID, userID string, req *dto.UpdateTaskRequest) (*model.Task, error)
	Delete(taskID, userID string) error
	ListMine(userID string, q *dto.MyTasksQuery) (*dto.PageResponse, error)
}

type taskService struct {
	taskRepo   repository.TaskRepository
	memberRepo repository.MemberRepository
	access     AccessService
	notify     NotificationService
}

func NewTaskService(
	taskRepo repository.TaskRepository,
	memberRepo repository.MemberRepository,
	access AccessService,
	notify NotificationService,
) TaskService {
	return &taskService{
		taskRepo:   taskRepo,
		memberRepo: memberRepo,
		access:     access,
		notify:     notify,
	}
}

func parseDueDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}

// Create 任务与初始受派人同一事务写入
// 受派人限定为项目成员或项目创建者, 集合内去重
func (s *taskService) Create(projectID, userID string, req *dto.CreateTaskRequest) (*model.Task, error) {
	project, err := s.access.ResolveProjectForView(projectID, userID)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = constants.TaskStatusTodo
	}
	task := &model.Task{
		ProjectID:   projectID,
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		DueDate:     parseDueDate(req.DueDate),
		CreatedBy:   userID,
	}

	assigneeIDs := lo.Uniq(req.AssigneeIDs)
	if len(assigneeIDs) > 0 {
		memberIDs, err := s.memberRepo.MemberUserIDs(projectID, assigneeIDs)
		if err != nil {
			return nil, err
		}
		assigneeIDs = lo.Filter(assigneeIDs, func(id string, _ int) bool {
			return id == project.CreatedBy || lo.Contains(memberIDs, id)
		})
	}

	if err := s.taskRepo.CreateWithAssignees(task, assigneeIDs); err != nil {
		return nil, err
	}

	if len(assigneeIDs) > 0 {
		s.notify.NotifyTaskAssigned(project, task, userID, assigneeIDs)
	}
	return task, nil
}

func (s *taskService) ListByProject(projectID, userID string, q *dto.TaskListQuery) (*dto.PageResponse, error) {
	if _, err := s.access.ResolveProjectForView(projectID, userID); err != nil {
		return nil, err
	}
	tasks, total, err := s.taskRepo.ListByProject(projectID, q)
	if err != nil {
		return nil, err
	}
	return dto.NewPageResponse(tasks, total, q.GetPage(), q.GetLimit()), nil
}

func (s *taskService) GetByID(taskID, userID string) (*model.Task, error) {
	return s.access.ResolveTaskForView(taskID, userID)
}

// Update 任何可见成员可修改任务
func (s *taskService) Update(taskID, userID string, req *dto.UpdateTaskRequest) (*model.Task, error) {
	task, err := s.access.ResolveTaskForView(taskID, userID)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.DueDate != nil {
		fields["due_date"] = parseDueDate(req.DueDate)
	}
	if req.IsArchived != nil {
		fields["is_archived"] = *req.IsArchived
	}
	if len(fields) == 0 {
		return task, nil
	}

	if err := s.taskRepo.UpdateFields(taskID, fields); err != nil {
		return nil, err
	}
	return s.taskRepo.FindByID(taskID)
}

// Delete 管理者或任务创建者可删除
func (s *taskService) Delete(taskID, userID string) error {
	task, err := s.access.ResolveTaskForView(taskID, userID)
	if err != nil {
		return err
	}
	if task.CreatedBy != userID {
		ok, err := s.access.CanManage(task.ProjectID, userID)
		if err != nil {
			return err
		}
		if !ok {
			return pkgErrors.ErrForbidden
		}
	}
	return s.taskRepo.Delete(taskID)
}

func (s *taskService) ListMine(userID string, q *dto.MyTasksQuery) (*dto.PageResponse, error) {
	items, total, err := s.taskRepo.ListAssigned(userID, q)
	if err != nil {
		return nil, err
	}
	return dto.NewPageResponse(items, total, q.GetPage(), q.GetLimit()), nil
}
