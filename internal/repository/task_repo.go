package repository

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"synergysphere/internal/dto"
	"synergysphere/internal/model"
	pkgErrors "synergysphere/pkg/errors"
)

type TaskRepository interface {
	CreateWithAssignees(task *model.Task, assigneeIDs []string) error
	FindByID(id string) (*model.Task, error)
	ListByProject(projectID string, q *dto.TaskListQuery) ([]*model.Task, int64, error)
	ListAssigned(userID string, q *dto.MyTasksQuery) ([]*dto.MyTaskItem, int64, error)
	UpdateFields(id string, fields map[string]interface{}) error
	Delete(id string) error
}

type taskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

// CreateWithAssignees 创建任务并写入初始受派人, 同一事务内完成
func (r *taskRepository) CreateWithAssignees(task *model.Task, assigneeIDs []string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(task).Error; err != nil {
			return err
		}
		if len(assigneeIDs) == 0 {
			return nil
		}
		rows := make([]*model.TaskAssignee, 0, len(assigneeIDs))
		for _, uid := range assigneeIDs {
			rows = append(rows, &model.TaskAssignee{TaskID: task.ID, UserID: uid})
		}
		return tx.Create(rows).Error
	})
	if err != nil {
		return pkgErrors.Database("创建任务失败", err)
	}
	return nil
}

func (r *taskRepository) FindByID(id string) (*model.Task, error) {
	var task model.Task
	err := r.db.Where("id = ?", id).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgErrors.ErrRecordNotFound
		}
		return nil, pkgErrors.Database("查询任务失败", err)
	}
	return &task, nil
}

func applyTaskFilters(query *gorm.DB, q *dto.TaskListQuery) *gorm.DB {
	if q.Q != "" {
		like := "%" + strings.ToLower(q.Q) + "%"
		query = query.Where("LOWER(tasks.title) LIKE ? OR LOWER(tasks.description) LIKE ?", like, like)
	}
	if q.Status != "" {
		query = query.Where("tasks.status = ?", q.Status)
	}
	switch q.IsArchived {
	case "true":
		query = query.Where("tasks.is_archived = ?", true)
	case "false", "":
		query = query.Where("tasks.is_archived = ?", false)
	}
	if t, err := time.Parse("2006-01-02", q.DueFrom); err == nil {
		query = query.Where("tasks.due_date >= ?", t)
	}
	if t, err := time.Parse("2006-01-02", q.DueTo); err == nil {
		query = query.Where("tasks.due_date <= ?", t)
	}
	return query
}

func (r *taskRepository) ListByProject(projectID string, q *dto.TaskListQuery) ([]*model.Task, int64, error) {
	var tasks []*model.Task
	var total int64

	query := r.db.Model(&model.Task{}).Where("tasks.project_id = ?", projectID)
	query = applyTaskFilters(query, q)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, pkgErrors.Database("统计任务失败", err)
	}

	order := q.OrderClause(dto.TaskSortFields, "created_at", dto.OrderDesc)
	if err := query.Order(order).
		Offset(q.GetOffset()).
		Limit(q.GetLimit()).
		Find(&tasks).Error; err != nil {
		return nil, 0, pkgErrors.Database("查询任务失败", err)
	}

	return tasks, total, nil
}

// ListAssigned 跨项目查询指派给当前用户的任务
func (r *taskRepository) ListAssigned(userID string, q *dto.MyTasksQuery) ([]*dto.MyTaskItem, int64, error) {
	var items []*dto.MyTaskItem
	var total int64

	query := r.db.Table("tasks").
		Joins("JOIN task_assignees ON task_assignees.task_id = tasks.id").
		Joins("JOIN projects ON projects.id = tasks.project_id").
		Where("task_assignees.user_id = ?", userID)
	query = applyTaskFilters(query, &q.TaskListQuery)
	if q.ProjectID != "" {
		query = query.Where("tasks.project_id = ?", q.ProjectID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, pkgErrors.Database("统计任务失败", err)
	}

	order := q.OrderClause(dto.TaskSortFields, "due_date", dto.OrderAsc)
	if err := query.
		Select("tasks.id, tasks.project_id, projects.name AS project_name, tasks.title, "+
			"tasks.description, tasks.status, tasks.due_date, tasks.is_archived, tasks.created_by, "+
			"task_assignees.assigned_at, tasks.created_at, tasks.updated_at").
		Order(order).
		Offset(q.GetOffset()).
		Limit(q.GetLimit()).
		Scan(&items).Error; err != nil {
		return nil, 0, pkgErrors.Database("查询任务失败", err)
	}

	return items, total, nil
}

func (r *taskRepository) UpdateFields(id string, fields map[string]interface{}) error {
	if err := r.db.Model(&model.Task{}).Where("id = ?", id).
		Updates(fields).Error; err != nil {
		return pkgErrors.Database("更新任务失败", err)
	}
	return nil
}

func (r *taskRepository) Delete(id string) error {
	if err := r.db.Where("id = ?", id).Delete(&model.Task{}).Error; err != nil {
		return pkgErrors.Database("删除任务失败", err)
	}
	return nil
}
