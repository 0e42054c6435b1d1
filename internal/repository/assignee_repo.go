package repository

import (
	"gorm.io/gorm"

	"synergysphere/internal/dto"
	"synergysphere/internal/model"
	pkgErrors "synergysphere/pkg/errors"
)

type AssigneeRepository interface {
	ListWithUsers(taskID string) ([]*dto.AssigneeItem, error)
	AssignedUserIDs(taskID string, candidates []string) ([]string, error)
	Insert(taskID string, userIDs []string) error
	Delete(taskID, userID string) (int64, error)
}

type assigneeRepository struct {
	db *gorm.DB
}

func NewAssigneeRepository(db *gorm.DB) AssigneeRepository {
	return &assigneeRepository{db: db}
}

func (r *assigneeRepository) ListWithUsers(taskID string) ([]*dto.AssigneeItem, error) {
	var items []*dto.AssigneeItem
	err := r.db.Table("task_assignees").
		Select("task_assignees.user_id, task_assignees.assigned_at, "+
			"users.full_name, users.email, users.avatar_url").
		Joins("JOIN users ON users.id = task_assignees.user_id").
		Where("task_assignees.task_id = ?", taskID).
		Order("task_assignees.assigned_at ASC").
		Scan(&items).Error
	if err != nil {
		return nil, pkgErrors.Database("查询任务受派人失败", err)
	}
	return items, nil
}

// AssignedUserIDs 过滤出候选集中已在任务上的用户 ID
func (r *assigneeRepository) AssignedUserIDs(taskID string, candidates []string) ([]string, error) {
	var ids []string
	if len(candidates) == 0 {
		return ids, nil
	}
	err := r.db.Model(&model.TaskAssignee{}).
		Where("task_id = ? AND user_id IN ?", taskID, candidates).
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, pkgErrors.Database("查询任务受派人失败", err)
	}
	return ids, nil
}

func (r *assigneeRepository) Insert(taskID string, userIDs []string) error {
	if len(userIDs) == 0 {
		return nil
	}
	rows := make([]*model.TaskAssignee, 0, len(userIDs))
	for _, uid := range userIDs {
		rows = append(rows, &model.TaskAssignee{TaskID: taskID, UserID: uid})
	}
	if err := r.db.Create(rows).Error; err != nil {
		return pkgErrors.Database("指派任务失败", err)
	}
	return nil
}

func (r *assigneeRepository) Delete(taskID, userID string) (int64, error) {
	res := r.db.Where("task_id = ? AND user_id = ?", taskID, userID).
		Delete(&model.TaskAssignee{})
	if res.Error != nil {
		return 0, pkgErrors.Database("移除任务受派人失败", res.Error)
	}
	return res.RowsAffected, nil
}
