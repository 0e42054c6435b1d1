package repository

import (
	"errors"

	"gorm.io/gorm"

	"synergysphere/internal/dto"
	"synergysphere/internal/model"
	pkgErrors "synergysphere/pkg/errors"
)

type CommentRepository interface {
	Create(comment *model.TaskComment) error
	FindByID(id string) (*model.TaskComment, error)
	FindItem(id string) (*dto.CommentItem, error)
	ListByTask(taskID string, q *dto.CommentListQuery) ([]*dto.CommentItem, int64, error)
	ParentExists(taskID, parentID string) (bool, error)
	UpdateBody(id, body string) error
	Delete(id string) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *model.TaskComment) error {
	if err := r.db.Create(comment).Error; err != nil {
		return pkgErrors.Database("创建评论失败", err)
	}
	return nil
}

func (r *commentRepository) FindByID(id string) (*model.TaskComment, error) {
	var comment model.TaskComment
	err := r.db.Where("id = ?", id).First(&comment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgErrors.ErrRecordNotFound
		}
		return nil, pkgErrors.Database("查询评论失败", err)
	}
	return &comment, nil
}

func commentSelect(db *gorm.DB) *gorm.DB {
	return db.Table("task_comments").
		Select("task_comments.id, task_comments.task_id, task_comments.author_id, " +
			"task_comments.body, task_comments.parent_comment_id, " +
			"users.full_name, users.email, users.avatar_url, " +
			"task_comments.created_at, task_comments.updated_at").
		Joins("JOIN users ON users.id = task_comments.author_id")
}

func (r *commentRepository) FindItem(id string) (*dto.CommentItem, error) {
	var item dto.CommentItem
	err := commentSelect(r.db).Where("task_comments.id = ?", id).Take(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgErrors.ErrRecordNotFound
		}
		return nil, pkgErrors.Database("查询评论失败", err)
	}
	return &item, nil
}

func (r *commentRepository) ListByTask(taskID string, q *dto.CommentListQuery) ([]*dto.CommentItem, int64, error) {
	var items []*dto.CommentItem
	var total int64

	query := r.db.Model(&model.TaskComment{}).Where("task_comments.task_id = ?", taskID)
	if q.ParentID != "" {
		query = query.Where("task_comments.parent_comment_id = ?", q.ParentID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, pkgErrors.Database("统计评论失败", err)
	}

	listQuery := commentSelect(r.db).Where("task_comments.task_id = ?", taskID)
	if q.ParentID != "" {
		listQuery = listQuery.Where("task_comments.parent_comment_id = ?", q.ParentID)
	}

	order := q.OrderClause(dto.CommentSortFields, "created_at", dto.OrderAsc)
	if err := listQuery.Order(order).
		Offset(q.GetOffset()).
		Limit(q.GetLimit()).
		Scan(&items).Error; err != nil {
		return nil, 0, pkgErrors.Database("查询评论失败", err)
	}

	return items, total, nil
}

// ParentExists 校验父评论属于同一任务
func (r *commentRepository) ParentExists(taskID, parentID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.TaskComment{}).
		Where("id = ? AND task_id = ?", parentID, taskID).
		Count(&count).Error
	if err != nil {
		return false, pkgErrors.Database("查询评论失败", err)
	}
	return count > 0, nil
}

func (r *commentRepository) UpdateBody(id, body string) error {
	if err := r.db.Model(&model.TaskComment{}).Where("id = ?", id).
		Update("body", body).Error; err != nil {
		return pkgErrors.Database("更新评论失败", err)
	}
	return nil
}

func (r *commentRepository) Delete(id string) error {
	if err := r.db.Where("id = ?", id).Delete(&model.TaskComment{}).Error; err != nil {
		return pkgErrors.Database("删除评论失败", err)
	}
	return nil
}
