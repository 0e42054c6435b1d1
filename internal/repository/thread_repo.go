package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"synergysphere/internal/dto"
	"synergysphere/internal/model"
	pkgErrors "synergysphere/pkg/errors"
)

type ThreadRepository interface {
	Create(thread *model.DiscussionThread) error
	FindByID(id string) (*model.DiscussionThread, error)
	FindItem(id string) (*dto.ThreadItem, error)
	ListByProject(projectID string, q *dto.ThreadListQuery) ([]*dto.ThreadItem, int64, error)
	UpdateTitle(id, title string) error
	Delete(id string) error
}

type threadRepository struct {
	db *gorm.DB
}

func NewThreadRepository(db *gorm.DB) ThreadRepository {
	return &threadRepository{db: db}
}

func (r *threadRepository) Create(thread *model.DiscussionThread) error {
	if err := r.db.Create(thread).Error; err != nil {
		return pkgErrors.Database("创建讨论主题失败", err)
	}
	return nil
}

func (r *threadRepository) FindByID(id string) (*model.DiscussionThread, error) {
	var thread model.DiscussionThread
	err := r.db.Where("id = ?", id).First(&thread).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgErrors.ErrRecordNotFound
		}
		return nil, pkgErrors.Database("查询讨论主题失败", err)
	}
	return &thread, nil
}

func threadSelect(db *gorm.DB) *gorm.DB {
	return db.Table("discussion_threads").
		Select("discussion_threads.id, discussion_threads.project_id, discussion_threads.title, " +
			"discussion_threads.created_by, users.full_name, users.email, users.avatar_url, " +
			"(SELECT COUNT(*) FROM discussion_messages WHERE discussion_messages.thread_id = discussion_threads.id) AS message_count, " +
			"discussion_threads.created_at, discussion_threads.updated_at").
		Joins("JOIN users ON users.id = discussion_threads.created_by")
}

func (r *threadRepository) FindItem(id string) (*dto.ThreadItem, error) {
	var item dto.ThreadItem
	err := threadSelect(r.db).Where("discussion_threads.id = ?", id).Take(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgErrors.ErrRecordNotFound
		}
		return nil, pkgErrors.Database("查询讨论主题失败", err)
	}
	return &item, nil
}

func (r *threadRepository) ListByProject(projectID string, q *dto.ThreadListQuery) ([]*dto.ThreadItem, int64, error) {
	var items []*dto.ThreadItem
	var total int64

	query := r.db.Model(&model.DiscussionThread{}).
		Where("discussion_threads.project_id = ?", projectID)
	if q.Q != "" {
		like := "%" + strings.ToLower(q.Q) + "%"
		query = query.Where("LOWER(discussion_threads.title) LIKE ?", like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, pkgErrors.Database("统计讨论主题失败", err)
	}

	listQuery := threadSelect(r.db).Where("discussion_threads.project_id = ?", projectID)
	if q.Q != "" {
		like := "%" + strings.ToLower(q.Q) + "%"
		listQuery = listQuery.Where("LOWER(discussion_threads.title) LIKE ?", like)
	}

	order := q.OrderClause(dto.ThreadSortFields, "updated_at", dto.OrderDesc)
	if err := listQuery.Order(order).
		Offset(q.GetOffset()).
		Limit(q.GetLimit()).
		Scan(&items).Error; err != nil {
		return nil, 0, pkgErrors.Database("查询讨论主题失败", err)
	}

	return items, total, nil
}

func (r *threadRepository) UpdateTitle(id, title string) error {
	if err := r.db.Model(&model.DiscussionThread{}).Where("id = ?", id).
		Update("title", title).Error; err != nil {
		return pkgErrors.Database("更新讨论主题失败", err)
	}
	return nil
}

func (r *threadRepository) Delete(id string) error {
	if err := r.db.Where("id = ?", id).Delete(&model.DiscussionThread{}).Error; err != nil {
		return pkgErrors.Database("删除讨论主题失败", err)
	}
	return nil
}
