package repository

import (
	"errors"

	"gorm.io/gorm"

	"synergysphere/internal/dto"
	"synergysphere/internal/model"
	pkgErrors "synergysphere/pkg/errors"
)

type MessageRepository interface {
	Create(message *model.DiscussionMessage) error
	FindByID(id string) (*model.DiscussionMessage, error)
	FindItem(id string) (*dto.MessageItem, error)
	ListByThread(threadID string, q *dto.MessageListQuery) ([]*dto.MessageItem, int64, error)
	ParentExists(threadID, parentID string) (bool, error)
	UpdateBody(id, body string) error
	Delete(id string) error
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(message *model.DiscussionMessage) error {
	if err := r.db.Create(message).Error; err != nil {
		return pkgErrors.Database("创建讨论消息失败", err)
	}
	return nil
}

func (r *messageRepository) FindByID(id string) (*model.DiscussionMessage, error) {
	var message model.DiscussionMessage
	err := r.db.Where("id = ?", id).First(&message).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgErrors.ErrRecordNotFound
		}
		return nil, pkgErrors.Database("查询讨论消息失败", err)
	}
	return &message, nil
}

func messageSelect(db *gorm.DB) *gorm.DB {
	return db.Table("discussion_messages").
		Select("discussion_messages.id, discussion_messages.thread_id, discussion_messages.author_id, " +
			"discussion_messages.body, discussion_messages.parent_message_id, " +
			"users.full_name, users.email, users.avatar_url, " +
			"discussion_messages.created_at, discussion_messages.updated_at").
		Joins("JOIN users ON users.id = discussion_messages.author_id")
}

func (r *messageRepository) FindItem(id string) (*dto.MessageItem, error) {
	var item dto.MessageItem
	err := messageSelect(r.db).Where("discussion_messages.id = ?", id).Take(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgErrors.ErrRecordNotFound
		}
		return nil, pkgErrors.Database("查询讨论消息失败", err)
	}
	return &item, nil
}

func (r *messageRepository) ListByThread(threadID string, q *dto.MessageListQuery) ([]*dto.MessageItem, int64, error) {
	var items []*dto.MessageItem
	var total int64

	query := r.db.Model(&model.DiscussionMessage{}).
		Where("discussion_messages.thread_id = ?", threadID)
	if q.ParentID != "" {
		query = query.Where("discussion_messages.parent_message_id = ?", q.ParentID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, pkgErrors.Database("统计讨论消息失败", err)
	}

	listQuery := messageSelect(r.db).Where("discussion_messages.thread_id = ?", threadID)
	if q.ParentID != "" {
		listQuery = listQuery.Where("discussion_messages.parent_message_id = ?", q.ParentID)
	}

	order := q.OrderClause(dto.MessageSortFields, "created_at", dto.OrderAsc)
	if err := listQuery.Order(order).
		Offset(q.GetOffset()).
		Limit(q.GetLimit()).
		Scan(&items).Error; err != nil {
		return nil, 0, pkgErrors.Database("查询讨论消息失败", err)
	}

	return items, total, nil
}

// ParentExists 校验父消息属于同一主题
func (r *messageRepository) ParentExists(threadID, parentID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.DiscussionMessage{}).
		Where("id = ? AND thread_id = ?", parentID, threadID).
		Count(&count).Error
	if err != nil {
		return false, pkgErrors.Database("查询讨论消息失败", err)
	}
	return count > 0, nil
}

func (r *messageRepository) UpdateBody(id, body string) error {
	if err := r.db.Model(&model.DiscussionMessage{}).Where("id = ?", id).
		Update("body", body).Error; err != nil {
		return pkgErrors.Database("更新讨论消息失败", err)
	}
	return nil
}

func (r *messageRepository) Delete(id string) error {
	if err := r.db.Where("id = ?", id).Delete(&model.DiscussionMessage{}).Error; err != nil {
		return pkgErrors.Database("删除讨论消息失败", err)
	}
	return nil
}
