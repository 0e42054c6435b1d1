package repository

import (
	"time"

	"gorm.io/gorm"

	"synergysphere/internal/dto"
	"synergysphere/internal/model"
	pkgErrors "synergysphere/pkg/errors"
)

type NotificationRepository interface {
	Create(notification *model.Notification) error
	CreateBatch(notifications []*model.Notification) error
	List(userID string, q *dto.NotificationListQuery) ([]*dto.NotificationItem, int64, error)
	MarkRead(id, userID string) (int64, error)
	MarkAllRead(userID string, req *dto.MarkAllReadRequest) (int64, error)
	DeleteReadBefore(cutoff time.Time) (int64, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(notification *model.Notification) error {
	if err := r.db.Create(notification).Error; err != nil {
		return pkgErrors.Database("创建通知失败", err)
	}
	return nil
}

func (r *notificationRepository) CreateBatch(notifications []*model.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	if err := r.db.Create(notifications).Error; err != nil {
		return pkgErrors.Database("创建通知失败", err)
	}
	return nil
}

func applyNotificationFilters(query *gorm.DB, q *dto.NotificationListQuery) *gorm.DB {
	switch q.IsRead {
	case "true":
		query = query.Where("notifications.is_read = ?", true)
	case "false":
		query = query.Where("notifications.is_read = ?", false)
	}
	if q.Type != "" {
		query = query.Where("notifications.type = ?", q.Type)
	}
	if q.ProjectID != "" {
		query = query.Where("notifications.project_id = ?", q.ProjectID)
	}
	if q.TaskID != "" {
		query = query.Where("notifications.task_id = ?", q.TaskID)
	}
	return query
}

func (r *notificationRepository) List(userID string, q *dto.NotificationListQuery) ([]*dto.NotificationItem, int64, error) {
	var items []*dto.NotificationItem
	var total int64

	query := r.db.Model(&model.Notification{}).
		Where("notifications.user_id = ?", userID)
	query = applyNotificationFilters(query, q)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, pkgErrors.Database("统计通知失败", err)
	}

	listQuery := r.db.Table("notifications").
		Select("notifications.id, notifications.type, notifications.payload, "+
			"notifications.project_id, notifications.task_id, notifications.actor_id, "+
			"users.full_name AS actor_name, users.email AS actor_email, users.avatar_url AS actor_avatar, "+
			"notifications.is_read, notifications.created_at").
		Joins("LEFT JOIN users ON users.id = notifications.actor_id").
		Where("notifications.user_id = ?", userID)
	listQuery = applyNotificationFilters(listQuery, q)

	order := q.OrderClause(dto.NotificationSortFields, "created_at", dto.OrderDesc)
	if err := listQuery.Order(order).
		Offset(q.GetOffset()).
		Limit(q.GetLimit()).
		Scan(&items).Error; err != nil {
		return nil, 0, pkgErrors.Database("查询通知失败", err)
	}

	return items, total, nil
}

func (r *notificationRepository) MarkRead(id, userID string) (int64, error) {
	res := r.db.Model(&model.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	if res.Error != nil {
		return 0, pkgErrors.Database("更新通知失败", res.Error)
	}
	return res.RowsAffected, nil
}

// MarkAllRead 按过滤条件批量置为已读, 仅影响未读行
func (r *notificationRepository) MarkAllRead(userID string, req *dto.MarkAllReadRequest) (int64, error) {
	query := r.db.Model(&model.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false)
	if req.Type != "" {
		query = query.Where("type = ?", req.Type)
	}
	if req.ProjectID != "" {
		query = query.Where("project_id = ?", req.ProjectID)
	}
	if req.TaskID != "" {
		query = query.Where("task_id = ?", req.TaskID)
	}

	res := query.Update("is_read", true)
	if res.Error != nil {
		return 0, pkgErrors.Database("更新通知失败", res.Error)
	}
	return res.RowsAffected, nil
}

// DeleteReadBefore 清理早于截止时间的已读通知, 由定时任务调用
func (r *notificationRepository) DeleteReadBefore(cutoff time.Time) (int64, error) {
	res := r.db.Where("is_read = ? AND created_at < ?", true, cutoff).
		Delete(&model.Notification{})
	if res.Error != nil {
		return 0, pkgErrors.Database("清理通知失败", res.Error)
	}
	return res.RowsAffected, nil
}
