package dto

import (
	"time"

	"gorm.io/datatypes"
)

// NotificationListQuery 通知列表查询
type NotificationListQuery struct {
	PageQuery
	IsRead    string `form:"is_read"`
	Type      string `form:"type"`
	ProjectID string `form:"project_id"`
	TaskID    string `form:"task_id"`
}

// MarkAllReadRequest 批量已读过滤条件, 全空表示全部
type MarkAllReadRequest struct {
	Type      string `json:"type"`
	ProjectID string `json:"projectId" binding:"omitempty,uuid"`
	TaskID    string `json:"taskId" binding:"omitempty,uuid"`
}

// MarkAllReadResponse 批量已读响应
type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}

// NotificationSortFields 通知排序白名单
var NotificationSortFields = map[string]string{
	"created_at": "notifications.created_at",
}

// NotificationItem 通知列表项, 附操作者资料
type NotificationItem struct {
	ID          string         `json:"id"`
	Type        string         `json:"type"`
	Payload     datatypes.JSON `json:"payload"`
	ProjectID   *string        `json:"project_id"`
	TaskID      *string        `json:"task_id"`
	ActorID     *string        `json:"actor_id"`
	ActorName   *string        `json:"actor_name"`
	ActorEmail  *string        `json:"actor_email"`
	ActorAvatar *string        `json:"actor_avatar"`
	IsRead      bool           `json:"is_read"`
	CreatedAt   time.Time      `json:"created_at"`
}
