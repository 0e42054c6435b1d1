package dto

import "time"

// CreateThreadRequest 创建讨论主题请求
type CreateThreadRequest struct {
	Title string `json:"title" binding:"required,max=200"`
}

// UpdateThreadRequest 重命名讨论主题请求
type UpdateThreadRequest struct {
	Title string `json:"title" binding:"required,max=200"`
}

// ThreadListQuery 讨论主题列表查询
type ThreadListQuery struct {
	PageQuery
	Q string `form:"q"`
}

// ThreadItem 讨论主题列表项, 附作者与消息数
type ThreadItem struct {
	ID           string    `json:"id"`
	ProjectID    string    `json:"project_id"`
	Title        string    `json:"title"`
	CreatedBy    string    `json:"created_by"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	AvatarURL    *string   `json:"avatar_url"`
	MessageCount int64     `json:"message_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ThreadSortFields 讨论主题排序白名单
var ThreadSortFields = map[string]string{
	"created_at": "discussion_threads.created_at",
	"updated_at": "discussion_threads.updated_at",
	"title":      "discussion_threads.title",
}
