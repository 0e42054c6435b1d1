package dto

import "time"

// CreateMessageRequest 发布讨论消息请求
type CreateMessageRequest struct {
	Body            string  `json:"body" binding:"required"`
	ParentMessageID *string `json:"parentMessageId" binding:"omitempty,uuid"`
}

// UpdateMessageRequest 编辑讨论消息请求
type UpdateMessageRequest struct {
	Body string `json:"body" binding:"required"`
}

// MessageListQuery 讨论消息列表查询
type MessageListQuery struct {
	PageQuery
	ParentID string `form:"parent_id"`
}

// MessageItem 讨论消息列表项, 连接作者资料
type MessageItem struct {
	ID              string    `json:"id"`
	ThreadID        string    `json:"thread_id"`
	AuthorID        string    `json:"author_id"`
	Body            string    `json:"body"`
	ParentMessageID *string   `json:"parent_message_id"`
	FullName        string    `json:"full_name"`
	Email           string    `json:"email"`
	AvatarURL       *string   `json:"avatar_url"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// MessageSortFields 讨论消息排序白名单
var MessageSortFields = map[string]string{
	"created_at": "discussion_messages.created_at",
	"updated_at": "discussion_messages.updated_at",
}
