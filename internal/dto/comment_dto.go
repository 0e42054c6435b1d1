package dto

import "time"

// CreateCommentRequest 创建任务评论请求
type CreateCommentRequest struct {
	Body            string  `json:"body" binding:"required"`
	ParentCommentID *string `json:"parentCommentId" binding:"omitempty,uuid"`
}

// UpdateCommentRequest 编辑评论请求
type UpdateCommentRequest struct {
	Body string `json:"body" binding:"required"`
}

// CommentListQuery 评论列表查询, parent_id 过滤回复
type CommentListQuery struct {
	PageQuery
	ParentID string `form:"parent_id"`
}

// CommentItem 评论列表项, 连接作者资料
type CommentItem struct {
	ID              string    `json:"id"`
	TaskID          string    `json:"task_id"`
	AuthorID        string    `json:"author_id"`
	Body            string    `json:"body"`
	ParentCommentID *string   `json:"parent_comment_id"`
	FullName        string    `json:"full_name"`
	Email           string    `json:"email"`
	AvatarURL       *string   `json:"avatar_url"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CommentSortFields 评论排序白名单
var CommentSortFields = map[string]string{
	"created_at": "task_comments.created_at",
	"updated_at": "task_comments.updated_at",
}
