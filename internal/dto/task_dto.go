package dto

import "time"

// CreateTaskRequest 创建任务请求, 可同时指定初始受派人
type CreateTaskRequest struct {
	Title       string   `json:"title" binding:"required,max=200"`
	Description *string  `json:"description"`
	Status      string   `json:"status" binding:"omitempty,oneof=todo in_progress done blocked"`
	DueDate     *string  `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	AssigneeIDs []string `json:"assigneeIds" binding:"omitempty,dive,uuid"`
}

// UpdateTaskRequest 更新任务请求
type UpdateTaskRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=200"`
	Description *string `json:"description"`
	Status      *string `json:"status" binding:"omitempty,oneof=todo in_progress done blocked"`
	DueDate     *string `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	IsArchived  *bool   `json:"isArchived"`
}

// TaskListQuery 项目内任务列表查询
type TaskListQuery struct {
	PageQuery
	Q          string `form:"q"`
	Status     string `form:"status"`
	IsArchived string `form:"is_archived"`
	DueFrom    string `form:"due_from"`
	DueTo      string `form:"due_to"`
}

// MyTasksQuery 我的任务查询, 跨项目
type MyTasksQuery struct {
	TaskListQuery
	ProjectID string `form:"project_id"`
}

// MyTaskItem 我的任务列表项, 附带项目名与受派时间
type MyTaskItem struct {
	ID          string     `json:"id"`
	ProjectID   string     `json:"project_id"`
	ProjectName string     `json:"project_name"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"due_date"`
	IsArchived  bool       `json:"is_archived"`
	CreatedBy   string     `json:"created_by"`
	AssignedAt  time.Time  `json:"assigned_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TaskSortFields 任务排序白名单
var TaskSortFields = map[string]string{
	"created_at": "tasks.created_at",
	"updated_at": "tasks.updated_at",
	"due_date":   "tasks.due_date",
	"title":      "tasks.title",
	"status":     "tasks.status",
}
