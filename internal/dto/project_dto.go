package dto

// CreateProjectRequest 创建项目请求
type CreateProjectRequest struct {
	Name        string  `json:"name" binding:"required,max=200"`
	Description *string `json:"description"`
	Status      string  `json:"status" binding:"omitempty,oneof=active paused completed on_hold archived"`
}

// UpdateProjectRequest 更新项目请求, 指针字段缺省表示不修改
type UpdateProjectRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=200"`
	Description *string `json:"description"`
	Status      *string `json:"status" binding:"omitempty,oneof=active paused completed on_hold archived"`
}

// ProjectListQuery 项目列表查询, 仅返回请求者可见的项目
type ProjectListQuery struct {
	PageQuery
	Q      string `form:"q"`
	Status string `form:"status"`
}

// ProjectSortFields 项目排序白名单
var ProjectSortFields = map[string]string{
	"created_at": "projects.created_at",
	"updated_at": "projects.updated_at",
	"name":       "projects.name",
	"status":     "projects.status",
}
