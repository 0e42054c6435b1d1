package constants

// ProjectStatus 项目状态
const (
	ProjectStatusActive    = "active"
	ProjectStatusPaused    = "paused"
	ProjectStatusCompleted = "completed"
	ProjectStatusOnHold    = "on_hold"
	ProjectStatusArchived  = "archived"
)

// TaskStatus 任务状态
const (
	TaskStatusTodo       = "todo"
	TaskStatusInProgress = "in_progress"
	TaskStatusDone       = "done"
	TaskStatusBlocked    = "blocked"
)

// MemberRole 项目成员角色
const (
	RoleOwner  = "owner"
	RoleAdmin  = "admin"
	RoleMember = "member"
	RoleViewer = "viewer"
)

// NotificationType 通知类型
const (
	NotifyMemberAdded  = "member_added"
	NotifyTaskAssigned = "task_assigned"
	NotifyCommentReply = "comment_reply"
	NotifyMessageReply = "message_reply"
)

// HTTP Header
const (
	HeaderAuthorization = "Authorization"
	HeaderBearerPrefix  = "Bearer "
)

// Context Key, 认证中间件写入
const (
	ContextUserKey   = "user"
	ContextUserIDKey = "user_id"
)
