package dto

import "time"

// AddMemberRequest 添加项目成员请求
type AddMemberRequest struct {
	UserID string `json:"userId" binding:"required,uuid"`
	Role   string `json:"role" binding:"omitempty,oneof=owner admin member viewer"`
}

// UpdateMemberRequest 修改成员角色请求
type UpdateMemberRequest struct {
	Role string `json:"role" binding:"required,oneof=owner admin member viewer"`
}

// MemberItem 成员列表项, 连接用户资料
type MemberItem struct {
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	AddedAt   time.Time `json:"added_at"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	AvatarURL *string   `json:"avatar_url"`
}
