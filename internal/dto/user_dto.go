package dto

import (
	"time"

	"synergysphere/internal/model"
)

// UserResponse 用户公开信息, 不含密码散列
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	AvatarURL *string   `json:"avatar_url"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserResponse 从模型构造用户响应
func NewUserResponse(u *model.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		AvatarURL: u.AvatarURL,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

// UserListQuery 用户检索查询, 用于添加成员前的搜索
type UserListQuery struct {
	PageQuery
	Q string `form:"q"`
}

// UserSortFields 用户排序白名单
var UserSortFields = map[string]string{
	"created_at": "users.created_at",
	"full_name":  "users.full_name",
	"email":      "users.email",
}

// UpdateProfileRequest 更新个人资料请求
type UpdateProfileRequest struct {
	FullName  *string `json:"fullName" binding:"omitempty,max=120"`
	AvatarURL *string `json:"avatarUrl" binding:"omitempty,max=255"`
}
