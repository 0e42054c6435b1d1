package dto

import "time"

// AddAssigneesRequest 添加受派人请求, userId 与 userIds 至少其一
// UUID 形状在服务层校验, 非法值计入 summary.invalid 而不是整体拒绝
type AddAssigneesRequest struct {
	UserID  string   `json:"userId"`
	UserIDs []string `json:"userIds"`
}

// AllIDs 合并单个与批量字段并去除空值
func (r *AddAssigneesRequest) AllIDs() []string {
	ids := make([]string, 0, len(r.UserIDs)+1)
	if r.UserID != "" {
		ids = append(ids, r.UserID)
	}
	ids = append(ids, r.UserIDs...)
	return ids
}

// AssigneeItem 受派人列表项
type AssigneeItem struct {
	UserID     string    `json:"user_id"`
	AssignedAt time.Time `json:"assigned_at"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	AvatarURL  *string   `json:"avatar_url"`
}

// AssigneeSummary 批量指派结果统计
type AssigneeSummary struct {
	Requested       int `json:"requested"`
	Invalid         int `json:"invalid"`
	NotMembers      int `json:"notMembers"`
	AlreadyAssigned int `json:"alreadyAssigned"`
	Inserted        int `json:"inserted"`
}

// AddAssigneesResponse 批量指派响应
type AddAssigneesResponse struct {
	Added   []*AssigneeItem `json:"added"`
	Summary AssigneeSummary `json:"summary"`
}
