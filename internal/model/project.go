package model

import "time"

const ProjectTableName = "projects"
const ProjectMemberTableName = "project_members"

// Project 项目模型, 硬删除, 子资源由外键级联清理
type Project struct {
	BaseModel
	CreatedBy   string  `gorm:"type:char(36);not null;index" json:"created_by"`
	Name        string  `gorm:"size:200;not null" json:"name"`
	Description *string `gorm:"type:text" json:"description"`
	Status      string  `gorm:"size:20;not null;default:'active'" json:"status"`

	Creator *User `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
}

func (Project) TableName() string {
	return ProjectTableName
}

// ProjectMember 项目成员, (project_id, user_id) 联合主键
// 项目创建者不落成员行, 访问控制层按 owner 对待
type ProjectMember struct {
	ProjectID string    `gorm:"type:char(36);primaryKey" json:"project_id"`
	UserID    string    `gorm:"type:char(36);primaryKey" json:"user_id"`
	Role      string    `gorm:"size:20;not null;default:'member'" json:"role"`
	AddedAt   time.Time `gorm:"not null;autoCreateTime" json:"added_at"`

	Project *Project `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
	User    *User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

func (ProjectMember) TableName() string {
	return ProjectMemberTableName
}
