package model

import "time"

const TaskTableName = "tasks"
const TaskAssigneeTableName = "task_assignees"

// Task 任务模型, 归属唯一项目
type Task struct {
	BaseModel
	ProjectID   string     `gorm:"type:char(36);not null;index" json:"project_id"`
	Title       string     `gorm:"size:200;not null" json:"title"`
	Description *string    `gorm:"type:text" json:"description"`
	Status      string     `gorm:"size:20;not null;default:'todo'" json:"status"`
	DueDate     *time.Time `json:"due_date"`
	IsArchived  bool       `gorm:"not null;default:false" json:"is_archived"`
	CreatedBy   string     `gorm:"type:char(36);not null;index" json:"created_by"`

	Project *Project `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Task) TableName() string {
	return TaskTableName
}

// TaskAssignee 任务指派, (task_id, user_id) 联合主键
// 应用层保证被指派者必须是项目成员或项目创建者
type TaskAssignee struct {
	TaskID     string    `gorm:"type:char(36);primaryKey" json:"task_id"`
	UserID     string    `gorm:"type:char(36);primaryKey" json:"user_id"`
	AssignedAt time.Time `gorm:"not null;autoCreateTime" json:"assigned_at"`

	Task *Task `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"-"`
	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

func (TaskAssignee) TableName() string {
	return TaskAssigneeTableName
}
