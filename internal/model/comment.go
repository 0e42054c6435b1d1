package model

const TaskCommentTableName = "task_comments"

// TaskComment 任务评论, 支持父子回复, 父评论删除时回复级联删除
type TaskComment struct {
	BaseModel
	TaskID          string  `gorm:"type:char(36);not null;index" json:"task_id"`
	AuthorID        string  `gorm:"type:char(36);not null;index" json:"author_id"`
	Body            string  `gorm:"type:text;not null" json:"body"`
	ParentCommentID *string `gorm:"type:char(36);index" json:"parent_comment_id"`

	Task   *Task        `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"-"`
	Author *User        `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Parent *TaskComment `gorm:"foreignKey:ParentCommentID;constraint:OnDelete:CASCADE" json:"-"`
}

func (TaskComment) TableName() string {
	return TaskCommentTableName
}
