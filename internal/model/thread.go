package model

const DiscussionThreadTableName = "discussion_threads"
const DiscussionMessageTableName = "discussion_messages"

// DiscussionThread 项目级讨论主题
type DiscussionThread struct {
	BaseModel
	ProjectID string `gorm:"type:char(36);not null;index" json:"project_id"`
	Title     string `gorm:"size:200;not null" json:"title"`
	CreatedBy string `gorm:"type:char(36);not null;index" json:"created_by"`

	Project *Project `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
	Author  *User    `gorm:"foreignKey:CreatedBy" json:"author,omitempty"`
}

func (DiscussionThread) TableName() string {
	return DiscussionThreadTableName
}

// DiscussionMessage 主题下的消息, 支持父子回复
// 主题删除或父消息删除时级联删除
type DiscussionMessage struct {
	BaseModel
	ThreadID        string  `gorm:"type:char(36);not null;index" json:"thread_id"`
	AuthorID        string  `gorm:"type:char(36);not null;index" json:"author_id"`
	Body            string  `gorm:"type:text;not null" json:"body"`
	ParentMessageID *string `gorm:"type:char(36);index" json:"parent_message_id"`

	Thread *DiscussionThread  `gorm:"foreignKey:ThreadID;constraint:OnDelete:CASCADE" json:"-"`
	Author *User              `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Parent *DiscussionMessage `gorm:"foreignKey:ParentMessageID;constraint:OnDelete:CASCADE" json:"-"`
}

func (DiscussionMessage) TableName() string {
	return DiscussionMessageTableName
}
