package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const NotificationTableName = "notifications"

// Notification 站内通知, 只增不改(除已读标记), 无 updated_at
type Notification struct {
	ID        string         `gorm:"type:char(36);primaryKey" json:"id"`
	UserID    string         `gorm:"type:char(36);not null;index" json:"user_id"` // 接收人
	Type      string         `gorm:"size:50;not null;index" json:"type"`
	Payload   datatypes.JSON `gorm:"type:json" json:"payload"`
	ProjectID *string        `gorm:"type:char(36);index" json:"project_id"`
	TaskID    *string        `gorm:"type:char(36);index" json:"task_id"`
	ActorID   *string        `gorm:"type:char(36)" json:"actor_id"`
	IsRead    bool           `gorm:"not null;default:false;index" json:"is_read"`
	CreatedAt time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`

	Recipient *User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Project   *Project `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
	Task      *Task    `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"-"`
	Actor     *User    `gorm:"foreignKey:ActorID;constraint:OnDelete:SET NULL" json:"actor,omitempty"`
}

func (Notification) TableName() string {
	return NotificationTableName
}

// BeforeCreate 服务端生成 UUID
func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}
