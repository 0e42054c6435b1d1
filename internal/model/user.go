package model

const UserTableName = "users"

// User 用户模型
type User struct {
	BaseModel
	Email        string  `gorm:"size:191;not null;uniqueIndex" json:"email"` // 存储为小写
	PasswordHash string  `gorm:"size:255;not null" json:"-"`                 // 不返回到前端
	FullName     string  `gorm:"size:100;not null" json:"full_name"`
	AvatarURL    *string `gorm:"size:255" json:"avatar_url"`
	IsActive     bool    `gorm:"not null;default:true" json:"is_active"`
}

// TableName 指定表名
func (User) TableName() string {
	return UserTableName
}
