package models

import "time"

// 用户状态
const (
	UserStatusNormal int8 = 1
	UserStatusLocked int8 = 2
)

// Users 用户主体由账号系统维护，这里只关心可用状态
type Users struct {
	ID        uint64    `gorm:"primaryKey;column:id"`
	Nickname  string    `gorm:"column:nickname;size:64"`
	Status    int8      `gorm:"column:status;default:1"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Users) TableName() string {
	return "users"
}

func (u *Users) Available() bool {
	return u.Status == UserStatusNormal
}
