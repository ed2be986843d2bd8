package models

import "time"

// 五维属性取值范围
const (
	StatMin = 0
	StatMax = 100
)

// Pet 宠物，每个用户一只
type Pet struct {
	ID     uint64 `gorm:"primaryKey;column:id"`
	UserID uint64 `gorm:"column:user_id;uniqueIndex"`
	Name   string `gorm:"column:name;size:32"`

	Level int `gorm:"column:level;default:1"`
	Exp   int `gorm:"column:exp;default:0"`

	// 五维，均在 [0,100]
	Hunger      int `gorm:"column:hunger;default:100"`
	Mood        int `gorm:"column:mood;default:100"`
	Stamina     int `gorm:"column:stamina;default:100"`
	Cleanliness int `gorm:"column:cleanliness;default:100"`
	Health      int `gorm:"column:health;default:100"`

	SkinCode            string     `gorm:"column:skin_code;size:32"`
	SkinChangedAt       *time.Time `gorm:"column:skin_changed_at"`
	BackgroundCode      string     `gorm:"column:background_code;size:32"`
	BackgroundChangedAt *time.Time `gorm:"column:background_changed_at"`

	LevelUpAt *time.Time `gorm:"column:level_up_at"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Pet) TableName() string {
	return "pets"
}

// StatsFull 除健康外四维是否全满
func (p *Pet) StatsFull() bool {
	return p.Hunger == StatMax && p.Mood == StatMax &&
		p.Stamina == StatMax && p.Cleanliness == StatMax
}

// Exhausted 任一维为 0 时宠物处于虚弱状态，不可互动
func (p *Pet) Exhausted() bool {
	return p.Hunger == StatMin || p.Mood == StatMin || p.Stamina == StatMin ||
		p.Cleanliness == StatMin || p.Health == StatMin
}
