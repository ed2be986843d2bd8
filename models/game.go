package models

import (
	"time"

	"gorm.io/datatypes"
)

// 对局结果
const (
	GameInProgress int8 = 0
	GameWin        int8 = 1
	GameLose       int8 = 2
	GameAbort      int8 = 3
)

// GameSession 小游戏对局，开局时创建，结算恰好一次
type GameSession struct {
	ID     int64  `gorm:"primaryKey;column:id"` // 雪花ID
	UserID uint64 `gorm:"column:user_id;index:idx_user_started,priority:1"`
	PetID  uint64 `gorm:"column:pet_id"`

	Level  int            `gorm:"column:level"`  // 选择的关卡 1-3
	Params datatypes.JSON `gorm:"column:params"` // 由关卡推导的难度参数

	Result int8 `gorm:"column:result;default:0"`
	Exp    int  `gorm:"column:exp"`
	Points int  `gorm:"column:points"`

	// 结算时计算的五维变化量，落在对局记录上
	HungerDelta      int `gorm:"column:hunger_delta"`
	MoodDelta        int `gorm:"column:mood_delta"`
	StaminaDelta     int `gorm:"column:stamina_delta"`
	CleanlinessDelta int `gorm:"column:cleanliness_delta"`

	StartedAt time.Time  `gorm:"column:started_at;index:idx_user_started,priority:2"`
	EndedAt   *time.Time `gorm:"column:ended_at"`
	Aborted   bool       `gorm:"column:aborted;default:false"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (GameSession) TableName() string {
	return "game_sessions"
}

// DifficultyParams 关卡难度参数
type DifficultyParams struct {
	MonsterCount int     `json:"monster_count"`
	SpeedFactor  float64 `json:"speed_factor"`
}
