package models

import "time"

type UserWallet struct {
	ID          uint64    `gorm:"primaryKey;column:id"`
	UserID      uint64    `gorm:"column:user_id;uniqueIndex"`
	Balance     int64     `gorm:"column:balance;default:0"`
	TotalEarned uint64    `gorm:"column:total_earned;default:0"`
	TotalUsed   uint64    `gorm:"column:total_used;default:0"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (UserWallet) TableName() string {
	return "user_wallets"
}

// 积分变动类型常量定义
const (
	// 收入类
	TypeSignIn         = 1 // 每日签到
	TypePetLevelUp     = 2 // 宠物升级奖励
	TypeFullStatsBonus = 3 // 五维拉满奖励
	TypeGameReward     = 4 // 小游戏胜利奖励

	// 支出类
	TypeExchange   = 10 // 积分兑换券码
	TypeAppearance = 11 // 宠物装扮消费
)

// WalletLog 积分流水，只增不改。
// (user_id, source_id) 唯一键是幂等防线：同一业务单号重复提交只会落一条流水。
type WalletLog struct {
	ID         uint64    `gorm:"primaryKey;column:id"`
	UserID     uint64    `gorm:"column:user_id;index:idx_user_id;uniqueIndex:uk_user_source,priority:1"`
	Amount     int64     `gorm:"column:amount"`  // 变动数额（正负）
	Balance    int64     `gorm:"column:balance"` // 变动后余额快照
	ChangeType int8      `gorm:"column:change_type"`
	SourceID   string    `gorm:"column:source_id;size:64;uniqueIndex:uk_user_source,priority:2"`
	Remark     string    `gorm:"column:remark;size:255"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (WalletLog) TableName() string {
	return "wallet_logs"
}
