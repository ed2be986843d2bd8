package models

import "time"

// SignInRecord 签到记录，每用户每个本地自然日至多一条。
// (user_id, sign_day) 唯一键兜底并发下的重复签到。
type SignInRecord struct {
	ID         uint64    `gorm:"primaryKey;column:id"`
	UserID     uint64    `gorm:"column:user_id;uniqueIndex:uk_user_day,priority:1"`
	SignDay    string    `gorm:"column:sign_day;size:10;uniqueIndex:uk_user_day,priority:2"` // 本地日 2006-01-02
	SignedAt   time.Time `gorm:"column:signed_at"`
	Points     int       `gorm:"column:points"`
	Exp        int       `gorm:"column:exp"`
	CouponCode string    `gorm:"column:coupon_code;size:64"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (SignInRecord) TableName() string {
	return "sign_in_records"
}

// SignInRule 签到奖励规则：连续第 N 天 -> 奖励，后台配置，引擎只读
type SignInRule struct {
	ID         uint64 `gorm:"primaryKey;column:id"`
	Day        int    `gorm:"column:day;uniqueIndex"`
	Points     int    `gorm:"column:points"`
	Exp        int    `gorm:"column:exp"`
	CouponType string `gorm:"column:coupon_type;size:32"` // 可空，非空时额外发券
}

func (SignInRule) TableName() string {
	return "sign_in_rules"
}
