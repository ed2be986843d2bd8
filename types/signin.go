package types

// SignInReward 某一档签到奖励
type SignInReward struct {
	Day        int    `json:"day"`
	Points     int    `json:"points"`
	Exp        int    `json:"exp"`
	CouponType string `json:"coupon_type,omitempty"`
}

// SignInStatus 签到页聚合状态
type SignInStatus struct {
	SignedToday     bool          `json:"signed_today"`
	ConsecutiveDays int           `json:"consecutive_days"` // 断签后展示归零
	LongestStreak   int           `json:"longest_streak"`
	TotalDays       int           `json:"total_days"`
	NextReward      *SignInReward `json:"next_reward,omitempty"`
}

// CheckInResult 签到结果
type CheckInResult struct {
	ConsecutiveDays int    `json:"consecutive_days"`
	Points          int    `json:"points"`
	Exp             int    `json:"exp"`
	CouponCode      string `json:"coupon_code,omitempty"`
	PetLevel        int    `json:"pet_level,omitempty"`
}

// SignInCalendar 月历：当月有签到的本地日列表
type SignInCalendar struct {
	Year  int      `json:"year"`
	Month int      `json:"month"`
	Days  []string `json:"days"`
}

// SignInHistoryReq 历史查询参数
type SignInHistoryReq struct {
	Page     int    `form:"page,default=1"`
	PageSize int    `form:"page_size,default=10"`
	FromDay  string `form:"from_day"` // 2006-01-02，可空
	ToDay    string `form:"to_day"`
}

// SignInRecordItem 历史记录单条
type SignInRecordItem struct {
	Day        string `json:"day"`
	SignedAt   string `json:"signed_at"`
	Points     int    `json:"points"`
	Exp        int    `json:"exp"`
	CouponCode string `json:"coupon_code,omitempty"`
}

// SignInHistory 历史记录分页包装
type SignInHistory struct {
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
	Records  []SignInRecordItem `json:"records"`
}
