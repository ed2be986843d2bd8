package config

// Reward 奖励发放相关参数，未配置时采用默认值
type Reward struct {
	// 每人每个自然日可开局次数
	DailyPlayLimit int `json:"daily_play_limit" yaml:"daily_play_limit"`
	// 五维拉满的当日奖励
	FullStatsBonusPoints int `json:"full_stats_bonus_points" yaml:"full_stats_bonus_points"`
	FullStatsBonusExp    int `json:"full_stats_bonus_exp" yaml:"full_stats_bonus_exp"`
	// 兑换码生成盐
	CouponSalt string `json:"coupon_salt" yaml:"coupon_salt"`
	// 宠物装扮价目, code -> 积分价格
	SkinCosts       map[string]int `json:"skin_costs" yaml:"skin_costs"`
	BackgroundCosts map[string]int `json:"background_costs" yaml:"background_costs"`
}

func (r *Reward) applyDefaults() {
	if r.DailyPlayLimit <= 0 {
		r.DailyPlayLimit = 3
	}
	if r.FullStatsBonusPoints <= 0 {
		r.FullStatsBonusPoints = 100
	}
	if r.FullStatsBonusExp <= 0 {
		r.FullStatsBonusExp = 100
	}
	if r.CouponSalt == "" {
		r.CouponSalt = "joyland-coupon"
	}
}
