package types

// PetProfile 宠物状态快照
type PetProfile struct {
	ID             uint64 `json:"id"`
	Name           string `json:"name"`
	Level          int    `json:"level"`
	Exp            int    `json:"exp"`
	NextLevelExp   int    `json:"next_level_exp"` // 0 表示已到顶
	Hunger         int    `json:"hunger"`
	Mood           int    `json:"mood"`
	Stamina        int    `json:"stamina"`
	Cleanliness    int    `json:"cleanliness"`
	Health         int    `json:"health"`
	SkinCode       string `json:"skin_code"`
	BackgroundCode string `json:"background_code"`
}

// InteractReq 互动请求
type InteractReq struct {
	Action string `json:"action" binding:"required,oneof=feed bath comfort rest"`
}

// FullStatsBonus 活力全满奖励明细
type FullStatsBonus struct {
	Points int `json:"points"` // 含升级联动发放的积分
	Exp    int `json:"exp"`
	Level  int `json:"level"`
}

// InteractResult 互动结果
type InteractResult struct {
	Action string          `json:"action"`
	Pet    PetProfile      `json:"pet"`
	Bonus  *FullStatsBonus `json:"bonus,omitempty"` // 仅当日首次拉满时返回
}

// UpdateAppearanceReq 装扮更换请求，两个 code 至少传一个
type UpdateAppearanceReq struct {
	SkinCode       string `json:"skin_code"`
	BackgroundCode string `json:"background_code"`
}

// UpdateAppearanceResult 装扮更换结果
type UpdateAppearanceResult struct {
	Cost    int        `json:"cost"`
	Balance int64      `json:"balance"`
	Pet     PetProfile `json:"pet"`
}
