package types

// StartGameReq 开局请求
type StartGameReq struct {
	Level int `json:"level" binding:"required,oneof=1 2 3"`
}

// StartGameResult 开局结果
type StartGameResult struct {
	SessionID    int64   `json:"session_id,string"` // 雪花ID，避免前端精度丢失
	Level        int     `json:"level"`
	MonsterCount int     `json:"monster_count"`
	SpeedFactor  float64 `json:"speed_factor"`
	Remaining    int     `json:"remaining"` // 本局开始后的余量
}

// EndGameReq 结算请求
type EndGameReq struct {
	SessionID int64 `json:"session_id,string" binding:"required"`
	Result    int8  `json:"result" binding:"required,oneof=1 2 3"` // 1胜 2负 3放弃
	Exp       int   `json:"exp"`
	Points    int   `json:"points"`
}

// VitalityDeltas 结算时五维变化量
type VitalityDeltas struct {
	Hunger      int `json:"hunger"`
	Mood        int `json:"mood"`
	Stamina     int `json:"stamina"`
	Cleanliness int `json:"cleanliness"`
}

// EndGameResult 结算结果
type EndGameResult struct {
	Points        int            `json:"points"`
	Exp           int            `json:"exp"`
	PetLevel      int            `json:"pet_level,omitempty"`
	LevelUpPoints int            `json:"level_up_points,omitempty"`
	Deltas        VitalityDeltas `json:"deltas"`
}
