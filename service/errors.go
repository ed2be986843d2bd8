package service

import "Joyland/pkg/response"

// 引擎层的确定性错误，处理层据此渲染
var (
	ErrInvalidAmount  = response.NewValidation("变动数额不合法")
	ErrInvalidLevel   = response.NewValidation("关卡不存在")
	ErrInvalidAction  = response.NewValidation("不支持的互动类型")
	ErrInvalidResult  = response.NewValidation("对局结果不合法")
	ErrInvalidPage    = response.NewValidation("分页参数不合法")
	ErrNothingToDo    = response.NewValidation("没有需要变更的内容")

	ErrNoPet                 = response.NewNotFound("还没有领养宠物")
	ErrNoSession             = response.NewNotFound("对局不存在或已结算")
	ErrNoRuleForDay          = response.NewNotFound("签到奖励规则缺失")
	ErrAppearanceUnavailable = response.NewNotFound("该装扮暂未上架")

	ErrUserUnavailable = response.NewConflict("账号状态异常")
	ErrAlreadySignedIn = response.NewConflict("今日已签到")
	ErrQuotaExhausted  = response.NewConflict("今日游戏次数已用完")
	ErrPetExhausted    = response.NewConflict("宠物太虚弱了，先照顾一下它吧")

	ErrInsufficientFunds = response.NewInsufficientFunds("积分余额不足")
)
