package types

// WalletChangeReq 账本变动请求。Amount 恒为正数，方向由 Credit/Debit 决定。
// SourceID 为幂等单号，留空表示调用方不关心重复提交。
type WalletChangeReq struct {
	UserID     uint64
	Amount     int64
	ChangeType int
	SourceID   string
	Remark     string
}

// WalletChangeResult 变动结果。Applied=false 表示该单号已处理过，本次是空操作
type WalletChangeResult struct {
	Applied bool  `json:"applied"`
	Amount  int64 `json:"amount"`
	Balance int64 `json:"balance"`
}

// WalletAccount 账户概览
type WalletAccount struct {
	Balance     int64 `json:"balance"`
	TotalEarned int64 `json:"total_earned"`
	TotalUsed   int64 `json:"total_used"`
}

// WalletRecord 单条流水
type WalletRecord struct {
	ID          uint64 `json:"id"`
	Amount      int64  `json:"amount"`
	Balance     int64  `json:"balance"`
	Description string `json:"description"`
	OrderType   string `json:"order_type"` // INCOME / EXPENSE
	CreatedAt   string `json:"created_at"`
}

// ListWalletRecords 流水列表包装
type ListWalletRecords struct {
	Records    []WalletRecord `json:"records"`
	NextCursor int64          `json:"next_cursor"`
	HasMore    bool           `json:"has_more"`
}

// ListWalletRecordsReq 流水查询参数
type ListWalletRecordsReq struct {
	Action string `form:"action" binding:"omitempty,oneof=income expense"`
	Cursor int64  `form:"cursor"`
	Limit  int    `form:"limit,default=10"`
}

// ExchangeResult 积分兑换结果
type ExchangeResult struct {
	CouponCode string `json:"coupon_code"`
	Cost       int    `json:"cost"`
	Balance    int64  `json:"balance"`
}

// ExchangeReq 积分兑换请求
type ExchangeReq struct {
	Cost     int    `json:"cost" binding:"required,gt=0"`
	TypeCode string `json:"type_code" binding:"required"`
}
