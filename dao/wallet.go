package dao

import (
	"Joyland/models"
	"context"

	"gorm.io/gorm"
)

type Wallet struct {
	Repo[models.UserWallet]
}

func NewWallet(db *gorm.DB) *Wallet {
	return &Wallet{
		Repo: NewRepo[models.UserWallet](db),
	}
}

// LogExists 幂等检查：同一业务单号是否已有流水
func (w *Wallet) LogExists(ctx context.Context, userID uint64, sourceID string) (bool, error) {
	var count int64
	err := w.Db.WithContext(ctx).Model(&models.WalletLog{}).
		Where("user_id = ? AND source_id = ?", userID, sourceID).
		Count(&count).Error
	return count > 0, err
}

// GetAccount 获取账户信息（在事务内调用）
func (w *Wallet) GetAccount(ctx context.Context, userID uint64) (*models.UserWallet, error) {
	var account models.UserWallet
	err := w.Db.WithContext(ctx).Where("user_id = ?", userID).First(&account).Error
	return &account, err
}

// CreateAccount 初始化账户（针对新用户）
func (w *Wallet) CreateAccount(ctx context.Context, userID uint64, initial int64) error {
	account := &models.UserWallet{
		UserID:  userID,
		Balance: initial,
	}
	if initial > 0 {
		account.TotalEarned = uint64(initial)
	}
	return w.Db.WithContext(ctx).Create(account).Error
}

// UpdateBalance 原子加减余额。
// gorm.Expr 保证并发下的原子性；返回受影响行数，为 0 说明账户尚未开户。
func (w *Wallet) UpdateBalance(ctx context.Context, userID uint64, amount int64) (int64, error) {
	updates := map[string]interface{}{
		"balance": gorm.Expr("balance + ?", amount),
	}
	if amount >= 0 {
		updates["total_earned"] = gorm.Expr("total_earned + ?", amount)
	} else {
		updates["total_used"] = gorm.Expr("total_used + ?", -amount)
	}
	result := w.Db.WithContext(ctx).Model(&models.UserWallet{}).
		Where("user_id = ?", userID).
		Updates(updates)
	return result.RowsAffected, result.Error
}

func (w *Wallet) CreateLog(ctx context.Context, log *models.WalletLog) error {
	return w.Db.WithContext(ctx).Create(log).Error
}

// SumAmounts 流水求和，用于对账
func (w *Wallet) SumAmounts(ctx context.Context, userID uint64) (int64, error) {
	var total int64
	err := w.Db.WithContext(ctx).Model(&models.WalletLog{}).
		Select("IFNULL(SUM(amount), 0)").
		Where("user_id = ?", userID).
		Scan(&total).Error
	return total, err
}

// ListLogs 游标分页查询流水
func (w *Wallet) ListLogs(ctx context.Context, userID uint64, action string, cursor int64, limit int) ([]models.WalletLog, error) {
	var logs []models.WalletLog
	query := w.Db.WithContext(ctx).Where("user_id = ?", userID)

	switch action {
	case "income":
		query = query.Where("amount > ?", 0)
	case "expense":
		query = query.Where("amount < ?", 0)
	}

	if cursor > 0 {
		query = query.Where("id < ?", cursor)
	}

	err := query.Order("id DESC").Limit(limit).Find(&logs).Error
	return logs, err
}
