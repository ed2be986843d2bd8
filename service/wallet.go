package service

import (
	"Joyland/dao"
	"Joyland/models"
	"Joyland/types"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WalletService struct {
	TxManager *dao.TxManager
	WalletDAO *dao.Wallet
}

var _ IWalletService = (*WalletService)(nil)

type IWalletService interface {
	Credit(ctx context.Context, req *types.WalletChangeReq) (*types.WalletChangeResult, error)
	Debit(ctx context.Context, req *types.WalletChangeReq) (*types.WalletChangeResult, error)
	Balance(ctx context.Context, userID uint64) (int64, error)

	// 事务内变体，供其他引擎在同一个原子单元里记账
	CreditTx(ctx context.Context, tx *dao.Tx, req *types.WalletChangeReq) (*types.WalletChangeResult, error)
	DebitTx(ctx context.Context, tx *dao.Tx, req *types.WalletChangeReq) (*types.WalletChangeResult, error)

	GetAccountDashboard(ctx context.Context, userID uint64) (*types.WalletAccount, error)
	ListRecords(ctx context.Context, userID uint64, action string, cursor int64, limit int) (*types.ListWalletRecords, error)
}

// CreditTx 入账。req.Amount 为正。
// 带 SourceID 时以 (user, source) 幂等：已有流水则视为成功的空操作，不重复发放。
// 应用层先查一次是快速路径，数据库唯一键才是并发下的真正防线。
func (w *WalletService) CreditTx(ctx context.Context, tx *dao.Tx, req *types.WalletChangeReq) (*types.WalletChangeResult, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	return w.changeTx(ctx, tx, req, req.Amount)
}

// DebitTx 扣减。req.Amount 为正，内部取负记账。余额不足直接失败。
func (w *WalletService) DebitTx(ctx context.Context, tx *dao.Tx, req *types.WalletChangeReq) (*types.WalletChangeResult, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	account, err := tx.Wallet.GetAccount(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInsufficientFunds
		}
		return nil, err
	}
	if account.Balance < req.Amount {
		return nil, ErrInsufficientFunds
	}
	return w.changeTx(ctx, tx, req, -req.Amount)
}

func (w *WalletService) changeTx(ctx context.Context, tx *dao.Tx, req *types.WalletChangeReq, amount int64) (*types.WalletChangeResult, error) {
	sourceID := req.SourceID
	if sourceID == "" {
		// 调用方不关心幂等时生成一次性单号
		sourceID = uuid.NewString()
	}

	exists, err := tx.Wallet.LogExists(ctx, req.UserID, sourceID)
	if err != nil {
		return nil, err
	}
	if exists {
		account, err := tx.Wallet.GetAccount(ctx, req.UserID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return &types.WalletChangeResult{Applied: false, Balance: account.Balance}, nil
	}

	rows, err := tx.Wallet.UpdateBalance(ctx, req.UserID, amount)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		// 自动开户。扣减路径在上面已经因账户缺失返回余额不足，走不到这里
		if err := tx.Wallet.CreateAccount(ctx, req.UserID, amount); err != nil {
			return nil, err
		}
	}

	account, err := tx.Wallet.GetAccount(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	log := &models.WalletLog{
		UserID:     req.UserID,
		Amount:     amount,
		Balance:    account.Balance,
		ChangeType: int8(req.ChangeType),
		SourceID:   sourceID,
		Remark:     req.Remark,
	}
	// 并发重复提交会在这里撞 (user, source) 唯一键，整个事务回滚，
	// 重试方下一次会命中上面的快速路径拿到 Applied=false
	if err := tx.Wallet.CreateLog(ctx, log); err != nil {
		return nil, err
	}

	return &types.WalletChangeResult{Applied: true, Amount: amount, Balance: account.Balance}, nil
}

func (w *WalletService) Credit(ctx context.Context, req *types.WalletChangeReq) (*types.WalletChangeResult, error) {
	var result *types.WalletChangeResult
	err := w.TxManager.Do(ctx, func(tx *dao.Tx) error {
		var err error
		result, err = w.CreditTx(ctx, tx, req)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (w *WalletService) Debit(ctx context.Context, req *types.WalletChangeReq) (*types.WalletChangeResult, error) {
	var result *types.WalletChangeResult
	err := w.TxManager.Do(ctx, func(tx *dao.Tx) error {
		var err error
		result, err = w.DebitTx(ctx, tx, req)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (w *WalletService) Balance(ctx context.Context, userID uint64) (int64, error) {
	account, err := w.WalletDAO.GetAccount(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return account.Balance, nil
}

func (w *WalletService) GetAccountDashboard(ctx context.Context, userID uint64) (*types.WalletAccount, error) {
	account, err := w.WalletDAO.GetAccount(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 新用户还没有账户，返回初始状态
			return &types.WalletAccount{}, nil
		}
		return nil, err
	}
	return &types.WalletAccount{
		Balance:     account.Balance,
		TotalEarned: int64(account.TotalEarned),
		TotalUsed:   int64(account.TotalUsed),
	}, nil
}

func (w *WalletService) ListRecords(ctx context.Context, userID uint64, action string, cursor int64, limit int) (*types.ListWalletRecords, error) {
	if limit <= 0 {
		limit = 10
	}
	logs, err := w.WalletDAO.ListLogs(ctx, userID, action, cursor, limit+1)
	if err != nil {
		return nil, err
	}

	resp := &types.ListWalletRecords{
		Records: make([]types.WalletRecord, 0),
	}
	if len(logs) > limit {
		resp.HasMore = true
		logs = logs[:limit]
		resp.NextCursor = int64(logs[len(logs)-1].ID)
	}

	for _, l := range logs {
		orderType := "INCOME"
		if l.Amount < 0 {
			orderType = "EXPENSE"
		}
		resp.Records = append(resp.Records, types.WalletRecord{
			ID:          l.ID,
			Amount:      l.Amount,
			Balance:     l.Balance,
			Description: l.Remark,
			OrderType:   orderType,
			CreatedAt:   l.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return resp, nil
}
