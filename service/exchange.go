package service

import (
	"Joyland/config"
	"Joyland/dao"
	"Joyland/models"
	"Joyland/pkg/snowflake"
	"Joyland/types"
	"context"
	"fmt"

	"github.com/speps/go-hashids/v2"
)

// CouponIssuer 券码发放方。签到规则带券时由它出码。
type CouponIssuer interface {
	IssueCoupon(ctx context.Context, userID uint64, typeCode string) (string, error)
}

// CosmeticCatalog 装扮目录：皮肤/背景的上架状态与积分价格
type CosmeticCatalog interface {
	SkinCost(code string) (int, bool)
	BackgroundCost(code string) (int, bool)
}

type ExchangeService struct {
	Config    *config.Config
	TxManager *dao.TxManager
	Wallet    IWalletService
}

var _ IExchangeService = (*ExchangeService)(nil)
var _ CouponIssuer = (*ExchangeService)(nil)

type IExchangeService interface {
	CouponIssuer
	// ExchangePoints 扣 N 积分换一个券码
	ExchangePoints(ctx context.Context, tx *dao.Tx, userID uint64, cost int, typeCode string) (*types.ExchangeResult, error)
	Exchange(ctx context.Context, userID uint64, cost int, typeCode string) (*types.ExchangeResult, error)
}

// IssueCoupon 生成券码。hashids 以雪花ID为底，保证码不重复且不可枚举
func (e *ExchangeService) IssueCoupon(ctx context.Context, userID uint64, typeCode string) (string, error) {
	hd := hashids.NewData()
	hd.Salt = e.Config.Reward.CouponSalt + ":" + typeCode
	hd.MinLength = 12
	h, err := hashids.NewWithData(hd)
	if err != nil {
		return "", err
	}
	code, err := h.EncodeInt64([]int64{snowflake.GenID()})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%s", typeCode, code), nil
}

func (e *ExchangeService) ExchangePoints(ctx context.Context, tx *dao.Tx, userID uint64, cost int, typeCode string) (*types.ExchangeResult, error) {
	if cost <= 0 {
		return nil, ErrInvalidAmount
	}

	code, err := e.IssueCoupon(ctx, userID, typeCode)
	if err != nil {
		return nil, err
	}

	result, err := e.Wallet.DebitTx(ctx, tx, &types.WalletChangeReq{
		UserID:     userID,
		Amount:     int64(cost),
		ChangeType: models.TypeExchange,
		SourceID:   fmt.Sprintf("exchange-%s", code),
		Remark:     fmt.Sprintf("积分兑换 %s", typeCode),
	})
	if err != nil {
		return nil, err
	}

	return &types.ExchangeResult{
		CouponCode: code,
		Cost:       cost,
		Balance:    result.Balance,
	}, nil
}

func (e *ExchangeService) Exchange(ctx context.Context, userID uint64, cost int, typeCode string) (*types.ExchangeResult, error) {
	var result *types.ExchangeResult
	err := e.TxManager.Do(ctx, func(tx *dao.Tx) error {
		var err error
		result, err = e.ExchangePoints(ctx, tx, userID, cost, typeCode)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ConfigCatalog 配置驱动的装扮目录实现
type ConfigCatalog struct {
	Config *config.Config
}

var _ CosmeticCatalog = (*ConfigCatalog)(nil)

func (c *ConfigCatalog) SkinCost(code string) (int, bool) {
	cost, ok := c.Config.Reward.SkinCosts[code]
	return cost, ok
}

func (c *ConfigCatalog) BackgroundCost(code string) (int, bool) {
	cost, ok := c.Config.Reward.BackgroundCosts[code]
	return cost, ok
}
