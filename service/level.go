package service

import (
	"Joyland/dao"
	"Joyland/models"
	"Joyland/pkg/clock"
	"Joyland/types"
	"context"
	"fmt"
	"math"
)

// 等级上限，到顶后不再累积升级
const MaxPetLevel = 250

// RequiredExp 从 level-1 级升到 level 级所需经验。
// 三段曲线：1-10 线性，11-100 二次，101-250 指数；超出上限返回 0 作为封顶哨兵。
func RequiredExp(level int) int {
	switch {
	case level <= 0:
		return 0
	case level <= 10:
		return 40*level + 60
	case level <= 100:
		return int(0.8*float64(level)*float64(level) + 380)
	case level <= MaxPetLevel:
		return int(285.69 * math.Pow(1.06, float64(level)))
	default:
		return 0
	}
}

// RewardForLevel 升到 level 级的积分奖励：每 10 级一档，每档 10 分，250 分封顶
func RewardForLevel(level int) int {
	tier := (level + 9) / 10
	if tier > 25 {
		tier = 25
	}
	return tier * 10
}

type LevelService struct {
	Wallet IWalletService
	Clock  clock.Clock
}

var _ ILevelService = (*LevelService)(nil)

type ILevelService interface {
	ApplyExperienceTx(ctx context.Context, tx *dao.Tx, pet *models.Pet, gained int) (int, int, error)
}

// ApplyExperienceTx 给宠物加经验并结算升级，必须在调用方的事务内执行。
// 一次大额经验可能连跳多级，循环处理直到经验不足或触顶（RequiredExp 返回 0）。
// 每升一级通过账本发放积分，单号按 (宠物, 等级) 幂等。
// 返回最终等级和本次实际入账的积分总数。
func (l *LevelService) ApplyExperienceTx(ctx context.Context, tx *dao.Tx, pet *models.Pet, gained int) (int, int, error) {
	if gained < 0 {
		return 0, 0, ErrInvalidAmount
	}

	pet.Exp += gained
	totalPoints := 0
	leveled := false

	for {
		need := RequiredExp(pet.Level + 1)
		if need <= 0 || pet.Exp < need {
			break
		}
		pet.Exp -= need
		pet.Level++
		leveled = true

		reward := RewardForLevel(pet.Level)
		result, err := l.Wallet.CreditTx(ctx, tx, &types.WalletChangeReq{
			UserID:     pet.UserID,
			Amount:     int64(reward),
			ChangeType: models.TypePetLevelUp,
			SourceID:   fmt.Sprintf("pet-levelup-%d-%d", pet.ID, pet.Level),
			Remark:     fmt.Sprintf("宠物升级至 %d 级", pet.Level),
		})
		if err != nil {
			return 0, 0, err
		}
		if result.Applied {
			totalPoints += reward
		}
	}

	if leveled {
		now := l.Clock.Now()
		pet.LevelUpAt = &now
	}

	if err := tx.Pet.Save(ctx, pet); err != nil {
		return 0, 0, err
	}
	return pet.Level, totalPoints, nil
}
