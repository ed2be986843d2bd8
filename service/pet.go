package service

import (
	"Joyland/config"
	"Joyland/dao"
	"Joyland/models"
	"Joyland/pkg/clock"
	"Joyland/types"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// 互动类型
const (
	ActionFeed    = "feed"    // 喂食 -> 饱食度
	ActionBath    = "bath"    // 洗澡 -> 清洁度
	ActionComfort = "comfort" // 安抚 -> 心情
	ActionRest    = "rest"    // 休息 -> 体力
)

// 每次互动的恢复量
const interactGain = 10

type PetService struct {
	Config    *config.Config
	TxManager *dao.TxManager
	PetDAO    *dao.PetDAO
	Level     ILevelService
	Wallet    IWalletService
	Catalog   CosmeticCatalog
	Clock     clock.Clock
}

var _ IPetService = (*PetService)(nil)

type IPetService interface {
	GetProfile(ctx context.Context, userID uint64) (*types.PetProfile, error)
	Interact(ctx context.Context, userID uint64, action string) (*types.InteractResult, error)
	UpdateAppearance(ctx context.Context, userID uint64, req *types.UpdateAppearanceReq) (*types.UpdateAppearanceResult, error)
}

func clampStat(v int) int {
	if v < models.StatMin {
		return models.StatMin
	}
	if v > models.StatMax {
		return models.StatMax
	}
	return v
}

func (p *PetService) GetProfile(ctx context.Context, userID uint64) (*types.PetProfile, error) {
	pet, err := p.PetDAO.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoPet
		}
		return nil, err
	}
	profile := petProfile(pet)
	return &profile, nil
}

// Interact 宠物互动。
// 互动、五维更新、满状态奖励在同一个事务里完成；宠物行加行锁，
// 同一用户的并发互动串行化，满状态奖励再由账本幂等单号兜底。
func (p *PetService) Interact(ctx context.Context, userID uint64, action string) (*types.InteractResult, error) {
	var result *types.InteractResult

	err := p.TxManager.Do(ctx, func(tx *dao.Tx) error {
		pet, err := tx.Pet.GetByUserIDForUpdate(ctx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoPet
			}
			return err
		}

		// 任一维归零后宠物拒绝互动
		if pet.Exhausted() {
			return ErrPetExhausted
		}

		wasFull := pet.StatsFull()

		switch action {
		case ActionFeed:
			pet.Hunger = clampStat(pet.Hunger + interactGain)
		case ActionBath:
			pet.Cleanliness = clampStat(pet.Cleanliness + interactGain)
		case ActionComfort:
			pet.Mood = clampStat(pet.Mood + interactGain)
		case ActionRest:
			pet.Stamina = clampStat(pet.Stamina + interactGain)
		default:
			return ErrInvalidAction
		}

		// 四维全满时健康无条件回满
		if pet.StatsFull() {
			pet.Health = models.StatMax
		}

		result = &types.InteractResult{Action: action}

		// 当日首次把四维拉满才有奖励；fullstats 单号保证每人每天至多一次
		if pet.StatsFull() && !wasFull {
			day := clock.Day(p.Clock.Now())
			token := fmt.Sprintf("fullstats-%d-%s", userID, day)

			credit, err := p.Wallet.CreditTx(ctx, tx, &types.WalletChangeReq{
				UserID:     userID,
				Amount:     int64(p.Config.Reward.FullStatsBonusPoints),
				ChangeType: models.TypeFullStatsBonus,
				SourceID:   token,
				Remark:     "活力全满奖励",
			})
			if err != nil {
				return err
			}

			if credit.Applied {
				level, extraPoints, err := p.Level.ApplyExperienceTx(ctx, tx, pet, p.Config.Reward.FullStatsBonusExp)
				if err != nil {
					return err
				}
				result.Bonus = &types.FullStatsBonus{
					Points: p.Config.Reward.FullStatsBonusPoints + extraPoints,
					Exp:    p.Config.Reward.FullStatsBonusExp,
					Level:  level,
				}
			}
		}

		if err := tx.Pet.Save(ctx, pet); err != nil {
			return err
		}
		result.Pet = petProfile(pet)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateAppearance 更换皮肤/背景，按目录价格扣积分
func (p *PetService) UpdateAppearance(ctx context.Context, userID uint64, req *types.UpdateAppearanceReq) (*types.UpdateAppearanceResult, error) {
	if req.SkinCode == "" && req.BackgroundCode == "" {
		return nil, ErrNothingToDo
	}

	totalCost := 0
	if req.SkinCode != "" {
		cost, ok := p.Catalog.SkinCost(req.SkinCode)
		if !ok {
			return nil, ErrAppearanceUnavailable
		}
		totalCost += cost
	}
	if req.BackgroundCode != "" {
		cost, ok := p.Catalog.BackgroundCost(req.BackgroundCode)
		if !ok {
			return nil, ErrAppearanceUnavailable
		}
		totalCost += cost
	}

	var result *types.UpdateAppearanceResult

	err := p.TxManager.Do(ctx, func(tx *dao.Tx) error {
		pet, err := tx.Pet.GetByUserIDForUpdate(ctx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoPet
			}
			return err
		}

		balance := int64(0)
		if totalCost > 0 {
			debit, err := p.Wallet.DebitTx(ctx, tx, &types.WalletChangeReq{
				UserID:     userID,
				Amount:     int64(totalCost),
				ChangeType: models.TypeAppearance,
				Remark:     "宠物装扮消费",
			})
			if err != nil {
				return err
			}
			balance = debit.Balance
		}

		now := p.Clock.Now()
		if req.SkinCode != "" {
			pet.SkinCode = req.SkinCode
			pet.SkinChangedAt = &now
		}
		if req.BackgroundCode != "" {
			pet.BackgroundCode = req.BackgroundCode
			pet.BackgroundChangedAt = &now
		}

		if err := tx.Pet.Save(ctx, pet); err != nil {
			return err
		}

		result = &types.UpdateAppearanceResult{
			Cost:    totalCost,
			Balance: balance,
			Pet:     petProfile(pet),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func petProfile(pet *models.Pet) types.PetProfile {
	return types.PetProfile{
		ID:             pet.ID,
		Name:           pet.Name,
		Level:          pet.Level,
		Exp:            pet.Exp,
		NextLevelExp:   RequiredExp(pet.Level + 1),
		Hunger:         pet.Hunger,
		Mood:           pet.Mood,
		Stamina:        pet.Stamina,
		Cleanliness:    pet.Cleanliness,
		Health:         pet.Health,
		SkinCode:       pet.SkinCode,
		BackgroundCode: pet.BackgroundCode,
	}
}
