package service

import (
	"Joyland/config"
	"Joyland/dao"
	"Joyland/models"
	"Joyland/pkg/clock"
	"Joyland/pkg/snowflake"
	"Joyland/types"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// 关卡 -> 难度参数，固定配表
var difficultyTable = map[int]models.DifficultyParams{
	1: {MonsterCount: 3, SpeedFactor: 1.0},
	2: {MonsterCount: 5, SpeedFactor: 1.2},
	3: {MonsterCount: 7, SpeedFactor: 1.5},
}

// 结算时的五维变化量
var (
	winDeltas  = types.VitalityDeltas{Hunger: -20, Mood: 30, Stamina: -20, Cleanliness: -20}
	loseDeltas = types.VitalityDeltas{Hunger: -20, Mood: -30, Stamina: -20, Cleanliness: -20}
)

type GameService struct {
	Config    *config.Config
	TxManager *dao.TxManager
	GameDAO   *dao.GameDAO
	UserDAO   *dao.Users
	PetDAO    *dao.PetDAO
	Wallet    IWalletService
	Level     ILevelService
	Clock     clock.Clock
}

var _ IGameService = (*GameService)(nil)

type IGameService interface {
	RemainingPlays(ctx context.Context, userID uint64) (int, error)
	StartGame(ctx context.Context, userID uint64, level int) (*types.StartGameResult, error)
	EndGame(ctx context.Context, userID uint64, req *types.EndGameReq) (*types.EndGameResult, error)
}

// RemainingPlays 今日剩余可玩次数，中途放弃的对局不计
func (g *GameService) RemainingPlays(ctx context.Context, userID uint64) (int, error) {
	start, end := clock.DayWindow(g.Clock.Now())
	count, err := g.GameDAO.CountStarted(ctx, userID, start, end)
	if err != nil {
		return 0, err
	}
	remaining := g.Config.Reward.DailyPlayLimit - int(count)
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

// StartGame 开局：校验账号、宠物、当日配额后落一条进行中的对局
func (g *GameService) StartGame(ctx context.Context, userID uint64, level int) (*types.StartGameResult, error) {
	params, ok := difficultyTable[level]
	if !ok {
		return nil, ErrInvalidLevel
	}

	var result *types.StartGameResult

	err := g.TxManager.Do(ctx, func(tx *dao.Tx) error {
		user, err := tx.Users.GetByID(ctx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserUnavailable
			}
			return err
		}
		if !user.Available() {
			return ErrUserUnavailable
		}

		pet, err := tx.Pet.GetByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoPet
			}
			return err
		}

		now := g.Clock.Now()
		start, end := clock.DayWindow(now)
		count, err := tx.Game.CountStarted(ctx, userID, start, end)
		if err != nil {
			return err
		}
		if int(count) >= g.Config.Reward.DailyPlayLimit {
			return ErrQuotaExhausted
		}

		raw, err := json.Marshal(params)
		if err != nil {
			return err
		}

		session := &models.GameSession{
			ID:        snowflake.GenID(),
			UserID:    userID,
			PetID:     pet.ID,
			Level:     level,
			Params:    datatypes.JSON(raw),
			Result:    models.GameInProgress,
			StartedAt: now,
		}
		if err := tx.Game.Create(ctx, session); err != nil {
			return err
		}

		result = &types.StartGameResult{
			SessionID:    session.ID,
			Level:        level,
			MonsterCount: params.MonsterCount,
			SpeedFactor:  params.SpeedFactor,
			Remaining:    g.Config.Reward.DailyPlayLimit - int(count) - 1,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// EndGame 结算对局，恰好一次。
// 胜局发放经验和积分，单号按对局幂等；五维变化量只落在对局记录上。
func (g *GameService) EndGame(ctx context.Context, userID uint64, req *types.EndGameReq) (*types.EndGameResult, error) {
	if req.Result != models.GameWin && req.Result != models.GameLose && req.Result != models.GameAbort {
		return nil, ErrInvalidResult
	}
	if req.Exp < 0 || req.Points < 0 {
		return nil, ErrInvalidAmount
	}

	var result *types.EndGameResult

	err := g.TxManager.Do(ctx, func(tx *dao.Tx) error {
		session, err := tx.Game.GetInProgress(ctx, userID, req.SessionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoSession
			}
			return err
		}

		now := g.Clock.Now()
		session.EndedAt = &now
		session.Result = req.Result
		session.Aborted = req.Result == models.GameAbort

		deltas := loseDeltas
		if req.Result == models.GameWin {
			deltas = winDeltas
		}
		session.HungerDelta = deltas.Hunger
		session.MoodDelta = deltas.Mood
		session.StaminaDelta = deltas.Stamina
		session.CleanlinessDelta = deltas.Cleanliness

		result = &types.EndGameResult{Deltas: deltas}

		if req.Result == models.GameWin {
			session.Exp = req.Exp
			session.Points = req.Points

			if req.Points > 0 {
				_, err = g.Wallet.CreditTx(ctx, tx, &types.WalletChangeReq{
					UserID:     userID,
					Amount:     int64(req.Points),
					ChangeType: models.TypeGameReward,
					SourceID:   fmt.Sprintf("game-%d", session.ID),
					Remark:     fmt.Sprintf("通关第 %d 关", session.Level),
				})
				if err != nil {
					return err
				}
			}

			if req.Exp > 0 {
				pet, err := tx.Pet.GetByUserIDForUpdate(ctx, userID)
				if err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return ErrNoPet
					}
					return err
				}
				level, bonus, err := g.Level.ApplyExperienceTx(ctx, tx, pet, req.Exp)
				if err != nil {
					return err
				}
				result.PetLevel = level
				result.LevelUpPoints = bonus
			}

			result.Points = req.Points
			result.Exp = req.Exp
		}

		return tx.Game.Save(ctx, session)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
