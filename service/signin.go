package service

import (
	"Joyland/config"
	"Joyland/dao"
	"Joyland/dao/cache"
	"Joyland/models"
	"Joyland/pkg/clock"
	"Joyland/types"
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type SignInService struct {
	Config    *config.Config
	TxManager *dao.TxManager
	SignInDAO *dao.SignInDAO
	Wallet    IWalletService
	Level     ILevelService
	Issuer    CouponIssuer
	Cache     *cache.SignInStorage
	Clock     clock.Clock
}

var _ ISignInService = (*SignInService)(nil)

type ISignInService interface {
	Status(ctx context.Context, userID uint64) (*types.SignInStatus, error)
	CheckIn(ctx context.Context, userID uint64) (*types.CheckInResult, error)
	MonthlyCalendar(ctx context.Context, userID uint64, year int, month time.Month) (*types.SignInCalendar, error)
	History(ctx context.Context, userID uint64, req *types.SignInHistoryReq) (*types.SignInHistory, error)
}

// walkStreak 对倒序去重的签到日列表做连签统计。
// 返回从 anchor 起往前数的连签长度，以及历史最长连签。
// 日期链在哪天断开，连签就在哪天重新起算。
func walkStreak(days []string, anchor string) (anchored, longest int) {
	expected := anchor
	run := 0
	anchored = -1

	for _, d := range days {
		if d > expected {
			// 晚于锚点的日期不参与连签（防御，正常数据不会出现）
			continue
		}
		if d != expected {
			// 链断开，之前的一段结算进最长值
			if anchored < 0 {
				anchored = run
			}
			if run > longest {
				longest = run
			}
			run = 0
		}
		run++
		expected = clock.AddDays(d, -1)
	}

	if anchored < 0 {
		anchored = run
	}
	if run > longest {
		longest = run
	}
	return anchored, longest
}

// Status 签到页状态聚合，带当日缓存
func (s *SignInService) Status(ctx context.Context, userID uint64) (*types.SignInStatus, error) {
	now := s.Clock.Now()

	if s.Cache != nil {
		var cached types.SignInStatus
		if s.Cache.Get(ctx, userID, now, &cached) {
			return &cached, nil
		}
	}

	status, err := s.buildStatus(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		s.Cache.Set(ctx, userID, now, status)
	}
	return status, nil
}

func (s *SignInService) buildStatus(ctx context.Context, userID uint64, now time.Time) (*types.SignInStatus, error) {
	days, err := s.SignInDAO.ListDays(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := clock.Day(now)
	signedToday := len(days) > 0 && days[0] == today

	anchor := today
	if !signedToday {
		anchor = clock.AddDays(today, -1)
	}
	anchored, longest := walkStreak(days, anchor)

	// 断签后页面展示归零，直到下次签到
	current := 0
	if signedToday {
		current = anchored
	}

	// 已签展示今日拿到的档位，未签展示此刻签到能拿的档位
	projectedDay := anchored
	if !signedToday {
		projectedDay = anchored + 1
	}

	status := &types.SignInStatus{
		SignedToday:     signedToday,
		ConsecutiveDays: current,
		LongestStreak:   longest,
		TotalDays:       len(days),
	}

	rule, err := s.SignInDAO.GetRule(ctx, projectedDay)
	if err == nil {
		status.NextReward = &types.SignInReward{
			Day:        rule.Day,
			Points:     rule.Points,
			Exp:        rule.Exp,
			CouponType: rule.CouponType,
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return status, nil
}

// CheckIn 每日签到。
// 记录插入、积分入账、宠物经验在同一个事务里完成；
// (user, sign_day) 唯一键在并发双签时保证只有一方成立。
func (s *SignInService) CheckIn(ctx context.Context, userID uint64) (*types.CheckInResult, error) {
	now := s.Clock.Now()
	today := clock.Day(now)

	var result *types.CheckInResult

	err := s.TxManager.Do(ctx, func(tx *dao.Tx) error {
		days, err := tx.SignIn.ListDays(ctx, userID)
		if err != nil {
			return err
		}
		if len(days) > 0 && days[0] == today {
			return ErrAlreadySignedIn
		}

		// 以昨天为锚点算出既有连签，今天签到即第 anchored+1 天
		anchored, _ := walkStreak(days, clock.AddDays(today, -1))
		dayNum := anchored + 1

		rule, err := tx.SignIn.GetRule(ctx, dayNum)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoRuleForDay
			}
			return err
		}

		couponCode := ""
		if rule.CouponType != "" && s.Issuer != nil {
			couponCode, err = s.Issuer.IssueCoupon(ctx, userID, rule.CouponType)
			if err != nil {
				return err
			}
		}

		record := &models.SignInRecord{
			UserID:     userID,
			SignDay:    today,
			SignedAt:   now,
			Points:     rule.Points,
			Exp:        rule.Exp,
			CouponCode: couponCode,
		}
		if err := tx.SignIn.Create(ctx, record); err != nil {
			// 并发双签：后到的一方撞唯一键，按已签到处理
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadySignedIn
			}
			return err
		}

		if rule.Points > 0 {
			_, err = s.Wallet.CreditTx(ctx, tx, &types.WalletChangeReq{
				UserID:     userID,
				Amount:     int64(rule.Points),
				ChangeType: models.TypeSignIn,
				SourceID:   fmt.Sprintf("signin-%d-%s", userID, today),
				Remark:     fmt.Sprintf("连续签到第 %d 天", dayNum),
			})
			if err != nil {
				return err
			}
		}

		level := 0
		if rule.Exp > 0 {
			pet, err := tx.Pet.GetByUserIDForUpdate(ctx, userID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrNoPet
				}
				return err
			}
			level, _, err = s.Level.ApplyExperienceTx(ctx, tx, pet, rule.Exp)
			if err != nil {
				return err
			}
		}

		result = &types.CheckInResult{
			ConsecutiveDays: dayNum,
			Points:          rule.Points,
			Exp:             rule.Exp,
			CouponCode:      couponCode,
			PetLevel:        level,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		s.Cache.Del(ctx, userID, now)
	}
	return result, nil
}

// MonthlyCalendar 某月签到日历
func (s *SignInService) MonthlyCalendar(ctx context.Context, userID uint64, year int, month time.Month) (*types.SignInCalendar, error) {
	if year < 2000 || month < time.January || month > time.December {
		return nil, ErrInvalidPage
	}

	start, end := clock.MonthWindow(year, month)
	records, err := s.SignInDAO.ListWindow(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	calendar := &types.SignInCalendar{
		Year:  year,
		Month: int(month),
		Days:  make([]string, 0, len(records)),
	}
	for _, r := range records {
		calendar.Days = append(calendar.Days, r.SignDay)
	}
	return calendar, nil
}

// History 签到历史分页
func (s *SignInService) History(ctx context.Context, userID uint64, req *types.SignInHistoryReq) (*types.SignInHistory, error) {
	page := req.Page
	if page <= 0 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 10
	}
	if pageSize > 100 {
		pageSize = 100
	}

	records, total, err := s.SignInDAO.ListPaged(ctx, userID, page, pageSize, req.FromDay, req.ToDay)
	if err != nil {
		return nil, err
	}

	history := &types.SignInHistory{
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		Records:  make([]types.SignInRecordItem, 0, len(records)),
	}
	for _, r := range records {
		history.Records = append(history.Records, types.SignInRecordItem{
			Day:        r.SignDay,
			SignedAt:   r.SignedAt.In(clock.Local).Format("2006-01-02 15:04:05"),
			Points:     r.Points,
			Exp:        r.Exp,
			CouponCode: r.CouponCode,
		})
	}
	return history, nil
}
