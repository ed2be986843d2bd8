package dao

import (
	"Joyland/models"
	"context"
	"time"

	"gorm.io/gorm"
)

type SignInDAO struct {
	Repo[models.SignInRecord]
}

func NewSignInDAO(db *gorm.DB) *SignInDAO {
	return &SignInDAO{
		Repo: NewRepo[models.SignInRecord](db),
	}
}

// HasDay 某本地日是否已签到
func (s *SignInDAO) HasDay(ctx context.Context, userID uint64, day string) (bool, error) {
	return s.IsExist(ctx, "user_id = ? AND sign_day = ?", userID, day)
}

// ListDays 全部签到日，按日期倒序，供连签计算
func (s *SignInDAO) ListDays(ctx context.Context, userID uint64) ([]string, error) {
	var days []string
	err := s.Db.WithContext(ctx).Model(&models.SignInRecord{}).
		Where("user_id = ?", userID).
		Order("sign_day DESC").
		Pluck("sign_day", &days).Error
	return days, err
}

func (s *SignInDAO) CountByUser(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := s.Db.WithContext(ctx).Model(&models.SignInRecord{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// ListWindow 时间区间内的签到记录，月历用
func (s *SignInDAO) ListWindow(ctx context.Context, userID uint64, start, end time.Time) ([]models.SignInRecord, error) {
	var records []models.SignInRecord
	err := s.Db.WithContext(ctx).
		Where("user_id = ? AND signed_at >= ? AND signed_at < ?", userID, start, end).
		Order("sign_day ASC").
		Find(&records).Error
	return records, err
}

// ListPaged 历史记录分页，可按日期范围过滤
func (s *SignInDAO) ListPaged(ctx context.Context, userID uint64, page, pageSize int, fromDay, toDay string) ([]models.SignInRecord, int64, error) {
	query := s.Db.WithContext(ctx).Model(&models.SignInRecord{}).Where("user_id = ?", userID)
	if fromDay != "" {
		query = query.Where("sign_day >= ?", fromDay)
	}
	if toDay != "" {
		query = query.Where("sign_day <= ?", toDay)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []models.SignInRecord
	err := query.Order("sign_day DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&records).Error
	return records, total, err
}

// GetRule 连续第 day 天对应的奖励规则
func (s *SignInDAO) GetRule(ctx context.Context, day int) (*models.SignInRule, error) {
	var rule models.SignInRule
	err := s.Db.WithContext(ctx).Where("day = ?", day).First(&rule).Error
	if err != nil {
		return nil, err
	}
	return &rule, nil
}
