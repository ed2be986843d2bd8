package dao

import (
	"Joyland/models"
	"context"
	"time"

	"gorm.io/gorm"
)

type GameDAO struct {
	Repo[models.GameSession]
}

func NewGameDAO(db *gorm.DB) *GameDAO {
	return &GameDAO{
		Repo: NewRepo[models.GameSession](db),
	}
}

// GetInProgress 查找该用户指定的未结算对局
func (g *GameDAO) GetInProgress(ctx context.Context, userID uint64, sessionID int64) (*models.GameSession, error) {
	var session models.GameSession
	err := g.Db.WithContext(ctx).
		Where("id = ? AND user_id = ? AND result = ?", sessionID, userID, models.GameInProgress).
		First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// CountStarted 统计区间内非中途放弃的开局数，配额用。
// 放弃的对局不占当日配额。
func (g *GameDAO) CountStarted(ctx context.Context, userID uint64, start, end time.Time) (int64, error) {
	var count int64
	err := g.Db.WithContext(ctx).Model(&models.GameSession{}).
		Where("user_id = ? AND started_at >= ? AND started_at < ? AND aborted = ?", userID, start, end, false).
		Count(&count).Error
	return count, err
}

func (g *GameDAO) Save(ctx context.Context, session *models.GameSession) error {
	return g.Db.WithContext(ctx).Save(session).Error
}
