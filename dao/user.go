package dao

import (
	"Joyland/models"
	"context"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.Users]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.Users](db),
	}
}

func (u *Users) GetByID(ctx context.Context, userID uint64) (*models.Users, error) {
	return u.FindByWhere(ctx, "id = ?", userID)
}
