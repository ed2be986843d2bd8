package dao

import (
	"Joyland/models"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PetDAO struct {
	Repo[models.Pet]
}

func NewPetDAO(db *gorm.DB) *PetDAO {
	return &PetDAO{
		Repo: NewRepo[models.Pet](db),
	}
}

func (p *PetDAO) GetByUserID(ctx context.Context, userID uint64) (*models.Pet, error) {
	return p.FindByWhere(ctx, "user_id = ?", userID)
}

// GetByUserIDForUpdate 行锁读取，互动/结算事务内使用，避免并发互动互相覆盖
func (p *PetDAO) GetByUserIDForUpdate(ctx context.Context, userID uint64) (*models.Pet, error) {
	var pet models.Pet
	err := p.Db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		First(&pet).Error
	if err != nil {
		return nil, err
	}
	return &pet, nil
}

func (p *PetDAO) Save(ctx context.Context, pet *models.Pet) error {
	return p.Db.WithContext(ctx).Save(pet).Error
}
