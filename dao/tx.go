package dao

import (
	"context"

	"gorm.io/gorm"
)

// Tx 一次事务内可见的全部 DAO。
// 账本、宠物、签到、对局的多实体写入都要经由同一个 Tx，保证要么全部落库要么全部回滚。
type Tx struct {
	Users  *Users
	Wallet *Wallet
	Pet    *PetDAO
	SignIn *SignInDAO
	Game   *GameDAO
}

func newTx(db *gorm.DB) *Tx {
	return &Tx{
		Users:  NewUsers(db),
		Wallet: NewWallet(db),
		Pet:    NewPetDAO(db),
		SignIn: NewSignInDAO(db),
		Game:   NewGameDAO(db),
	}
}

// TxManager 各引擎共用的事务入口
type TxManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// Do 在一个数据库事务中执行 fn，fn 返回 error 即整体回滚
func (m *TxManager) Do(ctx context.Context, fn func(tx *Tx) error) error {
	return m.db.WithContext(ctx).Transaction(func(dbTx *gorm.DB) error {
		return fn(newTx(dbTx))
	})
}
