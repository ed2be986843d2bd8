//go:build wireinject

package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewTxManager,
	NewUsers,
	NewWallet,
	NewPetDAO,
	NewSignInDAO,
	NewGameDAO,
)
