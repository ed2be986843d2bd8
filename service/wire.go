package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(WalletService), "*"),
	wire.Bind(new(IWalletService), new(*WalletService)),

	wire.Struct(new(LevelService), "*"),
	wire.Bind(new(ILevelService), new(*LevelService)),

	wire.Struct(new(ExchangeService), "*"),
	wire.Bind(new(IExchangeService), new(*ExchangeService)),
	wire.Bind(new(CouponIssuer), new(*ExchangeService)),

	wire.Struct(new(ConfigCatalog), "*"),
	wire.Bind(new(CosmeticCatalog), new(*ConfigCatalog)),

	wire.Struct(new(PetService), "*"),
	wire.Bind(new(IPetService), new(*PetService)),

	wire.Struct(new(SignInService), "*"),
	wire.Bind(new(ISignInService), new(*SignInService)),

	wire.Struct(new(GameService), "*"),
	wire.Bind(new(IGameService), new(*GameService)),
)
