//go:build wireinject
// +build wireinject

package main

import (
	"Joyland/config"
	"Joyland/dao"
	"Joyland/dao/cache"
	"Joyland/handler"
	"Joyland/pkg/client"
	"Joyland/pkg/clock"
	"Joyland/pkg/database"
	"Joyland/pkg/server"
	"Joyland/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(
		database.NewDB,
		client.NewRedisClient,
		clock.NewSystemClock,
		server.NewGinEngine,

		dao.ProviderSet,
		cache.ProviderSet,
		service.ProviderSet,

		wire.Struct(new(handler.Point), "*"),
		wire.Struct(new(handler.SignIn), "*"),
		wire.Struct(new(handler.Pet), "*"),
		wire.Struct(new(handler.Game), "*"),
		wire.Struct(new(handler.Exchange), "*"),

		wire.Struct(new(server.Handlers), "*"),
		wire.Struct(new(server.AppProvider), "*"),
	)
	return nil
}
