package server

import (
	"Joyland/handler"
)

type Handlers struct {
	Point    *handler.Point
	SignIn   *handler.SignIn
	Pet      *handler.Pet
	Game     *handler.Game
	Exchange *handler.Exchange
}
