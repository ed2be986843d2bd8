package handler

import (
	"Joyland/config"
	"Joyland/middleware"
	"Joyland/pkg/context"
	"Joyland/pkg/response"
	"Joyland/service"
	"Joyland/types"

	"github.com/gin-gonic/gin"
)

type Game struct {
	Config      *config.Config
	GameService service.IGameService
}

func (g *Game) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(g.Config.Jwt.Secret))
	group := r.Group("/v1/game")
	group.Use(authorize)
	group.GET("/remaining", context.Wrap(g.Remaining))
	group.POST("/start", context.Wrap(g.Start))
	group.POST("/end", context.Wrap(g.End))
}

func (g *Game) Remaining(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	remaining, err := g.GameService.RemainingPlays(c, userID)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"remaining": remaining})
	return nil
}

func (g *Game) Start(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	var req types.StartGameReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewValidation(err.Error())
	}

	resp, err := g.GameService.StartGame(c, userID, req.Level)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (g *Game) End(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	var req types.EndGameReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewValidation(err.Error())
	}

	resp, err := g.GameService.EndGame(c, userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}
