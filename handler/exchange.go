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

type Exchange struct {
	Config          *config.Config
	ExchangeService service.IExchangeService
}

func (e *Exchange) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(e.Config.Jwt.Secret))
	group := r.Group("/v1/exchange")
	group.Use(authorize)
	group.POST("", context.Wrap(e.Exchange))
}

func (e *Exchange) Exchange(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	var req types.ExchangeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewValidation(err.Error())
	}

	resp, err := e.ExchangeService.Exchange(c, userID, req.Cost, req.TypeCode)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}
