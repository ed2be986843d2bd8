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

type Point struct {
	Config        *config.Config
	WalletService service.IWalletService
}

func (p *Point) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(p.Config.Jwt.Secret))
	pointGroup := r.Group("/v1/points")
	pointGroup.Use(authorize)
	pointGroup.GET("/balance", context.Wrap(p.Balance))
	pointGroup.GET("/records", context.Wrap(p.GetRecords))
}

func (p *Point) Balance(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	resp, err := p.WalletService.GetAccountDashboard(c, userID)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (p *Point) GetRecords(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	var req types.ListWalletRecordsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewValidation(err.Error())
	}

	resp, err := p.WalletService.ListRecords(c, userID, req.Action, req.Cursor, req.Limit)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}
