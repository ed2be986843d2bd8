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

type Pet struct {
	Config     *config.Config
	PetService service.IPetService
}

func (p *Pet) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(p.Config.Jwt.Secret))
	group := r.Group("/v1/pet")
	group.Use(authorize)
	group.GET("/profile", context.Wrap(p.Profile))
	group.POST("/interact", context.Wrap(p.Interact))
	group.POST("/appearance", context.Wrap(p.Appearance))
}

func (p *Pet) Profile(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	resp, err := p.PetService.GetProfile(c, userID)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (p *Pet) Interact(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	var req types.InteractReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewValidation(err.Error())
	}

	resp, err := p.PetService.Interact(c, userID, req.Action)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (p *Pet) Appearance(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	var req types.UpdateAppearanceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewValidation(err.Error())
	}

	resp, err := p.PetService.UpdateAppearance(c, userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}
