package handler

import (
	"Joyland/config"
	"Joyland/middleware"
	"Joyland/pkg/context"
	"Joyland/pkg/response"
	"Joyland/service"
	"Joyland/types"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type SignIn struct {
	Config        *config.Config
	SignInService service.ISignInService
}

func (s *SignIn) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(s.Config.Jwt.Secret))
	group := r.Group("/v1/signin")
	group.Use(authorize)
	group.GET("/status", context.Wrap(s.Status))
	group.POST("/checkin", context.Wrap(s.CheckIn))
	group.GET("/calendar", context.Wrap(s.Calendar))
	group.GET("/history", context.Wrap(s.History))
}

func (s *SignIn) Status(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	resp, err := s.SignInService.Status(c, userID)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (s *SignIn) CheckIn(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	resp, err := s.SignInService.CheckIn(c, userID)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (s *SignIn) Calendar(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		return response.NewValidation("year 参数不合法")
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		return response.NewValidation("month 参数不合法")
	}

	resp, err := s.SignInService.MonthlyCalendar(c, userID, year, time.Month(month))
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (s *SignIn) History(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	var req types.SignInHistoryReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewValidation(err.Error())
	}

	resp, err := s.SignInService.History(c, userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}
