package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 0,
		Msg:  "ok",
		Data: data,
	})
}

func Fail(c *gin.Context, code int, msg string) {
	c.JSON(http.StatusOK, Response{
		Code: code,
		Msg:  msg,
	})
}

// 业务错误码分段：400xx 参数、404xx 未找到、409xx 状态冲突
const (
	CodeValidation        = 40001
	CodeNotFound          = 40401
	CodeConflict          = 40901
	CodeInsufficientFunds = 40902
)

func NewValidation(msg string) *BizError {
	return NewError(CodeValidation, msg)
}

func NewNotFound(msg string) *BizError {
	return NewError(CodeNotFound, msg)
}

func NewConflict(msg string) *BizError {
	return NewError(CodeConflict, msg)
}

func NewInsufficientFunds(msg string) *BizError {
	return NewError(CodeInsufficientFunds, msg)
}
