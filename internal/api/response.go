package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mbox/internal/errcode"
)

// envelope 是与前端约定的统一响应结构：{code, data}。
type envelope struct {
	Code int `json:"code"`
	Data any `json:"data"`
}

// OK 返回 code=200 的成功响应。
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, envelope{Code: errcode.OK, Data: data})
}

// Fail 返回 data 为 null、code 与 HTTP 状态一致的失败响应。
func Fail(c *gin.Context, status int) {
	c.JSON(status, envelope{Code: status, Data: nil})
}

func BadRequest(c *gin.Context) { Fail(c, errcode.BadRequest) }
func NotFound(c *gin.Context)   { Fail(c, errcode.NotFound) }
func Internal(c *gin.Context)   { Fail(c, errcode.SystemError) }
