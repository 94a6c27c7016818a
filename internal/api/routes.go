package api

import (
	"github.com/gin-gonic/gin"

	"mbox/internal/content"
)

// RegisterRoutes 为每种内容类型注册 /api/{kind}/list 与 /api/{kind}/detail。
// 额外的中间件（如限流）只作用于内容接口。
func RegisterRoutes(router *gin.Engine, service *content.Service, extra ...gin.HandlerFunc) {
	handler := NewContentHandler(service)

	apiGroup := router.Group("/api")
	apiGroup.Use(extra...)
	for _, kind := range content.Kinds() {
		kindGroup := apiGroup.Group("/" + string(kind))
		{
			kindGroup.GET("/list", handler.List(kind))
			kindGroup.POST("/list", handler.ListByBody(kind))
			kindGroup.GET("/detail", handler.Detail(kind))
			kindGroup.POST("/detail", handler.DetailByBody(kind))
		}
	}
}
