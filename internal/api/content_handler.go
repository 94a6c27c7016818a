package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"mbox/internal/api/middleware"
	"mbox/internal/content"
	"mbox/internal/metrics"
)

// ContentHandler 负责卡片、图表、视频的列表与详情接口。
type ContentHandler struct {
	service *content.Service
}

// NewContentHandler 构造 ContentHandler。
func NewContentHandler(service *content.Service) *ContentHandler {
	return &ContentHandler{service: service}
}

type listRequest struct {
	Page *int `json:"page"`
	Size *int `json:"size"`
}

type detailRequest struct {
	ID flexibleID `json:"id"`
}

// flexibleID 兼容客户端以字符串或数字传 id。
type flexibleID string

func (f *flexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexibleID(n.String())
	return nil
}

// List 处理 GET /api/{kind}/list?page=&size=。
func (h *ContentHandler) List(kind content.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := queryInt(c, "page", content.DefaultPage)
		size := queryInt(c, "size", content.DefaultPageSize)
		h.respondList(c, kind, page, size)
	}
}

// ListByBody 处理 POST /api/{kind}/list，Body: {page, size}。
func (h *ContentHandler) ListByBody(kind content.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req listRequest
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			BadRequest(c)
			return
		}

		page, size := content.DefaultPage, content.DefaultPageSize
		if req.Page != nil {
			page = *req.Page
		}
		if req.Size != nil {
			size = *req.Size
		}
		h.respondList(c, kind, page, size)
	}
}

// Detail 处理 GET /api/{kind}/detail?id=。
func (h *ContentHandler) Detail(kind content.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.respondDetail(c, kind, c.Query("id"))
	}
}

// DetailByBody 处理 POST /api/{kind}/detail，Body: {id}。
func (h *ContentHandler) DetailByBody(kind content.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req detailRequest
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			BadRequest(c)
			return
		}
		h.respondDetail(c, kind, string(req.ID))
	}
}

func (h *ContentHandler) respondList(c *gin.Context, kind content.Kind, page, size int) {
	result, err := h.service.List(c.Request.Context(), kind, page, size)
	if err != nil {
		metrics.ObserveLookup(string(kind), "list", metrics.ResultError)
		middleware.LoggerFromContext(c).Error("list content failed",
			slog.String("kind", string(kind)),
			slog.Any("error", err),
		)
		Internal(c)
		return
	}

	metrics.ObserveLookup(string(kind), "list", metrics.ResultFound)
	OK(c, result)
}

func (h *ContentHandler) respondDetail(c *gin.Context, kind content.Kind, rawID string) {
	detail, err := h.service.Detail(c.Request.Context(), kind, rawID)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			metrics.ObserveLookup(string(kind), "detail", metrics.ResultNotFound)
			NotFound(c)
			return
		}
		metrics.ObserveLookup(string(kind), "detail", metrics.ResultError)
		middleware.LoggerFromContext(c).Error("get content detail failed",
			slog.String("kind", string(kind)),
			slog.String("id", rawID),
			slog.Any("error", err),
		)
		Internal(c)
		return
	}

	metrics.ObserveLookup(string(kind), "detail", metrics.ResultFound)
	OK(c, detail)
}

// queryInt 读取整数 query 参数，缺失或非法时使用默认值。
func queryInt(c *gin.Context, key string, fallback int) int {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
