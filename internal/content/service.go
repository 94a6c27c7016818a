package content

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
)

var (
	// ErrNotFound 表示 id 无法解析或记录不存在，两者对调用方不做区分。
	ErrNotFound = errors.New("content not found")
	// ErrUnknownKind 表示未注册的内容类型。
	ErrUnknownKind = errors.New("unknown content kind")
)

// Store 是查询门面，由持久化层实现。
type Store interface {
	List(ctx context.Context, kind Kind, page, size int) ([]Record, int64, error)
	Find(ctx context.Context, kind Kind, id uint64) (Record, error)
	Series(ctx context.Context, chartIDs []uint64) (map[uint64][]SeriesPoint, error)
}

// URLSigner 将对象存储中的 key 转换为可访问的 URL。
type URLSigner interface {
	SignURL(ctx context.Context, objectKey string) (string, error)
}

// Service 串联分页闸门、查询门面与投影器。
type Service struct {
	store      Store
	projectors map[Kind]*Projector
	signer     URLSigner
	logger     *slog.Logger
}

// Option 配置 Service。
type Option func(*Service)

// WithURLSigner 启用媒体地址签名。
func WithURLSigner(signer URLSigner) Option {
	return func(s *Service) { s.signer = signer }
}

// WithLogger 设置日志实例。
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService 构造内容服务。
func NewService(store Store, mappings Mappings, opts ...Option) *Service {
	s := &Service{
		store:      store,
		projectors: make(map[Kind]*Projector, len(mappings)),
		logger:     slog.Default(),
	}
	for kind, mapping := range mappings {
		s.projectors[kind] = NewProjector(mapping)
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List 返回指定类型的一页列表。
func (s *Service) List(ctx context.Context, kind Kind, page, size int) (PageResult, error) {
	projector, ok := s.projectors[kind]
	if !ok {
		return PageResult{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	page, size = ClampPage(page, size)
	records, total, err := s.store.List(ctx, kind, page, size)
	if err != nil {
		return PageResult{}, fmt.Errorf("list %s: %w", kind, err)
	}

	if projector.NeedsSeries() && len(records) > 0 {
		if err := s.attachSeries(ctx, records); err != nil {
			return PageResult{}, err
		}
	}

	items := make([]ListItem, 0, len(records))
	for _, rec := range records {
		item := projector.ListItem(rec)
		item.ImageURL = s.signMedia(ctx, item.ImageURL)
		items = append(items, item)
	}

	return PageResult{
		List:  items,
		Total: total,
		Page:  page,
		Size:  size,
	}, nil
}

// Detail 返回指定 id 的详情；无法解析的 id 与不存在的记录都返回 ErrNotFound。
func (s *Service) Detail(ctx context.Context, kind Kind, rawID string) (DetailItem, error) {
	projector, ok := s.projectors[kind]
	if !ok {
		return DetailItem{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	id, ok := ResolveID(rawID)
	if !ok {
		return DetailItem{}, ErrNotFound
	}

	rec, err := s.store.Find(ctx, kind, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return DetailItem{}, ErrNotFound
		}
		return DetailItem{}, fmt.Errorf("find %s %d: %w", kind, id, err)
	}

	if projector.NeedsSeries() {
		records := []Record{rec}
		if err := s.attachSeries(ctx, records); err != nil {
			return DetailItem{}, err
		}
		rec = records[0]
	}

	detail := projector.DetailItem(rec)
	detail.MediaURL = s.signMedia(ctx, detail.MediaURL)
	return detail, nil
}

func (s *Service) attachSeries(ctx context.Context, records []Record) error {
	ids := make([]uint64, 0, len(records))
	for _, rec := range records {
		ids = append(ids, rec.ID)
	}

	series, err := s.store.Series(ctx, ids)
	if err != nil {
		return fmt.Errorf("load chart series: %w", err)
	}
	for i := range records {
		records[i].Series = series[records[i].ID]
	}
	return nil
}

// signMedia 只对裸对象 key 签名；签名失败保留原值。
func (s *Service) signMedia(ctx context.Context, value string) string {
	if s.signer == nil || !isObjectKey(value) {
		return value
	}
	signed, err := s.signer.SignURL(ctx, value)
	if err != nil {
		s.logger.Warn("sign media url failed",
			slog.String("object_key", value),
			slog.Any("error", err),
		)
		return value
	}
	return signed
}

func isObjectKey(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" || strings.HasPrefix(value, "/") {
		return false
	}
	u, err := url.Parse(value)
	if err != nil {
		return false
	}
	return u.Scheme == "" && u.Host == ""
}
