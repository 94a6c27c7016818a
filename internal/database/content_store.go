package database

import (
	"context"
	"errors"
	"fmt"
	"math"

	"gorm.io/gorm"

	"mbox/internal/content"
)

// ContentStore 基于 GORM 实现 content.Store。
type ContentStore struct {
	db *gorm.DB
}

// NewContentStore 构造 ContentStore。
func NewContentStore(db *gorm.DB) *ContentStore {
	return &ContentStore{db: db}
}

type recordModel interface {
	ContentCard | ContentVideo | ContentChart
	record() content.Record
}

// List 按创建时间倒序分页查询，page/size 需已由调用方归一化。
func (s *ContentStore) List(ctx context.Context, kind content.Kind, page, size int) ([]content.Record, int64, error) {
	switch kind {
	case content.KindCard:
		return listPage[ContentCard](ctx, s.db, page, size)
	case content.KindVideo:
		return listPage[ContentVideo](ctx, s.db, page, size)
	case content.KindChart:
		return listPage[ContentChart](ctx, s.db, page, size)
	default:
		return nil, 0, fmt.Errorf("%w: %q", content.ErrUnknownKind, kind)
	}
}

// Find 按主键查询，不存在时返回 content.ErrNotFound。
func (s *ContentStore) Find(ctx context.Context, kind content.Kind, id uint64) (content.Record, error) {
	switch kind {
	case content.KindCard:
		return findOne[ContentCard](ctx, s.db, id)
	case content.KindVideo:
		return findOne[ContentVideo](ctx, s.db, id)
	case content.KindChart:
		return findOne[ContentChart](ctx, s.db, id)
	default:
		return content.Record{}, fmt.Errorf("%w: %q", content.ErrUnknownKind, kind)
	}
}

// Series 一次性读取多个图表的数据点，每个图表内按 sort_order 升序。
func (s *ContentStore) Series(ctx context.Context, chartIDs []uint64) (map[uint64][]content.SeriesPoint, error) {
	out := make(map[uint64][]content.SeriesPoint, len(chartIDs))
	if len(chartIDs) == 0 {
		return out, nil
	}

	var rows []ContentChartData
	if err := s.db.WithContext(ctx).
		Where("chart_id IN ?", chartIDs).
		Order("chart_id ASC").
		Order("sort_order ASC").
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("query chart data: %w", err)
	}

	for _, row := range rows {
		chartID := uint64(row.ChartID)
		out[chartID] = append(out[chartID], content.SeriesPoint{
			Label:     row.XLabel,
			Value:     row.YValue,
			SortOrder: row.SortOrder,
		})
	}
	return out, nil
}

func listPage[T recordModel](ctx context.Context, db *gorm.DB, page, size int) ([]content.Record, int64, error) {
	var total int64
	if err := db.WithContext(ctx).Model(new(T)).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count records: %w", err)
	}
	// 偏移量溢出 int 时必然越过最后一页。
	if page-1 > math.MaxInt/size {
		return []content.Record{}, total, nil
	}

	var rows []T
	if err := db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Offset((page - 1) * size).
		Limit(size).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("query records: %w", err)
	}

	records := make([]content.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.record())
	}
	return records, total, nil
}

func findOne[T recordModel](ctx context.Context, db *gorm.DB, id uint64) (content.Record, error) {
	var row T
	if err := db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return content.Record{}, content.ErrNotFound
		}
		return content.Record{}, fmt.Errorf("query record %d: %w", id, err)
	}
	return row.record(), nil
}
