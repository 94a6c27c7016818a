package database

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

//go:embed fixtures/demo.json
var demoFixtures []byte

// Fixtures 描述用于初始化演示数据的内容集合。
type Fixtures struct {
	Cards  []CardFixture  `json:"cards"`
	Videos []VideoFixture `json:"videos"`
	Charts []ChartFixture `json:"charts"`
}

type baseFixture struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	ImageURL string `json:"imageUrl"`
	Badge    string `json:"badge"`
	Content  string `json:"content"`
	MediaURL string `json:"mediaUrl"`
	// ExtendInfo 可以是 JSON 对象，也可以是 JSON 字符串（按原文落库，用于构造损坏数据）。
	ExtendInfo datatypes.JSON `json:"extendInfo"`
}

type CardFixture struct {
	baseFixture
	Author   string `json:"author"`
	PubDate  string `json:"pubDate"`
	Category string `json:"category"`
}

type VideoFixture struct {
	baseFixture
	Duration   string `json:"duration"`
	Resolution string `json:"resolution"`
	Author     string `json:"author"`
}

type ChartFixture struct {
	baseFixture
	ChartType string         `json:"chartType"`
	Period    string         `json:"period"`
	Unit      string         `json:"unit"`
	Points    []PointFixture `json:"points"`
}

type PointFixture struct {
	X         string  `json:"x"`
	Y         float64 `json:"y"`
	SortOrder int     `json:"sortOrder"`
}

// LoadFixtures 从 JSON 读取演示数据。
func LoadFixtures(r io.Reader) (Fixtures, error) {
	var fixtures Fixtures
	if err := json.NewDecoder(r).Decode(&fixtures); err != nil {
		return Fixtures{}, fmt.Errorf("decode fixtures: %w", err)
	}
	return fixtures, nil
}

// DefaultFixtures 返回内置的演示数据。
func DefaultFixtures() (Fixtures, error) {
	return LoadFixtures(bytes.NewReader(demoFixtures))
}

// Seed 在一个事务中写入演示数据；reset 为 true 时先清空内容表。
func Seed(ctx context.Context, db *gorm.DB, fixtures Fixtures, reset bool) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if reset {
			for _, model := range []any{&ContentChartData{}, &ContentChart{}, &ContentVideo{}, &ContentCard{}} {
				if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
					return fmt.Errorf("reset %T: %w", model, err)
				}
			}
		}

		for _, f := range fixtures.Cards {
			row := ContentCard{
				Title:      f.Title,
				Subtitle:   f.Subtitle,
				ImageURL:   f.ImageURL,
				Badge:      f.Badge,
				Content:    f.Content,
				MediaURL:   f.MediaURL,
				Author:     f.Author,
				PubDate:    f.PubDate,
				Category:   f.Category,
				ExtendInfo: extendInfoText(f.ExtendInfo),
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("create card %q: %w", f.Title, err)
			}
		}

		for _, f := range fixtures.Videos {
			row := ContentVideo{
				Title:      f.Title,
				Subtitle:   f.Subtitle,
				ImageURL:   f.ImageURL,
				Badge:      f.Badge,
				Content:    f.Content,
				MediaURL:   f.MediaURL,
				Duration:   f.Duration,
				Resolution: f.Resolution,
				Author:     f.Author,
				ExtendInfo: extendInfoText(f.ExtendInfo),
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("create video %q: %w", f.Title, err)
			}
		}

		for _, f := range fixtures.Charts {
			row := ContentChart{
				Title:      f.Title,
				Subtitle:   f.Subtitle,
				ImageURL:   f.ImageURL,
				Badge:      f.Badge,
				Content:    f.Content,
				MediaURL:   f.MediaURL,
				ChartType:  f.ChartType,
				Period:     f.Period,
				Unit:       f.Unit,
				ExtendInfo: extendInfoText(f.ExtendInfo),
			}
			for _, p := range f.Points {
				row.Points = append(row.Points, ContentChartData{
					XLabel:    p.X,
					YValue:    p.Y,
					SortOrder: p.SortOrder,
				})
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("create chart %q: %w", f.Title, err)
			}
		}

		return nil
	})
}

// extendInfoText 把 fixture 中的 extendInfo 转为落库文本：字符串取其内容，其余保留 JSON 原文。
func extendInfoText(raw datatypes.JSON) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return s
	}
	return string(trimmed)
}
