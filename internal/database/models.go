package database

import (
	"time"

	"gorm.io/gorm"

	"mbox/internal/content"
)

// ContentCard 卡片组件：文章/卡片列表与详情。
type ContentCard struct {
	ID         uint      `gorm:"primaryKey"`
	Title      string    `gorm:"size:255;not null"`
	Subtitle   string    `gorm:"size:255"`
	ImageURL   string    `gorm:"column:image_url;size:1024"`
	Badge      string    `gorm:"size:64"`
	Content    string    `gorm:"type:text"`
	MediaURL   string    `gorm:"column:media_url;size:1024"`
	Author     string    `gorm:"size:128"`
	PubDate    string    `gorm:"column:pub_date;size:64"`
	Category   string    `gorm:"size:64"`
	ExtendInfo string    `gorm:"column:extend_info;type:text"`
	CreatedAt  time.Time `gorm:"index"`
}

func (ContentCard) TableName() string { return "content_card" }

func (m ContentCard) record() content.Record {
	return content.Record{
		ID:       uint64(m.ID),
		Title:    m.Title,
		Subtitle: m.Subtitle,
		ImageURL: m.ImageURL,
		Badge:    m.Badge,
		Content:  m.Content,
		MediaURL: m.MediaURL,
		Columns: map[string]string{
			"author":   m.Author,
			"pubDate":  m.PubDate,
			"category": m.Category,
		},
		ExtendInfo: m.ExtendInfo,
	}
}

// ContentVideo 视频组件，MediaURL 为视频地址。
type ContentVideo struct {
	ID         uint      `gorm:"primaryKey"`
	Title      string    `gorm:"size:255;not null"`
	Subtitle   string    `gorm:"size:255"`
	ImageURL   string    `gorm:"column:image_url;size:1024"`
	Badge      string    `gorm:"size:64"`
	Content    string    `gorm:"type:text"`
	MediaURL   string    `gorm:"column:media_url;size:1024"`
	Duration   string    `gorm:"size:32"`
	Resolution string    `gorm:"size:32"`
	Author     string    `gorm:"size:128"`
	ExtendInfo string    `gorm:"column:extend_info;type:text"`
	CreatedAt  time.Time `gorm:"index"`
}

func (ContentVideo) TableName() string { return "content_video" }

func (m ContentVideo) record() content.Record {
	return content.Record{
		ID:       uint64(m.ID),
		Title:    m.Title,
		Subtitle: m.Subtitle,
		ImageURL: m.ImageURL,
		Badge:    m.Badge,
		Content:  m.Content,
		MediaURL: m.MediaURL,
		Columns: map[string]string{
			"duration":   m.Duration,
			"resolution": m.Resolution,
			"author":     m.Author,
		},
		ExtendInfo: m.ExtendInfo,
	}
}

// ContentChart 图表组件主表，数据点保存在 ContentChartData。
type ContentChart struct {
	ID         uint               `gorm:"primaryKey"`
	Title      string             `gorm:"size:255;not null"`
	Subtitle   string             `gorm:"size:255"`
	ImageURL   string             `gorm:"column:image_url;size:1024"`
	Badge      string             `gorm:"size:64"`
	Content    string             `gorm:"type:text"`
	MediaURL   string             `gorm:"column:media_url;size:1024"`
	ChartType  string             `gorm:"column:chart_type;size:32"`
	Period     string             `gorm:"size:32"`
	Unit       string             `gorm:"size:32"`
	ExtendInfo string             `gorm:"column:extend_info;type:text"`
	CreatedAt  time.Time          `gorm:"index"`
	Points     []ContentChartData `gorm:"foreignKey:ChartID;constraint:OnDelete:CASCADE"`
}

func (ContentChart) TableName() string { return "content_chart" }

func (m ContentChart) record() content.Record {
	return content.Record{
		ID:       uint64(m.ID),
		Title:    m.Title,
		Subtitle: m.Subtitle,
		ImageURL: m.ImageURL,
		Badge:    m.Badge,
		Content:  m.Content,
		MediaURL: m.MediaURL,
		Columns: map[string]string{
			content.AttrChartType: m.ChartType,
			content.AttrPeriod:    m.Period,
			content.AttrUnit:      m.Unit,
		},
		ExtendInfo: m.ExtendInfo,
	}
}

// ContentChartData 图表数据明细，按 SortOrder 升序展示。
type ContentChartData struct {
	ID        uint    `gorm:"primaryKey"`
	ChartID   uint    `gorm:"index:idx_chart_sort,priority:1;not null"`
	XLabel    string  `gorm:"column:x_label;size:64"`
	YValue    float64 `gorm:"column:y_value"`
	SortOrder int     `gorm:"column:sort_order;index:idx_chart_sort,priority:2"`
}

func (ContentChartData) TableName() string { return "content_chart_data" }

// AutoMigrate 创建内容相关的表。
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&ContentCard{}, &ContentVideo{}, &ContentChart{}, &ContentChartData{})
}
