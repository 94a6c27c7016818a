package content

import (
	"fmt"
	"strings"
)

// Kind 标识一种内容组件。
type Kind string

const (
	KindCard  Kind = "card"
	KindChart Kind = "chart"
	KindVideo Kind = "video"
)

// Kinds 返回全部内容类型，顺序固定，用于注册路由。
func Kinds() []Kind {
	return []Kind{KindCard, KindChart, KindVideo}
}

// Source 表示某类内容的扩展属性以哪种存储形态为准。
type Source int

const (
	// SourceColumns: 扩展属性来自独立列（图表数据来自子表）。
	SourceColumns Source = iota
	// SourceExtendInfo: 扩展属性来自 extend_info JSON 字符串。
	SourceExtendInfo
)

func (s Source) String() string {
	switch s {
	case SourceColumns:
		return "columns"
	case SourceExtendInfo:
		return "extend_info"
	default:
		return fmt.Sprintf("source(%d)", int(s))
	}
}

// ParseSource 解析配置中的数据源名称。
func ParseSource(name string) (Source, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "columns", "flat":
		return SourceColumns, nil
	case "extend_info", "extendinfo", "blob":
		return SourceExtendInfo, nil
	default:
		return 0, fmt.Errorf("unknown content source %q", name)
	}
}

// 图表扩展字段的 wire 名称。
const (
	AttrChartType = "chartType"
	AttrPeriod    = "period"
	AttrUnit      = "unit"
	AttrChartData = "chartData"
)

// Mapping 描述一类内容如何投影到统一的列表/详情结构。
type Mapping struct {
	Kind   Kind
	Source Source
	// Attributes 是 subtitle/imageUrl/badge 之外的类型专属字段（wire 名称，按输出顺序）。
	Attributes []string
	// Chart 为 true 时列表与详情额外输出图表字段。
	Chart bool
}

// Mappings 按内容类型索引映射表。
type Mappings map[Kind]Mapping

// DefaultMappings 返回默认映射：卡片、图表使用独立列，视频使用 extend_info。
func DefaultMappings() Mappings {
	return Mappings{
		KindCard: {
			Kind:       KindCard,
			Source:     SourceColumns,
			Attributes: []string{"author", "pubDate", "category"},
		},
		KindChart: {
			Kind:       KindChart,
			Source:     SourceColumns,
			Attributes: []string{AttrChartType, AttrPeriod, AttrUnit},
			Chart:      true,
		},
		KindVideo: {
			Kind:       KindVideo,
			Source:     SourceExtendInfo,
			Attributes: []string{"duration", "resolution", "author"},
		},
	}
}

// WithSource 返回替换了指定类型数据源的副本。
func (m Mappings) WithSource(kind Kind, source Source) Mappings {
	out := make(Mappings, len(m))
	for k, v := range m {
		out[k] = v
	}
	if mapping, ok := out[kind]; ok {
		mapping.Source = source
		out[kind] = mapping
	}
	return out
}
