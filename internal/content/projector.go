package content

import (
	"sort"
	"strconv"
)

// Projector 根据映射表把 Record 投影为列表项与详情。
type Projector struct {
	mapping Mapping
}

// NewProjector 构造指定映射的投影器。
func NewProjector(mapping Mapping) *Projector {
	return &Projector{mapping: mapping}
}

// Mapping 返回投影器使用的映射。
func (p *Projector) Mapping() Mapping {
	return p.mapping
}

// NeedsSeries 表示该类型是否需要从子表读取图表数据。
func (p *Projector) NeedsSeries() bool {
	return p.mapping.Chart && p.mapping.Source == SourceColumns
}

// ListItem 生成列表项。subtitle/imageUrl/badge 在两种数据源下都来自独立列。
func (p *Projector) ListItem(rec Record) ListItem {
	item := ListItem{
		ID:       formatID(rec.ID),
		Title:    rec.Title,
		Subtitle: rec.Subtitle,
		ImageURL: rec.ImageURL,
		Badge:    rec.Badge,
	}
	if p.mapping.Chart {
		item.ChartFields = p.chartFields(rec)
	}
	return item
}

// DetailItem 生成详情。
func (p *Projector) DetailItem(rec Record) DetailItem {
	detail := DetailItem{
		ID:       formatID(rec.ID),
		Title:    rec.Title,
		Content:  rec.Content,
		MediaURL: rec.MediaURL,
	}

	switch p.mapping.Source {
	case SourceExtendInfo:
		detail.ExtendInfo = DecodeTyped(rec.ExtendInfo)
	default:
		detail.ExtendInfo = p.columnBag(rec)
	}

	if p.mapping.Chart {
		detail.ChartSeries = &ChartSeries{ChartData: p.chartFields(rec).ChartData}
	}
	return detail
}

func (p *Projector) columnBag(rec Record) map[string]string {
	bag := make(map[string]string, len(p.mapping.Attributes)+3)
	putNonEmpty(bag, "subtitle", rec.Subtitle)
	putNonEmpty(bag, "imageUrl", rec.ImageURL)
	putNonEmpty(bag, "badge", rec.Badge)
	for _, attr := range p.mapping.Attributes {
		putNonEmpty(bag, attr, rec.Columns[attr])
	}
	return bag
}

func (p *Projector) chartFields(rec Record) *ChartFields {
	if p.mapping.Source == SourceExtendInfo {
		raw := DecodeRaw(rec.ExtendInfo)
		fields := &ChartFields{ChartData: coerceChartData(raw[AttrChartData])}
		fields.ChartType, _ = scalarString(raw[AttrChartType])
		fields.Period, _ = scalarString(raw[AttrPeriod])
		fields.Unit, _ = scalarString(raw[AttrUnit])
		return fields
	}

	return &ChartFields{
		ChartType: rec.Columns[AttrChartType],
		Period:    rec.Columns[AttrPeriod],
		Unit:      rec.Columns[AttrUnit],
		ChartData: renderSeries(rec.Series),
	}
}

// renderSeries 按 sort_order 升序输出 {x: label, y: value}。
func renderSeries(points []SeriesPoint) []ChartPoint {
	sorted := make([]SeriesPoint, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SortOrder < sorted[j].SortOrder
	})

	out := make([]ChartPoint, 0, len(sorted))
	for _, point := range sorted {
		out = append(out, ChartPoint{"x": point.Label, "y": point.Value})
	}
	return out
}

// coerceChartData 仅接受由对象组成的数组，其余情况（含部分元素类型不符）一律返回空数组。
func coerceChartData(value any) []ChartPoint {
	list, ok := value.([]any)
	if !ok {
		return []ChartPoint{}
	}
	out := make([]ChartPoint, 0, len(list))
	for _, element := range list {
		obj, ok := element.(map[string]any)
		if !ok {
			return []ChartPoint{}
		}
		out = append(out, ChartPoint(obj))
	}
	return out
}

func putNonEmpty(bag map[string]string, key, value string) {
	if value != "" {
		bag[key] = value
	}
}

func formatID(id uint64) string {
	return strconv.FormatUint(id, 10)
}
