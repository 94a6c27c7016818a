package content

// Record 是存储层记录归一化后的形态，与具体表结构无关。
type Record struct {
	ID       uint64
	Title    string
	Subtitle string
	ImageURL string
	Badge    string
	Content  string
	MediaURL string
	// Columns 保存类型专属的独立列，键为 wire 名称。
	Columns map[string]string
	// ExtendInfo 是未解析的 extend_info 原文。
	ExtendInfo string
	// Series 仅图表使用，由服务层在需要时填充。
	Series []SeriesPoint
}

// SeriesPoint 是图表子表中的一个数据点。
type SeriesPoint struct {
	Label     string
	Value     float64
	SortOrder int
}

// ChartPoint 是 chartData 中的一个元素，通常为 {x, y}。
type ChartPoint map[string]any

// ChartFields 是图表列表项额外输出的字段。
type ChartFields struct {
	ChartType string       `json:"chartType,omitempty"`
	Period    string       `json:"period,omitempty"`
	Unit      string       `json:"unit,omitempty"`
	ChartData []ChartPoint `json:"chartData"`
}

// ListItem 是统一的列表项结构。
type ListItem struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
	Badge    string `json:"badge,omitempty"`
	*ChartFields
}

// ChartSeries 是图表详情额外输出的数据序列。
type ChartSeries struct {
	ChartData []ChartPoint `json:"chartData"`
}

// DetailItem 是统一的详情结构，其余属性放在 extendInfo 中。
type DetailItem struct {
	ID         string            `json:"id"`
	Title      string            `json:"title"`
	Content    string            `json:"content"`
	MediaURL   string            `json:"mediaUrl,omitempty"`
	ExtendInfo map[string]string `json:"extendInfo"`
	*ChartSeries
}

// PageResult 是一次分页查询的结果快照。
type PageResult struct {
	List  []ListItem `json:"list"`
	Total int64      `json:"total"`
	Page  int        `json:"page"`
	Size  int        `json:"size"`
}
