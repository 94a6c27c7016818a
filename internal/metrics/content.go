package metrics

import "github.com/prometheus/client_golang/prometheus"

// 查询结果标签。
const (
	ResultFound    = "found"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

var contentLookups = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "mbox",
		Subsystem: "content",
		Name:      "lookups_total",
		Help:      "内容列表/详情查询次数，按类型、接口与结果区分。",
	},
	[]string{"kind", "endpoint", "result"},
)

// ObserveLookup 记录一次内容查询。
func ObserveLookup(kind, endpoint, result string) {
	contentLookups.WithLabelValues(kind, endpoint, result).Inc()
}
