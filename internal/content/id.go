package content

import (
	"strconv"
	"strings"
)

// ResolveID 从调用方传入的 id 中取出数字主键。
// 上游偶尔会传 "1,1" 这样的复合值，此时只取第一段。
func ResolveID(raw string) (uint64, bool) {
	first, _, _ := strings.Cut(strings.TrimSpace(raw), ",")
	first = strings.TrimSpace(first)
	if first == "" {
		return 0, false
	}

	// 按有符号 64 位解析：允许前导 "+"，超出 int64 的值视为无法解析。
	id, err := strconv.ParseInt(first, 10, 64)
	if err != nil || id < 0 {
		return 0, false
	}
	return uint64(id), true
}
