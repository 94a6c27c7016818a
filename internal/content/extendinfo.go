package content

import (
	"encoding/json"
	"strconv"
	"strings"
)

// DecodeTyped 将 extendInfo 字符串解析为 string→string 映射。
// 字符串、数字、布尔值转为字符串；null 与嵌套对象/数组被丢弃。
// 空串或非法 JSON 返回空映射，不向调用方报错；完整对象之后的多余内容被忽略。
func DecodeTyped(raw string) map[string]string {
	parsed := DecodeRaw(raw)
	out := make(map[string]string, len(parsed))
	for key, value := range parsed {
		if s, ok := scalarString(value); ok {
			out[key] = s
		}
	}
	return out
}

// DecodeRaw 与 DecodeTyped 使用相同的解析规则，但保留 JSON 原生类型，
// 数字以 json.Number 形式保留原始字面量。
func DecodeRaw(raw string) map[string]any {
	if strings.TrimSpace(raw) == "" {
		return map[string]any{}
	}

	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	// 只读取第一个完整的顶层值，其后的内容忽略。
	var out map[string]any
	if err := dec.Decode(&out); err != nil {
		return map[string]any{}
	}
	if out == nil {
		return map[string]any{}
	}
	return out
}

func scalarString(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(v), true
	default:
		return "", false
	}
}
