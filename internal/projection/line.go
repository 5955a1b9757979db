package projection

import "strconv"

// FormatLine 渲染盘口文本，阈值固定保留一位小数："Over 7.5"、"Over 8.0"
func FormatLine(threshold float64) string {
	return "Over " + strconv.FormatFloat(threshold, 'f', 1, 64)
}
