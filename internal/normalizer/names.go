package normalizer

import (
	"regexp"
	"strings"
)

// fragmentTable 队名片段 → 展开后的地名。按整词一次性查表，展开结果不会再被匹配，
// 因此不存在 "Chi"→"Chicago"→"Chicagocago" 式的重复展开
var fragmentTable = map[string]string{
	"NY":  "New York",
	"Chi": "Chicago",
	"LA":  "Los Angeles",
	"SF":  "San Francisco",
	"SD":  "San Diego",
	"TB":  "Tampa Bay",
	"KC":  "Kansas City",
	"WSH": "Washington",
	"AZ":  "Arizona",
}

// codeTable 三字母代码（整串输入）→ 球队全称；与片段表冲突的代码以片段表为准
var codeTable = map[string]string{}

func init() {
	for _, f := range Franchises {
		if _, isFragment := fragmentTable[f.Abbr]; isFragment {
			continue
		}
		codeTable[f.Abbr] = f.Name
	}
}

// NormalizeTeamName 把赛程源的简写队名展开为尽量完整的名称，并去除首尾空白。
// 结果满足幂等：NormalizeTeamName(NormalizeTeamName(x)) == NormalizeTeamName(x)
func NormalizeTeamName(raw string) string {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return ""
	}
	if len(fields) == 1 {
		if full, ok := codeTable[fields[0]]; ok {
			return full
		}
	}
	for i, f := range fields {
		if expanded, ok := fragmentTable[f]; ok {
			fields[i] = expanded
		}
	}
	return strings.Join(fields, " ")
}

var (
	nonAlphaNum = regexp.MustCompile(`[^a-z0-9\s]+`)
	multiSpace  = regexp.MustCompile(`\s+`)
)

// normalizeWords 小写、去标点、压缩空白
func normalizeWords(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = nonAlphaNum.ReplaceAllString(s, " ")
	s = multiSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
