package normalizer

import "strings"

var stopwords = map[string]struct{}{
	"the": {}, "of": {}, "and": {}, "at": {},
}

// uniqueNicknames 能唯一确定球队的昵称。"sox" 红袜白袜共用，不在其中
var uniqueNicknames = func() map[string]struct{} {
	m := make(map[string]struct{}, len(Franchises))
	for _, f := range Franchises {
		if f.Nickname != "" {
			m[f.Nickname] = struct{}{}
		}
	}
	return m
}()

// MatchTeam 判断两个数据源的队名是否指同一支球队，满足任一条件即可：
// 忽略大小写完全相等；去掉停用词后共享至少 2 个词；共享一个唯一昵称。
// 同城球队（如 "New York Yankees" 与 "New York Mets"）按第二条也会匹配，
// 需要区分时用 BestMatch。
func MatchTeam(a, b string) bool {
	la, lb := strings.ToLower(strings.TrimSpace(a)), strings.ToLower(strings.TrimSpace(b))
	if la == "" || lb == "" {
		return false
	}
	if la == lb {
		return true
	}

	wa, wb := significantWords(a), significantWords(b)
	shared := 0
	for w := range wa {
		if _, ok := wb[w]; !ok {
			continue
		}
		if _, unique := uniqueNicknames[w]; unique {
			return true
		}
		shared++
	}
	return shared >= 2
}

// BestMatch 在 names 中找与 team 最接近的一项，返回下标：
// 完全相等优先，其次共享唯一昵称，最后按 MatchTeam。都不满足返回 -1
func BestMatch(team string, names []string) int {
	key := strings.ToLower(strings.TrimSpace(team))
	if key == "" {
		return -1
	}
	for i, n := range names {
		if strings.ToLower(strings.TrimSpace(n)) == key {
			return i
		}
	}
	nicks := nicknamesIn(significantWords(team))
	if len(nicks) > 0 {
		for i, n := range names {
			if overlaps(nicks, nicknamesIn(significantWords(n))) {
				return i
			}
		}
	}
	for i, n := range names {
		if MatchTeam(team, n) {
			return i
		}
	}
	return -1
}

func significantWords(s string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, w := range strings.Fields(normalizeWords(s)) {
		if _, stop := stopwords[w]; stop {
			continue
		}
		words[w] = struct{}{}
	}
	return words
}

// nicknamesConflict 双方都带唯一昵称且互不相同，如 Dodgers 与 Angels
func nicknamesConflict(a, b string) bool {
	na, nb := nicknamesIn(significantWords(a)), nicknamesIn(significantWords(b))
	return len(na) > 0 && len(nb) > 0 && !overlaps(na, nb)
}

func nicknamesIn(words map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{})
	for w := range words {
		if _, ok := uniqueNicknames[w]; ok {
			out[w] = struct{}{}
		}
	}
	return out
}

func overlaps(a, b map[string]struct{}) bool {
	for w := range a {
		if _, ok := b[w]; ok {
			return true
		}
	}
	return false
}
