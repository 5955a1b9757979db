// Package normalizer 将赛程源中格式不一的队名/投手名归一到规范身份。
// 所有查找失败都降级为哨兵值，不返回错误。
package normalizer

import "strings"

// Franchise MLB 球队规范信息
type Franchise struct {
	Name     string // 规范全称
	City     string // 城市/地区名，赛程源常只给这一段
	Nickname string // 队名昵称（小写），同城球队靠它区分
	Abbr     string
}

// Franchises 30 支球队，同城球队按原数据源的优先顺序排列（洋基先于大都会）
var Franchises = []Franchise{
	{"Arizona Diamondbacks", "Arizona", "diamondbacks", "ARI"},
	{"Atlanta Braves", "Atlanta", "braves", "ATL"},
	{"Baltimore Orioles", "Baltimore", "orioles", "BAL"},
	{"Boston Red Sox", "Boston", "", "BOS"},
	{"Chicago Cubs", "Chicago", "cubs", "CHC"},
	{"Chicago White Sox", "Chicago", "", "CWS"},
	{"Cincinnati Reds", "Cincinnati", "reds", "CIN"},
	{"Cleveland Guardians", "Cleveland", "guardians", "CLE"},
	{"Colorado Rockies", "Colorado", "rockies", "COL"},
	{"Detroit Tigers", "Detroit", "tigers", "DET"},
	{"Houston Astros", "Houston", "astros", "HOU"},
	{"Kansas City Royals", "Kansas City", "royals", "KC"},
	{"Los Angeles Dodgers", "Los Angeles", "dodgers", "LAD"},
	{"Los Angeles Angels", "Los Angeles", "angels", "LAA"},
	{"Miami Marlins", "Miami", "marlins", "MIA"},
	{"Milwaukee Brewers", "Milwaukee", "brewers", "MIL"},
	{"Minnesota Twins", "Minnesota", "twins", "MIN"},
	{"New York Yankees", "New York", "yankees", "NYY"},
	{"New York Mets", "New York", "mets", "NYM"},
	{"Athletics", "Athletics", "athletics", "OAK"},
	{"Philadelphia Phillies", "Philadelphia", "phillies", "PHI"},
	{"Pittsburgh Pirates", "Pittsburgh", "pirates", "PIT"},
	{"San Diego Padres", "San Diego", "padres", "SD"},
	{"San Francisco Giants", "San Francisco", "giants", "SF"},
	{"Seattle Mariners", "Seattle", "mariners", "SEA"},
	{"St. Louis Cardinals", "St. Louis", "cardinals", "STL"},
	{"Tampa Bay Rays", "Tampa Bay", "rays", "TB"},
	{"Texas Rangers", "Texas", "rangers", "TEX"},
	{"Toronto Blue Jays", "Toronto", "jays", "TOR"},
	{"Washington Nationals", "Washington", "nationals", "WSH"},
}

// abbreviationEntry 缩写表条目，键为输入的子串即命中
type abbreviationEntry struct {
	key  string
	abbr string
}

// abbreviationTable 顺序敏感：依次匹配，先命中者生效
var abbreviationTable = []abbreviationEntry{
	{"Arizona", "ARI"}, {"Atlanta", "ATL"}, {"Baltimore", "BAL"}, {"Boston", "BOS"},
	{"Chicago Cubs", "CHC"}, {"Chicago White Sox", "CWS"}, {"Cincinnati", "CIN"},
	{"Cleveland", "CLE"}, {"Colorado", "COL"}, {"Detroit", "DET"}, {"Houston", "HOU"},
	{"Kansas City", "KC"}, {"Los Angeles Angels", "LAA"}, {"Los Angeles Dodgers", "LAD"},
	{"Miami", "MIA"}, {"Milwaukee", "MIL"}, {"Minnesota", "MIN"}, {"New York Mets", "NYM"},
	{"New York Yankees", "NYY"}, {"Oakland", "OAK"}, {"Philadelphia", "PHI"},
	{"Pittsburgh", "PIT"}, {"San Diego", "SD"}, {"San Francisco", "SF"},
	{"Seattle", "SEA"}, {"St. Louis", "STL"}, {"Tampa Bay", "TB"}, {"Texas", "TEX"},
	{"Toronto", "TOR"}, {"Washington", "WSH"},
}

// UnknownAbbreviation 输入为空白时的缩写
const UnknownAbbreviation = "TBD"

// cityIndex 小写城市名 → 该城市的球队全称（保持 Franchises 中的顺序）
var cityIndex = map[string][]string{}

// nameIndex 小写全称 → Franchise
var nameIndex = map[string]Franchise{}

func init() {
	for _, f := range Franchises {
		city := strings.ToLower(f.City)
		cityIndex[city] = append(cityIndex[city], f.Name)
		nameIndex[strings.ToLower(f.Name)] = f
	}
}

// ResolveTeamAbbreviation 全称或部分名称 → 缩写。
// 大小写不敏感，表中键是输入的子串即命中（"Chicago Cubs Game" 命中 "Chicago Cubs"）；
// 未命中时取输入前三个非空白字符（按 rune 计，非 ASCII 输入的字节数可能超过 3）并大写。
func ResolveTeamAbbreviation(name string) string {
	lower := strings.ToLower(name)
	for _, e := range abbreviationTable {
		if strings.Contains(lower, strings.ToLower(e.key)) {
			return e.abbr
		}
	}
	return fallbackAbbreviation(name)
}

func fallbackAbbreviation(name string) string {
	var b strings.Builder
	n := 0
	for _, r := range strings.ToUpper(name) {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		b.WriteRune(r)
		n++
		if n == 3 {
			break
		}
	}
	if n == 0 {
		return UnknownAbbreviation
	}
	return b.String()
}

// LookupFranchise 按规范全称（大小写不敏感）查找球队
func LookupFranchise(name string) (Franchise, bool) {
	f, ok := nameIndex[strings.ToLower(strings.TrimSpace(name))]
	return f, ok
}

// CandidateTeams 一个球队身份可能对应的规范全称列表：
// 城市名（如 "New York"）对应该城市所有球队，其余原样返回
func CandidateTeams(identity string) []string {
	id := strings.TrimSpace(identity)
	if teams, ok := cityIndex[strings.ToLower(id)]; ok {
		out := make([]string, len(teams))
		copy(out, teams)
		return out
	}
	return []string{id}
}
