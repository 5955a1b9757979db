package normalizer

import (
	"sort"
	"strings"
)

// TBD 先发投手尚未公布
const TBD = "TBD"

// UsedPitchers 单次响应内已分配的投手集合
type UsedPitchers map[string]struct{}

// Has 投手是否已被分配
func (u UsedPitchers) Has(pitcher string) bool {
	_, ok := u[pitcher]
	return ok
}

// FindProbablePitcher 为球队身份查找先发投手（不修改 used）。
// 身份为城市名时依次尝试该城市的各支球队；已在 used 中的投手会被跳过，
// 避免同一名投手出现在两场比赛里。未找到返回 (TBD, false)。
func FindProbablePitcher(team string, pitcherByTeam map[string]string, used UsedPitchers) (string, bool) {
	if len(pitcherByTeam) == 0 {
		return TBD, false
	}
	keys := sortedKeys(pitcherByTeam)
	for _, candidate := range CandidateTeams(team) {
		if p, ok := lookupPitcher(candidate, pitcherByTeam, keys); ok && !used.Has(p) {
			return p, true
		}
	}
	return TBD, false
}

// lookupPitcher 按 BestMatch 的优先级（精确、昵称、模糊）在 keys 中查找球队的投手，
// 昵称互相冲突的键不参与
func lookupPitcher(team string, pitcherByTeam map[string]string, keys []string) (string, bool) {
	if p, ok := pitcherByTeam[team]; ok && strings.TrimSpace(p) != "" {
		return p, true
	}
	candidates := make([]string, 0, len(keys))
	for _, k := range keys {
		// 同城另一支球队的投手不能借用
		if !nicknamesConflict(team, k) {
			candidates = append(candidates, k)
		}
	}
	if i := BestMatch(team, candidates); i >= 0 {
		if p := pitcherByTeam[candidates[i]]; strings.TrimSpace(p) != "" {
			return p, true
		}
	}
	return "", false
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// PitcherAssigner 单次请求内的投手分配器，每个请求新建一个，不可跨请求共享
type PitcherAssigner struct {
	pitcherByTeam map[string]string
	keys          []string
	used          UsedPitchers
	teams         map[string]struct{}
}

// NewPitcherAssigner 基于数据源的 球队→投手 映射创建分配器
func NewPitcherAssigner(pitcherByTeam map[string]string) *PitcherAssigner {
	return &PitcherAssigner{
		pitcherByTeam: pitcherByTeam,
		keys:          sortedKeys(pitcherByTeam),
		used:          make(UsedPitchers),
		teams:         make(map[string]struct{}),
	}
}

// Assignment 一支球队的分配结果
type Assignment struct {
	Team    string // 具体球队全称，城市名已按本次请求的分配情况消歧
	Pitcher string // 未找到时为 TBD
	Found   bool
}

// AssignTeam 把赛程中的球队身份落到具体球队并分配先发。
// carried 为赛程源自带的先发（可为空），可用时优先占用。
// 同城多支球队时，本次请求已分配过的球队排在后面，"Los Angeles" 出现两次会分别落到道奇和天使。
func (a *PitcherAssigner) AssignTeam(identity, carried string) Assignment {
	open := a.openTeams(CandidateTeams(identity))
	if a.Claim(carried) {
		team := open[0]
		for _, t := range open {
			if p, ok := lookupPitcher(t, a.pitcherByTeam, a.keys); ok && p == strings.TrimSpace(carried) {
				team = t
				break
			}
		}
		return a.take(team, strings.TrimSpace(carried), true)
	}
	for _, t := range open {
		if p, ok := lookupPitcher(t, a.pitcherByTeam, a.keys); ok && !a.used.Has(p) {
			a.used[p] = struct{}{}
			return a.take(t, p, true)
		}
	}
	return a.take(open[0], TBD, false)
}

// openTeams 未分配过的候选在前；全部分配过（如双赛）时原样返回
func (a *PitcherAssigner) openTeams(candidates []string) []string {
	out := make([]string, 0, len(candidates))
	for _, t := range candidates {
		if _, taken := a.teams[t]; !taken {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return candidates
	}
	return out
}

func (a *PitcherAssigner) take(team, pitcher string, found bool) Assignment {
	a.teams[team] = struct{}{}
	return Assignment{Team: team, Pitcher: pitcher, Found: found}
}

// Assign 为球队分配投手并记为已使用；未找到返回 (TBD, false)
func (a *PitcherAssigner) Assign(team string) (string, bool) {
	r := a.AssignTeam(team, "")
	return r.Pitcher, r.Found
}

// Claim 直接占用一个已知投手（赛程源自带先发时使用）；已被占用返回 false
func (a *PitcherAssigner) Claim(pitcher string) bool {
	pitcher = strings.TrimSpace(pitcher)
	if pitcher == "" || pitcher == TBD || a.used.Has(pitcher) {
		return false
	}
	a.used[pitcher] = struct{}{}
	return true
}

// Used 已分配的投手（排序后返回）
func (a *PitcherAssigner) Used() []string {
	out := make([]string, 0, len(a.used))
	for p := range a.used {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
