package mlb

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"StrikeoutSync/internal/interfaces"
	"StrikeoutSync/internal/model"
)

// FetchPitcherStats 按姓名搜索投手，再拉取赛季投球数据。
// statsapi 不提供挥空率，按三振率估算（与 bbref 数据源同一口径）。
func (a *Adapter) FetchPitcherStats(ctx context.Context, pitcher, team string, date time.Time) (model.PitcherStats, error) {
	pitcher = strings.TrimSpace(pitcher)
	if pitcher == "" || pitcher == "TBD" {
		return model.PitcherStats{}, fmt.Errorf("%w: 投手未公布", interfaces.ErrUnavailable)
	}

	q := url.Values{}
	q.Set("names", pitcher)
	q.Set("sportIds", "1")
	var search peopleResponse
	if err := a.getJSON(ctx, "/api/v1/people/search", q, &search); err != nil {
		return model.PitcherStats{}, err
	}
	id, ok := pickPitcher(search.People)
	if !ok {
		return model.PitcherStats{}, fmt.Errorf("%w: 未找到投手 %q", interfaces.ErrUnavailable, pitcher)
	}

	season := a.season(date)
	q = url.Values{}
	q.Set("hydrate", fmt.Sprintf("stats(group=[pitching],type=[season],season=%d)", season))
	var detail peopleResponse
	if err := a.getJSON(ctx, fmt.Sprintf("/api/v1/people/%d", id), q, &detail); err != nil {
		return model.PitcherStats{}, err
	}
	if len(detail.People) == 0 {
		return model.PitcherStats{}, fmt.Errorf("%w: 投手 %d 无详情", interfaces.ErrUnavailable, id)
	}
	p := detail.People[0]
	stat, ok := seasonLine(p)
	if !ok {
		return model.PitcherStats{}, fmt.Errorf("%w: %s %d 赛季无投球数据", interfaces.ErrUnavailable, pitcher, season)
	}
	return pitcherStatsFrom(stat, p.PitchHand.Code), nil
}

// pickPitcher 搜索结果中优先选主守位置为投手的人
func pickPitcher(people []person) (int, bool) {
	for _, p := range people {
		if p.Primary.Code == "1" {
			return p.ID, true
		}
	}
	if len(people) > 0 {
		return people[0].ID, true
	}
	return 0, false
}

func pitcherStatsFrom(stat seasonStat, pitchHand string) model.PitcherStats {
	ip := parseInnings(stat.InningsPitched)
	k9 := 8.5
	if ip > 0 {
		k9 = float64(stat.StrikeOuts) / ip * 9
	}
	kPercent := math.Min(35, k9*2.5)
	if stat.BattersFaced > 0 {
		kPercent = float64(stat.StrikeOuts) / float64(stat.BattersFaced) * 100
	}
	whiff := math.Min(40, kPercent*1.1)
	swingStrike := math.Min(20, whiff*0.4)

	hand, ok := model.ParseHandedness(pitchHand)
	if !ok {
		hand = model.HandRight
	}
	return model.PitcherStats{
		K9:              round1(k9),
		KPercent:        round1(kPercent),
		WhiffRate:       round1(whiff),
		SwingStrikeRate: round1(swingStrike),
		ERA:             parseRate(stat.ERA, 4.50),
		WHIP:            parseRate(stat.WHIP, 1.30),
		Handedness:      hand,
	}
}

// parseInnings "172.1" 表示 172又1/3局
func parseInnings(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	whole, frac, _ := strings.Cut(raw, ".")
	w, err := strconv.Atoi(whole)
	if err != nil || w < 0 {
		return 0
	}
	outs := 0
	if frac != "" {
		outs, err = strconv.Atoi(frac)
		if err != nil || outs < 0 || outs > 2 {
			outs = 0
		}
	}
	return float64(w) + float64(outs)/3
}

// parseRate statsapi 把 ERA/WHIP 作为字符串返回，"-.--" 表示无数据
func parseRate(raw string, fallback float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}
