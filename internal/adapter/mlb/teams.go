package mlb

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"StrikeoutSync/internal/interfaces"
	"StrikeoutSync/internal/normalizer"
)

// teamList 赛季球队列表，同一赛季只请求一次
func (a *Adapter) teamList(ctx context.Context, season int) ([]teamInfo, error) {
	a.teamsMu.Lock()
	defer a.teamsMu.Unlock()
	if teams, ok := a.teams[season]; ok {
		return teams, nil
	}

	q := url.Values{}
	q.Set("sportId", "1")
	q.Set("season", strconv.Itoa(season))
	var resp teamsResponse
	if err := a.getJSON(ctx, "/api/v1/teams", q, &resp); err != nil {
		return nil, err
	}
	a.teams[season] = resp.Teams
	return resp.Teams, nil
}

// resolveTeamID 队名 → statsapi 球队ID，兼容简写与昵称。
// 同城球队靠昵称区分；只给城市名时取列表中第一支，调用方应先用 PitcherAssigner 落到具体球队
func (a *Adapter) resolveTeamID(ctx context.Context, team string, season int) (int, error) {
	teams, err := a.teamList(ctx, season)
	if err != nil {
		return 0, err
	}
	names := make([]string, len(teams))
	for i, t := range teams {
		if t.Abbreviation != "" && t.Abbreviation == team {
			return t.ID, nil
		}
		names[i] = t.Name
	}
	if i := normalizer.BestMatch(normalizer.NormalizeTeamName(team), names); i >= 0 {
		return teams[i].ID, nil
	}
	return 0, fmt.Errorf("%w: 未找到球队 %q", interfaces.ErrUnavailable, team)
}
