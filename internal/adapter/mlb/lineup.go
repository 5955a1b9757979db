package mlb

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"time"

	"StrikeoutSync/internal/interfaces"
	"StrikeoutSync/internal/model"
)

// FetchExpectedLineup 以现役名单中打席最多的 8 名野手作为预计打线。
// 换边打者站在投手惯用手的对侧。
func (a *Adapter) FetchExpectedLineup(ctx context.Context, team string, vs model.Handedness, date time.Time) ([]model.BatterProfile, error) {
	season := a.season(date)
	id, err := a.resolveTeamID(ctx, team, season)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("rosterType", "active")
	q.Set("season", strconv.Itoa(season))
	q.Set("hydrate", fmt.Sprintf("person(stats(type=season,group=hitting,season=%d))", season))

	var resp rosterResponse
	if err := a.getJSON(ctx, fmt.Sprintf("/api/v1/teams/%d/roster", id), q, &resp); err != nil {
		return nil, err
	}

	type candidate struct {
		profile model.BatterProfile
		pa      int
	}
	var candidates []candidate
	for _, entry := range resp.Roster {
		if entry.Position.Type == "Pitcher" || entry.Position.Code == "1" {
			continue
		}
		stat, ok := seasonLine(entry.Person)
		if !ok || stat.PlateAppearances <= 0 {
			continue
		}
		candidates = append(candidates, candidate{
			profile: model.BatterProfile{
				Name:       entry.Person.FullName,
				KRate:      round1(float64(stat.StrikeOuts) / float64(stat.PlateAppearances) * 100),
				Handedness: batterSide(entry.Person.BatSide.Code, vs),
			},
			pa: stat.PlateAppearances,
		})
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: %s 名单无击球数据", interfaces.ErrUnavailable, team)
	}

	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].pa > candidates[j].pa })
	if len(candidates) > model.MaxExpectedBatters {
		candidates = candidates[:model.MaxExpectedBatters]
	}
	batters := make([]model.BatterProfile, len(candidates))
	for i, c := range candidates {
		batters[i] = c.profile
	}
	return batters, nil
}

// batterSide 换边打者("S")面对投手时站在对侧
func batterSide(raw string, vs model.Handedness) model.Handedness {
	if h, ok := model.ParseHandedness(raw); ok {
		return h
	}
	if vs.Valid() {
		return vs.Opposite()
	}
	return model.HandRight
}

// seasonLine 取 hydrate 进来的第一条赛季统计
func seasonLine(p person) (seasonStat, bool) {
	for _, group := range p.Stats {
		if len(group.Splits) > 0 {
			return group.Splits[0].Stat, true
		}
	}
	return seasonStat{}, false
}
