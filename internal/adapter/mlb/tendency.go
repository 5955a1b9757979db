package mlb

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"time"

	"StrikeoutSync/internal/interfaces"
	"StrikeoutSync/internal/model"
)

// FetchTeamTendency 球队面对左/右投的三振率 = SO / PA × 100
func (a *Adapter) FetchTeamTendency(ctx context.Context, team string, vs model.Handedness, date time.Time) (float64, error) {
	season := a.season(date)
	id, err := a.resolveTeamID(ctx, team, season)
	if err != nil {
		return 0, err
	}

	sitCode := "vr"
	if vs == model.HandLeft {
		sitCode = "vl"
	}
	q := url.Values{}
	q.Set("stats", "statSplits")
	q.Set("group", "hitting")
	q.Set("sitCodes", "vl,vr")
	q.Set("season", strconv.Itoa(season))

	var resp statsResponse
	if err := a.getJSON(ctx, fmt.Sprintf("/api/v1/teams/%d/stats", id), q, &resp); err != nil {
		return 0, err
	}
	for _, group := range resp.Stats {
		for _, s := range group.Splits {
			if s.Split.Code != sitCode {
				continue
			}
			if s.Stat.PlateAppearances <= 0 {
				return 0, fmt.Errorf("%w: %s %s 无打席数据", interfaces.ErrUnavailable, team, sitCode)
			}
			return round1(float64(s.Stat.StrikeOuts) / float64(s.Stat.PlateAppearances) * 100), nil
		}
	}
	return 0, fmt.Errorf("%w: %s 缺少 %s 分项", interfaces.ErrUnavailable, team, sitCode)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
