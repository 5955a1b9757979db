package mlb

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"StrikeoutSync/internal/model"

	"github.com/sirupsen/logrus"
)

// skippedStates 不会开打的比赛
var skippedStates = map[string]struct{}{
	"Postponed": {},
	"Cancelled": {},
	"Suspended": {},
}

func (a *Adapter) fetchScheduleGames(ctx context.Context, date time.Time) ([]scheduleGame, error) {
	q := url.Values{}
	q.Set("sportId", "1")
	q.Set("date", date.Format("2006-01-02"))
	q.Set("hydrate", "probablePitcher")

	var resp scheduleResponse
	if err := a.getJSON(ctx, "/api/v1/schedule", q, &resp); err != nil {
		return nil, err
	}
	if len(resp.Dates) == 0 {
		return nil, nil
	}
	return resp.Dates[0].Games, nil
}

// FetchSchedule 当日赛程，先发投手直接取自 probablePitcher
func (a *Adapter) FetchSchedule(ctx context.Context, date time.Time) ([]model.ScheduledGame, error) {
	games, err := a.fetchScheduleGames(ctx, date)
	if err != nil {
		return nil, err
	}
	out := make([]model.ScheduledGame, 0, len(games))
	for _, g := range games {
		if _, skip := skippedStates[g.Status.DetailedState]; skip {
			a.logger.WithFields(logrus.Fields{
				"game_pk": g.GamePk,
				"state":   g.Status.DetailedState,
			}).Info("比赛不会进行，跳过")
			continue
		}
		out = append(out, model.ScheduledGame{
			GameID:      strconv.FormatInt(g.GamePk, 10),
			HomeTeam:    g.Teams.Home.Team.Name,
			AwayTeam:    g.Teams.Away.Team.Name,
			GameTime:    a.formatGameTime(g.GameDate),
			HomePitcher: pitcherName(g.Teams.Home),
			AwayPitcher: pitcherName(g.Teams.Away),
		})
	}
	a.logger.WithField("games", len(out)).Info("statsapi赛程获取完成")
	return out, nil
}

// FetchProbablePitchers 球队全称 → 先发投手
func (a *Adapter) FetchProbablePitchers(ctx context.Context, date time.Time) (map[string]string, error) {
	games, err := a.fetchScheduleGames(ctx, date)
	if err != nil {
		return nil, err
	}
	pitchers := make(map[string]string)
	for _, g := range games {
		for _, side := range []scheduleSide{g.Teams.Home, g.Teams.Away} {
			if name := pitcherName(side); name != "" {
				pitchers[side.Team.Name] = name
			}
		}
	}
	a.logger.WithField("pitchers", len(pitchers)).Info("statsapi先发投手获取完成")
	return pitchers, nil
}

func pitcherName(side scheduleSide) string {
	if side.ProbablePitcher == nil {
		return ""
	}
	return strings.TrimSpace(side.ProbablePitcher.FullName)
}

// formatGameTime "2024-06-01T23:05:00Z" → "7:05 PM ET"
func (a *Adapter) formatGameTime(raw string) string {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return "TBD"
	}
	local := t.In(a.loc)
	return local.Format("3:04 PM") + " " + zoneLabel(local)
}

// zoneLabel 美国时区去掉夏令时标记：EDT/EST → ET
func zoneLabel(t time.Time) string {
	abbr, _ := t.Zone()
	if len(abbr) == 3 && abbr[2] == 'T' && (abbr[1] == 'S' || abbr[1] == 'D') {
		switch abbr[0] {
		case 'E', 'C', 'M', 'P':
			return abbr[:1] + "T"
		}
	}
	return abbr
}
