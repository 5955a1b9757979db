package mlb

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"StrikeoutSync/internal/config"
	"StrikeoutSync/internal/interfaces"
	"StrikeoutSync/internal/model"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scheduleFixture = `{
  "dates": [{
    "date": "2024-06-01",
    "games": [
      {
        "gamePk": 745001,
        "gameDate": "2024-06-01T23:05:00Z",
        "status": {"detailedState": "Scheduled"},
        "teams": {
          "away": {"team": {"id": 147, "name": "New York Yankees"}, "probablePitcher": {"id": 543037, "fullName": "Gerrit Cole"}},
          "home": {"team": {"id": 111, "name": "Boston Red Sox"}, "probablePitcher": {"id": 519242, "fullName": "Chris Sale"}}
        }
      },
      {
        "gamePk": 745002,
        "gameDate": "2024-06-02T02:10:00Z",
        "status": {"detailedState": "Scheduled"},
        "teams": {
          "away": {"team": {"id": 119, "name": "Los Angeles Dodgers"}},
          "home": {"team": {"id": 137, "name": "San Francisco Giants"}, "probablePitcher": {"id": 657277, "fullName": "Logan Webb"}}
        }
      },
      {
        "gamePk": 745003,
        "gameDate": "2024-06-01T17:05:00Z",
        "status": {"detailedState": "Postponed"},
        "teams": {
          "away": {"team": {"id": 121, "name": "New York Mets"}},
          "home": {"team": {"id": 143, "name": "Philadelphia Phillies"}}
        }
      }
    ]
  }]
}`

const teamsFixture = `{"teams": [
  {"id": 147, "name": "New York Yankees", "teamName": "Yankees", "abbreviation": "NYY"},
  {"id": 121, "name": "New York Mets", "teamName": "Mets", "abbreviation": "NYM"},
  {"id": 111, "name": "Boston Red Sox", "teamName": "Red Sox", "abbreviation": "BOS"}
]}`

const splitsFixture = `{"stats": [{"splits": [
  {"season": "2024", "split": {"code": "vl"}, "stat": {"strikeOuts": 130, "plateAppearances": 500}},
  {"season": "2024", "split": {"code": "vr"}, "stat": {"strikeOuts": 300, "plateAppearances": 1250}}
]}]}`

const rosterFixture = `{"roster": [
  {"person": {"id": 1, "fullName": "Gerrit Cole", "batSide": {"code": "R"}, "stats": []}, "position": {"code": "1", "type": "Pitcher", "abbreviation": "P"}},
  {"person": {"id": 2, "fullName": "Aaron Judge", "batSide": {"code": "R"}, "stats": [{"splits": [{"stat": {"plateAppearances": 300, "strikeOuts": 84}}]}]}, "position": {"code": "9", "type": "Outfielder"}},
  {"person": {"id": 3, "fullName": "Juan Soto", "batSide": {"code": "L"}, "stats": [{"splits": [{"stat": {"plateAppearances": 310, "strikeOuts": 50}}]}]}, "position": {"code": "9", "type": "Outfielder"}},
  {"person": {"id": 4, "fullName": "Jazz Chisholm", "batSide": {"code": "L"}, "stats": [{"splits": [{"stat": {"plateAppearances": 200, "strikeOuts": 50}}]}]}, "position": {"code": "5", "type": "Infielder"}},
  {"person": {"id": 5, "fullName": "Switch Hitter", "batSide": {"code": "S"}, "stats": [{"splits": [{"stat": {"plateAppearances": 250, "strikeOuts": 55}}]}]}, "position": {"code": "4", "type": "Infielder"}},
  {"person": {"id": 6, "fullName": "Player Six", "batSide": {"code": "R"}, "stats": [{"splits": [{"stat": {"plateAppearances": 180, "strikeOuts": 40}}]}]}, "position": {"code": "2", "type": "Catcher"}},
  {"person": {"id": 7, "fullName": "Player Seven", "batSide": {"code": "R"}, "stats": [{"splits": [{"stat": {"plateAppearances": 170, "strikeOuts": 40}}]}]}, "position": {"code": "3", "type": "Infielder"}},
  {"person": {"id": 8, "fullName": "Player Eight", "batSide": {"code": "R"}, "stats": [{"splits": [{"stat": {"plateAppearances": 160, "strikeOuts": 40}}]}]}, "position": {"code": "6", "type": "Infielder"}},
  {"person": {"id": 9, "fullName": "Player Nine", "batSide": {"code": "R"}, "stats": [{"splits": [{"stat": {"plateAppearances": 150, "strikeOuts": 40}}]}]}, "position": {"code": "7", "type": "Outfielder"}},
  {"person": {"id": 10, "fullName": "Bench Bat", "batSide": {"code": "R"}, "stats": [{"splits": [{"stat": {"plateAppearances": 20, "strikeOuts": 9}}]}]}, "position": {"code": "8", "type": "Outfielder"}},
  {"person": {"id": 11, "fullName": "Callup", "batSide": {"code": "R"}, "stats": []}, "position": {"code": "8", "type": "Outfielder"}}
]}`

const searchFixture = `{"people": [
  {"id": 999, "fullName": "Gerrit Cole", "primaryPosition": {"code": "7"}},
  {"id": 543037, "fullName": "Gerrit Cole", "primaryPosition": {"code": "1"}}
]}`

const pitcherFixture = `{"people": [{
  "id": 543037, "fullName": "Gerrit Cole", "pitchHand": {"code": "R"},
  "stats": [{"group": {"displayName": "pitching"}, "splits": [{"season": "2024", "stat": {
    "strikeOuts": 222, "inningsPitched": "209.0", "battersFaced": 821, "era": "3.41", "whip": "1.13"
  }}]}]
}]}`

// requestLog 记录测试服务器收到的请求路径
type requestLog struct {
	mu    sync.Mutex
	paths []string
}

func (l *requestLog) add(p string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.paths = append(l.paths, p)
}

func (l *requestLog) all() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.paths...)
}

func newTestAdapter(t *testing.T, routes map[string]string) (*Adapter, *requestLog) {
	t.Helper()
	seen := &requestLog{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen.add(r.URL.Path)
		body, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	logger := logrus.New()
	logger.SetOutput(bytes.NewBuffer(nil))
	src := New(&config.SourceConfig{BaseURL: srv.URL, Timeout: 5, Timezone: "America/New_York"}, logger)
	return src.(*Adapter), seen
}

var gameDay = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestFetchSchedule(t *testing.T) {
	a, _ := newTestAdapter(t, map[string]string{"/api/v1/schedule": scheduleFixture})

	games, err := a.FetchSchedule(context.Background(), gameDay)
	require.NoError(t, err)
	require.Len(t, games, 2)

	assert.Equal(t, model.ScheduledGame{
		GameID:      "745001",
		HomeTeam:    "Boston Red Sox",
		AwayTeam:    "New York Yankees",
		GameTime:    "7:05 PM ET",
		HomePitcher: "Chris Sale",
		AwayPitcher: "Gerrit Cole",
	}, games[0])
	assert.Equal(t, "10:10 PM ET", games[1].GameTime)
	assert.Empty(t, games[1].AwayPitcher)
}

func TestFetchProbablePitchers(t *testing.T) {
	a, _ := newTestAdapter(t, map[string]string{"/api/v1/schedule": scheduleFixture})

	pitchers, err := a.FetchProbablePitchers(context.Background(), gameDay)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"New York Yankees":     "Gerrit Cole",
		"Boston Red Sox":       "Chris Sale",
		"San Francisco Giants": "Logan Webb",
	}, pitchers)
}

func TestFetchScheduleUnavailable(t *testing.T) {
	a, _ := newTestAdapter(t, map[string]string{})
	_, err := a.FetchSchedule(context.Background(), gameDay)
	assert.True(t, errors.Is(err, interfaces.ErrUnavailable))
}

func TestFetchTeamTendency(t *testing.T) {
	a, seen := newTestAdapter(t, map[string]string{
		"/api/v1/teams":           teamsFixture,
		"/api/v1/teams/147/stats": splitsFixture,
	})

	vsLeft, err := a.FetchTeamTendency(context.Background(), "NY Yankees", model.HandLeft, gameDay)
	require.NoError(t, err)
	assert.Equal(t, 26.0, vsLeft)

	vsRight, err := a.FetchTeamTendency(context.Background(), "New York Yankees", model.HandRight, gameDay)
	require.NoError(t, err)
	assert.Equal(t, 24.0, vsRight)

	teamCalls := 0
	for _, p := range seen.all() {
		if p == "/api/v1/teams" {
			teamCalls++
		}
	}
	assert.Equal(t, 1, teamCalls, "球队列表按赛季缓存")

	_, err = a.FetchTeamTendency(context.Background(), "Montreal Expos", model.HandRight, gameDay)
	assert.True(t, errors.Is(err, interfaces.ErrUnavailable))
}

func TestResolveTeamID(t *testing.T) {
	a, _ := newTestAdapter(t, map[string]string{"/api/v1/teams": teamsFixture})
	cases := map[string]int{
		"New York Mets":    121,
		"NY Mets":          121,
		"Mets":             121,
		"NYM":              121,
		"New York Yankees": 147,
		"Yankees":          147,
		"Red Sox":          111,
		"New York":         147,
	}
	for team, want := range cases {
		id, err := a.resolveTeamID(context.Background(), team, 2024)
		require.NoError(t, err, team)
		assert.Equal(t, want, id, team)
	}

	_, err := a.resolveTeamID(context.Background(), "Montreal Expos", 2024)
	assert.ErrorIs(t, err, interfaces.ErrUnavailable)
}

func TestFetchExpectedLineup(t *testing.T) {
	a, _ := newTestAdapter(t, map[string]string{
		"/api/v1/teams":            teamsFixture,
		"/api/v1/teams/147/roster": rosterFixture,
	})

	batters, err := a.FetchExpectedLineup(context.Background(), "New York Yankees", model.HandLeft, gameDay)
	require.NoError(t, err)
	require.Len(t, batters, model.MaxExpectedBatters)

	assert.Equal(t, "Juan Soto", batters[0].Name)
	assert.Equal(t, 16.1, batters[0].KRate)
	assert.Equal(t, "Aaron Judge", batters[1].Name)
	assert.Equal(t, 28.0, batters[1].KRate)
	assert.Equal(t, "Switch Hitter", batters[2].Name)
	assert.Equal(t, model.HandRight, batters[2].Handedness)
	for _, b := range batters {
		assert.NotEqual(t, "Gerrit Cole", b.Name)
		assert.NotEqual(t, "Bench Bat", b.Name)
	}
}

func TestFetchPitcherStats(t *testing.T) {
	a, _ := newTestAdapter(t, map[string]string{
		"/api/v1/people/search": searchFixture,
		"/api/v1/people/543037": pitcherFixture,
	})

	stats, err := a.FetchPitcherStats(context.Background(), "Gerrit Cole", "New York Yankees", gameDay)
	require.NoError(t, err)
	assert.Equal(t, model.PitcherStats{
		K9:              9.6,
		KPercent:        27.0,
		WhiffRate:       29.7,
		SwingStrikeRate: 11.9,
		ERA:             3.41,
		WHIP:            1.13,
		Handedness:      model.HandRight,
	}, stats)
}

func TestFetchPitcherStatsTBD(t *testing.T) {
	a, seen := newTestAdapter(t, map[string]string{})
	_, err := a.FetchPitcherStats(context.Background(), "TBD", "Boston Red Sox", gameDay)
	assert.True(t, errors.Is(err, interfaces.ErrUnavailable))
	assert.Empty(t, seen.all())
}

func TestParseInnings(t *testing.T) {
	assert.Equal(t, 0.0, parseInnings(""))
	assert.Equal(t, 209.0, parseInnings("209.0"))
	assert.InDelta(t, 172.333, parseInnings("172.1"), 0.001)
	assert.InDelta(t, 5.667, parseInnings("5.2"), 0.001)
	assert.Equal(t, 0.0, parseInnings("abc"))
}

func TestZoneLabel(t *testing.T) {
	edt := time.FixedZone("EDT", -4*3600)
	pst := time.FixedZone("PST", -8*3600)
	assert.Equal(t, "ET", zoneLabel(time.Date(2024, 6, 1, 19, 0, 0, 0, edt)))
	assert.Equal(t, "PT", zoneLabel(time.Date(2024, 1, 1, 19, 0, 0, 0, pst)))
	assert.Equal(t, "UTC", zoneLabel(time.Date(2024, 1, 1, 19, 0, 0, 0, time.UTC)))
}
