package espn

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"StrikeoutSync/internal/config"
	"StrikeoutSync/internal/interfaces"
	"StrikeoutSync/internal/model"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const schedulePage = `<html><body>
<div class="ResponsiveTable">
  <div class="Table__Title">Friday, May 31, 2024</div>
  <table><tr>
    <td><a class="AnchorLink" href="/mlb/team/_/name/sea"></a><a class="AnchorLink" href="/mlb/team/_/name/sea">Seattle</a></td>
    <td><a class="AnchorLink" href="/mlb/team/_/name/laa">Los Angeles</a></td>
  </tr></table>
</div>
<div class="ResponsiveTable">
  <div class="Table__Title">Saturday, June 1, 2024</div>
  <table>
    <tr>
      <td><a class="AnchorLink" href="/mlb/team/_/name/nyy"></a><a class="AnchorLink" href="/mlb/team/_/name/nyy">NY Yankees</a></td>
      <td><a class="AnchorLink" href="/mlb/team/_/name/bos">Boston</a></td>
      <td><a class="AnchorLink" href="/mlb/game/_/gameId/1">7:10 PM</a></td>
    </tr>
    <tr>
      <td><a class="AnchorLink" href="/mlb/team/_/name/chc">Chi Cubs</a></td>
      <td><a class="AnchorLink" href="/mlb/team/_/name/stl">St. Louis</a></td>
    </tr>
    <tr>
      <td><a class="AnchorLink" href="/mlb/team/_/name/tex">Texas</a></td>
    </tr>
  </table>
</div>
<div class="ResponsiveTable">
  <div class="Table__Title">Saturday, June 1, 2024</div>
  <table><tr><td><a class="AnchorLink" href="/mlb/team/_/name/mia">Miami</a></td><td><a class="AnchorLink" href="/mlb/team/_/name/atl">Atlanta</a></td></tr></table>
</div>
</body></html>`

var june1 = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

func TestParseSchedule(t *testing.T) {
	games, err := parseSchedule([]byte(schedulePage), june1)
	require.NoError(t, err)
	assert.Equal(t, []model.ScheduledGame{
		{AwayTeam: "New York Yankees", HomeTeam: "Boston", GameTime: DefaultGameTime},
		{AwayTeam: "Chicago Cubs", HomeTeam: "St. Louis", GameTime: DefaultGameTime},
	}, games)
}

func TestParseScheduleNoMatchingDay(t *testing.T) {
	games, err := parseSchedule([]byte(schedulePage), june1.AddDate(0, 0, 5))
	require.NoError(t, err)
	assert.Empty(t, games)
}

func TestFetchSchedule(t *testing.T) {
	var gotPath, gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(schedulePage))
	}))
	defer srv.Close()

	logger := logrus.New()
	logger.SetOutput(bytes.NewBuffer(nil))
	src := New(&config.SourceConfig{BaseURL: srv.URL, UserAgent: "Mozilla/5.0"}, logger).(interfaces.ScheduleSource)

	games, err := src.FetchSchedule(context.Background(), june1)
	require.NoError(t, err)
	assert.Len(t, games, 2)
	assert.Equal(t, "/mlb/schedule/_/date/20240601", gotPath)
	assert.Equal(t, "Mozilla/5.0", gotUA)
}

func TestFetchScheduleUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	logger := logrus.New()
	logger.SetOutput(bytes.NewBuffer(nil))
	src := New(&config.SourceConfig{BaseURL: srv.URL}, logger).(interfaces.ScheduleSource)
	_, err := src.FetchSchedule(context.Background(), june1)
	assert.True(t, errors.Is(err, interfaces.ErrUnavailable))
}
