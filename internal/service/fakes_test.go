package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"StrikeoutSync/internal/interfaces"
	"StrikeoutSync/internal/model"

	"github.com/sirupsen/logrus"
)

type fakeSchedule struct {
	games []model.ScheduledGame
	err   error
}

func (f *fakeSchedule) GetName() string { return "fake" }

func (f *fakeSchedule) FetchSchedule(ctx context.Context, date time.Time) ([]model.ScheduledGame, error) {
	return f.games, f.err
}

type fakePitchers map[string]string

func (f fakePitchers) GetName() string { return "fake" }

func (f fakePitchers) FetchProbablePitchers(ctx context.Context, date time.Time) (map[string]string, error) {
	return f, nil
}

type fakeStats struct {
	byName map[string]model.PitcherStats
	calls  atomic.Int32
}

func (f *fakeStats) GetName() string { return "fake" }

func (f *fakeStats) FetchPitcherStats(ctx context.Context, pitcher, team string, date time.Time) (model.PitcherStats, error) {
	f.calls.Add(1)
	s, ok := f.byName[pitcher]
	if !ok {
		return model.PitcherStats{}, fmt.Errorf("%w: %s", interfaces.ErrUnavailable, pitcher)
	}
	return s, nil
}

type fakeTendency map[string]float64

func (f fakeTendency) GetName() string { return "fake" }

func (f fakeTendency) FetchTeamTendency(ctx context.Context, team string, vs model.Handedness, date time.Time) (float64, error) {
	k, ok := f[team+"|"+string(vs)]
	if !ok {
		return 0, interfaces.ErrUnavailable
	}
	return k, nil
}

type fakeLineup map[string][]model.BatterProfile

func (f fakeLineup) GetName() string { return "fake" }

func (f fakeLineup) FetchExpectedLineup(ctx context.Context, team string, vs model.Handedness, date time.Time) ([]model.BatterProfile, error) {
	b, ok := f[team]
	if !ok {
		return nil, interfaces.ErrUnavailable
	}
	return b, nil
}

type memoryCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemoryCache() *memoryCache { return &memoryCache{data: make(map[string][]byte)} }

func (m *memoryCache) key(kind model.SnapshotKind, key string, date time.Time) string {
	return string(kind) + ":" + date.Format("2006-01-02") + ":" + key
}

func (m *memoryCache) Load(ctx context.Context, kind model.SnapshotKind, key string, date time.Time, dst any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.data[m.key(kind, key, date)]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, dst)
}

func (m *memoryCache) Store(ctx context.Context, kind model.SnapshotKind, key string, date time.Time, value any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[m.key(kind, key, date)] = data
	return nil
}

func testDefaults() model.Defaults {
	return model.Defaults{
		ProbablePitcher: "TBD",
		PitcherStats: model.PitcherStats{
			K9: 8.5, KPercent: 22, WhiffRate: 25, SwingStrikeRate: 12, ERA: 4.5, WHIP: 1.3, Handedness: model.HandRight,
		},
		TeamKVsRHP: 23.5,
		TeamKVsLHP: 25.2,
		Lineup: model.LineupDefault{
			Size: 8, KRate: 22.5, Handedness: model.HandRight, VsPitcherHistory: 1, NameFormat: "%s Batter %d",
		},
	}
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(bytes.NewBuffer(nil))
	return l
}

var (
	coleStats = model.PitcherStats{K9: 11.2, KPercent: 28.5, WhiffRate: 32.1, SwingStrikeRate: 14.8, ERA: 3.2, WHIP: 1.15, Handedness: model.HandRight}
	saleStats = model.PitcherStats{K9: 12.1, KPercent: 31.2, WhiffRate: 35.4, SwingStrikeRate: 16.2, ERA: 2.9, WHIP: 1.05, Handedness: model.HandLeft}
)

func mixedLineup(prefix string) []model.BatterProfile {
	rates := []float64{18.5, 15.2, 24.1, 19.8, 28.2, 22.1, 20.5, 31.8}
	out := make([]model.BatterProfile, len(rates))
	for i, r := range rates {
		out[i] = model.BatterProfile{Name: fmt.Sprintf("%s %d", prefix, i+1), KRate: r, Handedness: model.HandRight}
	}
	return out
}
