package adapter

import (
	"bytes"
	"context"
	"testing"
	"time"

	"StrikeoutSync/internal/config"
	"StrikeoutSync/internal/interfaces"
	"StrikeoutSync/internal/model"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSchedule struct{ name string }

func (f fakeSchedule) GetName() string { return f.name }

func (f fakeSchedule) FetchSchedule(ctx context.Context, date time.Time) ([]model.ScheduledGame, error) {
	return []model.ScheduledGame{{HomeTeam: "Boston Red Sox", AwayTeam: "New York Yankees"}}, nil
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(bytes.NewBuffer(nil))
	return l
}

func TestRegistryBuildsConfiguredSources(t *testing.T) {
	Register("fake_schedule", func(cfg *config.SourceConfig, logger *logrus.Logger) interfaces.Source {
		return fakeSchedule{name: cfg.Name}
	})
	Register("fake_misnamed", func(cfg *config.SourceConfig, logger *logrus.Logger) interfaces.Source {
		return fakeSchedule{name: "other"}
	})
	Register("fake_nil", func(cfg *config.SourceConfig, logger *logrus.Logger) interfaces.Source {
		return nil
	})
	assert.Subset(t, ListFactories(), []string{"fake_misnamed", "fake_nil", "fake_schedule"})

	cfg := &config.Config{Sources: map[string]config.SourceConfig{
		"fake_schedule": {},
		"fake_misnamed": {},
		"fake_nil":      {},
		"unregistered":  {},
	}}
	r := NewSourceRegistry(cfg, testLogger())
	assert.Equal(t, []string{"fake_schedule"}, r.Names())

	sched, err := r.Schedule("fake_schedule")
	require.NoError(t, err)
	games, err := sched.FetchSchedule(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Len(t, games, 1)

	_, err = r.PitcherStats("fake_schedule")
	assert.ErrorContains(t, err, "不提供")

	_, err = r.Lineup("unregistered")
	assert.ErrorContains(t, err, "未初始化")
}

func TestRegisterNilPanics(t *testing.T) {
	assert.Panics(t, func() { Register("broken", nil) })
}

func TestRegistryAdd(t *testing.T) {
	r := NewSourceRegistry(&config.Config{}, testLogger())
	r.Add(fakeSchedule{name: "manual"})
	_, err := r.Schedule("manual")
	assert.NoError(t, err)
}
