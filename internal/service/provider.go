package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"StrikeoutSync/internal/interfaces"
	"StrikeoutSync/internal/model"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// StatsProvider 统计数据读取：缓存 → 数据源 → 默认值。
// 同一 (类型, 日期, 主体) 的并发请求合并为一次上游调用
type StatsProvider struct {
	stats    interfaces.PitcherStatsSource
	tendency interfaces.TeamTendencySource
	lineup   interfaces.LineupSource
	cache    interfaces.SnapshotCache
	defaults model.Defaults
	logger   *logrus.Logger
	group    singleflight.Group
}

// NewStatsProvider 任一数据源为 nil 时对应数据直接使用默认值；cache 可为 nil
func NewStatsProvider(stats interfaces.PitcherStatsSource, tendency interfaces.TeamTendencySource, lineup interfaces.LineupSource,
	cache interfaces.SnapshotCache, defaults model.Defaults, logger *logrus.Logger) *StatsProvider {
	return &StatsProvider{
		stats:    stats,
		tendency: tendency,
		lineup:   lineup,
		cache:    cache,
		defaults: defaults,
		logger:   logger,
	}
}

// Defaults 默认记录
func (p *StatsProvider) Defaults() model.Defaults { return p.defaults }

// PitcherStats 投手数据；第二个返回值表示是否使用了默认记录
func (p *StatsProvider) PitcherStats(ctx context.Context, pitcher, team string, date time.Time) (model.PitcherStats, bool) {
	if p.stats == nil || isUnannounced(pitcher) {
		return p.defaults.PitcherStats, true
	}
	key := strings.ToLower(strings.TrimSpace(pitcher))
	stats, err := load(ctx, p, model.SnapshotPitcherStats, key, date, func(ctx context.Context) (model.PitcherStats, error) {
		return p.stats.FetchPitcherStats(ctx, pitcher, team, date)
	})
	if err != nil {
		p.logger.WithError(err).WithFields(logrus.Fields{"pitcher": pitcher, "team": team}).Warn("投手数据不可用，使用默认值")
		return p.defaults.PitcherStats, true
	}
	if !stats.Handedness.Valid() {
		stats.Handedness = p.defaults.PitcherStats.Handedness
	}
	return stats, false
}

// TeamTendency 球队面对某一投球手的三振率
func (p *StatsProvider) TeamTendency(ctx context.Context, team string, vs model.Handedness, date time.Time) float64 {
	if p.tendency == nil {
		return p.defaults.TeamTendency(vs)
	}
	key := team + "|" + string(vs)
	k, err := load(ctx, p, model.SnapshotTeamTendency, key, date, func(ctx context.Context) (float64, error) {
		return p.tendency.FetchTeamTendency(ctx, team, vs, date)
	})
	if err != nil {
		p.logger.WithError(err).WithFields(logrus.Fields{"team": team, "vs": vs}).Warn("球队倾向不可用，使用默认值")
		return p.defaults.TeamTendency(vs)
	}
	return k
}

// TeamSplits 左右投两项倾向
func (p *StatsProvider) TeamSplits(ctx context.Context, team string, date time.Time) model.TeamSplits {
	return model.TeamSplits{
		VsRHP: p.TeamTendency(ctx, team, model.HandRight, date),
		VsLHP: p.TeamTendency(ctx, team, model.HandLeft, date),
	}
}

// Lineup 预计打线；第二个返回值表示是否使用了默认打线
func (p *StatsProvider) Lineup(ctx context.Context, team string, vs model.Handedness, date time.Time) ([]model.BatterProfile, bool) {
	if p.lineup == nil {
		return p.defaults.LineupFor(team), true
	}
	key := team + "|" + string(vs)
	batters, err := load(ctx, p, model.SnapshotLineup, key, date, func(ctx context.Context) ([]model.BatterProfile, error) {
		b, err := p.lineup.FetchExpectedLineup(ctx, team, vs, date)
		if err == nil && len(b) == 0 {
			err = fmt.Errorf("%w: 打线为空", interfaces.ErrUnavailable)
		}
		return b, err
	})
	if err != nil {
		p.logger.WithError(err).WithFields(logrus.Fields{"team": team, "vs": vs}).Warn("打线不可用，使用默认打线")
		return p.defaults.LineupFor(team), true
	}
	if len(batters) > model.MaxExpectedBatters {
		batters = batters[:model.MaxExpectedBatters]
	}
	return batters, false
}

// load 读缓存，未命中则在 singleflight 中请求数据源并写回缓存
func load[T any](ctx context.Context, p *StatsProvider, kind model.SnapshotKind, key string, date time.Time,
	fetch func(ctx context.Context) (T, error)) (T, error) {
	day := model.StatDay(date)
	var cached T
	if p.cache != nil {
		hit, err := p.cache.Load(ctx, kind, key, day, &cached)
		if err != nil {
			p.logger.WithError(err).WithFields(logrus.Fields{"kind": kind, "key": key}).Warn("读取快照失败")
		} else if hit {
			return cached, nil
		}
	}

	flightKey := fmt.Sprintf("%s|%s|%s", kind, day.Format("2006-01-02"), key)
	v, err, _ := p.group.Do(flightKey, func() (any, error) {
		value, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		if p.cache != nil {
			if err := p.cache.Store(ctx, kind, key, day, value); err != nil {
				p.logger.WithError(err).WithFields(logrus.Fields{"kind": kind, "key": key}).Warn("写入快照失败")
			}
		}
		return value, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

func isUnannounced(pitcher string) bool {
	p := strings.TrimSpace(pitcher)
	return p == "" || strings.EqualFold(p, "TBD")
}
