package interfaces

import (
	"context"
	"errors"
	"time"

	"StrikeoutSync/internal/config"
	"StrikeoutSync/internal/model"

	"github.com/sirupsen/logrus"
)

// ErrUnavailable 数据源暂时拿不到数据（未公布、解析失败、上游报错），调用方应改用默认值
var ErrUnavailable = errors.New("data unavailable")

// Source 所有数据源必须实现的核心接口
type Source interface {
	GetName() string // 数据源名称
}

// ScheduleSource 赛程
type ScheduleSource interface {
	Source
	FetchSchedule(ctx context.Context, date time.Time) ([]model.ScheduledGame, error)
}

// ProbablePitcherSource 球队全称 → 先发投手；未公布的球队不出现在结果中
type ProbablePitcherSource interface {
	Source
	FetchProbablePitchers(ctx context.Context, date time.Time) (map[string]string, error)
}

// PitcherStatsSource 投手赛季数据
type PitcherStatsSource interface {
	Source
	FetchPitcherStats(ctx context.Context, pitcher, team string, date time.Time) (model.PitcherStats, error)
}

// TeamTendencySource 球队对某一投球手的三振率（百分比）
type TeamTendencySource interface {
	Source
	FetchTeamTendency(ctx context.Context, team string, vs model.Handedness, date time.Time) (float64, error)
}

// LineupSource 预计打线（最多 8 人）
type LineupSource interface {
	Source
	FetchExpectedLineup(ctx context.Context, team string, vs model.Handedness, date time.Time) ([]model.BatterProfile, error)
}

// Factory 数据源工厂函数签名
// 入参：数据源配置、日志实例
// 出参：至少实现 Source 的实例，具体能力由注册表按接口断言识别
type Factory func(cfg *config.SourceConfig, logger *logrus.Logger) Source
