package service

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"StrikeoutSync/internal/adapter"
	"StrikeoutSync/internal/config"
	"StrikeoutSync/internal/interfaces"
	"StrikeoutSync/internal/model"
	"StrikeoutSync/internal/normalizer"
	"StrikeoutSync/internal/projection"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// TeamLogo 前端统一使用的球队图标
const TeamLogo = "⚾"

// ErrNoGames 当日没有可返回的比赛
var ErrNoGames = errors.New("no games available")

// Sources 组装赛程所需的数据源；Pitchers/Stats/Tendency/Lineup 可为 nil（改用默认值）
type Sources struct {
	Schedule interfaces.ScheduleSource
	Pitchers interfaces.ProbablePitcherSource
	Stats    interfaces.PitcherStatsSource
	Tendency interfaces.TeamTendencySource
	Lineup   interfaces.LineupSource
}

// SourcesFromRegistry 按 slate 配置从注册表取出各数据源
func SourcesFromRegistry(reg *adapter.SourceRegistry, cfg config.SlateConfig) (Sources, error) {
	var (
		src Sources
		err error
	)
	if src.Schedule, err = reg.Schedule(cfg.ScheduleSource); err != nil {
		return Sources{}, fmt.Errorf("赛程数据源不可用: %w", err)
	}
	if cfg.PitcherSource != "" {
		if src.Pitchers, err = reg.ProbablePitchers(cfg.PitcherSource); err != nil {
			return Sources{}, fmt.Errorf("先发投手数据源不可用: %w", err)
		}
	}
	if cfg.StatsSource != "" {
		if src.Stats, err = reg.PitcherStats(cfg.StatsSource); err != nil {
			return Sources{}, fmt.Errorf("投手数据源不可用: %w", err)
		}
	}
	if cfg.TendencySource != "" {
		if src.Tendency, err = reg.TeamTendency(cfg.TendencySource); err != nil {
			return Sources{}, fmt.Errorf("球队倾向数据源不可用: %w", err)
		}
	}
	if cfg.LineupSource != "" {
		if src.Lineup, err = reg.Lineup(cfg.LineupSource); err != nil {
			return Sources{}, fmt.Errorf("打线数据源不可用: %w", err)
		}
	}
	return src, nil
}

// SlateService 组装当日全部对阵及双方先发的三振预测
type SlateService struct {
	schedule interfaces.ScheduleSource
	pitchers interfaces.ProbablePitcherSource
	provider *StatsProvider
	cfg      config.SlateConfig
	logger   *logrus.Logger
}

func NewSlateService(src Sources, provider *StatsProvider, cfg config.SlateConfig, logger *logrus.Logger) *SlateService {
	return &SlateService{
		schedule: src.Schedule,
		pitchers: src.Pitchers,
		provider: provider,
		cfg:      cfg,
		logger:   logger,
	}
}

// matchup 已分配具体球队与先发投手的单场比赛
type matchup struct {
	game        model.ScheduledGame
	homeTeam    string
	awayTeam    string
	homePitcher string
	awayPitcher string
}

// TodaysGames 返回 date 当天的比赛。单场比赛失败只跳过该场；
// 一场都组装不出来时返回 ErrNoGames（开启 sample_fallback 时返回示例比赛）
func (s *SlateService) TodaysGames(ctx context.Context, date time.Time) ([]model.Game, error) {
	if s.cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(s.cfg.RequestTimeout)*time.Second)
		defer cancel()
	}
	log := s.logger.WithField("date", date.Format("2006-01-02"))

	scheduled, err := s.schedule.FetchSchedule(ctx, date)
	if err != nil {
		log.WithError(err).WithField("source", s.schedule.GetName()).Error("获取赛程失败")
		return s.fallback(fmt.Errorf("%w: 获取赛程失败: %w", ErrNoGames, err))
	}
	if len(scheduled) == 0 {
		log.Warn("当日无赛程")
		return s.fallback(ErrNoGames)
	}
	if s.cfg.MaxGames > 0 && len(scheduled) > s.cfg.MaxGames {
		scheduled = scheduled[:s.cfg.MaxGames]
	}

	matchups := s.assignPitchers(ctx, date, scheduled)

	workers := s.cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	results := make([]*model.Game, len(matchups))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, m := range matchups {
		i, m := i, m
		g.Go(func() error {
			game, err := s.buildGameSafe(gctx, date, m)
			if err != nil {
				log.WithError(err).WithFields(logrus.Fields{
					"index": i,
					"home":  m.game.HomeTeam,
					"away":  m.game.AwayTeam,
				}).Warn("比赛组装失败，跳过")
				return nil
			}
			results[i] = game
			return nil
		})
	}
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	games := make([]model.Game, 0, len(results))
	for _, game := range results {
		if game == nil {
			continue
		}
		game.ID = len(games) + 1
		games = append(games, *game)
	}
	if len(games) == 0 {
		return s.fallback(ErrNoGames)
	}
	log.WithFields(logrus.Fields{"scheduled": len(scheduled), "games": len(games)}).Info("当日比赛组装完成")
	return games, nil
}

func (s *SlateService) fallback(err error) ([]model.Game, error) {
	if s.cfg.SampleFallback {
		s.logger.WithError(err).Warn("使用示例比赛")
		return SampleSlate(), nil
	}
	return nil, err
}

// assignPitchers 顺序分配先发，保证同一投手在本次响应中只出现一次；
// 只给城市名的球队在这里落到具体球队，后续统计都按该球队查询
func (s *SlateService) assignPitchers(ctx context.Context, date time.Time, games []model.ScheduledGame) []matchup {
	var byTeam map[string]string
	if s.pitchers != nil {
		m, err := s.pitchers.FetchProbablePitchers(ctx, date)
		if err != nil {
			s.logger.WithError(err).WithField("source", s.pitchers.GetName()).Warn("获取先发投手失败，仅使用赛程自带数据")
		}
		byTeam = m
	}
	assigner := normalizer.NewPitcherAssigner(byTeam)
	pick := func(identity, carried string) (string, string) {
		r := assigner.AssignTeam(identity, carried)
		if !r.Found {
			return r.Team, s.provider.Defaults().ProbablePitcher
		}
		return r.Team, r.Pitcher
	}

	out := make([]matchup, len(games))
	for i, g := range games {
		out[i] = matchup{game: g}
		out[i].homeTeam, out[i].homePitcher = pick(g.HomeTeam, g.HomePitcher)
		out[i].awayTeam, out[i].awayPitcher = pick(g.AwayTeam, g.AwayPitcher)
	}
	return out
}

// buildGameSafe 单场比赛的 panic 不影响其他比赛
func (s *SlateService) buildGameSafe(ctx context.Context, date time.Time, m matchup) (game *model.Game, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.WithField("stack", string(debug.Stack())).Error("组装比赛时发生panic")
			game, err = nil, fmt.Errorf("panic: %v", r)
		}
	}()
	return s.buildGame(ctx, date, m)
}

func (s *SlateService) buildGame(ctx context.Context, date time.Time, m matchup) (*model.Game, error) {
	home, away := m.homeTeam, m.awayTeam
	if strings.TrimSpace(home) == "" || strings.TrimSpace(away) == "" {
		return nil, errors.New("缺少主队或客队")
	}

	homeStats, homeDefaulted := s.provider.PitcherStats(ctx, m.homePitcher, home, date)
	awayStats, awayDefaulted := s.provider.PitcherStats(ctx, m.awayPitcher, away, date)
	homeSplits := s.provider.TeamSplits(ctx, home, date)
	awaySplits := s.provider.TeamSplits(ctx, away, date)
	// 主队击球员面对客队先发，反之亦然
	homeBatters, _ := s.provider.Lineup(ctx, home, awayStats.Handedness, date)
	awayBatters, _ := s.provider.Lineup(ctx, away, homeStats.Handedness, date)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	homeProj, homeStats, homeReset, err := s.project(homeStats, awaySplits.For(homeStats.Handedness), awayBatters, away)
	if err != nil {
		return nil, fmt.Errorf("主队先发 %s: %w", m.homePitcher, err)
	}
	awayProj, awayStats, awayReset, err := s.project(awayStats, homeSplits.For(awayStats.Handedness), homeBatters, home)
	if err != nil {
		return nil, fmt.Errorf("客队先发 %s: %w", m.awayPitcher, err)
	}

	expected := append(append([]model.BatterProfile{}, homeBatters...), awayBatters...)
	if len(expected) > model.MaxExpectedBatters {
		expected = expected[:model.MaxExpectedBatters]
	}

	return &model.Game{
		HomeTeam: teamRef(home),
		AwayTeam: teamRef(away),
		GameTime: m.game.GameTime,
		HomePitcher: model.GamePitcher{
			Name:           s.displayName(m.homePitcher, home),
			Team:           home,
			Hand:           homeStats.Handedness,
			Stats:          homeStats.Line(),
			Projection:     homeProj,
			StatsDefaulted: homeDefaulted || homeReset,
		},
		AwayPitcher: model.GamePitcher{
			Name:           s.displayName(m.awayPitcher, away),
			Team:           away,
			Hand:           awayStats.Handedness,
			Stats:          awayStats.Line(),
			Projection:     awayProj,
			StatsDefaulted: awayDefaulted || awayReset,
		},
		TeamStats: model.GameTeamStats{
			Home: homeSplits,
			Away: awaySplits,
		},
		ExpectedBatters: expected,
	}, nil
}

// project 引擎拒绝时依次改用默认打线、全部默认值重试；
// 返回实际参与计算的投手数据，以及是否被重置为默认值
func (s *SlateService) project(stats model.PitcherStats, opponentK float64, batters []model.BatterProfile, opponent string) (model.Projection, model.PitcherStats, bool, error) {
	p, err := projection.Project(stats, opponentK, batters)
	if err == nil {
		return p, stats, false, nil
	}
	defaults := s.provider.Defaults()
	log := s.logger.WithError(err).WithField("opponent", opponent)

	if errors.Is(err, projection.ErrInsufficientLineup) {
		log.Warn("对方打线不足，改用默认打线")
		if p, err = projection.Project(stats, opponentK, defaults.LineupFor(opponent)); err == nil {
			return p, stats, false, nil
		}
	}

	log.Warn("预测输入无效，改用默认投手数据")
	ds := defaults.PitcherStats
	p, err = projection.Project(ds, defaults.TeamTendency(ds.Handedness), defaults.LineupFor(opponent))
	if err != nil {
		return model.Projection{}, stats, false, err
	}
	return p, ds, true, nil
}

// displayName 未公布的先发显示为 "{球队} Starter"
func (s *SlateService) displayName(pitcher, team string) string {
	if isUnannounced(pitcher) || pitcher == s.provider.Defaults().ProbablePitcher {
		return team + " Starter"
	}
	return pitcher
}

func teamRef(name string) model.TeamRef {
	return model.TeamRef{
		Name: name,
		Abbr: normalizer.ResolveTeamAbbreviation(name),
		Logo: TeamLogo,
	}
}
