package adapter

import (
	"fmt"
	"sort"

	"StrikeoutSync/internal/config"
	"StrikeoutSync/internal/interfaces"

	"github.com/sirupsen/logrus"
)

// SourceRegistry 按配置实例化的数据源
type SourceRegistry struct {
	logger *logrus.Logger
	// 存储数据源名称→实例的映射
	sources map[string]interfaces.Source
}

func NewSourceRegistry(cfg *config.Config, logger *logrus.Logger) *SourceRegistry {
	r := &SourceRegistry{
		logger:  logger,
		sources: make(map[string]interfaces.Source),
	}
	r.initFromFactories(cfg)
	return r
}

// initFromFactories 遍历配置中的数据源，匹配工厂函数创建实例
func (r *SourceRegistry) initFromFactories(cfg *config.Config) {
	r.logger.WithField("factories", ListFactories()).Debug("已注册的数据源工厂函数")

	for _, name := range cfg.SourceNames() {
		sourceCfg := cfg.Sources[name]
		sourceCfg.Name = name

		factory, ok := GetFactory(name)
		if !ok {
			r.logger.WithField("source", name).Error("未找到对应的工厂函数（init未注册？）")
			continue
		}

		src := factory(&sourceCfg, r.logger)
		if src == nil {
			r.logger.WithField("source", name).Error("工厂函数返回nil实例")
			continue
		}
		if src.GetName() != name {
			r.logger.WithFields(logrus.Fields{
				"config_source":  name,
				"adapter_source": src.GetName(),
			}).Error("数据源名称与配置不匹配")
			continue
		}
		r.sources[name] = src
	}
	r.logger.WithField("sources", r.Names()).Info("数据源初始化完成")
}

// Add 直接注入实例，测试与手动装配时使用
func (r *SourceRegistry) Add(src interfaces.Source) {
	r.sources[src.GetName()] = src
}

// Names 已初始化的数据源（排序后）
func (r *SourceRegistry) Names() []string {
	names := make([]string, 0, len(r.sources))
	for n := range r.sources {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (r *SourceRegistry) get(name string) (interfaces.Source, error) {
	src, ok := r.sources[name]
	if !ok {
		return nil, fmt.Errorf("数据源%s未初始化（已初始化：%v）", name, r.Names())
	}
	return src, nil
}

// Schedule 获取赛程数据源
func (r *SourceRegistry) Schedule(name string) (interfaces.ScheduleSource, error) {
	return lookup[interfaces.ScheduleSource](r, name, "赛程")
}

// ProbablePitchers 获取先发投手数据源
func (r *SourceRegistry) ProbablePitchers(name string) (interfaces.ProbablePitcherSource, error) {
	return lookup[interfaces.ProbablePitcherSource](r, name, "先发投手")
}

// PitcherStats 获取投手数据源
func (r *SourceRegistry) PitcherStats(name string) (interfaces.PitcherStatsSource, error) {
	return lookup[interfaces.PitcherStatsSource](r, name, "投手数据")
}

// TeamTendency 获取球队三振倾向数据源
func (r *SourceRegistry) TeamTendency(name string) (interfaces.TeamTendencySource, error) {
	return lookup[interfaces.TeamTendencySource](r, name, "球队倾向")
}

// Lineup 获取打线数据源
func (r *SourceRegistry) Lineup(name string) (interfaces.LineupSource, error) {
	return lookup[interfaces.LineupSource](r, name, "打线")
}

func lookup[T interfaces.Source](r *SourceRegistry, name, capability string) (T, error) {
	var zero T
	src, err := r.get(name)
	if err != nil {
		return zero, err
	}
	typed, ok := src.(T)
	if !ok {
		return zero, fmt.Errorf("数据源%s不提供%s", name, capability)
	}
	return typed, nil
}
