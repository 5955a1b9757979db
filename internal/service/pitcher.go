package service

import (
	"context"
	"strings"
	"time"

	"StrikeoutSync/internal/model"
)

// PitcherReport 单个投手查询结果
type PitcherReport struct {
	Pitcher   string             `json:"pitcher"`
	Stats     model.PitcherStats `json:"stats"`
	Defaulted bool               `json:"defaulted,omitempty"`
}

// PitcherService 单投手数据查询
type PitcherService struct {
	provider *StatsProvider
	now      func() time.Time
}

func NewPitcherService(provider *StatsProvider) *PitcherService {
	return &PitcherService{provider: provider, now: time.Now}
}

// Lookup 拿不到数据时返回默认记录并标记 Defaulted
func (s *PitcherService) Lookup(ctx context.Context, name string) PitcherReport {
	name = strings.TrimSpace(name)
	stats, defaulted := s.provider.PitcherStats(ctx, name, "", s.now())
	return PitcherReport{Pitcher: name, Stats: stats, Defaulted: defaulted}
}
