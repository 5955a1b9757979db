package model

import "fmt"

// LineupDefault 默认打线模板
type LineupDefault struct {
	Size             int
	KRate            float64
	Handedness       Handedness
	VsPitcherHistory int
	NameFormat       string // 如 "%s Batter %d"，参数为球队名与序号
}

// Defaults 上游数据缺失时的统一默认记录（由配置注入）
type Defaults struct {
	ProbablePitcher string
	PitcherStats    PitcherStats
	TeamKVsRHP      float64
	TeamKVsLHP      float64
	Lineup          LineupDefault
}

// TeamTendency 默认球队三振倾向
func (d Defaults) TeamTendency(pitcherHand Handedness) float64 {
	if pitcherHand == HandLeft {
		return d.TeamKVsLHP
	}
	return d.TeamKVsRHP
}

// TeamSplits 默认左右投倾向
func (d Defaults) TeamSplits() TeamSplits {
	return TeamSplits{VsRHP: d.TeamKVsRHP, VsLHP: d.TeamKVsLHP}
}

// LineupFor 生成某队的默认打线
func (d Defaults) LineupFor(team string) []BatterProfile {
	size := d.Lineup.Size
	if size > MaxExpectedBatters {
		size = MaxExpectedBatters
	}
	batters := make([]BatterProfile, 0, size)
	for i := 0; i < size; i++ {
		batters = append(batters, BatterProfile{
			Name:             d.batterName(team, i+1),
			KRate:            d.Lineup.KRate,
			Handedness:       d.Lineup.Handedness,
			VsPitcherHistory: d.Lineup.VsPitcherHistory,
		})
	}
	return batters
}

func (d Defaults) batterName(team string, n int) string {
	if team == "" || d.Lineup.NameFormat == "" {
		return fmt.Sprintf("Batter %d", n)
	}
	return fmt.Sprintf(d.Lineup.NameFormat, team, n)
}
