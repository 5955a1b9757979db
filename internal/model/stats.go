package model

import "strings"

// Handedness 投手/击球员惯用手
type Handedness string

const (
	HandLeft  Handedness = "L"
	HandRight Handedness = "R"
)

// ParseHandedness 解析数据源返回的惯用手代码，兼容 "Left"/"Right" 全称
func ParseHandedness(raw string) (Handedness, bool) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "L", "LEFT", "LHP":
		return HandLeft, true
	case "R", "RIGHT", "RHP":
		return HandRight, true
	default:
		return "", false
	}
}

// Valid 是否为 L/R 之一
func (h Handedness) Valid() bool {
	return h == HandLeft || h == HandRight
}

// Opposite 返回相反的一侧（换边打者面对该投手时站在对侧）
func (h Handedness) Opposite() Handedness {
	if h == HandLeft {
		return HandRight
	}
	return HandLeft
}

// PitcherStats 投手在抓取时刻的统计快照
type PitcherStats struct {
	K9              float64    `json:"k9" mapstructure:"k9"`                               // 每九局三振
	KPercent        float64    `json:"k_percent" mapstructure:"k_percent"`                 // 三振率(%)
	WhiffRate       float64    `json:"whiff_rate" mapstructure:"whiff_rate"`               // 挥空率(%)
	SwingStrikeRate float64    `json:"swing_strike_rate" mapstructure:"swing_strike_rate"` // 挥棒落空好球率(%)
	ERA             float64    `json:"era" mapstructure:"era"`
	WHIP            float64    `json:"whip" mapstructure:"whip"`
	Handedness      Handedness `json:"handedness" mapstructure:"handedness"`
}

// StatLine 返回给前端的数据行（惯用手在投手层单独给出）
type StatLine struct {
	K9              float64 `json:"k9"`
	KPercent        float64 `json:"k_percent"`
	WhiffRate       float64 `json:"whiff_rate"`
	SwingStrikeRate float64 `json:"swing_strike_rate"`
	ERA             float64 `json:"era"`
	WHIP            float64 `json:"whip"`
}

// Line 去掉惯用手后的展示数据
func (s PitcherStats) Line() StatLine {
	return StatLine{
		K9:              s.K9,
		KPercent:        s.KPercent,
		WhiffRate:       s.WhiffRate,
		SwingStrikeRate: s.SwingStrikeRate,
		ERA:             s.ERA,
		WHIP:            s.WHIP,
	}
}

// BatterProfile 预计出场击球员
type BatterProfile struct {
	Name             string     `json:"name"`
	KRate            float64    `json:"k_rate"`
	Handedness       Handedness `json:"handedness"`
	VsPitcherHistory int        `json:"vs_pitcher_history"` // 历史对位中被该投手三振次数
}

// TeamSplits 球队面对左/右投的三振倾向(%)
type TeamSplits struct {
	VsRHP float64 `json:"vsRHP"`
	VsLHP float64 `json:"vsLHP"`
}

// For 按投手惯用手取对应倾向
func (t TeamSplits) For(pitcherHand Handedness) float64 {
	if pitcherHand == HandLeft {
		return t.VsLHP
	}
	return t.VsRHP
}
