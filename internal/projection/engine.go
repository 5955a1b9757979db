// Package projection 根据投手统计、对手三振倾向和对方打线计算三振预测。
// 纯函数，无 I/O，无共享状态，可并发调用。
package projection

import (
	"errors"
	"fmt"
	"math"

	"StrikeoutSync/internal/model"
)

const (
	// InningsFactor 按每场先发约 6.75 局折算 k9
	InningsFactor = 0.75
	// LeagueAverageKRate 联盟平均三振率(%)
	LeagueAverageKRate = 23.0
	// BatterWeight 打线三振率的加权系数
	BatterWeight = 0.3
	// MaxConfidence 置信度上限
	MaxConfidence = 95.0

	factorCap         = 100.0
	k9ConfidenceScale = 8.0
	kPercentScale     = 3.0
	opponentKScale    = 3.0
)

var (
	// ErrInsufficientLineup 对方打线为空，无法计算打线修正
	ErrInsufficientLineup = errors.New("insufficient lineup data")
	// ErrInvalidInput 输入含负数、越界、NaN 或惯用手不是 L/R
	ErrInvalidInput = errors.New("invalid projection input")
)

// Project 计算单个投手对位的三振预测。
// 返回错误时 Projection 为零值，调用方需用 errors.Is 区分拒绝原因，不要把它当作 0 三振。
func Project(stats model.PitcherStats, opponentK float64, batters []model.BatterProfile) (model.Projection, error) {
	if err := Validate(stats, opponentK, batters); err != nil {
		return model.Projection{}, err
	}

	base := stats.K9 * InningsFactor
	opponentAdjustment := (opponentK - LeagueAverageKRate) / 100
	adjusted := base * (1 + opponentAdjustment)
	batterAdjustment := meanKRate(batters) / 100
	final := adjusted * (1 + batterAdjustment*BatterWeight)

	threshold := roundHalf(final) - 0.5
	return model.Projection{
		ProjectedStrikeouts: roundTo(final, 1),
		Confidence:          confidence(stats, opponentK),
		BettingLine:         FormatLine(threshold),
		LineThreshold:       threshold,
	}, nil
}

// Validate 校验引擎输入，错误包装 ErrInsufficientLineup 或 ErrInvalidInput
func Validate(stats model.PitcherStats, opponentK float64, batters []model.BatterProfile) error {
	if len(batters) == 0 {
		return ErrInsufficientLineup
	}
	checks := []struct {
		name  string
		value float64
		max   float64
	}{
		{"k9", stats.K9, math.Inf(1)},
		{"k_percent", stats.KPercent, 100},
		{"whiff_rate", stats.WhiffRate, 100},
		{"swing_strike_rate", stats.SwingStrikeRate, 100},
		{"era", stats.ERA, math.Inf(1)},
		{"whip", stats.WHIP, math.Inf(1)},
		{"opponent_k_tendency", opponentK, 100},
	}
	for _, c := range checks {
		if err := checkRange(c.name, c.value, c.max); err != nil {
			return err
		}
	}
	if !stats.Handedness.Valid() {
		return fmt.Errorf("%w: handedness=%q", ErrInvalidInput, stats.Handedness)
	}
	for i, b := range batters {
		if err := checkRange(fmt.Sprintf("batters[%d].k_rate", i), b.KRate, 100); err != nil {
			return err
		}
		if !b.Handedness.Valid() {
			return fmt.Errorf("%w: batters[%d].handedness=%q", ErrInvalidInput, i, b.Handedness)
		}
		if b.VsPitcherHistory < 0 {
			return fmt.Errorf("%w: batters[%d].vs_pitcher_history=%d", ErrInvalidInput, i, b.VsPitcherHistory)
		}
	}
	return nil
}

func checkRange(name string, v, max float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v > max {
		return fmt.Errorf("%w: %s=%v", ErrInvalidInput, name, v)
	}
	return nil
}

func meanKRate(batters []model.BatterProfile) float64 {
	total := 0.0
	for _, b := range batters {
		total += b.KRate
	}
	return total / float64(len(batters))
}

func confidence(stats model.PitcherStats, opponentK float64) int {
	factors := []float64{
		math.Min(factorCap, stats.K9*k9ConfidenceScale),
		math.Min(factorCap, stats.KPercent*kPercentScale),
		math.Min(factorCap, opponentK*opponentKScale),
	}
	total := 0.0
	for _, f := range factors {
		total += f
	}
	c := math.Round(math.Min(MaxConfidence, total/float64(len(factors))))
	return int(math.Max(0, c))
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

// roundHalf 四舍五入到最近的 0.5
func roundHalf(v float64) float64 {
	return math.Round(v*2) / 2
}
