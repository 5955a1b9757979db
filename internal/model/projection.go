package model

// Projection 投手三振预测，按请求实时计算，不落库
type Projection struct {
	ProjectedStrikeouts float64 `json:"projected_strikeouts"`
	Confidence          int     `json:"confidence"`
	BettingLine         string  `json:"betting_line"`
	// LineThreshold 即 BettingLine 中的数值，便于调用方比较
	LineThreshold float64 `json:"-"`
}
