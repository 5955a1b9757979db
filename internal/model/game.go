package model

// ScheduledGame 赛程源返回的单场比赛（尚未补全数据）
type ScheduledGame struct {
	GameID   string // 数据源侧比赛 ID，可能为空
	HomeTeam string
	AwayTeam string
	GameTime string
	// 赛程源若直接带出先发投手则填充，否则为空
	HomePitcher string
	AwayPitcher string
}

// TeamRef 前端展示用球队信息
type TeamRef struct {
	Name string `json:"name"`
	Abbr string `json:"abbr"`
	Logo string `json:"logo"`
}

// GamePitcher 单场比赛的先发投手
type GamePitcher struct {
	Name       string     `json:"name"`
	Team       string     `json:"team"`
	Hand       Handedness `json:"hand"`
	Stats      StatLine   `json:"stats"`
	Projection Projection `json:"projection"`
	// StatsDefaulted 统计不可用时使用了默认记录
	StatsDefaulted bool `json:"stats_defaulted,omitempty"`
}

// GameTeamStats 主客队三振倾向
type GameTeamStats struct {
	Home TeamSplits `json:"home"`
	Away TeamSplits `json:"away"`
}

// Game 接口返回的单场比赛，ID 仅在本次响应内有效
type Game struct {
	ID              int             `json:"id"`
	HomeTeam        TeamRef         `json:"homeTeam"`
	AwayTeam        TeamRef         `json:"awayTeam"`
	GameTime        string          `json:"gameTime"`
	HomePitcher     GamePitcher     `json:"homePitcher"`
	AwayPitcher     GamePitcher     `json:"awayPitcher"`
	TeamStats       GameTeamStats   `json:"teamStats"`
	ExpectedBatters []BatterProfile `json:"expectedBatters"`
}

// MaxExpectedBatters 每场比赛最多返回的击球员数
const MaxExpectedBatters = 8
