package service

import (
	"StrikeoutSync/internal/model"
	"StrikeoutSync/internal/projection"
)

// sampleBatters 示例比赛的预计打线
var sampleBatters = []model.BatterProfile{
	{Name: "Rafael Devers", KRate: 18.5, Handedness: model.HandLeft, VsPitcherHistory: 3},
	{Name: "Xander Bogaerts", KRate: 15.2, Handedness: model.HandRight, VsPitcherHistory: 1},
	{Name: "J.D. Martinez", KRate: 24.1, Handedness: model.HandRight, VsPitcherHistory: 5},
	{Name: "Alex Verdugo", KRate: 19.8, Handedness: model.HandLeft, VsPitcherHistory: 2},
	{Name: "Aaron Judge", KRate: 28.2, Handedness: model.HandRight, VsPitcherHistory: 4},
	{Name: "Anthony Rizzo", KRate: 22.1, Handedness: model.HandLeft, VsPitcherHistory: 2},
	{Name: "Gleyber Torres", KRate: 20.5, Handedness: model.HandRight, VsPitcherHistory: 3},
	{Name: "Giancarlo Stanton", KRate: 31.8, Handedness: model.HandRight, VsPitcherHistory: 6},
}

// SampleSlate 上游全部不可用时的示例比赛，预测仍由引擎实时计算
func SampleSlate() []model.Game {
	cole := model.PitcherStats{K9: 11.2, KPercent: 28.5, WhiffRate: 32.1, SwingStrikeRate: 14.8, ERA: 3.20, WHIP: 1.15, Handedness: model.HandRight}
	sale := model.PitcherStats{K9: 12.1, KPercent: 31.2, WhiffRate: 35.4, SwingStrikeRate: 16.2, ERA: 2.90, WHIP: 1.05, Handedness: model.HandLeft}
	home := model.TeamSplits{VsRHP: 22.1, VsLHP: 24.8}
	away := model.TeamSplits{VsRHP: 23.4, VsLHP: 21.9}

	// 示例数据固定且合法，不会被引擎拒绝
	coleProj, _ := projection.Project(cole, away.For(cole.Handedness), sampleBatters)
	saleProj, _ := projection.Project(sale, home.For(sale.Handedness), sampleBatters)

	batters := make([]model.BatterProfile, len(sampleBatters))
	copy(batters, sampleBatters)
	return []model.Game{{
		ID:       1,
		HomeTeam: model.TeamRef{Name: "Yankees", Abbr: "NYY", Logo: TeamLogo},
		AwayTeam: model.TeamRef{Name: "Red Sox", Abbr: "BOS", Logo: TeamLogo},
		GameTime: "7:05 PM ET",
		HomePitcher: model.GamePitcher{
			Name: "Gerrit Cole", Team: "Yankees", Hand: cole.Handedness,
			Stats: cole.Line(), Projection: coleProj,
		},
		AwayPitcher: model.GamePitcher{
			Name: "Chris Sale", Team: "Red Sox", Hand: sale.Handedness,
			Stats: sale.Line(), Projection: saleProj,
		},
		TeamStats:       model.GameTeamStats{Home: home, Away: away},
		ExpectedBatters: batters,
	}}
}
