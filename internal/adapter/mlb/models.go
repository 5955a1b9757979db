package mlb

// statsapi.mlb.com 响应结构，只保留用到的字段

type scheduleResponse struct {
	Dates []struct {
		Date  string         `json:"date"`
		Games []scheduleGame `json:"games"`
	} `json:"dates"`
}

type scheduleGame struct {
	GamePk   int64  `json:"gamePk"`
	GameDate string `json:"gameDate"`
	Status   struct {
		DetailedState string `json:"detailedState"`
	} `json:"status"`
	Teams struct {
		Away scheduleSide `json:"away"`
		Home scheduleSide `json:"home"`
	} `json:"teams"`
}

type scheduleSide struct {
	Team struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"team"`
	ProbablePitcher *struct {
		ID       int    `json:"id"`
		FullName string `json:"fullName"`
	} `json:"probablePitcher"`
}

type teamsResponse struct {
	Teams []teamInfo `json:"teams"`
}

type teamInfo struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	TeamName     string `json:"teamName"`
	Abbreviation string `json:"abbreviation"`
}

type statsResponse struct {
	Stats []struct {
		Splits []statSplit `json:"splits"`
	} `json:"stats"`
}

type statSplit struct {
	Season string `json:"season"`
	Split  struct {
		Code string `json:"code"`
	} `json:"split"`
	Stat seasonStat `json:"stat"`
}

// seasonStat 击球与投球统计共用；数值型的比率字段 statsapi 以字符串返回
type seasonStat struct {
	StrikeOuts        int    `json:"strikeOuts"`
	PlateAppearances  int    `json:"plateAppearances"`
	BattersFaced      int    `json:"battersFaced"`
	InningsPitched    string `json:"inningsPitched"`
	ERA               string `json:"era"`
	WHIP              string `json:"whip"`
	NumberOfPitches   int    `json:"numberOfPitches"`
	Strikes           int    `json:"strikes"`
	StrikeoutsPer9Inn string `json:"strikeoutsPer9Inn"`
}

type rosterResponse struct {
	Roster []struct {
		Person   person `json:"person"`
		Position struct {
			Code         string `json:"code"`
			Type         string `json:"type"`
			Abbreviation string `json:"abbreviation"`
		} `json:"position"`
	} `json:"roster"`
}

type peopleResponse struct {
	People []person `json:"people"`
}

type person struct {
	ID        int    `json:"id"`
	FullName  string `json:"fullName"`
	BatSide   code   `json:"batSide"`
	PitchHand code   `json:"pitchHand"`
	Primary   code   `json:"primaryPosition"`
	Stats     []struct {
		Group struct {
			DisplayName string `json:"displayName"`
		} `json:"group"`
		Splits []statSplit `json:"splits"`
	} `json:"stats"`
}

type code struct {
	Code string `json:"code"`
}
