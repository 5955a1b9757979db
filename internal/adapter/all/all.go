// Package all 导入全部数据源，触发各自的init注册
package all

import (
	_ "StrikeoutSync/internal/adapter/bbref"
	_ "StrikeoutSync/internal/adapter/espn"
	_ "StrikeoutSync/internal/adapter/mlb"
)
