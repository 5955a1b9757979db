package model

import (
	"time"

	"gorm.io/datatypes"
)

// SnapshotKind 统计快照类型
type SnapshotKind string

const (
	SnapshotPitcherStats SnapshotKind = "pitcher_stats"
	SnapshotTeamTendency SnapshotKind = "team_tendency"
	SnapshotLineup       SnapshotKind = "lineup"
)

// StatSnapshot 当日抓取到的原始统计（不含预测结果），同一天重复请求直接复用
type StatSnapshot struct {
	ID         uint64         `gorm:"column:id;primaryKey;autoIncrement;comment:自增主键ID"`
	Kind       string         `gorm:"column:kind;type:varchar(32);not null;uniqueIndex:uq_snapshot_subject;comment:快照类型"`
	SubjectKey string         `gorm:"column:subject_key;type:varchar(160);not null;uniqueIndex:uq_snapshot_subject;comment:投手名/球队+惯用手"`
	StatDate   time.Time      `gorm:"column:stat_date;type:date;not null;uniqueIndex:uq_snapshot_subject;comment:统计日期"`
	Payload    datatypes.JSON `gorm:"column:payload;type:jsonb;not null;comment:统计内容"`
	CreatedAt  time.Time      `gorm:"column:created_at;type:timestamp;default:now();comment:创建时间"`
	UpdatedAt  time.Time      `gorm:"column:updated_at;type:timestamp;default:now();comment:更新时间"`
}

func (StatSnapshot) TableName() string { return "stat_snapshots" }

// StatDay 将时间截断为当天（UTC 零点），作为快照日期键
func StatDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
