package interfaces

import (
	"context"
	"time"

	"StrikeoutSync/internal/model"
)

// SnapshotCache 原始统计数据的快照缓存（redis / postgres）
type SnapshotCache interface {
	// Load 命中时把快照反序列化进 dst 并返回 true
	Load(ctx context.Context, kind model.SnapshotKind, key string, date time.Time, dst any) (bool, error)
	Store(ctx context.Context, kind model.SnapshotKind, key string, date time.Time, value any) error
}
