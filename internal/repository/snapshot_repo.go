package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"StrikeoutSync/internal/interfaces"
	"StrikeoutSync/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SnapshotRepository 统计快照仓储（PostgreSQL）
type SnapshotRepository interface {
	interfaces.SnapshotCache
	// PurgeBefore 删除统计日期早于 before 的快照
	PurgeBefore(ctx context.Context, before time.Time) (int64, error)
}

type snapshotRepository struct {
	db  *gorm.DB
	ttl time.Duration // 0 表示当日一直有效
	now func() time.Time
}

func NewSnapshotRepository(db *gorm.DB, ttl time.Duration) SnapshotRepository {
	return &snapshotRepository{db: db, ttl: ttl, now: time.Now}
}

func (r *snapshotRepository) Load(ctx context.Context, kind model.SnapshotKind, key string, date time.Time, dst any) (bool, error) {
	var snap model.StatSnapshot
	err := r.db.WithContext(ctx).
		Where("kind = ? AND subject_key = ? AND stat_date = ?", string(kind), key, model.StatDay(date)).
		First(&snap).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("查询快照失败: %w", err)
	}
	if r.ttl > 0 && r.now().Sub(snap.UpdatedAt) > r.ttl {
		return false, nil
	}
	if err := json.Unmarshal(snap.Payload, dst); err != nil {
		return false, fmt.Errorf("快照内容解析失败: %w, kind: %s, key: %s", err, kind, key)
	}
	return true, nil
}

func (r *snapshotRepository) Store(ctx context.Context, kind model.SnapshotKind, key string, date time.Time, value any) error {
	snap, err := newSnapshot(kind, key, date, value, r.now())
	if err != nil {
		return err
	}
	if err := r.upsert(ctx, snap).Error; err != nil {
		return fmt.Errorf("保存快照失败: %w, kind: %s, key: %s", err, kind, key)
	}
	return nil
}

// upsert 同一 (kind, subject_key, stat_date) 只保留最新一份
func (r *snapshotRepository) upsert(ctx context.Context, snap *model.StatSnapshot) *gorm.DB {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "kind"}, {Name: "subject_key"}, {Name: "stat_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(snap)
}

func (r *snapshotRepository) PurgeBefore(ctx context.Context, before time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Where("stat_date < ?", model.StatDay(before)).Delete(&model.StatSnapshot{})
	if res.Error != nil {
		return 0, fmt.Errorf("清理快照失败: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func newSnapshot(kind model.SnapshotKind, key string, date time.Time, value any, now time.Time) (*model.StatSnapshot, error) {
	payload, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("快照序列化失败: %w", err)
	}
	return &model.StatSnapshot{
		Kind:       string(kind),
		SubjectKey: key,
		StatDate:   model.StatDay(date),
		Payload:    datatypes.JSON(payload),
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}
