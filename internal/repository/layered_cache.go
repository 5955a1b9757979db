package repository

import (
	"context"
	"time"

	"StrikeoutSync/internal/interfaces"
	"StrikeoutSync/internal/model"

	"github.com/sirupsen/logrus"
)

// LayeredCache 依次查询各层（redis → postgres），下层命中时回填上层；写入时写所有层。
// 缓存故障只记日志，不向调用方返回错误
type LayeredCache struct {
	layers []interfaces.SnapshotCache
	names  []string
	logger *logrus.Logger
}

func NewLayeredCache(logger *logrus.Logger) *LayeredCache {
	return &LayeredCache{logger: logger}
}

// Add 追加一层，先添加的先查询
func (c *LayeredCache) Add(name string, layer interfaces.SnapshotCache) *LayeredCache {
	c.layers = append(c.layers, layer)
	c.names = append(c.names, name)
	return c
}

// Len 已配置的层数
func (c *LayeredCache) Len() int { return len(c.layers) }

func (c *LayeredCache) Load(ctx context.Context, kind model.SnapshotKind, key string, date time.Time, dst any) (bool, error) {
	for i, layer := range c.layers {
		hit, err := layer.Load(ctx, kind, key, date, dst)
		if err != nil {
			c.log(i, kind, key).WithError(err).Warn("读取快照缓存失败")
			continue
		}
		if !hit {
			continue
		}
		for j := 0; j < i; j++ {
			if err := c.layers[j].Store(ctx, kind, key, date, dst); err != nil {
				c.log(j, kind, key).WithError(err).Warn("回填快照缓存失败")
			}
		}
		return true, nil
	}
	return false, nil
}

func (c *LayeredCache) Store(ctx context.Context, kind model.SnapshotKind, key string, date time.Time, value any) error {
	for i, layer := range c.layers {
		if err := layer.Store(ctx, kind, key, date, value); err != nil {
			c.log(i, kind, key).WithError(err).Warn("写入快照缓存失败")
		}
	}
	return nil
}

func (c *LayeredCache) log(i int, kind model.SnapshotKind, key string) *logrus.Entry {
	return c.logger.WithFields(logrus.Fields{
		"layer": c.names[i],
		"kind":  kind,
		"key":   key,
	})
}
