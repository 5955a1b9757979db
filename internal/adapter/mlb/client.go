// Package mlb statsapi.mlb.com 数据源：赛程、先发投手、球队左右投三振率、打线、投手赛季数据
package mlb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"StrikeoutSync/internal/adapter"
	"StrikeoutSync/internal/config"
	"StrikeoutSync/internal/interfaces"
	"StrikeoutSync/internal/utils/httpclient"

	"github.com/sirupsen/logrus"
)

const Name = "mlb"

// init 向全局注册表注册工厂函数
func init() {
	adapter.Register(Name, New)
}

// Adapter statsapi 适配器
type Adapter struct {
	cfg    *config.SourceConfig
	client *http.Client
	logger *logrus.Logger
	loc    *time.Location

	teamsMu sync.Mutex
	teams   map[int][]teamInfo // 赛季 → 球队列表
}

// New 工厂函数
func New(cfg *config.SourceConfig, logger *logrus.Logger) interfaces.Source {
	loc := time.UTC
	if cfg.Timezone != "" {
		if l, err := time.LoadLocation(cfg.Timezone); err == nil {
			loc = l
		} else {
			logger.WithError(err).WithField("timezone", cfg.Timezone).Warn("时区无效，使用UTC")
		}
	}
	return &Adapter{
		cfg:    cfg,
		client: httpclient.NewHTTPClient(cfg, logger),
		logger: logger,
		loc:    loc,
		teams:  make(map[int][]teamInfo),
	}
}

func (a *Adapter) GetName() string { return Name }

func (a *Adapter) season(date time.Time) int {
	if a.cfg.Season > 0 {
		return a.cfg.Season
	}
	return date.Year()
}

func (a *Adapter) endpoint(path string, query url.Values) string {
	base := strings.TrimRight(a.cfg.BaseURL, "/")
	if len(query) == 0 {
		return base + path
	}
	return base + path + "?" + query.Encode()
}

// getJSON 请求并解析 JSON，任何失败都包装为 ErrUnavailable
func (a *Adapter) getJSON(ctx context.Context, path string, query url.Values, dst any) error {
	u := a.endpoint(path, query)
	body, err := httpclient.Get(ctx, a.client, u, http.Header{"Accept": []string{"application/json"}})
	if err != nil {
		a.logger.WithError(err).WithField("url", u).Warn("statsapi请求失败")
		return fmt.Errorf("%w: %w", interfaces.ErrUnavailable, err)
	}
	if err := json.Unmarshal(body, dst); err != nil {
		a.logger.WithError(err).WithField("url", u).Warn("statsapi响应解析失败")
		return fmt.Errorf("%w: decode %s: %v", interfaces.ErrUnavailable, path, err)
	}
	return nil
}
