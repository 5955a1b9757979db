package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"StrikeoutSync/internal/model"
	"StrikeoutSync/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SlateProvider 当日比赛来源，由 service.SlateService 实现
type SlateProvider interface {
	TodaysGames(ctx context.Context, date time.Time) ([]model.Game, error)
}

// PitcherLookup 单投手查询，由 service.PitcherService 实现
type PitcherLookup interface {
	Lookup(ctx context.Context, name string) service.PitcherReport
}

// GamesHandler 比赛与投手查询接口
type GamesHandler struct {
	slate    SlateProvider
	pitchers PitcherLookup
	loc      *time.Location
	now      func() time.Time
	logger   *logrus.Logger
}

// NewGamesHandler loc 为赛程时区，决定"今天"是哪一天
func NewGamesHandler(slate SlateProvider, pitchers PitcherLookup, loc *time.Location, logger *logrus.Logger) *GamesHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &GamesHandler{
		slate:    slate,
		pitchers: pitchers,
		loc:      loc,
		now:      time.Now,
		logger:   logger,
	}
}

// TodaysGames 当日比赛及双方先发三振预测
// GET /api/games/today?date=2024-06-01
// 没有比赛时仍返回 200，body 为 {"error": "...", "games": []}
func (h *GamesHandler) TodaysGames(c *gin.Context) {
	date := h.now().In(h.loc)
	if raw := strings.TrimSpace(c.Query("date")); raw != "" {
		d, err := time.ParseInLocation("2006-01-02", raw, h.loc)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date 格式应为 YYYY-MM-DD"})
			return
		}
		date = d
	}

	games, err := h.slate.TodaysGames(c.Request.Context(), date)
	if err != nil {
		h.logger.WithError(err).WithField("request_id", RequestID(c)).Warn("TodaysGames failed")
		msg := "No games found for today. Check if it's MLB season or if the schedule source is accessible."
		if !errors.Is(err, service.ErrNoGames) {
			msg = err.Error()
		}
		c.JSON(http.StatusOK, gin.H{"error": msg, "games": []model.Game{}})
		return
	}
	c.JSON(http.StatusOK, games)
}

// PitcherStats 单个投手数据
// GET /api/pitcher/:name
func (h *GamesHandler) PitcherStats(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	c.JSON(http.StatusOK, h.pitchers.Lookup(c.Request.Context(), name))
}
