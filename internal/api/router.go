package api

import (
	"net/http"
	"time"

	"StrikeoutSync/internal/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	// APIVersion 根路径返回的版本号
	APIVersion = "1.0.0"

	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// Handlers 路由依赖的全部 handler
type Handlers struct {
	Games      *GamesHandler
	Projection *ProjectionHandler
}

// NewRouter 注册中间件与全部路由
func NewRouter(cfg config.ServerConfig, h Handlers, logger *logrus.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestIDMiddleware(), accessLog(logger))
	if len(cfg.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", requestIDHeader},
			ExposeHeaders:    []string{requestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "MLB Strikeout Predictions API", "version": APIVersion})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "timestamp": time.Now().UTC().Format(time.RFC3339)})
	})

	g := r.Group("/api")
	g.GET("/games/today", h.Games.TodaysGames)
	g.GET("/pitcher/:name", h.Games.PitcherStats)
	g.POST("/projection", h.Projection.Project)
	g.GET("/teams/normalize", h.Projection.NormalizeTeam)
	return r
}

// requestIDMiddleware 沿用客户端传入的 X-Request-ID，否则生成 uuid
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// RequestID 当前请求的 ID
func RequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

func accessLog(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		entry := logger.WithFields(logrus.Fields{
			"request_id": RequestID(c),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
		})
		if c.Writer.Status() >= http.StatusInternalServerError {
			entry.Error("请求失败")
			return
		}
		entry.Debug("请求完成")
	}
}
