package api

import (
	"errors"
	"net/http"

	"StrikeoutSync/internal/model"
	"StrikeoutSync/internal/normalizer"
	"StrikeoutSync/internal/projection"

	"github.com/gin-gonic/gin"
)

// ProjectionRequest 自定义输入的预测请求
type ProjectionRequest struct {
	Stats             model.PitcherStats    `json:"stats"`
	OpponentKTendency float64               `json:"opponent_k_tendency"`
	Batters           []model.BatterProfile `json:"batters"`
}

// ProjectionHandler 预测与球队名规范化接口，无外部依赖
type ProjectionHandler struct{}

func NewProjectionHandler() *ProjectionHandler { return &ProjectionHandler{} }

// Project 按提交的数据计算三振预测
// POST /api/projection
func (h *ProjectionHandler) Project(c *gin.Context) {
	var req ProjectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := projection.Project(req.Stats, req.OpponentKTendency, req.Batters)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if !errors.Is(err, projection.ErrInvalidInput) && !errors.Is(err, projection.ErrInsufficientLineup) {
			status = http.StatusInternalServerError
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// NormalizeTeam 球队名规范化
// GET /api/teams/normalize?name=NY Yankees
func (h *ProjectionHandler) NormalizeTeam(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	normalized := normalizer.NormalizeTeamName(name)
	c.JSON(http.StatusOK, gin.H{
		"input":      name,
		"normalized": normalized,
		"abbr":       normalizer.ResolveTeamAbbreviation(normalized),
	})
}
