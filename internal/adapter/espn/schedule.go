// Package espn ESPN 赛程页抓取，只提供赛程（先发投手由其他数据源补全）
package espn

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"StrikeoutSync/internal/adapter"
	"StrikeoutSync/internal/config"
	"StrikeoutSync/internal/interfaces"
	"StrikeoutSync/internal/model"
	"StrikeoutSync/internal/normalizer"
	"StrikeoutSync/internal/utils/httpclient"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"
)

const (
	Name = "espn"
	// DefaultGameTime 页面不区分开赛时间，统一展示
	DefaultGameTime = "7:00 PM ET"
	titleDateLayout = "Monday, January 2, 2006"
)

func init() {
	adapter.Register(Name, New)
}

// Adapter ESPN 赛程抓取
type Adapter struct {
	cfg    *config.SourceConfig
	client *http.Client
	logger *logrus.Logger
}

// New 工厂函数
func New(cfg *config.SourceConfig, logger *logrus.Logger) interfaces.Source {
	return &Adapter{
		cfg:    cfg,
		client: httpclient.NewHTTPClient(cfg, logger),
		logger: logger,
	}
}

func (a *Adapter) GetName() string { return Name }

// FetchSchedule 抓取 /mlb/schedule/_/date/YYYYMMDD，取标题为当天日期的表格
func (a *Adapter) FetchSchedule(ctx context.Context, date time.Time) ([]model.ScheduledGame, error) {
	u := fmt.Sprintf("%s/mlb/schedule/_/date/%s", strings.TrimRight(a.cfg.BaseURL, "/"), date.Format("20060102"))
	body, err := httpclient.Get(ctx, a.client, u, nil)
	if err != nil {
		a.logger.WithError(err).WithField("url", u).Warn("ESPN赛程页请求失败")
		return nil, fmt.Errorf("%w: %w", interfaces.ErrUnavailable, err)
	}
	games, err := parseSchedule(body, date)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", interfaces.ErrUnavailable, err)
	}
	a.logger.WithField("games", len(games)).Info("ESPN赛程解析完成")
	return games, nil
}

// parseSchedule 赛程页中每个 ResponsiveTable 是一天；队名链接按 客队、主队 成对出现
func parseSchedule(html []byte, date time.Time) ([]model.ScheduledGame, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("error parsing HTML: %w", err)
	}

	want := date.Format(titleDateLayout)
	games := []model.ScheduledGame{}
	doc.Find("div.ResponsiveTable").EachWithBreak(func(_ int, block *goquery.Selection) bool {
		title := strings.TrimSpace(block.Find("div.Table__Title").First().Text())
		if !strings.Contains(title, want) {
			return true
		}

		var names []string
		block.Find(`a.AnchorLink[href^="/mlb/team/"]`).Each(func(_ int, s *goquery.Selection) {
			if name := strings.TrimSpace(s.Text()); name != "" {
				names = append(names, name)
			}
		})
		for i := 0; i+1 < len(names); i += 2 {
			games = append(games, model.ScheduledGame{
				AwayTeam: normalizer.NormalizeTeamName(names[i]),
				HomeTeam: normalizer.NormalizeTeamName(names[i+1]),
				GameTime: DefaultGameTime,
			})
		}
		return false
	})
	return games, nil
}
