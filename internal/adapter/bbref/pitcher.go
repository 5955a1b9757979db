// Package bbref Baseball-Reference 投手页抓取
package bbref

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"StrikeoutSync/internal/adapter"
	"StrikeoutSync/internal/config"
	"StrikeoutSync/internal/interfaces"
	"StrikeoutSync/internal/model"
	"StrikeoutSync/internal/utils/httpclient"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"
)

const Name = "bbref"

func init() {
	adapter.Register(Name, New)
}

// Adapter Baseball-Reference 投手数据
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

// FetchPitcherStats 搜索页 → 球员页 → pitching_standard 表中当季一行
func (a *Adapter) FetchPitcherStats(ctx context.Context, pitcher, team string, date time.Time) (model.PitcherStats, error) {
	pitcher = strings.TrimSpace(pitcher)
	if pitcher == "" || pitcher == "TBD" {
		return model.PitcherStats{}, fmt.Errorf("%w: 投手未公布", interfaces.ErrUnavailable)
	}
	log := a.logger.WithFields(logrus.Fields{"pitcher": pitcher, "team": team})
	base := strings.TrimRight(a.cfg.BaseURL, "/")

	searchURL := base + "/search/search.fcgi?search=" + url.QueryEscape(pitcher)
	searchDoc, err := a.fetchDoc(ctx, searchURL)
	if err != nil {
		log.WithError(err).Warn("bbref搜索失败")
		return model.PitcherStats{}, err
	}
	href, ok := searchDoc.Find("div.search-results a").First().Attr("href")
	if !ok || href == "" {
		return model.PitcherStats{}, fmt.Errorf("%w: 搜索无结果 %q", interfaces.ErrUnavailable, pitcher)
	}
	playerURL := href
	if strings.HasPrefix(href, "/") {
		playerURL = base + href
	}

	playerDoc, err := a.fetchDoc(ctx, playerURL)
	if err != nil {
		log.WithError(err).Warn("bbref球员页请求失败")
		return model.PitcherStats{}, err
	}
	season := date.Year()
	if a.cfg.Season > 0 {
		season = a.cfg.Season
	}
	stats, err := parsePitcherPage(playerDoc, season)
	if err != nil {
		return model.PitcherStats{}, fmt.Errorf("%w: %w", interfaces.ErrUnavailable, err)
	}
	return stats, nil
}

func (a *Adapter) fetchDoc(ctx context.Context, u string) (*goquery.Document, error) {
	body, err := httpclient.Get(ctx, a.client, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", interfaces.ErrUnavailable, err)
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: error parsing HTML: %w", interfaces.ErrUnavailable, err)
	}
	return doc, nil
}

// 当季行的单元格位置（不含行首的年份 th）
const (
	cellERA  = 3
	cellWHIP = 4
	cellIP   = 5
	cellSO   = 8
)

func parsePitcherPage(doc *goquery.Document, season int) (model.PitcherStats, error) {
	table := doc.Find("table#pitching_standard")
	if table.Length() == 0 {
		return model.PitcherStats{}, fmt.Errorf("缺少 pitching_standard 表")
	}
	year := strconv.Itoa(season)
	var row *goquery.Selection
	table.Find("tr").EachWithBreak(func(_ int, tr *goquery.Selection) bool {
		if strings.Contains(tr.Find("th").First().Text(), year) {
			row = tr
			return false
		}
		return true
	})
	if row == nil {
		return model.PitcherStats{}, fmt.Errorf("缺少 %d 赛季数据", season)
	}

	cells := row.Find("td")
	cell := func(i int, fallback string) string {
		if i < cells.Length() {
			return strings.TrimSpace(cells.Eq(i).Text())
		}
		return fallback
	}
	era := safeFloat(cell(cellERA, "4.50"))
	whip := safeFloat(cell(cellWHIP, "1.30"))
	ip := safeFloat(cell(cellIP, "150.0"))
	so := safeFloat(cell(cellSO, "150"))

	k9 := 8.5
	if ip > 0 {
		k9 = so / ip * 9
	}
	kPercent := math.Min(35, k9*2.5)
	whiff := math.Min(40, kPercent*1.1)
	swingStrike := math.Min(20, whiff*0.4)

	hand := model.HandRight
	if strings.Contains(doc.Find("div#meta").Text(), "Left") {
		hand = model.HandLeft
	}
	return model.PitcherStats{
		K9:              round1(k9),
		KPercent:        round1(kPercent),
		WhiffRate:       round1(whiff),
		SwingStrikeRate: round1(swingStrike),
		ERA:             era,
		WHIP:            whip,
		Handedness:      hand,
	}, nil
}

// safeFloat 解析失败按 0 处理
func safeFloat(raw string) float64 {
	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
