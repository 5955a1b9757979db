// Package logging 按配置构建全局 logrus 实例
package logging

import (
	"io"
	"os"
	"strings"

	"StrikeoutSync/internal/config"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New 构建日志实例：级别、格式、可选的滚动文件（同时输出到stdout）
func New(cfg config.LogConfig) *logrus.Logger {
	return newWithOutput(cfg, os.Stdout)
}

func newWithOutput(cfg config.LogConfig, stdout io.Writer) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(strings.TrimSpace(cfg.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if strings.EqualFold(cfg.Format, "json") {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	out := stdout
	if cfg.File != "" {
		out = io.MultiWriter(stdout, &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   true,
		})
	}
	logger.SetOutput(out)

	if err != nil && cfg.Level != "" {
		logger.WithField("level", cfg.Level).Warn("日志级别无效，使用info")
	}
	return logger
}
