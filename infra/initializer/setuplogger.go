package initializer

import (
	"io"
	"log/slog"
	"os"

	"github.com/amirasaad/bankdash/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

type levelLook struct {
	icon  string
	color lipgloss.AdaptiveColor
}

var levelLooks = map[log.Level]levelLook{
	log.DebugLevel: {"🐛", lipgloss.AdaptiveColor{Light: "#7E57C2", Dark: "#7E57C2"}},
	log.InfoLevel:  {"ℹ️", lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}},
	log.WarnLevel:  {"⚠️", lipgloss.AdaptiveColor{Light: "#EE6FF8", Dark: "#EE6FF8"}},
	log.ErrorLevel: {"❌", lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF6B6B"}},
}

// keys that get a highlighted rendering in text output
var highlightedKeys = map[string]log.Level{
	"error":   log.ErrorLevel,
	"warn":    log.WarnLevel,
	"service": log.InfoLevel,
	"job_id":  log.InfoLevel,
	"prefix":  log.DebugLevel,
	"caller":  log.DebugLevel,
	"time":    log.DebugLevel,
}

func loggerStyles() *log.Styles {
	styles := log.DefaultStyles()
	for level, look := range levelLooks {
		styles.Levels[level] = lipgloss.NewStyle().
			SetString(look.icon).
			Bold(true).
			Padding(0, 1).
			Foreground(look.color)
	}
	for key, level := range highlightedKeys {
		styles.Keys[key] = lipgloss.NewStyle().Foreground(levelLooks[level].color)
		styles.Values[key] = lipgloss.NewStyle().Bold(true)
	}
	return styles
}

// SetupLogger builds the process logger on stdout and installs it as the slog default.
func SetupLogger(cfg *config.Log) *slog.Logger {
	logger := NewLogger(os.Stdout, cfg)
	slog.SetDefault(logger)
	return logger
}

// NewLogger builds a slog.Logger backed by charmbracelet/log writing to w.
func NewLogger(w io.Writer, cfg *config.Log) *slog.Logger {
	formatter := log.TextFormatter
	if cfg.Format == "json" {
		formatter = log.JSONFormatter
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           log.Level(cfg.Level),
		Prefix:          cfg.Prefix,
		Formatter:       formatter,
	})
	logger.SetStyles(loggerStyles())

	return slog.New(logger)
}
