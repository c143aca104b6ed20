package engine

import (
	"time"

	"github.com/sirupsen/logrus"

	"tactical-sim/pkg/logger"
)

const maxLogEntries = 256

const (
	LogCombat = "COMBAT"
	LogMove   = "MOVE"
	LogTurn   = "TURN"
	LogState  = "STATE"
)

// LogEntry - запись журнала партии.
type LogEntry struct {
	Tick      int    `json:"tick"`
	Turn      int    `json:"turn"`
	Type      string `json:"type"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

// addLog добавляет запись в журнал партии. Вызывается под g.mu.
func (g *GameEngine) addLog(text, logType string) {
	g.logs = append(g.logs, LogEntry{
		Tick:      g.tick,
		Turn:      g.turn,
		Type:      logType,
		Text:      text,
		Timestamp: time.Now().UnixMilli(),
	})
	if over := len(g.logs) - maxLogEntries; over > 0 {
		g.logs = append(g.logs[:0], g.logs[over:]...)
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "game_log",
		"log_type":  logType,
		"tick":      g.tick,
		"turn":      g.turn,
	}).Debug(text)
}

// Logs возвращает копию журнала.
func (g *GameEngine) Logs() []LogEntry {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]LogEntry, len(g.logs))
	copy(out, g.logs)
	return out
}
