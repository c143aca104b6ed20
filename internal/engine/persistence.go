package engine

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"tactical-sim/internal/core/types/enums"
	"tactical-sim/internal/infrastructure/storage"
)

// SaveGame сохраняет счётчик ходов, чью очередь и рельеф уровня
// (в <path>.map). Состояние акторов не сохраняется.
func (g *GameEngine) SaveGame(path string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	st := storage.SaveState{Turn: g.turn, OperativesTurn: g.operativesTurn}
	if err := storage.WriteStateFile(path, st); err != nil {
		return fmt.Errorf("save game: %w", err)
	}
	if err := g.level.SaveTerrain(storage.TerrainPath(path)); err != nil {
		return fmt.Errorf("save game: %w", err)
	}

	ctx := context.Background()
	g.metrics.saves.Add(ctx, 1)
	g.log.WithFields(logrus.Fields{
		"path": path,
		"turn": g.turn,
	}).Info("Game saved.")

	if g.recorder != nil {
		g.recordSave(ctx, path, st)
	}
	return nil
}

// recordSave не влияет на результат SaveGame: файл уже записан.
func (g *GameEngine) recordSave(ctx context.Context, path string, st storage.SaveState) {
	rec, err := storage.NewSaveRecord(path, st, g.level.Width(), g.level.Height(), g.state.String(), g.roster())
	if err == nil {
		err = g.recorder.RecordSave(ctx, rec)
	}
	if err != nil {
		g.log.WithError(err).WithField("path", path).Warn("Save was not indexed.")
	}
}

func (g *GameEngine) roster() []storage.RosterEntry {
	var out []storage.RosterEntry
	for _, operatives := range []bool{true, false} {
		for _, a := range g.team(operatives) {
			if !a.IsAlive() {
				continue
			}
			out = append(out, storage.RosterEntry{
				Name:   a.Name(),
				Kind:   a.Kind().String(),
				Health: a.Health(),
				X:      a.Pos().X,
				Y:      a.Pos().Y,
			})
		}
	}
	return out
}

// LoadGame восстанавливает счётчик ходов, очередь и рельеф и переводит
// партию в Running. Рельеф заменяется целиком: акторы снимаются с карты,
// расставлять их заново должен вызывающий код. Если какой-то из файлов
// не открывается, состояние не меняется.
func (g *GameEngine) LoadGame(path string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	st, err := storage.ReadStateFile(path)
	if err != nil {
		return fmt.Errorf("load game: %w", err)
	}
	if err := g.level.LoadTerrain(storage.TerrainPath(path)); err != nil {
		return fmt.Errorf("load game: %w", err)
	}

	g.turn = st.Turn
	g.operativesTurn = st.OperativesTurn
	g.phaseStarted = false
	g.state = enums.GameStateRunning

	g.log.WithFields(logrus.Fields{
		"path":            path,
		"turn":            g.turn,
		"operatives_turn": g.operativesTurn,
	}).Info("Game loaded.")
	return nil
}
