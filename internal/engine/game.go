package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"tactical-sim/internal/core/types/enums"
	"tactical-sim/internal/infrastructure/storage"
	"tactical-sim/internal/world"
	"tactical-sim/pkg/logger"
)

var ErrNilLevel = errors.New("engine: level is required")

// SaveRecorder индексирует сделанные сохранения (например, каталог SQLite).
type SaveRecorder interface {
	RecordSave(ctx context.Context, rec storage.SaveRecord) error
}

type Option func(*GameEngine)

// WithRecorder подключает индекс сохранений.
func WithRecorder(r SaveRecorder) Option {
	return func(g *GameEngine) { g.recorder = r }
}

// GameEngine - планировщик ходов. Команды ходят по очереди, фаза команды
// длится, пока её живые участники не израсходуют очки времени.
// Акторами не владеет: работает с уровнем, переданным при создании.
type GameEngine struct {
	mu sync.Mutex

	level *world.Level
	cfg   Config

	state          enums.GameState
	turn           int
	operativesTurn bool
	phaseStarted   bool
	tick           int

	logs     []LogEntry
	recorder SaveRecorder
	metrics  *engineMetrics
	log      *logrus.Entry
}

func NewGameEngine(level *world.Level, cfg Config, opts ...Option) (*GameEngine, error) {
	if level == nil {
		return nil, ErrNilLevel
	}
	if cfg.MaxTicks <= 0 {
		cfg.MaxTicks = DefaultMaxTicks
	}

	m, err := newEngineMetrics()
	if err != nil {
		return nil, fmt.Errorf("engine metrics: %w", err)
	}

	g := &GameEngine{
		level:          level,
		cfg:            cfg,
		state:          enums.GameStateRunning,
		operativesTurn: true,
		metrics:        m,
		log:            logger.Log.WithField("component", "turn_engine"),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Tick выполняет один шаг фазы текущей команды. В паузе и после победы
// одной из сторон ничего не делает. Весь тик идёт под одной блокировкой.
func (g *GameEngine) Tick() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != enums.GameStateRunning {
		return
	}

	g.tick++
	g.metrics.ticks.Add(context.Background(), 1, teamAttr(g.operativesTurn))

	if !g.phaseStarted {
		g.startPhase()
	}

	spentBefore := g.teamTimePoints(g.operativesTurn)
	if g.operativesTurn {
		g.operativePhase()
	} else {
		g.monsterPhase()
	}
	idle := g.teamTimePoints(g.operativesTurn) == spentBefore

	if g.teamExhausted(g.operativesTurn) || (g.cfg.IdlePass && idle) {
		g.endPhase()
	}

	g.checkWinConditions()
}

// Run крутит Tick, пока партия идёт, но не больше maxTicks раз
// (0 - предел из конфига). Возвращает число выполненных тиков.
func (g *GameEngine) Run(maxTicks int) int {
	if maxTicks <= 0 {
		maxTicks = g.cfg.MaxTicks
	}
	done := 0
	for done < maxTicks && g.State() == enums.GameStateRunning {
		g.Tick()
		done++
	}
	return done
}

func (g *GameEngine) Pause() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state == enums.GameStateRunning {
		g.state = enums.GameStatePaused
		g.log.Info("Game paused.")
	}
}

func (g *GameEngine) Resume() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state == enums.GameStatePaused {
		g.state = enums.GameStateRunning
		g.log.Info("Game resumed.")
	}
}

func (g *GameEngine) State() enums.GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

func (g *GameEngine) Turn() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.turn
}

// OperativesTurn - сейчас фаза оперативников.
func (g *GameEngine) OperativesTurn() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.operativesTurn
}

// Level возвращает уровень. Менять его можно только между тиками.
func (g *GameEngine) Level() *world.Level {
	return g.level
}
