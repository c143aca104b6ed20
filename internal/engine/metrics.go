package engine

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "tactical-sim/internal/engine"

type engineMetrics struct {
	ticks   metric.Int64Counter
	turns   metric.Int64Counter
	attacks metric.Int64Counter
	moves   metric.Int64Counter
	saves   metric.Int64Counter
}

func newEngineMetrics() (*engineMetrics, error) {
	meter := otel.Meter(instrumentationName)

	var (
		m   engineMetrics
		err error
	)
	if m.ticks, err = meter.Int64Counter("engine.ticks",
		metric.WithDescription("Engine ticks processed")); err != nil {
		return nil, fmt.Errorf("create ticks counter: %w", err)
	}
	if m.turns, err = meter.Int64Counter("engine.turns",
		metric.WithDescription("Completed team turn phases")); err != nil {
		return nil, fmt.Errorf("create turns counter: %w", err)
	}
	if m.attacks, err = meter.Int64Counter("engine.attacks",
		metric.WithDescription("Attacks performed")); err != nil {
		return nil, fmt.Errorf("create attacks counter: %w", err)
	}
	if m.moves, err = meter.Int64Counter("engine.moves",
		metric.WithDescription("Chase steps taken by monsters")); err != nil {
		return nil, fmt.Errorf("create moves counter: %w", err)
	}
	if m.saves, err = meter.Int64Counter("engine.saves",
		metric.WithDescription("Games saved")); err != nil {
		return nil, fmt.Errorf("create saves counter: %w", err)
	}
	return &m, nil
}

func teamAttr(operatives bool) metric.AddOption {
	team := "monsters"
	if operatives {
		team = "operatives"
	}
	return metric.WithAttributes(attribute.String("team", team))
}
