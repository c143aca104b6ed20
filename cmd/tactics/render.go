package main

import (
	"fmt"
	"io"
	"strings"

	"tactical-sim/internal/core/types/enums"
	"tactical-sim/internal/domain"
	"tactical-sim/internal/engine"
	"tactical-sim/internal/world"
)

var actorGlyphs = map[enums.ActorKind]rune{
	enums.ActorKindOperative:          '*',
	enums.ActorKindWildMonster:        'W',
	enums.ActorKindIntelligentMonster: 'I',
	enums.ActorKindForager:            'F',
}

func actorGlyph(a domain.Actor) rune {
	if !a.IsAlive() {
		return 'x'
	}
	if g, ok := actorGlyphs[a.Kind()]; ok {
		return g
	}
	return '?'
}

// renderLevel печатает карту построчно, клетки через пробел.
func renderLevel(w io.Writer, lvl *world.Level) {
	var sb strings.Builder
	for y := 0; y < lvl.Height(); y++ {
		for x := 0; x < lvl.Width(); x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			if a := lvl.OccupantAt(x, y); a != nil {
				sb.WriteRune(actorGlyph(a))
				continue
			}
			ct, _ := lvl.CellTypeAt(x, y)
			sb.WriteRune(ct.Rune())
		}
		sb.WriteByte('\n')
	}
	fmt.Fprint(w, sb.String())
}

func renderLogs(w io.Writer, logs []engine.LogEntry, tail int) {
	if tail <= 0 || len(logs) == 0 {
		return
	}
	if len(logs) > tail {
		logs = logs[len(logs)-tail:]
	}
	fmt.Fprintln(w, "\nПоследние события:")
	for _, e := range logs {
		fmt.Fprintf(w, "  [%d] %-6s %s\n", e.Tick, e.Type, e.Text)
	}
}

func renderLegend(w io.Writer) {
	fmt.Fprint(w, `
Легенда:
* - Оперативник
W - Дикий монстр
I - Умный монстр
F - Фуражир
x - Погибший
. - Пустая клетка
# - Стена
G - Стекло
P - Перегородка
S - Точка хранения
`)
}
