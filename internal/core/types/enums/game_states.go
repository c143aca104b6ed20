package enums

// GameState - состояние движка. OperativesWin и MonstersWin терминальные.
type GameState uint8

const (
	GameStateRunning GameState = iota
	GameStatePaused
	GameStateOperativesWin
	GameStateMonstersWin
)

var gameStateToString = map[GameState]string{
	GameStateRunning:       "RUNNING",
	GameStatePaused:        "PAUSED",
	GameStateOperativesWin: "OPERATIVES_WIN",
	GameStateMonstersWin:   "MONSTERS_WIN",
}

func (s GameState) String() string {
	if val, ok := gameStateToString[s]; ok {
		return val
	}
	return "UNKNOWN"
}

// IsTerminal - партия закончена, tick больше ничего не делает.
func (s GameState) IsTerminal() bool {
	return s == GameStateOperativesWin || s == GameStateMonstersWin
}
