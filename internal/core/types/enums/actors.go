package enums

import "strings"

type ActorKind uint8

const (
	ActorKindUnknown ActorKind = iota
	ActorKindOperative
	ActorKindWildMonster
	ActorKindIntelligentMonster
	ActorKindForager
)

var actorKindToString = map[ActorKind]string{
	ActorKindOperative:          "OPERATIVE",
	ActorKindWildMonster:        "WILD_MONSTER",
	ActorKindIntelligentMonster: "INTELLIGENT_MONSTER",
	ActorKindForager:            "FORAGER",
}

var actorKindStringToType = map[string]ActorKind{
	"OPERATIVE":           ActorKindOperative,
	"WILD_MONSTER":        ActorKindWildMonster,
	"INTELLIGENT_MONSTER": ActorKindIntelligentMonster,
	"FORAGER":             ActorKindForager,
}

// String возвращает строковое представление (для логов и дебага)
func (k ActorKind) String() string {
	if val, ok := actorKindToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}

// IsMonster - все виды, кроме оперативника, играют за монстров.
func (k ActorKind) IsMonster() bool {
	return k == ActorKindWildMonster || k == ActorKindIntelligentMonster || k == ActorKindForager
}

// ParseActorKind конвертирует строку в Enum (нужно для загрузки шаблонов/конфигов)
func ParseActorKind(s string) ActorKind {
	upper := strings.ToUpper(s)
	if val, ok := actorKindStringToType[upper]; ok {
		return val
	}
	return ActorKindUnknown
}
