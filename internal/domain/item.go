package domain

import "tactical-sim/internal/core/types/enums"

// Item - общий контракт предметов: вес и отображаемое имя.
// Инвентарь и клетки хранят предметы по ссылке и не владеют ими.
type Item interface {
	Name() string
	Weight() int
	Kind() enums.ItemKind
}
