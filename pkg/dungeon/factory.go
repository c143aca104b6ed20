package dungeon

import (
	"fmt"

	"tactical-sim/internal/domain"
)

// Loadout - стартовое снаряжение оперативника: оружие в руках
// и предметы в инвентаре (шаблоны).
type Loadout struct {
	Weapon    string
	Secondary string
	Items     []string
}

// CreateOperative создаёт оперативника по шаблону и выдаёт снаряжение.
// Оружие заряжается из выданных патронов.
func CreateOperative(template string, loadout Loadout) (*domain.Operative, error) {
	t, ok := OperativeTemplates[template]
	if !ok {
		return nil, fmt.Errorf("operative %q: %w", template, ErrUnknownTemplate)
	}
	op, err := t.Spawn()
	if err != nil {
		return nil, err
	}

	for _, name := range loadout.Items {
		it, err := SpawnItem(name)
		if err != nil {
			return nil, err
		}
		if !op.Inventory().Add(it) {
			return nil, fmt.Errorf("operative %q: inventory full at %q: %w", template, name, domain.ErrInvalidConfig)
		}
	}

	if loadout.Secondary != "" {
		w, err := spawnWeapon(loadout.Secondary)
		if err != nil {
			return nil, err
		}
		loadFrom(op.Inventory(), w)
		op.EquipSecondaryWeapon(w)
	}
	if loadout.Weapon != "" {
		w, err := spawnWeapon(loadout.Weapon)
		if err != nil {
			return nil, err
		}
		loadFrom(op.Inventory(), w)
		op.EquipWeapon(w)
	}
	return op, nil
}

// loadFrom заряжает оружие из первого подходящего контейнера,
// не тратя очков времени: снаряжение выдаётся до начала партии.
func loadFrom(inv *domain.Inventory, w *domain.Weapon) {
	for _, it := range inv.Items() {
		if box, ok := it.(*domain.AmmoContainer); ok && w.Reload(box) {
			return
		}
	}
}

// CreateMonster создаёт монстра по шаблону.
func CreateMonster(template string) (domain.MonsterActor, error) {
	t, ok := MonsterTemplates[template]
	if !ok {
		return nil, fmt.Errorf("monster %q: %w", template, ErrUnknownTemplate)
	}
	return t.Spawn()
}
