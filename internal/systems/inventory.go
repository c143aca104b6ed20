package systems

import (
	"github.com/sirupsen/logrus"

	"tactical-sim/internal/domain"
	"tactical-sim/internal/world"
	"tactical-sim/pkg/logger"
)

// PickUp переносит предмет с земли под актором в его инвентарь.
// Учитываются вместимость и предел веса.
func PickUp(lvl *world.Level, a domain.Actor, item domain.Item) bool {
	holder, ok := a.(domain.InventoryHolder)
	if !ok || domain.IsNilItem(item) || !a.IsPlaced() {
		return false
	}
	cell, err := lvl.Cell(a.Pos().X, a.Pos().Y)
	if err != nil {
		return false
	}
	if holder.Inventory().IsFull() || !holder.CanCarry(item.Weight()) {
		return false
	}
	if !cell.RemoveItem(item) {
		return false
	}
	holder.Inventory().Add(item)

	logger.Log.WithFields(logrus.Fields{
		"component": "inventory_system",
		"actor":     a.Name(),
		"item":      item.Name(),
	}).Debug("Item picked up.")
	return true
}

// Drop кладёт предмет из инвентаря на землю под актором.
func Drop(lvl *world.Level, a domain.Actor, item domain.Item) bool {
	holder, ok := a.(domain.InventoryHolder)
	if !ok || domain.IsNilItem(item) || !a.IsPlaced() {
		return false
	}
	cell, err := lvl.Cell(a.Pos().X, a.Pos().Y)
	if err != nil {
		return false
	}
	if !holder.Inventory().Remove(item) {
		return false
	}
	cell.AddItem(item)
	return true
}

// DropLoot высыпает на землю инвентарь погибшего актора и оружие,
// подобранное монстром. Возвращает число выпавших предметов.
func DropLoot(lvl *world.Level, a domain.Actor) int {
	if !a.IsPlaced() {
		return 0
	}
	cell, err := lvl.Cell(a.Pos().X, a.Pos().Y)
	if err != nil {
		return 0
	}

	dropped := 0
	if holder, ok := a.(domain.InventoryHolder); ok {
		for _, it := range holder.Inventory().Items() {
			holder.Inventory().Remove(it)
			cell.AddItem(it)
			dropped++
		}
	}
	if im, ok := a.(*domain.IntelligentMonster); ok {
		if w := im.DropWeapon(); w != nil {
			cell.AddItem(w)
			dropped++
		}
	}

	if dropped > 0 {
		logger.Log.WithFields(logrus.Fields{
			"component": "inventory_system",
			"actor":     a.Name(),
			"items":     dropped,
		}).Debug("Loot dropped.")
	}
	return dropped
}
