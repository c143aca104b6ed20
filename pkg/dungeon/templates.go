package dungeon

import (
	"errors"
	"fmt"

	"tactical-sim/internal/core/types/enums"
	"tactical-sim/internal/domain"
)

var ErrUnknownTemplate = errors.New("unknown template")

// OperativeTemplate определяет шаблон оперативника.
type OperativeTemplate struct {
	Name          string
	MaxHealth     int
	MaxTimePoints int
	Strength      int
	Accuracy      int
	Vision        int
}

func (t OperativeTemplate) Spawn() (*domain.Operative, error) {
	return domain.NewOperative(t.Name, t.MaxHealth, t.MaxTimePoints, t.Strength, t.Accuracy, t.Vision)
}

// MonsterTemplate определяет шаблон монстра. Damage используется только
// дикими монстрами, Weapon - только умными (шаблон оружия в руках).
type MonsterTemplate struct {
	Kind          enums.ActorKind
	Name          string
	MaxHealth     int
	MaxTimePoints int
	Vision        int
	MoveCost      int
	Damage        int
	Accuracy      int
	Weapon        string
}

func (t MonsterTemplate) Spawn() (domain.MonsterActor, error) {
	switch t.Kind {
	case enums.ActorKindWildMonster:
		return domain.NewWildMonster(t.Name, t.MaxHealth, t.MaxTimePoints, t.Vision, t.MoveCost, t.Damage, t.Accuracy)

	case enums.ActorKindIntelligentMonster:
		im, err := domain.NewIntelligentMonster(t.Name, t.MaxHealth, t.MaxTimePoints, t.Vision, t.MoveCost, t.Accuracy)
		if err != nil {
			return nil, err
		}
		if t.Weapon != "" {
			w, err := spawnWeapon(t.Weapon)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", t.Name, err)
			}
			im.PickUpWeapon(w)
		}
		return im, nil

	case enums.ActorKindForager:
		return domain.NewForager(t.Name, t.MaxHealth, t.MaxTimePoints, t.Vision, t.MoveCost)
	}
	return nil, fmt.Errorf("monster template %q: kind %s: %w", t.Name, t.Kind, ErrUnknownTemplate)
}

// ItemTemplate определяет шаблон предмета. Набор используемых полей
// зависит от Kind.
type ItemTemplate struct {
	Kind   enums.ItemKind
	Name   string
	Weight int

	// Оружие
	Damage     int
	AmmoType   enums.AmmoType
	MaxAmmo    int
	FireCost   int
	ReloadCost int

	// Патроны
	Capacity int

	// Аптечка
	HealAmount int
	UseCost    int
}

func (t ItemTemplate) Spawn() (domain.Item, error) {
	switch t.Kind {
	case enums.ItemKindWeapon:
		return domain.NewWeapon(t.Name, t.Damage, t.AmmoType, t.MaxAmmo, t.FireCost, t.ReloadCost, t.Weight)
	case enums.ItemKindAmmo:
		return domain.NewAmmoContainer(t.AmmoType, t.Capacity, t.Weight)
	case enums.ItemKindMedKit:
		return domain.NewMedKit(t.Name, t.HealAmount, t.UseCost, t.Weight)
	}
	return nil, fmt.Errorf("item template %q: %w", t.Name, ErrUnknownTemplate)
}

// --- ОПЕРАТИВНИКИ ---

var Agent = OperativeTemplate{
	Name:          "Агент",
	MaxHealth:     100,
	MaxTimePoints: 10,
	Strength:      10,
	Accuracy:      10,
	Vision:        5,
}

var Scout = OperativeTemplate{
	Name:          "Разведчик",
	MaxHealth:     80,
	MaxTimePoints: 12,
	Strength:      7,
	Accuracy:      12,
	Vision:        7,
}

// --- МОНСТРЫ ---

var Wolf = MonsterTemplate{
	Kind:          enums.ActorKindWildMonster,
	Name:          "Волк",
	MaxHealth:     50,
	MaxTimePoints: 8,
	Vision:        4,
	MoveCost:      2,
	Damage:        15,
	Accuracy:      80,
}

var Hunter = MonsterTemplate{
	Kind:          enums.ActorKindIntelligentMonster,
	Name:          "Охотник",
	MaxHealth:     70,
	MaxTimePoints: 12,
	Vision:        5,
	MoveCost:      3,
	Accuracy:      75,
}

var Gatherer = MonsterTemplate{
	Kind:          enums.ActorKindForager,
	Name:          "Сборщик",
	MaxHealth:     30,
	MaxTimePoints: 6,
	Vision:        3,
	MoveCost:      2,
}

// --- ПРЕДМЕТЫ ---

var Pistol = ItemTemplate{
	Kind:       enums.ItemKindWeapon,
	Name:       "Пистолет",
	Weight:     2,
	Damage:     10,
	AmmoType:   enums.AmmoPistol9mm,
	MaxAmmo:    12,
	FireCost:   1,
	ReloadCost: 2,
}

var Rifle = ItemTemplate{
	Kind:       enums.ItemKindWeapon,
	Name:       "Автомат",
	Weight:     4,
	Damage:     20,
	AmmoType:   enums.AmmoRifle556,
	MaxAmmo:    30,
	FireCost:   1,
	ReloadCost: 2,
}

var Shotgun = ItemTemplate{
	Kind:       enums.ItemKindWeapon,
	Name:       "Дробовик",
	Weight:     5,
	Damage:     35,
	AmmoType:   enums.AmmoShotgun12G,
	MaxAmmo:    6,
	FireCost:   1,
	ReloadCost: 2,
}

var Ammo9mm = ItemTemplate{
	Kind:     enums.ItemKindAmmo,
	Name:     "Патроны 9MM",
	Weight:   1,
	AmmoType: enums.AmmoPistol9mm,
	Capacity: 24,
}

var Ammo556 = ItemTemplate{
	Kind:     enums.ItemKindAmmo,
	Name:     "Патроны 5.56",
	Weight:   2,
	AmmoType: enums.AmmoRifle556,
	Capacity: 60,
}

var Ammo12G = ItemTemplate{
	Kind:     enums.ItemKindAmmo,
	Name:     "Патроны 12G",
	Weight:   2,
	AmmoType: enums.AmmoShotgun12G,
	Capacity: 12,
}

var MedKit = ItemTemplate{
	Kind:       enums.ItemKindMedKit,
	Name:       "Аптечка",
	Weight:     1,
	HealAmount: 30,
	UseCost:    2,
}

// --- РЕЕСТРЫ ШАБЛОНОВ ---

var OperativeTemplates = map[string]OperativeTemplate{
	"agent": Agent,
	"scout": Scout,
}

var MonsterTemplates = map[string]MonsterTemplate{
	"wolf":     Wolf,
	"hunter":   Hunter,
	"gatherer": Gatherer,
}

var ItemTemplates = map[string]ItemTemplate{
	"pistol":  Pistol,
	"rifle":   Rifle,
	"shotgun": Shotgun,
	"ammo9":   Ammo9mm,
	"ammo556": Ammo556,
	"ammo12":  Ammo12G,
	"medkit":  MedKit,
}

// SpawnItem создаёт предмет по имени шаблона.
func SpawnItem(name string) (domain.Item, error) {
	t, ok := ItemTemplates[name]
	if !ok {
		return nil, fmt.Errorf("item %q: %w", name, ErrUnknownTemplate)
	}
	return t.Spawn()
}

func spawnWeapon(name string) (*domain.Weapon, error) {
	it, err := SpawnItem(name)
	if err != nil {
		return nil, err
	}
	w, ok := it.(*domain.Weapon)
	if !ok {
		return nil, fmt.Errorf("item %q is not a weapon: %w", name, ErrUnknownTemplate)
	}
	return w, nil
}
