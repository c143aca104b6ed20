package enums

import "strings"

type ItemKind uint8

const (
	ItemKindUnknown ItemKind = iota // 0
	ItemKindWeapon                  // 1
	ItemKindAmmo                    // 2
	ItemKindMedKit                  // 3
)

var itemKindToString = map[ItemKind]string{
	ItemKindWeapon: "WEAPON",
	ItemKindAmmo:   "AMMO",
	ItemKindMedKit: "MEDKIT",
}

var itemKindStringToType = map[string]ItemKind{
	"WEAPON": ItemKindWeapon,
	"AMMO":   ItemKindAmmo,
	"MEDKIT": ItemKindMedKit,
}

func (k ItemKind) String() string {
	if val, ok := itemKindToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}

func ParseItemKind(s string) ItemKind {
	upper := strings.ToUpper(s)
	if val, ok := itemKindStringToType[upper]; ok {
		return val
	}
	return ItemKindUnknown
}

// AmmoType связывает оружие и контейнер, из которого оно перезаряжается.
type AmmoType uint8

const (
	AmmoUnknown AmmoType = iota
	AmmoPistol9mm
	AmmoRifle556
	AmmoShotgun12G
	AmmoSniper762
)

var ammoTypeToString = map[AmmoType]string{
	AmmoPistol9mm:  "9MM",
	AmmoRifle556:   "5.56",
	AmmoShotgun12G: "12G",
	AmmoSniper762:  "7.62",
}

var ammoTypeStringToType = map[string]AmmoType{
	"9MM":  AmmoPistol9mm,
	"5.56": AmmoRifle556,
	"12G":  AmmoShotgun12G,
	"7.62": AmmoSniper762,
}

func (a AmmoType) String() string {
	if val, ok := ammoTypeToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}

func ParseAmmoType(s string) AmmoType {
	upper := strings.ToUpper(strings.TrimSpace(s))
	if val, ok := ammoTypeStringToType[upper]; ok {
		return val
	}
	return AmmoUnknown
}
