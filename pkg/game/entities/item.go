package entities

import "darkdelve/pkg/game/catalog"

// Item is a placed or carried instance of a catalog definition. The UID
// separates two copies of the same definition, so picking up one
// rusty sword does not pick up them all.
type Item struct {
	UID string          `json:"uid"`
	Def catalog.ItemDef `json:"def"`
}

func NewItem(uid string, def catalog.ItemDef) *Item {
	return &Item{UID: uid, Def: def}
}

func (i *Item) Name() string {
	return i.Def.Name
}

func (i *Item) Equippable() bool {
	return i.Def.Category == catalog.CategoryWeapon || i.Def.Category == catalog.CategoryArmor
}

func (i *Item) Consumable() bool {
	return i.Def.Category == catalog.CategoryConsumable
}

func (i *Item) IsKey() bool {
	return i.Def.Category == catalog.CategoryKey
}
