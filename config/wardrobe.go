package config

// WardrobeSlot is one equipment category the player can cycle through
type WardrobeSlot struct {
	Category string
	Label    string
	Items    []string // first entry is the default, "" means nothing equipped
}

// WardrobeConfig contains the character creation choices
type WardrobeConfig struct {
	Slots       []WardrobeSlot
	HairColors  []string // hex
	DefaultName string
	NameChoices []string
	StorageKey  string
	AppName     string
}

var Wardrobe WardrobeConfig

func init() {
	Wardrobe = WardrobeConfig{
		Slots: []WardrobeSlot{
			{Category: "hair", Label: "Hair", Items: []string{"", "hair.short", "hair.long", "hair.braid"}},
			{Category: "ear", Label: "Ears", Items: []string{"", "ear.elf"}},
			{Category: "cloth", Label: "Cloth", Items: []string{"", "cloth.tunic", "cloth.robe"}},
			{Category: "armor", Label: "Armor", Items: []string{"", "armor.leather", "armor.plate"}},
			{Category: "pants", Label: "Pants", Items: []string{"pants.brown", "pants.green", "pants.black"}},
			{Category: "boots", Label: "Boots", Items: []string{"", "boots.leather", "boots.iron"}},
			{Category: "gear", Label: "Gear", Items: []string{"", "gear.belt", "gear.bag"}},
			{Category: "weapon", Label: "Weapon", Items: []string{"sword.short", "sword.long", "sword.broad"}},
			{Category: "shield", Label: "Shield", Items: []string{"", "shield.round", "shield.kite"}},
		},
		HairColors:  []string{"#000000", "#6b3e26", "#d9b26f", "#b03a2e", "#e8e8e8"},
		DefaultName: "Wanderer",
		NameChoices: []string{"Wanderer", "Ashen", "Briar", "Corvin", "Sable"},
		StorageKey:  "Equipped items",
		AppName:     "bladewood",
	}
}
