package systems

import (
	"encoding/json"
	"fmt"

	cfg "github.com/automoto/bladewood/config"
	"github.com/quasilyte/gdata"
	"github.com/sirupsen/logrus"
)

// Keys of Equipment that are not wardrobe categories
const (
	EquipHairColor = "hairColor"
	EquipName      = "characterName"
)

// Equipment is the "Equipped items" record: category -> item name, plus the
// hair color and character name
type Equipment map[string]string

// DefaultEquipment picks the first item of every wardrobe slot
func DefaultEquipment() Equipment {
	e := make(Equipment, len(cfg.Wardrobe.Slots)+2)
	for _, slot := range cfg.Wardrobe.Slots {
		e[slot.Category] = slot.Items[0]
	}
	if len(cfg.Wardrobe.HairColors) > 0 {
		e[EquipHairColor] = cfg.Wardrobe.HairColors[0]
	}
	e[EquipName] = cfg.Wardrobe.DefaultName
	return e
}

func (e Equipment) Name() string {
	if n := e[EquipName]; n != "" {
		return n
	}
	return cfg.Wardrobe.DefaultName
}

// Cycle moves category to the next (step 1) or previous (step -1) choice and
// returns it. Wardrobe slots, hair colors and names can all be cycled.
func (e Equipment) Cycle(category string, step int) string {
	choices := wardrobeChoices(category)
	if len(choices) == 0 {
		return e[category]
	}
	i := 0
	for j, c := range choices {
		if c == e[category] {
			i = j
			break
		}
	}
	i = ((i+step)%len(choices) + len(choices)) % len(choices)
	e[category] = choices[i]
	return choices[i]
}

func wardrobeChoices(category string) []string {
	switch category {
	case EquipHairColor:
		return cfg.Wardrobe.HairColors
	case EquipName:
		return cfg.Wardrobe.NameChoices
	}
	for _, slot := range cfg.Wardrobe.Slots {
		if slot.Category == category {
			return slot.Items
		}
	}
	return nil
}

// ItemStore is the key-value store equipment is kept in. *gdata.Manager
// satisfies it.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// EquipmentStore reads and writes the Equipped items record. A store
// without a backend loads defaults and drops saves.
type EquipmentStore struct {
	items ItemStore
	log   *logrus.Entry
}

func NewEquipmentStore(items ItemStore, log *logrus.Entry) *EquipmentStore {
	return &EquipmentStore{items: items, log: log}
}

// OpenEquipmentStore opens the platform store. On failure the returned
// store still works, without persistence.
func OpenEquipmentStore(log *logrus.Entry) (*EquipmentStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Wardrobe.AppName,
	})
	if err != nil {
		return NewEquipmentStore(nil, log), fmt.Errorf("open item store: %w", err)
	}
	return NewEquipmentStore(m, log), nil
}

// Load returns the saved equipment merged over the defaults
func (s *EquipmentStore) Load() (Equipment, error) {
	equip := DefaultEquipment()
	if s.items == nil {
		return equip, nil
	}

	data, err := s.items.LoadItem(cfg.Wardrobe.StorageKey)
	if err != nil {
		return equip, fmt.Errorf("load %s: %w", cfg.Wardrobe.StorageKey, err)
	}
	if data == nil {
		// Nothing saved yet
		return equip, nil
	}

	var saved map[string]string
	if err := json.Unmarshal(data, &saved); err != nil {
		return equip, fmt.Errorf("parse %s: %w", cfg.Wardrobe.StorageKey, err)
	}
	for k, v := range saved {
		equip[k] = v
	}
	s.log.WithField("items", len(saved)).Debug("equipment loaded")
	return equip, nil
}

func (s *EquipmentStore) Save(e Equipment) error {
	if s.items == nil {
		return nil
	}
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode equipment: %w", err)
	}
	if err := s.items.SaveItem(cfg.Wardrobe.StorageKey, data); err != nil {
		return fmt.Errorf("save %s: %w", cfg.Wardrobe.StorageKey, err)
	}
	return nil
}
