package systems

import (
	"errors"
	"testing"

	cfg "github.com/automoto/bladewood/config"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	items   map[string][]byte
	loadErr error
}

func (m *memoryStore) LoadItem(key string) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.items[key], nil
}

func (m *memoryStore) SaveItem(key string, data []byte) error {
	m.items[key] = data
	return nil
}

func newStore(items ItemStore) *EquipmentStore {
	l, _ := test.NewNullLogger()
	return NewEquipmentStore(items, logrus.NewEntry(l))
}

func TestEquipmentRoundTrip(t *testing.T) {
	mem := &memoryStore{items: map[string][]byte{}}
	store := newStore(mem)

	equip, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultEquipment(), equip)

	equip["weapon"] = "sword.broad"
	equip[EquipName] = "Briar"
	require.NoError(t, store.Save(equip))
	assert.Contains(t, mem.items, "Equipped items")

	loaded, err := newStore(mem).Load()
	require.NoError(t, err)
	assert.Equal(t, "sword.broad", loaded["weapon"])
	assert.Equal(t, "Briar", loaded.Name())
	assert.Equal(t, "pants.brown", loaded["pants"])
}

func TestEquipmentLoadFailuresFallBackToDefaults(t *testing.T) {
	mem := &memoryStore{items: map[string][]byte{cfg.Wardrobe.StorageKey: []byte("{not json")}}
	equip, err := newStore(mem).Load()
	assert.ErrorContains(t, err, "parse")
	assert.Equal(t, DefaultEquipment(), equip)

	boom := errors.New("disk on fire")
	mem.loadErr = boom
	equip, err = newStore(mem).Load()
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, DefaultEquipment(), equip)
}

func TestEquipmentWithoutBackend(t *testing.T) {
	store := newStore(nil)
	equip, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg.Wardrobe.DefaultName, equip.Name())
	assert.NoError(t, store.Save(equip))
}

func TestEquipmentCycle(t *testing.T) {
	e := DefaultEquipment()

	assert.Equal(t, "sword.long", e.Cycle("weapon", 1))
	assert.Equal(t, "sword.broad", e.Cycle("weapon", 1))
	assert.Equal(t, "sword.short", e.Cycle("weapon", 1))
	assert.Equal(t, "sword.broad", e.Cycle("weapon", -1))

	assert.Equal(t, "", e["hair"])
	assert.Equal(t, "hair.short", e.Cycle("hair", 1))

	assert.Equal(t, cfg.Wardrobe.NameChoices[1], e.Cycle(EquipName, 1))
	assert.Equal(t, cfg.Wardrobe.HairColors[len(cfg.Wardrobe.HairColors)-1], e.Cycle(EquipHairColor, -1))

	e["mystery"] = "x"
	assert.Equal(t, "x", e.Cycle("mystery", 1))
}
