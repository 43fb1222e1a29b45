package ui

import (
	"image/color"

	cfg "github.com/automoto/bladewood/config"
	"github.com/automoto/bladewood/systems"
	"github.com/ebitenui/ebitenui/widget"
)

const noItem = "(none)"

// CreationUI lets the player cycle through every wardrobe category, the
// hair color and the name before starting
type CreationUI struct {
	Screen
	f faces

	Equipment systems.Equipment
	OnChange  func()
	OnDone    func()

	values map[string]*widget.Label
}

func NewCreationUI(equip systems.Equipment, onChange, onDone func()) (*CreationUI, error) {
	f, err := loadFaces()
	if err != nil {
		return nil, err
	}
	cu := &CreationUI{
		f:         f,
		Equipment: equip,
		OnChange:  onChange,
		OnDone:    onDone,
		values:    make(map[string]*widget.Label),
	}

	root, column := centered(background, 4)
	column.AddChild(newLabel("CHARACTER", &cu.f.title, textWhite))

	column.AddChild(cu.cycleRow(systems.EquipName, "Name"))
	column.AddChild(cu.cycleRow(systems.EquipHairColor, "Hair color"))
	for _, slot := range cfg.Wardrobe.Slots {
		column.AddChild(cu.cycleRow(slot.Category, slot.Label))
	}

	column.AddChild(newButton("START", &cu.f.normal, primaryButtonImage(), 120, 28, func() {
		if cu.OnDone != nil {
			cu.OnDone()
		}
	}))

	cu.Screen = newScreen(root)
	return cu, nil
}

func (cu *CreationUI) cycleRow(category, label string) *widget.Container {
	r := row(6)
	r.AddChild(newLabel(label, &cu.f.small, color.RGBA{190, 200, 190, 255}))

	value := newLabel(display(cu.Equipment[category]), &cu.f.normal, textWhite)
	cu.values[category] = value

	r.AddChild(newButton("<", &cu.f.normal, buttonImage(), 22, 18, func() { cu.cycle(category, -1) }))
	r.AddChild(value)
	r.AddChild(newButton(">", &cu.f.normal, buttonImage(), 22, 18, func() { cu.cycle(category, 1) }))
	return r
}

func (cu *CreationUI) cycle(category string, step int) {
	v := cu.Equipment.Cycle(category, step)
	if l, ok := cu.values[category]; ok {
		l.Label = display(v)
	}
	if cu.OnChange != nil {
		cu.OnChange()
	}
}

func display(item string) string {
	if item == "" {
		return noItem
	}
	return item
}
