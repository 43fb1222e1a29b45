package render

import (
	"fmt"
	"image/color"
	"time"

	"github.com/automoto/bladewood/components"
	cfg "github.com/automoto/bladewood/config"
	"github.com/automoto/bladewood/fonts"
	"github.com/automoto/bladewood/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	hudBarWidth  = 130
	hudBarHeight = 10
	hudLine      = 14
)

// DrawHUD renders the hero's name, health, level and damage in the top-left
// corner and the time left in the top-right one.
func DrawHUD(gs *systems.GameState, screen *ebiten.Image) {
	hero := components.Hero.Get(gs.Hero)
	hp := components.Health.Get(gs.Hero)
	m := cfg.UI.HUDMargin
	face := fonts.Regular.Get()

	text.Draw(screen, hero.Name, fonts.Bold.Get(), int(m), int(m)+hudLine, cfg.UI.HUDTextColor)

	barY := float32(m + hudLine + 6)
	vector.DrawFilledRect(screen, float32(m), barY, hudBarWidth, hudBarHeight, color.RGBA{40, 40, 40, 255}, false)
	vector.DrawFilledRect(screen, float32(m), barY, hudBarWidth*float32(hp.Ratio()), hudBarHeight, color.RGBA{40, 220, 40, 255}, false)

	lines := []string{
		fmt.Sprintf("HP %d/%d", hp.Current, hp.Max),
		fmt.Sprintf("Level %d  Damage %d", hero.Level, hero.Damage),
		fmt.Sprintf("Trees %d  Kills %d", hero.Trees, hero.Kills),
	}
	y := int(barY) + hudBarHeight + hudLine
	for _, l := range lines {
		text.Draw(screen, l, face, int(m), y, cfg.UI.HUDTextColor)
		y += hudLine
	}

	if left := gs.TimeLeft(); left >= 0 {
		clock := formatClock(left)
		bounds := text.BoundString(face, clock) //nolint:staticcheck // text/v1 faces come from freetype
		x := screen.Bounds().Dx() - int(m) - bounds.Dx()
		clr := cfg.UI.HUDTextColor
		if left < 30*time.Second {
			clr = cfg.LightRed
		}
		text.Draw(screen, clock, face, x, int(m)+hudLine, clr)
	}
}

func formatClock(d time.Duration) string {
	secs := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
