// Package render draws a round top-down: the ground, every actor as a
// tinted disc, life bars, the move marker and the HUD.
package render

import (
	"image/color"
	"math"
	"sort"

	"github.com/automoto/bladewood/assets"
	"github.com/automoto/bladewood/components"
	cfg "github.com/automoto/bladewood/config"
	"github.com/automoto/bladewood/gamemath"
	"github.com/automoto/bladewood/systems"
	"github.com/automoto/bladewood/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
)

var (
	drawOp   = &ebiten.DrawImageOptions{}
	shaderOp = &ebiten.DrawRectShaderOptions{}
)

// Life bars are sized in "full width" pixels and drawn scaled down
const lifeBarScale = 0.3

func camera(gs *systems.GameState) (*components.CameraData, bool) {
	e, ok := components.Camera.First(gs.World)
	if !ok {
		return nil, false
	}
	return components.Camera.Get(e), true
}

// DrawGround fills the ground rectangle and a one-unit grid over it
func DrawGround(gs *systems.GameState, screen *ebiten.Image) {
	cam, ok := camera(gs)
	if !ok {
		return
	}
	g := gs.Arena.Ground
	x0, y0 := systems.WorldToScreen(cam, g.X, g.Z)
	x1, y1 := systems.WorldToScreen(cam, g.X+g.W, g.Z+g.D)
	vector.DrawFilledRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), cfg.UI.GroundColor, false)

	grid := color.RGBA{R: 0, G: 0, B: 0, A: 24}
	for x := math.Ceil(g.X); x <= g.X+g.W; x++ {
		sx, _ := systems.WorldToScreen(cam, x, 0)
		vector.StrokeLine(screen, float32(sx), float32(y0), float32(sx), float32(y1), 1, grid, false)
	}
	for z := math.Ceil(g.Z); z <= g.Z+g.D; z++ {
		_, sy := systems.WorldToScreen(cam, 0, z)
		vector.StrokeLine(screen, float32(x0), float32(sy), float32(x1), float32(sy), 1, grid, false)
	}
}

type actor struct {
	entry  *donburi.Entry
	radius float64
	tint   color.RGBA
}

// DrawActors draws trees, enemies, corpses and the hero back to front
func DrawActors(gs *systems.GameState, screen *ebiten.Image) {
	cam, ok := camera(gs)
	if !ok {
		return
	}

	var actors []actor
	tags.Tree.Each(gs.World, func(e *donburi.Entry) {
		actors = append(actors, actor{e, cfg.Tree.Radius, cfg.UI.TreeColor})
	})
	tags.Enemy.Each(gs.World, func(e *donburi.Entry) {
		tint := cfg.UI.EnemyColor
		switch {
		case e.HasComponent(tags.Corpse):
			tint = cfg.UI.CorpseColor
		case components.Chase.Get(e).Moving:
			tint = cfg.UI.ChasingColor
		}
		actors = append(actors, actor{e, cfg.Enemy.Radius, tint})
	})
	actors = append(actors, actor{gs.Hero, cfg.Hero.Radius, cfg.UI.HeroColor})

	sort.SliceStable(actors, func(i, j int) bool {
		return components.Transform.Get(actors[i].entry).Position.Z < components.Transform.Get(actors[j].entry).Position.Z
	})

	ppu := cfg.Camera.PixelsPerUnit
	for _, a := range actors {
		tr := components.Transform.Get(a.entry)
		sx, sy := systems.WorldToScreen(cam, tr.Position.X, tr.Position.Z)
		if offscreen(screen, sx, sy, a.radius*ppu) {
			continue
		}
		drawActor(screen, a, sx, sy, a.radius*ppu*swingScale(a.entry))
		if a.entry.HasComponent(tags.Corpse) {
			continue
		}
		// Facing tick
		f := gamemath.Forward(tr.Yaw)
		r := a.radius * ppu
		vector.StrokeLine(screen, float32(sx), float32(sy), float32(sx+f.X*r), float32(sy+f.Z*r), 2, color.Black, true)
	}
}

func offscreen(screen *ebiten.Image, sx, sy, r float64) bool {
	w, h := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	return sx+r < 0 || sy+r < 0 || sx-r > w || sy-r > h
}

// swingScale pulses an actor while its attack clip plays
func swingScale(e *donburi.Entry) float64 {
	if !e.HasComponent(components.Animation) {
		return 1
	}
	anim := components.Animation.Get(e)
	if anim.Current != cfg.Attacking || anim.CurrentAnimation == nil {
		return 1
	}
	return 1 + 0.15*math.Sin(anim.CurrentAnimation.Progress()*math.Pi)
}

func drawActor(screen *ebiten.Image, a actor, sx, sy, radius float64) {
	img := assets.GetDisc(int(math.Round(radius)))
	w, h := img.Bounds().Dx(), img.Bounds().Dy()

	alpha := float32(1)
	if a.entry.HasComponent(components.Death) {
		alpha = 1 - components.Death.Get(a.entry).Offset
	}

	flash := [3]float32{1, 1, 1}
	if a.entry.HasComponent(components.Flash) {
		if f := components.Flash.Get(a.entry); f.Duration > 0 {
			flash = [3]float32{f.R, f.G, f.B}
		}
	}

	if assets.FlashShader == nil {
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(sx-float64(w)/2, sy-float64(h)/2)
		drawOp.ColorScale.ScaleWithColor(a.tint)
		drawOp.ColorScale.Scale(flash[0], flash[1], flash[2], 1)
		drawOp.ColorScale.ScaleAlpha(alpha)
		screen.DrawImage(img, drawOp)
		return
	}

	shaderOp.GeoM.Reset()
	shaderOp.ColorScale.Reset()
	shaderOp.GeoM.Translate(sx-float64(w)/2, sy-float64(h)/2)
	shaderOp.ColorScale.ScaleWithColor(a.tint)
	shaderOp.ColorScale.ScaleAlpha(alpha)
	shaderOp.Images[0] = img
	shaderOp.Uniforms = map[string]any{
		"Flash": flash[:],
	}
	screen.DrawRectShader(w, h, assets.FlashShader, shaderOp)
}

// DrawLifeBars draws a bar over every living destructible
func DrawLifeBars(gs *systems.GameState, screen *ebiten.Image) {
	cam, ok := camera(gs)
	if !ok {
		return
	}
	full := cfg.Combat.LifeBarFullWidth * lifeBarScale
	components.LifeBar.Each(gs.World, func(e *donburi.Entry) {
		if e.HasComponent(tags.Corpse) {
			return
		}
		tr := components.Transform.Get(e)
		sx, sy := systems.WorldToScreen(cam, tr.Position.X, tr.Position.Z)
		x := sx - full/2
		y := sy - cfg.UI.LifeBarOffset - cfg.UI.LifeBarHeight
		width := components.LifeBar.Get(e).Width * lifeBarScale

		vector.DrawFilledRect(screen, float32(x), float32(y), float32(full), float32(cfg.UI.LifeBarHeight), cfg.UI.LifeBarBg, false)
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(cfg.UI.LifeBarHeight), cfg.UI.LifeBarFg, false)
	})
}

// DrawTargetMarker rings the hero's destination, or the object under attack
func DrawTargetMarker(gs *systems.GameState, screen *ebiten.Image) {
	cam, ok := camera(gs)
	if !ok {
		return
	}

	var target components.Target
	if session := components.Combat.Get(gs.Hero).Session; session != nil {
		target = session.Target
	} else if loc := components.Locomotion.Get(gs.Hero); loc.Moving {
		target = loc.Target
	}
	if target.IsNone() {
		return
	}

	p := target.Point
	radius := 0.25
	switch target.Kind {
	case components.TargetTree:
		if e, ok := gs.Trees[target.ID]; ok {
			p = components.Transform.Get(e).Position
		}
		radius = cfg.Tree.Radius + 0.15
	case components.TargetEnemy:
		if e, ok := gs.Enemies[target.ID]; ok {
			p = components.Transform.Get(e).Position
		}
		radius = cfg.Enemy.Radius + 0.15
	}
	sx, sy := systems.WorldToScreen(cam, p.X, p.Z)
	vector.StrokeCircle(screen, float32(sx), float32(sy), float32(radius*cfg.Camera.PixelsPerUnit), 1.5, cfg.UI.TargetColor, true)
}

// DrawFade darkens the whole screen, alpha 0 to 1
func DrawFade(screen *ebiten.Image, alpha float64) {
	if alpha <= 0 {
		return
	}
	a := uint8(math.Min(alpha, 1) * 255)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), color.RGBA{A: a}, false)
}
