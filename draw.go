package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/lavarun/obj"
)

const bannerScale = 3

func (g *Game) drawLevel(screen *ebiten.Image) {
	pal := g.spec.Palette
	screen.Fill(pal.Background)

	lvl := g.world.Level()
	if lvl == nil {
		return
	}
	ts := float64(g.spec.TileSize)
	camX, camY := g.camera.ViewTopLeft()

	for y, row := range lvl.Grid {
		for x, cell := range row {
			var clr color.Color
			switch cell {
			case obj.ObstacleWall:
				clr = pal.Wall
			case obj.ObstacleLava:
				clr = pal.Lava
			default:
				continue
			}
			vector.FillRect(screen,
				float32(float64(x)*ts-camX), float32(float64(y)*ts-camY),
				float32(ts), float32(ts), clr, false)
		}
	}

	for _, a := range lvl.Actors {
		x := float32(a.Pos.X*ts - camX)
		y := float32(a.Pos.Y*ts - camY)
		w := float32(a.Size.X * ts)
		h := float32(a.Size.Y * ts)

		switch {
		case a.Kind() == obj.KindCoin:
			r := min(w, h) / 2
			vector.FillCircle(screen, x+w/2, y+h/2, r, pal.Coin, true)
		case a.Kind().IsProjectile():
			vector.FillRect(screen, x, y, w, h, pal.Fireball, false)
		case a.Kind() == obj.KindPlayer:
			clr := color.Color(pal.Player)
			if lvl.Status == obj.StatusLost {
				clr = pal.Lava
			}
			vector.FillRect(screen, x, y, w, h, clr, false)
		default:
			vector.StrokeRect(screen, x, y, w, h, 1, pal.Text, false)
		}

		if g.opts.Debug {
			vector.StrokeRect(screen, x, y, w, h, 1, colornames.Magenta, false)
			ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", a.ID()), int(x), int(y)-14)
		}
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	lvl := g.world.Level()
	hud := fmt.Sprintf("Level %d/%d", g.world.Index()+1, g.world.Levels())
	if lvl != nil {
		hud += fmt.Sprintf("    Coins left: %d", lvl.Coins())
	}
	if g.paused {
		hud += "    PAUSED"
	}
	g.drawText(screen, hud, 10, 24, 1)

	if g.opts.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    TPS: %.2f", g.frames, ebiten.ActualFPS(), ebiten.ActualTPS()))
		if lvl != nil {
			ebitenutil.DebugPrintAt(screen, fmt.Sprintf("status: %s  finish delay: %.2f", lvl.Status, lvl.FinishDelay), 10, 40)
		}
	}

	if g.banner != "" && g.bannerTime != 0 {
		w, h := ebtext.Measure(g.banner, g.face, 0)
		x := (baseWidth - w*bannerScale) / 2
		y := (baseHeight - h*bannerScale) / 2
		g.drawText(screen, g.banner, x, y, bannerScale)
	}
}

func (g *Game) drawText(screen *ebiten.Image, s string, x, y, scale float64) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(g.spec.Palette.Text)
	ebtext.Draw(screen, s, g.face, op)
}
