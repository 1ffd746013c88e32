package main

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/milk9111/lavarun/obj"
)

type cell struct {
	r     rune
	style tcell.Style
}

var (
	styleEmpty    = tcell.StyleDefault.Background(tcell.ColorNavy)
	styleWall     = tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorGray)
	styleLava     = tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorRed)
	stylePlayer   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy).Bold(true)
	styleDead     = tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorNavy).Bold(true)
	styleCoin     = tcell.StyleDefault.Foreground(tcell.ColorGold).Background(tcell.ColorNavy)
	styleFireball = tcell.StyleDefault.Foreground(tcell.ColorOrangeRed).Background(tcell.ColorNavy)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
)

func obstacleCell(o obj.Obstacle) cell {
	switch o {
	case obj.ObstacleWall:
		return cell{'#', styleWall}
	case obj.ObstacleLava:
		return cell{'~', styleLava}
	}
	return cell{' ', styleEmpty}
}

func actorCell(a *obj.Actor, status obj.Status) cell {
	switch a.Kind() {
	case obj.KindPlayer:
		if status == obj.StatusLost {
			return cell{'X', styleDead}
		}
		return cell{'@', stylePlayer}
	case obj.KindCoin:
		return cell{'o', styleCoin}
	case obj.KindHorizontalFireball:
		return cell{'=', styleFireball}
	case obj.KindVerticalFireball:
		return cell{'|', styleFireball}
	case obj.KindFireRain:
		return cell{'v', styleFireball}
	case obj.KindFireball:
		return cell{'*', styleFireball}
	}
	return cell{'?', styleEmpty}
}

// renderFrame draws the w by h window of lvl whose top-left tile is
// (left, top). Tiles outside the grid are blank. The player is drawn last.
func renderFrame(lvl *obj.Level, left, top, w, h int) [][]cell {
	frame := make([][]cell, h)
	for y := range frame {
		row := make([]cell, w)
		ty := top + y
		for x := range row {
			tx := left + x
			row[x] = obstacleCell(obj.ObstacleNone)
			if ty >= 0 && ty < len(lvl.Grid) && tx >= 0 && tx < len(lvl.Grid[ty]) {
				row[x] = obstacleCell(lvl.Grid[ty][tx])
			}
		}
		frame[y] = row
	}

	plot := func(a *obj.Actor) {
		c := actorCell(a, lvl.Status)
		x0, x1 := int(math.Floor(a.Left())), int(math.Ceil(a.Right()))-1
		y0, y1 := int(math.Floor(a.Top())), int(math.Ceil(a.Bottom()))-1
		for ty := y0; ty <= y1; ty++ {
			for tx := x0; tx <= x1; tx++ {
				fx, fy := tx-left, ty-top
				if fy >= 0 && fy < h && fx >= 0 && fx < w {
					frame[fy][fx] = c
				}
			}
		}
	}
	for _, a := range lvl.Actors {
		if a != lvl.Player {
			plot(a)
		}
	}
	if lvl.Player != nil {
		plot(lvl.Player)
	}
	return frame
}
