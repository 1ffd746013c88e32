package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	pack := flag.String("pack", "", "level pack name in levels/ (basename, .json optional)")
	level := flag.Int("level", 0, "index of the first level to play")
	seed := flag.Uint64("seed", 0, "seed for coin animation phases (0 = random)")
	watch := flag.Bool("watch", false, "reload levels/ and prefabs/ when they change on disk")
	debug := flag.Bool("debug", false, "enable debug mode")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	game, err := NewGame(Options{
		Pack:  *pack,
		Level: *level,
		Seed:  *seed,
		Watch: *watch,
		Debug: *debug,
	})
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle(game.spec.Name)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
