// Command termplay plays a level pack in the terminal.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/xlab/closer"

	"github.com/milk9111/lavarun/common"
	"github.com/milk9111/lavarun/levels"
	"github.com/milk9111/lavarun/prefabs"
	"github.com/milk9111/lavarun/system"
)

func main() {
	pack := flag.String("pack", "", "level pack name in levels/ (basename, .json optional)")
	level := flag.Int("level", 0, "index of the first level to play")
	seed := flag.Uint64("seed", 0, "seed for coin animation phases (0 = random)")
	watch := flag.Bool("watch", false, "reload levels/ and prefabs/ when they change on disk")
	mute := flag.Bool("mute", false, "disable sound")
	logPath := flag.String("log", "termplay.log", "log file (the terminal is owned by the game)")
	flag.Parse()

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("open log: %v", err)
	}
	log.SetOutput(logFile)

	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		log.Fatal(err)
	}
	if *pack == "" {
		*pack = spec.Pack
	}
	parser, err := system.NewParser(*seed)
	if err != nil {
		log.Fatal(err)
	}
	plans, err := levels.Load(*pack)
	if err != nil {
		log.Fatal(err)
	}
	world, err := system.NewWorld(plans, parser, system.ConfigFromSpec(spec), *level)
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init screen: %v", err)
	}

	g := &termGame{
		screen: screen,
		world:  world,
		camera: common.NewCamera(80, 24, 0),
		sound:  newSound(*mute),
		pack:   *pack,
		seed:   *seed,
	}
	if *watch {
		w, err := prefabs.NewWatcher(levels.DiskDir, prefabs.DiskDir)
		if err != nil {
			log.Printf("hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	// Signals that bypass the key loop still restore the terminal.
	closer.Bind(func() {
		g.cleanup()
		logFile.Close()
	})
	g.run()
	closer.Close()
}
