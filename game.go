package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/lavarun/common"
	"github.com/milk9111/lavarun/levels"
	"github.com/milk9111/lavarun/prefabs"
	"github.com/milk9111/lavarun/system"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

// Options are the command-line choices the window driver starts with.
type Options struct {
	Pack  string
	Level int
	Seed  uint64
	Watch bool
	Debug bool
}

type Game struct {
	frames int

	opts    Options
	spec    *prefabs.GameSpec
	world   *system.World
	camera  *common.Camera
	watcher *prefabs.Watcher
	face    ebtext.Face

	banner     string
	bannerTime int

	paused  bool
	quit    bool
	pauseUI *ebitenui.UI
}

func NewGame(opts Options) (*Game, error) {
	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		return nil, err
	}
	if opts.Pack == "" {
		opts.Pack = spec.Pack
	}

	parser, err := system.NewParser(opts.Seed)
	if err != nil {
		return nil, err
	}
	pack, err := levels.Load(opts.Pack)
	if err != nil {
		return nil, err
	}
	world, err := system.NewWorld(pack, parser, system.ConfigFromSpec(spec), opts.Level)
	if err != nil {
		return nil, err
	}

	g := &Game{
		opts:   opts,
		spec:   spec,
		world:  world,
		camera: common.NewCamera(baseWidth, baseHeight, spec.CameraLerp),
		face:   ebtext.NewGoXFace(basicfont.Face7x13),
	}
	g.pauseUI = NewPauseUI(g)

	if opts.Watch {
		w, err := prefabs.NewWatcher(levels.DiskDir, prefabs.DiskDir)
		if err != nil {
			log.Printf("hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	g.handleEvents()
	return g, nil
}

func (g *Game) Update() error {
	g.frames++
	if g.bannerTime > 0 {
		g.bannerTime--
	}

	g.pollWatcher()

	in, cmd := readInput()
	if cmd.pause {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
	}
	if cmd.quit || g.quit {
		g.close()
		return ebiten.Termination
	}
	if g.paused {
		return nil
	}
	if cmd.restart {
		if err := g.world.Restart(); err != nil {
			return err
		}
	}

	if !g.world.Complete() {
		dt := 1.0 / float64(ebiten.TPS())
		if err := g.world.Update(dt, in); err != nil {
			return fmt.Errorf("update level %d: %w", g.world.Index(), err)
		}
	}

	g.handleEvents()
	g.followPlayer(false)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawLevel(screen)
	g.drawHUD(screen)

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) restartFromMenu() {
	if err := g.world.Restart(); err != nil {
		log.Printf("restart: %v", err)
	}
	g.paused = false
}

func (g *Game) showBanner(msg string) {
	g.banner = msg
	g.bannerTime = 2 * ebiten.TPS()
}

func (g *Game) handleEvents() {
	for _, e := range g.world.Events().Drain() {
		switch e.Type {
		case system.EventLevelStarted:
			idx, _ := e.Data.(int)
			log.Printf("level %d of %d started", idx+1, g.world.Levels())
			g.showBanner(fmt.Sprintf("Level %d", idx+1))
			g.followPlayer(true)
		case system.EventCoinCollected:
			if g.opts.Debug {
				log.Printf("collected %v", e.Data)
			}
		case system.EventLevelWon:
			g.showBanner("Level complete!")
		case system.EventLevelLost:
			g.showBanner("Burned! Try again")
		case system.EventGameComplete:
			g.banner = "You won the prize!"
			g.bannerTime = -1
		}
	}
}

// followPlayer keeps the camera on the player. snap skips smoothing, which
// is used when a level starts.
func (g *Game) followPlayer(snap bool) {
	lvl := g.world.Level()
	if lvl == nil {
		return
	}
	ts := float64(g.spec.TileSize)
	g.camera.SetWorldBounds(lvl.Width*g.spec.TileSize, lvl.Height*g.spec.TileSize)
	if lvl.Player == nil {
		g.camera.SnapTo(float64(lvl.Width)*ts/2, float64(lvl.Height)*ts/2)
		return
	}
	cx := (lvl.Player.Pos.X + lvl.Player.Size.X/2) * ts
	cy := (lvl.Player.Pos.Y + lvl.Player.Size.Y/2) * ts
	if snap {
		g.camera.SnapTo(cx, cy)
		return
	}
	g.camera.Update(cx, cy)
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(change)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("watch: %v", err)
		default:
			return
		}
	}
}

func (g *Game) reload(change prefabs.Change) {
	spec, err := g.world.ApplyChange(change, g.opts.Pack, g.opts.Seed)
	if err != nil {
		log.Printf("reload: %v", err)
	}
	if spec != nil {
		g.spec = spec
		g.camera.SetSmooth(spec.CameraLerp)
	}
}

func (g *Game) close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("close watcher: %v", err)
		}
		g.watcher = nil
	}
}
