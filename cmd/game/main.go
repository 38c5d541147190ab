// cmd/game/main.go
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/time/rate"

	game "go-hex-defense/internal/app"
	"go-hex-defense/internal/command"
	"go-hex-defense/internal/component"
	"go-hex-defense/internal/config"
	"go-hex-defense/internal/state"
	"go-hex-defense/internal/transport"
	"go-hex-defense/internal/ui"
	"go-hex-defense/internal/utils"
	"go-hex-defense/pkg/render"
)

var towerKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3}

type AppGame struct {
	stateMachine   *state.StateMachine
	inbound        *command.Inbound
	renderer       *render.HexRenderer
	indicator      *ui.StateIndicator
	pauseButton    *ui.PauseButton
	timerBar       *ui.TimerBar
	infoPanel      *ui.InfoPanel
	selected       component.TowerType
	zoomSpeed      float64
	lastUpdateTime time.Time
	lastClickTime  time.Time
	fitted         bool
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now

	a.handleInput()
	a.stateMachine.Update(deltaTime)

	g := a.stateMachine.Game()
	if g.Built() && !a.fitted {
		a.renderer.Camera.FitRadius(g.Config.MapRadius, g.Config.HexSize)
		a.fitted = true
	}
	_, hovering := g.TileSystem.Cursor()
	a.infoPanel.Update(hovering && g.Built())
	return nil
}

func (a *AppGame) handleInput() {
	g := a.stateMachine.Game()
	mx, my := ebiten.CursorPosition()
	sx, sy := float64(mx), float64(my)

	if _, wheel := ebiten.Wheel(); wheel != 0 {
		a.renderer.Camera.ZoomBy(wheel, a.zoomSpeed, sx, sy)
	}

	hex := a.renderer.Camera.HexAt(sx, sy, g.Config.HexSize)
	g.SetCursor(hex)
	_, onBoard := g.TileAt(hex)

	for i, t := range component.TowerTypes {
		if inpututil.IsKeyJustPressed(towerKeys[i]) {
			a.selected = t
			log.Printf("Selected tower type: %s", t)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		a.pauseButton.HandleClick()
		a.stateMachine.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		a.indicator.HandleClick()
		a.stateMachine.RequestGameOver()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.submit(command.Command{Kind: command.Restart})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		if err := g.ExportConfig(config.ExportPath); err != nil {
			log.Printf("Config export failed: %v", err)
		}
	}

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		return
	}
	if time.Since(a.lastClickTime) < config.ClickCooldown*time.Millisecond {
		return
	}
	a.lastClickTime = time.Now()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		switch {
		case a.pauseButton.IsClicked(mx, my):
			a.pauseButton.HandleClick()
			a.stateMachine.TogglePause()
		case a.indicator.IsClicked(mx, my):
			a.indicator.HandleClick()
			a.stateMachine.RequestGameOver()
		case onBoard:
			a.submit(command.Command{Kind: command.ToggleTile, Hex: hex})
		}
		return
	}
	if onBoard {
		a.submit(command.Command{Kind: command.PlaceTower, Hex: hex, Tower: a.selected})
	}
}

func (a *AppGame) submit(cmd command.Command) {
	if err := a.inbound.Submit(cmd); err != nil {
		log.Printf("Command %q not queued: %v", cmd, err)
	}
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	g := a.stateMachine.Game()
	snap := g.Snapshot()
	phase := a.stateMachine.Phase()

	a.renderer.Draw(screen, snap)
	a.timerBar.Draw(screen, snap.MatchProgress)
	a.indicator.Draw(screen, phase)
	a.pauseButton.Draw(screen, phase == component.Pause)

	view := ui.InfoView{
		Budget:    snap.Budget,
		Score:     snap.Score,
		Selected:  a.selected,
		Phase:     phase,
		Remaining: snap.MatchRemaining,
	}
	if hex, ok := g.TileSystem.Cursor(); ok {
		if tile, ok := g.TileAt(hex); ok {
			view.Hex, view.Tile, view.Hovering = hex, tile, true
		}
	}
	a.infoPanel.Draw(screen, view)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "", "path to a JSON config file")
	wsAddr := flag.String("ws", "", "listen address for the websocket command endpoint")
	pprofAddr := flag.String("pprof", "localhost:6060", "pprof listen address, empty to disable")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	cfg := config.LoadOrDefault(*configPath)
	rng := utils.NewPRNGServiceFromSeed(cfg.Seed)
	log.Printf("Seed: %d", rng.Seed())

	inbound := command.NewInbound(cfg.CommandQueueSize)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := transport.ReadLines(ctx, os.Stdin, inbound, log.Default()); err != nil {
			log.Printf("stdin reader stopped: %v", err)
		}
	}()
	if *wsAddr != "" {
		handler := transport.NewHandler(inbound, transport.HandlerConfig{Rate: rate.Limit(20), Burst: 40})
		mux := http.NewServeMux()
		mux.HandleFunc("/ws", handler.Handle)
		go func() {
			log.Printf("Command websocket on ws://%s/ws", *wsAddr)
			log.Println(http.ListenAndServe(*wsAddr, mux))
		}()
	}

	sm := state.NewStateMachine(game.NewGame(cfg, inbound, rng))
	sm.Start()

	colors := render.DefaultMapColors(cfg.Tower.DamageAlpha)
	camera := render.NewCamera(config.ScreenWidth, config.ScreenHeight, config.MinZoom, config.MaxZoom)
	app := &AppGame{
		stateMachine:   sm,
		inbound:        inbound,
		renderer:       render.NewHexRenderer(colors, camera),
		indicator:      ui.NewStateIndicator(config.IndicatorOffsetX, config.IndicatorOffsetX, config.IndicatorRadius),
		pauseButton:    ui.NewPauseButton(config.IndicatorOffsetX*2+config.PauseButtonSize, config.IndicatorOffsetX, config.PauseButtonSize, config.PauseColor, config.InGameColor),
		timerBar:       ui.NewTimerBar(config.ScreenWidth, config.TimerBarHeight, config.TimerBarColor),
		infoPanel:      ui.NewInfoPanel(basicfont.Face7x13, config.InfoPanelHeight),
		zoomSpeed:      cfg.ZoomSpeed,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Hex Defense")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
