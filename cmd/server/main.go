// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	game "go-hex-defense/internal/app"
	"go-hex-defense/internal/command"
	"go-hex-defense/internal/config"
	"go-hex-defense/internal/state"
	"go-hex-defense/internal/transport"
	"go-hex-defense/internal/utils"
)

func main() {
	configPath := flag.String("config", "", "path to a JSON config file")
	wsAddr := flag.String("ws", ":8090", "listen address for the websocket command endpoint, empty to disable")
	tickRate := flag.Int("tps", 60, "simulation ticks per second")
	statusEvery := flag.Duration("status", 5*time.Second, "interval between status log lines")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadOrDefault(*configPath)
	rng := utils.NewPRNGServiceFromSeed(cfg.Seed)
	log.Printf("Seed: %d", rng.Seed())

	inbound := command.NewInbound(cfg.CommandQueueSize)
	go func() {
		if err := transport.ReadLines(ctx, os.Stdin, inbound, log.Default()); err != nil {
			log.Printf("stdin reader stopped: %v", err)
		}
	}()

	var server *http.Server
	if *wsAddr != "" {
		handler := transport.NewHandler(inbound, transport.HandlerConfig{Rate: rate.Limit(20), Burst: 40})
		mux := http.NewServeMux()
		mux.HandleFunc("/ws", handler.Handle)
		server = &http.Server{Addr: *wsAddr, Handler: mux}
		go func() {
			log.Printf("Command websocket on ws://%s/ws", *wsAddr)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Printf("websocket server: %v", err)
			}
		}()
	}

	sm := state.NewStateMachine(game.NewGame(cfg, inbound, rng))
	sm.Start()
	run(ctx, sm, *tickRate, *statusEvery)

	if server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("websocket shutdown: %v", err)
		}
	}
	log.Println("Server stopped")
}

// run drives the state machine at a fixed rate until ctx is cancelled.
func run(ctx context.Context, sm *state.StateMachine, tps int, statusEvery time.Duration) {
	if tps < 1 {
		tps = 1
	}
	if statusEvery <= 0 {
		statusEvery = 5 * time.Second
	}
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()
	status := time.NewTicker(statusEvery)
	defer status.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			if dt > config.MaxDeltaTime {
				dt = config.MaxDeltaTime
			}
			last = now
			sm.Update(dt)
		case <-status.C:
			snap := sm.Game().Snapshot()
			log.Printf("Status: phase %s, t=%.1fs, budget %d, score %d/%d, towers %d, enemies %d",
				sm.Phase(), snap.GameTime, snap.Budget, snap.Score.Player, snap.Score.Enemy,
				len(snap.Towers), len(snap.Enemies))
		}
	}
}
