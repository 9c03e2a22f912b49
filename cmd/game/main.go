// cmd/game/main.go
package main

import (
	"errors"
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"

	"go-ambient-orbs/internal/app"
	"go-ambient-orbs/internal/config"
	"go-ambient-orbs/internal/renderer"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", config.DefaultSettingsPath, "path to the JSON settings file")
	seed := flag.Int64("seed", 0, "random seed for orb placement (0 = time based)")
	debug := flag.Bool("debug", false, "show TPS/FPS overlay")
	pprofAddr := flag.String("pprof", "", "serve net/http/pprof on this address, e.g. localhost:6060")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *seed != 0 {
		settings.Seed = *seed
	}
	if *debug {
		settings.ShowDebug = true
	}

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	opts, err := renderer.OptionsFromSettings(settings)
	if err != nil {
		log.Fatal(err)
	}
	g := app.NewGame(settings, opts)
	defer g.Close()

	ebiten.SetWindowSize(settings.WindowWidth, settings.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(ebiten.SyncWithFPS)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
