// cmd/orbs_raylib/main.go
package main

import (
	"flag"
	"log"

	"go-ambient-orbs/internal/config"
	"go-ambient-orbs/internal/renderer"
	"go-ambient-orbs/internal/viewer"
)

func main() {
	configPath := flag.String("config", config.DefaultSettingsPath, "path to the JSON settings file")
	seed := flag.Int64("seed", 0, "random seed for orb placement (0 = time based)")
	debug := flag.Bool("debug", false, "show FPS overlay")
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

	opts, err := renderer.OptionsFromSettings(settings)
	if err != nil {
		log.Fatal(err)
	}
	viewer.New(settings).Run(opts)
}
