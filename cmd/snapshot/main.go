// cmd/snapshot/main.go
package main

import (
	"flag"
	"log"
	"os"

	"go-ambient-orbs/internal/config"
	"go-ambient-orbs/internal/headless"
	"go-ambient-orbs/internal/renderer"
)

// Рисует фон без окна и сохраняет кадр в PNG, например для превью страницы.
func main() {
	configPath := flag.String("config", config.DefaultSettingsPath, "path to the JSON settings file")
	seed := flag.Int64("seed", 1, "random seed for orb placement (0 = time based)")
	frames := flag.Int("frames", 120, "number of frames to simulate before capturing")
	scale := flag.Float64("scale", 1, "device scale factor of the rendered image")
	out := flag.String("out", "orbs.png", "output PNG path")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	settings.Seed = *seed

	opts, err := renderer.OptionsFromSettings(settings)
	if err != nil {
		log.Fatal(err)
	}

	host := headless.NewHost(float64(settings.WindowWidth), float64(settings.WindowHeight), *scale)
	orbs := renderer.Mount(host, opts)
	host.Step(*frames)
	orbs.Dispose()

	f, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	if err := host.WritePNG(f); err != nil {
		f.Close()
		log.Fatal(err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}
	log.Printf("snapshot: wrote %d frames of %dx%d orbs to %s", orbs.Frames(), settings.WindowWidth, settings.WindowHeight, *out)
}
