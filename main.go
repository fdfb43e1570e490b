package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

var debugMode bool

// debugLog prints only when -debug is set.
func debugLog(format string, args ...interface{}) {
	if debugMode {
		log.Printf("Debug: "+format, args...)
	}
}

func main() {
	flag.BoolVar(&debugMode, "debug", false, "enable debug logging")
	sortFlag := flag.Int("sort", -1, "sort method override (0=natural, 1=simple, 2=entry order)")
	fullscreenFlag := flag.Bool("fullscreen", false, "start in fullscreen")
	lockFlag := flag.Bool("lock", false, "show only the given file, without browsing its folder")
	flag.Parse()

	status := loadConfig()
	config := status.Config
	if *sortFlag >= SortNatural && *sortFlag <= SortEntryOrder {
		config.SortMethod = *sortFlag
	}
	if *fullscreenFlag {
		config.Fullscreen = true
	}
	status.Config = config

	if err := InitGraphics(); err != nil {
		log.Fatalf("Error: Failed to initialize graphics: %v", err)
	}

	target := "."
	if flag.NArg() > 0 {
		target = flag.Arg(0)
	}

	gallery := NewGallery(config.CacheSize, config.backgroundColor(), GetSortStrategy(config.SortMethod))
	load := gallery.Load
	if *lockFlag {
		load = gallery.LoadLocked
	}
	if err := load(target); err != nil {
		switch {
		case errors.Is(err, ErrNoImages):
			log.Fatalf("Error: No images to show: %v", err)
		case errors.Is(err, ErrNoDirectory):
			log.Fatalf("Error: Cannot open %s: %v", target, err)
		default:
			log.Fatalf("Error: %v", err)
		}
	}

	instance, err := acquireInstanceMarker()
	if err != nil {
		log.Printf("Warning: instance tracking unavailable: %v", err)
	}

	game := NewGame(gallery, status, instance)

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if config.Fullscreen {
		ebiten.SetFullscreen(true)
	}
	game.refreshWindowTitle()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
	if instance != nil {
		instance.Release()
	}
}
