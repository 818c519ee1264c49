package main

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"time"

	"ballshooter/internal/game"
)

func main() {
	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	var cfg game.Config
	var seed int64
	var fps, width, height int
	flag.Int64Var(&seed, "seed", time.Now().UnixNano(), "body placement seed")
	flag.IntVar(&fps, "fps", 90, "target frame rate")
	flag.BoolVar(&cfg.Muted, "mute", false, "start with impact sounds muted")
	flag.IntVar(&width, "width", 1280, "window width")
	flag.IntVar(&height, "height", 720, "window height")
	flag.Parse()

	cfg.Seed = uint64(seed)
	cfg.TargetFPS = int32(fps)
	cfg.Width = int32(width)
	cfg.Height = int32(height)

	game.New(cfg).Run()
}
