package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/pancam/common"
	"github.com/milk9111/pancam/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "log camera transitions and reloads")
	prefabDir := flag.String("prefabs", prefabs.DiskDir, "directory searched for prefabs before the embedded copies")
	cameraPrefab := flag.String("camera", "camera.yaml", "camera prefab")
	inputPrefab := flag.String("input", "input.yaml", "input prefab")
	flag.Parse()

	prefabs.DiskDir = *prefabDir

	game, err := NewGame(GameOptions{
		CameraPrefab: *cameraPrefab,
		InputPrefab:  *inputPrefab,
		Debug:        *debug,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	width, height := game.WindowSize()
	if width <= 0 || height <= 0 {
		width, height = common.BaseWidth, common.BaseHeight
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("pancam")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
