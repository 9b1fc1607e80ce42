package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/laneduel/config"
	"github.com/automoto/laneduel/fonts"
	"github.com/automoto/laneduel/scenes"
	"github.com/automoto/laneduel/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// Close releases the active scene
func (g *Game) Close() {
	if c, ok := g.scene.(scenes.Closer); ok {
		c.Close()
	}
}

func NewGame() (*Game, error) {
	if err := fonts.LoadFont(fonts.Body, goregular.TTF); err != nil {
		return nil, err
	}
	if err := fonts.LoadFontWithSize(fonts.Header, goregular.TTF, 18); err != nil {
		return nil, err
	}
	if err := fonts.LoadFontWithSize(fonts.Small, goregular.TTF, 12); err != nil {
		return nil, err
	}

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewDuelScene(g)

	return g, nil
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.BoolVar(&config.Debug.Overlay, "debug", config.Debug.Overlay, "show the debug overlay")
	flag.BoolVar(&config.Debug.LogEvents, "log-hits", config.Debug.LogEvents, "log every resolved hit")
	flag.Parse()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Lane Duel")
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, _ := systems.LoadSettings() // failures are logged, defaults apply
	systems.ApplySavedSettingsGlobal(saved)

	g, err := NewGame()
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	err = ebiten.RunGame(g)
	g.Close()
	if err != nil {
		log.Fatal(err)
	}
}
