package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/laneduel/assets"
	"github.com/automoto/laneduel/components"
	cfg "github.com/automoto/laneduel/config"
	"github.com/automoto/laneduel/shared/duel"
	"github.com/automoto/laneduel/systems"
	"github.com/automoto/laneduel/systems/factory"
	"github.com/automoto/laneduel/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DuelScene runs a single lane duel
type DuelScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	controls     *ui.ControlsUI
	once         sync.Once
	closeOnce    sync.Once
}

// NewDuelScene creates a new duel scene
func NewDuelScene(sc SceneChanger) *DuelScene {
	return &DuelScene{sceneChanger: sc}
}

func (ds *DuelScene) Update() {
	ds.once.Do(ds.configure)
	ds.ecs.Update()
	ds.controls.Update()

	if systems.RestartRequested(ds.ecs) {
		ds.Close()
		ds.sceneChanger.ChangeScene(NewDuelScene(ds.sceneChanger))
	}
}

func (ds *DuelScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.RGBA{20, 20, 30, 255})

	if ds.ecs == nil {
		return
	}
	ds.ecs.Draw(screen)
	ds.controls.UI.Draw(screen)
}

// Close stops the match so no cooldown or attack outlives the scene.
func (ds *DuelScene) Close() {
	ds.closeOnce.Do(func() {
		if ds.ecs != nil {
			systems.StopDuel(ds.ecs)
		}
	})
}

func (ds *DuelScene) configure() {
	if err := assets.LoadShaders(); err != nil {
		panic("failed to load shaders: " + err.Error())
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	// Input first, then the match, then feedback
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateDuel)
	ecs.AddSystem(systems.UpdateEffects)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawLane)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	ds.ecs = ecs

	d := factory.CreateDuel(ds.ecs, cfg.Duel)
	factory.CreateFighter(ds.ecs, duel.SideA)
	factory.CreateFighter(ds.ecs, duel.SideB)

	data := components.Duel.Get(d)
	ds.controls = ui.NewControlsUI(data.Match, data.Skills)
}
