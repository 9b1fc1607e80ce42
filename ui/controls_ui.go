package ui

import (
	"bytes"
	"image/color"

	cfg "github.com/automoto/laneduel/config"
	"github.com/automoto/laneduel/shared/duel"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ControlsUI holds the on-screen movement and skill buttons
type ControlsUI struct {
	UI     *ebitenui.UI
	Match  *duel.Match
	Skills []duel.Skill

	// Widget references for updates
	leftButton   *widget.Button
	rightButton  *widget.Button
	skillButtons []*widget.Button

	normalFace text.Face
}

// NewControlsUI creates the control panel for a match
func NewControlsUI(m *duel.Match, skills []duel.Skill) *ControlsUI {
	cui := &ControlsUI{
		Match:  m,
		Skills: skills,
	}

	cui.loadFonts()
	cui.buildUI()

	return cui
}

func (cui *ControlsUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	cui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   16,
	}
}

func (cui *ControlsUI) buildUI() {
	// Transparent root so the lane stays visible
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Left: 40, Bottom: 40}
	panel := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	panel.AddChild(cui.buildMoveRow())
	panel.AddChild(cui.buildSkillRow())
	rootContainer.AddChild(panel)

	cui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (cui *ControlsUI) buildMoveRow() *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(16),
		)),
	)

	cui.leftButton = cui.newButton("<", cui.buttonImage(), func() {
		cui.Match.TryMove(duel.Left)
	})
	row.AddChild(cui.leftButton)

	cui.rightButton = cui.newButton(">", cui.buttonImage(), func() {
		cui.Match.TryMove(duel.Right)
	})
	row.AddChild(cui.rightButton)

	return row
}

func (cui *ControlsUI) buildSkillRow() *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(16),
		)),
	)

	cui.skillButtons = make([]*widget.Button, len(cui.Skills))
	for i, skill := range cui.Skills {
		b := cui.newButton(skill.Name, cui.skillButtonImage(), func() {
			cui.Match.TrySkill(cui.Skills, i)
		})
		cui.skillButtons[i] = b
		row.AddChild(b)
	}

	return row
}

func (cui *ControlsUI) newButton(label string, img *widget.ButtonImage, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(80, 32),
		),
		widget.ButtonOpts.Image(img),
		widget.ButtonOpts.Text(label, &cui.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{255, 255, 200, 255},
			Pressed:  color.RGBA{200, 200, 200, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
			cui.UpdateUI()
		}),
	)
}

func (cui *ControlsUI) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

func (cui *ControlsUI) skillButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(cfg.Teal),
		Hover:    image.NewNineSliceColor(color.RGBA{56, 178, 172, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 120, 118, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 60, 60, 255}),
	}
}

// UpdateUI enables each control only while its action is allowed
func (cui *ControlsUI) UpdateUI() {
	canMove := cui.Match.CanMove()
	if cui.leftButton != nil {
		cui.leftButton.GetWidget().Disabled = !canMove
	}
	if cui.rightButton != nil {
		cui.rightButton.GetWidget().Disabled = !canMove
	}
	for i, b := range cui.skillButtons {
		if b == nil {
			continue
		}
		b.GetWidget().Disabled = !cui.Match.CanUseSkill(cui.Skills[i])
	}
}

// Update runs the widgets and refreshes their enabled state
func (cui *ControlsUI) Update() {
	cui.UI.Update()
	cui.UpdateUI()
}
