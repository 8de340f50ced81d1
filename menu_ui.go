package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/skyhop/assets"
	"github.com/milk9111/skyhop/level"
	"golang.org/x/image/colornames"
)

const (
	levelCount = 3
	volumeStep = 0.1
)

type menuTheme struct {
	face        ebtext.Face
	panel       *imageui.NineSlice
	buttonImage *widget.ButtonImage
	textColor   *widget.ButtonTextColor
}

func newMenuTheme() *menuTheme {
	idle := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	hover := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255})
	return &menuTheme{
		face:        assets.Face(),
		panel:       imageui.NewNineSliceColor(color.NRGBA{A: 170}),
		buttonImage: &widget.ButtonImage{Idle: idle, Hover: hover, Pressed: idle},
		textColor:   &widget.ButtonTextColor{Idle: colornames.White},
	}
}

func (t *menuTheme) title(label string) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(label, &t.face, colornames.White),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
}

func (t *menuTheme) button(label string, width int, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(t.buttonImage),
		widget.ButtonOpts.Text(label, &t.face, t.textColor),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(width, 40),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
		),
		widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// screen wraps children in a centered vertical panel.
func (t *menuTheme) screen(children ...widget.PreferredSizeLocateableWidget) *ebitenui.UI {
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(t.panel),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(14),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 24, Bottom: 24, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	for _, c := range children {
		panel.AddChild(c)
	}

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}

// NewMainMenuUI builds the title screen with PLAY, OPTIONS and QUIT.
func NewMainMenuUI(g *Game, t *menuTheme) *ebitenui.UI {
	return t.screen(
		t.title(g.spec.Title),
		t.button("PLAY", 220, func() { g.show(sceneLevelSelect) }),
		t.button("OPTIONS", 220, func() { g.show(sceneOptions) }),
		t.button("QUIT", 220, func() { g.quit = true }),
	)
}

func NewLevelSelectUI(g *Game, t *menuTheme) *ebitenui.UI {
	children := []widget.PreferredSizeLocateableWidget{t.title("SELECT LEVEL")}
	for n := 1; n <= levelCount; n++ {
		children = append(children, t.button(level.LevelName(n), 220, func() {
			g.startLevel(n)
		}))
	}
	children = append(children, t.button("BACK", 220, func() { g.show(sceneMainMenu) }))
	return t.screen(children...)
}

// NewOptionsUI builds the volume controls. Changes apply to the shared
// settings immediately, including a running level's audio.
func NewOptionsUI(g *Game, t *menuTheme) *ebitenui.UI {
	row := func(name string, get func() float64, set func(float64)) *widget.Container {
		value := widget.NewText(
			widget.TextOpts.Text(volumeLabel(name, get()), &t.face, colornames.White),
			widget.TextOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(160, 40),
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
			),
		)
		adjust := func(delta float64) {
			set(get() + delta)
			value.Label = volumeLabel(name, get())
		}

		c := widget.NewContainer(
			widget.ContainerOpts.Layout(widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(10),
			)),
			widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
		)
		c.AddChild(t.button("-", 40, func() { adjust(-volumeStep) }))
		c.AddChild(value)
		c.AddChild(t.button("+", 40, func() { adjust(volumeStep) }))
		return c
	}

	return t.screen(
		t.title("OPTIONS"),
		row("MUSIC", g.settings.Music, g.settings.SetMusic),
		row("SFX", g.settings.SFX, g.settings.SetSFX),
		t.button("BACK", 220, func() { g.show(sceneMainMenu) }),
	)
}

func volumeLabel(name string, v float64) string {
	return fmt.Sprintf("%s %3d%%", name, int(v*100+0.5))
}
