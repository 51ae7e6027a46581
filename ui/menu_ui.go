package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// LevelEntry is one selectable level on the title menu.
type LevelEntry struct {
	Name string
	// Fastest winning time, zero if never won
	BestSeconds float64
	Wins        int
}

// Label is the button text for the entry.
func (l LevelEntry) Label() string {
	if l.BestSeconds > 0 {
		return fmt.Sprintf("%s   best %.1fs", l.Name, l.BestSeconds)
	}
	return l.Name
}

// MenuUI holds the ebitenui interface for the title menu
type MenuUI struct {
	UI *ebitenui.UI

	OnSelectLevel func(name string)
	OnQuit        func()

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewMenuUI creates the title menu listing levels in the given order.
func NewMenuUI(levels []LevelEntry, onSelectLevel func(name string), onQuit func()) *MenuUI {
	mui := &MenuUI{
		OnSelectLevel: onSelectLevel,
		OnQuit:        onQuit,
	}

	mui.loadFonts()
	mui.buildUI(levels)

	return mui
}

func (mui *MenuUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	mui.titleFace = &text.GoTextFace{Source: fontSource, Size: 28}
	mui.normalFace = &text.GoTextFace{Source: fontSource, Size: 14}
	mui.smallFace = &text.GoTextFace{Source: fontSource, Size: 10}
}

func (mui *MenuUI) buildUI(levels []LevelEntry) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{24, 28, 52, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("GEMRUN", &mui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{80, 230, 220, 255},
		}),
	))

	for _, lvl := range levels {
		name := lvl.Name // Capture for closure
		contentContainer.AddChild(mui.newButton(lvl.Label(), func() {
			if mui.OnSelectLevel != nil {
				mui.OnSelectLevel(name)
			}
		}))
	}

	contentContainer.AddChild(mui.newButton("Quit", func() {
		if mui.OnQuit != nil {
			mui.OnQuit()
		}
	}))

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Arrows/WASD: Move   Space: Jump   Esc: Pause   R: Restart", &mui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{180, 180, 180, 255},
		}),
	))

	rootContainer.AddChild(contentContainer)

	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (mui *MenuUI) newButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(200, 24),
		),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text(label, &mui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (mui *MenuUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// Update processes UI input
func (mui *MenuUI) Update() {
	mui.UI.Update()
}
