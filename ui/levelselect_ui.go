package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/automoto/iwanna/shared/leveldata"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// LevelSelectUI holds the ebitenui interface for picking a level
type LevelSelectUI struct {
	UI *ebitenui.UI

	Levels []*leveldata.Level

	// Callbacks
	OnSelect   func(index int)
	OnContinue func() // nil hides the continue button
	OnQuit     func()

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewLevelSelectUI creates the level list with one button per level.
func NewLevelSelectUI(levels []*leveldata.Level, onSelect func(int), onContinue, onQuit func()) *LevelSelectUI {
	lui := &LevelSelectUI{
		Levels:     levels,
		OnSelect:   onSelect,
		OnContinue: onContinue,
		OnQuit:     onQuit,
	}

	lui.loadFonts()
	lui.buildUI()

	return lui
}

func (lui *LevelSelectUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	lui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   24,
	}
	lui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
	lui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   10,
	}
}

func (lui *LevelSelectUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
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
		widget.LabelOpts.Text("I WANNA", &lui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))

	if lui.OnContinue != nil {
		contentContainer.AddChild(lui.newButton("CONTINUE", lui.continueButtonImage(), func() {
			lui.OnContinue()
		}))
	}

	for i, lvl := range lui.Levels {
		idx := i // Capture for closure
		label := fmt.Sprintf("%d. %s", i+1, lvl.Name)
		contentContainer.AddChild(lui.newButton(label, lui.buttonImage(), func() {
			lui.OnSelect(idx)
		}))
	}

	contentContainer.AddChild(lui.newButton("QUIT", lui.buttonImage(), func() {
		if lui.OnQuit != nil {
			lui.OnQuit()
		}
	}))

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Click a level, or press 1-9", &lui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{160, 160, 180, 255},
		}),
	))

	rootContainer.AddChild(contentContainer)

	lui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (lui *LevelSelectUI) newButton(label string, img *widget.ButtonImage, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(200, 22),
		),
		widget.ButtonOpts.Image(img),
		widget.ButtonOpts.Text(label, &lui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (lui *LevelSelectUI) buttonImage() *widget.ButtonImage {
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

func (lui *LevelSelectUI) continueButtonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{40, 100, 40, 255})
	hover := image.NewNineSliceColor(color.RGBA{60, 140, 60, 255})
	pressed := image.NewNineSliceColor(color.RGBA{30, 80, 30, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 50, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}
