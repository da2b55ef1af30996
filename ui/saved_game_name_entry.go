package ui

import (
	"image/color"
	"time"
	"unicode"

	"github.com/automoto/dukeengine/components"
	"github.com/automoto/dukeengine/config"
	"github.com/automoto/dukeengine/fonts"
	"github.com/automoto/dukeengine/render"
	"github.com/ebitenui/ebitenui"
	uiimage "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// SavedGameNameEntry asks for the name of a saved game. It is drawn over
// the save slot list, in the row of the selected slot.
type SavedGameNameEntry struct {
	SlotIndex int

	name []rune

	ui    *ebitenui.UI
	input *widget.TextInput
	face  text.Face
}

func NewSavedGameNameEntry(slotIndex int, initialName string) *SavedGameNameEntry {
	e := &SavedGameNameEntry{SlotIndex: slotIndex}
	for _, r := range initialName {
		e.appendRune(r)
	}
	return e
}

func (e *SavedGameNameEntry) Text() string {
	return string(e.name)
}

// HandleEvent edits the name. Confirm and cancel are handled by the menu.
func (e *SavedGameNameEntry) HandleEvent(ev components.InputEvent) {
	switch {
	case ev.Kind == components.TextInput:
		e.appendRune(ev.Text)
	case ev.IsKeyDown(ebiten.KeyBackspace):
		if len(e.name) > 0 {
			e.name = e.name[:len(e.name)-1]
		}
	}
}

func (e *SavedGameNameEntry) appendRune(r rune) {
	if len(e.name) >= config.Menu.MaxSaveNameLength || !unicode.IsPrint(r) {
		return
	}
	e.name = append(e.name, r)
}

func (e *SavedGameNameEntry) UpdateAndRender(r render.Renderer, dt time.Duration) {
	drawer, ok := r.(render.UIDrawer)
	if !ok {
		return
	}
	if e.ui == nil {
		e.buildUI()
	}
	if e.input.GetText() != e.Text() {
		e.input.SetText(e.Text())
	}
	drawer.DrawUI(e.ui)
}

func (e *SavedGameNameEntry) buildUI() {
	e.face = text.NewGoXFace(fonts.Menu.Get())

	pos := config.Menu.NameEntryPos
	pos.Y += e.SlotIndex * config.Menu.NameEntrySpacing
	padding := widget.Insets{Left: pos.X, Top: pos.Y}
	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
		)),
	)

	e.input = widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(config.Menu.NameEntryWidth, config.Menu.NameEntrySpacing-2)),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     uiimage.NewNineSliceColor(config.Menu.BoxColor),
			Disabled: uiimage.NewNineSliceColor(config.Menu.BoxColor),
		}),
		widget.TextInputOpts.Face(&e.face),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          config.Menu.SelectedColor,
			Disabled:      color.RGBA{128, 128, 128, 255},
			Caret:         config.Menu.SelectedColor,
			DisabledCaret: color.RGBA{128, 128, 128, 255},
		}),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(2)),
	)
	e.input.SetText(e.Text())
	root.AddChild(e.input)

	e.ui = &ebitenui.UI{Container: root}
}
