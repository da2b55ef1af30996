package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"
	"time"

	"github.com/automoto/dukeengine/components"
	"github.com/automoto/dukeengine/config"
	"github.com/automoto/dukeengine/fonts"
	"github.com/automoto/dukeengine/render"
	"github.com/ebitenui/ebitenui"
	uiimage "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

type optionID int

const (
	optMusicVolume optionID = iota
	optSoundVolume
	optMusicOn
	optSoundOn
	optFullscreen
	optVsync
	optFpsCounter
	optWidescreen
	optQuickSaving
	optBack
	optCount
)

// OptionsMenu edits the game options in place. Changes take effect
// immediately, the menu only decides when it is finished.
type OptionsMenu struct {
	options  *config.GameOptions
	selected optionID
	finished bool

	ui          *ebitenui.UI
	titleFace   text.Face
	normalFace  text.Face
	nameLabels  [optCount]*widget.Label
	valueLabels [optCount]*widget.Label
}

func NewOptionsMenu(options *config.GameOptions) *OptionsMenu {
	return &OptionsMenu{options: options}
}

func (m *OptionsMenu) IsFinished() bool {
	return m.finished
}

func (m *OptionsMenu) HandleEvent(ev components.InputEvent, sounds func(config.SoundID)) {
	switch {
	case ev.IsAction(config.ActionMenuBack):
		m.finished = true
	case ev.IsAction(config.ActionMenuUp):
		m.selected = (m.selected - 1 + optCount) % optCount
		sounds(config.SoundMenuSelect)
	case ev.IsAction(config.ActionMenuDown):
		m.selected = (m.selected + 1) % optCount
		sounds(config.SoundMenuSelect)
	case ev.IsAction(config.ActionMoveLeft):
		m.adjust(-1, sounds)
	case ev.IsAction(config.ActionMoveRight):
		m.adjust(1, sounds)
	case ev.IsAction(config.ActionMenuSelect):
		if m.selected == optBack {
			m.finished = true
			return
		}
		m.adjust(1, sounds)
	}
}

func (m *OptionsMenu) adjust(direction int, sounds func(config.SoundID)) {
	o := m.options
	switch m.selected {
	case optMusicVolume:
		o.MusicVolume = adjustVolumeStep(o.MusicVolume, direction)
	case optSoundVolume:
		o.SoundVolume = adjustVolumeStep(o.SoundVolume, direction)
	case optMusicOn:
		o.MusicOn = !o.MusicOn
	case optSoundOn:
		o.SoundOn = !o.SoundOn
	case optFullscreen:
		if o.WindowMode == config.WindowModeFullscreen {
			o.WindowMode = config.WindowModeWindowed
		} else {
			o.WindowMode = config.WindowModeFullscreen
		}
	case optVsync:
		o.EnableVsync = !o.EnableVsync
	case optFpsCounter:
		o.ShowFpsCounter = !o.ShowFpsCounter
	case optWidescreen:
		o.WidescreenModeOn = !o.WidescreenModeOn
	case optQuickSaving:
		o.QuickSavingEnabled = !o.QuickSavingEnabled
	default:
		return
	}
	sounds(config.SoundMenuToggle)
}

func adjustVolumeStep(current float64, direction int) float64 {
	steps := config.OptionsMenu.VolumeSteps
	idx := findClosestStepIndex(current, steps) + direction
	idx = min(max(idx, 0), len(steps)-1)
	return steps[idx]
}

func findClosestStepIndex(value float64, steps []float64) int {
	closest := 0
	minDiff := 2.0
	for i, step := range steps {
		diff := value - step
		if diff < 0 {
			diff = -diff
		}
		if diff < minDiff {
			minDiff = diff
			closest = i
		}
	}
	return closest
}

func (m *OptionsMenu) optionDisplay(opt optionID) (string, string) {
	o := m.options
	switch opt {
	case optMusicVolume:
		return "Music Volume", formatVolumeBar(o.MusicVolume)
	case optSoundVolume:
		return "Sound Volume", formatVolumeBar(o.SoundVolume)
	case optMusicOn:
		return "Music", formatToggle(o.MusicOn)
	case optSoundOn:
		return "Sound", formatToggle(o.SoundOn)
	case optFullscreen:
		return "Fullscreen", formatToggle(o.WindowMode == config.WindowModeFullscreen)
	case optVsync:
		return "V-Sync", formatToggle(o.EnableVsync)
	case optFpsCounter:
		return "Show FPS", formatToggle(o.ShowFpsCounter)
	case optWidescreen:
		return "Widescreen", formatToggle(o.WidescreenModeOn)
	case optQuickSaving:
		return "Quick Saving", formatToggle(o.QuickSavingEnabled)
	case optBack:
		return "< Back", ""
	default:
		return "", ""
	}
}

// formatVolumeBar creates a visual volume bar
func formatVolumeBar(volume float64) string {
	filled := int(volume * 10)
	bar := strings.Repeat("|", filled) + strings.Repeat(".", 10-filled)
	return fmt.Sprintf("[%s] %d%%", bar, int(volume*100))
}

func formatToggle(value bool) string {
	if value {
		return "[X] On"
	}
	return "[ ] Off"
}

func (m *OptionsMenu) rowName(opt optionID) string {
	name, _ := m.optionDisplay(opt)
	if opt == m.selected {
		return "> " + name
	}
	return "  " + name
}

func (m *OptionsMenu) UpdateAndRender(r render.Renderer, dt time.Duration) {
	if r == nil {
		return
	}
	if drawer, ok := r.(render.UIDrawer); ok {
		if m.ui == nil {
			m.buildUI()
		}
		m.updateUI()
		drawer.DrawUI(m.ui)
		return
	}

	// Plain text fallback
	menu := &config.Menu
	r.DrawText(config.OptionsMenu.Title, image.Pt(menu.ItemsX, menu.TitleY), menu.TextColor)
	for opt := optionID(0); opt < optCount; opt++ {
		_, value := m.optionDisplay(opt)
		c := menu.TextColor
		if opt == m.selected {
			c = menu.SelectedColor
		}
		y := menu.ItemsStartY + int(opt)*menu.ItemHeight
		r.DrawText(m.rowName(opt), image.Pt(menu.BoxPadding*2, y), c)
		r.DrawText(value, image.Pt(config.C.Width/2, y), c)
	}
}

func (m *OptionsMenu) loadFonts() {
	m.titleFace = text.NewGoXFace(fonts.MenuTitle.Get())
	m.normalFace = text.NewGoXFace(fonts.Menu.Get())
}

func (m *OptionsMenu) buildUI() {
	m.loadFonts()

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(uiimage.NewNineSliceColor(color.RGBA{0, 0, 0, 160})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(uiimage.NewNineSliceColor(config.Menu.BoxColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(config.Menu.BoxPadding)),
			widget.RowLayoutOpts.Spacing(2),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(config.OptionsMenu.Title, &m.titleFace, &widget.LabelColor{
			Idle: config.Menu.TextColor,
		}),
	))

	for opt := optionID(0); opt < optCount; opt++ {
		row := widget.NewContainer(
			widget.ContainerOpts.Layout(widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(6),
			)),
		)

		m.nameLabels[opt] = widget.NewLabel(
			widget.LabelOpts.Text("", &m.normalFace, &widget.LabelColor{
				Idle: config.Menu.TextColor,
			}),
		)
		row.AddChild(m.nameLabels[opt])

		m.valueLabels[opt] = widget.NewLabel(
			widget.LabelOpts.Text("", &m.normalFace, &widget.LabelColor{
				Idle: config.Menu.SelectedColor,
			}),
		)
		row.AddChild(m.valueLabels[opt])

		panel.AddChild(row)
	}

	rootContainer.AddChild(panel)
	m.ui = &ebitenui.UI{Container: rootContainer}
}

func (m *OptionsMenu) updateUI() {
	for opt := optionID(0); opt < optCount; opt++ {
		_, value := m.optionDisplay(opt)
		// Menu fonts are monospaced, padding lines up the values
		m.nameLabels[opt].Label = fmt.Sprintf("%-16s", m.rowName(opt))
		m.valueLabels[opt].Label = value
	}
}
