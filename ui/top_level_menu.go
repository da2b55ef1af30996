package ui

import (
	"image"
	"slices"
	"time"

	"github.com/automoto/dukeengine/components"
	"github.com/automoto/dukeengine/config"
	"github.com/automoto/dukeengine/fonts"
	"github.com/automoto/dukeengine/render"
	"golang.org/x/image/font"
)

const selectionBlinkPeriod = 250 * time.Millisecond

// TopLevelMenu is the main in-game menu, titled with the running session.
type TopLevelMenu struct {
	title    string
	items    []string
	selected int
	elapsed  time.Duration
}

// NewTopLevelMenu builds the item list. "Quick Save" is only offered with
// quick saving enabled, "Restore Quick Save" only when a quick save exists.
func NewTopLevelMenu(session config.SessionID, quickSavingEnabled, canQuickLoad bool) *TopLevelMenu {
	m := &TopLevelMenu{title: session.LongString()}
	for _, item := range config.Menu.TopLevelItems {
		switch {
		case item == config.MenuItemQuickSave && !quickSavingEnabled:
			continue
		case item == config.MenuItemRestoreQuickSave && !canQuickLoad:
			continue
		}
		m.items = append(m.items, item)
	}
	return m
}

func (m *TopLevelMenu) Title() string {
	return m.title
}

func (m *TopLevelMenu) Items() []string {
	return m.items
}

func (m *TopLevelMenu) SelectedItem() string {
	return m.items[m.selected]
}

// SelectItem selects the item with the given label, if present.
func (m *TopLevelMenu) SelectItem(item string) {
	if i := slices.Index(m.items, item); i >= 0 {
		m.selected = i
	}
}

// HandleEvent moves the selection, wrapping around at both ends.
func (m *TopLevelMenu) HandleEvent(ev components.InputEvent, sounds func(config.SoundID)) {
	switch {
	case ev.IsAction(config.ActionMenuUp):
		m.selected--
		if m.selected < 0 {
			m.selected = len(m.items) - 1
		}
	case ev.IsAction(config.ActionMenuDown):
		m.selected++
		if m.selected >= len(m.items) {
			m.selected = 0
		}
	default:
		return
	}
	sounds(config.SoundMenuSelect)
}

func (m *TopLevelMenu) UpdateAndRender(r render.Renderer, dt time.Duration) {
	m.elapsed += dt
	if r == nil {
		return
	}

	menu := &config.Menu
	r.Clear(config.Black)
	screen := image.Rect(0, 0, config.C.Width, config.C.Height)
	box := screen.Inset(menu.BoxPadding)
	r.DrawFilledRect(box, menu.BoxColor)
	r.DrawRect(box, menu.BorderColor)

	titleWidth := font.MeasureString(fonts.Menu.Get(), m.title).Ceil()
	r.DrawText(m.title, image.Pt((config.C.Width-titleWidth)/2, menu.TitleY), menu.TextColor)

	for i, item := range m.items {
		c := menu.TextColor
		if i == m.selected {
			c = menu.SelectedColor
		}
		r.DrawText(item, image.Pt(menu.ItemsX, menu.ItemsStartY+i*menu.ItemHeight), c)
	}

	if (m.elapsed/selectionBlinkPeriod)%2 == 0 {
		pos := image.Pt(menu.ItemsX-2*config.C.TileSize, menu.ItemsStartY+m.selected*menu.ItemHeight)
		r.DrawText(">", pos, menu.SelectedColor)
	}
}
