package config

import (
	"image"
	"image/color"
	"time"
)

const NumSaveSlots = 8

// Top level menu item labels
const (
	MenuItemSaveGame         = "Save Game"
	MenuItemQuickSave        = "Quick Save"
	MenuItemRestoreGame      = "Restore Game"
	MenuItemRestoreQuickSave = "Restore Quick Save"
	MenuItemOptions          = "Options"
	MenuItemHelp             = "Help"
	MenuItemQuitGame         = "Quit Game"
)

// MenuScripts names the dialog scripts run by the in-game menu
type MenuScripts struct {
	ConfirmQuitInGame string
	ConfirmQuit       string
	SaveGame          string
	RestoreGame       string
	Help              string
	Pause             string
	PrayingWontHelp   string
	HealthRestored    string
	ItemsGiven        string
	NoGameToRestore   string
	NoCanOrder        string
}

// MenuConfig contains in-game menu configuration
type MenuConfig struct {
	TopLevelItems []string
	Scripts       MenuScripts

	MaxSaveNameLength int
	FadeDuration      time.Duration

	// Layout, in logical pixels
	TitleY        int
	ItemsStartY   int
	ItemHeight    int
	BoxPadding    int
	BoxColor      color.RGBA
	BorderColor   color.RGBA
	TextColor     color.RGBA
	SelectedColor color.RGBA
	ItemsX        int
	// Name entry box of the first save slot, lower slots are further down
	NameEntryPos     image.Point
	NameEntrySpacing int
	NameEntryWidth   int
}

var Menu MenuConfig

func init() {
	Menu = MenuConfig{
		TopLevelItems: []string{
			MenuItemSaveGame,
			MenuItemQuickSave,
			MenuItemRestoreGame,
			MenuItemRestoreQuickSave,
			MenuItemOptions,
			MenuItemHelp,
			MenuItemQuitGame,
		},
		Scripts: MenuScripts{
			ConfirmQuitInGame: "2Quit_Select",
			ConfirmQuit:       "Quit_Select",
			SaveGame:          "Save_Game",
			RestoreGame:       "Restore_Game",
			Help:              "&Instructions",
			Pause:             "Paused",
			PrayingWontHelp:   "The_Prey",
			HealthRestored:    "Full_Health",
			ItemsGiven:        "Now_Ch",
			NoGameToRestore:   "No_Game_Restore",
			NoCanOrder:        "No_Can_Order",
		},
		MaxSaveNameLength: 18,
		FadeDuration:      250 * time.Millisecond,

		TitleY:           24,
		ItemsStartY:      56,
		ItemHeight:       14,
		BoxPadding:       8,
		BoxColor:         color.RGBA{R: 0, G: 0, B: 80, A: 230},
		BorderColor:      color.RGBA{R: 160, G: 160, B: 255, A: 255},
		TextColor:        White,
		SelectedColor:    Yellow,
		ItemsX:           88,
		NameEntryPos:     image.Pt(88, 40),
		NameEntrySpacing: 16,
		NameEntryWidth:   160,
	}
}
