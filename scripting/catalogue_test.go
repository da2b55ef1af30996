package scripting

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/automoto/dukeengine/config"
)

func menuScriptNames() []string {
	s := config.Menu.Scripts
	return []string{
		s.ConfirmQuitInGame, s.ConfirmQuit, s.SaveGame, s.RestoreGame, s.Help,
		s.Pause, s.PrayingWontHelp, s.HealthRestored, s.ItemsGiven,
		s.NoGameToRestore, s.NoCanOrder,
	}
}

func TestDefaultCatalogueHasMenuScripts(t *testing.T) {
	c := DefaultCatalogue()
	for _, name := range menuScriptNames() {
		if _, err := c.Source(name); err != nil {
			t.Errorf("Source(%q): %v", name, err)
		}
	}
}

func TestCatalogueUnknownScript(t *testing.T) {
	_, err := DefaultCatalogue().Source("Nonexistent")
	if !errors.Is(err, ErrUnknownScript) {
		t.Errorf("error = %v, want ErrUnknownScript", err)
	}
}

func TestLoadCatalogue(t *testing.T) {
	tests := []struct {
		name    string
		fsys    fstest.MapFS
		wantErr bool
		paused  string
	}{
		{
			name:   "no override file",
			fsys:   fstest.MapFS{},
			paused: "",
		},
		{
			name: "override replaces by name",
			fsys: fstest.MapFS{CatalogueFile: {Data: []byte(`
scripts:
  Paused:
    source: 'ui.window(0, 0, 10, 3)'
`)}},
			paused: "ui.window(0, 0, 10, 3)",
		},
		{
			name:    "invalid yaml",
			fsys:    fstest.MapFS{CatalogueFile: {Data: []byte("scripts: [")}},
			wantErr: true,
		},
		{
			name:    "empty source",
			fsys:    fstest.MapFS{CatalogueFile: {Data: []byte("scripts:\n  Paused: {}\n")}},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := LoadCatalogue(tt.fsys)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			src, _ := c.Source(config.Menu.Scripts.Pause)
			if tt.paused != "" && src != tt.paused {
				t.Errorf("Paused source = %q", src)
			}
			if _, err := c.Source(config.Menu.Scripts.SaveGame); err != nil {
				t.Errorf("built-in scripts should remain: %v", err)
			}
		})
	}
}
