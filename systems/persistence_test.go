package systems

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/automoto/dukeengine/components"
	"github.com/automoto/dukeengine/config"
)

type memoryStorage struct {
	items map[string][]byte
	fail  bool
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{items: make(map[string][]byte)}
}

func (m *memoryStorage) LoadItem(key string) ([]byte, error) {
	if m.fail {
		return nil, errors.New("disk on fire")
	}
	return m.items[key], nil
}

func (m *memoryStorage) SaveItem(key string, data []byte) error {
	if m.fail {
		return errors.New("disk on fire")
	}
	m.items[key] = data
	return nil
}

func TestProfileRoundTrip(t *testing.T) {
	storage := newMemoryStorage()
	p := LoadProfile(storage)

	game := SavedGame{
		SessionID: config.SessionID{Episode: 1, Level: 4, Difficulty: config.Hard},
		Name:      "before the boss",
		Weapon:    components.WeaponLaser,
		Ammo:      20,
		Score:     12345,
	}
	if err := p.StoreSaveSlot(3, game); err != nil {
		t.Fatal(err)
	}
	p.QuickSave = &SavedGame{Name: "quick"}
	p.Options.WidescreenModeOn = true
	p.SaveToDisk()

	loaded := LoadProfile(storage)
	slot, err := loaded.SaveSlot(3)
	if err != nil {
		t.Fatal(err)
	}
	if slot == nil || *slot != game {
		t.Errorf("slot 3 = %+v, want %+v", slot, game)
	}
	if empty, _ := loaded.SaveSlot(0); empty != nil {
		t.Errorf("slot 0 = %+v, want empty", empty)
	}
	if loaded.QuickSave == nil || loaded.QuickSave.Name != "quick" {
		t.Errorf("quick save = %+v", loaded.QuickSave)
	}
	if !loaded.GameOptions().WidescreenModeOn {
		t.Error("options were not persisted")
	}
}

func TestProfileKeepsUnknownFields(t *testing.T) {
	storage := newMemoryStorage()
	storage.items[profileItem] = []byte(`{"saveSlots":[],"highScores":[{"name":"Duke","score":99}]}`)

	p := LoadProfile(storage)
	if err := p.StoreSaveSlot(0, SavedGame{Name: "new"}); err != nil {
		t.Fatal(err)
	}
	p.SaveToDisk()

	var saved map[string]json.RawMessage
	if err := json.Unmarshal(storage.items[profileItem], &saved); err != nil {
		t.Fatal(err)
	}
	if _, ok := saved["highScores"]; !ok {
		t.Errorf("unknown field dropped: %s", storage.items[profileItem])
	}
}

func TestProfileSanitizesValues(t *testing.T) {
	storage := newMemoryStorage()
	storage.items[profileItem] = []byte(`{"saveSlots":[{"session":{"episode":9,"level":-2,"difficulty":7},"ammo":500,"score":-5}]}`)

	p := LoadProfile(storage)
	slot, _ := p.SaveSlot(0)
	if slot == nil {
		t.Fatal("slot 0 not loaded")
	}
	want := config.SessionID{Episode: config.NumEpisodes - 1, Level: 0, Difficulty: config.Hard}
	if slot.SessionID != want {
		t.Errorf("session = %+v, want %+v", slot.SessionID, want)
	}
	if slot.Ammo != config.Player.MaxAmmo || slot.Score != 0 {
		t.Errorf("ammo = %d, score = %d", slot.Ammo, slot.Score)
	}
}

func TestProfileCorruptDataFallsBackToDefaults(t *testing.T) {
	storage := newMemoryStorage()
	storage.items[profileItem] = []byte(`{not json`)
	storage.items[optionsItem] = []byte(`[]`)

	p := LoadProfile(storage)
	if p.Options != config.DefaultOptions() {
		t.Errorf("options = %+v, want defaults", p.Options)
	}
	for i := range p.SaveSlots {
		if p.SaveSlots[i] != nil {
			t.Errorf("slot %d should be empty", i)
		}
	}
}

func TestProfileSlotRange(t *testing.T) {
	p := NewProfile(nil)
	for _, i := range []int{-1, config.NumSaveSlots} {
		if _, err := p.SaveSlot(i); !errors.Is(err, ErrSlotOutOfRange) {
			t.Errorf("SaveSlot(%d) error = %v", i, err)
		}
		if err := p.StoreSaveSlot(i, SavedGame{}); !errors.Is(err, ErrSlotOutOfRange) {
			t.Errorf("StoreSaveSlot(%d) error = %v", i, err)
		}
	}
	// without storage, saving is a no-op
	p.SaveToDisk()
}

func TestProfileStorageErrorsAreNotFatal(t *testing.T) {
	storage := newMemoryStorage()
	storage.fail = true

	p := LoadProfile(storage)
	if p.Options != config.DefaultOptions() {
		t.Error("failed load should keep default options")
	}
	p.SaveToDisk()
}

func TestProfileSlotNames(t *testing.T) {
	p := NewProfile(nil)
	if err := p.StoreSaveSlot(2, SavedGame{Name: "boss fight"}); err != nil {
		t.Fatal(err)
	}
	names := p.SlotNames()
	if len(names) != config.NumSaveSlots {
		t.Fatalf("got %d names, want %d", len(names), config.NumSaveSlots)
	}
	for i, name := range names {
		want := ""
		if i == 2 {
			want = "boss fight"
		}
		if name != want {
			t.Errorf("slot %d name = %q, want %q", i, name, want)
		}
	}
}
