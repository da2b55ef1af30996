package systems

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/automoto/dukeengine/components"
	cfg "github.com/automoto/dukeengine/config"
	"github.com/automoto/dukeengine/logger"
	"github.com/quasilyte/gdata"
)

const (
	profileItem = "profile"
	optionsItem = "options"
	maxScore    = 9999999
)

// ErrSlotOutOfRange is returned for save slot indices outside the profile.
var ErrSlotOutOfRange = errors.New("save slot out of range")

// ProfileStorage is where profile items are kept. *gdata.Manager
// implements it.
type ProfileStorage interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// SavedGame is the state stored in a save slot.
type SavedGame struct {
	SessionID cfg.SessionID           `json:"session"`
	Name      string                  `json:"name"`
	Weapon    components.PlayerWeapon `json:"weapon"`
	Ammo      int                     `json:"ammo"`
	Score     int                     `json:"score"`
}

// Profile holds everything persisted between runs.
type Profile struct {
	SaveSlots [cfg.NumSaveSlots]*SavedGame
	QuickSave *SavedGame
	Options   cfg.GameOptions

	storage ProfileStorage
	// Profile as last read from disk, so fields written by other versions
	// survive a save
	original map[string]json.RawMessage
}

type serializedProfile struct {
	SaveSlots []*SavedGame `json:"saveSlots"`
	QuickSave *SavedGame   `json:"quickSave,omitempty"`
}

// OpenProfile opens the gdata store for the game and loads the profile.
// Without a usable store an in-memory profile with default options is
// returned.
func OpenProfile() *Profile {
	m, err := gdata.Open(gdata.Config{AppName: cfg.C.GameName})
	if err != nil {
		logger.Log.WithError(err).Warn("Could not initialize persistence, progress will not be saved")
		return NewProfile(nil)
	}
	return LoadProfile(m)
}

// NewProfile returns an empty profile backed by storage, which may be nil.
func NewProfile(storage ProfileStorage) *Profile {
	return &Profile{Options: cfg.DefaultOptions(), storage: storage}
}

// LoadProfile reads the profile from storage. Missing or corrupt items
// leave the defaults in place.
func LoadProfile(storage ProfileStorage) *Profile {
	p := NewProfile(storage)

	if data, err := storage.LoadItem(profileItem); err != nil {
		logger.Log.WithError(err).Warn("Could not load user profile")
	} else if data != nil {
		if err := p.decodeProfile(data); err != nil {
			logger.Log.WithError(err).Warn("Could not parse user profile")
		}
	}

	if data, err := storage.LoadItem(optionsItem); err != nil {
		logger.Log.WithError(err).Warn("Could not load options")
	} else if data != nil {
		if err := json.Unmarshal(data, &p.Options); err != nil {
			logger.Log.WithError(err).Warn("Could not parse options")
			p.Options = cfg.DefaultOptions()
		}
	}
	return p
}

func (p *Profile) decodeProfile(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.original = raw

	var decoded serializedProfile
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	for i, slot := range decoded.SaveSlots {
		if i >= len(p.SaveSlots) {
			break
		}
		p.SaveSlots[i] = sanitize(slot)
	}
	p.QuickSave = sanitize(decoded.QuickSave)
	return nil
}

// sanitize clamps values read from disk into their valid ranges.
func sanitize(g *SavedGame) *SavedGame {
	if g == nil {
		return nil
	}
	g.SessionID.Episode = min(max(g.SessionID.Episode, 0), cfg.NumEpisodes-1)
	g.SessionID.Level = min(max(g.SessionID.Level, 0), cfg.NumLevelsPerEpisode-1)
	g.SessionID.Difficulty = min(max(g.SessionID.Difficulty, cfg.Easy), cfg.Hard)
	g.Ammo = min(max(g.Ammo, 0), cfg.Player.MaxAmmo)
	g.Score = min(max(g.Score, 0), maxScore)
	return g
}

// SaveSlot returns the game in slot i, nil for an empty slot.
func (p *Profile) SaveSlot(i int) (*SavedGame, error) {
	if i < 0 || i >= len(p.SaveSlots) {
		return nil, fmt.Errorf("slot %d: %w", i, ErrSlotOutOfRange)
	}
	return p.SaveSlots[i], nil
}

// StoreSaveSlot puts game into slot i.
func (p *Profile) StoreSaveSlot(i int, game SavedGame) error {
	if i < 0 || i >= len(p.SaveSlots) {
		return fmt.Errorf("slot %d: %w", i, ErrSlotOutOfRange)
	}
	p.SaveSlots[i] = &game
	return nil
}

// SlotNames lists the save names of all slots, empty for unused slots.
func (p *Profile) SlotNames() []string {
	names := make([]string, len(p.SaveSlots))
	for i, slot := range p.SaveSlots {
		if slot != nil {
			names[i] = slot.Name
		}
	}
	return names
}

func (p *Profile) GameOptions() *cfg.GameOptions {
	return &p.Options
}

// SaveToDisk writes the profile and the options. Failures are logged only.
func (p *Profile) SaveToDisk() {
	if p.storage == nil {
		return
	}

	if data, err := p.encodeProfile(); err != nil {
		logger.Log.WithError(err).Warn("Could not serialize user profile")
	} else if err := p.storage.SaveItem(profileItem, data); err != nil {
		logger.Log.WithError(err).Warn("Could not store user profile")
	}

	if data, err := json.MarshalIndent(p.Options, "", "    "); err != nil {
		logger.Log.WithError(err).Warn("Could not serialize options")
	} else if err := p.storage.SaveItem(optionsItem, data); err != nil {
		logger.Log.WithError(err).Warn("Could not store options")
	}
}

// encodeProfile merges the current state into the profile read from disk.
func (p *Profile) encodeProfile() ([]byte, error) {
	merged := make(map[string]json.RawMessage, len(p.original)+2)
	for k, v := range p.original {
		merged[k] = v
	}

	slots, err := json.Marshal(p.SaveSlots[:])
	if err != nil {
		return nil, err
	}
	merged["saveSlots"] = slots

	if p.QuickSave != nil {
		quick, err := json.Marshal(p.QuickSave)
		if err != nil {
			return nil, err
		}
		merged["quickSave"] = quick
	} else {
		delete(merged, "quickSave")
	}
	return json.Marshal(merged)
}
