package assets

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/automoto/dukeengine/config"
	"github.com/automoto/dukeengine/logger"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// SoundBank decodes sound effects from the data directory once and plays
// them on demand.
type SoundBank struct {
	fsys    fs.FS
	context *audio.Context
	cache   map[config.SoundID][]byte
	volume  float64
	enabled bool
}

func NewSoundBank(fsys fs.FS, ctx *audio.Context) *SoundBank {
	return &SoundBank{
		fsys:    fsys,
		context: ctx,
		cache:   make(map[config.SoundID][]byte),
		volume:  config.Audio.DefaultSFXVol,
		enabled: true,
	}
}

// Preload decodes every configured sound. Missing files are logged and
// skipped; the game runs without them.
func (b *SoundBank) Preload() {
	for id, p := range config.Sound.SFXPaths {
		if _, err := b.decoded(id, p); err != nil {
			logger.Log.WithError(err).WithField("sound", p).Warn("Sound not available")
		}
	}
}

// ApplyOptions takes the sound settings from the user's options.
func (b *SoundBank) ApplyOptions(opts config.GameOptions) {
	b.volume = opts.SoundVolume
	b.enabled = opts.SoundOn
}

func (b *SoundBank) PlaySound(id config.SoundID) {
	if !b.enabled || b.context == nil {
		return
	}
	p, ok := config.Sound.SFXPaths[id]
	if !ok {
		return
	}
	data, err := b.decoded(id, p)
	if err != nil {
		return
	}

	player, err := b.context.NewPlayer(bytes.NewReader(data))
	if err != nil {
		logger.Log.WithError(err).Warn("Failed to create sound player")
		return
	}
	vol := b.volume
	if m, ok := config.Sound.VolumeMultipliers[id]; ok {
		vol *= m
	}
	player.SetVolume(vol)
	player.Play()
}

func (b *SoundBank) decoded(id config.SoundID, name string) ([]byte, error) {
	if data, ok := b.cache[id]; ok {
		return data, nil
	}

	raw, err := fs.ReadFile(b.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read audio file %s: %w", name, err)
	}

	var stream io.Reader
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(b.context.SampleRate(), bytes.NewReader(raw))
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(b.context.SampleRate(), bytes.NewReader(raw))
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}

	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read decoded audio %s: %w", name, err)
	}
	b.cache[id] = data
	return data, nil
}
