package assets

import (
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"path"
	"sync"

	"github.com/automoto/dukeengine/config"
	"github.com/automoto/dukeengine/logger"
	"github.com/automoto/dukeengine/shared/gamemath"
	"gopkg.in/yaml.v3"
)

// Manifest describes where each actor's frames live in the sprite sheets.
type Manifest struct {
	TileSize int         `yaml:"tile_size"`
	Actors   []ActorSpec `yaml:"actors"`
}

type ActorSpec struct {
	Name      string      `yaml:"name"`
	Sheet     string      `yaml:"sheet"`
	DrawIndex int         `yaml:"draw_index"`
	Frames    []FrameSpec `yaml:"frames"`
	Grid      *GridSpec   `yaml:"grid"`
}

// FrameSpec is a frame rectangle on the sheet in pixels, and a draw offset
// in tiles.
type FrameSpec struct {
	X       int `yaml:"x"`
	Y       int `yaml:"y"`
	W       int `yaml:"w"`
	H       int `yaml:"h"`
	OffsetX int `yaml:"offset_x"`
	OffsetY int `yaml:"offset_y"`
}

// GridSpec is shorthand for Count equally sized frames laid out in rows.
type GridSpec struct {
	X           int `yaml:"x"`
	Y           int `yaml:"y"`
	FrameWidth  int `yaml:"frame_width"`
	FrameHeight int `yaml:"frame_height"`
	Count       int `yaml:"count"`
	Columns     int `yaml:"columns"`
}

func (g GridSpec) frames() []FrameSpec {
	cols := g.Columns
	if cols <= 0 {
		cols = g.Count
	}
	frames := make([]FrameSpec, g.Count)
	for i := range frames {
		frames[i] = FrameSpec{
			X: g.X + (i%cols)*g.FrameWidth,
			Y: g.Y + (i/cols)*g.FrameHeight,
			W: g.FrameWidth,
			H: g.FrameHeight,
		}
	}
	return frames
}

// ParseManifest decodes a YAML actor manifest.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal manifest: %w", err)
	}
	if m.TileSize == 0 {
		m.TileSize = config.C.TileSize
	}
	return &m, nil
}

// ManifestPackage is an ActorImagePackage backed by a YAML manifest and PNG
// sprite sheets in a file system.
type ManifestPackage struct {
	fsys     fs.FS
	path     string
	tileSize int

	mu     sync.Mutex
	specs  map[config.ActorID]ActorSpec
	sheets map[string]image.Image
}

// LoadManifestPackage reads the manifest at manifestPath. Sheet paths are
// relative to the manifest's directory.
func LoadManifestPackage(fsys fs.FS, manifestPath string) (*ManifestPackage, error) {
	p := &ManifestPackage{fsys: fsys, path: manifestPath}
	if err := p.Reload(); err != nil {
		return nil, err
	}
	return p, nil
}

// Reload re-reads the manifest. Sheet images are decoded again on demand.
func (p *ManifestPackage) Reload() error {
	data, err := fs.ReadFile(p.fsys, p.path)
	if err != nil {
		return fmt.Errorf("read manifest %s: %w", p.path, err)
	}
	m, err := ParseManifest(data)
	if err != nil {
		return fmt.Errorf("%s: %w", p.path, err)
	}

	specs := make(map[config.ActorID]ActorSpec, len(m.Actors))
	for _, spec := range m.Actors {
		id, ok := config.ActorIDByName(spec.Name)
		if !ok {
			logger.Log.WithField("actor", spec.Name).Warn("Manifest entry for unknown actor ignored")
			continue
		}
		if spec.Grid != nil {
			spec.Frames = append(spec.Frames, spec.Grid.frames()...)
		}
		specs[id] = spec
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.tileSize = m.TileSize
	p.specs = specs
	p.sheets = make(map[string]image.Image)
	return nil
}

func (p *ManifestPackage) LoadActor(id config.ActorID) (ActorData, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	spec, ok := p.specs[id]
	if !ok {
		return ActorData{}, fmt.Errorf("%w: %s", ErrUnknownActor, id)
	}
	if len(spec.Frames) == 0 {
		return ActorData{}, fmt.Errorf("actor %s has no frames", id)
	}

	sheet, err := p.sheet(spec.Sheet)
	if err != nil {
		return ActorData{}, fmt.Errorf("actor %s: %w", id, err)
	}
	sub, ok := sheet.(interface {
		SubImage(r image.Rectangle) image.Image
	})
	if !ok {
		return ActorData{}, fmt.Errorf("actor %s: sheet %s cannot be sliced", id, spec.Sheet)
	}

	data := ActorData{ID: id, DrawIndex: spec.DrawIndex, Frames: make([]ActorFrame, len(spec.Frames))}
	for i, f := range spec.Frames {
		data.Frames[i] = ActorFrame{
			Image:      sub.SubImage(image.Rect(f.X, f.Y, f.X+f.W, f.Y+f.H)),
			DrawOffset: gamemath.Vec{X: f.OffsetX, Y: f.OffsetY},
			Size:       p.frameExtents(f),
		}
	}
	return data, nil
}

func (p *ManifestPackage) ActorFrameRect(id config.ActorID, frame int) gamemath.Rect {
	p.mu.Lock()
	defer p.mu.Unlock()

	spec, ok := p.specs[id]
	if !ok || frame < 0 || frame >= len(spec.Frames) {
		return gamemath.Rect{}
	}
	f := spec.Frames[frame]
	return gamemath.Rect{
		TopLeft: gamemath.Vec{X: f.OffsetX, Y: f.OffsetY},
		Size:    p.frameExtents(f),
	}
}

func (p *ManifestPackage) frameExtents(f FrameSpec) gamemath.Extents {
	return gamemath.Extents{
		Width:  gamemath.PixelsToTiles(f.W, p.tileSize),
		Height: gamemath.PixelsToTiles(f.H, p.tileSize),
	}
}

func (p *ManifestPackage) sheet(name string) (image.Image, error) {
	if img, ok := p.sheets[name]; ok {
		return img, nil
	}
	img, err := LoadImage(p.fsys, path.Join(path.Dir(p.path), name))
	if err != nil {
		return nil, err
	}
	p.sheets[name] = img
	return img, nil
}
