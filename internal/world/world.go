package world

import (
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/lamplight/internal/entity"
	"github.com/samdwyer/lamplight/internal/geom"
	"github.com/samdwyer/lamplight/internal/logger"
	"github.com/samdwyer/lamplight/internal/mask"
	"github.com/samdwyer/lamplight/internal/vision"
)

const (
	// Default map dimensions
	DefaultWidth  = 80
	DefaultHeight = 23
)

// ErrNoPlayer is returned when rendering a world that has no player to see from.
var ErrNoPlayer = errors.New("world has no player")

// World is the tile grid together with everything placed on it.
// A World is not safe for concurrent use.
type World struct {
	width    int
	height   int
	tiles    [][]*Tile
	entities mapset.Set[*entity.Entity]
	lights   []*entity.Light
	player   *entity.Entity
	ambient  bool
	floor    rune
	log      logrus.FieldLogger
	observer vision.Observer
}

// Option configures a World.
type Option func(*World)

// WithAmbient sets whether the whole map starts lit.
func WithAmbient(ambient bool) Option {
	return func(w *World) { w.ambient = ambient }
}

// WithFloorSymbol sets the glyph drawn for empty tiles.
func WithFloorSymbol(floor rune) Option {
	return func(w *World) { w.floor = floor }
}

// WithLogger sets the logger used for world events.
func WithLogger(log logrus.FieldLogger) Option {
	return func(w *World) { w.log = log }
}

// WithObserver sets a hook that receives every mask computed while rendering.
func WithObserver(observe vision.Observer) Option {
	return func(w *World) { w.observer = observe }
}

// New creates an empty world. The tile grid is allocated once and never resized.
func New(width, height int, opts ...Option) *World {
	tiles := make([][]*Tile, height)
	for y := range tiles {
		tiles[y] = make([]*Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = &Tile{X: x, Y: y}
		}
	}

	w := &World{
		width:    width,
		height:   height,
		tiles:    tiles,
		entities: mapset.New[*entity.Entity](),
		floor:    FloorSymbol,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.log == nil {
		w.log = logger.Log.WithField("component", "world")
	}
	return w
}

// Width returns the number of columns.
func (w *World) Width() int { return w.width }

// Height returns the number of rows.
func (w *World) Height() int { return w.height }

// Ambient reports whether the whole map is lit.
func (w *World) Ambient() bool { return w.ambient }

// SetAmbient turns ambient lighting on or off.
func (w *World) SetAmbient(ambient bool) { w.ambient = ambient }

// Lights returns every light registered in this world, lit or not.
func (w *World) Lights() []*entity.Light { return w.lights }

// Player returns the viewpoint entity, or nil before a player is placed.
func (w *World) Player() *entity.Entity { return w.player }

// Entities returns every entity ever placed in this world.
func (w *World) Entities() []*entity.Entity {
	all := make([]*entity.Entity, 0, w.entities.Size())
	w.entities.Each(func(e *entity.Entity) {
		all = append(all, e)
	})
	return all
}

// InBounds returns true if (x, y) lies on the grid.
func (w *World) InBounds(x, y int) bool {
	return x >= 0 && x < w.width && y >= 0 && y < w.height
}

// Tile returns the tile at (x, y), or nil if out of bounds.
func (w *World) Tile(x, y int) *Tile {
	if !w.InBounds(x, y) {
		return nil
	}
	return w.tiles[y][x]
}

// Opaque reports whether the tile at p blocks sight.
func (w *World) Opaque(p geom.Point) bool {
	t := w.Tile(p.X, p.Y)
	return t != nil && t.Layers().Has(entity.LayerObstacle)
}

// PlaceEntity stacks e on top of tile. Placement never fails and does not
// check for obstacles. An entity already in the world is moved, so it is
// never owned by two tiles. The first player placed becomes the viewpoint.
func (w *World) PlaceEntity(tile *Tile, e *entity.Entity) {
	if w.entities.Has(e) {
		if old := w.Tile(e.X, e.Y); old != nil {
			old.remove(e)
		}
	} else {
		w.entities.Put(e)
		if e.Light != nil {
			w.lights = append(w.lights, e.Light)
		}
	}
	tile.add(e)

	if e.Is(entity.KindPlayer) {
		switch {
		case w.player == nil:
			w.player = e
		case w.player != e:
			w.log.WithFields(logrus.Fields{
				"x": tile.X,
				"y": tile.Y,
			}).Warn("Additional player placed; keeping the first as viewpoint.")
		}
	}
}

// Glyphs returns each tile's symbol, row by row, ignoring visibility.
func (w *World) Glyphs() [][]rune {
	glyphs := make([][]rune, w.height)
	for y, row := range w.tiles {
		glyphs[y] = make([]rune, w.width)
		for x, t := range row {
			glyphs[y][x] = t.Symbol(w.floor)
		}
	}
	return glyphs
}

// VisibleMask returns the tiles the player can currently see.
func (w *World) VisibleMask() (*mask.BitMask, error) {
	if w.player == nil {
		return nil, ErrNoPlayer
	}
	return vision.Visible(w, w.player.Position(), w.observer)
}

// RenderRows returns one string per grid row: the top symbol of each
// visible tile and a blank everywhere else.
func (w *World) RenderRows() ([]string, error) {
	visible, err := w.VisibleMask()
	if err != nil {
		return nil, err
	}
	return visible.Apply(w.Glyphs())
}

var _ vision.Map = (*World)(nil)
