package world

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/lamplight/internal/entity"
	"github.com/samdwyer/lamplight/internal/gamedata"
	"github.com/samdwyer/lamplight/internal/telemetry"
)

// randomAttemptsPerTile bounds random probing before RandomTile falls back
// to a scan of the whole grid.
const randomAttemptsPerTile = 4

// TileFilter selects tiles for RandomTile.
type TileFilter func(*Tile) bool

// IsEmpty selects tiles with no features.
func IsEmpty(t *Tile) bool {
	return t.IsEmpty()
}

// RandomTile returns a random tile accepted by every filter, or false if no
// tile qualifies.
func (w *World) RandomTile(rng *rand.Rand, filters ...TileFilter) (*Tile, bool) {
	accept := func(t *Tile) bool {
		for _, f := range filters {
			if !f(t) {
				return false
			}
		}
		return true
	}

	for i := 0; i < w.width*w.height*randomAttemptsPerTile; i++ {
		t := w.tiles[rng.Intn(w.height)][rng.Intn(w.width)]
		if accept(t) {
			return t, true
		}
	}

	// Nearly full grid: pick uniformly among the remaining candidates.
	var candidates []*Tile
	for _, row := range w.tiles {
		for _, t := range row {
			if accept(t) {
				candidates = append(candidates, t)
			}
		}
	}
	if len(candidates) == 0 {
		return nil, false
	}
	return candidates[rng.Intn(len(candidates))], true
}

// Populate scatters every non-player feature in the registry over empty
// tiles, Count of each, in registry order.
func (w *World) Populate(ctx context.Context, rng *rand.Rand, registry *gamedata.FeatureRegistry) error {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "world.populate")
	defer span.End()

	startTime := time.Now()
	placed := 0

	for _, def := range registry.All() {
		if def.ID == entity.KindPlayer.ID() {
			continue
		}
		for i := 0; i < def.Count; i++ {
			e, err := entity.NewFromDef(&def)
			if err != nil {
				span.RecordError(err)
				return fmt.Errorf("populate %s: %w", def.ID, err)
			}
			tile, ok := w.RandomTile(rng, IsEmpty)
			if !ok {
				err := fmt.Errorf("populate %s: no empty tile left after placing %d features", def.ID, placed)
				span.RecordError(err)
				return err
			}
			w.PlaceEntity(tile, e)
			placed++
		}
	}

	span.SetAttributes(
		attribute.Int("world.width", w.width),
		attribute.Int("world.height", w.height),
		attribute.Int("world.features_placed", placed),
		attribute.Int("world.lights", len(w.lights)),
		attribute.Int64("world.populate_ms", time.Since(startTime).Milliseconds()),
	)
	w.log.WithField("features", placed).Debug("World populated.")
	return nil
}
