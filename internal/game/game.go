// Package game provides the main game loop and input handling.
package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/lamplight/internal/entity"
	"github.com/samdwyer/lamplight/internal/gamedata"
	"github.com/samdwyer/lamplight/internal/logger"
	"github.com/samdwyer/lamplight/internal/mask"
	"github.com/samdwyer/lamplight/internal/telemetry"
	"github.com/samdwyer/lamplight/internal/ui"
	"github.com/samdwyer/lamplight/internal/vision"
	"github.com/samdwyer/lamplight/internal/world"
)

// Preferred player start; clamped to smaller maps.
const (
	startX = 33
	startY = 11
)

// Game holds the entire game state.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	world    *world.World
	palette  map[rune]tcell.Style
	message  string
	running  bool
	log      logrus.FieldLogger
}

// New creates a new game instance.
func New(cfg Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		running:  true,
		log:      logger.Log.WithField("component", "game"),
	}, nil
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	tracer := telemetry.Tracer("game")

	// Initialize game (traced)
	initCtx, initSpan := tracer.Start(ctx, "game.init")
	registry, err := gamedata.LoadFeatureRegistry()
	if err != nil {
		initSpan.RecordError(err)
		initSpan.End()
		return err
	}
	g.palette = registry.Palette()

	w, err := newWorld(initCtx, g.cfg, registry)
	if err != nil {
		initSpan.RecordError(err)
		initSpan.End()
		return err
	}
	g.world = w

	player := w.Player()
	initSpan.SetAttributes(
		attribute.Int("world.width", w.Width()),
		attribute.Int("world.height", w.Height()),
		attribute.Bool("world.ambient", w.Ambient()),
		attribute.Int("player.start_x", player.X),
		attribute.Int("player.start_y", player.Y),
	)
	initSpan.End()

	g.log.WithFields(logrus.Fields{
		"width":  w.Width(),
		"height": w.Height(),
		"seed":   g.cfg.Seed,
	}).Info("Game started.")

	// Main game loop
	for g.running {
		if err := g.render(ctx); err != nil {
			return err
		}

		// Handle input (blocking)
		g.handleInput(ctx)
	}

	g.log.Info("Game ended.")
	return nil
}

// newWorld builds the world: the player at the start position, then the
// registry's features scattered with a seeded generator.
func newWorld(ctx context.Context, cfg Config, registry *gamedata.FeatureRegistry) (*world.World, error) {
	w := world.New(cfg.Width, cfg.Height,
		world.WithAmbient(cfg.Ambient),
		world.WithFloorSymbol(registry.Floor().GlyphRune()),
		world.WithObserver(logMask),
	)

	playerDef := registry.GetByID(entity.KindPlayer.ID())
	if playerDef == nil {
		return nil, fmt.Errorf("feature %q not defined", entity.KindPlayer.ID())
	}
	player, err := entity.NewFromDef(playerDef)
	if err != nil {
		return nil, err
	}
	x, y := startPosition(cfg.Width, cfg.Height)
	w.PlaceEntity(w.Tile(x, y), player)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if err := w.Populate(ctx, rand.New(rand.NewSource(seed)), registry); err != nil {
		return nil, err
	}
	return w, nil
}

func startPosition(width, height int) (int, int) {
	return min(startX, width-1), min(startY, height-1)
}

// logMask records each vision mask at debug level.
func logMask(kind vision.Kind, m *mask.BitMask) {
	if !logger.Log.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	logger.Log.WithFields(logrus.Fields{
		"mask": kind,
		"on":   m.Count(),
	}).Debugf("Mask computed:\n%s", m)
}

// render draws the visible part of the world beneath the message line.
func (g *Game) render(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "world.render")
	defer span.End()

	lit := 0
	for _, l := range g.world.Lights() {
		if l.Lit() {
			lit++
		}
	}
	span.SetAttributes(
		attribute.Int("world.lights_lit", lit),
		attribute.Bool("world.ambient", g.world.Ambient()),
	)

	rows, err := g.world.RenderRows()
	if err != nil {
		span.RecordError(err)
		return err
	}
	g.renderer.Render(rows, g.message, g.palette)
	return nil
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	action, dir := MapKey(ev)
	g.apply(ctx, action, dir)
}

// apply performs one action. Every key press clears the message line.
func (g *Game) apply(ctx context.Context, action Action, dir world.Direction) {
	g.message = ""

	switch action {
	case ActionQuit:
		g.running = false
	case ActionToggleAmbient:
		g.world.SetAmbient(!g.world.Ambient())
		g.log.WithField("ambient", g.world.Ambient()).Debug("Ambient toggled.")
	case ActionMove:
		g.control(ctx, dir)
	}
}

// control moves the player and sets the message line from the outcome.
func (g *Game) control(ctx context.Context, dir world.Direction) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "turn.control")
	defer span.End()

	outcome := g.world.HandleControl(dir)
	g.message = outcome.Message()

	player := g.world.Player()
	span.SetAttributes(
		attribute.String("direction", dir.String()),
		attribute.String("outcome", outcome.String()),
		attribute.Int("player.x", player.X),
		attribute.Int("player.y", player.Y),
	)
}
