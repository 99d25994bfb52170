package game

import (
	"context"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/lamplight/internal/entity"
	"github.com/samdwyer/lamplight/internal/gamedata"
	"github.com/samdwyer/lamplight/internal/logger"
	"github.com/samdwyer/lamplight/internal/world"
)

func TestMapKey(t *testing.T) {
	tests := []struct {
		key    tcell.Key
		r      rune
		action Action
		dir    world.Direction
	}{
		{tcell.KeyRune, 'h', ActionMove, world.DirLeft},
		{tcell.KeyRune, 'j', ActionMove, world.DirDown},
		{tcell.KeyRune, 'k', ActionMove, world.DirUp},
		{tcell.KeyRune, 'l', ActionMove, world.DirRight},
		{tcell.KeyRune, 'y', ActionMove, world.DirUpLeft},
		{tcell.KeyRune, 'u', ActionMove, world.DirUpRight},
		{tcell.KeyRune, 'b', ActionMove, world.DirDownLeft},
		{tcell.KeyRune, 'n', ActionMove, world.DirDownRight},
		{tcell.KeyLeft, 0, ActionMove, world.DirLeft},
		{tcell.KeyDown, 0, ActionMove, world.DirDown},
		{tcell.KeyUp, 0, ActionMove, world.DirUp},
		{tcell.KeyRight, 0, ActionMove, world.DirRight},
		{tcell.KeyRune, 'q', ActionQuit, 0},
		{tcell.KeyRune, 'Q', ActionQuit, 0},
		{tcell.KeyEscape, 0, ActionQuit, 0},
		{tcell.KeyCtrlC, 0, ActionQuit, 0},
		{tcell.KeyRune, 'a', ActionToggleAmbient, 0},
		{tcell.KeyRune, 'z', ActionNone, 0},
		{tcell.KeyF1, 0, ActionNone, 0},
	}

	for _, tt := range tests {
		action, dir := mapKey(tt.key, tt.r)
		if action != tt.action {
			t.Errorf("mapKey(%v, %q) action = %v, want %v", tt.key, tt.r, action, tt.action)
			continue
		}
		if action == ActionMove && dir != tt.dir {
			t.Errorf("mapKey(%v, %q) dir = %v, want %v", tt.key, tt.r, dir, tt.dir)
		}
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "none"},
		{ActionMove, "move"},
		{ActionToggleAmbient, "toggle_ambient"},
		{ActionQuit, "quit"},
		{Action(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.action.String(); got != tt.expected {
			t.Errorf("Action(%d).String() = %q, want %q", tt.action, got, tt.expected)
		}
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	for _, name := range []string{"LAMPLIGHT_SEED", "LAMPLIGHT_AMBIENT", "LAMPLIGHT_WIDTH", "LAMPLIGHT_HEIGHT"} {
		t.Setenv(name, "")
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("LoadConfig() = %+v, want %+v", cfg, DefaultConfig())
	}
	if cfg.Width != 80 || cfg.Height != 23 {
		t.Errorf("default dims = %dx%d, want 80x23", cfg.Width, cfg.Height)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("LAMPLIGHT_SEED", "42")
	t.Setenv("LAMPLIGHT_AMBIENT", "true")
	t.Setenv("LAMPLIGHT_WIDTH", "40")
	t.Setenv("LAMPLIGHT_HEIGHT", "12")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	want := Config{Seed: 42, Width: 40, Height: 12, Ambient: true}
	if cfg != want {
		t.Errorf("LoadConfig() = %+v, want %+v", cfg, want)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"LAMPLIGHT_SEED", "abc"},
		{"LAMPLIGHT_AMBIENT", "maybe"},
		{"LAMPLIGHT_WIDTH", "0"},
		{"LAMPLIGHT_HEIGHT", "-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, name := range []string{"LAMPLIGHT_SEED", "LAMPLIGHT_AMBIENT", "LAMPLIGHT_WIDTH", "LAMPLIGHT_HEIGHT"} {
				t.Setenv(name, "")
			}
			t.Setenv(tt.name, tt.value)
			if _, err := LoadConfig(); err == nil {
				t.Errorf("LoadConfig() with %s=%q should fail", tt.name, tt.value)
			}
		})
	}
}

func TestStartPosition(t *testing.T) {
	tests := []struct {
		width, height int
		x, y          int
	}{
		{80, 23, 33, 11},
		{20, 5, 19, 4},
		{1, 1, 0, 0},
	}

	for _, tt := range tests {
		x, y := startPosition(tt.width, tt.height)
		if x != tt.x || y != tt.y {
			t.Errorf("startPosition(%d, %d) = (%d,%d), want (%d,%d)", tt.width, tt.height, x, y, tt.x, tt.y)
		}
	}
}

func TestNewWorld(t *testing.T) {
	cfg := Config{Seed: 9, Width: 80, Height: 23}
	w, err := newWorld(context.Background(), cfg, gamedata.MustLoadFeatureRegistry())
	if err != nil {
		t.Fatalf("newWorld() error = %v", err)
	}

	player := w.Player()
	if player == nil || player.X != 33 || player.Y != 11 {
		t.Fatalf("player = %v, want at (33,11)", player)
	}
	if len(w.Entities()) != 21 {
		t.Errorf("Entities() length = %d, want 21", len(w.Entities()))
	}
	if _, err := w.RenderRows(); err != nil {
		t.Errorf("RenderRows() error = %v", err)
	}
}

func newTestGame() *Game {
	w := world.New(10, 10)
	w.PlaceEntity(w.Tile(5, 5), entity.NewPlayer())
	w.PlaceEntity(w.Tile(6, 5), entity.NewTree())
	return &Game{
		world:   w,
		running: true,
		log:     logger.Log.WithField("component", "game"),
	}
}

func TestApplyMessages(t *testing.T) {
	ctx := context.Background()
	g := newTestGame()

	g.apply(ctx, ActionMove, world.DirRight)
	if g.message != "Ouch!" {
		t.Fatalf("message after bumping a tree = %q, want %q", g.message, "Ouch!")
	}

	g.apply(ctx, ActionNone, 0)
	if g.message != "" {
		t.Errorf("message after an unbound key = %q, want it cleared", g.message)
	}

	g.apply(ctx, ActionMove, world.DirRight)
	g.apply(ctx, ActionMove, world.DirDown)
	if g.message != "" {
		t.Errorf("message after a move = %q, want it cleared", g.message)
	}
	if p := g.world.Player(); p.X != 5 || p.Y != 6 {
		t.Errorf("player at (%d,%d), want (5,6)", p.X, p.Y)
	}
}

func TestApplyToggleAndQuit(t *testing.T) {
	ctx := context.Background()
	g := newTestGame()

	g.apply(ctx, ActionToggleAmbient, 0)
	if !g.world.Ambient() {
		t.Error("ambient should be on after toggling")
	}
	g.apply(ctx, ActionToggleAmbient, 0)
	if g.world.Ambient() {
		t.Error("ambient should be off after toggling twice")
	}

	g.apply(ctx, ActionQuit, 0)
	if g.running {
		t.Error("quit should stop the loop")
	}
}

func TestNewWorldUsesRegistryFloor(t *testing.T) {
	registry := gamedata.NewFeatureRegistry(&gamedata.FeaturesFile{
		Floor: gamedata.FeatureDef{ID: "floor", Glyph: ","},
		Features: []gamedata.FeatureDef{
			{ID: "player", Glyph: "@", LightRadius: 1, Lit: true},
		},
	})

	w, err := newWorld(context.Background(), Config{Seed: 1, Width: 3, Height: 1, Ambient: true}, registry)
	if err != nil {
		t.Fatalf("newWorld() error = %v", err)
	}
	rows, err := w.RenderRows()
	if err != nil {
		t.Fatalf("RenderRows() error = %v", err)
	}
	if rows[0] != ",,@" {
		t.Errorf("row 0 = %q, want %q", rows[0], ",,@")
	}
}
