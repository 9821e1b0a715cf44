package dominoes

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestNewApp(t *testing.T) {
	a, err := NewApp(DefaultRunConfig())
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	if a.Game() == nil || a.Input() == nil {
		t.Fatal("app should own a game and an input")
	}
	if len(a.Game().Tiles()) != DefaultTileCount {
		t.Errorf("tiles = %d, want %d", len(a.Game().Tiles()), DefaultTileCount)
	}
	if a.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q, want %q", a.ScreenshotDir, "screenshots")
	}
	if a.hud == nil {
		t.Error("ShowFPS should create the HUD")
	}
}

func TestNewAppInvalidConfig(t *testing.T) {
	cfg := DefaultRunConfig()
	cfg.Width = 0
	if _, err := NewApp(cfg); err == nil {
		t.Error("expected error for zero width")
	}
}

func TestNewAppFollow(t *testing.T) {
	cfg := DefaultRunConfig()
	cfg.Follow = FollowConfig{Duration: 0.3, Easing: "linear"}
	a, err := NewApp(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if a.game.follow == nil {
		t.Error("follow should be enabled from config")
	}
}

func TestAppLayout(t *testing.T) {
	a, err := NewApp(DefaultRunConfig())
	if err != nil {
		t.Fatal(err)
	}
	w, h := a.Layout(1920, 1080)
	if w != 640 || h != 480 {
		t.Errorf("Layout = %dx%d, want 640x480", w, h)
	}
}

func TestAppUpdateAppliesInjectedMove(t *testing.T) {
	cfg := DefaultRunConfig()
	cfg.ShowFPS = false
	a, err := NewApp(cfg)
	if err != nil {
		t.Fatal(err)
	}
	a.Input().InjectMove(37, 52)
	if err := a.Update(); err != nil {
		t.Fatal(err)
	}
	if p := a.Game().Pointer(); p != (Point{37, 52}) {
		t.Errorf("pointer = %+v, want (37, 52)", p)
	}
}

func TestAppDrawRendersTiles(t *testing.T) {
	cfg := DefaultRunConfig()
	cfg.ShowFPS = false
	a, err := NewApp(cfg)
	if err != nil {
		t.Fatal(err)
	}
	a.Draw(ebiten.NewImage(cfg.Width, cfg.Height))
	if a.renderErr != nil {
		t.Fatalf("render error: %v", a.renderErr)
	}
	if n := a.surface.PathLen(); n != DefaultTileCount {
		t.Errorf("PathLen = %d, want %d", n, DefaultTileCount)
	}
}

func TestAppRenderErrorStopsUpdate(t *testing.T) {
	a, err := NewApp(DefaultRunConfig())
	if err != nil {
		t.Fatal(err)
	}
	boom := errors.New("boom")
	a.renderErr = boom
	if err := a.Update(); !errors.Is(err, boom) {
		t.Errorf("Update err = %v, want %v", err, boom)
	}
}
