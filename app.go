package dominoes

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// App runs a Game inside an ebiten window. It implements ebiten.Game:
// Update polls input and advances the follow animation, Draw renders the
// tiles onto the screen.
//
// Draw cannot return an error, so a render failure is kept and returned from
// the next Update, which stops ebiten.RunGame with that error.
type App struct {
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	cfg     RunConfig
	game    *Game
	surface *ImageSurface
	input   *CursorInput
	hud     *hud

	runner          *TestRunner
	screenshotQueue []string
	renderErr       error
}

// NewApp wires a Game to an ImageSurface and a CursorInput using cfg.
func NewApp(cfg RunConfig) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("dominoes: new app: %w", err)
	}

	surface := NewImageSurface(nil)
	surface.StrokeColor = cfg.StrokeColor
	surface.LineWidth = cfg.LineWidth
	surface.AntiAlias = cfg.AntiAlias

	input := NewCursorInput()
	game, err := New(surface, input)
	if err != nil {
		return nil, err
	}
	game.SetDebugMode(cfg.Debug)
	if cfg.Follow.Duration > 0 {
		fn, _ := cfg.Follow.EasingFunc() // checked by Validate
		game.SetFollow(cfg.Follow.Duration, fn)
	}

	a := &App{
		ScreenshotDir: cfg.ScreenshotDir,
		cfg:           cfg,
		game:          game,
		surface:       surface,
		input:         input,
	}
	if cfg.ShowFPS {
		a.hud = newHUD()
	}
	return a, nil
}

// Game returns the game driven by the app.
func (a *App) Game() *Game {
	return a.game
}

// Input returns the app's pointer source, e.g. to inject synthetic moves.
func (a *App) Input() *CursorInput {
	return a.input
}

// SetTestRunner attaches a TestRunner. Its step method is called from Update
// before input is polled each tick.
func (a *App) SetTestRunner(runner *TestRunner) {
	a.runner = runner
}

// Update implements ebiten.Game.
func (a *App) Update() error {
	if a.renderErr != nil {
		return a.renderErr
	}
	dt := float32(1.0 / float64(ebiten.TPS()))

	if a.runner != nil {
		a.runner.step(a)
	}
	a.input.Update()
	a.game.Update(dt)
	if a.hud != nil {
		a.hud.update(float64(dt), a.game.Pointer())
	}
	return nil
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(a.cfg.ClearColor.toRGBA())
	a.surface.BeginFrame(screen)
	if err := a.game.Render(); err != nil && a.renderErr == nil {
		a.renderErr = err
	}
	if a.hud != nil {
		a.hud.draw(screen)
	}
	a.flushScreenshots(screen)
}

// Layout implements ebiten.Game. The logical screen matches the configured
// window size so pointer offsets are in surface pixels.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Width, a.cfg.Height
}

// Run opens a window described by cfg and blocks until it is closed or a
// render error occurs.
func Run(cfg RunConfig) error {
	app, err := NewApp(cfg)
	if err != nil {
		return err
	}
	return app.Run()
}

// Run opens the window for an already-built App.
func (a *App) Run() error {
	defer a.game.Close()
	ebiten.SetWindowTitle(a.cfg.Title)
	ebiten.SetWindowSize(a.cfg.Width, a.cfg.Height)
	if err := ebiten.RunGame(a); err != nil {
		if a.cfg.Debug {
			_, _ = fmt.Fprintf(os.Stderr, "[dominoes] run: %v\n", err)
		}
		return err
	}
	return nil
}
