//go:build ebiten

package app

import (
	"lifegrid/internal/render"
	"lifegrid/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.GridPainter
	overlay *ui.Overlay
	input   ebitenInput
}

// New constructs a Game for the provided session.
func New(session *Session) *Game {
	cfg := session.Config()
	return &Game{
		session: session,
		painter: render.NewGridPainter(cfg.CellSize()),
		overlay: ui.NewOverlay(cfg.WindowSize),
	}
}

// Update handles per-frame input and advances the simulation when due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.session.Frame(g.input)
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	hover, ok := g.session.Hover()
	g.painter.Draw(screen, g.session.Grid(), hover, ok)
	g.overlay.Draw(screen, g.session.Running())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.session.Config().WindowSize
	return s, s
}

// ebitenInput reads press edges from ebiten's input state.
type ebitenInput struct{}

func (ebitenInput) CursorPosition() (int, int) { return ebiten.CursorPosition() }

func (ebitenInput) ClickPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

func (ebitenInput) ToggleRunPressed() bool { return inpututil.IsKeyJustPressed(ebiten.KeySpace) }

func (ebitenInput) ResetPressed() bool { return inpututil.IsKeyJustPressed(ebiten.KeyR) }
