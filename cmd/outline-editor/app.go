package main

import (
	"bytes"
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/photoforge/outline"
	"github.com/photoforge/outline/editor"
	"github.com/photoforge/outline/preview"
	"github.com/photoforge/outline/shapegen"
)

// doubleClickTicks is the maximum tick gap between two presses that still
// counts as a double click, at ebiten's default 60 ticks per second.
const doubleClickTicks = 20

// doubleClickSlopPx is how far apart the two presses may land.
const doubleClickSlopPx = 5.0

type appConfig struct {
	serviceURL  string
	imagePath   string
	outlinePath string
	previewPath string
	winW, winH  int
	hitRadius   float64
	tolerance   float64
	params      shapegen.GenerateRequest
}

// app is the Ebitengine shell around an editor session. All pointer and
// key handling happens in Update; Draw only reads session state.
type app struct {
	cfg     appConfig
	session *editor.Session
	client  *shapegen.Client

	background *ebiten.Image
	viewport   outline.Size

	status string

	// tick counts Update calls; lastPress tracks the previous primary
	// press for double-click detection.
	tick          int
	lastPressTick int
	lastPressPos  outline.Point

	// genResult receives the outcome of an in-flight generation request;
	// nil while none is running.
	genResult chan string
}

func newApp(cfg appConfig) (*app, error) {
	viewport := outline.Size{Width: float64(cfg.winW), Height: float64(cfg.winH)}
	a := &app{
		cfg:      cfg,
		viewport: viewport,
		session:  editor.NewSession(viewport),
	}
	a.session.HitRadius = cfg.hitRadius
	if cfg.serviceURL != "" {
		a.client = shapegen.NewClient(cfg.serviceURL)
	}

	ex, background, err := a.loadInitialOutline()
	if err != nil {
		return nil, err
	}
	a.background = background
	a.session.Load(ex.Points(), ex.Width, ex.Height, ex.Kind())
	a.status = fmt.Sprintf("loaded %d points", len(ex.Outline))
	return a, nil
}

// loadInitialOutline resolves the three outline sources in order: local
// JSON file, service extraction from a photo, built-in fallback shape.
func (a *app) loadInitialOutline() (*shapegen.Extraction, *ebiten.Image, error) {
	if a.cfg.outlinePath != "" {
		ex, err := loadLocalExtraction(a.cfg.outlinePath)
		return ex, nil, err
	}
	if a.cfg.imagePath != "" {
		if a.client == nil {
			return nil, nil, fmt.Errorf("-image requires -service")
		}
		img, encoded, err := loadPhoto(a.cfg.imagePath)
		if err != nil {
			return nil, nil, err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		ex, err := a.client.Extract(ctx, bytes.NewReader(encoded), a.cfg.imagePath)
		if err != nil {
			return nil, nil, err
		}
		return ex, ebiten.NewImageFromImage(img), nil
	}
	return fallbackExtraction(), nil, nil
}

func (a *app) Layout(w, h int) (int, int) {
	size := outline.Size{Width: float64(w), Height: float64(h)}
	if size != (outline.Size{}) && size != a.viewport {
		a.viewport = size
		a.session.SetViewport(size)
	}
	return w, h
}

func (a *app) Update() error {
	a.tick++
	a.handlePointer()
	a.handleKeys()
	a.pollGeneration()
	return nil
}

func (a *app) handlePointer() {
	x, y := ebiten.CursorPosition()
	pos := outline.Pt(float64(x), float64(y))

	if _, wy := ebiten.Wheel(); wy != 0 {
		// One wheel notch scales by 10%.
		a.session.Scroll(1+wy*0.1, pos)
	}

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		if a.tick-a.lastPressTick <= doubleClickTicks && pos.Distance(a.lastPressPos) <= doubleClickSlopPx {
			a.session.DoubleClick(pos)
			a.lastPressTick = -doubleClickTicks // a triple click is not two doubles
		} else {
			a.session.PointerDown(pos)
			a.lastPressTick = a.tick
			a.lastPressPos = pos
		}
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		a.session.PointerUp(pos)
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
		a.session.SecondaryClick(pos)
	default:
		a.session.PointerMove(pos)
	}
}

func (a *app) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyZ):
		if err := a.session.Undo(); err != nil {
			a.status = "nothing to undo"
		} else {
			a.status = "undone"
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyY):
		if err := a.session.Redo(); err != nil {
			a.status = "nothing to redo"
		} else {
			a.status = "redone"
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		before := a.session.Polygon().Len()
		a.session.Simplify(a.cfg.tolerance)
		a.status = fmt.Sprintf("simplified %d -> %d points", before, a.session.Polygon().Len())
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		a.session.Smooth()
		a.status = "smoothed"
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		a.session.Reset()
		a.status = "reset to loaded outline"
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		a.session.Fit()
		a.status = "view refitted"
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		if err := preview.WriteFile(a.cfg.previewPath, a.session.Polygon(), preview.Options{MarkVertices: true}); err != nil {
			a.status = fmt.Sprintf("preview failed: %v", err)
		} else {
			a.status = "preview written to " + a.cfg.previewPath
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyG):
		a.startGeneration()
	}
}

// startGeneration validates the outline and submits it to the service in
// the background. A failed request leaves the editor state untouched.
func (a *app) startGeneration() {
	if a.client == nil {
		a.status = "no service configured (-service)"
		return
	}
	if a.genResult != nil {
		a.status = "generation already running"
		return
	}
	points := a.session.Points()
	if err := shapegen.ValidateOutline(points); err != nil {
		a.status = err.Error()
		return
	}

	req := a.cfg.params
	req.Outline = shapegen.OutlineFromPoints(points)
	a.genResult = make(chan string, 1)
	a.status = "generating..."
	go func(out chan<- string) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		res, err := a.client.Generate(ctx, &req)
		if err != nil {
			out <- fmt.Sprintf("generation failed: %v", err)
			return
		}
		out <- "generated " + res.Artifact
	}(a.genResult)
}

func (a *app) pollGeneration() {
	if a.genResult == nil {
		return
	}
	select {
	case msg := <-a.genResult:
		a.status = msg
		a.genResult = nil
	default:
	}
}

func (a *app) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{30, 30, 34, 255})
	tr := a.session.View()

	if a.background != nil {
		var op ebiten.DrawImageOptions
		op.GeoM.Scale(tr.Zoom, tr.Zoom)
		op.GeoM.Translate(tr.Pan.X, tr.Pan.Y)
		op.ColorScale.ScaleAlpha(0.45)
		screen.DrawImage(a.background, &op)
	}

	p := a.session.Polygon()
	if p == nil {
		return
	}

	hot, hotOK := a.session.Hot()
	st := a.session.State()

	edgeColor := color.RGBA{110, 190, 255, 255}
	hotEdgeColor := color.RGBA{255, 200, 60, 255}
	for i, edge := range p.Edges() {
		a1 := tr.ToDisplay(edge.A)
		b1 := tr.ToDisplay(edge.B)
		clr := edgeColor
		if hotOK && i == hot && (st == editor.HoverEdge || st == editor.DraggingEdge) {
			clr = hotEdgeColor
		}
		vector.StrokeLine(screen, float32(a1.X), float32(a1.Y), float32(b1.X), float32(b1.Y), 2, clr, true)
	}

	pointColor := color.RGBA{235, 235, 235, 255}
	hotPointColor := color.RGBA{255, 120, 90, 255}
	for i, pt := range p.Points {
		d := tr.ToDisplay(pt)
		r := float32(4)
		clr := pointColor
		if hotOK && i == hot && (st == editor.HoverPoint || st == editor.DraggingPoint) {
			clr = hotPointColor
			r = 6
		}
		vector.DrawFilledCircle(screen, float32(d.X), float32(d.Y), r, clr, true)
	}

	hud := fmt.Sprintf("%d points  zoom %.2f  [%s]  %s", p.Len(), tr.Zoom, st, a.status)
	ebitenutil.DebugPrintAt(screen, hud, 8, 8)
}
