// Command outline-editor is the interactive refinement tool for
// machine-traced outlines. It loads an outline, either extracted by the
// backend service from a photo or read from a local JSON file, and lets
// the user drag points and edges, insert and delete vertices, simplify,
// smooth, pan, zoom, and undo, before submitting the result for 3D
// generation.
//
// Controls:
//
//	left drag          move point / edge, or pan over empty space
//	double click       insert a point on the edge under the cursor
//	right click        delete the point under the cursor
//	mouse wheel        zoom at the cursor
//	z / y              undo / redo
//	s / m              simplify / smooth
//	r                  reset to the loaded outline
//	f                  refit the view
//	g                  submit for generation
//	p                  write a PNG preview
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/photoforge/outline/editor"
	"github.com/photoforge/outline/shapegen"
)

func main() {
	var (
		serviceURL  = flag.String("service", "", "base URL of the extraction/generation service")
		imagePath   = flag.String("image", "", "photo to upload for outline extraction")
		outlinePath = flag.String("outline", "", "local extraction JSON instead of the service")
		previewPath = flag.String("preview", "preview.png", "path for PNG preview exports")
		winW        = flag.Int("width", 1024, "window width")
		winH        = flag.Int("height", 768, "window height")
		hitRadius   = flag.Float64("hit-radius", editor.DefaultHitRadius, "pointer hit radius in pixels")
		tolerance   = flag.Float64("tolerance", 2.0, "simplify tolerance in pixels")
		thickness   = flag.Float64("thickness", 4.0, "extrusion thickness in mm")
		baseSize    = flag.Float64("base", 0, "base diameter in mm, 0 for none")
		maxDim      = flag.Float64("max-dimension", 80, "longest side of the generated object in mm")
		verbose     = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	if *verbose {
		editor.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	app, err := newApp(appConfig{
		serviceURL:  *serviceURL,
		imagePath:   *imagePath,
		outlinePath: *outlinePath,
		previewPath: *previewPath,
		winW:        *winW,
		winH:        *winH,
		hitRadius:   *hitRadius,
		tolerance:   *tolerance,
		params: shapegen.GenerateRequest{
			Thickness:    *thickness,
			BaseSize:     *baseSize,
			MaxDimension: *maxDim,
		},
	})
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(*winW, *winH)
	ebiten.SetWindowTitle("outline editor")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}

// loadLocalExtraction reads an extraction result from a JSON file, for
// working offline or replaying saved traces.
func loadLocalExtraction(path string) (*shapegen.Extraction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read outline: %w", err)
	}
	var ex shapegen.Extraction
	if err := json.Unmarshal(data, &ex); err != nil {
		return nil, fmt.Errorf("decode outline %s: %w", path, err)
	}
	if len(ex.Outline) < 3 {
		return nil, fmt.Errorf("outline %s has %d points, need at least 3", path, len(ex.Outline))
	}
	return &ex, nil
}

// fallbackExtraction is used when neither a service nor a local file is
// configured, so the editor can still be explored.
func fallbackExtraction() *shapegen.Extraction {
	ex := &shapegen.Extraction{
		Outline: [][2]float64{
			{120, 40}, {200, 60}, {240, 140}, {220, 230},
			{150, 270}, {80, 240}, {50, 160}, {70, 80},
		},
		Width:  320,
		Height: 320,
	}
	ex.PointCount = len(ex.Outline)
	return ex
}
