package shapegen

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/photoforge/outline"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func TestExtract(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/extract" {
			t.Errorf("got path %q, want /extract", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse upload: %v", err)
		}
		f, hdr, err := r.FormFile("image")
		if err != nil {
			t.Fatalf("missing image part: %v", err)
		}
		f.Close()
		if hdr.Filename != "shape.png" {
			t.Errorf("got filename %q, want shape.png", hdr.Filename)
		}
		json.NewEncoder(w).Encode(Extraction{
			Outline:    [][2]float64{{0, 0}, {10, 0}, {5, 10}},
			Width:      640,
			Height:     480,
			PointCount: 3,
			Type:       "outer",
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	ex, err := c.Extract(context.Background(), strings.NewReader("fake png bytes"), "shape.png")
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []outline.Point{outline.Pt(0, 0), outline.Pt(10, 0), outline.Pt(5, 10)}, ex.Points())
	diff(t, outline.Outer, ex.Kind())
	if ex.Width != 640 || ex.Height != 480 {
		t.Errorf("got dimensions %gx%g, want 640x480", ex.Width, ex.Height)
	}
}

func TestExtractRejectsShortOutline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(Extraction{Outline: [][2]float64{{0, 0}, {1, 1}}})
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Extract(context.Background(), strings.NewReader("x"), "x.png")
	if err == nil {
		t.Fatal("want error for a 2-point outline")
	}
}

func TestExtractionPointsAreCopies(t *testing.T) {
	ex := &Extraction{Outline: [][2]float64{{1, 2}, {3, 4}, {5, 6}}}
	pts := ex.Points()
	pts[0] = outline.Pt(9, 9)
	diff(t, [2]float64{1, 2}, ex.Outline[0])
}

func TestExtractionKindInner(t *testing.T) {
	ex := &Extraction{Type: "inner"}
	diff(t, outline.Inner, ex.Kind())
}

func TestGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/generate" {
			t.Errorf("got path %q, want /generate", r.URL.Path)
		}
		var req GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if len(req.Outline) != 3 {
			t.Errorf("got %d outline points, want 3", len(req.Outline))
		}
		if req.Thickness != 4.5 {
			t.Errorf("got thickness %g, want 4.5", req.Thickness)
		}
		json.NewEncoder(w).Encode(GenerateResult{Artifact: "artifacts/shape-42.stl"})
	}))
	defer srv.Close()

	res, err := NewClient(srv.URL).Generate(context.Background(), &GenerateRequest{
		Outline:      OutlineFromPoints([]outline.Point{outline.Pt(0, 0), outline.Pt(10, 0), outline.Pt(5, 10)}),
		Thickness:    4.5,
		MaxDimension: 80,
	})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, "artifacts/shape-42.stl", res.Artifact)
}

func TestGenerateFailureRecord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(GenerateResult{Error: "outline self-intersects too severely"})
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Generate(context.Background(), &GenerateRequest{})
	var genErr *GenerateError
	if !errors.As(err, &genErr) {
		t.Fatalf("got %v, want *GenerateError", err)
	}
	if !strings.Contains(genErr.Error(), "self-intersects") {
		t.Errorf("error %q does not carry the server message", genErr.Error())
	}
}

func TestGenerateGatewayErrorReportsStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html><body>502 Bad Gateway</body></html>"))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Generate(context.Background(), &GenerateRequest{})
	if err == nil {
		t.Fatal("want error for a 502 response")
	}
	if !strings.Contains(err.Error(), "502") {
		t.Errorf("error %q does not report the status", err)
	}
	if strings.Contains(err.Error(), "decode") {
		t.Errorf("error %q reports a decode failure for a non-JSON error page", err)
	}
}

func TestGenerateContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewClient(srv.URL).Generate(ctx, &GenerateRequest{}); err == nil {
		t.Fatal("want error from canceled context")
	}
}

func TestValidateOutline(t *testing.T) {
	ok := []outline.Point{outline.Pt(0, 0), outline.Pt(10, 0), outline.Pt(5, 10)}
	if err := ValidateOutline(ok); err != nil {
		t.Fatal(err)
	}

	if err := ValidateOutline(ok[:2]); err == nil {
		t.Fatal("want error for 2 points")
	}

	collinear := []outline.Point{outline.Pt(0, 0), outline.Pt(5, 0), outline.Pt(10, 0), outline.Pt(2, 0)}
	if err := ValidateOutline(collinear); !errors.Is(err, ErrDegenerateOutline) {
		t.Fatalf("got %v, want ErrDegenerateOutline", err)
	}

	coincident := []outline.Point{outline.Pt(3, 3), outline.Pt(3, 3), outline.Pt(3, 3)}
	if err := ValidateOutline(coincident); !errors.Is(err, ErrDegenerateOutline) {
		t.Fatalf("got %v, want ErrDegenerateOutline", err)
	}
}
