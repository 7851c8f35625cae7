package vision

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/galleria-cloud/galleria/internal/domain"
)

func uniformImage(w, h int, c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestAnalyze_UniformBrightImage(t *testing.T) {
	img := uniformImage(60, 60, color.RGBA{R: 240, G: 240, B: 240, A: 255})
	f := Analyze(img)

	if f.Brightness <= brightLuminance {
		t.Errorf("brightness = %v, want > %v", f.Brightness, brightLuminance)
	}
	if f.Contrast != 0 {
		t.Errorf("contrast = %v, want 0 for uniform image", f.Contrast)
	}
	if f.Symmetry != 1 {
		t.Errorf("symmetry = %v, want 1 for uniform image", f.Symmetry)
	}
	if f.EdgeDensity != 0 {
		t.Errorf("edge density = %v, want 0", f.EdgeDensity)
	}
	if f.Texture != TextureSmooth {
		t.Errorf("texture = %s, want smooth", f.Texture)
	}
}

func TestAnalyze_DominantColors(t *testing.T) {
	// Left half red, right half blue.
	img := image.NewRGBA(image.Rect(0, 0, 100, 40))
	for y := 0; y < 40; y++ {
		for x := 0; x < 100; x++ {
			if x < 50 {
				img.Set(x, y, color.RGBA{R: 220, A: 255})
			} else {
				img.Set(x, y, color.RGBA{B: 220, A: 255})
			}
		}
	}

	f := Analyze(img)
	if len(f.DominantColors) == 0 || len(f.DominantColors) > dominantColorCount {
		t.Fatalf("dominant colors = %d, want 1..%d", len(f.DominantColors), dominantColorCount)
	}
}

func TestAnalyze_HighContrastEdges(t *testing.T) {
	// Wide vertical stripes produce strong gradients at every boundary.
	img := image.NewRGBA(image.Rect(0, 0, 60, 60))
	for y := 0; y < 60; y++ {
		for x := 0; x < 60; x++ {
			if x%6 < 3 {
				img.Set(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
			} else {
				img.Set(x, y, color.RGBA{A: 255})
			}
		}
	}

	f := Analyze(img)
	if f.Contrast <= highContrast {
		t.Errorf("contrast = %v, want > %v", f.Contrast, highContrast)
	}
	if f.Texture != TextureRough {
		t.Errorf("texture = %s, want rough", f.Texture)
	}
}

func TestVocabulary_Mappings(t *testing.T) {
	tests := []struct {
		name     string
		features Features
		category string
		want     string
	}{
		{"bright maps to joy", Features{Brightness: 230, Texture: TextureMedium}, "emotion", "joy"},
		{"dark maps to mystery", Features{Brightness: 20, Texture: TextureMedium}, "emotion", "mystery"},
		{"contrast maps to expressionist", Features{Brightness: 120, Contrast: 120, Texture: TextureMedium}, "style", "expressionist"},
		{"symmetry maps to classical", Features{Brightness: 120, Contrast: 60, Symmetry: 0.8, Texture: TextureMedium}, "style", "classical"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := tt.features.Vocabulary()
			var set []string
			switch tt.category {
			case "emotion":
				set = v.Emotions
			case "style":
				set = v.Styles
			}
			found := false
			for _, s := range set {
				if s == tt.want {
					found = true
				}
			}
			if !found {
				t.Errorf("expected %s %q in %v", tt.category, tt.want, set)
			}
		})
	}
}

func TestVocabulary_Temperature(t *testing.T) {
	warm := Features{
		Brightness:     120,
		Contrast:       60,
		Texture:        TextureMedium,
		DominantColors: []Color{{R: 240, G: 80, B: 40}},
	}
	v := warm.Vocabulary()
	foundWarm := false
	for _, e := range v.Elements {
		if e == "warm" {
			foundWarm = true
		}
	}
	if !foundWarm {
		t.Errorf("expected warm element, got %v", v.Elements)
	}

	cool := Features{
		Brightness:     120,
		Contrast:       60,
		Texture:        TextureMedium,
		DominantColors: []Color{{R: 40, G: 80, B: 240}},
	}
	v = cool.Vocabulary()
	foundCool := false
	for _, e := range v.Elements {
		if e == "cool" {
			foundCool = true
		}
	}
	if !foundCool {
		t.Errorf("expected cool element, got %v", v.Elements)
	}
}

func TestExtract_DecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not an image"))
	}))
	defer srv.Close()

	e := New(5*time.Second, nil)
	_, err := e.Extract(context.Background(), srv.URL)
	if !errors.Is(err, domain.ErrImageDecode) {
		t.Errorf("expected ErrImageDecode, got %v", err)
	}
}

func TestExtract_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	e := New(5*time.Second, nil)
	_, err := e.Extract(context.Background(), srv.URL)
	if !errors.Is(err, domain.ErrImageDecode) {
		t.Errorf("expected ErrImageDecode, got %v", err)
	}
}

func TestExtract_ValidPNG(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, uniformImage(30, 30, color.RGBA{R: 250, G: 250, B: 250, A: 255})); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(buf.Bytes())
	}))
	defer srv.Close()

	e := New(5*time.Second, nil)
	f, err := e.Extract(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Brightness <= brightLuminance {
		t.Errorf("brightness = %v, want bright image", f.Brightness)
	}
}
