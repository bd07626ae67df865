package icon

import (
	"image"
	"testing"
)

func TestGenerateSizes(t *testing.T) {
	imgs := Generate()
	if len(imgs) != 2 {
		t.Fatalf("got %d icons", len(imgs))
	}
	for i, want := range []int{64, 32} {
		if got := imgs[i].Bounds(); got != image.Rect(0, 0, want, want) {
			t.Errorf("icon %d bounds = %v", i, got)
		}
	}
}

func TestOverlayIsWhiteMask(t *testing.T) {
	img := Overlay(64)
	opaque := 0
	for i := 0; i < len(img.Pix); i += 4 {
		r, g, b, a := img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3]
		if a != 0 && a != 0xFF {
			t.Fatalf("partial alpha %d at byte %d", a, i)
		}
		if r != a || g != a || b != a {
			t.Fatalf("pixel at byte %d is not white: %d %d %d %d", i, r, g, b, a)
		}
		if a == 0xFF {
			opaque++
		}
	}
	if opaque == 0 || opaque == 64*64 {
		t.Fatalf("glyph should be partly covered, %d opaque pixels", opaque)
	}
	if img.RGBAAt(0, 0).A != 0 {
		t.Error("corner should be transparent")
	}
	if img.RGBAAt(44, 22).A != 0xFF {
		t.Error("sun should be opaque")
	}
}

func TestPosters(t *testing.T) {
	posters := Posters(4, 40, 60)
	if len(posters) != 4 {
		t.Fatalf("got %d posters", len(posters))
	}
	for i, p := range posters {
		if p.Bounds() != image.Rect(0, 0, 40, 60) {
			t.Fatalf("poster %d bounds = %v", i, p.Bounds())
		}
		for j := 3; j < len(p.Pix); j += 4 {
			if p.Pix[j] != 0xFF {
				t.Fatalf("poster %d is not opaque", i)
			}
		}
	}
	if posters[0].RGBAAt(0, 0) == posters[1].RGBAAt(0, 0) {
		t.Error("neighbouring posters share a colour")
	}
	if posters[0].RGBAAt(0, 0) == posters[0].RGBAAt(0, 59) {
		t.Error("poster has no gradient")
	}
}
