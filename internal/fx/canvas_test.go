package fx

import (
	"image"
	"testing"
)

// gridContent is a value type with a slice field, so it cannot be a map key.
type gridContent struct {
	cells []uint8
	w, h  int
}

func (g gridContent) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.w, g.h)
}

func TestStableContent(t *testing.T) {
	tests := []struct {
		name string
		c    Content
		want bool
	}{
		{"nil", nil, false},
		{"pointer image", testImage(4, 4), true},
		{"uniform by value", image.Rectangle{Max: image.Pt(2, 2)}, false},
		{"non-comparable value", gridContent{cells: make([]uint8, 4), w: 2, h: 2}, false},
		{"pointer to value type", &gridContent{w: 1, h: 1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StableContent(tt.c); got != tt.want {
				t.Fatalf("StableContent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestViewDrawsNonComparableContent(t *testing.T) {
	v, _, _ := newTestView(nil)
	img := gridContent{cells: make([]uint8, 6), w: 2, h: 3}
	v.SetImage(img, false, nil)

	cv := newRecordCanvas()
	v.Draw(cv)
	if cv.count("drawContent") != 1 {
		t.Fatalf("drawContent calls = %d, want 1", cv.count("drawContent"))
	}
}
