package viz

import (
	"strings"
	"testing"
)

func TestCanvasSetAndClear(t *testing.T) {
	c := NewCanvas(4, 2)

	c.Set(0, 0)
	c.Set(7, 7)
	c.Set(-1, 3)
	c.Set(100, 0)

	if !c.IsSet(0, 0) || !c.IsSet(7, 7) {
		t.Error("expected pixels to be set")
	}
	if c.Grid[0][0] != 0x2801 {
		t.Errorf("expected braille dot 1, got %U", c.Grid[0][0])
	}
	if c.Grid[1][3] != 0x2880 {
		t.Errorf("expected braille dot 8, got %U", c.Grid[1][3])
	}

	c.Clear()
	if c.IsSet(0, 0) {
		t.Error("expected canvas to be cleared")
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(10, 3)
	c.DrawLine(0, 5, 19, 5)
	for x := 0; x < 20; x++ {
		if !c.IsSet(x, 5) {
			t.Fatalf("expected pixel (%d, 5) on the line", x)
		}
	}
}

func TestCanvasDrawCircle(t *testing.T) {
	c := NewCanvas(20, 10)
	c.DrawCircle(20, 20, 8)

	for _, p := range [][2]int{{28, 20}, {12, 20}, {20, 28}, {20, 12}} {
		if !c.IsSet(p[0], p[1]) {
			t.Errorf("expected circle to pass through %v", p)
		}
	}
	if c.IsSet(20, 20) {
		t.Error("center should not be drawn")
	}
}

func TestViewportProject(t *testing.T) {
	c := NewCanvas(40, 20) // 80x80 sub-pixels
	v := NewViewport(c, 100)

	if x, y := v.Project(0, 0); x != 40 || y != 40 {
		t.Errorf("origin projected to (%d, %d)", x, y)
	}
	if x, y := v.Project(100, 100); x != 80 || y != 0 {
		t.Errorf("corner projected to (%d, %d)", x, y)
	}
	if p := v.Pixels(50); p != 20 {
		t.Errorf("expected 20 pixels, got %d", p)
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(3, 2)
	lines := strings.Split(strings.TrimSuffix(c.String(), "\n"), "\n")
	if len(lines) != 2 || len([]rune(lines[0])) != 3 {
		t.Errorf("unexpected canvas shape: %q", c.String())
	}
}
