package viz

import (
	"math"
	"strings"
	"testing"

	"github.com/san-kum/traject/internal/motion"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(10, 5)
	c.Set(0, 0)
	if c.Grid[0][0] != 0x2801 {
		t.Errorf("expected dot 1 set, got %#x", c.Grid[0][0])
	}
	c.Set(1, 3)
	if c.Grid[0][0] != 0x2801|0x80 {
		t.Errorf("expected dots 1 and 8 set, got %#x", c.Grid[0][0])
	}
}

func TestCanvasSetOutOfBounds(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(8, 0)
	c.Set(0, 16)
	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				t.Fatalf("out-of-bounds Set modified grid: %#x", r)
			}
		}
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(4, 4)
	c.DrawLine(0, 0, 7, 15)
	c.Clear()
	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				t.Fatal("Clear left pixels set")
			}
		}
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(10, 5)
	c.DrawLine(0, 0, 19, 0)
	out := c.String()
	lines := strings.Split(out, "\n")
	if len(lines) < 1 {
		t.Fatal("empty canvas output")
	}
	for _, r := range lines[0] {
		if r == 0x2800 {
			t.Fatal("horizontal line left gaps in top row")
		}
	}
}

func TestCanvasDrawBlob(t *testing.T) {
	c := NewCanvas(10, 5)
	c.DrawBlob(10, 10)
	count := 0
	for _, row := range c.Grid {
		for _, r := range row {
			count += popcount(int(r - 0x2800))
		}
	}
	if count != 9 {
		t.Errorf("blob set %d pixels, want 9", count)
	}
}

func popcount(v int) int {
	n := 0
	for v != 0 {
		n += v & 1
		v >>= 1
	}
	return n
}

func TestCameraProjectCenter(t *testing.T) {
	cam := NewCamera()
	x, y, _, ok := cam.Project(Vec3{0, 0, 0}, 80, 24)
	if !ok {
		t.Fatal("origin should be visible")
	}
	if x != 40 || y != 12 {
		t.Errorf("origin projected to (%d, %d), want (40, 12)", x, y)
	}
}

func TestCameraProjectBehind(t *testing.T) {
	cam := NewCamera()
	cam.Position = Vec3{0, 0, 5}
	_, _, _, ok := cam.Project(Vec3{0, 0, 100}, 80, 24)
	if ok {
		t.Error("point behind the near plane should not be visible")
	}
}

func TestCameraRotatePointFullTurn(t *testing.T) {
	cam := NewCamera()
	cam.RotY = 2 * math.Pi
	p := cam.RotatePoint(Vec3{1, 0, 0})
	if math.Abs(p.X-1) > 1e-2 || math.Abs(p.Z) > 1e-2 {
		t.Errorf("full turn moved point to %+v", p)
	}
}

func TestCameraZoomBounds(t *testing.T) {
	cam := NewCamera()
	for i := 0; i < 100; i++ {
		cam.ZoomIn()
	}
	if cam.Zoom > 10 {
		t.Errorf("zoom exceeded cap: %f", cam.Zoom)
	}
	for i := 0; i < 200; i++ {
		cam.ZoomOut()
	}
	if cam.Zoom < 0.1 {
		t.Errorf("zoom below floor: %f", cam.Zoom)
	}
}

func TestRender3DDrawsTrail(t *testing.T) {
	c := NewCanvas(40, 20)
	wf := NewWireframe()
	wf.AddTrail([]Vec3{{0, 0, 0}, {0.5, 0, 0}, {0.5, 0.5, 0}})
	cam := NewCamera()
	cam.Position = Vec3{0, 0, 5}
	Render3D(c, wf, cam)
	set := 0
	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				set++
			}
		}
	}
	if set == 0 {
		t.Fatal("render produced an empty canvas")
	}
}

func TestBounceBoundsWireframe(t *testing.T) {
	wf := BounceBoundsWireframe(2.6, 3.0, 0.3)
	if len(wf.Edges) != 8 {
		t.Fatalf("expected 8 edges for two squares, got %d", len(wf.Edges))
	}
	for _, e := range wf.Edges {
		if math.Abs(math.Abs(e.Start.Y)-0.9) > 1e-9 {
			t.Errorf("edge at unexpected height %f", e.Start.Y)
		}
	}
}

func TestFromPoint(t *testing.T) {
	v := FromPoint(motion.Point{X: 1, Y: 2, Z: 3})
	if v != (Vec3{1, 2, 3}) {
		t.Errorf("FromPoint = %+v", v)
	}
}
