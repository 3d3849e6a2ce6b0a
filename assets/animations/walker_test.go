package animations

import (
	"image"
	"testing"

	"github.com/automoto/spritewalk/config"
)

// testConfig is a 400x300 window with one logical step every 3 calls.
func testConfig() config.Config {
	c := config.Defaults()
	c.Movement.MoveCycleTicks = 3
	c.Movement.Speed = 4.5
	c.Sprite.MaxFrames = 9
	c.Movement.StartX = 0
	c.Movement.StartY = 0
	return c
}

// stepOnce runs a full move cycle with the same input.
func stepOnce(w *Walker, held Held) Pose {
	var p Pose
	for i := 0; i < w.Config().Movement.MoveCycleTicks; i++ {
		p = w.Update(held)
	}
	return p
}

func newTestWalker(c config.Config, x, y float64) *Walker {
	c.Movement.StartX = x
	c.Movement.StartY = y
	return NewWalker(c)
}

func TestNewWalkerInitialState(t *testing.T) {
	w := NewWalker(testConfig())
	p := w.Pose()
	if p.Facing != Down {
		t.Errorf("Facing = %v, want down", p.Facing)
	}
	if p.Frame != 0 {
		t.Errorf("Frame = %d, want 0", p.Frame)
	}
	if p.Position.X != 0 || p.Position.Y != 0 {
		t.Errorf("Position = %v, want (0,0)", p.Position)
	}
	if w.TicksLeft() != 3 {
		t.Errorf("TicksLeft() = %d, want 3", w.TicksLeft())
	}
	if w.Body.W != 64 || w.Body.H != 64 {
		t.Errorf("Body size = %vx%v, want 64x64", w.Body.W, w.Body.H)
	}
}

func TestSingleKeyDisplacement(t *testing.T) {
	tests := []struct {
		name   string
		held   Held
		wantDX float64
		wantDY float64
		facing Direction
	}{
		{name: "up", held: Held{Up: true}, wantDX: 0, wantDY: -4.5, facing: Up},
		{name: "down", held: Held{Down: true}, wantDX: 0, wantDY: 4.5, facing: Down},
		{name: "left", held: Held{Left: true}, wantDX: -4.5, wantDY: 0, facing: Left},
		{name: "right", held: Held{Right: true}, wantDX: 4.5, wantDY: 0, facing: Right},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWalker(testConfig(), 100, 100)
			p := stepOnce(w, tc.held)
			dx, dy := p.Position.X-100, p.Position.Y-100
			if dx != tc.wantDX || dy != tc.wantDY {
				t.Fatalf("displacement = (%v,%v), want (%v,%v)", dx, dy, tc.wantDX, tc.wantDY)
			}
			if p.Facing != tc.facing {
				t.Errorf("Facing = %v, want %v", p.Facing, tc.facing)
			}
			if p.Frame != 1 {
				t.Errorf("Frame = %d, want 1", p.Frame)
			}
		})
	}
}

func TestOpposingKeysFollowPrecedence(t *testing.T) {
	tests := []struct {
		name   string
		both   Held
		winner Held
	}{
		{name: "down beats up", both: Held{Up: true, Down: true}, winner: Held{Down: true}},
		{name: "left beats right", both: Held{Left: true, Right: true}, winner: Held{Left: true}},
		{name: "all four", both: Held{Up: true, Down: true, Left: true, Right: true}, winner: Held{Down: true, Left: true}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := newTestWalker(testConfig(), 100, 100)
			b := newTestWalker(testConfig(), 100, 100)
			for i := 0; i < 4; i++ {
				pa := stepOnce(a, tc.both)
				pb := stepOnce(b, tc.winner)
				if pa != pb {
					t.Fatalf("step %d: pose with %+v = %+v, with %+v = %+v", i, tc.both, pa, tc.winner, pb)
				}
			}
		})
	}
}

func TestDiagonalCombinesAndHorizontalFacingWins(t *testing.T) {
	w := newTestWalker(testConfig(), 100, 100)
	p := stepOnce(w, Held{Down: true, Right: true})
	if p.Position.X != 104.5 || p.Position.Y != 104.5 {
		t.Errorf("Position = %v, want (104.5,104.5)", p.Position)
	}
	if p.Facing != Right {
		t.Errorf("Facing = %v, want right (last axis evaluated)", p.Facing)
	}

	p = stepOnce(w, Held{Up: true, Left: true})
	if p.Facing != Left {
		t.Errorf("Facing = %v, want left", p.Facing)
	}
}

func TestIdleResetsFrame(t *testing.T) {
	for start := 0; start < 9; start++ {
		w := newTestWalker(testConfig(), 100, 100)
		w.Frame = start
		w.Facing = Left
		p := stepOnce(w, Held{})
		if p.Frame != 0 {
			t.Errorf("from frame %d: Frame = %d, want 0", start, p.Frame)
		}
		if p.Facing != Left {
			t.Errorf("from frame %d: Facing = %v, want left retained", start, p.Facing)
		}
		if p.Position.X != 100 || p.Position.Y != 100 {
			t.Errorf("from frame %d: idle step moved to %v", start, p.Position)
		}
	}
}

func TestWalkCycleSkipsIdleColumn(t *testing.T) {
	w := newTestWalker(testConfig(), 100, 100)
	w.Frame = 8
	p := stepOnce(w, Held{Right: true})
	if p.Frame != 1 {
		t.Fatalf("Frame after overflow = %d, want 1", p.Frame)
	}

	// A long walk never shows the idle column.
	w = newTestWalker(testConfig(), 100, 100)
	for i := 0; i < 40; i++ {
		p := stepOnce(w, Held{Up: true})
		if p.Frame < 1 || p.Frame >= 9 {
			t.Fatalf("step %d: Frame = %d, want in [1,9)", i, p.Frame)
		}
	}
}

func TestBoundaryClampStillAnimates(t *testing.T) {
	c := testConfig()
	tests := []struct {
		name string
		x, y float64
		held Held
	}{
		{name: "bottom", x: 100, y: 300 - 64, held: Held{Down: true}},
		{name: "top", x: 100, y: 0, held: Held{Up: true}},
		{name: "left", x: 0, y: 100, held: Held{Left: true}},
		{name: "right", x: 400 - 64, y: 100, held: Held{Right: true}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWalker(c, tc.x, tc.y)
			w.Frame = 3
			p := stepOnce(w, tc.held)
			if p.Position.X != tc.x || p.Position.Y != tc.y {
				t.Errorf("Position = %v, want unchanged (%v,%v)", p.Position, tc.x, tc.y)
			}
			if p.Frame != 4 {
				t.Errorf("Frame = %d, want 4 (animation advances against the wall)", p.Frame)
			}
		})
	}
}

func TestClampOnlyWhenTouching(t *testing.T) {
	// One unit short of the bottom edge still moves a full step past it.
	w := newTestWalker(testConfig(), 100, 300-64-1)
	p := stepOnce(w, Held{Down: true})
	if p.Position.Y != 300-64-1+4.5 {
		t.Fatalf("Position.Y = %v, want %v", p.Position.Y, 300-64-1+4.5)
	}
	p = stepOnce(w, Held{Down: true})
	if p.Position.Y != 300-64-1+4.5 {
		t.Errorf("Position.Y = %v, want clamped at %v", p.Position.Y, 300-64-1+4.5)
	}
}

func TestClampedAxisDoesNotBlockTheOther(t *testing.T) {
	w := newTestWalker(testConfig(), 100, 300-64)
	p := stepOnce(w, Held{Down: true, Left: true})
	if p.Position.X != 95.5 || p.Position.Y != 300-64 {
		t.Errorf("Position = %v, want (95.5,%d)", p.Position, 300-64)
	}
}

func TestTickGating(t *testing.T) {
	c := testConfig()
	c.Movement.MoveCycleTicks = 5
	w := NewWalker(c)
	start := w.Pose()

	held := Held{Right: true, Down: true}
	for i := 1; i < 5; i++ {
		if p := w.Update(held); p != start {
			t.Fatalf("call %d changed the pose: %+v", i, p)
		}
		if w.TicksLeft() != 5-i {
			t.Fatalf("call %d: TicksLeft() = %d, want %d", i, w.TicksLeft(), 5-i)
		}
	}
	if p := w.Update(held); p == start {
		t.Fatal("5th call did not apply a logical step")
	}
	if w.TicksLeft() != 5 {
		t.Errorf("TicksLeft() after step = %d, want 5", w.TicksLeft())
	}
}

func TestSingleTickCycleStepsEveryCall(t *testing.T) {
	c := testConfig()
	c.Movement.MoveCycleTicks = 1
	w := NewWalker(c)
	for i := 1; i <= 3; i++ {
		p := w.Update(Held{Right: true})
		if p.Position.X != float64(i)*4.5 {
			t.Fatalf("call %d: X = %v, want %v", i, p.Position.X, float64(i)*4.5)
		}
	}
}

func TestWalkRightThenIdleScenario(t *testing.T) {
	w := NewWalker(testConfig())

	for call := 1; call <= 9; call++ {
		before := w.Pose()
		p := w.Update(Held{Right: true})
		fires := call%3 == 0
		if fires == (p == before) {
			t.Fatalf("call %d: step fired = %v, want %v", call, p != before, fires)
		}
	}
	p := w.Pose()
	if p.Position.X != 13.5 || p.Position.Y != 0 {
		t.Errorf("Position = %v, want (13.5,0)", p.Position)
	}
	if p.Frame != 3 {
		t.Errorf("Frame = %d, want 3", p.Frame)
	}
	if p.Facing != Right {
		t.Errorf("Facing = %v, want right", p.Facing)
	}

	for call := 0; call < 3; call++ {
		p = w.Update(Held{})
	}
	if p.Frame != 0 {
		t.Errorf("Frame after idle step = %d, want 0", p.Frame)
	}
	if p.Position.X != 13.5 || p.Position.Y != 0 {
		t.Errorf("Position after idle step = %v, want (13.5,0)", p.Position)
	}
	if p.Facing != Right {
		t.Errorf("Facing after idle step = %v, want right", p.Facing)
	}
}

func TestSheetRect(t *testing.T) {
	tests := []struct {
		pose Pose
		want image.Rectangle
	}{
		{pose: Pose{Facing: Down, Frame: 0}, want: image.Rect(0, 128, 64, 192)},
		{pose: Pose{Facing: Up, Frame: 3}, want: image.Rect(192, 0, 256, 64)},
		{pose: Pose{Facing: Right, Frame: 8}, want: image.Rect(512, 192, 576, 256)},
		{pose: Pose{Facing: Left, Frame: 1}, want: image.Rect(64, 64, 128, 128)},
	}
	for _, tc := range tests {
		t.Run(tc.pose.Facing.String(), func(t *testing.T) {
			if got := tc.pose.SheetRect(64, 64); got != tc.want {
				t.Errorf("SheetRect() = %v, want %v", got, tc.want)
			}
		})
	}

	w := NewWalker(testConfig())
	if got := w.SheetRect(); got != image.Rect(0, 128, 64, 192) {
		t.Errorf("initial SheetRect() = %v, want idle facing down", got)
	}
}

func TestHeld(t *testing.T) {
	if (Held{}).Any() {
		t.Error("empty Held reports Any")
	}
	h := Held{Left: true}
	if !h.Any() || !h.Has(Left) || h.Has(Right) || h.Has(Up) || h.Has(Down) {
		t.Errorf("Held{Left} = Any %v Has(Left) %v", h.Any(), h.Has(Left))
	}
}
