package animations

import (
	"image"

	"github.com/automoto/spritewalk/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/features/math"
)

// Pose is what the display needs for one frame.
type Pose struct {
	Position math.Vec2
	Facing   Direction
	Frame    int
}

// Walker is the animation and movement state machine of the character.
// It is driven once per rendered frame and only acts every MoveCycleTicks
// calls; the position lives in Body.
type Walker struct {
	Body   *resolv.Object
	Facing Direction
	Frame  int

	cfg          config.Config
	frameCounter int
}

// NewWalker places a walker at the configured start position, idle and
// facing down. The config must already be validated.
func NewWalker(c config.Config, tags ...string) *Walker {
	body := resolv.NewObject(
		c.Movement.StartX,
		c.Movement.StartY,
		float64(c.Sprite.FrameWidth),
		float64(c.Sprite.FrameHeight),
		tags...,
	)
	return &Walker{
		Body:         body,
		Facing:       Down,
		Frame:        0,
		cfg:          c,
		frameCounter: c.Movement.MoveCycleTicks,
	}
}

// Update advances the walker by one rendered frame and returns the pose to
// draw. Movement and animation only change on the frame that completes a
// move cycle.
func (w *Walker) Update(held Held) Pose {
	w.frameCounter--
	if w.frameCounter > 0 {
		return w.Pose()
	}
	w.frameCounter = w.cfg.Movement.MoveCycleTicks
	w.step(held)
	return w.Pose()
}

// Pose returns the current position, facing and frame column.
func (w *Walker) Pose() Pose {
	return Pose{
		Position: math.NewVec2(w.Body.X, w.Body.Y),
		Facing:   w.Facing,
		Frame:    w.Frame,
	}
}

// TicksLeft is the number of Update calls until the next logical step.
func (w *Walker) TicksLeft() int {
	return w.frameCounter
}

// Config returns the configuration the walker was built with.
func (w *Walker) Config() config.Config {
	return w.cfg
}

// SheetRect is the sprite sheet cell for the current pose.
func (w *Walker) SheetRect() image.Rectangle {
	return w.Pose().SheetRect(w.cfg.Sprite.FrameWidth, w.cfg.Sprite.FrameHeight)
}

// SheetRect is the cell for p on a sheet of frameWidth x frameHeight cells:
// the column is the frame, the row is the facing.
func (p Pose) SheetRect(frameWidth, frameHeight int) image.Rectangle {
	x := p.Frame * frameWidth
	y := int(p.Facing) * frameHeight
	return image.Rect(x, y, x+frameWidth, y+frameHeight)
}

// axisKey is one of the two keys of an axis as seen during a step.
type axisKey struct {
	held    bool
	dir     Direction
	sign    float64
	blocked bool // the body already touches the edge in this direction
}

// resolveAxis picks primary when held, otherwise secondary. A blocked key
// still counts as pressed but yields no displacement.
func resolveAxis(speed float64, primary, secondary axisKey) (delta float64, dir Direction, pressed bool) {
	k := primary
	if !k.held {
		k = secondary
	}
	if !k.held {
		return 0, 0, false
	}
	if !k.blocked {
		delta = k.sign * speed
	}
	return delta, k.dir, true
}

func (w *Walker) step(held Held) {
	b := w.Body
	width := float64(w.cfg.Window.Width)
	height := float64(w.cfg.Window.Height)
	speed := w.cfg.Movement.Speed

	// Down wins over Up, Left wins over Right.
	dy, vdir, vertical := resolveAxis(speed,
		axisKey{held: held.Down, dir: Down, sign: 1, blocked: b.Y+b.H >= height},
		axisKey{held: held.Up, dir: Up, sign: -1, blocked: b.Y <= 0},
	)
	dx, hdir, horizontal := resolveAxis(speed,
		axisKey{held: held.Left, dir: Left, sign: -1, blocked: b.X <= 0},
		axisKey{held: held.Right, dir: Right, sign: 1, blocked: b.X+b.W >= width},
	)

	// The horizontal facing overwrites the vertical one on diagonals.
	if vertical {
		w.Facing = vdir
	}
	if horizontal {
		w.Facing = hdir
	}

	if !vertical && !horizontal {
		w.Frame = 0
		return
	}

	b.X += dx
	b.Y += dy

	w.Frame++
	if w.Frame >= w.cfg.Sprite.MaxFrames {
		// Loop the walk cycle without passing through the idle column.
		w.Frame = 1
	}
}
