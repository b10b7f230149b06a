package entity

// ThrowableAnimations holds the poses of a thrown bottle.
type ThrowableAnimations struct {
	Rotation Animation
	Splash   Animation
}

// Throwable is a bottle in flight. It is always airborne: gravity never
// clamps it to the ground.
type Throwable struct {
	Mover

	Right            bool
	Exploded         bool
	MarkedForRemoval bool

	Anims ThrowableAnimations
}

// NewThrowable launches a bottle from x, y with an upward speed.
func NewThrowable(x, y float64, shape Shape, speed, launchSpeedY float64, right bool, anims ThrowableAnimations) *Throwable {
	t := &Throwable{
		Mover: NewMover(x, y, shape, speed),
		Right: right,
		Anims: anims,
	}
	t.SpeedY = launchSpeedY
	t.Reversed = !right
	if len(anims.Rotation) > 0 {
		t.Anim.Show(anims.Rotation[0])
	}
	return t
}

// Fly advances the bottle one tick horizontally and vertically.
// Exploded bottles stay where they are.
func (t *Throwable) Fly() {
	if t.Exploded {
		return
	}
	if t.Right {
		t.X += t.Speed
	} else {
		t.X -= t.Speed
	}
	t.Y -= t.SpeedY
	t.SpeedY -= t.Acceleration
}

// Explode freezes the bottle over target's sprite rectangle.
// It reports false if the bottle had already exploded.
func (t *Throwable) Explode(target *Body) bool {
	if t.Exploded {
		return false
	}
	t.X = target.X
	t.Y = target.Y
	t.Width = target.Width
	t.Height = target.Height
	t.Offset = target.Offset
	t.SpeedY = 0
	t.Acceleration = 0
	t.Exploded = true
	return true
}
