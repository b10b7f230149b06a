package entity

// Offset insets a sprite rectangle to produce its hitbox.
type Offset struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// Rect is an axis-aligned rectangle in world units.
type Rect struct {
	X, Y float64
	W, H float64
}

// Overlaps reports whether r and o share interior area.
// Touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W &&
		r.X+r.W > o.X &&
		r.Y < o.Y+o.H &&
		r.Y+r.H > o.Y
}

// Shape is the static geometry shared by every instance of a kind.
type Shape struct {
	Width  float64
	Height float64
	Offset Offset
}

// EnemyKind distinguishes the small patrolling enemies.
type EnemyKind int

const (
	KindChicken EnemyKind = iota
	KindChick
)

// String returns the config key of the kind
func (k EnemyKind) String() string {
	switch k {
	case KindChicken:
		return "chicken"
	case KindChick:
		return "chick"
	default:
		return "unknown"
	}
}

// ParseEnemyKind maps a config key to its kind.
func ParseEnemyKind(s string) (EnemyKind, bool) {
	switch s {
	case "chicken":
		return KindChicken, true
	case "chick":
		return KindChick, true
	}
	return 0, false
}

// CollectibleKind distinguishes pickups.
type CollectibleKind int

const (
	KindCoin CollectibleKind = iota
	KindBottle
)

// String returns the config key of the kind
func (k CollectibleKind) String() string {
	switch k {
	case KindCoin:
		return "coin"
	case KindBottle:
		return "bottle"
	default:
		return "unknown"
	}
}
