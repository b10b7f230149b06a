package entity

// Level is the content of one session. The world mutates the entities it
// holds but never the lists themselves.
type Level struct {
	Name         string
	Enemies      []*Enemy
	Endboss      *Endboss
	Clouds       []*Cloud
	Backgrounds  []*Background
	Collectibles []*Collectible
	EndX         float64
}

// CountCollectibles returns how many pickups of kind the level holds.
func (l *Level) CountCollectibles(kind CollectibleKind) int {
	n := 0
	for _, c := range l.Collectibles {
		if c.Kind == kind {
			n++
		}
	}
	return n
}
