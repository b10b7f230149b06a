package entity

// EnemyAnimations holds the poses of a patrolling enemy.
type EnemyAnimations struct {
	Walk Animation
	Dead Animation
}

// Enemy walks left at a constant speed until it dies.
// Dead enemies stay in the level and are skipped by combat.
type Enemy struct {
	Mover
	Kind  EnemyKind
	Anims EnemyAnimations
}

// NewEnemy creates a walking enemy.
func NewEnemy(kind EnemyKind, x, y float64, shape Shape, speed float64, anims EnemyAnimations) *Enemy {
	e := &Enemy{
		Mover: NewMover(x, y, shape, speed),
		Kind:  kind,
		Anims: anims,
	}
	e.Walking = true
	if len(anims.Walk) > 0 {
		e.Anim.Show(anims.Walk[0])
	}
	return e
}

// IsAlive returns true if the enemy has not been killed
func (e *Enemy) IsAlive() bool {
	return !e.Dead
}
