package entity

import "time"

// CharacterAnimations holds every pose list the character can play.
type CharacterAnimations struct {
	Idle     Animation
	LongIdle Animation
	Walk     Animation
	Jump     Animation
	Hurt     Animation
	Dead     Animation
}

// Character is the player-controlled mover.
type Character struct {
	Mover

	Coins   int
	Bottles int

	Anims CharacterAnimations

	standing      bool
	standingSince time.Duration
}

// NewCharacter creates a character facing right at full energy.
func NewCharacter(x, y float64, shape Shape, speed float64, anims CharacterAnimations) *Character {
	c := &Character{
		Mover: NewMover(x, y, shape, speed),
		Anims: anims,
	}
	if len(anims.Idle) > 0 {
		c.Anim.Show(anims.Idle[0])
	}
	return c
}

// StandStill records that the character is idle at now and returns how
// long it has been standing without interruption.
func (c *Character) StandStill(now time.Duration) time.Duration {
	if !c.standing {
		c.standing = true
		c.standingSince = now
	}
	return now - c.standingSince
}

// ResetStanding clears the idle timer.
func (c *Character) ResetStanding() {
	c.standing = false
	c.standingSince = 0
}

// StandingSince returns when the current idle stretch began, or false
// when the character is not standing.
func (c *Character) StandingSince() (time.Duration, bool) {
	return c.standingSince, c.standing
}
