package system

import (
	"github.com/younwookim/pollo/internal/domain/entity"
	"github.com/younwookim/pollo/internal/infrastructure/config"
)

// PhysicsSystem integrates gravity
type PhysicsSystem struct {
	config *config.PhysicsConfig
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.PhysicsConfig) *PhysicsSystem {
	return &PhysicsSystem{config: cfg}
}

// ApplyGravity runs one tick of gravity against the ground line
func (s *PhysicsSystem) ApplyGravity(m *entity.Mover) {
	m.ApplyGravity(s.config.Gravity.GroundY)
}

// UpdateThrowable moves a bottle one tick. Bottles that fall past the
// despawn line are marked for removal.
func (s *PhysicsSystem) UpdateThrowable(t *entity.Throwable) {
	if t.Exploded || t.MarkedForRemoval {
		return
	}
	t.Fly()
	if s.config.Gravity.DespawnY > 0 && t.Y > s.config.Gravity.DespawnY {
		t.MarkedForRemoval = true
	}
}
