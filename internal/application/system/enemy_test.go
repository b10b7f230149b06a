package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/pollo/internal/domain/entity"
)

func TestEnemySystem_Move(t *testing.T) {
	enemies := NewEnemySystem(createTestPhysics())
	e := newTestEnemy(100, 0)

	enemies.Move(e)
	assert.Equal(t, 99.0, e.X)
	enemies.Animate(e)
	assert.Equal(t, "walk", e.Anim.Frame())

	e.Die()
	enemies.Move(e)
	assert.Equal(t, 99.0, e.X)
	enemies.Animate(e)
	assert.Equal(t, "dead", e.Anim.Frame())
}

func TestBossNear(t *testing.T) {
	tests := []struct {
		charX, bossX float64
		want         bool
	}{
		{0, 1000, false},
		{799, 1000, false},
		{800, 1000, true},
		{1000, 1000, true},
		{1500, 1000, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, BossNear(tt.charX, tt.bossX, 200), "charX=%v", tt.charX)
	}
}

func TestEnemySystem_BossFirstContact(t *testing.T) {
	enemies := NewEnemySystem(createTestPhysics())
	sink := newRecordingSink()
	boss := newTestBoss(2160, 55)
	ctx := Context{Sound: sink}

	enemies.AnimateBoss(boss, 0, ctx)
	assert.False(t, boss.HadFirstContact)
	assert.True(t, boss.Alert)

	enemies.MoveBoss(boss, 0, ctx)
	assert.Equal(t, 2160.0, boss.X, "dormant boss does not move")

	enemies.AnimateBoss(boss, 1660, ctx)
	assert.True(t, boss.HadFirstContact)
	assert.Equal(t, 1, boss.FirstContactCounter)

	for i := 1; i < 20; i++ {
		enemies.AnimateBoss(boss, 1660, ctx)
		assert.True(t, boss.Alert)
	}
	assert.Equal(t, 20, boss.FirstContactCounter)
	assert.False(t, boss.Active())

	enemies.AnimateBoss(boss, 1660, ctx)
	assert.False(t, boss.Alert)
	assert.True(t, boss.Active())

	enemies.MoveBoss(boss, 1660, ctx)
	assert.Equal(t, 2159.0, boss.X)
	assert.True(t, boss.Walking)
	assert.False(t, boss.Reversed)

	enemies.MoveBoss(boss, 3000, ctx)
	assert.Equal(t, 2160.0, boss.X)
	assert.True(t, boss.Reversed)
}

func TestEnemySystem_BossAttackSound(t *testing.T) {
	enemies := NewEnemySystem(createTestPhysics())
	sink := newRecordingSink()
	boss := newTestBoss(1000, 55)
	boss.HadFirstContact = true
	boss.FirstContactCounter = 20
	ctx := Context{Sound: sink}

	for i := 0; i < 5; i++ {
		enemies.AnimateBoss(boss, 900, ctx)
	}
	assert.True(t, boss.Attacking)
	assert.Equal(t, "attack", boss.Anim.Frame())
	assert.Equal(t, 1, sink.played[entity.SoundEndbossAttack], "sound plays when the attack starts")

	boss.Walking = true
	enemies.AnimateBoss(boss, 0, ctx)
	assert.False(t, boss.Attacking)
	assert.Equal(t, "walk", boss.Anim.Frame())

	enemies.AnimateBoss(boss, 900, ctx)
	assert.Equal(t, 2, sink.played[entity.SoundEndbossAttack])
}

func TestEnemySystem_BossHurtAndDead(t *testing.T) {
	enemies := NewEnemySystem(createTestPhysics())
	boss := newTestBoss(1000, 55)
	boss.HadFirstContact = true
	boss.FirstContactCounter = 20
	ctx := Context{Now: 100 * time.Millisecond, Sound: &entity.NopSink{}}

	boss.HitByBottle(0, 34)
	enemies.AnimateBoss(boss, 900, ctx)
	assert.Equal(t, "hurt", boss.Anim.Frame())

	enemies.MoveBoss(boss, 0, ctx)
	assert.Equal(t, 1000.0, boss.X, "hurt boss holds position")

	boss.Die()
	enemies.AnimateBoss(boss, 900, Context{Now: 5 * time.Second, Sound: &entity.NopSink{}})
	assert.Equal(t, "dead", boss.Anim.Frame())
	assert.False(t, boss.Attacking)
}
