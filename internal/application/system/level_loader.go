package system

import (
	"fmt"
	"math/rand"

	"github.com/younwookim/pollo/internal/domain/entity"
	"github.com/younwookim/pollo/internal/infrastructure/config"
)

// SpriteShape converts a sprite config into entity geometry
func SpriteShape(s config.SpriteConfig) entity.Shape {
	return entity.Shape{
		Width:  s.Width,
		Height: s.Height,
		Offset: entity.Offset{
			Top:    s.Offset.Top,
			Right:  s.Offset.Right,
			Bottom: s.Offset.Bottom,
			Left:   s.Offset.Left,
		},
	}
}

func spread(r config.RangeConfig, rng *rand.Rand) float64 {
	return r.Min + rng.Float64()*r.Spread
}

// NewCharacter creates the character at its configured spawn point
func NewCharacter(ents *config.EntitiesConfig) *entity.Character {
	cc := ents.Character
	a := cc.Sprite.Animations
	return entity.NewCharacter(
		cc.Spawn.X, cc.Spawn.Y,
		SpriteShape(cc.Sprite),
		cc.Speed,
		entity.CharacterAnimations{
			Idle:     a["idle"],
			LongIdle: a["longIdle"],
			Walk:     a["walk"],
			Jump:     a["jump"],
			Hurt:     a["hurt"],
			Dead:     a["dead"],
		},
	)
}

// BuildLevel converts a LevelConfig into a Level entity. Random spawn
// positions are drawn from rng in a fixed order, so equal seeds build
// equal levels.
func BuildLevel(lvl *config.LevelConfig, ents *config.EntitiesConfig, rng *rand.Rand) (*entity.Level, error) {
	level := &entity.Level{
		Name: lvl.Name,
		EndX: lvl.EndX,
	}
	if level.Name == "" {
		level.Name = lvl.ID
	}

	for _, g := range lvl.Enemies {
		for i := 0; i < g.Count; i++ {
			x := spread(g.X, rng)
			e, err := newEnemy(g.Type, x, nil, ents, rng)
			if err != nil {
				return nil, err
			}
			level.Enemies = append(level.Enemies, e)
		}
	}

	for i := 0; i < lvl.Clouds.Count; i++ {
		level.Clouds = append(level.Clouds, newCloud(spread(lvl.Clouds.X, rng), len(level.Clouds), ents))
	}

	for _, g := range lvl.Pickups {
		for i := 0; i < g.Count; i++ {
			x := spread(g.X, rng)
			p, err := newCollectible(g.Type, x, nil, ents, rng)
			if err != nil {
				return nil, err
			}
			level.Collectibles = append(level.Collectibles, p)
		}
	}

	for _, p := range lvl.Placed {
		switch p.Kind {
		case "cloud":
			c := newCloud(p.X, len(level.Clouds), ents)
			if p.Y != nil {
				c.Y = *p.Y
			}
			level.Clouds = append(level.Clouds, c)
		case "coin", "bottle":
			c, err := newCollectible(p.Kind, p.X, p.Y, ents, rng)
			if err != nil {
				return nil, err
			}
			level.Collectibles = append(level.Collectibles, c)
		default:
			e, err := newEnemy(p.Kind, p.X, p.Y, ents, rng)
			if err != nil {
				return nil, err
			}
			level.Enemies = append(level.Enemies, e)
		}
	}

	bc := ents.Endboss
	ba := bc.Sprite.Animations
	level.Endboss = entity.NewEndboss(
		lvl.Endboss.X, bc.Y,
		SpriteShape(bc.Sprite),
		lvl.Endboss.Speed,
		entity.BossAnimations{
			Walk:   ba["walk"],
			Alert:  ba["alert"],
			Attack: ba["attack"],
			Hurt:   ba["hurt"],
			Dead:   ba["dead"],
		},
	)

	level.Backgrounds = buildBackgrounds(lvl.Backgrounds, ents.Background)

	return level, nil
}

func newEnemy(kind string, x float64, y *float64, ents *config.EntitiesConfig, rng *rand.Rand) (*entity.Enemy, error) {
	k, ok := entity.ParseEnemyKind(kind)
	if !ok {
		return nil, fmt.Errorf("unknown enemy type: %s", kind)
	}
	ec, ok := ents.Enemies[kind]
	if !ok {
		return nil, fmt.Errorf("no config for enemy type: %s", kind)
	}
	ey := ec.Y
	if y != nil {
		ey = *y
	}
	e := entity.NewEnemy(k, x, ey, SpriteShape(ec.Sprite), spread(ec.Speed, rng), entity.EnemyAnimations{
		Walk: ec.Sprite.Animations["walk"],
		Dead: ec.Sprite.Animations["dead"],
	})
	return e, nil
}

func newCollectible(kind string, x float64, y *float64, ents *config.EntitiesConfig, rng *rand.Rand) (*entity.Collectible, error) {
	var k entity.CollectibleKind
	switch kind {
	case "coin":
		k = entity.KindCoin
	case "bottle":
		k = entity.KindBottle
	default:
		return nil, fmt.Errorf("unknown pickup type: %s", kind)
	}
	pc, ok := ents.Pickups[kind]
	if !ok {
		return nil, fmt.Errorf("no config for pickup type: %s", kind)
	}
	py := 0.0
	if y != nil {
		py = *y
	} else {
		py = spread(pc.Y, rng)
	}
	frames := pc.Sprite.Animations["idle"]
	c := entity.NewCollectible(k, x, py, SpriteShape(pc.Sprite), frames)
	// bottles lie still on one of their frames
	if k == entity.KindBottle && len(frames) > 0 {
		c.Anim.Show(frames[rng.Intn(len(frames))])
	}
	return c, nil
}

// newCloud alternates the cloud sprites by spawn index.
func newCloud(x float64, index int, ents *config.EntitiesConfig) *entity.Cloud {
	cc := ents.Cloud
	frame := ""
	if f := cc.Sprite.Animations["idle"]; len(f) > 0 {
		frame = f[index%len(f)]
	}
	return entity.NewCloud(x, cc.Y, SpriteShape(cc.Sprite), cc.Speed, frame)
}

// buildBackgrounds lays one group per width from span.First to span.Last.
// Each group draws the air layer, then every layer in its variant for the
// group's parity.
func buildBackgrounds(span config.BackgroundSpanConfig, bc config.BackgroundConfig) []*entity.Background {
	shape := entity.Shape{Width: bc.Width, Height: bc.Height}
	var out []*entity.Background
	for g := span.First; g <= span.Last; g++ {
		x := bc.Width * float64(g)
		if bc.Air != "" {
			out = append(out, entity.NewBackground(x, shape, bc.Air))
		}
		for _, layer := range bc.Layers {
			if len(layer) == 0 {
				continue
			}
			v := ((g % len(layer)) + len(layer)) % len(layer)
			out = append(out, entity.NewBackground(x, shape, layer[v]))
		}
	}
	return out
}
