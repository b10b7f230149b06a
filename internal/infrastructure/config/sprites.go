package config

import "sort"

// SpritePaths returns every image path referenced by the entities config,
// sorted and without duplicates.
func (e *EntitiesConfig) SpritePaths() []string {
	seen := make(map[string]struct{})
	add := func(paths ...string) {
		for _, p := range paths {
			if p != "" {
				seen[p] = struct{}{}
			}
		}
	}
	addSprite := func(s SpriteConfig) {
		for _, frames := range s.Animations {
			add(frames...)
		}
	}

	addSprite(e.Character.Sprite)
	for _, en := range e.Enemies {
		addSprite(en.Sprite)
	}
	addSprite(e.Endboss.Sprite)
	addSprite(e.Throwable.Sprite)
	for _, p := range e.Pickups {
		addSprite(p.Sprite)
	}
	addSprite(e.Cloud.Sprite)

	add(e.Background.Air)
	for _, variants := range e.Background.Layers {
		add(variants...)
	}
	add(e.StatusBars.Health...)
	add(e.StatusBars.Coins...)
	add(e.StatusBars.Bottles...)
	add(e.StatusBars.Boss...)

	paths := make([]string, 0, len(seen))
	for p := range seen {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
