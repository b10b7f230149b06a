package config

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/lafriks/go-tiled"
)

// Object group names understood in TMX levels.
const (
	groupEnemies = "Enemies"
	groupPickups = "Pickups"
	groupClouds  = "Clouds"
	groupEndboss = "Endboss"
)

// LoadTiledLevel reads a hand-placed level from a TMX file.
//
// Map properties: name, next, endX, backgroundFirst, backgroundLast.
// Objects in the Enemies and Pickups groups carry a "kind" property
// (chicken, chick, coin, bottle) and an optional "y"; their X is used
// as placed. Objects in Clouds become clouds. The first object in
// Endboss sets the boss X and its "speed" property.
func LoadTiledLevel(fsys fs.FS, tmxPath string) (*LevelConfig, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	cfg := &LevelConfig{
		Name: levelMap.Properties.GetString("name"),
		Next: levelMap.Properties.GetString("next"),
		EndX: levelMap.Properties.GetFloat("endX"),
		Backgrounds: BackgroundSpanConfig{
			First: levelMap.Properties.GetInt("backgroundFirst"),
			Last:  levelMap.Properties.GetInt("backgroundLast"),
		},
	}
	if cfg.EndX == 0 {
		cfg.EndX = float64(levelMap.Width * levelMap.TileWidth)
	}

	hasBoss := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case groupEnemies, groupPickups:
			for _, o := range og.Objects {
				kind := o.Properties.GetString("kind")
				if kind == "" {
					return nil, fmt.Errorf("object %d in %s has no kind", o.ID, og.Name)
				}
				p := PlacementConfig{Kind: kind, X: o.X}
				if o.Properties.GetString("y") != "" {
					y := o.Properties.GetFloat("y")
					p.Y = &y
				}
				cfg.Placed = append(cfg.Placed, p)
			}
		case groupClouds:
			for _, o := range og.Objects {
				cfg.Placed = append(cfg.Placed, PlacementConfig{Kind: "cloud", X: o.X})
			}
		case groupEndboss:
			if len(og.Objects) == 0 {
				continue
			}
			o := og.Objects[0]
			cfg.Endboss = BossSpawnConfig{X: o.X, Speed: o.Properties.GetFloat("speed")}
			hasBoss = true
		}
	}
	if !hasBoss {
		return nil, fmt.Errorf("TMX %s has no %s object", tmxPath, groupEndboss)
	}

	// Placement order feeds the level lists; keep it stable left to right.
	sort.SliceStable(cfg.Placed, func(i, j int) bool {
		return cfg.Placed[i].X < cfg.Placed[j].X
	})

	return cfg, nil
}
