package config

// LevelConfig is the root config for level files (JSON or TMX)
type LevelConfig struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Next        string               `json:"next,omitempty"`
	EndX        float64              `json:"endX"`
	Backgrounds BackgroundSpanConfig `json:"backgrounds"`
	Enemies     []SpawnGroupConfig   `json:"enemies"`
	Endboss     BossSpawnConfig      `json:"endboss"`
	Clouds      SpawnGroupConfig     `json:"clouds"`
	Pickups     []SpawnGroupConfig   `json:"pickups"`
	Placed      []PlacementConfig    `json:"placed,omitempty"`
}

// BackgroundSpanConfig places one background group every group width,
// for group indices First..Last inclusive.
type BackgroundSpanConfig struct {
	First int `json:"first"`
	Last  int `json:"last"`
}

// SpawnGroupConfig spawns Count entities of Type at X.Min + rand*X.Spread.
type SpawnGroupConfig struct {
	Type  string      `json:"type,omitempty"`
	Count int         `json:"count"`
	X     RangeConfig `json:"x"`
}

type BossSpawnConfig struct {
	X     float64 `json:"x"`
	Speed float64 `json:"speed"`
}

// PlacementConfig puts one entity at a fixed position. A nil Y uses the
// kind's default height.
type PlacementConfig struct {
	Kind string   `json:"kind"`
	X    float64  `json:"x"`
	Y    *float64 `json:"y,omitempty"`
}
