package config

// EntitiesConfig is the root config for entities.json
type EntitiesConfig struct {
	Character  CharacterConfig         `json:"character"`
	Enemies    map[string]EnemyConfig  `json:"enemies"`
	Endboss    EndbossConfig           `json:"endboss"`
	Throwable  ThrowableConfig         `json:"throwable"`
	Pickups    map[string]PickupConfig `json:"pickups"`
	Cloud      CloudConfig             `json:"cloud"`
	Background BackgroundConfig        `json:"background"`
	StatusBars StatusBarsConfig        `json:"statusBars"`
}

type SpriteConfig struct {
	Width      float64             `json:"width"`
	Height     float64             `json:"height"`
	Offset     OffsetConfig        `json:"offset"`
	Animations map[string][]string `json:"animations"`
}

type OffsetConfig struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

type CharacterConfig struct {
	Sprite SpriteConfig   `json:"sprite"`
	Spawn  PositionConfig `json:"spawn"`
	Speed  float64        `json:"speed"`
}

type EnemyConfig struct {
	Sprite SpriteConfig `json:"sprite"`
	Y      float64      `json:"y"`
	Speed  RangeConfig  `json:"speed"`
}

type EndbossConfig struct {
	Sprite SpriteConfig `json:"sprite"`
	Y      float64      `json:"y"`
}

type ThrowableConfig struct {
	Sprite SpriteConfig `json:"sprite"`
}

type PickupConfig struct {
	Sprite SpriteConfig `json:"sprite"`
	Y      RangeConfig  `json:"y"`
}

type CloudConfig struct {
	Sprite SpriteConfig `json:"sprite"`
	Y      float64      `json:"y"`
	Speed  float64      `json:"speed"`
}

// BackgroundConfig describes one background group: Air is drawn first,
// then each entry of Layers picks its variant by group index.
type BackgroundConfig struct {
	Width  float64    `json:"width"`
	Height float64    `json:"height"`
	Air    string     `json:"air"`
	Layers [][]string `json:"layers"`
}

type StatusBarsConfig struct {
	Health  []string `json:"health"`
	Coins   []string `json:"coins"`
	Bottles []string `json:"bottles"`
	Boss    []string `json:"boss"`
}
