package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrUnknownLevel is returned when no level file matches a name.
var ErrUnknownLevel = errors.New("unknown level")

// ErrInvalidConfig is returned when a loaded value is out of range.
var ErrInvalidConfig = errors.New("invalid config")

// GameConfig holds all loaded configurations
type GameConfig struct {
	Physics  *PhysicsConfig
	Entities *EntitiesConfig
}

// Loader loads game configuration from JSON and TMX files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

func (l *Loader) readJSON(path string, v any) error {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// LoadPhysics loads physics.json
func (l *Loader) LoadPhysics() (*PhysicsConfig, error) {
	var cfg PhysicsConfig
	if err := l.readJSON("physics.json", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid physics.json: %w", err)
	}
	return &cfg, nil
}

// LoadEntities loads entities.json
func (l *Loader) LoadEntities() (*EntitiesConfig, error) {
	var cfg EntitiesConfig
	if err := l.readJSON("entities.json", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadLevel loads levels/<name>.json, falling back to levels/<name>.tmx.
func (l *Loader) LoadLevel(name string) (*LevelConfig, error) {
	jsonPath := "levels/" + name + ".json"
	if _, err := fs.Stat(l.fsys, jsonPath); err == nil {
		var cfg LevelConfig
		if err := l.readJSON(jsonPath, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load level %s: %w", name, err)
		}
		if cfg.ID == "" {
			cfg.ID = name
		}
		return &cfg, nil
	}

	tmxPath := "levels/" + name + ".tmx"
	if _, err := fs.Stat(l.fsys, tmxPath); err == nil {
		cfg, err := LoadTiledLevel(l.fsys, tmxPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load level %s: %w", name, err)
		}
		if cfg.ID == "" {
			cfg.ID = name
		}
		return cfg, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownLevel, name)
}

// LoadAll loads all base configurations (physics, entities)
func (l *Loader) LoadAll() (*GameConfig, error) {
	physics, err := l.LoadPhysics()
	if err != nil {
		return nil, err
	}

	entities, err := l.LoadEntities()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Physics:  physics,
		Entities: entities,
	}, nil
}
