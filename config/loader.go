package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Load builds a configuration from the defaults overlaid with a YAML file.
// Search order: customPath -> ~/.overworld/config.yaml -> ./configs/overworld.yaml -> defaults.
// Archetype and projectile entries present in the file replace the default
// entry of the same name whole.
func Load(customPath string) (*Config, error) {
	cfg := Default()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	for _, path := range []string{userConfigPath(), filepath.Join("configs", "overworld.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return cfg, cfg.Validate()
	}

	return cfg, nil
}

func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".overworld", "config.yaml")
}

// Validate checks the values the simulation divides by or dispatches on.
func (c *Config) Validate() error {
	if c.World.TileSize <= 0 {
		return fmt.Errorf("%w: tile_size must be positive", ErrInvalid)
	}
	if c.World.MaxStep <= 0 {
		return fmt.Errorf("%w: max_step must be positive", ErrInvalid)
	}
	if c.World.SpaceCell <= 0 {
		return fmt.Errorf("%w: space_cell must be positive", ErrInvalid)
	}
	if c.Player.MaxHealth < 1 || c.Player.MaxMagic < 0 {
		return fmt.Errorf("%w: player maxima must be at least 1", ErrInvalid)
	}
	if _, ok := c.Enemy.Types[c.Enemy.DefaultType]; !ok {
		return fmt.Errorf("%w: default enemy type %q is not defined", ErrInvalid, c.Enemy.DefaultType)
	}
	for name, t := range c.Enemy.Types {
		if _, ok := ParseBehavior(t.Behavior); !ok {
			return fmt.Errorf("%w: enemy %q has unknown behavior %q", ErrInvalid, name, t.Behavior)
		}
		if t.Health < 1 {
			return fmt.Errorf("%w: enemy %q needs positive health", ErrInvalid, name)
		}
	}
	if _, ok := c.Projectile.Types[ProjectileGeneric.String()]; !ok {
		return fmt.Errorf("%w: generic projectile type is not defined", ErrInvalid)
	}
	total := 0.0
	for _, d := range c.Drops.Table {
		if _, ok := ParseDropEffect(d.Effect); !ok {
			return fmt.Errorf("%w: drop %q has unknown effect %q", ErrInvalid, d.Name, d.Effect)
		}
		if d.Chance < 0 {
			return fmt.Errorf("%w: drop %q has negative chance", ErrInvalid, d.Name)
		}
		total += d.Chance
	}
	if total > 1+1e-9 {
		return fmt.Errorf("%w: drop chances add up to more than 1", ErrInvalid)
	}
	if c.Enemy.PatrolMax < c.Enemy.PatrolMin || c.Enemy.JumpMax < c.Enemy.JumpMin {
		return fmt.Errorf("%w: cooldown ranges are inverted", ErrInvalid)
	}
	return nil
}
