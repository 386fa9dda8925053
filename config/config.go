// Package config loads the runtime configuration: built-in defaults, an
// optional TOML file and environment overrides, in that order
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lixenwraith/mini-fps/constants"
	"github.com/lixenwraith/mini-fps/engine"
	"github.com/lixenwraith/mini-fps/vmath"
)

// Environment overrides
const (
	EnvNotifyAddr = "MINIFPS_NOTIFY_ADDR"
	EnvDebug      = "MINIFPS_DEBUG"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Config is the root of the TOML document
type Config struct {
	Debug   bool          `toml:"debug"`
	Game    GameConfig    `toml:"game"`
	Player  PlayerConfig  `toml:"player"`
	Display DisplayConfig `toml:"display"`
	Notify  NotifyConfig  `toml:"notify"`
	Keys    KeysConfig    `toml:"keys"`
}

// GameConfig holds the session rules
type GameConfig struct {
	MaxAmmo            int         `toml:"max_ammo"`
	ScorePerHit        int         `toml:"score_per_hit"`
	CompletionScore    int         `toml:"completion_score"`
	HitCooldownMs      int         `toml:"hit_cooldown_ms"`
	ProjectileSpeed    float64     `toml:"projectile_speed"`
	ProjectileMaxRange float64     `toml:"projectile_max_range"`
	Targets            [][]float64 `toml:"targets"` // x, y, z per target
}

// PlayerConfig holds camera movement parameters
type PlayerConfig struct {
	EyeHeight   float64 `toml:"eye_height"`
	StartX      float64 `toml:"start_x"`
	StartZ      float64 `toml:"start_z"`
	MoveStep    float64 `toml:"move_step"`
	TurnStep    float64 `toml:"turn_step"`
	ArenaExtent float64 `toml:"arena_extent"`
}

// DisplayConfig holds terminal view parameters
type DisplayConfig struct {
	FrameIntervalMs int     `toml:"frame_interval_ms"`
	CellsPerUnit    float64 `toml:"cells_per_unit"`
	RowsPerUnit     float64 `toml:"rows_per_unit"`
}

// NotifyConfig holds the completion delivery endpoint for the embedding parent
// An empty Addr disables the websocket endpoint
type NotifyConfig struct {
	Addr           string   `toml:"addr"`
	Path           string   `toml:"path"`
	BlockID        string   `toml:"block_id"`
	OriginPatterns []string `toml:"origin_patterns"`
}

// KeysConfig holds key binding overrides, action names as values
type KeysConfig struct {
	Runes   map[string]string `toml:"runes"`
	Special map[string]string `toml:"special"`
}

// Default returns the configuration built from package constants
func Default() *Config {
	targets := make([][]float64, 0, len(constants.TargetPositions))
	for _, p := range constants.TargetPositions {
		targets = append(targets, []float64{p[0], p[1], p[2]})
	}

	return &Config{
		Game: GameConfig{
			MaxAmmo:            constants.MaxAmmo,
			ScorePerHit:        constants.ScorePerHit,
			CompletionScore:    constants.CompletionScore,
			HitCooldownMs:      int(constants.HitCooldown / time.Millisecond),
			ProjectileSpeed:    constants.ProjectileSpeed,
			ProjectileMaxRange: constants.ProjectileMaxRange,
			Targets:            targets,
		},
		Player: PlayerConfig{
			EyeHeight:   constants.PlayerEyeHeight,
			StartX:      0,
			StartZ:      constants.PlayerStartZ,
			MoveStep:    constants.PlayerMoveStep,
			TurnStep:    constants.PlayerTurnStep,
			ArenaExtent: constants.ArenaHalfExtent,
		},
		Display: DisplayConfig{
			FrameIntervalMs: int(constants.FrameUpdateInterval / time.Millisecond),
			CellsPerUnit:    constants.ArenaCellsPerUnit,
			RowsPerUnit:     constants.ArenaRowsPerUnit,
		},
		Notify: NotifyConfig{
			Addr:    constants.NotifyAddr,
			Path:    constants.NotifyPath,
			BlockID: constants.BlockID,
		},
	}
}

// Load builds the configuration from defaults, the TOML file at path (if
// non-empty) and the environment, then validates the result
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, fmt.Errorf("config %s: unknown keys %s: %w", path, strings.Join(keys, ", "), ErrInvalid)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode parses TOML data over the defaults without env overrides
func Decode(data string) (*Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("config decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Notify.Addr = GetEnvDefault(EnvNotifyAddr, c.Notify.Addr)
	if v, err := strconv.ParseBool(GetEnvDefault(EnvDebug, strconv.FormatBool(c.Debug))); err == nil {
		c.Debug = v
	}
}

// GetEnvDefault returns the environment value of key or defaultValue when unset
func GetEnvDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// Validate rejects values the session cannot run with
func (c *Config) Validate() error {
	g := c.Game
	switch {
	case g.MaxAmmo <= 0:
		return fmt.Errorf("game.max_ammo must be positive, got %d: %w", g.MaxAmmo, ErrInvalid)
	case g.ScorePerHit <= 0:
		return fmt.Errorf("game.score_per_hit must be positive, got %d: %w", g.ScorePerHit, ErrInvalid)
	case g.CompletionScore <= 0:
		return fmt.Errorf("game.completion_score must be positive, got %d: %w", g.CompletionScore, ErrInvalid)
	case g.HitCooldownMs <= 0:
		return fmt.Errorf("game.hit_cooldown_ms must be positive, got %d: %w", g.HitCooldownMs, ErrInvalid)
	case g.ProjectileSpeed <= 0:
		return fmt.Errorf("game.projectile_speed must be positive, got %g: %w", g.ProjectileSpeed, ErrInvalid)
	case g.ProjectileMaxRange <= 0:
		return fmt.Errorf("game.projectile_max_range must be positive, got %g: %w", g.ProjectileMaxRange, ErrInvalid)
	case len(g.Targets) == 0:
		return fmt.Errorf("game.targets must not be empty: %w", ErrInvalid)
	}
	for i, t := range g.Targets {
		if len(t) != 3 {
			return fmt.Errorf("game.targets[%d] must have 3 coordinates, got %d: %w", i, len(t), ErrInvalid)
		}
	}

	p := c.Player
	if p.MoveStep <= 0 || p.TurnStep <= 0 || p.ArenaExtent <= 0 {
		return fmt.Errorf("player steps and arena_extent must be positive: %w", ErrInvalid)
	}

	d := c.Display
	if d.FrameIntervalMs <= 0 || d.CellsPerUnit <= 0 || d.RowsPerUnit <= 0 {
		return fmt.Errorf("display values must be positive: %w", ErrInvalid)
	}

	if c.Notify.Addr != "" && !strings.HasPrefix(c.Notify.Path, "/") {
		return fmt.Errorf("notify.path must start with /, got %q: %w", c.Notify.Path, ErrInvalid)
	}
	if c.Notify.BlockID == "" {
		return fmt.Errorf("notify.block_id must not be empty: %w", ErrInvalid)
	}
	return nil
}

// Rules converts the game section into session rules
func (c *Config) Rules() engine.Rules {
	positions := make([]vmath.Vec3F, len(c.Game.Targets))
	for i, t := range c.Game.Targets {
		positions[i] = vmath.Vec3F{X: t[0], Y: t[1], Z: t[2]}
	}
	return engine.Rules{
		MaxAmmo:            c.Game.MaxAmmo,
		ScorePerHit:        c.Game.ScorePerHit,
		CompletionScore:    c.Game.CompletionScore,
		HitCooldown:        time.Duration(c.Game.HitCooldownMs) * time.Millisecond,
		ProjectileSpeed:    c.Game.ProjectileSpeed,
		ProjectileMaxRange: c.Game.ProjectileMaxRange,
		BlockID:            c.Notify.BlockID,
		TargetPositions:    positions,
	}
}

// FrameInterval returns the frame ticker period
func (c *Config) FrameInterval() time.Duration {
	return time.Duration(c.Display.FrameIntervalMs) * time.Millisecond
}

// PlayerStart returns the camera spawn position
func (c *Config) PlayerStart() vmath.Vec3F {
	return vmath.Vec3F{X: c.Player.StartX, Y: c.Player.EyeHeight, Z: c.Player.StartZ}
}
