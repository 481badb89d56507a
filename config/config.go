package config

import (
	"errors"
	"fmt"
)

// Config gathers every tunable of the simulation and its presentation shell.
type Config struct {
	Physics   PhysicsConfig   `yaml:"physics"`
	Timing    TimingConfig    `yaml:"timing"`
	Player    PlayerConfig    `yaml:"player"`
	Enemy     EnemyConfig     `yaml:"enemy"`
	Stomp     StompConfig     `yaml:"stomp"`
	Rewards   RewardConfig    `yaml:"rewards"`
	Collision CollisionConfig `yaml:"collision"`
	Audio     AudioConfig     `yaml:"audio"`
	Display   DisplayConfig   `yaml:"display"`
}

// PhysicsConfig contains global forces and vertical limits. Horizontal and
// floor bounds come from the level.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`        // px/s^2, positive is down
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // terminal fall speed
	MaxRiseSpeed float64 `yaml:"max_rise_speed"`
	CeilingY     float64 `yaml:"ceiling_y"` // actors are never placed above this
}

// TimingConfig controls the fixed-step loop
type TimingConfig struct {
	FixedStep        float64 `yaml:"fixed_step"`      // seconds per simulation step
	MaxFrameDelta    float64 `yaml:"max_frame_delta"` // per-callback clamp, seconds
	MaxStepsPerFrame int     `yaml:"max_steps_per_frame"`
	FrictionRefHz    float64 `yaml:"friction_ref_hz"` // frame rate friction factors were tuned at
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Dimensions
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Movement
	MoveSpeed       float64 `yaml:"move_speed"`
	AirMoveSpeed    float64 `yaml:"air_move_speed"`
	GroundSmoothing float64 `yaml:"ground_smoothing"`
	AirSmoothing    float64 `yaml:"air_smoothing"`
	GroundFriction  float64 `yaml:"ground_friction"`
	AirFriction     float64 `yaml:"air_friction"`
	StopEpsilon     float64 `yaml:"stop_epsilon"` // |vx| below this snaps to zero

	// Jumping
	JumpVelocity float64 `yaml:"jump_velocity"`
	CoyoteTime   float64 `yaml:"coyote_time"`
	MaxJumps     int     `yaml:"max_jumps"`
	CeilingKick  float64 `yaml:"ceiling_kick"` // vy after bonking a ceiling
}

// EnemyConfig contains patrol enemy values
type EnemyConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	PatrolSpeed    float64 `yaml:"patrol_speed"`
	MinPatrolSpeed float64 `yaml:"min_patrol_speed"` // below this the patrol speed is restored
	CeilingKick    float64 `yaml:"ceiling_kick"`
}

// StompConfig decides when player/enemy contact kills the enemy
type StompConfig struct {
	Threshold    float64 `yaml:"threshold"`     // max player-bottom to enemy-top penetration
	BounceFactor float64 `yaml:"bounce_factor"` // fraction of jump velocity
}

// RewardConfig holds the points granted per reward source
type RewardConfig struct {
	Block int `yaml:"block"`
	Coin  int `yaml:"coin"`
	Stomp int `yaml:"stomp"`
}

// CollisionConfig tunes the AABB resolver and the broad-phase grid
type CollisionConfig struct {
	Epsilon       float64 `yaml:"epsilon"`        // gap left between resolved faces
	MotionEpsilon float64 `yaml:"motion_epsilon"` // |v| below this counts as not moving
	MaxPasses     int     `yaml:"max_passes"`
	CellSize      int     `yaml:"cell_size"`
}

// DisplayConfig contains window settings for the ebiten shell
type DisplayConfig struct {
	WindowWidth  int    `yaml:"window_width"`
	WindowHeight int    `yaml:"window_height"`
	Title        string `yaml:"title"`
}

// Default returns the stock tuning.
func Default() Config {
	return Config{
		Physics: PhysicsConfig{
			Gravity:      2400,
			MaxFallSpeed: 2200,
			MaxRiseSpeed: 9999,
			CeilingY:     -2000,
		},
		Timing: TimingConfig{
			FixedStep:        1.0 / 120.0,
			MaxFrameDelta:    0.033,
			MaxStepsPerFrame: 8,
			FrictionRefHz:    60,
		},
		Player: PlayerConfig{
			Width:           34,
			Height:          44,
			MoveSpeed:       320,
			AirMoveSpeed:    280,
			GroundSmoothing: 0.2,
			AirSmoothing:    0.1,
			GroundFriction:  0.86,
			AirFriction:     0.96,
			StopEpsilon:     1,
			JumpVelocity:    800,
			CoyoteTime:      0.12,
			MaxJumps:        2,
			CeilingKick:     10,
		},
		Enemy: EnemyConfig{
			Width:          34,
			Height:         34,
			PatrolSpeed:    70,
			MinPatrolSpeed: 10,
			CeilingKick:    40,
		},
		Stomp: StompConfig{
			Threshold:    14,
			BounceFactor: 0.65,
		},
		Rewards: RewardConfig{
			Block: 1,
			Coin:  1,
			Stomp: 3,
		},
		Collision: CollisionConfig{
			Epsilon:       0.01,
			MotionEpsilon: 0.0001,
			MaxPasses:     4,
			CellSize:      40,
		},
		Audio: DefaultAudio(),
		Display: DisplayConfig{
			WindowWidth:  960,
			WindowHeight: 540,
			Title:        "coinhop",
		},
	}
}

var ErrInvalid = errors.New("invalid config")

// Validate rejects values the simulation cannot run with.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Timing.FixedStep > 0, "timing.fixed_step must be positive, got %v", c.Timing.FixedStep)
	check(c.Timing.MaxFrameDelta > 0, "timing.max_frame_delta must be positive, got %v", c.Timing.MaxFrameDelta)
	check(c.Timing.MaxStepsPerFrame >= 1, "timing.max_steps_per_frame must be at least 1, got %d", c.Timing.MaxStepsPerFrame)
	check(c.Timing.FrictionRefHz > 0, "timing.friction_ref_hz must be positive")
	check(c.Physics.MaxFallSpeed > 0, "physics.max_fall_speed must be positive")
	check(c.Player.Width > 0 && c.Player.Height > 0, "player size must be positive")
	check(c.Enemy.Width > 0 && c.Enemy.Height > 0, "enemy size must be positive")
	check(c.Player.MaxJumps >= 0, "player.max_jumps must not be negative")
	check(inUnit(c.Player.GroundFriction) && inUnit(c.Player.AirFriction), "player friction must be in (0, 1]")
	check(inUnit(c.Player.GroundSmoothing) && inUnit(c.Player.AirSmoothing), "player smoothing must be in (0, 1]")
	check(c.Collision.MaxPasses >= 1, "collision.max_passes must be at least 1")
	check(c.Collision.CellSize > 0, "collision.cell_size must be positive")
	check(c.Audio.SampleRate > 0, "audio.sample_rate must be positive")

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}

func inUnit(v float64) bool {
	return v > 0 && v <= 1
}
