package config

import (
	"image/color"
	"time"
)

// HeroConfig contains the starting stats of the player character
type HeroConfig struct {
	Health int     `yaml:"health"`
	Level  int     `yaml:"level"`
	Damage int     `yaml:"damage"`
	Speed  float64 `yaml:"speed"` // world units per second

	// Height the hero stands at. Picked points are snapped to it.
	Height float64 `yaml:"height"`
	Radius float64 `yaml:"radius"`
}

// EnemyConfig contains the stats shared by every enemy
type EnemyConfig struct {
	Health     int     `yaml:"health"`
	ChaseSpeed float64 `yaml:"chaseSpeed"`
	Radius     float64 `yaml:"radius"`
}

// TreeConfig contains the stats shared by every tree
type TreeConfig struct {
	Health int     `yaml:"health"`
	Radius float64 `yaml:"radius"`
}

// LocomotionMode selects how the hero closes in on a target point
type LocomotionMode string

const (
	// LocomotionConstant translates along the facing at Speed per second.
	LocomotionConstant LocomotionMode = "constant"
	// LocomotionLerp eases toward the target by LerpRate*dt each tick.
	LocomotionLerp LocomotionMode = "lerp"
)

// LocomotionConfig contains click-to-move tuning
type LocomotionConfig struct {
	Mode     LocomotionMode `yaml:"mode"`
	LerpRate float64        `yaml:"lerpRate"`

	ArrivalRadius    float64 `yaml:"arrivalRadius"`    // ground target reached
	TreeReach        float64 `yaml:"treeReach"`        // attack a tree below this distance
	EnemyEngageRange float64 `yaml:"enemyEngageRange"` // attack an enemy at or below this distance while walking
	ClickReach       float64 `yaml:"clickReach"`       // a click this close attacks without walking
}

// CombatConfig contains attack session timing and kill rewards
type CombatConfig struct {
	TickInterval     time.Duration `yaml:"tickInterval"`
	DamageDelay      time.Duration `yaml:"damageDelay"`
	CorpseLifetime   time.Duration `yaml:"corpseLifetime"`
	RewardMaxHealth  int           `yaml:"rewardMaxHealth"`
	RewardHealBonus  int           `yaml:"rewardHealBonus"` // heal above the new max
	RewardDamage     int           `yaml:"rewardDamage"`
	RewardLevels     int           `yaml:"rewardLevels"`
	LifeBarFullWidth float64       `yaml:"lifeBarFullWidth"` // pixels at full health

	// Also drop the already scheduled damage application when a session is torn down.
	CancelPendingDamage bool `yaml:"cancelPendingDamage"`
}

// ChaseConfig contains the enemy pursuit thresholds
type ChaseConfig struct {
	EngageRadius  float64 `yaml:"engageRadius"`  // start chasing at or below
	MinDistance   float64 `yaml:"minDistance"`   // too close, stop
	LeashDistance float64 `yaml:"leashDistance"` // too far, give up
}

// RoundConfig contains the game over and quit rules of a round
type RoundConfig struct {
	TimeLimit time.Duration `yaml:"timeLimit"` // zero disables the limit
	FadeStep  float64       `yaml:"fadeStep"`  // per frame, on quit
}

// PickConfig contains the picking space layout. The space is laid out in
// whole space units, Scale of them per world unit. CellSize is in space
// units, ProbeSize in world units.
type PickConfig struct {
	Scale     float64 `yaml:"scale"`
	CellSize  int     `yaml:"cellSize"`
	ProbeSize float64 `yaml:"probeSize"`
}

// CameraConfig contains the top-down camera behavior
type CameraConfig struct {
	PixelsPerUnit   float64 `yaml:"pixelsPerUnit"`
	FollowSmoothing float64 `yaml:"followSmoothing"` // 0.0-1.0
}

// UIConfig contains HUD layout and colors
type UIConfig struct {
	LifeBarHeight float64
	LifeBarOffset float64 // pixels above the actor
	HUDMargin     float64

	GroundColor  color.RGBA
	HeroColor    color.RGBA
	EnemyColor   color.RGBA
	ChasingColor color.RGBA
	CorpseColor  color.RGBA
	TreeColor    color.RGBA
	TargetColor  color.RGBA
	LifeBarBg    color.RGBA
	LifeBarFg    color.RGBA
	HUDTextColor color.RGBA
}

// DebugConfig contains command-line debug options
type DebugConfig struct {
	SkipIntro bool // Start at character creation and skip the cutscene
}

type Config struct {
	Width     int
	Height    int
	TPS       int
	ArenaPath string // inside the bundled assets
}

var C *Config
var Hero HeroConfig
var Enemy EnemyConfig
var Tree TreeConfig
var Locomotion LocomotionConfig
var Combat CombatConfig
var Chase ChaseConfig
var Round RoundConfig
var Pick PickConfig
var Camera CameraConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	DarkGreen    = color.RGBA{R: 30, G: 90, B: 40, A: 255}
	Grass        = color.RGBA{R: 70, G: 110, B: 55, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Gray         = color.RGBA{R: 90, G: 90, B: 90, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:     640,
		Height:    360,
		TPS:       60,
		ArenaPath: "levels/arena.tmx",
	}

	Hero = HeroConfig{
		Health: 100,
		Level:  1,
		Damage: 20,
		Speed:  4,
		Height: 0,
		Radius: 0.4,
	}

	Enemy = EnemyConfig{
		Health:     100,
		ChaseSpeed: 1.5,
		Radius:     0.45,
	}

	Tree = TreeConfig{
		Health: 60,
		Radius: 0.6,
	}

	Locomotion = LocomotionConfig{
		Mode:             LocomotionConstant,
		LerpRate:         0.5,
		ArrivalRadius:    0.1,
		TreeReach:        1,
		EnemyEngageRange: 2,
		ClickReach:       1,
	}

	Combat = CombatConfig{
		TickInterval:        2000 * time.Millisecond,
		DamageDelay:         800 * time.Millisecond,
		CorpseLifetime:      10 * time.Second,
		RewardMaxHealth:     10,
		RewardHealBonus:     10,
		RewardDamage:        5,
		RewardLevels:        1,
		LifeBarFullWidth:    100,
		CancelPendingDamage: false,
	}

	Chase = ChaseConfig{
		EngageRadius:  4,
		MinDistance:   1,
		LeashDistance: 10,
	}

	Round = RoundConfig{
		TimeLimit: 240 * time.Second,
		FadeStep:  0.05,
	}

	Pick = PickConfig{
		Scale:     100,
		CellSize:  32,
		ProbeSize: 0.05,
	}

	Camera = CameraConfig{
		PixelsPerUnit:   24,
		FollowSmoothing: 0.1,
	}

	UI = UIConfig{
		LifeBarHeight: 3,
		LifeBarOffset: 14,
		HUDMargin:     8,

		GroundColor:  Grass,
		HeroColor:    LightBlue,
		EnemyColor:   LightRed,
		ChasingColor: Orange,
		CorpseColor:  Gray,
		TreeColor:    DarkGreen,
		TargetColor:  Yellow,
		LifeBarBg:    color.RGBA{R: 40, G: 40, B: 40, A: 200},
		LifeBarFg:    BrightGreen,
		HUDTextColor: White,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipIntro: false,
	}
}
