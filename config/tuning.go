package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning groups every gameplay value that can be overridden from a YAML file.
// Keys missing from the file keep their current value.
type Tuning struct {
	Hero       HeroConfig       `yaml:"hero"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Tree       TreeConfig       `yaml:"tree"`
	Locomotion LocomotionConfig `yaml:"locomotion"`
	Combat     CombatConfig     `yaml:"combat"`
	Chase      ChaseConfig      `yaml:"chase"`
	Round      RoundConfig      `yaml:"round"`
	Pick       PickConfig       `yaml:"pick"`
	Camera     CameraConfig     `yaml:"camera"`
}

// CurrentTuning returns a copy of the active gameplay values
func CurrentTuning() Tuning {
	return Tuning{
		Hero:       Hero,
		Enemy:      Enemy,
		Tree:       Tree,
		Locomotion: Locomotion,
		Combat:     Combat,
		Chase:      Chase,
		Round:      Round,
		Pick:       Pick,
		Camera:     Camera,
	}
}

// Apply makes t the active gameplay configuration
func (t Tuning) Apply() {
	Hero = t.Hero
	Enemy = t.Enemy
	Tree = t.Tree
	Locomotion = t.Locomotion
	Combat = t.Combat
	Chase = t.Chase
	Round = t.Round
	Pick = t.Pick
	Camera = t.Camera
}

// DecodeTuning reads YAML overrides on top of the active values.
// Unknown keys are rejected.
func DecodeTuning(r io.Reader) (Tuning, error) {
	t := CurrentTuning()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return Tuning{}, fmt.Errorf("failed to parse tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, fmt.Errorf("invalid tuning: %w", err)
	}
	return t, nil
}

// LoadTuningFile decodes the file at path and applies it
func LoadTuningFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open tuning file: %w", err)
	}
	defer f.Close()

	t, err := DecodeTuning(f)
	if err != nil {
		return err
	}
	t.Apply()
	return nil
}

// Validate checks that the values can drive a round
func (t *Tuning) Validate() error {
	if t.Hero.Health <= 0 {
		return fmt.Errorf("hero health must be positive, got %d", t.Hero.Health)
	}
	if t.Hero.Damage <= 0 {
		return fmt.Errorf("hero damage must be positive, got %d", t.Hero.Damage)
	}
	if t.Hero.Speed <= 0 {
		return fmt.Errorf("hero speed must be positive, got %.2f", t.Hero.Speed)
	}
	if t.Enemy.Health <= 0 || t.Tree.Health <= 0 {
		return fmt.Errorf("enemy and tree health must be positive, got %d and %d", t.Enemy.Health, t.Tree.Health)
	}
	switch t.Locomotion.Mode {
	case LocomotionConstant, LocomotionLerp:
	default:
		return fmt.Errorf("unknown locomotion mode %q", t.Locomotion.Mode)
	}
	if t.Locomotion.Mode == LocomotionLerp && t.Locomotion.LerpRate <= 0 {
		return fmt.Errorf("lerp rate must be positive, got %.2f", t.Locomotion.LerpRate)
	}
	if t.Combat.TickInterval <= 0 || t.Combat.DamageDelay < 0 || t.Combat.CorpseLifetime < 0 {
		return fmt.Errorf("combat timings must not be negative and the tick interval must be positive")
	}
	if t.Combat.DamageDelay >= t.Combat.TickInterval {
		return fmt.Errorf("damage delay (%s) must be shorter than the tick interval (%s)", t.Combat.DamageDelay, t.Combat.TickInterval)
	}
	if t.Chase.MinDistance >= t.Chase.EngageRadius || t.Chase.EngageRadius >= t.Chase.LeashDistance {
		return fmt.Errorf("chase thresholds must satisfy min (%.2f) < engage (%.2f) < leash (%.2f)",
			t.Chase.MinDistance, t.Chase.EngageRadius, t.Chase.LeashDistance)
	}
	if t.Round.TimeLimit < 0 {
		return fmt.Errorf("round time limit must not be negative, got %s", t.Round.TimeLimit)
	}
	if t.Pick.CellSize <= 0 || t.Pick.ProbeSize <= 0 {
		return fmt.Errorf("pick cell and probe sizes must be positive")
	}
	// resolv spans an object over cells from X to X+W-1
	if t.Pick.Scale*t.Pick.ProbeSize < 1 {
		return fmt.Errorf("pick probe must cover at least one space unit, got %.2f", t.Pick.Scale*t.Pick.ProbeSize)
	}
	if t.Camera.PixelsPerUnit <= 0 {
		return fmt.Errorf("camera scale must be positive, got %.2f", t.Camera.PixelsPerUnit)
	}
	return nil
}
