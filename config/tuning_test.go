package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTuningKeepsDefaultsForMissingKeys(t *testing.T) {
	in := `
hero:
  damage: 35
combat:
  cancelPendingDamage: true
  tickInterval: 1500ms
locomotion:
  mode: lerp
`
	tuning, err := DecodeTuning(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, 35, tuning.Hero.Damage)
	assert.Equal(t, Hero.Health, tuning.Hero.Health)
	assert.True(t, tuning.Combat.CancelPendingDamage)
	assert.Equal(t, 1500*time.Millisecond, tuning.Combat.TickInterval)
	assert.Equal(t, Combat.DamageDelay, tuning.Combat.DamageDelay)
	assert.Equal(t, LocomotionLerp, tuning.Locomotion.Mode)
	assert.Equal(t, Chase, tuning.Chase)
}

func TestDecodeTuningEmptyInput(t *testing.T) {
	tuning, err := DecodeTuning(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, CurrentTuning(), tuning)
}

func TestDecodeTuningRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"unknown key":       "hero:\n  mana: 3\n",
		"unknown mode":      "locomotion:\n  mode: teleport\n",
		"negative damage":   "hero:\n  damage: -1\n",
		"delay after tick":  "combat:\n  damageDelay: 3s\n",
		"inverted chase":    "chase:\n  engageRadius: 12\n",
		"malformed yaml":    "hero: [",
		"negative time cap": "round:\n  timeLimit: -1s\n",
		"sub-unit probe":    "pick:\n  probeSize: 0.001\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeTuning(strings.NewReader(in))
			assert.Error(t, err)
		})
	}
}

func TestApplyRoundTrip(t *testing.T) {
	saved := CurrentTuning()
	t.Cleanup(saved.Apply)

	tuning := CurrentTuning()
	tuning.Hero.Damage = 99
	tuning.Apply()

	assert.Equal(t, 99, Hero.Damage)
	assert.Equal(t, tuning, CurrentTuning())
}
