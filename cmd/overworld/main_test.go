package main

import (
	"bytes"
	"testing"

	"github.com/automoto/overworld/config"
	"github.com/automoto/overworld/sim"
	"github.com/automoto/overworld/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestHeadlessPrintsSummary(t *testing.T) {
	out := execute(t, "headless", "--ticks", "120", "--log-level", "error", "--levels", "", "--autoplay")

	assert.Contains(t, out, "player: hp")
	assert.Contains(t, out, "enemies left:")
	assert.Contains(t, out, "enemy_spawned")
	assert.Contains(t, out, "attack_started")
}

func TestLevelsWithoutDirectory(t *testing.T) {
	out := execute(t, "levels", "--levels", "")

	assert.Contains(t, out, `"meadow" is built in`)
}

func TestUnknownLogLevelFails(t *testing.T) {
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"headless", "--ticks", "1", "--log-level", "loud"})
	assert.Error(t, rootCmd.Execute())
	flagLogLevel = "info"
}

func TestLoadLevelDefaultsToMeadow(t *testing.T) {
	flagLevelsDir = ""
	level, err := loadLevel(config.Default())
	require.NoError(t, err)

	assert.Equal(t, meadowName, level.Name)
	assert.NotEmpty(t, level.EnemySpawns)
}

func TestAutoplayWalksASquare(t *testing.T) {
	input := autoplay(2)

	first := input.Intent()
	assert.Equal(t, 1.0, first.MoveX)
	assert.True(t, first.Attack)
	assert.False(t, input.Intent().Attack)

	third := input.Intent()
	assert.Equal(t, 1.0, third.MoveY)
	assert.True(t, third.Attack)
}

func TestTrackerCountsWithoutStore(t *testing.T) {
	s, err := sim.New(nil)
	require.NoError(t, err)
	tr := &tracker{sim: s, level: "empty"}

	tr.observe([]systems.Event{{Kind: systems.EventEnemyDied}, {Kind: systems.EventEnemyDied}})
	assert.Equal(t, 2, tr.defeated)

	tr.observe([]systems.Event{{Kind: systems.EventPlayerDied}})
	assert.True(t, tr.dead)
}
