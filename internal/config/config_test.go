package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-follow-alert/internal/system"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(body), 0o644))
	return dir
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "localhost:6060", cfg.MetricsAddr)
	assert.Equal(t, 60, cfg.FrameRate)
	assert.False(t, cfg.Headless)
	assert.Equal(t, "Hello {name}, thank you for the follow!", cfg.Alert.Greeting)
	assert.Equal(t, 5*time.Second, cfg.Alert.ShowDuration)
	assert.Equal(t, 2*time.Second, cfg.Alert.HideDelay)
	assert.Equal(t, 400*time.Millisecond, cfg.Alert.FadeDuration)
	assert.Equal(t, 16, cfg.Alert.QueueSize)
	assert.Equal(t, []string{"zoomy_ships", "sine_scroller"}, cfg.Alert.Effects)
	assert.Equal(t, system.DefaultShipsConfig(), cfg.Ships)
	assert.Equal(t, "{name} just followed!", cfg.Scroller.Message)
	assert.Equal(t, 100.0, cfg.Scroller.WaveWidth)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := writeConfig(t, `{
		"headless": true,
		"triggerOnStart": ["Ada"],
		"alert": {"showDuration": "3s", "queueSize": 4, "effects": ["sine_scroller"]},
		"ships": {"edge": "right"},
		"scroller": {"message": "welcome {name}", "waveHeight": 12}
	}`)

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.True(t, cfg.Headless)
	assert.Equal(t, []string{"Ada"}, cfg.TriggerOnStart)
	assert.Equal(t, 3*time.Second, cfg.Alert.ShowDuration)
	assert.Equal(t, 2*time.Second, cfg.Alert.HideDelay, "untouched keys keep defaults")
	assert.Equal(t, 4, cfg.Alert.QueueSize)
	assert.Equal(t, []string{"sine_scroller"}, cfg.Alert.Effects)
	assert.Equal(t, system.EdgeRight, cfg.Ships.Edge)
	assert.Equal(t, 100*time.Millisecond, cfg.Ships.SpawnInterval)
	assert.Equal(t, "welcome {name}", cfg.Scroller.Message)
	assert.Equal(t, 12.0, cfg.Scroller.WaveHeight)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	dir := writeConfig(t, `{"logLevel": "warn"}`)
	t.Setenv("OVERLAY_LOGLEVEL", "debug")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"alert": `},
		{"zero frame rate", `{"frameRate": 0}`},
		{"zero queue", `{"alert": {"queueSize": 0}}`},
		{"negative delay", `{"alert": {"hideDelay": "-1s"}}`},
		{"no effects", `{"alert": {"effects": []}}`},
		{"unknown effect", `{"alert": {"effects": ["fireworks"]}}`},
		{"bad ships", `{"ships": {"edge": "top"}}`},
		{"blank scroller message", `{"scroller": {"message": " "}}`},
		{"zero scroller wave width", `{"scroller": {"waveWidth": 0}}`},
		{"ships spawn fully off screen", `{"ships": {"spawnInset": 200}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoad_BlankMessageAllowedWithoutScroller(t *testing.T) {
	cfg, err := Load(writeConfig(t, `{"alert": {"effects": ["zoomy_ships"]}, "scroller": {"message": ""}}`))
	require.NoError(t, err)
	assert.Empty(t, cfg.Scroller.Message)
}

func TestLoad_ScrollerSettingsCheckedOnlyWhenUsed(t *testing.T) {
	_, err := Load(writeConfig(t, `{"alert": {"effects": ["sine_scroller"]}, "scroller": {"waveWidth": 0}}`))
	assert.ErrorIs(t, err, system.ErrInvalidConfig)

	cfg, err := Load(writeConfig(t, `{"alert": {"effects": ["zoomy_ships"]}, "scroller": {"waveWidth": 0}}`))
	require.NoError(t, err)
	assert.Zero(t, cfg.Scroller.WaveWidth)
}

func TestLoad_PlaceholderOnlyMessageIsValid(t *testing.T) {
	cfg, err := Load(writeConfig(t, `{"scroller": {"message": "{name}"}}`))
	require.NoError(t, err)
	assert.Equal(t, "{name}", cfg.Scroller.Message)
}

func TestLoad_BaselineAtTopEdge(t *testing.T) {
	cfg, err := Load(writeConfig(t, `{"scroller": {"baselineY": 0}}`))
	require.NoError(t, err)
	assert.Zero(t, cfg.Scroller.BaselineY)

	cfg, err = Load(t.TempDir())
	require.NoError(t, err)
	assert.Negative(t, cfg.Scroller.BaselineY, "centre by default")
}

func TestPersonalize(t *testing.T) {
	assert.Equal(t, "Hello Ada, thank you for the follow!", Personalize("Hello {name}, thank you for the follow!", "Ada"))
	assert.Equal(t, "Ada Ada", Personalize("{name} {name}", "Ada"))
	assert.Equal(t, "no placeholder", Personalize("no placeholder", "Ada"))
}

func TestTickPeriod(t *testing.T) {
	assert.Equal(t, time.Second/60, TickPeriod())
}
