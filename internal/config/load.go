// internal/config/load.go
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"go-follow-alert/internal/system"
)

// AlertConfig holds alert sequencing settings.
type AlertConfig struct {
	Greeting     string        `mapstructure:"greeting"`
	Caption      string        `mapstructure:"caption"`
	ShowDuration time.Duration `mapstructure:"showDuration"`
	HideDelay    time.Duration `mapstructure:"hideDelay"`
	FadeDuration time.Duration `mapstructure:"fadeDuration"`
	QueueSize    int           `mapstructure:"queueSize"`
	Effects      []string      `mapstructure:"effects"`
}

// Config is the runtime configuration of the overlay.
type Config struct {
	LogLevel       string                `mapstructure:"logLevel"`
	PrettyLogs     bool                  `mapstructure:"prettyLogs"`
	MetricsAddr    string                `mapstructure:"metricsAddr"`
	Headless       bool                  `mapstructure:"headless"`
	ShowHUD        bool                  `mapstructure:"showHud"`
	FrameRate      int                   `mapstructure:"frameRate"`
	Seed           int64                 `mapstructure:"seed"`
	TriggerOnStart []string              `mapstructure:"triggerOnStart"`
	Alert          AlertConfig           `mapstructure:"alert"`
	Ships          system.ShipsConfig    `mapstructure:"ships"`
	Scroller       system.ScrollerConfig `mapstructure:"scroller"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("prettyLogs", false)
	v.SetDefault("metricsAddr", "localhost:6060")
	v.SetDefault("headless", false)
	v.SetDefault("showHud", false)
	v.SetDefault("frameRate", 60)
	v.SetDefault("seed", 0)
	v.SetDefault("triggerOnStart", []string{})

	v.SetDefault("alert.greeting", "Hello {name}, thank you for the follow!")
	v.SetDefault("alert.caption", "just followed!")
	v.SetDefault("alert.showDuration", "5s")
	v.SetDefault("alert.hideDelay", "2s")
	v.SetDefault("alert.fadeDuration", "400ms")
	v.SetDefault("alert.queueSize", 16)
	v.SetDefault("alert.effects", []string{string(system.KindZoomyShips), string(system.KindSineScroller)})

	ships := system.DefaultShipsConfig()
	v.SetDefault("ships.spawnInterval", ships.SpawnInterval.String())
	v.SetDefault("ships.minSpeed", ships.MinSpeed)
	v.SetDefault("ships.maxSpeed", ships.MaxSpeed)
	v.SetDefault("ships.ttl", ships.TTL)
	v.SetDefault("ships.size", ships.Size)
	v.SetDefault("ships.spawnInset", ships.SpawnInset)
	v.SetDefault("ships.edge", string(ships.Edge))
	v.SetDefault("ships.saturation", ships.Saturation)
	v.SetDefault("ships.lightness", ships.Lightness)
	v.SetDefault("ships.maxHueDrift", ships.MaxHueDrift)
	v.SetDefault("ships.lineWidth", ships.LineWidth)

	scroller := system.DefaultScrollerConfig()
	v.SetDefault("scroller.message", "{name} just followed!")
	v.SetDefault("scroller.speed", scroller.Speed)
	v.SetDefault("scroller.size", scroller.Size)
	v.SetDefault("scroller.spacing", scroller.Spacing)
	v.SetDefault("scroller.waveWidth", scroller.WaveWidth)
	v.SetDefault("scroller.waveHeight", scroller.WaveHeight)
	v.SetDefault("scroller.baselineY", scroller.BaselineY)
	v.SetDefault("scroller.ttl", scroller.TTL)
	v.SetDefault("scroller.hue", scroller.Hue)
	v.SetDefault("scroller.saturation", scroller.Saturation)
	v.SetDefault("scroller.lightness", scroller.Lightness)
	v.SetDefault("scroller.hueStep", scroller.HueStep)
}

// Load reads overlay.cfg.json from configDir on top of the defaults.
// A missing file is not an error; OVERLAY_* environment variables override
// both.
func Load(configDir string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(ConfigFileName)
	v.SetConfigType("json")
	v.AddConfigPath(configDir)
	v.SetEnvPrefix("overlay")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings that are not tied to a particular alert.
func (c *Config) Validate() error {
	if c.FrameRate <= 0 {
		return fmt.Errorf("frameRate must be positive, got %d", c.FrameRate)
	}
	if c.Alert.QueueSize <= 0 {
		return fmt.Errorf("alert.queueSize must be positive, got %d", c.Alert.QueueSize)
	}
	if c.Alert.ShowDuration < 0 || c.Alert.HideDelay < 0 || c.Alert.FadeDuration < 0 {
		return errors.New("alert durations must not be negative")
	}
	if len(c.Alert.Effects) == 0 {
		return errors.New("alert.effects must name at least one effect")
	}
	for _, name := range c.Alert.Effects {
		switch system.EffectKind(name) {
		case system.KindZoomyShips:
			if err := c.Ships.Validate(); err != nil {
				return fmt.Errorf("ships: %w", err)
			}
		case system.KindSineScroller:
			sc := c.Scroller
			sc.Message = Personalize(sc.Message, "x")
			if err := sc.Validate(); err != nil {
				return fmt.Errorf("scroller: %w", err)
			}
		default:
			return fmt.Errorf("%w: unknown effect kind %q", system.ErrInvalidConfig, name)
		}
	}
	return nil
}

// Personalize replaces the name placeholder in a template.
func Personalize(template, name string) string {
	return strings.ReplaceAll(template, NamePlaceholder, name)
}
