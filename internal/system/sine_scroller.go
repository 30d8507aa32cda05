// internal/system/sine_scroller.go
package system

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"go-follow-alert/internal/canvas"
	"go-follow-alert/internal/component"
	"go-follow-alert/internal/utils"
)

// ScrollerConfig parameterises the scripted text banner.
type ScrollerConfig struct {
	Message    string  `mapstructure:"message"`
	Speed      float64 `mapstructure:"speed"`
	Size       float64 `mapstructure:"size"`
	Spacing    float64 `mapstructure:"spacing"` // доля Size между началами глифов
	WaveWidth  float64 `mapstructure:"waveWidth"`
	WaveHeight float64 `mapstructure:"waveHeight"`
	BaselineY  float64 `mapstructure:"baselineY"` // < 0 — центр экрана
	TTL        float64 `mapstructure:"ttl"`
	Hue        float64 `mapstructure:"hue"`
	Saturation float64 `mapstructure:"saturation"`
	Lightness  float64 `mapstructure:"lightness"`
	HueStep    float64 `mapstructure:"hueStep"`
}

// DefaultScrollerConfig returns everything but the message.
func DefaultScrollerConfig() ScrollerConfig {
	return ScrollerConfig{
		Speed:      240,
		Size:       64,
		Spacing:    0.8,
		WaveWidth:  100,
		WaveHeight: 40,
		BaselineY:  -1,
		TTL:        30,
		Hue:        0.55,
		Saturation: 0.8,
		Lightness:  0.6,
		HueStep:    0.07,
	}
}

// Validate reports the first unusable parameter. A blank message is an
// error rather than an empty banner.
func (c ScrollerConfig) Validate() error {
	switch {
	case strings.TrimSpace(c.Message) == "":
		return fmt.Errorf("%w: message is required", ErrInvalidConfig)
	case c.Speed <= 0:
		return fmt.Errorf("%w: speed must be positive", ErrInvalidConfig)
	case c.Size <= 0 || c.Spacing <= 0:
		return fmt.Errorf("%w: size and spacing must be positive", ErrInvalidConfig)
	case c.WaveWidth <= 0:
		return fmt.Errorf("%w: wave width must be positive", ErrInvalidConfig)
	case c.TTL <= 0:
		return fmt.Errorf("%w: ttl must be positive", ErrInvalidConfig)
	}
	return nil
}

// sineScroller emits the message one glyph at a time from the right edge
// along a sine wave and finishes when the last glyph has left.
type sineScroller struct {
	cfg    ScrollerConfig
	glyphs []string
	next   int
	last   *component.Particle
}

func newSineScroller(cfg ScrollerConfig) (*sineScroller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	glyphs := make([]string, 0, len(cfg.Message))
	for _, r := range cfg.Message {
		glyphs = append(glyphs, string(r))
	}
	return &sineScroller{cfg: cfg, glyphs: glyphs}, nil
}

func (s *sineScroller) Kind() EffectKind { return KindSineScroller }

func (s *sineScroller) Pipeline() Pipeline {
	return Pipeline{MoveSineWave(s.cfg.WaveWidth, s.cfg.WaveHeight), Age, DieOffScreen}
}

func (s *sineScroller) WillFinish() bool { return true }

func (s *sineScroller) reset() {
	s.next = 0
	s.last = nil
}

// remaining returns how many glyphs are still queued.
func (s *sineScroller) remaining() int {
	return len(s.glyphs) - s.next
}

func (s *sineScroller) spawn(ps *ParticleSystem, size canvas.Size, _ float64) {
	if s.remaining() == 0 {
		return
	}
	startX := size.W + s.cfg.Size/2
	if ps.Len() > 0 && s.last != nil && s.last.Alive && startX-s.last.X < s.cfg.Size*s.cfg.Spacing {
		return
	}

	baseY := s.cfg.BaselineY
	if baseY < 0 {
		baseY = size.H / 2
	}
	p := component.NewParticle(startX, baseY+math.Sin(startX/s.cfg.WaveWidth)*s.cfg.WaveHeight, -s.cfg.Speed, 0, s.cfg.TTL)
	p.BaseY = baseY
	p.Size = s.cfg.Size
	p.Glyph = s.glyphs[s.next]
	p.Color = component.Color{
		H: utils.Wrap(s.cfg.Hue+s.cfg.HueStep*float64(s.next), 1),
		S: s.cfg.Saturation,
		L: s.cfg.Lightness,
		A: 1,
	}

	ps.Emit(p)
	s.next++
	s.last = p
}

func (s *sineScroller) settle(ps *ParticleSystem) {
	if s.remaining() == 0 && ps.Len() == 0 {
		ps.Finish()
	}
}

func (s *sineScroller) draw(sf canvas.Surface, p *component.Particle) {
	if strings.IndexFunc(p.Glyph, func(r rune) bool { return !unicode.IsSpace(r) }) < 0 {
		return
	}
	sf.FillText(p.Glyph, p.X, p.Y, p.Size, p.Color.NRGBA())
}
