// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	TPS          = 60 // логических тиков симуляции в секунду

	ConfigFileName = "overlay.cfg.json"

	// NamePlaceholder подставляется в шаблоны приветствия и бегущей строки
	NamePlaceholder = "{name}"

	BannerHeight     = 120.0
	BannerOffsetY    = 48.0
	BannerNameSize   = 44.0
	BannerCaptionSz  = 22.0
	BannerStrokeSize = 2.0

	IndicatorRadius   = 8.0
	IndicatorTextSize = 16.0
)

var (
	// BackgroundColor — полупрозрачная заливка кадра, rgba(0,0,0,0.3)
	BackgroundColor      = color.NRGBA{0, 0, 0, 77}
	BannerFillColor      = color.NRGBA{20, 20, 30, 220}
	BannerStrokeColor    = color.NRGBA{240, 240, 240, 255}
	BannerNameColor      = color.NRGBA{255, 215, 0, 255}
	BannerCaptionColor   = color.NRGBA{240, 240, 240, 255}
	IndicatorIdleColor   = color.NRGBA{90, 90, 90, 255}
	IndicatorActiveColor = color.NRGBA{80, 220, 120, 255}
	DebugFollowerNames   = []string{"Ada", "Grace", "Linus", "Ken", "Barbara", "Edsger"}
)

// TickPeriod — период логического тика
func TickPeriod() time.Duration {
	return time.Second / TPS
}
