// internal/ui/banner.go
package ui

import (
	"image/color"

	"go-follow-alert/internal/canvas"
	"go-follow-alert/internal/config"
	"go-follow-alert/internal/utils"
)

// Banner — плашка алерта с именем фолловера и подписью
type Banner struct {
	X, Y, W, H float64
	Name       string
	Caption    string
	Alpha      float64 // 0 — не видна, 1 — полностью видна
}

// NewBanner создаёт плашку внизу по центру экрана
func NewBanner(caption string) *Banner {
	w := float64(config.ScreenWidth) / 2
	return &Banner{
		X:       (float64(config.ScreenWidth) - w) / 2,
		Y:       float64(config.ScreenHeight) - config.BannerHeight - config.BannerOffsetY,
		W:       w,
		H:       config.BannerHeight,
		Caption: caption,
	}
}

// Draw отрисовывает плашку с учётом прозрачности
func (b *Banner) Draw(s canvas.Surface) {
	if b.Alpha <= 0 {
		return
	}
	s.FillRect(b.X, b.Y, b.W, b.H, fade(config.BannerFillColor, b.Alpha))

	outline := []canvas.Point{
		{X: b.X, Y: b.Y},
		{X: b.X + b.W, Y: b.Y},
		{X: b.X + b.W, Y: b.Y + b.H},
		{X: b.X, Y: b.Y + b.H},
		{X: b.X, Y: b.Y},
	}
	s.StrokePath(outline, config.BannerStrokeSize, fade(config.BannerStrokeColor, b.Alpha))

	cx := b.X + b.W/2
	s.FillText(b.Name, cx, b.Y+b.H*0.4, config.BannerNameSize, fade(config.BannerNameColor, b.Alpha))
	if b.Caption != "" {
		s.FillText(b.Caption, cx, b.Y+b.H*0.75, config.BannerCaptionSz, fade(config.BannerCaptionColor, b.Alpha))
	}
}

// fade умножает альфу цвета на a
func fade(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(float64(c.A) * utils.Clamp(a, 0, 1))
	return c
}
