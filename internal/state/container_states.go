// internal/state/container_states.go
package state

import (
	"go-follow-alert/internal/canvas"
	"go-follow-alert/internal/ui"
	"go-follow-alert/internal/utils"
)

// Убеждаемся, что состояния соответствуют интерфейсу State
var (
	_ State = (*HiddenState)(nil)
	_ State = (*VisibleState)(nil)
)

// VisibleState — контейнер показан, плашка проявляется за fade секунд
type VisibleState struct {
	banner *ui.Banner
	fade   float64
}

func NewVisibleState(banner *ui.Banner, fade float64) *VisibleState {
	return &VisibleState{banner: banner, fade: fade}
}

func (v *VisibleState) Enter() {
	if v.fade <= 0 {
		v.banner.Alpha = 1
	}
}

func (v *VisibleState) Update(deltaTime float64) {
	v.banner.Alpha = step(v.banner.Alpha, deltaTime, v.fade, 1)
}

func (v *VisibleState) Draw(s canvas.Surface) {
	v.banner.Draw(s)
}

func (v *VisibleState) Exit() {}

// HiddenState — контейнер скрыт, плашка гаснет за fade секунд
type HiddenState struct {
	banner *ui.Banner
	fade   float64
}

func NewHiddenState(banner *ui.Banner, fade float64) *HiddenState {
	return &HiddenState{banner: banner, fade: fade}
}

func (h *HiddenState) Enter() {
	if h.fade <= 0 {
		h.banner.Alpha = 0
	}
}

func (h *HiddenState) Update(deltaTime float64) {
	h.banner.Alpha = step(h.banner.Alpha, deltaTime, h.fade, 0)
}

func (h *HiddenState) Draw(s canvas.Surface) {
	h.banner.Draw(s) // Пока не погасла полностью
}

func (h *HiddenState) Exit() {}

// step двигает alpha к target со скоростью 1/fade в секунду
func step(alpha, deltaTime, fade, target float64) float64 {
	if fade <= 0 {
		return target
	}
	if target > alpha {
		return utils.Clamp(alpha+deltaTime/fade, 0, target)
	}
	return utils.Clamp(alpha-deltaTime/fade, target, 1)
}
