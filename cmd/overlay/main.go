// cmd/overlay/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"go-follow-alert/internal/app"
	"go-follow-alert/internal/canvas"
	"go-follow-alert/internal/config"
	"go-follow-alert/internal/event"
	"go-follow-alert/internal/logger"
	"go-follow-alert/internal/state"
	"go-follow-alert/internal/ui"
	"go-follow-alert/pkg/render"
)

// AppGame — адаптер ebiten: Update — тик симуляции, Draw — тик отрисовки
type AppGame struct {
	ctx       context.Context // отмена по SIGINT/SIGTERM закрывает окно
	engine    *app.Engine
	scheduler *app.Scheduler
	surface   *render.Surface
}

func (a *AppGame) Update() error {
	select {
	case <-a.ctx.Done():
		return ebiten.Termination
	default:
	}
	// F — тестовый фолловер
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		a.engine.Events.Dispatch(event.NewFollow(a.engine.Rng.Choose(config.DebugFollowerNames)))
	}
	a.scheduler.Tick()
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.surface.SetTarget(screen)
	a.scheduler.Frame(a.surface)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configDir := "."
	if len(os.Args) > 1 {
		configDir = os.Args[1]
	}
	cfg, err := config.Load(configDir)
	if err != nil {
		logger.Init("info", true)
		logger.Logger.Fatal().Err(err).Str("dir", configDir).Msg("failed to load config")
	}
	logger.Init(cfg.LogLevel, cfg.PrettyLogs)
	log := logger.WithComponent("main")

	if cfg.MetricsAddr != "" {
		http.Handle("/metrics", promhttp.Handler())
		go func() {
			log.Info().Str("addr", cfg.MetricsAddr).Msg("metrics and pprof listening")
			if err := http.ListenAndServe(cfg.MetricsAddr, nil); err != nil {
				log.Error().Err(err).Msg("metrics server stopped")
			}
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine := app.NewEngine(cfg, nil)
	container := state.NewAlertContainer(ui.NewBanner(cfg.Alert.Caption), cfg.Alert.FadeDuration)
	sequencer := app.NewSequencer(engine, app.NewLogMessenger(), container)

	overlays := []app.Overlay{container}
	if cfg.ShowHUD {
		hud := ui.NewStateIndicator(config.IndicatorRadius*3, config.IndicatorRadius*3, config.IndicatorRadius)
		hud.Active = container.Visible
		hud.Label = func() string {
			return fmt.Sprintf("particles %d", engine.Orchestrator.ParticleCount())
		}
		engine.Events.Subscribe(event.Following, event.ListenerFunc(func(event.Event) { hud.Pulse() }))
		overlays = append(overlays, hud)
	}
	scheduler := app.NewScheduler(engine, overlays...)

	chat := app.NewChatLogger()
	engine.Events.Subscribe(event.Following, chat)
	engine.Events.Subscribe(event.ChatMessage, chat)
	engine.Events.Subscribe(event.Following, sequencer)

	go func() {
		if err := sequencer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error().Err(err).Msg("sequencer stopped")
		}
	}()

	for _, name := range cfg.TriggerOnStart {
		engine.Events.Dispatch(event.NewFollow(name))
	}

	if cfg.Headless {
		if err := scheduler.Run(ctx, canvas.NewRecorder()); err != nil && !errors.Is(err, context.Canceled) {
			log.Fatal().Err(err).Msg("scheduler failed")
		}
		return
	}

	surface, err := render.NewSurface()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create surface")
	}
	ebiten.SetTPS(config.TPS)
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Follow Alert")
	if err := ebiten.RunGame(&AppGame{ctx: ctx, engine: engine, scheduler: scheduler, surface: surface}); err != nil {
		log.Fatal().Err(err).Msg("game loop failed")
	}
}
