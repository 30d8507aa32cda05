// internal/app/sequencer.go
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"go-follow-alert/internal/config"
	"go-follow-alert/internal/event"
	"go-follow-alert/internal/logger"
	"go-follow-alert/internal/metrics"
	"go-follow-alert/internal/system"
)

// ErrQueueFull is returned by Enqueue when the alert queue has no room.
var ErrQueueFull = errors.New("alert queue is full")

// Messenger sends the outbound acknowledgement. Say must not block; delivery
// is not reported back.
type Messenger interface {
	Say(text string)
}

// Container is the host element that holds the alert. The sequencer only
// toggles its visibility and sets the name it shows.
type Container interface {
	SetDisplayName(name string)
	SetVisible(visible bool)
}

// Alert is one queued follow alert.
type Alert struct {
	ID          string
	DisplayName string
	Received    time.Time
}

// Sequencer turns follow events into alerts: acknowledge, show the
// container, run the effects until they complete, hide, stop. Alerts are
// queued and played strictly one after another.
type Sequencer struct {
	engine    *Engine
	messenger Messenger
	container Container
	build     func(displayName string) ([]*system.ParticleSystem, error)
	queue     chan Alert
	log       zerolog.Logger
}

// NewSequencer creates a sequencer with a queue sized from the config.
func NewSequencer(e *Engine, messenger Messenger, container Container) *Sequencer {
	return &Sequencer{
		engine:    e,
		messenger: messenger,
		container: container,
		build:     e.BuildEffects,
		queue:     make(chan Alert, e.Config.Alert.QueueSize),
		log:       logger.WithComponent("sequencer"),
	}
}

// OnEvent accepts Following events from the dispatcher.
func (s *Sequencer) OnEvent(ev event.Event) {
	var name string
	switch p := ev.Data.(type) {
	case event.FollowPayload:
		name = p.FromName
	case *event.FollowPayload:
		if p != nil {
			name = p.FromName
		}
	default:
		s.log.Warn().Str("type", string(ev.Type)).Msgf("unexpected payload %T", ev.Data)
		return
	}
	if _, err := s.Enqueue(name); err != nil {
		s.log.Warn().Err(err).Str("display_name", name).Msg("alert dropped")
	}
}

// Enqueue queues an alert for displayName without blocking.
func (s *Sequencer) Enqueue(displayName string) (Alert, error) {
	a := Alert{
		ID:          uuid.NewString(),
		DisplayName: displayName,
		Received:    s.engine.Clock.Now(),
	}
	select {
	case s.queue <- a:
		metrics.AlertQueueSize.Set(float64(len(s.queue)))
		return a, nil
	default:
		metrics.AlertsTotal.WithLabelValues(metrics.StatusDropped).Inc()
		return a, ErrQueueFull
	}
}

// Run plays queued alerts until ctx ends.
func (s *Sequencer) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case a := <-s.queue:
			metrics.AlertQueueSize.Set(float64(len(s.queue)))
			if err := s.Play(ctx, a); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				s.log.Error().Err(err).Str("alert_id", a.ID).Msg("alert failed")
			}
		}
	}
}

// Play runs one alert to completion. It returns early only when the effects
// cannot be built or ctx ends.
func (s *Sequencer) Play(ctx context.Context, a Alert) error {
	log := logger.WithAlertID(s.log, a.ID)
	cfg := s.engine.Config.Alert
	clock := s.engine.Clock

	log.Info().Str("display_name", a.DisplayName).Msg("alert triggered")
	s.messenger.Say(config.Personalize(cfg.Greeting, a.DisplayName))

	systems, err := s.build(a.DisplayName)
	if err != nil {
		metrics.AlertsTotal.WithLabelValues(metrics.StatusFailed).Inc()
		return fmt.Errorf("alert %s: %w", a.ID, err)
	}

	shownAt := clock.Now()
	minShow := clock.After(cfg.ShowDuration)

	s.container.SetDisplayName(a.DisplayName)
	s.container.SetVisible(true)
	s.engine.Orchestrator.Start(systems...)

	if err := s.engine.Orchestrator.AwaitAllFinishing(ctx); err != nil {
		return err
	}
	if err := wait(ctx, minShow); err != nil {
		return err
	}
	log.Debug().Msg("effects complete, hiding")

	s.container.SetVisible(false)
	if err := wait(ctx, clock.After(cfg.HideDelay)); err != nil {
		return err
	}
	s.engine.Orchestrator.Stop()

	elapsed := clock.Now().Sub(shownAt)
	metrics.AlertsTotal.WithLabelValues(metrics.StatusPlayed).Inc()
	metrics.AlertDuration.Observe(elapsed.Seconds())
	log.Info().Dur("elapsed", elapsed).Msg("alert finished")
	return nil
}

func wait(ctx context.Context, ch <-chan time.Time) error {
	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
