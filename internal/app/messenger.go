// internal/app/messenger.go
package app

import (
	"github.com/rs/zerolog"

	"go-follow-alert/internal/event"
	"go-follow-alert/internal/logger"
)

// LogMessenger is the outbound acknowledgement of a host without a chat
// bot: it only logs what would be said.
type LogMessenger struct {
	log zerolog.Logger
}

func NewLogMessenger() *LogMessenger {
	return &LogMessenger{log: logger.WithComponent("say")}
}

func (m *LogMessenger) Say(text string) {
	m.log.Info().Str("text", text).Msg("say")
}

// ChatLogger logs inbound chat and follow events at debug level.
type ChatLogger struct {
	log zerolog.Logger
}

func NewChatLogger() *ChatLogger {
	return &ChatLogger{log: logger.WithComponent("chat")}
}

func (c *ChatLogger) OnEvent(ev event.Event) {
	switch p := ev.Data.(type) {
	case event.ChatPayload:
		c.log.Debug().
			Str("channel", p.Channel).
			Str("user", p.User).
			Bool("self", p.Self).
			Str("message", p.Message).
			Msg("chat in alerts")
	case event.FollowPayload:
		c.log.Debug().Str("from_name", p.FromName).Msg("follow")
	default:
		c.log.Debug().Str("type", string(ev.Type)).Msg("event")
	}
}
