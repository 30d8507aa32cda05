package app

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-follow-alert/internal/event"
	"go-follow-alert/internal/logger"
)

func TestLogMessengerAndChatLogger(t *testing.T) {
	var buf bytes.Buffer
	logger.InitWithWriter("debug", false, &buf)
	t.Cleanup(func() { logger.InitWithWriter("info", false, &bytes.Buffer{}) })

	NewLogMessenger().Say("Hello Ada, thank you for the follow!")
	chat := NewChatLogger()
	chat.OnEvent(event.Event{Type: event.ChatMessage, Data: event.ChatPayload{
		Channel: "#overlay", User: "grace", Message: "hype",
	}})
	chat.OnEvent(event.NewFollow("Ada"))

	out := buf.String()
	assert.Contains(t, out, `"component":"say"`)
	assert.Contains(t, out, "thank you for the follow")
	assert.Contains(t, out, `"message":"hype"`)
	assert.Contains(t, out, `"from_name":"Ada"`)
}
