// internal/event/types.go
package event

const (
	Following   EventType = "twitch.following"    // Новый фолловер
	ChatMessage EventType = "twitch.chat.message" // Сообщение в чате
)

// FollowPayload — данные события Following
type FollowPayload struct {
	FromName string
}

// ChatPayload — данные события ChatMessage
type ChatPayload struct {
	Channel string
	User    string
	Message string
	Self    bool
}

// NewFollow — удобный конструктор события Following
func NewFollow(fromName string) Event {
	return Event{Type: Following, Data: FollowPayload{FromName: fromName}}
}
