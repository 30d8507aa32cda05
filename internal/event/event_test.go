package event

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *recorder) OnEvent(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func TestDispatcher_DeliversByType(t *testing.T) {
	d := NewDispatcher()
	follows, chats := &recorder{}, &recorder{}
	d.Subscribe(Following, follows)
	d.Subscribe(ChatMessage, chats)

	d.Dispatch(NewFollow("Ada"))

	assert.Equal(t, 1, follows.len())
	assert.Zero(t, chats.len())
	assert.Equal(t, FollowPayload{FromName: "Ada"}, follows.events[0].Data)
}

func TestDispatcher_Unsubscribe(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(Following, a)
	d.Subscribe(Following, b)
	d.Subscribe(Following, ListenerFunc(func(Event) {}))

	d.Unsubscribe(Following, a)
	d.Unsubscribe(Following, ListenerFunc(func(Event) {}))
	d.Dispatch(NewFollow("Grace"))

	assert.Zero(t, a.len())
	assert.Equal(t, 1, b.len())
}

func TestDispatcher_ListenerFunc(t *testing.T) {
	d := NewDispatcher()
	var got []string
	d.Subscribe(Following, ListenerFunc(func(e Event) {
		got = append(got, e.Data.(FollowPayload).FromName)
	}))

	d.Dispatch(NewFollow("Ken"))
	d.Dispatch(Event{Type: ChatMessage, Data: ChatPayload{Message: "hi"}})

	assert.Equal(t, []string{"Ken"}, got)
}

func TestDispatcher_SubscribeDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	late := &recorder{}
	d.Subscribe(Following, ListenerFunc(func(Event) {
		d.Subscribe(Following, late)
	}))

	d.Dispatch(NewFollow("Linus"))
	assert.Zero(t, late.len(), "listeners added mid-dispatch wait for the next event")

	d.Dispatch(NewFollow("Linus"))
	assert.Equal(t, 1, late.len())
}

func TestDispatcher_ConcurrentDispatch(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(Following, r)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				d.Dispatch(NewFollow("Barbara"))
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 400, r.len())
}
