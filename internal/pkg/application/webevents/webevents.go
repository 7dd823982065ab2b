package webevents

import (
	"encoding/json"

	gosse "github.com/alexandrevicenzi/go-sse"
)

type WebEvents interface {
	Server() *gosse.Server
	Shutdown()
	Publish(channel, event string, data any) error
}

type webEvents struct {
	s *gosse.Server
}

func New() WebEvents {
	return &webEvents{
		s: gosse.NewServer(&gosse.Options{}),
	}
}

func (we *webEvents) Server() *gosse.Server {
	return we.s
}

func (we *webEvents) Shutdown() {
	we.s.Shutdown()
}

// Publish sends an event to every dispatcher session subscribed to the given
// channel. Channel names are the SSE mount paths, so "" broadcasts to all.
func (we *webEvents) Publish(channel, event string, data any) error {
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}

	message := gosse.NewMessage("", string(b), event)
	we.s.SendMessage(channel, message)

	return nil
}
