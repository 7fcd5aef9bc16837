package notify

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/nats-io/nats.go"
)

// SessionEventsSubject carries every session-scoped notification.
const SessionEventsSubject = "sessions.events"

// Notifier publishes session events. With a NATS connection events travel
// through the broker and come back via the bridge subscription, so every
// instance's hub sees them; without one they dispatch straight to the local
// hub, which is what tests and single-node deployments use.
type Notifier struct {
	hub  *Hub
	conn *nats.Conn
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

// ConnectNATS attaches the notifier to a broker and bridges incoming events
// into the hub.
func (n *Notifier) ConnectNATS(url string) error {
	conn, err := nats.Connect(url)
	if err != nil {
		return fmt.Errorf("failed to connect to NATS: %w", err)
	}

	_, err = conn.Subscribe(SessionEventsSubject, func(msg *nats.Msg) {
		var evt Event
		if err := json.Unmarshal(msg.Data, &evt); err != nil {
			log.Printf("dropping malformed session event: %v", err)
			return
		}
		n.hub.Dispatch(evt)
	})
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to subscribe to %s: %w", SessionEventsSubject, err)
	}

	n.conn = conn
	return nil
}

func (n *Notifier) Publish(evt Event) error {
	if n.conn == nil {
		n.hub.Dispatch(evt)
		return nil
	}
	data, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	return n.conn.Publish(SessionEventsSubject, data)
}

func (n *Notifier) Hub() *Hub {
	return n.hub
}

func (n *Notifier) Close() {
	if n.conn != nil {
		n.conn.Close()
	}
}
