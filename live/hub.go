// Package live pushes engine updates to websocket subscribers. Clients
// subscribe to a topic and receive every event broadcast on it.
package live

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Topics clients can subscribe to.
const (
	TopicRoster    = "roster"
	TopicGroups    = "groups"
	TopicPlayoffs  = "playoffs"
	TopicStandings = "standings"
)

// Event types carried in Message.Type.
const (
	EventRosterUpdated         = "ROSTER_UPDATED"
	EventGroupsCreated         = "GROUPS_CREATED"
	EventGroupResultsUpdated   = "GROUP_RESULTS_UPDATED"
	EventPlayoffsGenerated     = "PLAYOFFS_GENERATED"
	EventPlayoffResultsUpdated = "PLAYOFF_RESULTS_UPDATED"
	EventFinalStandingsUpdated = "FINAL_STANDINGS_UPDATED"
)

// ValidTopic reports whether clients may subscribe to the given topic.
func ValidTopic(topic string) bool {
	switch topic {
	case TopicRoster, TopicGroups, TopicPlayoffs, TopicStandings:
		return true
	}
	return false
}

// Message is the envelope sent to subscribers.
type Message struct {
	Type    string      `json:"type"`
	Topic   string      `json:"topic"`
	Payload interface{} `json:"payload,omitempty"`
}

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// Hub fans broadcast messages out to the clients subscribed to each topic.
type Hub struct {
	register   chan *Client
	unregister chan *Client
	topics     map[string]map[*Client]bool
	mu         sync.RWMutex
	logger     *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		topics:     make(map[string]map[*Client]bool),
		logger:     logger,
	}
}

// Run owns the subscription maps. It must be started once, in its own
// goroutine, before the first client connects.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if _, ok := h.topics[client.topic]; !ok {
				h.topics[client.topic] = make(map[*Client]bool)
			}
			h.topics[client.topic][client] = true
			h.logger.Info("websocket client subscribed",
				slog.String("topic", client.topic),
				slog.Int("subscribers", len(h.topics[client.topic])))
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.topics[client.topic]; ok {
				if _, subscribed := clients[client]; subscribed {
					delete(clients, client)
					close(client.send)
					if len(clients) == 0 {
						delete(h.topics, client.topic)
					}
					h.logger.Info("websocket client unsubscribed", slog.String("topic", client.topic))
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast sends a message to every client subscribed to the topic. Clients
// whose send buffer is full are skipped rather than blocking the caller.
func (h *Hub) Broadcast(topic string, msg Message) {
	msg.Topic = topic

	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error("failed to marshal broadcast message",
			slog.String("topic", topic), slog.Any("error", err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.topics[topic] {
		select {
		case client.send <- data:
		default:
			h.logger.Warn("dropping broadcast for slow client", slog.String("topic", topic))
		}
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ServeWS upgrades the connection and registers the client on the topic.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, topic string) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	client := &Client{
		hub:   h,
		conn:  conn,
		send:  make(chan []byte, 16),
		topic: topic,
	}
	h.register <- client

	go client.writePump()
	go client.readPump()
	return nil
}
