package ws

import (
	"context"
	"encoding/json"
	"log"
	"sync"
)

// Event is the envelope pushed to displays.
type Event struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type roomEvent struct {
	room  string
	event Event
}

// Hub fans events out to the clients of a room. The last message of every
// room is replayed to clients that join later.
type Hub struct {
	rooms map[string]map[*Client]bool
	last  map[string][]byte

	register   chan *Client
	unregister chan *Client
	broadcast  chan *roomEvent
	done       chan struct{}

	mu sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		last:       make(map[string][]byte),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *roomEvent, 256),
		done:       make(chan struct{}),
	}
}

// Run serves the hub until ctx is cancelled, then closes every client.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.mu.Lock()
			for room, clients := range h.rooms {
				for client := range clients {
					close(client.send)
				}
				delete(h.rooms, room)
			}
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			if h.rooms[client.room] == nil {
				h.rooms[client.room] = make(map[*Client]bool)
			}
			h.rooms[client.room][client] = true
			if message, ok := h.last[client.room]; ok {
				client.send <- message
			}
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			h.dropLocked(client)
			h.mu.Unlock()

		case event := <-h.broadcast:
			message, err := json.Marshal(event.event)
			if err != nil {
				log.Printf("ERROR: encoding %s event: %v", event.event.Type, err)
				continue
			}
			h.mu.Lock()
			h.last[event.room] = message
			for client := range h.rooms[event.room] {
				select {
				case client.send <- message:
				default:
					// slow consumer
					h.dropLocked(client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast queues payload for every client in room.
func (h *Hub) Broadcast(room, eventType string, payload interface{}) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	select {
	case h.broadcast <- &roomEvent{room: room, event: Event{Type: eventType, Payload: raw}}:
	case <-h.done:
	}
	return nil
}

func (h *Hub) ClientCount(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}

func (h *Hub) dropLocked(client *Client) {
	clients, ok := h.rooms[client.room]
	if !ok {
		return
	}
	if _, exists := clients[client]; !exists {
		return
	}
	delete(clients, client)
	close(client.send)
	if len(clients) == 0 {
		delete(h.rooms, client.room)
	}
}
