package hub

import (
	"encoding/json"
	"log"
	"sync"
)

// Event represents a real-time event to be sent to clients.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Client represents a single client connection.
// It's essentially a channel that the SSE handler will listen to.
type Client chan []byte

// Hub fans catalog events out to every connected client.
type Hub struct {
	clients map[Client]bool
	mu      sync.RWMutex
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[Client]bool),
	}
}

// Subscribe adds a new client.
func (h *Hub) Subscribe(client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true
}

// Unsubscribe removes a client and closes its channel.
func (h *Hub) Unsubscribe(client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client) // Close the channel to signal the SSE handler to stop.
	}
}

// Len returns the number of connected clients.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast sends an event to all clients.
func (h *Hub) Broadcast(event Event) {
	messageBytes, err := json.Marshal(event)
	if err != nil {
		log.Printf("hub: failed to encode %s event: %v", event.Type, err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		// Use a non-blocking send to prevent a slow client from blocking the hub.
		select {
		case client <- messageBytes:
		default:
			// Client channel is full; the event is dropped for that client.
		}
	}
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		close(client)
		delete(h.clients, client)
	}
}
