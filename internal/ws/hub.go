package ws

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
)

// Event represents a WebSocket message to be broadcast
type Event struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// userEvent is an internal struct for routing events to a customer's room
type userEvent struct {
	UserID uuid.UUID
	Event  Event
}

// Hub maintains the set of active clients and broadcasts messages to
// them. Customers get a room keyed by their user ID; admin dashboards
// share a single admin room that sees every order event.
type Hub struct {
	// Registered customer clients by user ID
	rooms map[uuid.UUID]map[*Client]bool

	// Registered admin dashboard clients
	admins map[*Client]bool

	// Inbound messages from clients (register/unregister)
	register   chan *Client
	unregister chan *Client

	// Outbound messages to broadcast
	toUser   chan *userEvent
	toAdmins chan Event

	// Mutex for thread-safe room access
	mu sync.RWMutex
}

// NewHub creates a new Hub instance
func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[uuid.UUID]map[*Client]bool),
		admins:     make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		toUser:     make(chan *userEvent, 256),
		toAdmins:   make(chan Event, 256),
	}
}

// Run starts the hub's main loop
// This should be called as a goroutine: go hub.Run()
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if client.isAdmin {
				h.admins[client] = true
			} else {
				if h.rooms[client.userID] == nil {
					h.rooms[client.userID] = make(map[*Client]bool)
				}
				h.rooms[client.userID][client] = true
			}
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			h.dropClient(client)
			h.mu.Unlock()

		case event := <-h.toUser:
			h.mu.Lock()
			message, err := json.Marshal(event.Event)
			if err != nil {
				h.mu.Unlock()
				continue
			}
			for client := range h.rooms[event.UserID] {
				h.send(client, message)
			}
			h.mu.Unlock()

		case event := <-h.toAdmins:
			h.mu.Lock()
			message, err := json.Marshal(event)
			if err != nil {
				h.mu.Unlock()
				continue
			}
			for client := range h.admins {
				h.send(client, message)
			}
			h.mu.Unlock()
		}
	}
}

// send delivers a message to one client, dropping the client if its
// buffer is full. Caller must hold h.mu.
func (h *Hub) send(client *Client, message []byte) {
	select {
	case client.send <- message:
	default:
		h.dropClient(client)
	}
}

// dropClient removes a client from its room and closes its channel.
// Caller must hold h.mu.
func (h *Hub) dropClient(client *Client) {
	if client.isAdmin {
		if _, ok := h.admins[client]; ok {
			delete(h.admins, client)
			close(client.send)
		}
		return
	}
	if clients, ok := h.rooms[client.userID]; ok {
		if _, exists := clients[client]; exists {
			delete(clients, client)
			close(client.send)
			// Clean up empty rooms
			if len(clients) == 0 {
				delete(h.rooms, client.userID)
			}
		}
	}
}

// BroadcastToUser sends an event to all clients of one customer.
// This is the public API for handlers to broadcast events.
func (h *Hub) BroadcastToUser(userID uuid.UUID, event Event) {
	h.toUser <- &userEvent{UserID: userID, Event: event}
}

// BroadcastToAdmins sends an event to every connected admin dashboard.
func (h *Hub) BroadcastToAdmins(event Event) {
	h.toAdmins <- event
}
