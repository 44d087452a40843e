// Package websocket implements a WebSocket Hub for broadcasting real-time score updates.
// WebSockets are persistent two-way connections between the server and clients — unlike
// regular HTTP where the client always initiates the request, WebSockets let the server
// push data to clients instantly. This is used so spectators watching a live match see
// the chukker scores the moment they're recorded, without polling the API repeatedly.
package websocket

import "sync" // sync provides synchronization primitives like mutexes for safe concurrent access

// Client represents a single connected WebSocket client.
// Each spectator watching a live match has one Client instance on the server.
type Client struct {
	MatchID string      // Which match this client is watching — used to route messages to the right audience
	Send    chan []byte // Buffered channel of outgoing messages; the Hub sends data here, the WebSocket writes it to the client
}

// Message is a unit of data to broadcast to all clients watching a specific match.
// By attaching the MatchID, the Hub knows which group of clients should receive it.
type Message struct {
	MatchID string // The match this message belongs to
	Data    []byte // The raw bytes to send (typically a JSON-encoded chukker score snapshot)
}

// Hub manages all active WebSocket connections, grouped by match ID.
// It runs in its own goroutine and processes registration, unregistration, and
// broadcast events through channels — this keeps all map access on a single goroutine,
// which avoids data races (concurrent map reads/writes cause panics in Go).
type Hub struct {
	// clients is a nested map: matchID -> set of Client pointers -> bool (true = connected).
	// Using a map[*Client]bool as a "set" is a common Go idiom because Go has no built-in set type.
	clients map[string]map[*Client]bool

	broadcast  chan *Message // Incoming messages to be sent to all clients watching a given match
	register   chan *Client  // Signals that a new client has connected and should be tracked
	unregister chan *Client  // Signals that a client has disconnected and should be removed

	// mu (mutex) protects the clients map. All mutation happens on the Run
	// goroutine, but Watchers reads it from request goroutines, so reads take
	// RLock and the event loop takes the exclusive Lock.
	mu sync.RWMutex
}

// NewHub creates and initializes a Hub with empty channels and maps.
// The broadcast channel has a buffer of 256 so writers don't block immediately
// if the Hub goroutine is briefly busy. register and unregister are unbuffered
// because those operations need to complete synchronously.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		broadcast:  make(chan *Message, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run is the Hub's main event loop. It must be called in a goroutine ("go hub.Run()").
// It blocks forever, processing one event at a time via a select statement.
// select is like a switch but for channels — it waits until one of the cases has data ready.
func (h *Hub) Run() {
	for {
		select {

		// A new client has connected — add it to the clients map under its MatchID
		case client := <-h.register:
			h.mu.Lock()
			// If this is the first client for this match, initialize the inner map
			if h.clients[client.MatchID] == nil {
				h.clients[client.MatchID] = make(map[*Client]bool)
			}
			h.clients[client.MatchID][client] = true
			h.mu.Unlock()

		// A client has disconnected — remove it from the map and close its Send channel
		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.MatchID]; ok {
				if _, ok := clients[client]; ok {
					delete(clients, client) // Remove this client from the match's set
					close(client.Send)      // Closing the channel signals the WebSocket writer goroutine to stop
					// Clean up the match's map entry if no clients are left — avoids memory leaks
					if len(clients) == 0 {
						delete(h.clients, client.MatchID)
					}
				}
			}
			h.mu.Unlock()

		// A message arrived to broadcast to all clients watching a specific match
		case msg := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients[msg.MatchID] {
				select {
				// Try to send the message to the client's outgoing channel
				case client.Send <- msg.Data:
				// If the channel buffer is full, the client is too slow — drop it.
				// The removal happens inline here, NOT via the unregister channel:
				// this same goroutine is the only reader of that channel, so sending
				// to it from here would deadlock the whole Hub.
				default:
					delete(h.clients[msg.MatchID], client)
					close(client.Send)
				}
			}
			if len(h.clients[msg.MatchID]) == 0 {
				delete(h.clients, msg.MatchID)
			}
			h.mu.Unlock()
		}
	}
}

// BroadcastToMatch sends data to all clients currently watching the given match.
// This is the public API that handlers call when a chukker score is appended.
func (h *Hub) BroadcastToMatch(matchID string, data []byte) {
	h.broadcast <- &Message{MatchID: matchID, Data: data}
}

// Register adds a client to the Hub so it starts receiving broadcasts for its match.
// Called when a WebSocket connection is opened.
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister removes a client from the Hub when its WebSocket connection closes.
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// Watchers reports how many clients are currently subscribed to a match.
func (h *Hub) Watchers(matchID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[matchID])
}
