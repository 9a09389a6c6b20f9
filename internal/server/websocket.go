package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// roomHub routes broadcast frames to the currently connected listeners of a
// room. Each client is drained by a single writer goroutine, so frames for
// a room reach each connection in publish order.
type roomHub struct {
	mu    sync.Mutex
	rooms map[string]map[*roomClient]struct{}
}

type roomClient struct {
	roomCode string
	conn     *websocket.Conn
	send     chan []byte
	once     sync.Once
}

func newRoomHub() *roomHub {
	return &roomHub{
		rooms: make(map[string]map[*roomClient]struct{}),
	}
}

func (h *roomHub) Join(roomCode string, client *roomClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	room := h.rooms[roomCode]
	if room == nil {
		room = make(map[*roomClient]struct{})
		h.rooms[roomCode] = room
	}
	room[client] = struct{}{}
}

func (h *roomHub) Leave(client *roomClient) {
	h.mu.Lock()
	room := h.rooms[client.roomCode]
	if room != nil {
		delete(room, client)
		if len(room) == 0 {
			delete(h.rooms, client.roomCode)
		}
	}
	// Closing under the lock keeps the close ordered against Publish's
	// sends; a send on a closed channel would panic.
	client.shutdown()
	h.mu.Unlock()
}

func (h *roomHub) Publish(roomCode string, frame []byte) {
	h.mu.Lock()
	var evicted []*roomClient
	for client := range h.rooms[roomCode] {
		select {
		case client.send <- frame:
		default:
			// Slow or dead consumer; drop it rather than block the room.
			evicted = append(evicted, client)
		}
	}
	h.mu.Unlock()

	for _, client := range evicted {
		h.Leave(client)
	}
}

func (c *roomClient) shutdown() {
	c.once.Do(func() {
		close(c.send)
	})
}

func (c *roomClient) writePump() {
	for frame := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
			break
		}
	}
	_ = c.conn.Close()
}

func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	roomCode := r.URL.Query().Get("roomCode")
	if roomCode == "" {
		writeError(w, http.StatusBadRequest, "roomCode is required")
		return
	}
	game, err := s.store.GetGameByRoomCode(roomCode)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load game")
		return
	}
	if game == nil {
		http.NotFound(w, r)
		return
	}
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	log.Printf("ws connected room_code=%s remote=%s", roomCode, r.RemoteAddr)
	client := &roomClient{
		roomCode: roomCode,
		conn:     conn,
		send:     make(chan []byte, 32),
	}
	s.hub.Join(roomCode, client)
	go client.writePump()
	go s.readWS(client)
}

func (s *Server) readWS(client *roomClient) {
	defer s.hub.Leave(client)
	for {
		_, payload, err := client.conn.ReadMessage()
		if err != nil {
			log.Printf("ws disconnected room_code=%s error=%v", client.roomCode, err)
			return
		}
		s.relayClientEvent(client.roomCode, payload)
	}
}

// relayClientEvent re-broadcasts the cosmetic client-to-client signals.
// These never touch game state and malformed frames are discarded without
// closing the connection.
func (s *Server) relayClientEvent(roomCode string, payload []byte) {
	var msg envelope
	if err := json.Unmarshal(payload, &msg); err != nil {
		return
	}
	switch msg.Event {
	case "mouse:move", "drag:move", "click:event":
		frame, err := json.Marshal(envelope{Event: msg.Event + ":update", Data: msg.Data})
		if err != nil {
			return
		}
		s.hub.Publish(roomCode, frame)
	case "game:tick":
		frame, err := json.Marshal(envelope{Event: "game:tick", Data: msg.Data})
		if err != nil {
			return
		}
		s.hub.Publish(roomCode, frame)
	}
}
