package server

import (
	"encoding/json"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func dialRoom(t *testing.T, tsURL, roomCode string) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(tsURL, "http") + "/ws?roomCode=" + roomCode
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Skipf("skipping test; websocket dial unavailable: %v", err)
	}
	t.Cleanup(func() {
		_ = conn.Close()
	})
	return conn
}

func readWSEnvelope(t *testing.T, conn *websocket.Conn, timeout time.Duration) (string, map[string]any) {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(timeout))
	_, payload, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read websocket message: %v", err)
	}
	var frame struct {
		Event string          `json:"event"`
		Data  json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(payload, &frame); err != nil {
		t.Fatalf("decode frame: %v", err)
	}
	var data map[string]any
	if len(frame.Data) > 0 {
		if err := json.Unmarshal(frame.Data, &data); err != nil {
			t.Fatalf("decode frame data: %v", err)
		}
	}
	return frame.Event, data
}

func expectNoWSMessage(t *testing.T, conn *websocket.Conn, timeout time.Duration) {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(timeout))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Fatalf("expected no websocket message within %s", timeout)
	} else {
		netErr, ok := err.(net.Error)
		if !ok || !netErr.Timeout() {
			t.Fatalf("expected websocket timeout, got %v", err)
		}
	}
}

func TestWebsocketRejectsUnknownRoom(t *testing.T) {
	ts := newHTTPServer(t)
	roomCode, _ := createGameHTTP(t, ts, "Ada")

	// Prove the dialer works against a real room first, so a failure
	// below is the handshake rejection and not the environment.
	conn := dialRoom(t, ts.URL, roomCode)
	_ = conn.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws?roomCode=ZZZZZZ"
	if badConn, _, err := websocket.DefaultDialer.Dial(wsURL, nil); err == nil {
		_ = badConn.Close()
		t.Fatal("expected handshake failure for unknown room")
	}
	bareURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	if badConn, _, err := websocket.DefaultDialer.Dial(bareURL, nil); err == nil {
		_ = badConn.Close()
		t.Fatal("expected handshake failure without roomCode")
	}
}

func TestWebsocketBroadcastsJoin(t *testing.T) {
	ts := newHTTPServer(t)
	roomCode, _ := createGameHTTP(t, ts, "Ada")
	conn := dialRoom(t, ts.URL, roomCode)

	joinPlayerHTTP(t, ts, roomCode, "Bob")

	event, data := readWSEnvelope(t, conn, 5*time.Second)
	if event != "player:joined" {
		t.Fatalf("expected player:joined, got %s", event)
	}
	player := data["player"].(map[string]any)
	if player["name"].(string) != "Bob" {
		t.Fatalf("expected Bob in payload, got %v", player["name"])
	}
}

func TestWebsocketScopedToRoom(t *testing.T) {
	ts := newHTTPServer(t)
	firstRoom, _ := createGameHTTP(t, ts, "Ada")
	secondRoom, _ := createGameHTTP(t, ts, "Cara")
	firstConn := dialRoom(t, ts.URL, firstRoom)
	secondConn := dialRoom(t, ts.URL, secondRoom)

	joinPlayerHTTP(t, ts, firstRoom, "Bob")

	event, _ := readWSEnvelope(t, firstConn, 5*time.Second)
	if event != "player:joined" {
		t.Fatalf("expected player:joined, got %s", event)
	}
	expectNoWSMessage(t, secondConn, 350*time.Millisecond)
}

func TestWebsocketPassthrough(t *testing.T) {
	ts := newHTTPServer(t)
	roomCode, _ := createGameHTTP(t, ts, "Ada")
	sender := dialRoom(t, ts.URL, roomCode)
	receiver := dialRoom(t, ts.URL, roomCode)

	if err := sender.WriteMessage(websocket.TextMessage, []byte(`{"event":"mouse:move","data":{"x":10,"y":20}}`)); err != nil {
		t.Fatalf("write frame: %v", err)
	}
	event, data := readWSEnvelope(t, receiver, 5*time.Second)
	if event != "mouse:move:update" {
		t.Fatalf("expected mouse:move:update, got %s", event)
	}
	if data["x"].(float64) != 10 || data["y"].(float64) != 20 {
		t.Fatalf("payload not forwarded intact: %v", data)
	}

	// The sender is in the room too, so the relay comes back to it.
	event, _ = readWSEnvelope(t, sender, 5*time.Second)
	if event != "mouse:move:update" {
		t.Fatalf("expected echo to sender, got %s", event)
	}

	if err := sender.WriteMessage(websocket.TextMessage, []byte(`{"event":"game:tick","data":{"remaining":30}}`)); err != nil {
		t.Fatalf("write tick: %v", err)
	}
	event, data = readWSEnvelope(t, receiver, 5*time.Second)
	if event != "game:tick" {
		t.Fatalf("expected game:tick verbatim, got %s", event)
	}
	if data["remaining"].(float64) != 30 {
		t.Fatalf("tick payload not forwarded intact: %v", data)
	}
}

func TestWebsocketDiscardsMalformedFrames(t *testing.T) {
	ts := newHTTPServer(t)
	roomCode, _ := createGameHTTP(t, ts, "Ada")
	sender := dialRoom(t, ts.URL, roomCode)
	receiver := dialRoom(t, ts.URL, roomCode)

	if err := sender.WriteMessage(websocket.TextMessage, []byte(`not json at all`)); err != nil {
		t.Fatalf("write garbage: %v", err)
	}
	if err := sender.WriteMessage(websocket.TextMessage, []byte(`{"event":"situation:created","data":{}}`)); err != nil {
		t.Fatalf("write non-relay event: %v", err)
	}
	if err := sender.WriteMessage(websocket.TextMessage, []byte(`{"event":"drag:move","data":{"id":"s1"}}`)); err != nil {
		t.Fatalf("write relay frame: %v", err)
	}

	// Frames for a room arrive in publish order, so the relay showing up
	// first proves the garbage and the non-relay event produced nothing,
	// and that the sender's connection survived them.
	event, _ := readWSEnvelope(t, receiver, 5*time.Second)
	if event != "drag:move:update" {
		t.Fatalf("expected drag:move:update, got %s", event)
	}
	expectNoWSMessage(t, receiver, 350*time.Millisecond)
}
