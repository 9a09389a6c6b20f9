package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"situation-scale/internal/config"
)

func newHTTPServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(New(NewMemoryStore(), config.Default()).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func createGameHTTP(t *testing.T, ts *httptest.Server, hostName string) (roomCode, hostID string) {
	t.Helper()
	resp := doRequest(t, ts, http.MethodPost, "/api/games", map[string]string{"hostName": hostName})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	body := decodeBody(t, resp)
	game := body["game"].(map[string]any)
	host := body["host"].(map[string]any)
	return game["roomCode"].(string), host["id"].(string)
}

func joinPlayerHTTP(t *testing.T, ts *httptest.Server, roomCode, name string) string {
	t.Helper()
	resp := doRequest(t, ts, http.MethodPost, "/api/games/"+roomCode+"/join", map[string]string{"playerName": name})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	body := decodeBody(t, resp)
	player := body["player"].(map[string]any)
	return player["id"].(string)
}

func setupThemeHTTP(t *testing.T, ts *httptest.Server, roomCode, theme string) {
	t.Helper()
	resp := doRequest(t, ts, http.MethodPut, "/api/games/"+roomCode+"/setup", map[string]any{"theme": theme})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
}

func startGameHTTP(t *testing.T, ts *httptest.Server, roomCode string) map[string]any {
	t.Helper()
	resp := doRequest(t, ts, http.MethodPost, "/api/games/"+roomCode+"/start", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	return decodeBody(t, resp)
}

func fetchSnapshot(t *testing.T, ts *httptest.Server, roomCode string) map[string]any {
	t.Helper()
	resp := doRequest(t, ts, http.MethodGet, "/api/games/"+roomCode, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	return decodeBody(t, resp)
}

func doRequest(t *testing.T, ts *httptest.Server, method, path string, payload any) *http.Response {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	t.Cleanup(func() {
		_ = resp.Body.Close()
	})
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}
