package server

import (
	"net/http"

	"situation-scale/internal/db"
)

type createGameRequest struct {
	HostName string `json:"hostName"`
}

type joinGameRequest struct {
	PlayerName string `json:"playerName"`
}

type setupRequest struct {
	Theme         string   `json:"theme"`
	CustomPrompts []string `json:"customPrompts"`
}

type situationRequest struct {
	PlayerID string `json:"playerId"`
	Content  string `json:"content"`
	Position *int   `json:"position"`
}

type positionRequest struct {
	Position *int   `json:"position"`
	RoomCode string `json:"roomCode"`
}

func (s *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	game, host, err := s.createGame(req.HostName)
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"game": game,
		"host": host,
	})
}

func (s *Server) handleJoinGame(w http.ResponseWriter, r *http.Request) {
	var req joinGameRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	game, player, err := s.joinGame(r.PathValue("roomCode"), req.PlayerName)
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"game":   game,
		"player": player,
	})
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	game, err := s.gameByRoomCode(r.PathValue("roomCode"))
	if err != nil {
		writeGameError(w, err)
		return
	}
	snapshot, err := s.gameSnapshot(game)
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

func (s *Server) handleSetup(w http.ResponseWriter, r *http.Request) {
	var req setupRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.configureSetup(r.PathValue("roomCode"), req.Theme, req.CustomPrompts); err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (s *Server) handleStartGame(w http.ResponseWriter, r *http.Request) {
	round, prompt, err := s.startGame(r.PathValue("roomCode"))
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"round":  round,
		"prompt": prompt,
	})
}

func (s *Server) handleSubmitSituation(w http.ResponseWriter, r *http.Request) {
	var req situationRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Position == nil {
		writeError(w, http.StatusBadRequest, "position is required")
		return
	}
	situation, err := s.submitSituation(r.PathValue("roomCode"), req.PlayerID, req.Content, *req.Position)
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"situation": situation})
}

func (s *Server) handleUpdatePosition(w http.ResponseWriter, r *http.Request) {
	var req positionRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Position == nil {
		writeError(w, http.StatusBadRequest, "position is required")
		return
	}
	if err := s.updatePosition(r.PathValue("id"), *req.Position); err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (s *Server) handleFreeRound(w http.ResponseWriter, r *http.Request) {
	if err := s.startFreeRound(r.PathValue("roomCode")); err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	results, err := s.computeResults(r.PathValue("roomCode"))
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}

func (s *Server) handleNextRound(w http.ResponseWriter, r *http.Request) {
	outcome, err := s.advanceRound(r.PathValue("roomCode"))
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, outcome)
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	game, err := s.gameByRoomCode(r.PathValue("roomCode"))
	if err != nil {
		writeGameError(w, err)
		return
	}
	events, err := s.store.ListEventsByGame(game.ID)
	if err != nil {
		writeGameError(w, persistenceError("load events", err))
		return
	}
	if events == nil {
		events = []db.Event{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"gameId": game.ID,
		"events": events,
	})
}
