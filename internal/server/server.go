package server

import (
	"net/http"

	"situation-scale/internal/config"
)

type Server struct {
	store Store
	hub   *roomHub
	cfg   config.Config
}

func New(store Store, cfg config.Config) *Server {
	return &Server{
		store: store,
		hub:   newRoomHub(),
		cfg:   cfg,
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/games", s.handleCreateGame)
	mux.HandleFunc("GET /api/games/{roomCode}", s.handleGetGame)
	mux.HandleFunc("POST /api/games/{roomCode}/join", s.handleJoinGame)
	mux.HandleFunc("PUT /api/games/{roomCode}/setup", s.handleSetup)
	mux.HandleFunc("POST /api/games/{roomCode}/start", s.handleStartGame)
	mux.HandleFunc("POST /api/games/{roomCode}/situations", s.handleSubmitSituation)
	mux.HandleFunc("PUT /api/situations/{id}/position", s.handleUpdatePosition)
	mux.HandleFunc("POST /api/games/{roomCode}/free-round", s.handleFreeRound)
	mux.HandleFunc("POST /api/games/{roomCode}/results", s.handleResults)
	mux.HandleFunc("POST /api/games/{roomCode}/next-round", s.handleNextRound)
	mux.HandleFunc("GET /api/games/{roomCode}/events", s.handleEvents)
	mux.HandleFunc("GET /ws", s.handleWebsocket)
	return mux
}
