package server

import (
	"encoding/json"
	"log"

	"situation-scale/internal/db"

	"gorm.io/datatypes"
)

const (
	eventPlayerJoined     = "player:joined"
	eventSetupUpdated     = "game:setup_updated"
	eventGameStarted      = "game:started"
	eventSituationCreated = "situation:created"
	eventSituationMoved   = "situation:moved"
	eventFreeRoundStarted = "free_round:started"
	eventResultsReady     = "results:ready"
	eventNextRoundStarted = "next_round:started"
	eventGameCompleted    = "game:completed"
)

// envelope is the wire format on the room socket, both directions.
type envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// publish fans the event out to every listener of the game's room and
// appends it to the event journal. Delivery is best-effort; journal
// failures are logged and never fail the command that produced the event.
func (s *Server) publish(game *db.Game, event string, data any) {
	raw, err := json.Marshal(data)
	if err != nil {
		log.Printf("event marshal failed game_id=%s event=%s error=%v", game.ID, event, err)
		return
	}
	frame, err := json.Marshal(envelope{Event: event, Data: raw})
	if err != nil {
		log.Printf("event marshal failed game_id=%s event=%s error=%v", game.ID, event, err)
		return
	}
	s.hub.Publish(game.RoomCode, frame)
	record := db.Event{
		GameID:  game.ID,
		Type:    event,
		Payload: datatypes.JSON(raw),
	}
	if err := s.store.RecordEvent(&record); err != nil {
		log.Printf("event journal failed game_id=%s event=%s error=%v", game.ID, event, err)
	}
}
