// Package projection maintains a client-side mirror of the authoritative
// game state. A State starts from a REST snapshot and is advanced by the
// broadcast events the room socket delivers; Apply is a pure transition
// function, independent of any rendering layer.
package projection

import (
	"encoding/json"

	"situation-scale/internal/db"
)

type State struct {
	Game          *db.Game
	Players       []db.Player
	Prompts       []db.Prompt
	CurrentRound  *db.Round
	CurrentPrompt *db.Prompt
	Situations    []db.Situation
	Results       *Results
}

type Results struct {
	PlayerOrder []db.Situation `json:"playerOrder"`
	ActualOrder []db.Situation `json:"actualOrder"`
	Accuracy    int            `json:"accuracy"`
}

type playerJoined struct {
	Player db.Player `json:"player"`
}

type setupUpdated struct {
	Theme       string   `json:"theme"`
	PromptTexts []string `json:"promptTexts"`
}

type roundStarted struct {
	Round  db.Round  `json:"round"`
	Prompt db.Prompt `json:"prompt"`
}

type situationCreated struct {
	Situation db.Situation `json:"situation"`
}

type situationMoved struct {
	SituationID string `json:"situationId"`
	Position    int    `json:"position"`
}

// Apply returns the state after the named broadcast event. Unknown events
// leave the state untouched; a decode failure returns the input state and
// the error so the caller can fall back to a full snapshot refetch.
func (s State) Apply(event string, data json.RawMessage) (State, error) {
	switch event {
	case "player:joined":
		var payload playerJoined
		if err := json.Unmarshal(data, &payload); err != nil {
			return s, err
		}
		next := s
		next.Players = append(append([]db.Player(nil), s.Players...), payload.Player)
		return next, nil

	case "game:setup_updated":
		var payload setupUpdated
		if err := json.Unmarshal(data, &payload); err != nil {
			return s, err
		}
		next := s
		if next.Game != nil && payload.Theme != "" {
			game := *next.Game
			theme := payload.Theme
			game.Theme = &theme
			next.Game = &game
		}
		return next, nil

	case "game:started", "next_round:started":
		var payload roundStarted
		if err := json.Unmarshal(data, &payload); err != nil {
			return s, err
		}
		next := s
		round := payload.Round
		prompt := payload.Prompt
		next.CurrentRound = &round
		next.CurrentPrompt = &prompt
		next.Situations = nil
		next.Results = nil
		next.Game = s.gameWithStatus(db.StatusInProgress)
		if next.Game != nil {
			next.Game.CurrentRoundID = &round.ID
		}
		return next, nil

	case "situation:created":
		var payload situationCreated
		if err := json.Unmarshal(data, &payload); err != nil {
			return s, err
		}
		next := s
		next.Situations = append(append([]db.Situation(nil), s.Situations...), payload.Situation)
		return next, nil

	case "situation:moved":
		var payload situationMoved
		if err := json.Unmarshal(data, &payload); err != nil {
			return s, err
		}
		next := s
		next.Situations = append([]db.Situation(nil), s.Situations...)
		for i := range next.Situations {
			if next.Situations[i].ID == payload.SituationID {
				next.Situations[i].Position = payload.Position
			}
		}
		return next, nil

	case "free_round:started":
		next := s
		next.Game = s.gameWithStatus(db.StatusFreeRound)
		return next, nil

	case "results:ready":
		var payload Results
		if err := json.Unmarshal(data, &payload); err != nil {
			return s, err
		}
		next := s
		next.Results = &payload
		next.Game = s.gameWithStatus(db.StatusShowResults)
		if s.CurrentRound != nil {
			round := *s.CurrentRound
			round.Completed = true
			next.CurrentRound = &round
		}
		return next, nil

	case "game:completed":
		next := s
		next.Game = s.gameWithStatus(db.StatusCompleted)
		if next.Game != nil {
			next.Game.CurrentRoundID = nil
		}
		return next, nil
	}
	return s, nil
}

func (s State) gameWithStatus(status string) *db.Game {
	if s.Game == nil {
		return nil
	}
	game := *s.Game
	game.Status = status
	return &game
}
