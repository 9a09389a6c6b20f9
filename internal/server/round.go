package server

import (
	"log"
	"math"
	"sort"

	"situation-scale/internal/db"
)

type roundResults struct {
	PlayerOrder []db.Situation `json:"playerOrder"`
	ActualOrder []db.Situation `json:"actualOrder"`
	Accuracy    int            `json:"accuracy"`
}

type advanceOutcome struct {
	Completed bool       `json:"completed"`
	Round     *db.Round  `json:"round,omitempty"`
	Prompt    *db.Prompt `json:"prompt,omitempty"`
}

func (s *Server) submitSituation(roomCode, playerID, content string, position int) (*db.Situation, error) {
	text, err := validateContent(content)
	if err != nil {
		return nil, err
	}
	if err := validatePosition(position); err != nil {
		return nil, err
	}
	game, err := s.gameByRoomCode(roomCode)
	if err != nil {
		return nil, err
	}
	if game.CurrentRoundID == nil {
		return nil, newNotFoundError("game or round not found")
	}

	existing, err := s.store.ListSituationsByRound(*game.CurrentRoundID)
	if err != nil {
		return nil, persistenceError("load situations", err)
	}
	for _, other := range existing {
		if other.PlayerID == playerID {
			return nil, newAlreadySubmittedError("situation already submitted for this round")
		}
	}

	situation := db.Situation{
		RoundID:  *game.CurrentRoundID,
		PlayerID: playerID,
		Content:  text,
		Number:   newHiddenNumber(),
		Position: position,
	}
	if err := s.store.CreateSituation(&situation); err != nil {
		return nil, persistenceError("save situation", err)
	}
	player, err := s.store.GetPlayer(playerID)
	if err != nil {
		return nil, persistenceError("load player", err)
	}
	situation.Player = player
	log.Printf("situation created game_id=%s player_id=%s situation_id=%s", game.ID, playerID, situation.ID)
	s.publish(game, eventSituationCreated, map[string]any{"situation": situation})
	return &situation, nil
}

// updatePosition resolves the owning game through the situation's round, so
// the broadcast and the journal always target the room the situation
// actually belongs to.
func (s *Server) updatePosition(situationID string, position int) error {
	if err := validatePosition(position); err != nil {
		return err
	}
	situation, err := s.store.GetSituation(situationID)
	if err != nil {
		return persistenceError("load situation", err)
	}
	if situation == nil {
		return newNotFoundError("situation not found")
	}
	if err := s.store.UpdateSituationPosition(situationID, position); err != nil {
		return persistenceError("update position", err)
	}
	round, err := s.store.GetRound(situation.RoundID)
	if err != nil || round == nil {
		return persistenceError("load round", err)
	}
	game, err := s.store.GetGame(round.GameID)
	if err != nil || game == nil {
		return persistenceError("load game", err)
	}
	s.publish(game, eventSituationMoved, map[string]any{
		"situationId": situationID,
		"position":    position,
	})
	return nil
}

func (s *Server) startFreeRound(roomCode string) error {
	game, err := s.gameByRoomCode(roomCode)
	if err != nil {
		return err
	}
	if err := s.store.UpdateGameStatus(game.ID, db.StatusFreeRound); err != nil {
		return persistenceError("update game status", err)
	}
	game.Status = db.StatusFreeRound
	log.Printf("free round started game_id=%s", game.ID)
	s.publish(game, eventFreeRoundStarted, map[string]any{})
	return nil
}

func (s *Server) computeResults(roomCode string) (*roundResults, error) {
	game, err := s.gameByRoomCode(roomCode)
	if err != nil {
		return nil, err
	}
	if game.CurrentRoundID == nil {
		return nil, newNotFoundError("game or round not found")
	}
	situations, err := s.store.ListSituationsByRound(*game.CurrentRoundID)
	if err != nil {
		return nil, persistenceError("load situations", err)
	}

	results := scoreRound(situations)
	if err := s.store.UpdateGameStatus(game.ID, db.StatusShowResults); err != nil {
		return nil, persistenceError("update game status", err)
	}
	if err := s.store.MarkRoundCompleted(*game.CurrentRoundID); err != nil {
		return nil, persistenceError("complete round", err)
	}
	game.Status = db.StatusShowResults
	log.Printf("results computed game_id=%s round_id=%s accuracy=%d", game.ID, *game.CurrentRoundID, results.Accuracy)
	s.publish(game, eventResultsReady, results)
	return results, nil
}

// scoreRound orders the situations by player-chosen position and by hidden
// number (situation id breaks ties deterministically) and scores the exact
// positional matches between the two sequences.
func scoreRound(situations []db.Situation) *roundResults {
	playerOrder := append([]db.Situation(nil), situations...)
	sort.SliceStable(playerOrder, func(i, j int) bool {
		if playerOrder[i].Position != playerOrder[j].Position {
			return playerOrder[i].Position < playerOrder[j].Position
		}
		return playerOrder[i].ID < playerOrder[j].ID
	})
	actualOrder := append([]db.Situation(nil), situations...)
	sort.SliceStable(actualOrder, func(i, j int) bool {
		if actualOrder[i].Number != actualOrder[j].Number {
			return actualOrder[i].Number < actualOrder[j].Number
		}
		return actualOrder[i].ID < actualOrder[j].ID
	})

	accuracy := 0
	if len(situations) > 0 {
		matches := 0
		for i := range playerOrder {
			if playerOrder[i].ID == actualOrder[i].ID {
				matches++
			}
		}
		accuracy = int(math.Round(float64(matches) / float64(len(situations)) * 100))
	}
	return &roundResults{
		PlayerOrder: playerOrder,
		ActualOrder: actualOrder,
		Accuracy:    accuracy,
	}
}

func (s *Server) advanceRound(roomCode string) (*advanceOutcome, error) {
	game, err := s.gameByRoomCode(roomCode)
	if err != nil {
		return nil, err
	}
	unused, err := s.store.ListUnusedPromptsByGame(game.ID)
	if err != nil {
		return nil, persistenceError("load prompts", err)
	}
	if len(unused) == 0 {
		if err := s.store.UpdateGameStatus(game.ID, db.StatusCompleted); err != nil {
			return nil, persistenceError("update game status", err)
		}
		if err := s.store.UpdateGameCurrentRound(game.ID, nil); err != nil {
			return nil, persistenceError("update current round", err)
		}
		game.Status = db.StatusCompleted
		game.CurrentRoundID = nil
		log.Printf("game completed game_id=%s", game.ID)
		s.publish(game, eventGameCompleted, map[string]any{})
		return &advanceOutcome{Completed: true}, nil
	}

	count, err := s.store.CountRoundsByGame(game.ID)
	if err != nil {
		return nil, persistenceError("count rounds", err)
	}
	next := unused[0]
	round, err := s.openRound(game, &next, count+1)
	if err != nil {
		return nil, err
	}
	log.Printf("next round started game_id=%s round_id=%s round_number=%d", game.ID, round.ID, round.RoundNumber)
	s.publish(game, eventNextRoundStarted, map[string]any{
		"round":  round,
		"prompt": next,
	})
	return &advanceOutcome{Completed: false, Round: round, Prompt: &next}, nil
}
