package server

import "situation-scale/internal/db"

// gameSnapshot assembles the full authoritative state a client needs to
// (re)build its local projection after connect or reconnect.
func (s *Server) gameSnapshot(game *db.Game) (map[string]any, error) {
	players, err := s.store.ListPlayersByGame(game.ID)
	if err != nil {
		return nil, persistenceError("load players", err)
	}
	prompts, err := s.store.ListPromptsByGame(game.ID)
	if err != nil {
		return nil, persistenceError("load prompts", err)
	}
	rounds, err := s.store.ListRoundsByGame(game.ID)
	if err != nil {
		return nil, persistenceError("load rounds", err)
	}

	var currentRound *db.Round
	situations := []db.Situation{}
	if game.CurrentRoundID != nil {
		currentRound, err = s.store.GetRound(*game.CurrentRoundID)
		if err != nil {
			return nil, persistenceError("load round", err)
		}
		if currentRound != nil {
			situations, err = s.store.ListSituationsByRound(currentRound.ID)
			if err != nil {
				return nil, persistenceError("load situations", err)
			}
		}
	}

	if players == nil {
		players = []db.Player{}
	}
	if prompts == nil {
		prompts = []db.Prompt{}
	}
	if rounds == nil {
		rounds = []db.Round{}
	}
	return map[string]any{
		"game":         game,
		"players":      players,
		"prompts":      prompts,
		"rounds":       rounds,
		"currentRound": currentRound,
		"situations":   situations,
	}, nil
}
