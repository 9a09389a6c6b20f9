package server

import "situation-scale/internal/db"

// Store is the entity store the orchestrator runs against. Get methods
// return (nil, nil) when the record does not exist; only infrastructure
// failures surface as errors.
type Store interface {
	CreateGame(game *db.Game) error
	GetGame(id string) (*db.Game, error)
	GetGameByRoomCode(roomCode string) (*db.Game, error)
	UpdateGameStatus(gameID, status string) error
	UpdateGameCurrentRound(gameID string, roundID *string) error

	CreatePlayer(player *db.Player) error
	GetPlayer(id string) (*db.Player, error)
	ListPlayersByGame(gameID string) ([]db.Player, error)

	CreatePrompts(prompts []db.Prompt) error
	ListPromptsByGame(gameID string) ([]db.Prompt, error)
	ListUnusedPromptsByGame(gameID string) ([]db.Prompt, error)
	MarkPromptUsed(id string) error

	CreateRound(round *db.Round) error
	GetRound(id string) (*db.Round, error)
	ListRoundsByGame(gameID string) ([]db.Round, error)
	CountRoundsByGame(gameID string) (int, error)
	MarkRoundCompleted(id string) error

	CreateSituation(situation *db.Situation) error
	GetSituation(id string) (*db.Situation, error)
	ListSituationsByRound(roundID string) ([]db.Situation, error)
	UpdateSituationPosition(id string, position int) error

	RecordEvent(event *db.Event) error
	ListEventsByGame(gameID string) ([]db.Event, error)
}
