package server

import (
	"sort"
	"sync"
	"time"

	"situation-scale/internal/db"

	"github.com/google/uuid"
)

// memoryStore keeps everything in process memory. It backs the tests and
// DB-less development runs; ordering semantics mirror the gorm store.
type memoryStore struct {
	mu         sync.Mutex
	games      map[string]*db.Game
	byCode     map[string]string
	players    map[string][]db.Player    // game id -> insertion order
	prompts    map[string][]db.Prompt    // game id -> insertion order
	rounds     map[string][]db.Round     // game id -> insertion order
	situations map[string][]db.Situation // round id -> insertion order
	events     map[string][]db.Event
	nextEvent  uint
}

func NewMemoryStore() Store {
	return &memoryStore{
		games:      make(map[string]*db.Game),
		byCode:     make(map[string]string),
		players:    make(map[string][]db.Player),
		prompts:    make(map[string][]db.Prompt),
		rounds:     make(map[string][]db.Round),
		situations: make(map[string][]db.Situation),
		events:     make(map[string][]db.Event),
		nextEvent:  1,
	}
}

func (s *memoryStore) CreateGame(game *db.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if game.ID == "" {
		game.ID = uuid.NewString()
	}
	if game.CreatedAt.IsZero() {
		game.CreatedAt = time.Now().UTC()
	}
	stored := *game
	s.games[stored.ID] = &stored
	s.byCode[stored.RoomCode] = stored.ID
	return nil
}

func (s *memoryStore) GetGame(id string) (*db.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	game, ok := s.games[id]
	if !ok {
		return nil, nil
	}
	copied := *game
	return &copied, nil
}

func (s *memoryStore) GetGameByRoomCode(roomCode string) (*db.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.byCode[roomCode]
	if !ok {
		return nil, nil
	}
	copied := *s.games[id]
	return &copied, nil
}

func (s *memoryStore) UpdateGameStatus(gameID, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if game, ok := s.games[gameID]; ok {
		game.Status = status
	}
	return nil
}

func (s *memoryStore) UpdateGameCurrentRound(gameID string, roundID *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if game, ok := s.games[gameID]; ok {
		game.CurrentRoundID = roundID
	}
	return nil
}

func (s *memoryStore) CreatePlayer(player *db.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if player.ID == "" {
		player.ID = uuid.NewString()
	}
	s.players[player.GameID] = append(s.players[player.GameID], *player)
	return nil
}

func (s *memoryStore) GetPlayer(id string) (*db.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, list := range s.players {
		for i := range list {
			if list[i].ID == id {
				copied := list[i]
				return &copied, nil
			}
		}
	}
	return nil, nil
}

func (s *memoryStore) ListPlayersByGame(gameID string) ([]db.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]db.Player(nil), s.players[gameID]...), nil
}

func (s *memoryStore) CreatePrompts(prompts []db.Prompt) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range prompts {
		if prompts[i].ID == "" {
			prompts[i].ID = uuid.NewString()
		}
		s.prompts[prompts[i].GameID] = append(s.prompts[prompts[i].GameID], prompts[i])
	}
	return nil
}

func (s *memoryStore) ListPromptsByGame(gameID string) ([]db.Prompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]db.Prompt(nil), s.prompts[gameID]...), nil
}

func (s *memoryStore) ListUnusedPromptsByGame(gameID string) ([]db.Prompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var unused []db.Prompt
	for _, prompt := range s.prompts[gameID] {
		if !prompt.Used {
			unused = append(unused, prompt)
		}
	}
	return unused, nil
}

func (s *memoryStore) MarkPromptUsed(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for gameID, list := range s.prompts {
		for i := range list {
			if list[i].ID == id {
				s.prompts[gameID][i].Used = true
				return nil
			}
		}
	}
	return nil
}

func (s *memoryStore) CreateRound(round *db.Round) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if round.ID == "" {
		round.ID = uuid.NewString()
	}
	s.rounds[round.GameID] = append(s.rounds[round.GameID], *round)
	return nil
}

func (s *memoryStore) GetRound(id string) (*db.Round, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, list := range s.rounds {
		for i := range list {
			if list[i].ID == id {
				copied := list[i]
				return &copied, nil
			}
		}
	}
	return nil, nil
}

func (s *memoryStore) ListRoundsByGame(gameID string) ([]db.Round, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := append([]db.Round(nil), s.rounds[gameID]...)
	sort.Slice(list, func(i, j int) bool {
		return list[i].RoundNumber > list[j].RoundNumber
	})
	return list, nil
}

func (s *memoryStore) CountRoundsByGame(gameID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rounds[gameID]), nil
}

func (s *memoryStore) MarkRoundCompleted(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for gameID, list := range s.rounds {
		for i := range list {
			if list[i].ID == id {
				s.rounds[gameID][i].Completed = true
				return nil
			}
		}
	}
	return nil
}

func (s *memoryStore) CreateSituation(situation *db.Situation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if situation.ID == "" {
		situation.ID = uuid.NewString()
	}
	if situation.CreatedAt.IsZero() {
		situation.CreatedAt = time.Now().UTC()
	}
	stored := *situation
	stored.Player = nil
	s.situations[stored.RoundID] = append(s.situations[stored.RoundID], stored)
	return nil
}

func (s *memoryStore) GetSituation(id string) (*db.Situation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, list := range s.situations {
		for i := range list {
			if list[i].ID == id {
				copied := list[i]
				return &copied, nil
			}
		}
	}
	return nil, nil
}

// ListSituationsByRound returns situations in creation order with their
// player attached, matching the gorm store's created_at/id ordering.
func (s *memoryStore) ListSituationsByRound(roundID string) ([]db.Situation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := append([]db.Situation(nil), s.situations[roundID]...)
	sort.SliceStable(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.Before(list[j].CreatedAt)
		}
		return list[i].ID < list[j].ID
	})
	for i := range list {
		list[i].Player = s.findPlayerLocked(list[i].PlayerID)
	}
	return list, nil
}

func (s *memoryStore) findPlayerLocked(id string) *db.Player {
	for _, players := range s.players {
		for i := range players {
			if players[i].ID == id {
				copied := players[i]
				return &copied
			}
		}
	}
	return nil
}

func (s *memoryStore) UpdateSituationPosition(id string, position int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for roundID, list := range s.situations {
		for i := range list {
			if list[i].ID == id {
				s.situations[roundID][i].Position = position
				return nil
			}
		}
	}
	return nil
}

func (s *memoryStore) RecordEvent(event *db.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if event.ID == 0 {
		event.ID = s.nextEvent
		s.nextEvent++
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}
	s.events[event.GameID] = append(s.events[event.GameID], *event)
	return nil
}

func (s *memoryStore) ListEventsByGame(gameID string) ([]db.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]db.Event(nil), s.events[gameID]...), nil
}
