package server

import (
	"errors"

	"situation-scale/internal/db"

	"gorm.io/gorm"
)

type gormStore struct {
	conn *gorm.DB
}

func NewGormStore(conn *gorm.DB) Store {
	return &gormStore{conn: conn}
}

func (s *gormStore) CreateGame(game *db.Game) error {
	return s.conn.Create(game).Error
}

func (s *gormStore) GetGame(id string) (*db.Game, error) {
	var game db.Game
	if err := s.conn.Where("id = ?", id).First(&game).Error; err != nil {
		return nil, ignoreNotFound(err)
	}
	return &game, nil
}

func (s *gormStore) GetGameByRoomCode(roomCode string) (*db.Game, error) {
	var game db.Game
	if err := s.conn.Where("room_code = ?", roomCode).First(&game).Error; err != nil {
		return nil, ignoreNotFound(err)
	}
	return &game, nil
}

func (s *gormStore) UpdateGameStatus(gameID, status string) error {
	return s.conn.Model(&db.Game{}).Where("id = ?", gameID).Update("status", status).Error
}

func (s *gormStore) UpdateGameCurrentRound(gameID string, roundID *string) error {
	return s.conn.Model(&db.Game{}).Where("id = ?", gameID).Update("current_round_id", roundID).Error
}

func (s *gormStore) CreatePlayer(player *db.Player) error {
	return s.conn.Create(player).Error
}

func (s *gormStore) GetPlayer(id string) (*db.Player, error) {
	var player db.Player
	if err := s.conn.Where("id = ?", id).First(&player).Error; err != nil {
		return nil, ignoreNotFound(err)
	}
	return &player, nil
}

func (s *gormStore) ListPlayersByGame(gameID string) ([]db.Player, error) {
	var players []db.Player
	err := s.conn.Where("game_id = ?", gameID).Order("id asc").Find(&players).Error
	return players, err
}

func (s *gormStore) CreatePrompts(prompts []db.Prompt) error {
	if len(prompts) == 0 {
		return nil
	}
	return s.conn.Create(&prompts).Error
}

func (s *gormStore) ListPromptsByGame(gameID string) ([]db.Prompt, error) {
	var prompts []db.Prompt
	err := s.conn.Where("game_id = ?", gameID).Order("id asc").Find(&prompts).Error
	return prompts, err
}

func (s *gormStore) ListUnusedPromptsByGame(gameID string) ([]db.Prompt, error) {
	var prompts []db.Prompt
	err := s.conn.Where("game_id = ? AND used = ?", gameID, false).Order("id asc").Find(&prompts).Error
	return prompts, err
}

func (s *gormStore) MarkPromptUsed(id string) error {
	return s.conn.Model(&db.Prompt{}).Where("id = ?", id).Update("used", true).Error
}

func (s *gormStore) CreateRound(round *db.Round) error {
	return s.conn.Create(round).Error
}

func (s *gormStore) GetRound(id string) (*db.Round, error) {
	var round db.Round
	if err := s.conn.Where("id = ?", id).First(&round).Error; err != nil {
		return nil, ignoreNotFound(err)
	}
	return &round, nil
}

func (s *gormStore) ListRoundsByGame(gameID string) ([]db.Round, error) {
	var rounds []db.Round
	err := s.conn.Where("game_id = ?", gameID).Order("round_number desc").Find(&rounds).Error
	return rounds, err
}

func (s *gormStore) CountRoundsByGame(gameID string) (int, error) {
	var count int64
	err := s.conn.Model(&db.Round{}).Where("game_id = ?", gameID).Count(&count).Error
	return int(count), err
}

func (s *gormStore) MarkRoundCompleted(id string) error {
	return s.conn.Model(&db.Round{}).Where("id = ?", id).Update("completed", true).Error
}

func (s *gormStore) CreateSituation(situation *db.Situation) error {
	return s.conn.Omit("Player").Create(situation).Error
}

func (s *gormStore) GetSituation(id string) (*db.Situation, error) {
	var situation db.Situation
	if err := s.conn.Where("id = ?", id).First(&situation).Error; err != nil {
		return nil, ignoreNotFound(err)
	}
	return &situation, nil
}

func (s *gormStore) ListSituationsByRound(roundID string) ([]db.Situation, error) {
	var situations []db.Situation
	err := s.conn.Preload("Player").
		Where("round_id = ?", roundID).
		Order("created_at asc, id asc").
		Find(&situations).Error
	return situations, err
}

func (s *gormStore) UpdateSituationPosition(id string, position int) error {
	return s.conn.Model(&db.Situation{}).Where("id = ?", id).Update("position", position).Error
}

func (s *gormStore) RecordEvent(event *db.Event) error {
	return s.conn.Create(event).Error
}

func (s *gormStore) ListEventsByGame(gameID string) ([]db.Event, error) {
	var events []db.Event
	err := s.conn.Where("game_id = ?", gameID).Order("created_at asc, id asc").Find(&events).Error
	return events, err
}

func ignoreNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}
