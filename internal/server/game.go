package server

import (
	"log"
	"strings"

	"situation-scale/internal/db"

	"github.com/google/uuid"
)

const roomCodeAttempts = 5

func (s *Server) gameByRoomCode(roomCode string) (*db.Game, error) {
	game, err := s.store.GetGameByRoomCode(roomCode)
	if err != nil {
		return nil, persistenceError("load game", err)
	}
	if game == nil {
		return nil, newNotFoundError("game not found")
	}
	return game, nil
}

// createGame creates the room and its host in one stroke. The host's ID is
// generated up front so the game row can reference it at insert time.
func (s *Server) createGame(hostName string) (*db.Game, *db.Player, error) {
	name, err := validateName(hostName)
	if err != nil {
		return nil, nil, err
	}

	roomCode := ""
	for attempt := 0; attempt < roomCodeAttempts; attempt++ {
		candidate := newRoomCode()
		existing, err := s.store.GetGameByRoomCode(candidate)
		if err != nil {
			return nil, nil, persistenceError("create game", err)
		}
		if existing == nil {
			roomCode = candidate
			break
		}
	}
	if roomCode == "" {
		return nil, nil, persistenceError("create game", errRoomCodeExhausted)
	}

	hostID := uuid.NewString()
	game := db.Game{
		RoomCode: roomCode,
		Status:   db.StatusLobby,
		HostID:   hostID,
	}
	if err := s.store.CreateGame(&game); err != nil {
		return nil, nil, persistenceError("create game", err)
	}
	host := db.Player{
		ID:     hostID,
		GameID: game.ID,
		Name:   name,
		Color:  hostColor,
		IsHost: true,
	}
	if err := s.store.CreatePlayer(&host); err != nil {
		return nil, nil, persistenceError("create host player", err)
	}
	log.Printf("game created game_id=%s room_code=%s", game.ID, game.RoomCode)
	return &game, &host, nil
}

func (s *Server) joinGame(roomCode, playerName string) (*db.Game, *db.Player, error) {
	name, err := validateName(playerName)
	if err != nil {
		return nil, nil, err
	}
	game, err := s.gameByRoomCode(roomCode)
	if err != nil {
		return nil, nil, err
	}
	if game.Status != db.StatusLobby {
		return nil, nil, newInvalidStateError("game has already started")
	}
	players, err := s.store.ListPlayersByGame(game.ID)
	if err != nil {
		return nil, nil, persistenceError("load players", err)
	}
	if len(players) >= s.cfg.MaxPlayers {
		return nil, nil, newCapacityError("game is full")
	}

	usedColors := make([]string, 0, len(players))
	for _, existing := range players {
		usedColors = append(usedColors, existing.Color)
	}
	player := db.Player{
		GameID: game.ID,
		Name:   name,
		Color:  pickPlayerColor(usedColors),
		IsHost: false,
	}
	if err := s.store.CreatePlayer(&player); err != nil {
		return nil, nil, persistenceError("join game", err)
	}
	log.Printf("player joined game_id=%s player_id=%s", game.ID, player.ID)
	s.publish(game, eventPlayerJoined, map[string]any{"player": player})
	return game, &player, nil
}

// configureSetup resolves the prompt list from a built-in theme or the
// caller's custom texts and appends it to the game. Repeated calls are
// additive; previously configured prompts are kept.
func (s *Server) configureSetup(roomCode, theme string, customPrompts []string) error {
	game, err := s.gameByRoomCode(roomCode)
	if err != nil {
		return err
	}

	var promptTexts []string
	if theme != "" {
		promptTexts = themePrompts[theme]
	}
	if len(promptTexts) == 0 && len(customPrompts) > 0 {
		for _, text := range customPrompts {
			if trimmed := strings.TrimSpace(text); trimmed != "" {
				promptTexts = append(promptTexts, trimmed)
			}
		}
		if len(promptTexts) < s.cfg.MinCustomPrompts {
			return newValidationError("at least %d custom prompts are required", s.cfg.MinCustomPrompts)
		}
	}
	if len(promptTexts) == 0 {
		return newValidationError("no usable prompts provided")
	}

	prompts := make([]db.Prompt, 0, len(promptTexts))
	for _, text := range promptTexts {
		prompts = append(prompts, db.Prompt{
			GameID: game.ID,
			Text:   text,
		})
	}
	if err := s.store.CreatePrompts(prompts); err != nil {
		return persistenceError("save prompts", err)
	}
	log.Printf("setup updated game_id=%s theme=%s prompts=%d", game.ID, theme, len(promptTexts))
	s.publish(game, eventSetupUpdated, map[string]any{
		"theme":       theme,
		"promptTexts": promptTexts,
	})
	return nil
}

func (s *Server) startGame(roomCode string) (*db.Round, *db.Prompt, error) {
	game, err := s.gameByRoomCode(roomCode)
	if err != nil {
		return nil, nil, err
	}
	players, err := s.store.ListPlayersByGame(game.ID)
	if err != nil {
		return nil, nil, persistenceError("load players", err)
	}
	if len(players) < s.cfg.MinPlayersToStart {
		return nil, nil, newInsufficientPlayersError("need at least 2 players to start")
	}
	unused, err := s.store.ListUnusedPromptsByGame(game.ID)
	if err != nil {
		return nil, nil, persistenceError("load prompts", err)
	}
	if len(unused) == 0 {
		return nil, nil, newNoPromptsError("no prompts available")
	}

	first := unused[0]
	round, err := s.openRound(game, &first, 1)
	if err != nil {
		return nil, nil, err
	}
	log.Printf("game started game_id=%s round_id=%s", game.ID, round.ID)
	s.publish(game, eventGameStarted, map[string]any{
		"round":  round,
		"prompt": first,
	})
	return round, &first, nil
}

// openRound creates the round, consumes its prompt, and points the game at
// it. This is the single place the IN_PROGRESS transition happens.
func (s *Server) openRound(game *db.Game, prompt *db.Prompt, roundNumber int) (*db.Round, error) {
	round := db.Round{
		GameID:      game.ID,
		PromptID:    prompt.ID,
		RoundNumber: roundNumber,
	}
	if err := s.store.CreateRound(&round); err != nil {
		return nil, persistenceError("create round", err)
	}
	if err := s.store.MarkPromptUsed(prompt.ID); err != nil {
		return nil, persistenceError("consume prompt", err)
	}
	if err := s.store.UpdateGameStatus(game.ID, db.StatusInProgress); err != nil {
		return nil, persistenceError("update game status", err)
	}
	if err := s.store.UpdateGameCurrentRound(game.ID, &round.ID); err != nil {
		return nil, persistenceError("update current round", err)
	}
	game.Status = db.StatusInProgress
	game.CurrentRoundID = &round.ID
	return &round, nil
}
