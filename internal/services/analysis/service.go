package analysis

import (
	"context"
	"errors"
	"fmt"

	"github.com/pinnacle-pathways/matchtrack/internal/models"
	actionLogRepo "github.com/pinnacle-pathways/matchtrack/internal/repositories/actionlog"
	matchRepo "github.com/pinnacle-pathways/matchtrack/internal/repositories/match"
	sportRepo "github.com/pinnacle-pathways/matchtrack/internal/repositories/sport"
)

// service implements the Service interface
type service struct {
	config *Config
}

// New creates a new analysis service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.MatchRepo == nil {
		return nil, ErrNilMatchRepo
	}

	if cfg.SportRepo == nil {
		return nil, ErrNilSportRepo
	}

	if cfg.ActionLogRepo == nil {
		return nil, ErrNilActionLogRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		config: cfg,
	}, nil
}

// CreateMatch creates a new match with one default session
func (s *service) CreateMatch(ctx context.Context, input *CreateMatchInput) (*CreateMatchOutput, error) {
	if input.Name == "" {
		return nil, ErrEmptyMatchName
	}

	// The sport must exist in the registry
	_, err := s.config.SportRepo.GetSport(ctx, &sportRepo.GetSportInput{
		SportID: input.SportID,
	})
	if err != nil {
		if errors.Is(err, sportRepo.ErrSportNotFound) {
			return nil, ErrSportNotFound
		}
		return nil, err
	}

	now := s.config.Clock.Now()
	matchDate := input.MatchDate
	if matchDate.IsZero() {
		matchDate = now
	}

	m := &models.Match{
		ID:        s.config.UUIDGenerator.NewUUID(),
		Name:      input.Name,
		SportID:   input.SportID,
		MatchDate: matchDate,
		VideoURL:  input.VideoURL,
		Players:   []string{},
		Sessions: []*models.Session{
			{
				ID:     s.config.UUIDGenerator.NewUUID(),
				Name:   defaultSessionName,
				Slices: []*models.Slice{},
				Events: []*models.Event{},
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.config.MatchRepo.SaveMatch(ctx, &matchRepo.SaveMatchInput{
		Match: m,
	})
	if err != nil {
		return nil, err
	}

	s.appendAudit(ctx, input.Actor, "match.create", m.ID)

	return &CreateMatchOutput{
		Match: m,
	}, nil
}

// GetMatch retrieves a match by ID
func (s *service) GetMatch(ctx context.Context, input *GetMatchInput) (*GetMatchOutput, error) {
	m, err := s.getMatch(ctx, input.MatchID)
	if err != nil {
		return nil, err
	}

	return &GetMatchOutput{
		Match: m,
	}, nil
}

// ListMatches retrieves matches ordered by match date
func (s *service) ListMatches(ctx context.Context, input *ListMatchesInput) (*ListMatchesOutput, error) {
	result, err := s.config.MatchRepo.ListMatches(ctx, &matchRepo.ListMatchesInput{
		SportID: input.SportID,
	})
	if err != nil {
		return nil, err
	}

	return &ListMatchesOutput{
		Matches: result.Matches,
	}, nil
}

// AddPlayer adds a player identifier to the match roster. Adding an
// identifier that is already present leaves the roster unchanged.
func (s *service) AddPlayer(ctx context.Context, input *AddPlayerInput) (*AddPlayerOutput, error) {
	if input.PlayerID == "" {
		return nil, ErrEmptyPlayerID
	}

	m, err := s.getMatch(ctx, input.MatchID)
	if err != nil {
		return nil, err
	}

	for _, p := range m.Players {
		if p == input.PlayerID {
			return &AddPlayerOutput{
				Match: m,
				Added: false,
			}, nil
		}
	}

	players := append(append([]string{}, m.Players...), input.PlayerID)

	updated, err := s.replacePlayers(ctx, input.MatchID, players)
	if err != nil {
		return nil, err
	}

	s.appendAudit(ctx, input.Actor, "match.addPlayer", input.MatchID)

	return &AddPlayerOutput{
		Match: updated,
		Added: true,
	}, nil
}

// RemovePlayer removes a player identifier from the match roster by
// exact match. Removing an absent identifier is a no-op. Nothing
// prevents removing a player that existing slices still reference.
func (s *service) RemovePlayer(ctx context.Context, input *RemovePlayerInput) (*RemovePlayerOutput, error) {
	if input.PlayerID == "" {
		return nil, ErrEmptyPlayerID
	}

	m, err := s.getMatch(ctx, input.MatchID)
	if err != nil {
		return nil, err
	}

	players := make([]string, 0, len(m.Players))
	removed := false
	for _, p := range m.Players {
		if p == input.PlayerID {
			removed = true
			continue
		}
		players = append(players, p)
	}

	if !removed {
		return &RemovePlayerOutput{
			Match:   m,
			Removed: false,
		}, nil
	}

	updated, err := s.replacePlayers(ctx, input.MatchID, players)
	if err != nil {
		return nil, err
	}

	s.appendAudit(ctx, input.Actor, "match.removePlayer", input.MatchID)

	return &RemovePlayerOutput{
		Match:   updated,
		Removed: true,
	}, nil
}

// AddSession appends a new named session to a match
func (s *service) AddSession(ctx context.Context, input *AddSessionInput) (*AddSessionOutput, error) {
	m, err := s.getMatch(ctx, input.MatchID)
	if err != nil {
		return nil, err
	}

	name := input.Name
	if name == "" {
		name = fmt.Sprintf("Session %d", len(m.Sessions)+1)
	}

	session := &models.Session{
		ID:     s.config.UUIDGenerator.NewUUID(),
		Name:   name,
		Slices: []*models.Slice{},
		Events: []*models.Event{},
	}

	m.Sessions = append(m.Sessions, session)

	updated, err := s.replaceSessions(ctx, input.MatchID, m.Sessions)
	if err != nil {
		return nil, err
	}

	s.appendAudit(ctx, input.Actor, "match.addSession", input.MatchID)

	return &AddSessionOutput{
		Match:   updated,
		Session: session,
	}, nil
}

// CreateSlice appends a new time slice to a session. The new slice
// starts where the previous slice ended (or at zero) and inherits the
// previous slice's active players, so the roster carries forward until
// changed. The end time is whatever playback position the caller
// supplies; an end before the start is accepted and persisted as-is.
func (s *service) CreateSlice(ctx context.Context, input *CreateSliceInput) (*CreateSliceOutput, error) {
	m, err := s.getMatch(ctx, input.MatchID)
	if err != nil {
		return nil, err
	}

	session := findSession(m, input.SessionID)
	if session == nil {
		return nil, ErrSessionNotFound
	}

	startTime := 0.0
	activePlayers := []string{}
	if len(session.Slices) > 0 {
		prev := session.Slices[len(session.Slices)-1]
		startTime = prev.EndTime
		activePlayers = append(activePlayers, prev.ActivePlayers...)
	}

	slice := &models.Slice{
		ID:            s.config.UUIDGenerator.NewUUID(),
		StartTime:     startTime,
		EndTime:       input.PlaybackTime,
		ActivePlayers: activePlayers,
	}

	session.Slices = append(session.Slices, slice)

	updated, err := s.replaceSessions(ctx, input.MatchID, m.Sessions)
	if err != nil {
		return nil, err
	}

	s.appendAudit(ctx, input.Actor, "match.createSlice", input.MatchID)

	return &CreateSliceOutput{
		Match: updated,
		Slice: slice,
	}, nil
}

// ToggleActivePlayer flips a player's membership in a slice's active
// set: present players are removed, absent players are appended.
// Applying the same toggle twice restores the original set.
func (s *service) ToggleActivePlayer(ctx context.Context, input *ToggleActivePlayerInput) (*ToggleActivePlayerOutput, error) {
	if input.PlayerID == "" {
		return nil, ErrEmptyPlayerID
	}

	m, err := s.getMatch(ctx, input.MatchID)
	if err != nil {
		return nil, err
	}

	session := findSession(m, input.SessionID)
	if session == nil {
		return nil, ErrSessionNotFound
	}

	slice := findSlice(session, input.SliceID)
	if slice == nil {
		return nil, ErrSliceNotFound
	}

	active := true
	players := make([]string, 0, len(slice.ActivePlayers)+1)
	for _, p := range slice.ActivePlayers {
		if p == input.PlayerID {
			active = false
			continue
		}
		players = append(players, p)
	}
	if active {
		players = append(players, input.PlayerID)
	}
	slice.ActivePlayers = players

	updated, err := s.replaceSessions(ctx, input.MatchID, m.Sessions)
	if err != nil {
		return nil, err
	}

	s.appendAudit(ctx, input.Actor, "match.toggleActivePlayer", input.MatchID)

	return &ToggleActivePlayerOutput{
		Match:  updated,
		Slice:  slice,
		Active: active,
	}, nil
}

// AddEvent appends a typed, timestamped event to a session. The type
// is required but not checked against the sport's declared vocabulary.
func (s *service) AddEvent(ctx context.Context, input *AddEventInput) (*AddEventOutput, error) {
	if input.Type == "" {
		return nil, ErrEmptyEventType
	}

	m, err := s.getMatch(ctx, input.MatchID)
	if err != nil {
		return nil, err
	}

	session := findSession(m, input.SessionID)
	if session == nil {
		return nil, ErrSessionNotFound
	}

	event := &models.Event{
		ID:        s.config.UUIDGenerator.NewUUID(),
		Timestamp: input.PlaybackTime,
		Type:      input.Type,
		Details:   defaultEventDetails,
		Players:   input.Players,
	}

	session.Events = append(session.Events, event)

	updated, err := s.replaceSessions(ctx, input.MatchID, m.Sessions)
	if err != nil {
		return nil, err
	}

	s.appendAudit(ctx, input.Actor, "match.addEvent", input.MatchID)

	return &AddEventOutput{
		Match: updated,
		Event: event,
	}, nil
}

// getMatch fetches a match and maps the repository's not-found error
func (s *service) getMatch(ctx context.Context, matchID string) (*models.Match, error) {
	m, err := s.config.MatchRepo.GetMatch(ctx, &matchRepo.GetMatchInput{
		MatchID: matchID,
	})
	if err != nil {
		if errors.Is(err, matchRepo.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}

	return m, nil
}

// replacePlayers persists the full players field of a match
func (s *service) replacePlayers(ctx context.Context, matchID string, players []string) (*models.Match, error) {
	return s.config.MatchRepo.ReplaceMatchFields(ctx, &matchRepo.ReplaceMatchFieldsInput{
		MatchID: matchID,
		Fields: &matchRepo.MatchFields{
			Players: &players,
		},
	})
}

// replaceSessions persists the full sessions field of a match
func (s *service) replaceSessions(ctx context.Context, matchID string, sessions []*models.Session) (*models.Match, error) {
	return s.config.MatchRepo.ReplaceMatchFields(ctx, &matchRepo.ReplaceMatchFieldsInput{
		MatchID: matchID,
		Fields: &matchRepo.MatchFields{
			Sessions: &sessions,
		},
	})
}

// appendAudit records the mutation in the action log. The audit trail
// is best effort: a failed append does not fail the mutation.
func (s *service) appendAudit(ctx context.Context, actor, action, matchID string) {
	if actor == "" {
		actor = "admin"
	}

	_ = s.config.ActionLogRepo.AppendAction(ctx, &actionLogRepo.AppendActionInput{
		Entry: &models.ActionEntry{
			ID:         s.config.UUIDGenerator.NewUUID(),
			Actor:      actor,
			Action:     action,
			TargetType: "match",
			TargetID:   matchID,
			Timestamp:  s.config.Clock.Now(),
		},
	})
}

// findSession returns the session with the given ID or nil
func findSession(m *models.Match, sessionID string) *models.Session {
	for _, session := range m.Sessions {
		if session.ID == sessionID {
			return session
		}
	}
	return nil
}

// findSlice returns the slice with the given ID or nil
func findSlice(session *models.Session, sliceID string) *models.Slice {
	for _, slice := range session.Slices {
		if slice.ID == sliceID {
			return slice
		}
	}
	return nil
}
