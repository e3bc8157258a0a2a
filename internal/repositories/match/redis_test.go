package match

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/pinnacle-pathways/matchtrack/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	// Set up test time
	s.testNow = time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) newTestMatch(id string) *models.Match {
	return &models.Match{
		ID:        id,
		Name:      "Pinnacle vs Summit",
		SportID:   "test-sport-id",
		MatchDate: s.testNow,
		VideoURL:  "https://videos.example.com/finals.mp4",
		Players:   []string{"alice", "bob"},
		Sessions: []*models.Session{
			{
				ID:     "test-session-id",
				Name:   "Session 1",
				Slices: []*models.Slice{},
				Events: []*models.Event{},
			},
		},
		CreatedAt: s.testNow,
		UpdatedAt: s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetMatch() {
	m := s.newTestMatch("test-match-id")

	err := s.repo.SaveMatch(context.Background(), &SaveMatchInput{
		Match: m,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetMatch(context.Background(), &GetMatchInput{
		MatchID: "test-match-id",
	})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal("test-match-id", retrieved.ID)
	s.Equal("Pinnacle vs Summit", retrieved.Name)
	s.Equal("test-sport-id", retrieved.SportID)
	s.Equal([]string{"alice", "bob"}, retrieved.Players)
	s.Len(retrieved.Sessions, 1)
	s.Equal("test-session-id", retrieved.Sessions[0].ID)
	s.Equal("Session 1", retrieved.Sessions[0].Name)
	s.Equal(s.testNow.Unix(), retrieved.MatchDate.Unix())
}

func (s *RedisRepositoryTestSuite) TestGetMatchNotFound() {
	_, err := s.repo.GetMatch(context.Background(), &GetMatchInput{
		MatchID: "missing-match-id",
	})
	s.Require().Error(err)
	s.Equal(ErrMatchNotFound, err)
}

func (s *RedisRepositoryTestSuite) TestListMatchesOrderedByDate() {
	older := s.newTestMatch("older-match-id")
	older.MatchDate = s.testNow.Add(-48 * time.Hour)

	newer := s.newTestMatch("newer-match-id")
	newer.MatchDate = s.testNow

	// Save newer first to prove ordering comes from the index, not
	// insertion order
	s.Require().NoError(s.repo.SaveMatch(context.Background(), &SaveMatchInput{Match: newer}))
	s.Require().NoError(s.repo.SaveMatch(context.Background(), &SaveMatchInput{Match: older}))

	result, err := s.repo.ListMatches(context.Background(), &ListMatchesInput{})
	s.Require().NoError(err)
	s.Require().Len(result.Matches, 2)
	s.Equal("older-match-id", result.Matches[0].ID)
	s.Equal("newer-match-id", result.Matches[1].ID)
}

func (s *RedisRepositoryTestSuite) TestListMatchesBySport() {
	football := s.newTestMatch("football-match-id")
	football.SportID = "football"

	rugby := s.newTestMatch("rugby-match-id")
	rugby.SportID = "rugby"

	s.Require().NoError(s.repo.SaveMatch(context.Background(), &SaveMatchInput{Match: football}))
	s.Require().NoError(s.repo.SaveMatch(context.Background(), &SaveMatchInput{Match: rugby}))

	result, err := s.repo.ListMatches(context.Background(), &ListMatchesInput{
		SportID: "rugby",
	})
	s.Require().NoError(err)
	s.Require().Len(result.Matches, 1)
	s.Equal("rugby-match-id", result.Matches[0].ID)
}

func (s *RedisRepositoryTestSuite) TestReplaceMatchFieldsPlayers() {
	m := s.newTestMatch("test-match-id")
	s.Require().NoError(s.repo.SaveMatch(context.Background(), &SaveMatchInput{Match: m}))

	players := []string{"alice", "bob", "carol"}
	updated, err := s.repo.ReplaceMatchFields(context.Background(), &ReplaceMatchFieldsInput{
		MatchID: "test-match-id",
		Fields: &MatchFields{
			Players: &players,
		},
	})
	s.Require().NoError(err)
	s.Require().NotNil(updated)

	// The players field is replaced in full, everything else is untouched
	s.Equal([]string{"alice", "bob", "carol"}, updated.Players)
	s.Equal("Pinnacle vs Summit", updated.Name)
	s.Len(updated.Sessions, 1)

	// The replacement is persisted, not just returned
	retrieved, err := s.repo.GetMatch(context.Background(), &GetMatchInput{
		MatchID: "test-match-id",
	})
	s.Require().NoError(err)
	s.Equal([]string{"alice", "bob", "carol"}, retrieved.Players)
	s.True(retrieved.UpdatedAt.After(s.testNow))
}

func (s *RedisRepositoryTestSuite) TestReplaceMatchFieldsSessions() {
	m := s.newTestMatch("test-match-id")
	s.Require().NoError(s.repo.SaveMatch(context.Background(), &SaveMatchInput{Match: m}))

	sessions := []*models.Session{
		{
			ID:   "test-session-id",
			Name: "Session 1",
			Slices: []*models.Slice{
				{
					ID:            "test-slice-id",
					StartTime:     0,
					EndTime:       12.5,
					ActivePlayers: []string{"alice"},
				},
			},
			Events: []*models.Event{},
		},
	}

	updated, err := s.repo.ReplaceMatchFields(context.Background(), &ReplaceMatchFieldsInput{
		MatchID: "test-match-id",
		Fields: &MatchFields{
			Sessions: &sessions,
		},
	})
	s.Require().NoError(err)
	s.Require().Len(updated.Sessions, 1)
	s.Require().Len(updated.Sessions[0].Slices, 1)
	s.Equal(12.5, updated.Sessions[0].Slices[0].EndTime)
	s.Equal([]string{"alice"}, updated.Sessions[0].Slices[0].ActivePlayers)
}

func (s *RedisRepositoryTestSuite) TestReplaceMatchFieldsNotFound() {
	name := "New Name"
	_, err := s.repo.ReplaceMatchFields(context.Background(), &ReplaceMatchFieldsInput{
		MatchID: "missing-match-id",
		Fields: &MatchFields{
			Name: &name,
		},
	})
	s.Require().Error(err)
	s.Equal(ErrMatchNotFound, err)
}

func (s *RedisRepositoryTestSuite) TestDeleteMatch() {
	m := s.newTestMatch("test-match-id")
	s.Require().NoError(s.repo.SaveMatch(context.Background(), &SaveMatchInput{Match: m}))

	err := s.repo.DeleteMatch(context.Background(), &DeleteMatchInput{
		MatchID: "test-match-id",
	})
	s.Require().NoError(err)

	_, err = s.repo.GetMatch(context.Background(), &GetMatchInput{
		MatchID: "test-match-id",
	})
	s.Require().Error(err)
	s.Equal(ErrMatchNotFound, err)

	// The date index no longer lists the match
	result, err := s.repo.ListMatches(context.Background(), &ListMatchesInput{})
	s.Require().NoError(err)
	s.Len(result.Matches, 0)
}
