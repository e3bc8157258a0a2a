package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/pinnacle-pathways/matchtrack/internal/common/clock"
	"github.com/pinnacle-pathways/matchtrack/internal/common/uuid"
	"github.com/pinnacle-pathways/matchtrack/internal/models"
	actionLogRepo "github.com/pinnacle-pathways/matchtrack/internal/repositories/actionlog"
	matchRepo "github.com/pinnacle-pathways/matchtrack/internal/repositories/match"
	sportRepo "github.com/pinnacle-pathways/matchtrack/internal/repositories/sport"
	visitRepo "github.com/pinnacle-pathways/matchtrack/internal/repositories/visit"
	"github.com/pinnacle-pathways/matchtrack/internal/services/analysis"
	"github.com/pinnacle-pathways/matchtrack/internal/services/analytics"
)

// RouterTestSuite drives the HTTP surface against real repositories
// backed by miniredis.
type RouterTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	handler http.Handler
}

func (s *RouterTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	matches, err := matchRepo.NewRedis(&matchRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)

	sports, err := sportRepo.NewRedis(&sportRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)

	visits, err := visitRepo.NewRedis(&visitRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)

	actions, err := actionLogRepo.NewRedis(&actionLogRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)

	// Seed the sport registry
	s.Require().NoError(sports.SaveSport(context.Background(), &sportRepo.SaveSportInput{
		Sport: &models.Sport{
			ID:         "football",
			Name:       "Football",
			EventTypes: []string{"Goal", "Foul"},
		},
	}))

	analysisSvc, err := analysis.New(&analysis.Config{
		MatchRepo:     matches,
		SportRepo:     sports,
		ActionLogRepo: actions,
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
	})
	s.Require().NoError(err)

	analyticsSvc, err := analytics.New(&analytics.Config{
		VisitRepo:     visits,
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
	})
	s.Require().NoError(err)

	handler, err := New(&Config{
		AnalysisService:  analysisSvc,
		AnalyticsService: analyticsSvc,
		SportRepo:        sports,
		ActionLogRepo:    actions,
	})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *RouterTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

// do issues a request against the router and decodes the JSON response
func (s *RouterTestSuite) do(method, path string, body any, out any) int {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	if out != nil && rec.Code < http.StatusBadRequest {
		s.Require().NoError(json.NewDecoder(rec.Body).Decode(out))
	}
	return rec.Code
}

func (s *RouterTestSuite) createMatch() *models.Match {
	var m models.Match
	code := s.do(http.MethodPost, "/matches", map[string]any{
		"name":  "Pinnacle vs Summit",
		"sport": "football",
	}, &m)
	s.Require().Equal(http.StatusCreated, code)
	return &m
}

func (s *RouterTestSuite) TestHealthz() {
	code := s.do(http.MethodGet, "/healthz", nil, nil)
	s.Equal(http.StatusOK, code)
}

func (s *RouterTestSuite) TestCreateAndGetMatch() {
	m := s.createMatch()

	s.NotEmpty(m.ID)
	s.Require().Len(m.Sessions, 1)
	s.Equal("Session 1", m.Sessions[0].Name)

	var fetched models.Match
	code := s.do(http.MethodGet, "/matches/"+m.ID, nil, &fetched)
	s.Equal(http.StatusOK, code)
	s.Equal(m.ID, fetched.ID)
}

func (s *RouterTestSuite) TestCreateMatchUnknownSport() {
	code := s.do(http.MethodPost, "/matches", map[string]any{
		"name":  "Pinnacle vs Summit",
		"sport": "curling",
	}, nil)
	s.Equal(http.StatusNotFound, code)
}

func (s *RouterTestSuite) TestRosterLifecycle() {
	m := s.createMatch()

	var updated models.Match
	code := s.do(http.MethodPost, "/matches/"+m.ID+"/players", map[string]any{"playerId": "alice"}, &updated)
	s.Equal(http.StatusOK, code)
	s.Equal([]string{"alice"}, updated.Players)

	// Duplicate add leaves the roster unchanged
	code = s.do(http.MethodPost, "/matches/"+m.ID+"/players", map[string]any{"playerId": "alice"}, &updated)
	s.Equal(http.StatusOK, code)
	s.Equal([]string{"alice"}, updated.Players)

	code = s.do(http.MethodDelete, "/matches/"+m.ID+"/players/alice", nil, &updated)
	s.Equal(http.StatusOK, code)
	s.Empty(updated.Players)
}

func (s *RouterTestSuite) TestSliceTimeline() {
	m := s.createMatch()
	sessionID := m.Sessions[0].ID
	base := fmt.Sprintf("/matches/%s/sessions/%s/slices", m.ID, sessionID)

	var first models.Slice
	code := s.do(http.MethodPost, base, map[string]any{"playbackTime": 10}, &first)
	s.Equal(http.StatusCreated, code)
	s.Equal(0.0, first.StartTime)
	s.Equal(10.0, first.EndTime)

	var second models.Slice
	code = s.do(http.MethodPost, base, map[string]any{"playbackTime": 25}, &second)
	s.Equal(http.StatusCreated, code)
	s.Equal(10.0, second.StartTime)
	s.Equal(25.0, second.EndTime)

	// Toggling a player is reflected in the persisted document
	var toggled models.Slice
	code = s.do(http.MethodPost, base+"/"+second.ID+"/toggle", map[string]any{"playerId": "alice"}, &toggled)
	s.Equal(http.StatusOK, code)
	s.Equal([]string{"alice"}, toggled.ActivePlayers)

	var fetched models.Match
	code = s.do(http.MethodGet, "/matches/"+m.ID, nil, &fetched)
	s.Equal(http.StatusOK, code)
	s.Require().Len(fetched.Sessions[0].Slices, 2)
	s.Equal([]string{"alice"}, fetched.Sessions[0].Slices[1].ActivePlayers)
}

func (s *RouterTestSuite) TestAddEventValidation() {
	m := s.createMatch()
	base := fmt.Sprintf("/matches/%s/sessions/%s/events", m.ID, m.Sessions[0].ID)

	code := s.do(http.MethodPost, base, map[string]any{"type": "", "playbackTime": 42.5}, nil)
	s.Equal(http.StatusBadRequest, code)

	var ev eventResponse
	code = s.do(http.MethodPost, base, map[string]any{"type": "Goal", "playbackTime": 42.5}, &ev)
	s.Equal(http.StatusCreated, code)
	s.Equal("Goal", ev.Type)
	s.Equal(42.5, ev.Timestamp)
	s.Equal("New Event", ev.Details)
	s.Equal("0:42", ev.Position)
}

func (s *RouterTestSuite) TestSportsEndpoints() {
	var sports []*models.Sport
	code := s.do(http.MethodGet, "/sports", nil, &sports)
	s.Equal(http.StatusOK, code)
	s.Require().Len(sports, 1)
	s.Equal("Football", sports[0].Name)

	code = s.do(http.MethodGet, "/sports/curling", nil, nil)
	s.Equal(http.StatusNotFound, code)
}

func (s *RouterTestSuite) TestVisitAndDashboard() {
	var v models.Visit
	code := s.do(http.MethodPost, "/visits", map[string]any{"page": "/gallery"}, &v)
	s.Equal(http.StatusCreated, code)
	s.NotEmpty(v.ID)

	code = s.do(http.MethodPost, "/visits/"+v.ID+"/end", nil, &v)
	s.Equal(http.StatusOK, code)
	s.False(v.EndedAt.IsZero())

	var dash dashboardResponse
	code = s.do(http.MethodGet, "/analytics/dashboard", nil, &dash)
	s.Equal(http.StatusOK, code)
	s.Equal(int64(1), dash.TotalViews)
	s.Equal(int64(1), dash.PageCounts["/gallery"])
}

func (s *RouterTestSuite) TestActionsTrail() {
	m := s.createMatch()
	s.do(http.MethodPost, "/matches/"+m.ID+"/players", map[string]any{"playerId": "alice"}, nil)

	var entries []*models.ActionEntry
	code := s.do(http.MethodGet, "/actions", nil, &entries)
	s.Equal(http.StatusOK, code)
	s.Require().GreaterOrEqual(len(entries), 2)
	s.Equal("match.addPlayer", entries[0].Action)
	s.Equal(m.ID, entries[0].TargetID)
}
