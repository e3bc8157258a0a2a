package sport

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/pinnacle-pathways/matchtrack/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetSport() {
	sp := &models.Sport{
		ID:         "football",
		Name:       "Football",
		EventTypes: []string{"Goal", "Foul", "Corner"},
	}

	err := s.repo.SaveSport(context.Background(), &SaveSportInput{
		Sport: sp,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetSport(context.Background(), &GetSportInput{
		SportID: "football",
	})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal("football", retrieved.ID)
	s.Equal("Football", retrieved.Name)
	s.Equal([]string{"Goal", "Foul", "Corner"}, retrieved.EventTypes)
}

func (s *RedisRepositoryTestSuite) TestGetSportNotFound() {
	_, err := s.repo.GetSport(context.Background(), &GetSportInput{
		SportID: "curling",
	})
	s.Require().Error(err)
	s.Equal(ErrSportNotFound, err)
}

func (s *RedisRepositoryTestSuite) TestListSports() {
	football := &models.Sport{ID: "football", Name: "Football", EventTypes: []string{"Goal"}}
	rugby := &models.Sport{ID: "rugby", Name: "Rugby", EventTypes: []string{"Try", "Tackle"}}

	s.Require().NoError(s.repo.SaveSport(context.Background(), &SaveSportInput{Sport: football}))
	s.Require().NoError(s.repo.SaveSport(context.Background(), &SaveSportInput{Sport: rugby}))

	result, err := s.repo.ListSports(context.Background(), &ListSportsInput{})
	s.Require().NoError(err)
	s.Require().Len(result.Sports, 2)

	names := make(map[string]string)
	for _, sp := range result.Sports {
		names[sp.ID] = sp.Name
	}
	s.Equal("Football", names["football"])
	s.Equal("Rugby", names["rugby"])
}
