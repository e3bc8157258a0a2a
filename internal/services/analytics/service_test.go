package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/pinnacle-pathways/matchtrack/internal/common/clock/mocks"
	uuidMocks "github.com/pinnacle-pathways/matchtrack/internal/common/uuid/mocks"
	"github.com/pinnacle-pathways/matchtrack/internal/models"
	visitRepo "github.com/pinnacle-pathways/matchtrack/internal/repositories/visit"
	visitMocks "github.com/pinnacle-pathways/matchtrack/internal/repositories/visit/mocks"
)

const firefoxUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:109.0) Gecko/20100101 Firefox/115.0"

type AnalyticsServiceTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockVisitRepo *visitMocks.MockRepository
	mockClock     *clockMocks.MockClock
	mockUUID      *uuidMocks.MockUUID
	service       Service
	ctx           context.Context

	testTime    time.Time
	testVisitID string
}

func (s *AnalyticsServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockVisitRepo = visitMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.ctx = context.Background()

	s.testTime = time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
	s.testVisitID = "test-visit-id"

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	svc, err := New(&Config{
		VisitRepo:     s.mockVisitRepo,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *AnalyticsServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAnalyticsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsServiceTestSuite))
}

func (s *AnalyticsServiceTestSuite) TestStartVisitSuccess() {
	s.mockUUID.EXPECT().NewUUID().Return(s.testVisitID)

	var saved *models.Visit
	s.mockVisitRepo.EXPECT().
		SaveVisit(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *visitRepo.SaveVisitInput) error {
			saved = input.Visit
			return nil
		})

	s.mockVisitRepo.EXPECT().
		RecordPageView(s.ctx, &visitRepo.RecordPageViewInput{
			Page: "/activities",
			Day:  "2026-03-14",
		}).
		Return(nil)

	output, err := s.service.StartVisit(s.ctx, &StartVisitInput{
		Page:      "/activities",
		UserAgent: firefoxUA,
	})
	s.Require().NoError(err)

	s.Equal(s.testVisitID, output.Visit.ID)
	s.Equal("/activities", output.Visit.Page)
	s.Equal("Firefox", output.Visit.Browser)
	s.Equal("Windows", output.Visit.OS)
	s.Equal("desktop", output.Visit.Device)
	s.Equal(s.testTime, output.Visit.StartedAt)
	s.True(output.Visit.EndedAt.IsZero())

	s.Require().NotNil(saved)
	s.Equal(output.Visit, saved)
}

func (s *AnalyticsServiceTestSuite) TestStartVisitUnknownAgent() {
	s.mockUUID.EXPECT().NewUUID().Return(s.testVisitID)
	s.mockVisitRepo.EXPECT().SaveVisit(s.ctx, gomock.Any()).Return(nil)
	s.mockVisitRepo.EXPECT().RecordPageView(s.ctx, gomock.Any()).Return(nil)

	output, err := s.service.StartVisit(s.ctx, &StartVisitInput{
		Page:      "/",
		UserAgent: "",
	})
	s.Require().NoError(err)

	s.Equal("unknown", output.Visit.Browser)
	s.Equal("unknown", output.Visit.OS)
	s.Equal("desktop", output.Visit.Device)
}

func (s *AnalyticsServiceTestSuite) TestStartVisitEmptyPage() {
	_, err := s.service.StartVisit(s.ctx, &StartVisitInput{
		Page: "",
	})
	s.Require().Error(err)
	s.Equal(ErrEmptyPage, err)
}

func (s *AnalyticsServiceTestSuite) TestEndVisitSuccess() {
	open := &models.Visit{
		ID:        s.testVisitID,
		Page:      "/",
		StartedAt: s.testTime.Add(-time.Minute),
	}

	s.mockVisitRepo.EXPECT().
		GetVisit(s.ctx, &visitRepo.GetVisitInput{VisitID: s.testVisitID}).
		Return(open, nil)
	s.mockVisitRepo.EXPECT().
		SaveVisit(s.ctx, gomock.Any()).
		Return(nil)

	output, err := s.service.EndVisit(s.ctx, &EndVisitInput{
		VisitID: s.testVisitID,
	})
	s.Require().NoError(err)
	s.Equal(s.testTime, output.Visit.EndedAt)
}

func (s *AnalyticsServiceTestSuite) TestEndVisitNotFound() {
	s.mockVisitRepo.EXPECT().
		GetVisit(s.ctx, &visitRepo.GetVisitInput{VisitID: "missing-visit-id"}).
		Return(nil, visitRepo.ErrVisitNotFound)

	_, err := s.service.EndVisit(s.ctx, &EndVisitInput{
		VisitID: "missing-visit-id",
	})
	s.Require().Error(err)
	s.Equal(ErrVisitNotFound, err)
}

func (s *AnalyticsServiceTestSuite) TestGetDashboard() {
	s.mockVisitRepo.EXPECT().
		GetPageCounts(s.ctx, gomock.Any()).
		Return(&visitRepo.GetPageCountsOutput{
			Counts: map[string]int64{"/": 7, "/gallery": 3},
		}, nil)
	s.mockVisitRepo.EXPECT().
		GetDayCounts(s.ctx, gomock.Any()).
		Return(&visitRepo.GetDayCountsOutput{
			Counts: map[string]int64{"2026-03-14": 10},
		}, nil)

	output, err := s.service.GetDashboard(s.ctx, &GetDashboardInput{})
	s.Require().NoError(err)

	s.Equal(int64(10), output.TotalViews)
	s.Equal(int64(7), output.PageCounts["/"])
	s.Equal(int64(10), output.DayCounts["2026-03-14"])
}
