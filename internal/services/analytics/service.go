package analytics

import (
	"context"
	"errors"

	"github.com/mssola/useragent"

	"github.com/pinnacle-pathways/matchtrack/internal/models"
	visitRepo "github.com/pinnacle-pathways/matchtrack/internal/repositories/visit"
)

// service implements the Service interface
type service struct {
	config *Config
}

// New creates a new analytics service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.VisitRepo == nil {
		return nil, ErrNilVisitRepo
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

// StartVisit records the start of a page view. The User-Agent header
// is parsed into browser, OS and device class at this point so the
// dashboard never has to touch raw UA strings.
func (s *service) StartVisit(ctx context.Context, input *StartVisitInput) (*StartVisitOutput, error) {
	if input.Page == "" {
		return nil, ErrEmptyPage
	}

	now := s.config.Clock.Now()
	browser, os, device := parseUserAgent(input.UserAgent)

	v := &models.Visit{
		ID:        s.config.UUIDGenerator.NewUUID(),
		Page:      input.Page,
		Browser:   browser,
		OS:        os,
		Device:    device,
		StartedAt: now,
	}

	err := s.config.VisitRepo.SaveVisit(ctx, &visitRepo.SaveVisitInput{
		Visit: v,
	})
	if err != nil {
		return nil, err
	}

	err = s.config.VisitRepo.RecordPageView(ctx, &visitRepo.RecordPageViewInput{
		Page: input.Page,
		Day:  now.Format("2006-01-02"),
	})
	if err != nil {
		return nil, err
	}

	return &StartVisitOutput{
		Visit: v,
	}, nil
}

// EndVisit closes an open visit. Ending an already ended visit just
// moves its end time forward.
func (s *service) EndVisit(ctx context.Context, input *EndVisitInput) (*EndVisitOutput, error) {
	v, err := s.config.VisitRepo.GetVisit(ctx, &visitRepo.GetVisitInput{
		VisitID: input.VisitID,
	})
	if err != nil {
		if errors.Is(err, visitRepo.ErrVisitNotFound) {
			return nil, ErrVisitNotFound
		}
		return nil, err
	}

	v.EndedAt = s.config.Clock.Now()

	err = s.config.VisitRepo.SaveVisit(ctx, &visitRepo.SaveVisitInput{
		Visit: v,
	})
	if err != nil {
		return nil, err
	}

	return &EndVisitOutput{
		Visit: v,
	}, nil
}

// GetDashboard aggregates page-view counts for the admin dashboard
func (s *service) GetDashboard(ctx context.Context, input *GetDashboardInput) (*GetDashboardOutput, error) {
	pages, err := s.config.VisitRepo.GetPageCounts(ctx, &visitRepo.GetPageCountsInput{})
	if err != nil {
		return nil, err
	}

	days, err := s.config.VisitRepo.GetDayCounts(ctx, &visitRepo.GetDayCountsInput{})
	if err != nil {
		return nil, err
	}

	var total int64
	for _, n := range pages.Counts {
		total += n
	}

	return &GetDashboardOutput{
		PageCounts: pages.Counts,
		DayCounts:  days.Counts,
		TotalViews: total,
	}, nil
}

// parseUserAgent classifies a raw User-Agent header. Unknown agents
// come back as "unknown" rather than empty so the dashboard always has
// something to group by.
func parseUserAgent(raw string) (browser, os, device string) {
	ua := useragent.New(raw)

	browser, _ = ua.Browser()
	if browser == "" {
		browser = "unknown"
	}

	os = ua.OSInfo().Name
	if os == "" {
		os = "unknown"
	}

	switch {
	case ua.Bot():
		device = "bot"
	case ua.Mobile():
		device = "mobile"
	default:
		device = "desktop"
	}

	return browser, os, device
}
