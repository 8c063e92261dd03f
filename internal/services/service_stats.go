package services

import (
	"context"
	"math"
	"time"

	"reportshub/dto"
	"reportshub/internal/models"
	"reportshub/internal/repository"
)

type StatsService struct {
	users       repository.UserRepository
	locations   repository.LocationRepository
	templates   repository.TemplateRepository
	fields      repository.FieldRepository
	submissions repository.SubmissionRepository
}

func NewStatsService(
	users repository.UserRepository,
	locations repository.LocationRepository,
	templates repository.TemplateRepository,
	fields repository.FieldRepository,
	submissions repository.SubmissionRepository,
) *StatsService {
	return &StatsService{
		users:       users,
		locations:   locations,
		templates:   templates,
		fields:      fields,
		submissions: submissions,
	}
}

func (s *StatsService) Stats(ctx context.Context) (*dto.StatsResponse, error) {
	var out dto.StatsResponse
	var err error

	if out.TotalUsers, err = s.users.Count(ctx); err != nil {
		return nil, err
	}
	if out.ApprovedUsers, err = s.users.CountApproved(ctx, true); err != nil {
		return nil, err
	}
	if out.PendingUsers, err = s.users.CountApproved(ctx, false); err != nil {
		return nil, err
	}
	if out.TotalLocations, err = s.locations.Count(ctx); err != nil {
		return nil, err
	}
	if out.AdminUsers, err = s.users.CountByRole(ctx, models.RoleAdmin); err != nil {
		return nil, err
	}
	if out.RegularUsers, err = s.users.CountByRole(ctx, models.RoleUser); err != nil {
		return nil, err
	}

	sevenDaysAgo := time.Now().UTC().AddDate(0, 0, -7)
	if out.RecentRegistrations, err = s.users.CountCreatedSince(ctx, sevenDaysAgo); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *StatsService) Analytics(ctx context.Context) (*dto.AnalyticsResponse, error) {
	stats, err := s.Stats(ctx)
	if err != nil {
		return nil, err
	}
	out := dto.AnalyticsResponse{StatsResponse: *stats}

	if out.TotalTemplates, err = s.templates.CountActive(ctx); err != nil {
		return nil, err
	}
	if out.TotalFields, err = s.fields.CountActive(ctx); err != nil {
		return nil, err
	}
	if out.TotalReports, err = s.submissions.Count(ctx); err != nil {
		return nil, err
	}
	if out.SubmittedReports, err = s.submissions.CountByStatus(ctx, models.StatusSubmitted); err != nil {
		return nil, err
	}
	if out.DraftReports, err = s.submissions.CountByStatus(ctx, models.StatusDraft); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if out.RecentSubmissions, err = s.submissions.CountCreatedSince(ctx, now.AddDate(0, 0, -7)); err != nil {
		return nil, err
	}
	if out.MonthlySubmissions, err = s.submissions.CountCreatedSince(ctx, now.AddDate(0, 0, -30)); err != nil {
		return nil, err
	}

	if out.FieldSections, err = s.fields.Sections(ctx); err != nil {
		return nil, err
	}
	out.SectionStats = make(map[string]int64, len(out.FieldSections))
	for _, section := range out.FieldSections {
		count, err := s.fields.CountBySection(ctx, section)
		if err != nil {
			return nil, err
		}
		out.SectionStats[section] = count
	}

	out.ApprovalRate = rate(out.ApprovedUsers, out.TotalUsers)
	out.SubmissionRate = rate(out.SubmittedReports, out.TotalReports)
	return &out, nil
}

// rate is a percentage rounded to one decimal place, zero when the
// denominator is zero.
func rate(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*1000) / 10
}
