package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"reportshub/dto"
	"reportshub/internal/apperr"
	"reportshub/internal/models"
	"reportshub/internal/repository"
)

const (
	defaultPageLimit = 20
	exportMaxRecords = 1000
)

var bulkStatusByAction = map[string]string{
	"approve":       models.StatusApproved,
	"reject":        models.StatusRejected,
	"mark_reviewed": models.StatusReviewed,
}

type ReviewService struct {
	submissions repository.SubmissionRepository
	templates   repository.TemplateRepository
	users       repository.UserRepository
	locations   repository.LocationRepository
	logger      *zap.Logger
}

func NewReviewService(
	submissions repository.SubmissionRepository,
	templates repository.TemplateRepository,
	users repository.UserRepository,
	locations repository.LocationRepository,
	logger *zap.Logger,
) *ReviewService {
	return &ReviewService{
		submissions: submissions,
		templates:   templates,
		users:       users,
		locations:   locations,
		logger:      logger,
	}
}

// Enrich joins display names onto a submission. Lookups are best
// effort: a missing template or user degrades to a placeholder and a
// missing location is simply omitted.
func (s *ReviewService) Enrich(ctx context.Context, sub models.ReportSubmission) dto.ReportResponse {
	templateName := "Unknown Template"
	if tpl, err := s.templates.FindByID(ctx, sub.TemplateID); err == nil {
		templateName = tpl.Name
	}

	username := "Unknown User"
	if u, err := s.users.FindByID(ctx, sub.UserID); err == nil {
		username = u.Username
	}

	var locationName *string
	if sub.LocationID != nil {
		if loc, err := s.locations.FindByID(ctx, *sub.LocationID); err == nil {
			locationName = &loc.Name
		}
	}

	return dto.ReportResponse{
		ID:           sub.ID,
		TemplateID:   sub.TemplateID,
		TemplateName: templateName,
		UserID:       sub.UserID,
		Username:     username,
		LocationID:   sub.LocationID,
		LocationName: locationName,
		ReportPeriod: sub.ReportPeriod,
		Data:         sub.Data,
		Status:       sub.Status,
		SubmittedAt:  sub.SubmittedAt,
		ReviewedAt:   sub.ReviewedAt,
		ReviewedBy:   sub.ReviewedBy,
		CreatedAt:    sub.CreatedAt,
		UpdatedAt:    sub.UpdatedAt,
	}
}

func (s *ReviewService) EnrichAll(ctx context.Context, subs []models.ReportSubmission) []dto.ReportResponse {
	out := make([]dto.ReportResponse, 0, len(subs))
	for _, sub := range subs {
		out = append(out, s.Enrich(ctx, sub))
	}
	return out
}

// Search filters, paginates and enriches submissions, newest first.
func (s *ReviewService) Search(ctx context.Context, q dto.SearchQuery) (*dto.SearchResult, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = defaultPageLimit
	}
	skip := int64(page-1) * int64(limit)

	filter := repository.SubmissionFilter{
		SearchTerm: q.SearchTerm,
		Status:     q.Status,
		TemplateID: q.TemplateID,
		UserID:     q.UserID,
		LocationID: q.LocationID,
		DateFrom:   q.DateFrom,
		DateTo:     q.DateTo,
	}
	subs, total, err := s.submissions.Search(ctx, filter, skip, int64(limit))
	if err != nil {
		return nil, err
	}

	return &dto.SearchResult{
		Reports:    s.EnrichAll(ctx, subs),
		TotalCount: total,
		Page:       page,
		Limit:      limit,
		TotalPages: (total + int64(limit) - 1) / int64(limit),
	}, nil
}

// BulkAction applies one action to every listed submission. The
// existence check runs before any write, so one unknown id fails the
// whole call with nothing mutated.
func (s *ReviewService) BulkAction(ctx context.Context, admin models.User, req dto.BulkActionRequest) (string, error) {
	if req.Action != "delete" {
		if _, ok := bulkStatusByAction[req.Action]; !ok {
			return "", apperr.Validation("Invalid action. Must be one of: delete, approve, reject, mark_reviewed")
		}
	}
	if len(req.ReportIDs) == 0 {
		return "", apperr.Validation("No report IDs provided")
	}

	count, err := s.submissions.CountByIDs(ctx, req.ReportIDs)
	if err != nil {
		return "", err
	}
	if count != int64(len(req.ReportIDs)) {
		return "", apperr.Validation("Some report IDs were not found")
	}

	if req.Action == "delete" {
		deleted, err := s.submissions.DeleteByIDs(ctx, req.ReportIDs)
		if err != nil {
			return "", err
		}
		s.logger.Info("bulk deleted reports",
			zap.Int64("count", deleted), zap.String("admin_id", admin.ID))
		return fmt.Sprintf("Successfully deleted %d reports", deleted), nil
	}

	status := bulkStatusByAction[req.Action]
	modified, err := s.submissions.UpdateStatusByIDs(ctx, req.ReportIDs, status, admin.ID, time.Now().UTC())
	if err != nil {
		return "", err
	}
	s.logger.Info("bulk updated reports",
		zap.String("action", req.Action),
		zap.Int64("count", modified),
		zap.String("admin_id", admin.ID))
	return fmt.Sprintf("Successfully %sed %d reports", req.Action, modified), nil
}

// Export flattens submissions matching the filters into one row per
// submission, with data_<key> columns for the dynamic answers. Bounded
// at exportMaxRecords.
func (s *ReviewService) Export(ctx context.Context, q dto.ExportQuery) (*dto.ExportResult, error) {
	format := strings.ToLower(q.Format)
	if format != "csv" && format != "json" && format != "xlsx" {
		return nil, apperr.Validation("Invalid format. Must be one of: csv, json, xlsx")
	}

	filter := repository.SubmissionFilter{
		Status:     q.Status,
		TemplateID: q.TemplateID,
		UserID:     q.UserID,
		DateFrom:   q.DateFrom,
		DateTo:     q.DateTo,
	}
	subs, _, err := s.submissions.Search(ctx, filter, 0, exportMaxRecords)
	if err != nil {
		return nil, err
	}

	rows := make([]map[string]string, 0, len(subs))
	for _, sub := range subs {
		enriched := s.Enrich(ctx, sub)
		rows = append(rows, flattenSubmission(enriched))
	}

	return &dto.ExportResult{
		Format:   format,
		Data:     rows,
		Filename: fmt.Sprintf("reports_export_%s.%s", time.Now().Format("20060102_150405"), format),
	}, nil
}

func flattenSubmission(r dto.ReportResponse) map[string]string {
	locationName := ""
	if r.LocationName != nil {
		locationName = *r.LocationName
	}
	submittedAt := ""
	if r.SubmittedAt != nil {
		submittedAt = r.SubmittedAt.Format(time.RFC3339)
	}

	row := map[string]string{
		"report_id":     r.ID,
		"template_name": r.TemplateName,
		"username":      r.Username,
		"location_name": locationName,
		"report_period": r.ReportPeriod,
		"status":        r.Status,
		"submitted_at":  submittedAt,
		"created_at":    r.CreatedAt.Format(time.RFC3339),
		"updated_at":    r.UpdatedAt.Format(time.RFC3339),
	}
	for key, value := range r.Data {
		if value == nil {
			row["data_"+key] = ""
			continue
		}
		row["data_"+key] = fmt.Sprintf("%v", value)
	}
	return row
}
