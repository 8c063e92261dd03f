package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"reportshub/dto"
	"reportshub/internal/apperr"
	"reportshub/internal/models"
	"reportshub/internal/repository"
)

type ReportService struct {
	submissions repository.SubmissionRepository
	templates   repository.TemplateRepository
}

func NewReportService(submissions repository.SubmissionRepository, templates repository.TemplateRepository) *ReportService {
	return &ReportService{submissions: submissions, templates: templates}
}

// Upsert creates or overwrites the submission for (user, template,
// period). Repeated calls with the same triple always land on the same
// document; the stored id never changes across resubmits.
func (s *ReportService) Upsert(ctx context.Context, user models.User, req dto.ReportSubmit) (*models.ReportSubmission, error) {
	status := req.Status
	if status == "" {
		status = models.StatusDraft
	}
	if !models.IsValidStatus(status) {
		return nil, apperr.Validation("Invalid status. Must be one of: %s",
			strings.Join(models.ValidStatuses, ", "))
	}

	_, err := s.templates.FindActiveByID(ctx, req.TemplateID)
	if err != nil {
		if errors.Is(err, repository.ErrNoDocument) {
			return nil, apperr.NotFound("Report template not found or inactive")
		}
		return nil, err
	}

	return s.submissions.Upsert(ctx, repository.UpsertParams{
		NewID:        uuid.NewString(),
		UserID:       user.ID,
		TemplateID:   req.TemplateID,
		ReportPeriod: req.ReportPeriod,
		LocationID:   user.LocationID,
		Data:         req.Data,
		Status:       status,
		Now:          time.Now().UTC(),
	})
}

// Get returns a submission to its owner or to an admin.
func (s *ReportService) Get(ctx context.Context, id string, requester models.User) (*models.ReportSubmission, error) {
	sub, err := s.submissions.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNoDocument) {
			return nil, apperr.NotFound("Report not found")
		}
		return nil, err
	}
	if !requester.IsAdmin() && sub.UserID != requester.ID {
		return nil, apperr.Forbidden("Not authorized to view this report")
	}
	return sub, nil
}

func (s *ReportService) ListForUser(ctx context.Context, userID string) ([]models.ReportSubmission, error) {
	return s.submissions.FindByUser(ctx, userID)
}

func (s *ReportService) ListAll(ctx context.Context) ([]models.ReportSubmission, error) {
	return s.submissions.FindAll(ctx)
}
