package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"reportshub/dto"
	"reportshub/internal/apperr"
	"reportshub/internal/models"
	"reportshub/internal/repository"
	"reportshub/utils"
)

type TemplateService struct {
	templates   repository.TemplateRepository
	fields      repository.FieldRepository
	submissions repository.SubmissionRepository
}

func NewTemplateService(templates repository.TemplateRepository, fields repository.FieldRepository, submissions repository.SubmissionRepository) *TemplateService {
	return &TemplateService{templates: templates, fields: fields, submissions: submissions}
}

func newReportFields(in []dto.ReportFieldCreate) []models.ReportField {
	out := make([]models.ReportField, 0, len(in))
	for _, f := range in {
		out = append(out, models.ReportField{
			ID:          uuid.NewString(),
			Name:        f.Name,
			Label:       f.Label,
			FieldType:   f.FieldType,
			Required:    f.Required,
			Options:     f.Options,
			Placeholder: f.Placeholder,
			Validation:  f.Validation,
			Order:       f.Order,
		})
	}
	return out
}

func (s *TemplateService) Create(ctx context.Context, adminID string, req dto.TemplateCreate) (*models.ReportTemplate, error) {
	taken, err := s.templates.NameTaken(ctx, req.Name, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.Conflict("Report template name already exists")
	}

	category := req.Category
	if category == "" {
		category = "General"
	}
	now := time.Now().UTC()
	tpl := models.ReportTemplate{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Category:    category,
		Fields:      newReportFields(req.Fields),
		Active:      true,
		CreatedBy:   adminID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.templates.Insert(ctx, tpl); err != nil {
		return nil, err
	}
	return &tpl, nil
}

// CreateFromFields assembles a template out of registry entries. Every
// requested id must resolve to a non-deleted field; the resulting
// report fields keep the order of the requested id list, with the
// machine name derived from the field label.
func (s *TemplateService) CreateFromFields(ctx context.Context, adminID string, req dto.TemplateFromFields) (*models.ReportTemplate, error) {
	taken, err := s.templates.NameTaken(ctx, req.Name, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.Conflict("Report template name already exists")
	}

	selected, err := s.fields.FindActiveByIDs(ctx, req.FieldIDs)
	if err != nil {
		return nil, err
	}
	if len(selected) != len(req.FieldIDs) {
		return nil, apperr.Validation("Some selected fields were not found or are deleted")
	}

	byID := make(map[string]models.DynamicField, len(selected))
	for _, f := range selected {
		byID[f.ID] = f
	}

	reportFields := make([]models.ReportField, 0, len(req.FieldIDs))
	for i, fieldID := range req.FieldIDs {
		f := byID[fieldID]
		reportFields = append(reportFields, models.ReportField{
			ID:          uuid.NewString(),
			Name:        utils.MachineName(f.Label),
			Label:       f.Label,
			FieldType:   f.FieldType,
			Required:    false,
			Options:     f.Choices,
			Placeholder: f.Placeholder,
			Validation:  f.Validation,
			Order:       i + 1,
		})
	}

	category := req.Category
	if category == "" {
		category = "General"
	}
	now := time.Now().UTC()
	tpl := models.ReportTemplate{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Category:    category,
		Fields:      reportFields,
		Active:      true,
		CreatedBy:   adminID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.templates.Insert(ctx, tpl); err != nil {
		return nil, err
	}
	return &tpl, nil
}

// Update applies a partial update. A supplied field list replaces the
// stored one wholesale and every field gets a fresh id; references to
// the old field ids are deliberately not preserved (submission data is
// keyed by field name, which survives).
func (s *TemplateService) Update(ctx context.Context, id string, req dto.TemplateUpdate) (*models.ReportTemplate, error) {
	if _, err := s.templates.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNoDocument) {
			return nil, apperr.NotFound("Report template not found")
		}
		return nil, err
	}

	if req.Name != nil {
		taken, err := s.templates.NameTaken(ctx, *req.Name, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperr.Conflict("Report template name already exists")
		}
	}

	upd := repository.TemplateUpdate{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Active:      req.Active,
		UpdatedAt:   time.Now().UTC(),
	}
	if req.Fields != nil {
		upd.ReplaceFields = true
		upd.Fields = newReportFields(*req.Fields)
	}

	tpl, err := s.templates.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, repository.ErrNoDocument) {
			return nil, apperr.NotFound("Report template not found")
		}
		return nil, err
	}
	return tpl, nil
}

func (s *TemplateService) Delete(ctx context.Context, id string) error {
	referenced, err := s.submissions.ExistsForTemplate(ctx, id)
	if err != nil {
		return err
	}
	if referenced {
		return apperr.Conflict("Cannot delete template. It has existing submissions.")
	}
	err = s.templates.Delete(ctx, id)
	if errors.Is(err, repository.ErrNoDocument) {
		return apperr.NotFound("Report template not found")
	}
	return err
}

func (s *TemplateService) ListAll(ctx context.Context) ([]models.ReportTemplate, error) {
	return s.templates.FindAll(ctx)
}

func (s *TemplateService) ListActive(ctx context.Context) ([]models.ReportTemplate, error) {
	return s.templates.FindActive(ctx)
}

func (s *TemplateService) GetActive(ctx context.Context, id string) (*models.ReportTemplate, error) {
	tpl, err := s.templates.FindActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNoDocument) {
			return nil, apperr.NotFound("Report template not found")
		}
		return nil, err
	}
	return tpl, nil
}
