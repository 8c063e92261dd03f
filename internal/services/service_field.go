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

type FieldService struct {
	fields repository.FieldRepository
}

func NewFieldService(fields repository.FieldRepository) *FieldService {
	return &FieldService{fields: fields}
}

func invalidFieldType() error {
	return apperr.Validation("Invalid field type. Must be one of: %s",
		strings.Join(models.ValidFieldTypes, ", "))
}

func (s *FieldService) Create(ctx context.Context, adminID string, req dto.DynamicFieldCreate) (*models.DynamicField, error) {
	if !models.IsValidFieldType(req.FieldType) {
		return nil, invalidFieldType()
	}
	if models.FieldTypeRequiresChoices(req.FieldType) && len(req.Choices) == 0 {
		return nil, apperr.Validation("Choices must be provided for dropdown and multiselect fields")
	}

	now := time.Now().UTC()
	field := models.DynamicField{
		ID:          uuid.NewString(),
		Section:     req.Section,
		Label:       req.Label,
		FieldType:   req.FieldType,
		Choices:     req.Choices,
		Validation:  req.Validation,
		Placeholder: req.Placeholder,
		HelpText:    req.HelpText,
		CreatedBy:   adminID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.fields.Insert(ctx, field); err != nil {
		return nil, err
	}
	return &field, nil
}

// Update merges only the supplied attributes; updated_at always moves.
func (s *FieldService) Update(ctx context.Context, id string, req dto.DynamicFieldUpdate) (*models.DynamicField, error) {
	if _, err := s.fields.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNoDocument) {
			return nil, apperr.NotFound("Dynamic field not found")
		}
		return nil, err
	}
	if req.FieldType != nil && !models.IsValidFieldType(*req.FieldType) {
		return nil, invalidFieldType()
	}

	field, err := s.fields.Update(ctx, id, req, time.Now().UTC())
	if err != nil {
		if errors.Is(err, repository.ErrNoDocument) {
			return nil, apperr.NotFound("Dynamic field not found")
		}
		return nil, err
	}
	return field, nil
}

func (s *FieldService) SoftDelete(ctx context.Context, id string) error {
	return s.setDeleted(ctx, id, true)
}

func (s *FieldService) Restore(ctx context.Context, id string) error {
	return s.setDeleted(ctx, id, false)
}

func (s *FieldService) setDeleted(ctx context.Context, id string, deleted bool) error {
	err := s.fields.SetDeleted(ctx, id, deleted, time.Now().UTC())
	if errors.Is(err, repository.ErrNoDocument) {
		return apperr.NotFound("Dynamic field not found")
	}
	return err
}

func (s *FieldService) List(ctx context.Context, includeDeleted bool) ([]models.DynamicField, error) {
	return s.fields.FindAll(ctx, includeDeleted)
}

// Sections returns the distinct section names among non-deleted fields.
func (s *FieldService) Sections(ctx context.Context) ([]string, error) {
	return s.fields.Sections(ctx)
}

// FieldTypes is the static capability table behind GET /admin/field-types.
func FieldTypes() map[string]dto.FieldTypeInfo {
	return map[string]dto.FieldTypeInfo{
		models.FieldTypeText: {
			Label:               "Text Input",
			Description:         "Single line text input",
			SupportsValidation:  true,
			SupportsPlaceholder: true,
		},
		models.FieldTypeTextarea: {
			Label:               "Text Area",
			Description:         "Multi-line text input",
			SupportsValidation:  true,
			SupportsPlaceholder: true,
		},
		models.FieldTypeNumber: {
			Label:               "Number Input",
			Description:         "Numeric input with validation",
			SupportsValidation:  true,
			SupportsPlaceholder: true,
		},
		models.FieldTypeDate: {
			Label:              "Date Picker",
			Description:        "Date selection input",
			SupportsValidation: true,
		},
		models.FieldTypeDropdown: {
			Label:           "Dropdown Select",
			Description:     "Single selection from predefined options",
			SupportsChoices: true,
		},
		models.FieldTypeMultiselect: {
			Label:           "Multi-Select",
			Description:     "Multiple selection from predefined options",
			SupportsChoices: true,
		},
		models.FieldTypeCheckbox: {
			Label:       "Checkbox",
			Description: "Boolean yes/no input",
		},
		models.FieldTypeFile: {
			Label:              "File Upload",
			Description:        "File attachment input",
			SupportsValidation: true,
		},
	}
}
