package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reportshub/dto"
	"reportshub/internal/apperr"
	"reportshub/internal/models"
)

func newTemplateService() (*TemplateService, *fakeTemplateRepo, *fakeFieldRepo, *fakeSubmissionRepo) {
	tpls := &fakeTemplateRepo{}
	fields := &fakeFieldRepo{}
	subs := &fakeSubmissionRepo{}
	return NewTemplateService(tpls, fields, subs), tpls, fields, subs
}

func TestTemplateCreateRejectsDuplicateName(t *testing.T) {
	svc, _, _, _ := newTemplateService()
	ctx := context.Background()

	_, err := svc.Create(ctx, "admin", dto.TemplateCreate{Name: "Monthly Progress Report"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, "admin", dto.TemplateCreate{Name: "Monthly Progress Report"})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestTemplateCreateDefaultsCategory(t *testing.T) {
	svc, _, _, _ := newTemplateService()

	tpl, err := svc.Create(context.Background(), "admin", dto.TemplateCreate{Name: "Weekly Report"})
	require.NoError(t, err)
	assert.Equal(t, "General", tpl.Category)
	assert.True(t, tpl.Active)
}

func TestTemplateRenameUniqueness(t *testing.T) {
	svc, _, _, _ := newTemplateService()
	ctx := context.Background()

	a, err := svc.Create(ctx, "admin", dto.TemplateCreate{Name: "Report A"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "admin", dto.TemplateCreate{Name: "Report B"})
	require.NoError(t, err)

	taken := "Report B"
	_, err = svc.Update(ctx, a.ID, dto.TemplateUpdate{Name: &taken})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))

	// Renaming to the name it already holds is not a conflict.
	same := "Report A"
	_, err = svc.Update(ctx, a.ID, dto.TemplateUpdate{Name: &same})
	assert.NoError(t, err)
}

func TestTemplateUpdateRegeneratesFieldIDs(t *testing.T) {
	svc, _, _, _ := newTemplateService()
	ctx := context.Background()

	tpl, err := svc.Create(ctx, "admin", dto.TemplateCreate{
		Name: "Report A",
		Fields: []dto.ReportFieldCreate{
			{Name: "notes", Label: "Notes", FieldType: models.FieldTypeTextarea, Order: 1},
		},
	})
	require.NoError(t, err)
	oldFieldID := tpl.Fields[0].ID

	updated, err := svc.Update(ctx, tpl.ID, dto.TemplateUpdate{
		Fields: &[]dto.ReportFieldCreate{
			{Name: "notes", Label: "Notes", FieldType: models.FieldTypeTextarea, Order: 1},
		},
	})
	require.NoError(t, err)
	require.Len(t, updated.Fields, 1)
	assert.NotEqual(t, oldFieldID, updated.Fields[0].ID)
	assert.Equal(t, "notes", updated.Fields[0].Name)
}

func TestTemplateFromFields(t *testing.T) {
	svc, _, fields, _ := newTemplateService()
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, fields.Insert(ctx, models.DynamicField{
		ID: "df-progress", Section: "General", Label: "Progress Notes",
		FieldType: models.FieldTypeTextarea, CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, fields.Insert(ctx, models.DynamicField{
		ID: "df-dept", Section: "General", Label: "Department",
		FieldType: models.FieldTypeDropdown, Choices: []string{"Sales", "Engineering"},
		CreatedAt: now, UpdatedAt: now,
	}))

	tpl, err := svc.CreateFromFields(ctx, "admin", dto.TemplateFromFields{
		Name:     "Departmental Report",
		FieldIDs: []string{"df-dept", "df-progress"},
	})
	require.NoError(t, err)
	require.Len(t, tpl.Fields, 2)

	dept := tpl.Fields[0]
	assert.Equal(t, "department", dept.Name)
	assert.Equal(t, "Department", dept.Label)
	assert.Equal(t, models.FieldTypeDropdown, dept.FieldType)
	assert.Equal(t, []string{"Sales", "Engineering"}, dept.Options)
	assert.False(t, dept.Required)
	assert.Equal(t, 1, dept.Order)

	notes := tpl.Fields[1]
	assert.Equal(t, "progress_notes", notes.Name)
	assert.Equal(t, 2, notes.Order)
}

func TestTemplateFromFieldsRejectsDeletedOrMissing(t *testing.T) {
	svc, _, fields, _ := newTemplateService()
	ctx := context.Background()

	require.NoError(t, fields.Insert(ctx, models.DynamicField{
		ID: "df-1", Label: "Notes", FieldType: models.FieldTypeText, Deleted: true,
	}))

	_, err := svc.CreateFromFields(ctx, "admin", dto.TemplateFromFields{
		Name:     "Broken",
		FieldIDs: []string{"df-1"},
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	_, err = svc.CreateFromFields(ctx, "admin", dto.TemplateFromFields{
		Name:     "Broken",
		FieldIDs: []string{"does-not-exist"},
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestTemplateDeleteBlockedBySubmissions(t *testing.T) {
	svc, _, _, subs := newTemplateService()
	ctx := context.Background()

	tpl, err := svc.Create(ctx, "admin", dto.TemplateCreate{Name: "Report A"})
	require.NoError(t, err)

	subs.subs = append(subs.subs, models.ReportSubmission{
		ID: "sub-1", TemplateID: tpl.ID, UserID: "u1", ReportPeriod: "2025-01",
	})

	err = svc.Delete(ctx, tpl.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))

	subs.subs = nil
	assert.NoError(t, svc.Delete(ctx, tpl.ID))

	err = svc.Delete(ctx, tpl.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestTemplateGetActiveHidesInactive(t *testing.T) {
	svc, tpls, _, _ := newTemplateService()
	ctx := context.Background()

	tpl, err := svc.Create(ctx, "admin", dto.TemplateCreate{Name: "Report A"})
	require.NoError(t, err)

	inactive := false
	_, err = svc.Update(ctx, tpl.ID, dto.TemplateUpdate{Active: &inactive})
	require.NoError(t, err)

	_, err = svc.GetActive(ctx, tpl.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	active, err := svc.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err := tpls.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
