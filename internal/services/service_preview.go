package services

import (
	"fmt"
	"strings"

	"reportshub/dto"
	"reportshub/internal/apperr"
	"reportshub/internal/models"
)

// Minutes of fill-in time assumed per field for the coarse estimate.
const minutesPerField = 2

// Preview renders a draft template as form markup without persisting
// anything. An empty field list previews fine; only an absent one is
// rejected.
func (s *TemplateService) Preview(req dto.TemplatePreview) (*dto.TemplatePreviewResult, error) {
	if req.Name == "" || req.Fields == nil {
		return nil, apperr.Validation("Template must have name and fields")
	}
	fields := *req.Fields

	var b strings.Builder
	b.WriteString(`<div class="template-preview">`)
	fmt.Fprintf(&b, "<h3>%s</h3>", req.Name)
	fmt.Fprintf(&b, "<p>%s</p>", req.Description)
	b.WriteString(`<form class="preview-form">`)
	for _, f := range fields {
		writeFieldPreview(&b, f)
	}
	b.WriteString(`</form></div>`)

	return &dto.TemplatePreviewResult{
		PreviewHTML:             b.String(),
		FieldCount:              len(fields),
		EstimatedCompletionTime: len(fields) * minutesPerField,
	}, nil
}

func writeFieldPreview(b *strings.Builder, f dto.ReportFieldCreate) {
	label := f.Label
	if label == "" {
		label = "Untitled Field"
	}

	b.WriteString(`<div class="field-preview mb-3">`)
	fmt.Fprintf(b, `<label class="form-label">%s`, label)
	if f.Required {
		b.WriteString(` <span class="text-danger">*</span>`)
	}
	b.WriteString(`</label>`)

	switch f.FieldType {
	case models.FieldTypeTextarea:
		fmt.Fprintf(b, `<textarea class="form-control" placeholder="%s" rows="3" disabled></textarea>`, f.Placeholder)
	case models.FieldTypeNumber:
		fmt.Fprintf(b, `<input type="number" class="form-control" placeholder="%s" disabled>`, f.Placeholder)
	case models.FieldTypeDate:
		b.WriteString(`<input type="date" class="form-control" disabled>`)
	case models.FieldTypeDropdown, models.FieldTypeMultiselect:
		b.WriteString(`<select class="form-control" disabled>`)
		b.WriteString(`<option>Select an option...</option>`)
		for _, opt := range f.Options {
			fmt.Fprintf(b, "<option>%s</option>", opt)
		}
		b.WriteString(`</select>`)
	case models.FieldTypeCheckbox:
		b.WriteString(`<div class="form-check">`)
		b.WriteString(`<input type="checkbox" class="form-check-input" disabled>`)
		fmt.Fprintf(b, `<label class="form-check-label">%s</label>`, label)
		b.WriteString(`</div>`)
	case models.FieldTypeFile:
		b.WriteString(`<input type="file" class="form-control" disabled>`)
	default:
		fmt.Fprintf(b, `<input type="text" class="form-control" placeholder="%s" disabled>`, f.Placeholder)
	}

	b.WriteString(`</div>`)
}
