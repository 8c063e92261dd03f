package dto

type ReportFieldCreate struct {
	Name        string         `json:"name"`
	Label       string         `json:"label"`
	FieldType   string         `json:"field_type"`
	Required    bool           `json:"required"`
	Options     []string       `json:"options,omitempty"`
	Placeholder string         `json:"placeholder,omitempty"`
	Validation  map[string]any `json:"validation,omitempty"`
	Order       int            `json:"order"`
}

type TemplateCreate struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Category    string              `json:"category"`
	Fields      []ReportFieldCreate `json:"fields"`
}

// TemplateUpdate is a partial update. A non-nil Fields replaces the
// whole field list; every replacement field gets a fresh id.
type TemplateUpdate struct {
	Name        *string              `json:"name,omitempty"`
	Description *string              `json:"description,omitempty"`
	Category    *string              `json:"category,omitempty"`
	Active      *bool                `json:"active,omitempty"`
	Fields      *[]ReportFieldCreate `json:"fields,omitempty"`
}

type TemplateFromFields struct {
	Name        string   `json:"template_name"`
	Description string   `json:"template_description"`
	Category    string   `json:"template_category"`
	FieldIDs    []string `json:"field_ids"`
}

// TemplatePreview is a draft to render. Fields is a pointer so an
// absent fields key can be told apart from an explicitly empty list;
// only absence is an error.
type TemplatePreview struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Fields      *[]ReportFieldCreate `json:"fields"`
}

type TemplatePreviewResult struct {
	PreviewHTML             string `json:"preview_html"`
	FieldCount              int    `json:"field_count"`
	EstimatedCompletionTime int    `json:"estimated_completion_time"`
}
