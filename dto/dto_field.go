package dto

type DynamicFieldCreate struct {
	Section     string         `json:"section"`
	Label       string         `json:"label"`
	FieldType   string         `json:"field_type"`
	Choices     []string       `json:"choices,omitempty"`
	Validation  map[string]any `json:"validation,omitempty"`
	Placeholder string         `json:"placeholder,omitempty"`
	HelpText    string         `json:"help_text,omitempty"`
}

// DynamicFieldUpdate is a partial update: only non-nil attributes
// overwrite the stored field.
type DynamicFieldUpdate struct {
	Section     *string        `json:"section,omitempty"`
	Label       *string        `json:"label,omitempty"`
	FieldType   *string        `json:"field_type,omitempty"`
	Choices     []string       `json:"choices,omitempty"`
	Validation  map[string]any `json:"validation,omitempty"`
	Placeholder *string        `json:"placeholder,omitempty"`
	HelpText    *string        `json:"help_text,omitempty"`
	Deleted     *bool          `json:"deleted,omitempty"`
}

// FieldTypeInfo describes what a field type supports, for the admin
// template builder UI.
type FieldTypeInfo struct {
	Label               string `json:"label"`
	Description         string `json:"description"`
	SupportsValidation  bool   `json:"supports_validation"`
	SupportsPlaceholder bool   `json:"supports_placeholder"`
	SupportsChoices     bool   `json:"supports_choices"`
}
